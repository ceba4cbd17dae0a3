package main

import (
	"testing"
)

func TestRoutineRegistryHoldsBuiltins(t *testing.T) {
	reg := newRoutineRegistry()
	for _, name := range []string{"floss", "macarena"} {
		rt, ok := reg[name]
		if !ok {
			t.Fatalf("registry is missing %q", name)
		}
		if rt.Name != name {
			t.Errorf("routine registered as %q has Name %q", name, rt.Name)
		}
		if rt.StepMs <= 0 {
			t.Errorf("%q StepMs = %v, want > 0", name, rt.StepMs)
		}
		if len(rt.Motions) == 0 {
			t.Errorf("%q has no motions", name)
		}
	}
}

func TestNewRoutineRejectsBadStep(t *testing.T) {
	if _, err := newRoutine("x", 0, nil); err == nil {
		t.Error("stepMs 0 accepted")
	}
	if _, err := newRoutine("x", -5, nil); err == nil {
		t.Error("negative stepMs accepted")
	}
}

func TestNewRoutineRejectsEmptySequences(t *testing.T) {
	_, err := newRoutine("x", 100, map[Joint][]Motion{
		J_Neck: {{Axis: axisZ, Angles: nil}},
	})
	if err == nil {
		t.Error("empty angle sequence accepted")
	}
	_, err = newRoutine("x", 100, map[Joint][]Motion{J_Neck: {}})
	if err == nil {
		t.Error("empty motion list accepted")
	}
}

func TestMacarenaRightLeadsLeft(t *testing.T) {
	rt := newMacarenaRoutine()
	r := rt.Motions[J_ShoulderR][0].Angles
	l := rt.Motions[J_ShoulderL][0].Angles
	if len(r) != len(l) {
		t.Fatalf("sequence lengths differ: %d vs %d", len(r), len(l))
	}
	// The lag holds within one eight-count; the cycle seam resets both arms.
	for i := 0; i < len(r)-1; i++ {
		if l[i+1] != r[i] {
			t.Errorf("step %d: left does not trail right by one step", i)
		}
	}
}
