package main

import (
	"math"
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// solidIndex maps segment names to their position in the poseRig output,
// which walks the tree depth first.
func solidIndex(root *Segment) map[string]int {
	idx := make(map[string]int)
	var walk func(seg *Segment)
	walk = func(seg *Segment) {
		idx[seg.name] = len(idx)
		for _, c := range seg.children {
			walk(c)
		}
	}
	walk(root)
	return idx
}

func solidPos(s PlacedSolid) mgl.Vec3 {
	return mgl.Vec3{s.trans[12], s.trans[13], s.trans[14]}
}

func TestRigSolidCount(t *testing.T) {
	rig := newBodyRig()
	solids := poseRig(rig, mgl.Ident4(), nil, 0)
	// torso, head, abdomen, 2 arms and 2 legs of 3 pieces each
	const want = 15
	if len(solids) != want {
		t.Errorf("solid count = %d, want %d", len(solids), want)
	}
	idx := solidIndex(rig)
	if len(idx) != want {
		t.Errorf("segment count = %d, want %d", len(idx), want)
	}
}

func TestRigRestPoseIsMirrored(t *testing.T) {
	rig := newBodyRig()
	solids := poseRig(rig, mgl.Ident4(), nil, 0)
	idx := solidIndex(rig)
	pairs := [][2]string{
		{"upperArmL", "upperArmR"},
		{"handL", "handR"},
		{"upperLegL", "upperLegR"},
		{"footL", "footR"},
	}
	for _, p := range pairs {
		l, r := solidPos(solids[idx[p[0]]]), solidPos(solids[idx[p[1]]])
		if l.X() >= 0 || r.X() <= 0 {
			t.Errorf("%v/%v X = %v/%v, want left negative, right positive", p[0], p[1], l.X(), r.X())
		}
		if math.Abs(float64(l.X()+r.X())) > 1e-5 || math.Abs(float64(l.Y()-r.Y())) > 1e-5 {
			t.Errorf("%v/%v not mirrored: %v vs %v", p[0], p[1], l, r)
		}
	}
}

func TestRigShoulderRotationCarriesArm(t *testing.T) {
	rig := newBodyRig()
	rt, err := newRoutine("lift", 1000, map[Joint][]Motion{
		J_ShoulderR: {{Axis: axisX, Angles: []float32{-90}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	idx := solidIndex(rig)
	rest := poseRig(rig, mgl.Ident4(), nil, 0)
	posed := poseRig(rig, mgl.Ident4(), rt, 0)

	// The whole right arm chain moves with the shoulder.
	for _, name := range []string{"upperArmR", "lowerArmR", "handR"} {
		d := solidPos(posed[idx[name]]).Sub(solidPos(rest[idx[name]])).Len()
		if d < 0.05 {
			t.Errorf("%v barely moved (%v) under a 90 degree shoulder lift", name, d)
		}
	}
	// Joints outside the chain stay put.
	for _, name := range []string{"torso", "head", "handL", "footR"} {
		d := solidPos(posed[idx[name]]).Sub(solidPos(rest[idx[name]])).Len()
		if d > 1e-5 {
			t.Errorf("%v moved (%v) but is not on the rotated chain", name, d)
		}
	}

	// -90 degrees about X swings the arm from hanging down to pointing
	// forward, so the hand gains Z and rises.
	restHand, posedHand := solidPos(rest[idx["handR"]]), solidPos(posed[idx["handR"]])
	if posedHand.Z() <= restHand.Z() || posedHand.Y() <= restHand.Y() {
		t.Errorf("hand went from %v to %v, want it forward and up", restHand, posedHand)
	}
}

func TestRigBaseTransformShiftsEverything(t *testing.T) {
	rig := newBodyRig()
	base := mgl.Translate3D(0, rigBaseY, 0)
	origin := poseRig(rig, mgl.Ident4(), nil, 0)
	lifted := poseRig(rig, base, nil, 0)
	for i := range origin {
		d := solidPos(lifted[i]).Sub(solidPos(origin[i]))
		if math.Abs(float64(d.Y()-rigBaseY)) > 1e-5 || math.Abs(float64(d.X())) > 1e-5 {
			t.Errorf("solid %d shifted by %v, want {0 %v 0}", i, d, float32(rigBaseY))
		}
	}
}

func TestRigChainOffsetsSpanTheParentSolid(t *testing.T) {
	rig := newBodyRig()
	cases := []struct {
		name string
		want float32
	}{
		{"lowerArmR", -(upperArmLen + 2*upperArmRadius)},
		{"handR", -(lowerArmLen + 2*lowerArmRadius)},
		{"lowerLegL", -(upperLegLen + 2*upperLegRadius)},
		{"footL", -(lowerLegLen + 2*lowerLegRadius)},
	}
	for _, c := range cases {
		seg := rig.findSegment(c.name)
		if seg == nil {
			t.Fatalf("segment %q missing", c.name)
		}
		if got := seg.offset.Y(); got != c.want {
			t.Errorf("%v offset Y = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFindSegment(t *testing.T) {
	rig := newBodyRig()
	if seg := rig.findSegment("handR"); seg == nil || seg.joint != J_WristR {
		t.Errorf("findSegment(handR) = %+v", seg)
	}
	if seg := rig.findSegment("tail"); seg != nil {
		t.Errorf("findSegment(tail) = %+v, want nil", seg)
	}
}
