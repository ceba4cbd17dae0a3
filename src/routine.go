package main

import (
	"fmt"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// Routine is one named dance: a step duration and the motion tracks per
// joint. Routines are built once and never mutated during playback.
type Routine struct {
	Name    string
	StepMs  float32
	Motions map[Joint][]Motion
}

var (
	axisX = mgl.Vec3{1, 0, 0}
	axisY = mgl.Vec3{0, 1, 0}
	axisZ = mgl.Vec3{0, 0, 1}
)

// newRoutine validates the motion tables. An empty angle sequence is a
// registry programming error, caught here rather than at evaluation time.
func newRoutine(name string, stepMs float32, motions map[Joint][]Motion) (*Routine, error) {
	if stepMs <= 0 {
		return nil, fmt.Errorf("routine %v: step duration must be positive, got %v", name, stepMs)
	}
	for j, ms := range motions {
		if len(ms) == 0 {
			return nil, fmt.Errorf("routine %v: joint %v has no motions", name, j)
		}
		for i, m := range ms {
			if len(m.Angles) == 0 {
				return nil, fmt.Errorf("routine %v: joint %v motion %v has an empty angle sequence", name, j, i)
			}
		}
	}
	return &Routine{Name: name, StepMs: stepMs, Motions: motions}, nil
}

func mustRoutine(name string, stepMs float32, motions map[Joint][]Motion) *Routine {
	rt, err := newRoutine(name, stepMs, motions)
	chk(err)
	return rt
}

// newFlossRoutine: both arms swing as stiff pendulums while the hips sway
// the other way. Angle values are tuned by eye.
func newFlossRoutine() *Routine {
	return mustRoutine("floss", 280, map[Joint][]Motion{
		J_ShoulderL: {
			{Axis: axisZ, Angles: []float32{40, -40}},
			{Axis: axisX, Angles: []float32{16, -16}},
		},
		J_ShoulderR: {
			{Axis: axisZ, Angles: []float32{40, -40}},
			{Axis: axisX, Angles: []float32{-16, 16}},
		},
		J_Spine: {
			{Axis: axisZ, Angles: []float32{-12, 12}},
		},
		J_Neck: {
			{Axis: axisZ, Angles: []float32{6, -6}},
		},
	})
}

// newMacarenaRoutine: eight-count sequence, right side leading each figure
// by one step, finished with a hip wiggle.
func newMacarenaRoutine() *Routine {
	return mustRoutine("macarena", 700, map[Joint][]Motion{
		J_ShoulderR: {
			{Axis: axisX, Angles: []float32{0, -90, -90, -90, -130, -130, -30, -30}},
		},
		J_ShoulderL: {
			{Axis: axisX, Angles: []float32{0, 0, -90, -90, -90, -130, -130, -30}},
		},
		J_ElbowR: {
			{Axis: axisX, Angles: []float32{0, 0, 0, 0, -110, -110, -60, -60}},
		},
		J_ElbowL: {
			{Axis: axisX, Angles: []float32{0, 0, 0, 0, 0, -110, -110, -60}},
		},
		J_WristR: {
			{Axis: axisY, Angles: []float32{0, 0, 180, 180, 0, 0, 0, 0}},
		},
		J_WristL: {
			{Axis: axisY, Angles: []float32{0, 0, 0, 180, 180, 0, 0, 0}},
		},
		J_Spine: {
			{Axis: axisZ, Angles: []float32{0, 0, 0, 0, 0, 0, -14, 14}},
			{Axis: axisY, Angles: []float32{0, 0, 0, 0, 0, 0, 10, -10}},
		},
	})
}

// newRoutineRegistry holds every dance a training script may reference.
func newRoutineRegistry() map[string]*Routine {
	reg := make(map[string]*Routine)
	for _, rt := range []*Routine{newFlossRoutine(), newMacarenaRoutine()} {
		reg[rt.Name] = rt
	}
	return reg
}
