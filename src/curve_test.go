package main

import (
	"math"
	"testing"
)

func TestBezierAtKeyframes(t *testing.T) {
	seq := []float32{10, -30, 55, 0}
	for i := range seq {
		if got := bezierAt(i, 0, seq); got != seq[i] {
			t.Errorf("bezierAt(%d, 0) = %v, want %v", i, got, seq[i])
		}
	}
}

func TestBezierAtApproachesNextKeyframe(t *testing.T) {
	seq := []float32{0, 100}
	got := bezierAt(0, 0.9999, seq)
	if math.Abs(float64(got-100)) > 0.5 {
		t.Errorf("bezierAt(0, 0.9999) = %v, want ~100", got)
	}
}

func TestBezierAtAcceleratesEarly(t *testing.T) {
	// The extrapolated control points front-load the transition: the curve
	// runs well ahead of linear interpolation early on and eases in late.
	seq := []float32{0, 100}
	if got := bezierAt(0, 0.1, seq); got < 20 {
		t.Errorf("bezierAt(0, 0.1) = %v, want well above the linear 10", got)
	}
	if got := bezierAt(0, 0.9, seq); got <= 90 {
		t.Errorf("bezierAt(0, 0.9) = %v, want ahead of the linear 90", got)
	}
}

func TestBezierAtWrapsModular(t *testing.T) {
	seq := []float32{1, 2, 3}
	cases := []struct {
		idx  int
		want float32
	}{
		{3, 1}, {4, 2}, {-1, 3}, {-3, 1}, {-4, 3},
	}
	for _, c := range cases {
		if got := bezierAt(c.idx, 0, seq); got != c.want {
			t.Errorf("bezierAt(%d, 0) = %v, want %v", c.idx, got, c.want)
		}
	}
}

func TestBezierAtSingleKeyframe(t *testing.T) {
	seq := []float32{42}
	for _, tt := range []float32{0, 0.25, 0.5, 0.99} {
		if got := bezierAt(0, tt, seq); math.Abs(float64(got-42)) > 1e-4 {
			t.Errorf("bezierAt(0, %v) = %v, want 42", tt, got)
		}
	}
}

func TestMotionAngleAtStepBoundaries(t *testing.T) {
	m := Motion{Axis: axisZ, Angles: []float32{40, -40}}
	const step = 280
	cases := []struct {
		elapsed float32
		want    float32
	}{
		{0, 40},
		{step, -40},
		{2 * step, 40},
		{7 * step, -40},
	}
	for _, c := range cases {
		if got := m.angleAt(c.elapsed, step); math.Abs(float64(got-c.want)) > 1e-3 {
			t.Errorf("angleAt(%v) = %v, want %v", c.elapsed, got, c.want)
		}
	}
}
