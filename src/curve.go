package main

import (
	"math"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// bezierAt interpolates between two consecutive entries of a cyclic angle
// sequence. idx selects the starting keyframe (modular, negative allowed)
// and t in [0,1) is the progress towards the next one. The control points
// extrapolate beyond the endpoints on purpose; the 1.05 and 0.75 factors
// are tuned by eye and must not be "corrected".
func bezierAt(idx int, t float32, seq []float32) float32 {
	n := len(seq)
	i := ((idx % n) + n) % n
	p0 := seq[i]
	p3 := seq[(i+1)%n]
	p1 := p0 + 1.05*(p3-p0)
	p2 := p0 + 0.75*(p3-p0)
	u := 1 - t
	return p0*u*u*u + 3*p1*u*u*t + 3*p2*u*t*t + p3*t*t*t
}

// Motion is one cyclic angle track around a fixed axis. A routine may stack
// several motions on the same joint; they compose in declaration order.
type Motion struct {
	Axis   mgl.Vec3
	Angles []float32 // degrees, wraps after the last entry
}

// angleAt returns the interpolated angle after elapsed milliseconds, with
// stepMs per keyframe transition.
func (m Motion) angleAt(elapsedMs, stepMs float32) float32 {
	progress := float64(elapsedMs / stepMs)
	idx := math.Floor(progress)
	return bezierAt(int(idx), float32(progress-idx), m.Angles)
}

// rotationAt returns the motion's rotation matrix after elapsed milliseconds.
func (m Motion) rotationAt(elapsedMs, stepMs float32) mgl.Mat4 {
	return mgl.HomogRotate3D(mgl.DegToRad(m.angleAt(elapsedMs, stepMs)), m.Axis)
}
