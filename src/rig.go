package main

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

type ShapeKind int32

const (
	ShapeSphere ShapeKind = iota
	ShapeCapsule
)

// Joint names a rotation point in the rig. Routines attach motions to these;
// segments without an articulated joint use J_None.
type Joint int32

const (
	J_None Joint = iota
	J_Neck
	J_Spine
	J_ShoulderL
	J_ShoulderR
	J_ElbowL
	J_ElbowR
	J_WristL
	J_WristR
	J_HipL
	J_HipR
	J_KneeL
	J_KneeR
	J_AnkleL
	J_AnkleR
)

var jointNames = map[Joint]string{
	J_None: "none", J_Neck: "neck", J_Spine: "spine",
	J_ShoulderL: "shoulderL", J_ShoulderR: "shoulderR",
	J_ElbowL: "elbowL", J_ElbowR: "elbowR",
	J_WristL: "wristL", J_WristR: "wristR",
	J_HipL: "hipL", J_HipR: "hipR",
	J_KneeL: "kneeL", J_KneeR: "kneeR",
	J_AnkleL: "ankleL", J_AnkleR: "ankleR",
}

func (j Joint) String() string { return jointNames[j] }

type Material struct {
	Color     [3]float32
	Roughness float32
	Metallic  bool
}

var (
	matSkin  = Material{Color: [3]float32{0.94, 0.76, 0.62}, Roughness: 0.8}
	matShirt = Material{Color: [3]float32{0.16, 0.42, 0.78}, Roughness: 0.6}
	matPants = Material{Color: [3]float32{0.22, 0.22, 0.28}, Roughness: 0.7}
	matShoes = Material{Color: [3]float32{0.85, 0.85, 0.88}, Roughness: 0.3, Metallic: true}
)

// Figure dimensions. Capsule "length" is the cylindrical part; the full
// extent along the axis is length + 2*radius. Offsets below are derived
// from these so that chained segments stay attached.
const (
	torsoRadius    float32 = 0.30
	torsoLen       float32 = 0.55
	abdRadius      float32 = 0.26
	abdLen         float32 = 0.25
	headRadius     float32 = 0.24
	upperArmRadius float32 = 0.10
	upperArmLen    float32 = 0.26
	lowerArmRadius float32 = 0.085
	lowerArmLen    float32 = 0.24
	handRadius     float32 = 0.10
	upperLegRadius float32 = 0.13
	upperLegLen    float32 = 0.34
	lowerLegRadius float32 = 0.11
	lowerLegLen    float32 = 0.32
	footRadius     float32 = 0.09
	footLen        float32 = 0.16
)

// Segment is one rigid piece of the rig. Its frame sits at the proximal
// joint; motions rotate the frame there, the solid itself is drawn at
// center relative to the frame, and children attach relative to the frame
// as well so parent rotations carry the whole chain.
type Segment struct {
	name     string
	joint    Joint
	shape    ShapeKind
	radius   float32
	length   float32
	mat      Material
	offset   mgl.Vec3 // rest offset of this frame from the parent frame
	center   mgl.Vec3 // solid center relative to this frame
	tilt     mgl.Mat4 // constant solid orientation relative to this frame
	children []*Segment
}

func sphereSeg(name string, joint Joint, r float32, mat Material, offset, center mgl.Vec3) *Segment {
	return &Segment{name: name, joint: joint, shape: ShapeSphere,
		radius: r, mat: mat, offset: offset, center: center, tilt: mgl.Ident4()}
}

func capsuleSeg(name string, joint Joint, r, l float32, mat Material, offset, center mgl.Vec3) *Segment {
	return &Segment{name: name, joint: joint, shape: ShapeCapsule,
		radius: r, length: l, mat: mat, offset: offset, center: center, tilt: mgl.Ident4()}
}

func (seg *Segment) add(children ...*Segment) *Segment {
	seg.children = append(seg.children, children...)
	return seg
}

// armChain builds one arm hanging from the shoulder. side is -1 for left,
// +1 for right; only the lateral shoulder offset differs between sides.
func armChain(side float32, shoulder, elbow, wrist Joint, suffix string) *Segment {
	upperSpan := upperArmLen + 2*upperArmRadius
	lowerSpan := lowerArmLen + 2*lowerArmRadius
	hand := sphereSeg("hand"+suffix, wrist, handRadius, matSkin,
		mgl.Vec3{0, -lowerSpan, 0}, mgl.Vec3{0, -handRadius * 0.8, 0})
	lower := capsuleSeg("lowerArm"+suffix, elbow, lowerArmRadius, lowerArmLen, matSkin,
		mgl.Vec3{0, -upperSpan, 0}, mgl.Vec3{0, -(lowerArmRadius + lowerArmLen/2), 0})
	upper := capsuleSeg("upperArm"+suffix, shoulder, upperArmRadius, upperArmLen, matShirt,
		mgl.Vec3{side * (torsoRadius + upperArmRadius), torsoLen / 2, 0},
		mgl.Vec3{0, -(upperArmRadius + upperArmLen/2), 0})
	return upper.add(lower.add(hand))
}

// legChain builds one leg hanging from the hip, relative to the abdomen frame.
func legChain(side float32, hip, knee, ankle Joint, suffix string) *Segment {
	upperSpan := upperLegLen + 2*upperLegRadius
	lowerSpan := lowerLegLen + 2*lowerLegRadius
	// Foot capsule lies flat, pointing forward.
	foot := capsuleSeg("foot"+suffix, ankle, footRadius, footLen, matShoes,
		mgl.Vec3{0, -lowerSpan, 0}, mgl.Vec3{0, -footRadius, footLen / 2})
	foot.tilt = mgl.HomogRotate3DX(mgl.DegToRad(90))
	lower := capsuleSeg("lowerLeg"+suffix, knee, lowerLegRadius, lowerLegLen, matPants,
		mgl.Vec3{0, -upperSpan, 0}, mgl.Vec3{0, -(lowerLegRadius + lowerLegLen/2), 0})
	upper := capsuleSeg("upperLeg"+suffix, hip, upperLegRadius, upperLegLen, matPants,
		mgl.Vec3{side * (abdRadius - upperLegRadius), -(abdLen + 2*abdRadius), 0},
		mgl.Vec3{0, -(upperLegRadius + upperLegLen/2), 0})
	return upper.add(lower.add(foot))
}

// newBodyRig builds the fixed humanoid tree. The topology never changes;
// routines only rotate joints.
func newBodyRig() *Segment {
	head := sphereSeg("head", J_Neck, headRadius, matSkin,
		mgl.Vec3{0, torsoLen/2 + torsoRadius*0.6, 0}, mgl.Vec3{0, headRadius * 0.9, 0})
	abdomen := capsuleSeg("abdomen", J_Spine, abdRadius, abdLen, matPants,
		mgl.Vec3{0, -torsoLen / 2, 0}, mgl.Vec3{0, -(abdRadius + abdLen/2), 0})
	abdomen.add(
		legChain(-1, J_HipL, J_KneeL, J_AnkleL, "L"),
		legChain(+1, J_HipR, J_KneeR, J_AnkleR, "R"),
	)
	torso := capsuleSeg("torso", J_None, torsoRadius, torsoLen, matShirt,
		mgl.Vec3{}, mgl.Vec3{})
	return torso.add(
		head,
		armChain(-1, J_ShoulderL, J_ElbowL, J_WristL, "L"),
		armChain(+1, J_ShoulderR, J_ElbowR, J_WristR, "R"),
		abdomen,
	)
}

// PlacedSolid is one positioned, oriented primitive ready for the renderer.
type PlacedSolid struct {
	shape  ShapeKind
	radius float32
	length float32
	mat    Material
	trans  mgl.Mat4
}

// jointRotation composes this segment's stacked motions at elapsedMs.
// Order matters; routines declare it and we preserve it.
func (seg *Segment) jointRotation(rt *Routine, elapsedMs float32) mgl.Mat4 {
	rot := mgl.Ident4()
	if rt == nil || seg.joint == J_None {
		return rot
	}
	for _, m := range rt.Motions[seg.joint] {
		rot = rot.Mul4(m.rotationAt(elapsedMs, rt.StepMs))
	}
	return rot
}

func (seg *Segment) appendPose(parent mgl.Mat4, rt *Routine, elapsedMs float32, out []PlacedSolid) []PlacedSolid {
	frame := parent.
		Mul4(mgl.Translate3D(seg.offset.X(), seg.offset.Y(), seg.offset.Z())).
		Mul4(seg.jointRotation(rt, elapsedMs))
	solid := frame.
		Mul4(mgl.Translate3D(seg.center.X(), seg.center.Y(), seg.center.Z())).
		Mul4(seg.tilt)
	out = append(out, PlacedSolid{seg.shape, seg.radius, seg.length, seg.mat, solid})
	for _, c := range seg.children {
		out = c.appendPose(frame, rt, elapsedMs, out)
	}
	return out
}

// poseRig walks the rig from base outward and returns the scene solids for
// the given routine at elapsedMs. rt may be nil for the rest pose.
func poseRig(root *Segment, base mgl.Mat4, rt *Routine, elapsedMs float32) []PlacedSolid {
	return root.appendPose(base, rt, elapsedMs, make([]PlacedSolid, 0, 16))
}

// findSegment returns the named segment, depth first.
func (seg *Segment) findSegment(name string) *Segment {
	if seg.name == name {
		return seg
	}
	for _, c := range seg.children {
		if s := c.findSegment(name); s != nil {
			return s
		}
	}
	return nil
}
