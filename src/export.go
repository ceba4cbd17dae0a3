package main

import (
	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
)

// exportPose writes the rig at its current pose as a glTF 2.0 node
// hierarchy: one node per segment, rest offset as translation, the live
// joint rotation as a quaternion. Viewers show it as an empty-node
// skeleton; tooling can hang meshes off the named nodes.
func exportPose(path string, root *Segment, rt *Routine, elapsedMs float32) error {
	doc := &gltf.Document{
		Asset: gltf.Asset{Version: "2.0", Generator: "dansvloer"},
	}
	rootIdx := addSegmentNode(doc, root, rt, elapsedMs)
	doc.Scenes = []*gltf.Scene{{Name: "pose", Nodes: []uint32{rootIdx}}}
	doc.Scene = gltf.Index(0)
	return gltf.Save(doc, path)
}

func addSegmentNode(doc *gltf.Document, seg *Segment, rt *Routine, elapsedMs float32) uint32 {
	q := mgl.Mat4ToQuat(seg.jointRotation(rt, elapsedMs))
	node := &gltf.Node{
		Name: seg.name,
		Translation: [3]float32{
			seg.offset.X(), seg.offset.Y(), seg.offset.Z(),
		},
		Rotation: [4]float32{
			q.X(), q.Y(), q.Z(), q.W,
		},
		Scale: [3]float32{1, 1, 1},
	}
	idx := uint32(len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, node)
	for _, c := range seg.children {
		node.Children = append(node.Children, addSegmentNode(doc, c, rt, elapsedMs))
	}
	return idx
}
