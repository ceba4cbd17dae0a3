package main

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
)

func TestExportPoseWritesNodeHierarchy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pose.gltf")
	rig := newBodyRig()
	rt, err := newRoutine("lift", 1000, map[Joint][]Motion{
		J_ShoulderR: {{Axis: axisX, Angles: []float32{-90}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := exportPose(path, rig, rt, 0); err != nil {
		t.Fatal(err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Nodes) != 15 {
		t.Fatalf("node count = %d, want 15", len(doc.Nodes))
	}
	if len(doc.Scenes) != 1 || len(doc.Scenes[0].Nodes) != 1 {
		t.Fatal("expected a single scene rooted in one node")
	}
	root := doc.Nodes[doc.Scenes[0].Nodes[0]]
	if root.Name != "torso" {
		t.Errorf("root node = %q, want torso", root.Name)
	}
	if len(root.Children) != 4 {
		t.Errorf("root children = %d, want head, both arms and abdomen", len(root.Children))
	}

	var upperArmR *gltf.Node
	for _, n := range doc.Nodes {
		if n.Name == "upperArmR" {
			upperArmR = n
		}
	}
	if upperArmR == nil {
		t.Fatal("upperArmR node missing")
	}
	// -90 degrees about X: |x| and |w| are both cos(45°); either quaternion
	// sign is valid.
	half := math.Sqrt(2) / 2
	if math.Abs(math.Abs(float64(upperArmR.Rotation[0]))-half) > 1e-3 ||
		math.Abs(math.Abs(float64(upperArmR.Rotation[3]))-half) > 1e-3 {
		t.Errorf("upperArmR rotation = %v, want a 90 degree X rotation", upperArmR.Rotation)
	}
}
