package doodle

import (
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestVerifyRectangle(t *testing.T) {
	m := MeshFromImage(rectangleImage(), 2)
	report := Verify(m, 2)
	if report.Samples != m.NumBottom {
		t.Errorf("expected %d samples but got %d", m.NumBottom, report.Samples)
	}
	if report.Inside != report.Samples {
		t.Errorf("only %d/%d samples inside", report.Inside, report.Samples)
	}
}

func TestDuplicateSurfaceSolidOutside(t *testing.T) {
	solid := NewDuplicateSurfaceSolid(MeshFromImage(rectangleImage(), 2))
	for _, c := range []model3d.Coord3D{
		model3d.XYZ(3.5, 3.5, 3),
		model3d.XYZ(3.5, 3.5, -1),
		model3d.XYZ(-1, 3.5, 1),
		model3d.XYZ(1.2, 1.2, 1),
	} {
		if solid.Contains(c) {
			t.Errorf("unexpected containment of %v", c)
		}
	}
	if !solid.Contains(model3d.XYZ(3.5, 3.5, 1)) {
		t.Error("expected the center to be inside")
	}
}

func TestVerifyEmpty(t *testing.T) {
	report := Verify(MeshFromImage(NewBinaryImage(4, 4), 1), 1)
	if report.Samples != 0 || report.Inside != 0 {
		t.Errorf("unexpected report %+v", report)
	}
}

func TestVerifyThinStroke(t *testing.T) {
	// Every vertex of a two pixel wide stroke is on the
	// boundary, so interior edges get a wall from each side.
	img := imageFromRows(
		"........",
		".######.",
		".######.",
		"........",
	)
	m := MeshFromImage(img, 2)
	report := Verify(m, 2)
	if report.Samples != 10 {
		t.Errorf("expected 10 samples but got %d", report.Samples)
	}
	if report.Inside != report.Samples {
		t.Errorf("only %d/%d samples inside", report.Inside, report.Samples)
	}
}

func TestUnpairedTrianglesCancelsWalls(t *testing.T) {
	m := NewMesh()
	for _, c := range []model3d.Coord3D{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(1, 0, 0),
		model3d.XYZ(0, 0, 1),
		model3d.XYZ(1, 0, 1),
	} {
		m.AddVertex(c)
	}
	m.AddFace(Quad{0, 1, 2, 3})
	m.AddFace(Quad{1, 0, 3, 2})
	if n := len(unpairedTriangles(m)); n != 0 {
		t.Errorf("expected paired walls to cancel, got %d triangles", n)
	}

	m.AddFace(Quad{0, 1, 2, 3})
	if n := len(unpairedTriangles(m)); n != 2 {
		t.Errorf("expected one remaining wall, got %d triangles", n)
	}
}
