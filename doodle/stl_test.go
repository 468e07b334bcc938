package doodle

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

func TestWriteSTLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, MeshFromImage(NewBinaryImage(4, 4), 1)); err != nil {
		t.Fatal(err)
	}
	expected := "solid doodle\nendsolid doodle\n"
	if buf.String() != expected {
		t.Errorf("expected %q but got %q", expected, buf.String())
	}
}

func TestWriteSTLQuadSplit(t *testing.T) {
	m := NewMesh()
	for _, c := range []model3d.Coord3D{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(1, 0, 0),
		model3d.XYZ(0, 1, 0),
		model3d.XYZ(1, 1, 0),
	} {
		m.AddVertex(c)
	}
	m.AddFace(Quad{0, 1, 2, 3})
	m.AddFace(Tri{3, 2, 0})

	var buf bytes.Buffer
	if err := WriteSTL(&buf, m); err != nil {
		t.Fatal(err)
	}
	var vertices []string
	for _, line := range strings.Split(buf.String(), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "vertex ") {
			vertices = append(vertices, line)
		}
	}
	expected := []string{
		"vertex 0.000000 0.000000 0.000000",
		"vertex 1.000000 0.000000 0.000000",
		"vertex 0.000000 1.000000 0.000000",

		"vertex 0.000000 1.000000 0.000000",
		"vertex 1.000000 1.000000 0.000000",
		"vertex 1.000000 0.000000 0.000000",

		"vertex 1.000000 1.000000 0.000000",
		"vertex 0.000000 1.000000 0.000000",
		"vertex 0.000000 0.000000 0.000000",
	}
	if len(vertices) != len(expected) {
		t.Fatalf("expected %d vertex lines but got %d", len(expected), len(vertices))
	}
	for i, v := range expected {
		if vertices[i] != v {
			t.Errorf("line %d: expected %q but got %q", i, v, vertices[i])
		}
	}
	if n := strings.Count(buf.String(), "facet normal 0 0 0\n"); n != 3 {
		t.Errorf("expected 3 facets but got %d", n)
	}
	if !strings.HasPrefix(buf.String(), "solid doodle\n") ||
		!strings.HasSuffix(buf.String(), "endsolid doodle\n") {
		t.Error("missing solid header or footer")
	}
}

func TestSaveSTLDeterministic(t *testing.T) {
	dir := t.TempDir()
	img := rectangleImage()
	var outputs [][]byte
	for i := 0; i < 2; i++ {
		path := filepath.Join(dir, "out.stl")
		if err := SaveSTL(path, MeshFromImage(img, 2)); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		outputs = append(outputs, data)
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Error("repeated conversions produced different files")
	}
}

func TestSaveSTLUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.stl")
	if err := SaveSTL(path, MeshFromImage(rectangleImage(), 1)); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestSaveSTLMalformed(t *testing.T) {
	m := NewMesh()
	m.AddVertex(model3d.XYZ(0, 0, 0))
	m.AddVertex(model3d.XYZ(1, 0, 0))
	m.AddVertex(model3d.XYZ(0, 1, 0))
	m.AddFace(Tri{0, 1, 5})

	path := filepath.Join(t.TempDir(), "out.stl")
	err := SaveSTL(path, m)
	if errors.Cause(err) != ErrMalformedGeometry {
		t.Errorf("expected malformed geometry error but got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("output file should not exist")
	}
}

func TestSaveBinarySTL(t *testing.T) {
	m := MeshFromImage(rectangleImage(), 2)
	path := filepath.Join(t.TempDir(), "out.stl")
	if err := SaveBinarySTL(path, m); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := int64(84 + 50*len(m.Triangles()))
	if info.Size() != expected {
		t.Errorf("expected %d bytes but got %d", expected, info.Size())
	}
}
