// Package doodle turns thresholded doodle images into
// extruded, printable meshes.
package doodle

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// ErrMalformedGeometry is returned when a face references
// a vertex that is not in its mesh.
var ErrMalformedGeometry = errors.New("malformed geometry")

// A Face is a polygon referencing vertices of a Mesh by
// index. It is either a Tri or a Quad.
type Face interface {
	// Indices returns the vertex indices in storage order.
	Indices() []int

	// Perimeter returns the vertex indices in the order
	// they are met walking around the polygon.
	Perimeter() []int

	// Split returns the triangles written to STL files.
	Split() [][3]int
}

// A Tri is a triangular face.
type Tri [3]int

func (t Tri) Indices() []int {
	return t[:]
}

func (t Tri) Perimeter() []int {
	return t[:]
}

func (t Tri) Split() [][3]int {
	return [][3]int{t}
}

// A Quad is a four sided face stored as two rows of two
// corners: the first edge (0, 1) and the opposite edge
// (2, 3) run in the same direction.
//
// Walking around a Quad visits 0, 1, 3, 2.
type Quad [4]int

func (q Quad) Indices() []int {
	return q[:]
}

func (q Quad) Perimeter() []int {
	return []int{q[0], q[1], q[3], q[2]}
}

// Split divides the quad along its (1, 2) diagonal.
func (q Quad) Split() [][3]int {
	return [][3]int{
		{q[0], q[1], q[2]},
		{q[2], q[3], q[1]},
	}
}

// A Mesh is an arena of vertices with faces referencing
// them by index.
//
// Bottom, side, and top faces are appended in that order
// and never share vertices across batches.
type Mesh struct {
	Vertices []model3d.Coord3D
	Faces    []Face

	// NumBottom is the number of bottom faces, which are
	// always the first faces in Faces.
	NumBottom int
	NumSides  int
	NumTop    int
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(c model3d.Coord3D) int {
	m.Vertices = append(m.Vertices, c)
	return len(m.Vertices) - 1
}

// AddFace appends a face.
func (m *Mesh) AddFace(f Face) {
	m.Faces = append(m.Faces, f)
}

// Validate checks that every face only references
// vertices in the mesh.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, idx := range f.Indices() {
			if idx < 0 || idx >= len(m.Vertices) {
				return errors.Wrapf(ErrMalformedGeometry, "face %d: index %d out of range [0, %d)",
					i, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// Triangles splits every face into triangles, in the same
// order the STL emitter uses.
func (m *Mesh) Triangles() []*model3d.Triangle {
	var res []*model3d.Triangle
	for _, f := range m.Faces {
		for _, t := range f.Split() {
			res = append(res, &model3d.Triangle{
				m.Vertices[t[0]],
				m.Vertices[t[1]],
				m.Vertices[t[2]],
			})
		}
	}
	return res
}
