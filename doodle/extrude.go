package doodle

import "github.com/unixpickle/model3d/model3d"

// boundaryValence is the face count below which a vertex
// is on the outline of the bottom sheet.
const boundaryValence = 4

// ExtrudeSides adds a vertical wall for every edge of the
// first numBottom faces whose endpoints are both boundary
// vertices.
//
// Each wall is a Quad made of the two bottom vertices and
// two new vertices raised to the given height.
func ExtrudeSides(m *Mesh, numBottom int, height float64) {
	valence := Valence(m.Faces[:numBottom], len(m.Vertices))
	for _, f := range m.Faces[:numBottom] {
		perim := f.Perimeter()
		for i, a := range perim {
			b := perim[(i+1)%len(perim)]
			if valence[a] >= boundaryValence || valence[b] >= boundaryValence {
				continue
			}
			aTop := m.AddVertex(raise(m.Vertices[a], height))
			bTop := m.AddVertex(raise(m.Vertices[b], height))
			m.AddFace(Quad{a, b, aTop, bTop})
			m.NumSides++
		}
	}
}

// AddTopCap copies each of the first numBottom faces to
// the given height, using fresh vertices.
func AddTopCap(m *Mesh, numBottom int, height float64) {
	for _, f := range m.Faces[:numBottom] {
		indices := f.Indices()
		top := make([]int, len(indices))
		for i, idx := range indices {
			top[i] = m.AddVertex(raise(m.Vertices[idx], height))
		}
		switch f.(type) {
		case Tri:
			m.AddFace(Tri{top[0], top[1], top[2]})
		case Quad:
			m.AddFace(Quad{top[0], top[1], top[2], top[3]})
		}
		m.NumTop++
	}
}

func raise(c model3d.Coord3D, height float64) model3d.Coord3D {
	return model3d.XYZ(c.X, c.Y, height)
}
