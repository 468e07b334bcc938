package doodle

import (
	"sort"

	"github.com/unixpickle/model3d/model3d"
)

// DuplicateSurfaceSolid is a Solid built from a mesh whose
// batches overlap: the top cap, walls, and bottom never
// share vertices and walls may be emitted twice.
//
// Faces covering the same polygon cancel in pairs, so two
// walls on an interior edge leave no surface behind.
type DuplicateSurfaceSolid struct {
	model3d.Collider
}

// NewDuplicateSurfaceSolid creates a solid for the mesh.
func NewDuplicateSurfaceSolid(m *Mesh) *DuplicateSurfaceSolid {
	mesh := model3d.NewMeshTriangles(unpairedTriangles(m))
	return &DuplicateSurfaceSolid{Collider: model3d.MeshToCollider(mesh)}
}

func (d *DuplicateSurfaceSolid) Contains(c model3d.Coord3D) bool {
	if !model3d.InBounds(d, c) {
		return false
	}

	// Directions are arbitrary but avoid grid axes, so
	// rays rarely pass through shared edges.
	directions := []model3d.Coord3D{
		{X: -0.40475415, Y: 0.86174632, Z: -0.30588783},
		{X: -0.81025101, Y: 0.38452447, Z: -0.44230559},
		{X: -0.09226702, Y: -0.74875317, Z: -0.65639584},
		{X: 0.67074042, Y: -0.60098173, Z: 0.43465877},
	}
	for _, dir := range directions {
		if d.crossings(c, dir)%2 == 0 {
			return false
		}
	}
	return true
}

// crossings counts the distinct distances at which a ray
// hits the surface. A ray through an edge shared by two
// triangles hits both at the same distance.
func (d *DuplicateSurfaceSolid) crossings(origin, direction model3d.Coord3D) int {
	var scales []float64
	d.Collider.RayCollisions(&model3d.Ray{
		Origin:    origin,
		Direction: direction,
	}, func(r model3d.RayCollision) {
		scales = append(scales, r.Scale)
	})
	sort.Float64s(scales)

	epsilon := d.Max().Sub(d.Min()).Norm() * 1e-8
	var count int
	for i, s := range scales {
		if i == 0 || s-scales[i-1] > epsilon {
			count++
		}
	}
	return count
}

type faceKey struct {
	numCorners int
	corners    [4]model3d.Coord3D
}

func (m *Mesh) faceKey(f Face) faceKey {
	indices := f.Indices()
	key := faceKey{numCorners: len(indices)}
	for i, idx := range indices {
		key.corners[i] = m.Vertices[idx]
	}
	corners := key.corners[:len(indices)]
	sort.Slice(corners, func(i, j int) bool {
		a, b := corners[i], corners[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return key
}

// unpairedTriangles triangulates one copy of every face
// whose corners appear an odd number of times in the mesh.
//
// Faces are matched by their corner coordinates, since two
// walls on one edge split along different diagonals.
func unpairedTriangles(m *Mesh) []*model3d.Triangle {
	keys := make([]faceKey, len(m.Faces))
	counts := map[faceKey]int{}
	for i, f := range m.Faces {
		keys[i] = m.faceKey(f)
		counts[keys[i]]++
	}
	var res []*model3d.Triangle
	added := map[faceKey]bool{}
	for i, f := range m.Faces {
		key := keys[i]
		if counts[key]%2 == 0 || added[key] {
			continue
		}
		added[key] = true
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

// A Report summarizes how well an extruded mesh encloses
// its bottom faces.
type Report struct {
	Samples int
	Inside  int
}

// Verify checks whether the centroid of every bottom face,
// lifted to half the extrusion height, lies inside the
// solid described by the mesh.
func Verify(m *Mesh, height float64) Report {
	var report Report
	if m.NumBottom == 0 {
		return report
	}
	solid := NewDuplicateSurfaceSolid(m)
	for _, f := range m.Faces[:m.NumBottom] {
		var center model3d.Coord3D
		indices := f.Indices()
		for _, idx := range indices {
			center = center.Add(m.Vertices[idx])
		}
		center = center.Scale(1 / float64(len(indices)))
		center.Z = height / 2
		report.Samples++
		if solid.Contains(center) {
			report.Inside++
		}
	}
	return report
}
