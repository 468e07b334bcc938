package doodle

// gapThreshold is the smallest horizontal distance between
// consecutive row vertices that counts as a gap.
const gapThreshold = 1.01

// Triangulate stitches each grid row to the row below it,
// adding the resulting bottom faces to m.
//
// For every consecutive pair of vertices in a row, a quad
// is used when all four corners exist and a triangle when
// only three do. Pairs separated by a gap are never joined
// to each other, only to the row below.
func Triangulate(m *Mesh, rows []GridRow) {
	start := len(m.Faces)
	for y := 0; y+1 < len(rows); y++ {
		row, nextRow := rows[y], rows[y+1]
		for i := 0; i+1 < len(row); i++ {
			if f := stitch(row[i], row[i+1], nextRow); f != nil {
				m.AddFace(f)
			}
		}
	}
	m.NumBottom += len(m.Faces) - start
}

func stitch(v, next GridVertex, nextRow GridRow) Face {
	below, hasBelow := nextRow.Find(v.X)
	belowNext, hasBelowNext := nextRow.Find(v.X + 1)

	if float64(next.X-v.X) >= gapThreshold {
		if hasBelow && hasBelowNext {
			return Tri{v.Index, belowNext.Index, below.Index}
		}
		return nil
	}

	switch {
	case hasBelow && hasBelowNext:
		return Quad{v.Index, next.Index, below.Index, belowNext.Index}
	case hasBelow:
		return Tri{v.Index, next.Index, below.Index}
	case hasBelowNext:
		return Tri{v.Index, next.Index, belowNext.Index}
	}
	return nil
}

// Valence counts, for every vertex, how many of the given
// faces reference it.
func Valence(faces []Face, numVertices int) []int {
	counts := make([]int, numVertices)
	for _, f := range faces {
		for _, idx := range f.Indices() {
			counts[idx]++
		}
	}
	return counts
}
