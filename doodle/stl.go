package doodle

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// SolidName is the name written in ASCII STL headers.
const SolidName = "doodle"

// WriteSTL encodes the mesh as an ASCII STL file.
//
// Normals are always written as zero vectors.
func WriteSTL(w io.Writer, m *Mesh) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "write STL")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", SolidName)
	for _, f := range m.Faces {
		for _, t := range f.Split() {
			bw.WriteString("facet normal 0 0 0\n")
			bw.WriteString("  outer loop\n")
			for _, idx := range t {
				c := m.Vertices[idx]
				fmt.Fprintf(bw, "    vertex %f %f %f\n", c.X, c.Y, c.Z)
			}
			bw.WriteString("  endloop\n")
			bw.WriteString("endfacet\n")
		}
	}
	fmt.Fprintf(bw, "endsolid %s\n", SolidName)
	return errors.Wrap(bw.Flush(), "write STL")
}

// SaveSTL writes the mesh to an ASCII STL file.
func SaveSTL(path string, m *Mesh) error {
	return saveFile(path, m, WriteSTL)
}

// SaveBinarySTL writes the mesh to a binary STL file.
// Unlike WriteSTL, normals are derived from each
// triangle's winding.
func SaveBinarySTL(path string, m *Mesh) error {
	return saveFile(path, m, func(w io.Writer, m *Mesh) error {
		return errors.Wrap(model3d.WriteSTL(w, m.Triangles()), "write binary STL")
	})
}

func saveFile(path string, m *Mesh, encode func(io.Writer, *Mesh) error) (err error) {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "save STL")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save STL")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "save STL")
		}
	}()
	return encode(f, m)
}
