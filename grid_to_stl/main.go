// Command grid_to_stl converts a JSON-encoded 2D grid of
// values into an extruded mesh and saves it as an STL
// file.
//
// The JSON input is read from stdin and decoded as an
// array of rows, each an array of numbers of the same
// length. Cells at or above the threshold are filled.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/TechnoCultureClub/doodle2stl/doodle"
	"github.com/unixpickle/essentials"
)

func main() {
	var threshold float64
	var height float64
	var outputPath string
	var binary bool
	flag.Float64Var(&threshold, "threshold", 0.5, "minimum value for a filled cell")
	flag.Float64Var(&height, "height", doodle.MinHeight, "extrusion height, at least 1")
	flag.StringVar(&outputPath, "output", "output.stl", "output STL file")
	flag.BoolVar(&binary, "binary", false, "write a binary STL file")
	flag.Parse()
	height = doodle.ClampHeight(height)

	grid, err := doodle.ReadBinaryImage(os.Stdin, threshold)
	essentials.Must(err)

	log.Printf("Creating mesh for %dx%d grid ...", grid.Width, grid.Height)
	mesh := doodle.MeshFromImage(grid, height)
	if binary {
		essentials.Must(doodle.SaveBinarySTL(outputPath, mesh))
	} else {
		essentials.Must(doodle.SaveSTL(outputPath, mesh))
	}
}
