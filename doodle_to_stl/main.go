// Command doodle_to_stl converts a photo or scan of a
// doodle into an extruded STL model.
//
// Dark ink is isolated from the image, reduced to a grid
// of at most resolution cells per side, and every filled
// region becomes a slab of the given height.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/TechnoCultureClub/doodle2stl/doodle"
	"github.com/unixpickle/essentials"

	_ "golang.org/x/image/webp"
)

func main() {
	cfg := doodle.DefaultConfig()
	var resolution string

	defaultRes := strconv.Itoa(cfg.Resolution)
	flag.StringVar(&resolution, "resolution", defaultRes, "grid resolution")
	flag.StringVar(&resolution, "r", defaultRes, "grid resolution (short)")
	flag.Float64Var(&cfg.Height, "height", cfg.Height, "extrusion height, at least 1")
	flag.Float64Var(&cfg.Height, "h", cfg.Height, "extrusion height (short)")
	flag.StringVar(&cfg.OutputPath, "output", cfg.OutputPath, "output STL file")
	flag.StringVar(&cfg.OutputPath, "o", cfg.OutputPath, "output STL file (short)")
	flag.StringVar(&cfg.DebugPath, "debug", cfg.DebugPath, "thresholded image output (empty to disable)")
	flag.BoolVar(&cfg.EdgeDetect, "edges", false, "extrude stroke outlines instead of filled ink")
	flag.IntVar(&cfg.CloseIterations, "close", cfg.CloseIterations, "morphological closing iterations")
	flag.BoolVar(&cfg.Binary, "binary", false, "write a binary STL file")
	flag.BoolVar(&cfg.Verify, "verify", false, "check that the solid encloses its footprint")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <filename>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 1 {
		flag.Usage()
	}
	cfg = configure(cfg, flag.Args()[0], resolution)

	log.Println("Converting", cfg.InputPath, "...")
	mesh, err := doodle.Run(cfg)
	if err != nil {
		essentials.Die(err)
	}
	log.Printf("Wrote %s: %d vertices, %d faces (%d bottom, %d sides, %d top)",
		cfg.OutputPath, len(mesh.Vertices), len(mesh.Faces),
		mesh.NumBottom, mesh.NumSides, mesh.NumTop)

	if cfg.Verify {
		report := doodle.Verify(mesh, cfg.Height)
		log.Printf("Verified %d/%d footprint samples inside the solid.",
			report.Inside, report.Samples)
	}
}

// configure fills in the input path and resolution and
// applies the fallbacks, so later steps see the settings
// the mesh is actually built with.
func configure(cfg doodle.Config, inputPath, resolution string) doodle.Config {
	cfg.InputPath = inputPath
	cfg.Resolution = parseResolution(resolution)
	cfg.Normalize()
	return cfg
}

// parseResolution falls back to the default for anything
// other than a positive integer.
func parseResolution(s string) int {
	res, err := strconv.Atoi(s)
	if err != nil || res <= 0 {
		return doodle.DefaultResolution
	}
	return res
}
