// Command export_grids exports a directory tree of doodle
// images as JSON occupancy grids, the input format of
// grid_to_stl.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/TechnoCultureClub/doodle2stl/doodle"
	"github.com/unixpickle/essentials"

	_ "golang.org/x/image/webp"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

func main() {
	var opts doodle.PreprocessOptions
	flag.IntVar(&opts.Resolution, "resolution", doodle.DefaultResolution, "grid resolution")
	flag.BoolVar(&opts.EdgeDetect, "edges", false, "export stroke outlines instead of filled ink")
	flag.IntVar(&opts.CloseIterations, "close", 1, "morphological closing iterations")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <input_dir> <output_dir>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 2 {
		flag.Usage()
	}
	if opts.Resolution <= 0 {
		opts.Resolution = doodle.DefaultResolution
	}

	inDir := flag.Args()[0]
	outDir := flag.Args()[1]

	err := filepath.Walk(inDir, func(inPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(inDir, inPath)
		essentials.Must(err)
		outPath := filepath.Join(outDir, relPath)

		if info.IsDir() {
			if _, err := os.Stat(outPath); os.IsNotExist(err) {
				essentials.Must(os.Mkdir(outPath, 0755))
			}
			return nil
		}

		if imageExts[strings.ToLower(filepath.Ext(inPath))] {
			return ConvertImage(inPath, outPath, opts)
		}
		return nil
	})
	essentials.Must(err)
}

func ConvertImage(inPath, outPath string, opts doodle.PreprocessOptions) error {
	log.Println("Converting", inPath, "...")

	img, err := doodle.LoadImage(inPath)
	if err != nil {
		return err
	}
	grid := doodle.Preprocess(img, opts)

	outPath = strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".json"
	w, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer w.Close()
	return grid.WriteJSON(w)
}
