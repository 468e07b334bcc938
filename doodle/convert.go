package doodle

import (
	"log"

	"github.com/pkg/errors"
)

const (
	DefaultResolution = 128
	MinHeight         = 1.0
)

// Config describes one conversion from an image file to an
// STL file.
type Config struct {
	InputPath  string
	OutputPath string

	// DebugPath, if set, is where the thresholded image is
	// saved for inspection.
	DebugPath string

	Resolution      int
	Height          float64
	EdgeDetect      bool
	CloseIterations int

	// Binary selects binary STL output.
	Binary bool

	// Verify enables a containment check of the result.
	Verify bool
}

// DefaultConfig creates the configuration used when no
// flags are given.
func DefaultConfig() Config {
	return Config{
		OutputPath:      "test.stl",
		DebugPath:       "debug.png",
		Resolution:      DefaultResolution,
		Height:          MinHeight,
		CloseIterations: 1,
	}
}

// Normalize replaces invalid settings with defaults.
func (c *Config) Normalize() {
	if c.Resolution <= 0 {
		c.Resolution = DefaultResolution
	}
	c.Height = ClampHeight(c.Height)
	if c.CloseIterations < 0 {
		c.CloseIterations = 0
	}
}

// ClampHeight raises extrusion heights below MinHeight.
func ClampHeight(height float64) float64 {
	if height < MinHeight {
		return MinHeight
	}
	return height
}

// MeshFromImage extrudes the ink of a binary image into a
// closed solid of the given height.
func MeshFromImage(img *BinaryImage, height float64) *Mesh {
	m := NewMesh()
	rows := BuildGrid(img, m)
	Triangulate(m, rows)
	numBottom := m.NumBottom
	ExtrudeSides(m, numBottom, height)
	AddTopCap(m, numBottom, height)
	return m
}

// Run loads, preprocesses, and meshes the input image and
// saves the result.
func Run(cfg Config) (*Mesh, error) {
	cfg.Normalize()

	img, err := LoadImage(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	binary := Preprocess(img, PreprocessOptions{
		Resolution:      cfg.Resolution,
		EdgeDetect:      cfg.EdgeDetect,
		CloseIterations: cfg.CloseIterations,
	})
	if cfg.DebugPath != "" {
		if err := SaveImage(cfg.DebugPath, binary); err != nil {
			log.Printf("Warning: could not write debug image: %v", err)
		}
	}

	m := MeshFromImage(binary, cfg.Height)
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "create mesh")
	}

	if cfg.Binary {
		err = SaveBinarySTL(cfg.OutputPath, m)
	} else {
		err = SaveSTL(cfg.OutputPath, m)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
