package doodle

import (
	"encoding/json"
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// Ink is the value of a set pixel in a BinaryImage.
const Ink = 255

// A BinaryImage is a single channel image where every
// pixel is either 0 or Ink.
type BinaryImage struct {
	Width  int
	Height int

	// Pix is stored row by row.
	Pix []uint8
}

// NewBinaryImage creates an empty image.
func NewBinaryImage(width, height int) *BinaryImage {
	return &BinaryImage{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// ReadBinaryImage reads a BinaryImage as a JSON array of
// rows. Values at or above threshold become Ink.
func ReadBinaryImage(r io.Reader, threshold float64) (*BinaryImage, error) {
	var object [][]float64
	dec := json.NewDecoder(r)
	if err := dec.Decode(&object); err != nil {
		return nil, errors.Wrap(err, "read binary image")
	}
	if len(object) == 0 {
		return NewBinaryImage(0, 0), nil
	}
	width := len(object[0])
	result := NewBinaryImage(width, len(object))
	for y, row := range object {
		if len(row) != width {
			return nil, errors.New("read binary image: invalid dimensions")
		}
		for x, value := range row {
			if value >= threshold {
				result.Set(x, y, true)
			}
		}
	}
	return result, nil
}

// WriteJSON encodes the image as rows of 0s and 1s, in a
// form ReadBinaryImage accepts with any threshold in (0, 1].
func (b *BinaryImage) WriteJSON(w io.Writer) error {
	rows := make([][]int, b.Height)
	for y := range rows {
		rows[y] = make([]int, b.Width)
		for x := range rows[y] {
			if b.Get(x, y) != 0 {
				rows[y][x] = 1
			}
		}
	}
	return errors.Wrap(json.NewEncoder(w).Encode(rows), "write binary image")
}

// Get gets the value at integer coordinates.
// If a coordinate is out of bounds, 0 is returned.
func (b *BinaryImage) Get(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[x+y*b.Width]
}

// Set marks or clears a pixel.
func (b *BinaryImage) Set(x, y int, ink bool) {
	if ink {
		b.Pix[x+y*b.Width] = Ink
	} else {
		b.Pix[x+y*b.Width] = 0
	}
}

// Image converts the image to grayscale for saving.
func (b *BinaryImage) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: b.Get(x, y)})
		}
	}
	return img
}

// A GridVertex is a mesh vertex created for a grid cell.
type GridVertex struct {
	X, Y  int
	Index int
}

// A GridRow is the vertices of one grid row, sorted by X.
type GridRow []GridVertex

// Find looks up the vertex in the row at column x.
func (g GridRow) Find(x int) (GridVertex, bool) {
	lo, hi := 0, len(g)
	for lo < hi {
		mid := (lo + hi) / 2
		if g[mid].X < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(g) && g[lo].X == x {
		return g[lo], true
	}
	return GridVertex{}, false
}

// BuildGrid adds a bottom vertex to m for every cell whose
// 2x2 neighborhood has at least two set pixels.
//
// The neighborhood of (x, y) is (x, y), (x+1, y),
// (x, y+1), and (x+1, y+1), so the last row and column of
// the image never produce vertices.
func BuildGrid(img *BinaryImage, m *Mesh) []GridRow {
	var rows []GridRow
	for y := 0; y < img.Height-1; y++ {
		var row GridRow
		for x := 0; x < img.Width-1; x++ {
			if cornerCount(img, x, y) < 2 {
				continue
			}
			idx := m.AddVertex(model3d.XYZ(float64(x), float64(y), 0))
			row = append(row, GridVertex{X: x, Y: y, Index: idx})
		}
		rows = append(rows, row)
	}
	return rows
}

func cornerCount(img *BinaryImage, x, y int) int {
	var count int
	for _, c := range [4][2]int{{x, y}, {x + 1, y}, {x, y + 1}, {x + 1, y + 1}} {
		if img.Get(c[0], c[1]) != 0 {
			count++
		}
	}
	return count
}
