package doodle

type PixelCoord [2]int

// BorderPixels is a 2D bitmap padded with a one pixel
// border on every side, so neighbors of edge pixels can be
// read without bounds checks.
type BorderPixels struct {
	Width  int
	Height int
	Data   []bool
}

func NewBorderPixels(img *BinaryImage) *BorderPixels {
	b := &BorderPixels{
		Width:  img.Width,
		Height: img.Height,
		Data:   make([]bool, (img.Width+2)*(img.Height+2)),
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			*b.At(PixelCoord{x, y}) = img.Get(x, y) != 0
		}
	}
	return b
}

func (b *BorderPixels) At(coord PixelCoord) *bool {
	return &b.Data[(coord[0]+1)+(coord[1]+1)*(b.Width+2)]
}

// Neighbors calls f for each of the 8 neighbors of coord
// that lie in the bordered bitmap.
func (b *BorderPixels) Neighbors(coord PixelCoord, f func(PixelCoord)) {
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			if x == 0 && y == 0 {
				continue
			}
			newCoord := PixelCoord{coord[0] + x, coord[1] + y}
			if b.InBounds(newCoord) {
				f(newCoord)
			}
		}
	}
}

func (b *BorderPixels) InBounds(c PixelCoord) bool {
	return c[0] >= -1 && c[1] >= -1 && c[0] <= b.Width && c[1] <= b.Height
}

func (b *BorderPixels) inImage(c PixelCoord) bool {
	return c[0] >= 0 && c[1] >= 0 && c[0] < b.Width && c[1] < b.Height
}

// Dilate sets every pixel with a set neighbor.
func (b *BorderPixels) Dilate() *BorderPixels {
	return b.morph(true)
}

// Erode clears every pixel with a cleared neighbor inside
// the image. The border is ignored, so ink running off the
// edge of the image is kept.
func (b *BorderPixels) Erode() *BorderPixels {
	return b.morph(false)
}

func (b *BorderPixels) morph(value bool) *BorderPixels {
	res := &BorderPixels{
		Width:  b.Width,
		Height: b.Height,
		Data:   make([]bool, len(b.Data)),
	}
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			coord := PixelCoord{x, y}
			v := *b.At(coord)
			if v != value {
				b.Neighbors(coord, func(n PixelCoord) {
					if !value && !b.inImage(n) {
						return
					}
					if *b.At(n) == value {
						v = value
					}
				})
			}
			*res.At(coord) = v
		}
	}
	return res
}

// Unbordered converts the bitmap back into a BinaryImage.
func (b *BorderPixels) Unbordered() *BinaryImage {
	res := NewBinaryImage(b.Width, b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			res.Set(x, y, *b.At(PixelCoord{x, y}))
		}
	}
	return res
}

// Close fills holes and cracks narrower than about two
// pixels per iteration by dilating and then eroding.
func Close(img *BinaryImage, iterations int) *BinaryImage {
	if iterations <= 0 {
		return img
	}
	b := NewBorderPixels(img)
	for i := 0; i < iterations; i++ {
		b = b.Dilate()
	}
	for i := 0; i < iterations; i++ {
		b = b.Erode()
	}
	return b.Unbordered()
}
