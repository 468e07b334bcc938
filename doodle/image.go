package doodle

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
)

// laplacian responds to thin strokes and outlines.
var laplacian = [9]float64{
	-1, -1, -1,
	-1, 8, -1,
	-1, -1, -1,
}

// LoadImage decodes an image file, applying any EXIF
// orientation.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "load image")
	}
	return img, nil
}

// SaveImage encodes a binary image, picking the format
// from the path's extension.
func SaveImage(path string, img *BinaryImage) error {
	return errors.Wrap(imaging.Save(img.Image(), path), "save image")
}

// PreprocessOptions controls how a photo of a doodle is
// reduced to a BinaryImage.
type PreprocessOptions struct {
	// Resolution is the size of the longer image side
	// after resizing.
	Resolution int

	// EdgeDetect keeps only the outlines of strokes.
	EdgeDetect bool

	// CloseIterations is the number of morphological
	// closing rounds run on the thresholded image.
	CloseIterations int
}

// Preprocess resizes an image and isolates its ink.
//
// A pixel is ink when, after inverting the image, any of
// its channels exceeds that channel's mean by more than
// one standard deviation.
func Preprocess(img image.Image, opts PreprocessOptions) *BinaryImage {
	b := img.Bounds()
	var resized *image.NRGBA
	if b.Dx() >= b.Dy() {
		resized = imaging.Resize(img, opts.Resolution, 0, imaging.Lanczos)
	} else {
		resized = imaging.Resize(img, 0, opts.Resolution, imaging.Lanczos)
	}
	filtered := imaging.Invert(resized)
	if opts.EdgeDetect {
		filtered = imaging.Convolve3x3(filtered, laplacian, nil)
	}
	bitmap := model2d.NewBitmapImage(filtered, inkFunc(filtered))
	result := NewBinaryImage(bitmap.Width, bitmap.Height)
	for y := 0; y < bitmap.Height; y++ {
		for x := 0; x < bitmap.Width; x++ {
			result.Set(x, y, bitmap.Get(x, y))
		}
	}
	return Close(result, opts.CloseIterations)
}

func inkFunc(img *image.NRGBA) model2d.ColorBitFunc {
	mean, stddev := channelStats(img)
	return func(c color.Color) bool {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		for i, v := range [3]uint8{n.R, n.G, n.B} {
			if float64(v) > mean[i]+stddev[i] {
				return true
			}
		}
		return false
	}
}

func channelStats(img *image.NRGBA) (mean, stddev [3]float64) {
	b := img.Bounds()
	count := float64(b.Dx() * b.Dy())
	if count == 0 {
		return
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			for i, v := range [3]uint8{c.R, c.G, c.B} {
				mean[i] += float64(v)
			}
		}
	}
	for i := range mean {
		mean[i] /= count
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			for i, v := range [3]uint8{c.R, c.G, c.B} {
				stddev[i] += math.Pow(float64(v)-mean[i], 2)
			}
		}
	}
	for i := range stddev {
		stddev[i] = math.Sqrt(stddev[i] / count)
	}
	return
}
