// internal/imageio/convert.go
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"

	"bitslice/internal/bitplane"
)

var (
	ErrNotColor          = errors.New("image is not a 3-channel color image")
	ErrDepth             = errors.New("only 8-bit images are supported")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// FromImage copies the color channels of m into a bitplane.Image in R, G, B
// order. Grayscale is rejected; alpha is discarded without compositing.
func FromImage(m image.Image) (bitplane.Image, error) {
	switch src := m.(type) {
	case nil:
		return bitplane.Image{}, ErrNotColor
	case *image.Gray, *image.Gray16:
		return bitplane.Image{}, fmt.Errorf("%w: grayscale (%T)", ErrNotColor, m)
	case *image.Alpha, *image.Alpha16:
		return bitplane.Image{}, fmt.Errorf("%w: alpha only (%T)", ErrNotColor, m)
	case *image.RGBA64, *image.NRGBA64:
		return bitplane.Image{}, fmt.Errorf("%w: got %T", ErrDepth, m)
	case *image.NRGBA:
		return fromNRGBA(src), nil
	case *image.RGBA:
		return fromRGBA(src), nil
	default:
		return fromRGBA(clone.AsRGBA(m)), nil
	}
}

func fromNRGBA(src *image.NRGBA) bitplane.Image {
	b := src.Bounds()
	out := bitplane.NewImage(b.Dy(), b.Dx())
	for y := 0; y < b.Dy(); y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		row := src.Pix[off : off+b.Dx()*4]
		for x := 0; x < b.Dx(); x++ {
			out.Set(y, x, row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return out
}

func fromRGBA(src *image.RGBA) bitplane.Image {
	b := src.Bounds()
	out := bitplane.NewImage(b.Dy(), b.Dx())
	for y := 0; y < b.Dy(); y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		row := src.Pix[off : off+b.Dx()*4]
		for x := 0; x < b.Dx(); x++ {
			px := row[x*4 : x*4+4]
			if px[3] == 0xFF {
				out.Set(y, x, px[0], px[1], px[2])
				continue
			}
			// premultiplied: recover the straight color
			n := color.NRGBAModel.Convert(color.RGBA{R: px[0], G: px[1], B: px[2], A: px[3]}).(color.NRGBA)
			out.Set(y, x, n.R, n.G, n.B)
		}
	}
	return out
}

// ToImage returns an opaque NRGBA copy of img suitable for any encoder.
func ToImage(img bitplane.Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(y, x)
			row[x*4], row[x*4+1], row[x*4+2], row[x*4+3] = r, g, b, 0xFF
		}
	}
	return dst
}
