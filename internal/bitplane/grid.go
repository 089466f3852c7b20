// internal/bitplane/grid.go
package bitplane

import (
	"errors"
	"fmt"
)

// Channels is the only channel count the transform accepts.
const Channels = 3

var (
	ErrChannelCount  = errors.New("bitplane: image must have exactly 3 channels")
	ErrShapeMismatch = errors.New("bitplane: grid shape mismatch")
)

// Shape is a (Height, Width, Depth) triple. Depth is Channels for images and
// PlaneCount for bit grids.
type Shape struct {
	Height int
	Width  int
	Depth  int
}

func (s Shape) String() string { return fmt.Sprintf("(%d, %d, %d)", s.Height, s.Width, s.Depth) }

// Size returns the (Height, Width) part of s.
func (s Shape) Size() Shape { return Shape{Height: s.Height, Width: s.Width} }

// Image is an interleaved 3-channel 8-bit raster. Pix[(y*Width+x)*3+c].
type Image struct {
	Height int
	Width  int
	Pix    []uint8
}

// NewImage allocates a zeroed h×w image.
func NewImage(h, w int) Image {
	return Image{Height: h, Width: w, Pix: make([]uint8, h*w*Channels)}
}

// ImageFromPix wraps pix as an image after checking the channel count and length.
func ImageFromPix(h, w, channels int, pix []uint8) (Image, error) {
	if channels != Channels {
		return Image{}, fmt.Errorf("%w: got %d", ErrChannelCount, channels)
	}
	if h < 0 || w < 0 || len(pix) != h*w*Channels {
		return Image{}, fmt.Errorf("%w: %d bytes for %dx%dx%d", ErrShapeMismatch, len(pix), h, w, Channels)
	}
	return Image{Height: h, Width: w, Pix: pix}, nil
}

func (m Image) Shape() Shape { return Shape{Height: m.Height, Width: m.Width, Depth: Channels} }

// At returns the three channel values at (y, x).
func (m Image) At(y, x int) (uint8, uint8, uint8) {
	i := (y*m.Width + x) * Channels
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Set stores the three channel values at (y, x).
func (m Image) Set(y, x int, a, b, c uint8) {
	i := (y*m.Width + x) * Channels
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = a, b, c
}

// Equal reports whether two images have the same shape and pixels.
func (m Image) Equal(o Image) bool {
	if m.Height != o.Height || m.Width != o.Width || len(m.Pix) != len(o.Pix) {
		return false
	}
	for i := range m.Pix {
		if m.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// ByteGrid is one channel of an image.
type ByteGrid struct {
	Height int
	Width  int
	Data   []uint8
}

func NewByteGrid(h, w int) *ByteGrid {
	return &ByteGrid{Height: h, Width: w, Data: make([]uint8, h*w)}
}

func (g *ByteGrid) At(y, x int) uint8 { return g.Data[y*g.Width+x] }

// BitGrid holds one 0/1 cell per bit of a ByteGrid. Cells for (y, x) are
// contiguous and ordered MSB first.
type BitGrid struct {
	Height int
	Width  int
	Bits   []uint8
}

func NewBitGrid(h, w int) *BitGrid {
	return &BitGrid{Height: h, Width: w, Bits: make([]uint8, h*w*PlaneCount)}
}

func (g *BitGrid) Shape() Shape { return Shape{Height: g.Height, Width: g.Width, Depth: PlaneCount} }

// At returns the cell for plane p at (y, x).
func (g *BitGrid) At(y, x, p int) uint8 { return g.Bits[(y*g.Width+x)*PlaneCount+p] }

// Plane copies plane p out as an H×W slice of 0/1 values.
func (g *BitGrid) Plane(p int) []uint8 {
	out := make([]uint8, g.Height*g.Width)
	for i := range out {
		out[i] = g.Bits[i*PlaneCount+p]
	}
	return out
}

// Clone returns a deep copy of g.
func (g *BitGrid) Clone() *BitGrid {
	c := &BitGrid{Height: g.Height, Width: g.Width, Bits: make([]uint8, len(g.Bits))}
	copy(c.Bits, g.Bits)
	return c
}

func sameShape(grids ...*BitGrid) error {
	for _, g := range grids {
		if g == nil {
			return fmt.Errorf("%w: nil grid", ErrShapeMismatch)
		}
	}
	first := grids[0]
	for _, g := range grids[1:] {
		if g.Height != first.Height || g.Width != first.Width || len(g.Bits) != len(first.Bits) {
			return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, first.Shape(), g.Shape())
		}
	}
	return nil
}
