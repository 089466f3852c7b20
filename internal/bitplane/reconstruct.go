// internal/bitplane/reconstruct.go
package bitplane

import "fmt"

// PackBits is the inverse of ExpandBits. Any nonzero cell counts as a set bit.
func PackBits(g *BitGrid) *ByteGrid {
	out := NewByteGrid(g.Height, g.Width)
	for i := range out.Data {
		cell := g.Bits[i*PlaneCount : i*PlaneCount+PlaneCount]
		var v uint8
		for p, bit := range cell {
			if bit != 0 {
				v |= PlaneWeight(p)
			}
		}
		out.Data[i] = v
	}
	return out
}

// MergeChannels interleaves three equally sized grids into an image.
func MergeChannels(ch [Channels]*ByteGrid) Image {
	img := NewImage(ch[0].Height, ch[0].Width)
	for i := range ch[0].Data {
		px := img.Pix[i*Channels : i*Channels+Channels]
		px[0] = ch[0].Data[i]
		px[1] = ch[1].Data[i]
		px[2] = ch[2].Data[i]
	}
	return img
}

// Reconstruct packs the three grids and merges them into an image of the given
// (Height, Width). size.Depth is ignored.
func Reconstruct(a, b, c *BitGrid, size Shape) (Image, error) {
	if err := sameShape(a, b, c); err != nil {
		return Image{}, err
	}
	if a.Height != size.Height || a.Width != size.Width {
		return Image{}, fmt.Errorf("%w: grids are %v, want %v", ErrShapeMismatch, a.Shape(), size.Size())
	}
	return MergeChannels([Channels]*ByteGrid{PackBits(a), PackBits(b), PackBits(c)}), nil
}
