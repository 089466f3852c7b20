// internal/bitplane/decompose.go
package bitplane

// SplitChannels separates an interleaved image into one grid per channel,
// in image channel order.
func SplitChannels(img Image) [Channels]*ByteGrid {
	var out [Channels]*ByteGrid
	for c := range out {
		out[c] = NewByteGrid(img.Height, img.Width)
	}
	n := img.Height * img.Width
	for i := 0; i < n; i++ {
		px := img.Pix[i*Channels : i*Channels+Channels]
		out[0].Data[i] = px[0]
		out[1].Data[i] = px[1]
		out[2].Data[i] = px[2]
	}
	return out
}

// ExpandBits unpacks every byte of g into PlaneCount cells, MSB first.
func ExpandBits(g *ByteGrid) *BitGrid {
	bits := NewBitGrid(g.Height, g.Width)
	for i, v := range g.Data {
		cell := bits.Bits[i*PlaneCount : i*PlaneCount+PlaneCount]
		for p := range cell {
			cell[p] = (v >> uint(LSBPlane-p)) & 1
		}
	}
	return bits
}

// Decompose returns one bit grid per channel of img. img must already be a
// valid 3-channel image.
func Decompose(img Image) (a, b, c *BitGrid) {
	ch := SplitChannels(img)
	return ExpandBits(ch[0]), ExpandBits(ch[1]), ExpandBits(ch[2])
}
