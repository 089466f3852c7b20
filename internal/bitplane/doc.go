// Package bitplane splits 3-channel 8-bit images into per-channel bit planes,
// zeroes selected planes, and packs the planes back into an image.
//
// Layout:
//   • Image is interleaved H×W×3 bytes.
//   • ByteGrid is one channel, H×W.
//   • BitGrid is one channel, H×W×8, plane 0 = MSB, plane 7 = LSB.
//
// The package does no I/O and keeps no state between calls.
package bitplane
