// internal/cmdutil/run.go
package cmdutil

import (
	"log/slog"

	"bitslice/internal/bitplane"
)

// RunTransform decomposes img, zeroizes planes and reconstructs the result,
// logging the shapes and each plane at debug level.
func RunTransform(log *slog.Logger, img bitplane.Image, planes bitplane.PlaneSet) (bitplane.Image, error) {
	size := img.Shape()
	bitSize := bitplane.Shape{Height: size.Height, Width: size.Width, Depth: bitplane.PlaneCount}
	log.Debug("image size", "shape", size.String())
	log.Debug("bit size", "shape", bitSize.String())

	return bitplane.Apply(img, planes, bitplane.WithPlaneHook(func(p int) {
		log.Debug("zeroizing bit plane", "plane", p)
	}))
}
