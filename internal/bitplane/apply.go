// internal/bitplane/apply.go
package bitplane

import "fmt"

type applyConfig struct {
	hook func(p int)
}

// Option configures Apply.
type Option func(*applyConfig)

// WithPlaneHook registers fn to be called with each plane index as it is cleared.
func WithPlaneHook(fn func(p int)) Option {
	return func(c *applyConfig) { c.hook = fn }
}

// Apply runs Decompose, Zeroize and Reconstruct on img.
func Apply(img Image, planes PlaneSet, opts ...Option) (Image, error) {
	var cfg applyConfig
	for _, o := range opts {
		o(&cfg)
	}
	if len(img.Pix) != img.Height*img.Width*Channels {
		return Image{}, fmt.Errorf("%w: %d bytes for %v", ErrShapeMismatch, len(img.Pix), img.Shape())
	}
	a, b, c := Decompose(img)
	if err := ZeroizeFunc(a, b, c, planes, cfg.hook); err != nil {
		return Image{}, err
	}
	return Reconstruct(a, b, c, img.Shape().Size())
}
