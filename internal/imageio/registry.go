// internal/imageio/registry.go
package imageio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultJPEGQuality matches the OpenCV imwrite default.
const DefaultJPEGQuality = 95

// SaveOptions tunes encoders that have knobs.
type SaveOptions struct {
	JPEGQuality int // 1..100; 0 means DefaultJPEGQuality
}

// EncodeFunc writes m to w.
type EncodeFunc func(w io.Writer, m image.Image, o SaveOptions) error

// Codec describes one output format. Encode is nil for decode-only formats.
type Codec struct {
	Name     string
	Lossless bool
	Encode   EncodeFunc
}

// Codecs maps lower-case file extensions (with dot) to codecs.
var Codecs = map[string]Codec{}

// Register adds or replaces the codec for each extension (last wins).
func Register(c Codec, exts ...string) {
	for _, e := range exts {
		Codecs[strings.ToLower(e)] = c
	}
}

func init() {
	Register(Codec{Name: "png", Lossless: true, Encode: func(w io.Writer, m image.Image, _ SaveOptions) error {
		return png.Encode(w, m)
	}}, ".png")
	Register(Codec{Name: "jpeg", Encode: func(w io.Writer, m image.Image, o SaveOptions) error {
		q := o.JPEGQuality
		if q <= 0 {
			q = DefaultJPEGQuality
		}
		return jpeg.Encode(w, m, &jpeg.Options{Quality: q})
	}}, ".jpg", ".jpeg", ".jpe")
	Register(Codec{Name: "gif", Encode: func(w io.Writer, m image.Image, _ SaveOptions) error {
		return gif.Encode(w, m, nil)
	}}, ".gif")
	Register(Codec{Name: "bmp", Lossless: true, Encode: func(w io.Writer, m image.Image, _ SaveOptions) error {
		return bmp.Encode(w, m)
	}}, ".bmp", ".dib")
	Register(Codec{Name: "tiff", Lossless: true, Encode: func(w io.Writer, m image.Image, _ SaveOptions) error {
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}}, ".tif", ".tiff")
	Register(Codec{Name: "webp"}, ".webp")
}

// Lookup returns the codec for path's extension.
func Lookup(path string) (Codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	c, ok := Codecs[ext]
	if !ok {
		return Codec{}, fmt.Errorf("%w %q (no codec registered)", ErrUnsupportedFormat, ext)
	}
	return c, nil
}

// Extensions lists registered extensions, sorted. Used in help text.
func Extensions(encodable bool) []string {
	var out []string
	for ext, c := range Codecs {
		if encodable && c.Encode == nil {
			continue
		}
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
