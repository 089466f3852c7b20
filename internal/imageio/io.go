// internal/imageio/io.go
package imageio

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"bitslice/internal/bitplane"
)

// Load decodes the image at path. The returned string is the sniffed format name.
func Load(path string) (bitplane.Image, string, error) {
	if path == "" {
		return bitplane.Image{}, "", errors.New("no input path given")
	}
	f, err := os.Open(path)
	if err != nil {
		return bitplane.Image{}, "", err
	}
	defer f.Close()

	m, format, err := image.Decode(f)
	if err != nil {
		return bitplane.Image{}, "", fmt.Errorf("decode %s: %w", path, err)
	}
	img, err := FromImage(m)
	if err != nil {
		return bitplane.Image{}, format, fmt.Errorf("%s: %w", path, err)
	}
	return img, format, nil
}

// Save encodes img to path using the codec registered for its extension.
// The data goes to a temporary file in the same directory first, so a failed
// encode never leaves a partial output behind.
func Save(path string, img bitplane.Image, o SaveOptions) (err error) {
	c, err := Lookup(path)
	if err != nil {
		return err
	}
	if c.Encode == nil {
		return fmt.Errorf("%w: %s is decode-only", ErrUnsupportedFormat, c.Name)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".bitslice-*"+filepath.Ext(path))
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = c.Encode(tmp, ToImage(img), o); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
