// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitslice/internal/app"
	"bitslice/internal/bitplane"
	"bitslice/internal/imageio"
)

func writePNG(t *testing.T, path string, m image.Image) string {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, m))
	require.NoError(t, f.Close())
	return path
}

func colorFixture(t *testing.T, dir string) string {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := 3; i < len(m.Pix); i += 4 {
		m.Pix[i] = 0xFF
	}
	m.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 128, B: 1, A: 255})
	m.SetNRGBA(1, 0, color.NRGBA{R: 180, G: 0, B: 77, A: 255})
	m.SetNRGBA(2, 1, color.NRGBA{R: 3, G: 200, B: 64, A: 255})
	return writePNG(t, filepath.Join(dir, "in.png"), m)
}

func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(args, &out, &errBuf)
	return code, errBuf.String()
}

func TestZeroizeLSBEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := colorFixture(t, dir)
	outPath := filepath.Join(dir, "out.png")

	code, logs := run(t, "-i", in, "-o", outPath, "-p", "7")
	require.Equal(t, 0, code, logs)

	got, _, err := imageio.Load(outPath)
	require.NoError(t, err)
	r, g, b := got.At(0, 0)
	assert.Equal(t, [3]uint8{254, 128, 0}, [3]uint8{r, g, b})
	r, g, b = got.At(0, 1)
	assert.Equal(t, [3]uint8{180, 0, 76}, [3]uint8{r, g, b})

	for _, want := range []string{"level=DEBUG", "reading image", "zeroizing bit plane", "saving image", `shape="(2, 3, 8)"`} {
		assert.Contains(t, logs, want)
	}
}

func TestNoPlanesIsIdentity(t *testing.T) {
	dir := t.TempDir()
	in := colorFixture(t, dir)
	outPath := filepath.Join(dir, "copy.bmp")

	code, logs := run(t, "--input", in, "--output", outPath)
	require.Equal(t, 0, code, logs)
	assert.NotContains(t, logs, "zeroizing")

	want, _, err := imageio.Load(in)
	require.NoError(t, err)
	got, _, err := imageio.Load(outPath)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestMultiplePlanes(t *testing.T) {
	dir := t.TempDir()
	in := colorFixture(t, dir)
	outPath := filepath.Join(dir, "out.tiff")

	code, logs := run(t, "-i", in, "-o", outPath, "-p", "0", "1", "2", "3", "-q")
	require.Equal(t, 0, code, logs)
	assert.Empty(t, logs)

	want, _, err := imageio.Load(in)
	require.NoError(t, err)
	got, _, err := imageio.Load(outPath)
	require.NoError(t, err)
	mask := bitplane.PlaneSet{0, 1, 2, 3}.Mask()
	for i := range want.Pix {
		assert.Equal(t, want.Pix[i]&mask, got.Pix[i], "byte %d", i)
	}
}

func TestGrayscaleInputRejected(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, filepath.Join(dir, "gray.png"), image.NewGray(image.Rect(0, 0, 4, 4)))
	outPath := filepath.Join(dir, "out.png")

	code, logs := run(t, "-i", in, "-o", outPath, "-p", "7")
	assert.Equal(t, 0, code)
	assert.Contains(t, logs, "level=ERROR")
	_, err := os.Stat(outPath)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "output must not be written")
}

func TestMissingInputRejected(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.png")

	code, logs := run(t, "-i", filepath.Join(dir, "absent.png"), "-o", outPath)
	assert.Equal(t, 0, code)
	assert.Equal(t, 1, strings.Count(logs, "level=ERROR"))
	_, err := os.Stat(outPath)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestInvalidExitCode(t *testing.T) {
	dir := t.TempDir()
	code, _ := run(t, "-i", filepath.Join(dir, "absent.png"), "-o", filepath.Join(dir, "o.png"), "--invalid-exit-code", "4")
	assert.Equal(t, 4, code)
}

func TestWriteFailure(t *testing.T) {
	dir := t.TempDir()
	in := colorFixture(t, dir)
	code, logs := run(t, "-i", in, "-o", filepath.Join(dir, "out.unknown"))
	assert.Equal(t, app.ExitIO, code)
	assert.Contains(t, logs, "write failed")
}

func TestJSONLogs(t *testing.T) {
	dir := t.TempDir()
	in := colorFixture(t, dir)
	code, logs := run(t, "-i", in, "-o", filepath.Join(dir, "o.png"), "-p", "6", "--log-format", "json")
	require.Equal(t, 0, code, logs)

	planes := 0
	for _, line := range strings.Split(strings.TrimSpace(logs), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		if rec["msg"] == "zeroizing bit plane" {
			planes++
			assert.EqualValues(t, 6, rec["plane"])
		}
	}
	assert.Equal(t, 1, planes)
}

func TestInfoLevelHidesDebug(t *testing.T) {
	dir := t.TempDir()
	in := colorFixture(t, dir)
	code, logs := run(t, "-i", in, "-o", filepath.Join(dir, "o.png"), "--log-level", "info")
	require.Equal(t, 0, code)
	assert.NotContains(t, logs, "DEBUG")
}
