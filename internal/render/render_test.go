package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCanvas(t *testing.T) {
	dc := NewCanvas(64, 48, gg.White)
	require.NotNil(t, dc)
	assert.Equal(t, 64, dc.Width())
	assert.Equal(t, 48, dc.Height())

	r, g, b, _ := dc.Image().At(32, 24).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestFace(t *testing.T) {
	f, err := Face(Regular, 24)
	require.NoError(t, err)
	require.NotNil(t, f)

	// Same weight and size hits the cache.
	again, err := Face(Regular, 24)
	require.NoError(t, err)
	assert.Equal(t, f, again)

	bold, err := Face(Bold, 24)
	require.NoError(t, err)
	require.NotNil(t, bold)
}

func TestFaceUnknownWeight(t *testing.T) {
	_, err := Face(Weight(42), 24)
	assert.Error(t, err)
}

func TestMeasure(t *testing.T) {
	w, h, err := Measure("HELLO", Bold, 36)
	require.NoError(t, err)
	assert.Greater(t, w, 0.0)
	assert.Greater(t, h, 0.0)

	// Longer text is wider at the same size.
	w2, _, err := Measure("HELLO WORLD", Bold, 36)
	require.NoError(t, err)
	assert.Greater(t, w2, w)
}

func TestDrawStringLeavesInk(t *testing.T) {
	dc := NewCanvas(200, 100, gg.White)
	face, err := Face(Bold, 48)
	require.NoError(t, err)

	dc.SetFont(face)
	dc.SetColor(gg.Black.Color())
	dc.DrawStringAnchored("X", 100, 50, 0.5, 0.5)

	img := dc.Image()
	dark := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r < 0x8000 {
				dark++
			}
		}
	}
	assert.Greater(t, dark, 0, "no glyph pixels drawn")
}

func TestSavePNGCreatesDirs(t *testing.T) {
	dc := NewCanvas(10, 10, gg.White)
	dir := filepath.Join(t.TempDir(), "a", "b")

	path, err := SavePNG(dc, dir, "out.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out.png"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
