package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
)

// NewCanvas creates a drawing context of the given size cleared to bg.
func NewCanvas(width, height int, bg gg.RGBA) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(bg)
	return dc
}

// SavePNG writes the context to dir/name, creating dir if needed, and
// returns the full path of the written file.
func SavePNG(dc *gg.Context, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("render: create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("render: save %s: %w", path, err)
	}
	return path, nil
}
