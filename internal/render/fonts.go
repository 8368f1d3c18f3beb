package render

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Weight selects one of the embedded font weights.
type Weight int

const (
	Regular Weight = iota
	Bold
)

func (w Weight) String() string {
	switch w {
	case Bold:
		return "bold"
	default:
		return "regular"
	}
}

type faceKey struct {
	weight Weight
	size   float64
}

var (
	sourceOnce sync.Once
	sourceErr  error
	sources    map[Weight]*text.FontSource

	faceMu sync.Mutex
	faces  = map[faceKey]text.Face{}
)

// loadSources parses the embedded TTF data. Parsing is the expensive part,
// so it happens exactly once per process.
func loadSources() {
	sources = make(map[Weight]*text.FontSource, 2)
	for _, f := range []struct {
		weight Weight
		data   []byte
	}{
		{Regular, goregular.TTF},
		{Bold, gobold.TTF},
	} {
		src, err := text.NewFontSource(f.data)
		if err != nil {
			sourceErr = fmt.Errorf("render: parse embedded %s font: %w", f.weight, err)
			return
		}
		sources[f.weight] = src
	}
}

// Face returns a font face for the given weight and point size.
// Faces are cached; callers must not mutate the returned face.
func Face(w Weight, size float64) (text.Face, error) {
	sourceOnce.Do(loadSources)
	if sourceErr != nil {
		return nil, sourceErr
	}

	key := faceKey{weight: w, size: size}
	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faces[key]; ok {
		return f, nil
	}
	src, ok := sources[w]
	if !ok {
		return nil, fmt.Errorf("render: unknown font weight %d", w)
	}
	f := src.Face(size)
	faces[key] = f
	return f, nil
}

// Measure returns the pixel width and line height of s at the given
// weight and size.
func Measure(s string, w Weight, size float64) (width, height float64, err error) {
	face, err := Face(w, size)
	if err != nil {
		return 0, 0, err
	}
	width, height = text.Measure(s, face)
	return width, height, nil
}
