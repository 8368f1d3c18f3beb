package scramble

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
)

func TestCorners(t *testing.T) {
	b := placedBox{center: gg.Pt(100, 100), w: 40, h: 20}
	c := b.corners()
	assert.Equal(t, gg.Pt(80, 90), c[0])
	assert.Equal(t, gg.Pt(120, 90), c[1])
	assert.Equal(t, gg.Pt(120, 110), c[2])
	assert.Equal(t, gg.Pt(80, 110), c[3])
}

func TestCornersRotated(t *testing.T) {
	// A quarter turn swaps the extents.
	b := placedBox{center: gg.Pt(0, 0), w: 40, h: 20, angle: math.Pi / 2}
	c := b.corners()
	for _, p := range c {
		assert.InDelta(t, 10, math.Abs(p.X), 1e-9)
		assert.InDelta(t, 20, math.Abs(p.Y), 1e-9)
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		name   string
		box    placedBox
		margin float64
		want   bool
	}{
		{"centered", placedBox{center: gg.Pt(400, 300), w: 100, h: 50}, 20, true},
		{"touching edge", placedBox{center: gg.Pt(30, 300), w: 100, h: 50}, 20, false},
		{"inside without margin", placedBox{center: gg.Pt(55, 300), w: 100, h: 50}, 0, true},
		{"off canvas", placedBox{center: gg.Pt(-50, 300), w: 100, h: 50}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inBounds(tt.box.corners(), 800, 600, tt.margin)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := placedBox{center: gg.Pt(100, 100), w: 60, h: 30}
	tests := []struct {
		name   string
		other  placedBox
		margin float64
		want   bool
	}{
		{"same spot", base, 0, true},
		{"far apart", placedBox{center: gg.Pt(400, 400), w: 60, h: 30}, 0, false},
		{"side by side", placedBox{center: gg.Pt(170, 100), w: 60, h: 30}, 0, false},
		{"side by side within margin", placedBox{center: gg.Pt(170, 100), w: 60, h: 30}, 20, true},
		{"diagonal clear", placedBox{center: gg.Pt(160, 140), w: 50, h: 30}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlaps(base.corners(), tt.other.corners(), tt.margin)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlapsRotated(t *testing.T) {
	// A long thin box rotated 45 degrees slips between two boxes that
	// its axis-aligned bounds would hit.
	a := placedBox{center: gg.Pt(100, 100), w: 20, h: 20}
	b := placedBox{center: gg.Pt(140, 100), w: 80, h: 10, angle: math.Pi / 4}
	assert.False(t, overlaps(a.corners(), b.corners(), 0))

	c := placedBox{center: gg.Pt(110, 110), w: 80, h: 10, angle: math.Pi / 4}
	assert.True(t, overlaps(a.corners(), c.corners(), 0))
}
