package scramble

import (
	"math"

	"github.com/gogpu/gg"
)

// placedBox is the collision rectangle of a word already on the canvas:
// a center point, unrotated extents, and a rotation in radians.
type placedBox struct {
	center gg.Point
	w, h   float64
	angle  float64
}

// corners returns the four corners of the rotated rectangle in
// top-left, top-right, bottom-right, bottom-left order.
func (b placedBox) corners() [4]gg.Point {
	hw, hh := b.w/2, b.h/2
	offsets := [4]gg.Point{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	var out [4]gg.Point
	for i, off := range offsets {
		if b.angle != 0 {
			off = off.Rotate(b.angle)
		}
		out[i] = b.center.Add(off)
	}
	return out
}

// inBounds reports whether every corner lies inside the width x height
// canvas, inset by margin on all sides.
func inBounds(corners [4]gg.Point, width, height, margin float64) bool {
	for _, c := range corners {
		if c.X < margin || c.X >= width-margin || c.Y < margin || c.Y >= height-margin {
			return false
		}
	}
	return true
}

// separatingAxes returns the unit normals of the polygon's edges.
func separatingAxes(corners [4]gg.Point) []gg.Point {
	axes := make([]gg.Point, 0, 4)
	for i := range corners {
		edge := corners[(i+1)%len(corners)].Sub(corners[i])
		normal := gg.Pt(-edge.Y, edge.X)
		if normal.Length() == 0 {
			continue
		}
		axes = append(axes, normal.Normalize())
	}
	return axes
}

// project returns the min and max scalar projection of the polygon onto
// the axis.
func project(corners [4]gg.Point, axis gg.Point) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, c := range corners {
		p := c.Dot(axis)
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	return lo, hi
}

// overlaps reports whether the two rectangles overlap, using the
// separating axis theorem. margin expands both projections so that
// rectangles closer than margin also count as overlapping.
func overlaps(a, b [4]gg.Point, margin float64) bool {
	axes := append(separatingAxes(a), separatingAxes(b)...)
	for _, axis := range axes {
		aLo, aHi := project(a, axis)
		bLo, bHi := project(b, axis)
		if aHi+margin < bLo-margin || bHi+margin < aLo-margin {
			return false
		}
	}
	return true
}
