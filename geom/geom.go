// Package geom holds small value types that can be played back by an
// anim.InterpolatedAnimation.
package geom

import "github.com/matt-g-everett/ledanim/anim"

// Vec2 is a point or offset in two dimensions.
type Vec2 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Lerp blends v toward end.
func (v Vec2) Lerp(end Vec2, t float64) Vec2 {
	return Vec2{anim.LerpFloat(v.X, end.X, t), anim.LerpFloat(v.Y, end.Y, t)}
}

// Vec3 is a point or offset in three dimensions.
type Vec3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Lerp blends v toward end.
func (v Vec3) Lerp(end Vec3, t float64) Vec3 {
	return Vec3{
		anim.LerpFloat(v.X, end.X, t),
		anim.LerpFloat(v.Y, end.Y, t),
		anim.LerpFloat(v.Z, end.Z, t),
	}
}

// Rect is an axis-aligned rectangle. Width and Height may be negative, in
// which case the rectangle extends left or up from X, Y.
type Rect struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Lerp blends every edge of r toward end.
func (r Rect) Lerp(end Rect, t float64) Rect {
	return Rect{
		X:      anim.LerpFloat(r.X, end.X, t),
		Y:      anim.LerpFloat(r.Y, end.Y, t),
		Width:  anim.LerpFloat(r.Width, end.Width, t),
		Height: anim.LerpFloat(r.Height, end.Height, t),
	}
}

// Left returns the smallest x covered by r.
func (r Rect) Left() float64 { return min(r.X, r.X+r.Width) }

// Right returns the largest x covered by r.
func (r Rect) Right() float64 { return max(r.X, r.X+r.Width) }

// Top returns the smallest y covered by r.
func (r Rect) Top() float64 { return min(r.Y, r.Y+r.Height) }

// Bottom returns the largest y covered by r.
func (r Rect) Bottom() float64 { return max(r.Y, r.Y+r.Height) }

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Overlaps reports whether r and o share any area. Empty rectangles never
// overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Width == 0 || r.Height == 0 || o.Width == 0 || o.Height == 0 {
		return false
	}
	return r.Left() < o.Right() && r.Right() > o.Left() && r.Top() < o.Bottom() && r.Bottom() > o.Top()
}
