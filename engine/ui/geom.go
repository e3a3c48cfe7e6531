package ui

import (
	"fmt"
	"math"
)

// ===== Geometry =====

type Vec2 struct{ X, Y float32 }

func V2(x, y float32) Vec2 { return Vec2{x, y} }

// Inf is the "unbounded" size used for max cell sizes.
var Inf = float32(math.Inf(1))

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Max(o Vec2) Vec2 { return Vec2{maxf(v.X, o.X), maxf(v.Y, o.Y)} }

// Rect is an axis-aligned rectangle; Min is the top-left corner
// (positive Y goes down, matching the renderer's 2D projection).
type Rect struct{ Min, Max Vec2 }

func RectFromMinSize(min, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Vec2      { return Vec2{r.Width(), r.Height()} }

func (r Rect) CenterX() float32 { return (r.Min.X + r.Max.X) * 0.5 }
func (r Rect) CenterY() float32 { return (r.Min.Y + r.Max.Y) * 0.5 }

func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Min: Vec2{maxf(r.Min.X, o.Min.X), maxf(r.Min.Y, o.Min.Y)},
		Max: Vec2{minf(r.Max.X, o.Max.X), minf(r.Max.Y, o.Max.Y)},
	}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

// Expand grows the rect by dx horizontally and dy vertically on each side.
func (r Rect) Expand(dx, dy float32) Rect {
	r.Min.X -= dx
	r.Min.Y -= dy
	r.Max.X += dx
	r.Max.Y += dy
	return r
}

// ===== Scalar helpers =====

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isNaN(f float32) bool { return f != f }

// finite reports whether f is neither NaN nor infinite.
func finite(f float32) bool {
	return !isNaN(f) && !math.IsInf(float64(f), 0)
}

// Geometry handed to the layout must never contain NaN: a single NaN
// folded into the cross-frame size memory would poison every later
// prediction under that identifier, so bad input is fatal here.
func assertNoNaN(what string, vs ...float32) {
	for _, f := range vs {
		if isNaN(f) {
			panic(fmt.Sprintf("ui: %s contains NaN", what))
		}
	}
}

func assertFinitePositive(what string, vs ...float32) {
	for _, f := range vs {
		if !finite(f) || f < 0 {
			panic(fmt.Sprintf("ui: %s must be finite and >= 0, got %v", what, f))
		}
	}
}
