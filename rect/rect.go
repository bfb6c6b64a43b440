package rect

import (
	"fmt"
	"math"

	"gographics/vec"
)

// Rect is an axis-aligned box in window coordinates. It is a value
// type: geometry helpers return new rects instead of mutating.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func New(left, top, right, bottom float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
	}
}

// FromCorners builds the box spanned by two opposite corners, in any
// order. Shapes defined by corner pairs (rectangles, ovals) canonicalize
// through here so width and height stay non-negative.
func FromCorners(p1, p2 vec.Vector2) Rect {
	return Rect{
		Left:   math.Min(p1.X, p2.X),
		Top:    math.Min(p1.Y, p2.Y),
		Right:  math.Max(p1.X, p2.X),
		Bottom: math.Max(p1.Y, p2.Y),
	}
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

func (r Rect) Center() vec.Vector2 {
	return vec.New((r.Left+r.Right)/2, (r.Top+r.Bottom)/2)
}

// Inflate grows the box by dx and dy on every side.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left - dx,
		Top:    r.Top - dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.Left && x < r.Right &&
		y >= r.Top && y < r.Bottom
}

func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(left=%.2f, top=%.2f, right=%.2f, bottom=%.2f)", r.Left, r.Top, r.Right, r.Bottom)
}
