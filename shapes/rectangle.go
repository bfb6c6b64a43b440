package shapes

import (
	"fmt"

	"github.com/fogleman/gg"

	"gographics/color"
	"gographics/rect"
	"gographics/vec"
	"gographics/window"
)

// Rectangle is defined by two opposite corner points. Animating it
// moves both corners by the same delta in the same tick.
type Rectangle struct {
	base
	p1, p2 vec.Vector2
	fill   string
}

func NewRectangle(p1, p2 vec.Vector2) *Rectangle {
	return &Rectangle{base: newBase(), p1: p1, p2: p2}
}

func (r *Rectangle) Draw(win *window.Window) error {
	return r.attach(r, win)
}

func (r *Rectangle) Undraw() {
	r.detach(r)
}

// SetFill sets the interior to a CSS color string; the empty string
// leaves the interior unfilled.
func (r *Rectangle) SetFill(fill string) {
	r.mu.Lock()
	r.fill = fill
	r.mu.Unlock()
}

func (r *Rectangle) P1() vec.Vector2 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.p1
}

func (r *Rectangle) P2() vec.Vector2 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.p2
}

func (r *Rectangle) Bounds() rect.Rect {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rect.FromCorners(r.p1, r.p2)
}

// Contains reports whether the window coordinate lies inside.
func (r *Rectangle) Contains(x, y float64) bool {
	return r.Bounds().ContainsPoint(x, y)
}

// Position is the first corner; it anchors animations.
func (r *Rectangle) Position() vec.Vector2 {
	return r.P1()
}

// SetPosition moves the anchor corner to v and the opposite corner by
// the same delta atomically.
func (r *Rectangle) SetPosition(v vec.Vector2) error {
	r.mu.Lock()
	delta := v.Sub(r.p1)
	r.p1 = v
	r.p2 = r.p2.Add(delta)
	r.mu.Unlock()
	return nil
}

func (r *Rectangle) Move(dx, dy float64) {
	r.mu.Lock()
	delta := vec.New(dx, dy)
	r.p1 = r.p1.Add(delta)
	r.p2 = r.p2.Add(delta)
	r.mu.Unlock()
}

func (r *Rectangle) DrawOn(canvas *gg.Context) {
	r.mu.Lock()
	box := rect.FromCorners(r.p1, r.p2)
	fill, outline, width := r.fill, r.outline, r.width
	r.mu.Unlock()

	if fill != "" {
		canvas.SetColor(color.Parse(fill))
		canvas.DrawRectangle(box.Left, box.Top, box.Width(), box.Height())
		canvas.Fill()
	}
	canvas.SetColor(color.Parse(outline))
	canvas.SetLineWidth(width)
	canvas.DrawRectangle(box.Left, box.Top, box.Width(), box.Height())
	canvas.Stroke()
}

func (r *Rectangle) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fmt.Sprintf("Rectangle(%v, %v)", r.p1, r.p2)
}
