package shapes

import (
	"fmt"

	"github.com/fogleman/gg"

	"gographics/color"
	"gographics/rect"
	"gographics/vec"
	"gographics/window"
)

// Oval is the ellipse inscribed in the box spanned by two corner
// points. Like Rectangle, both corners travel together when animated.
type Oval struct {
	base
	p1, p2 vec.Vector2
	fill   string
}

func NewOval(p1, p2 vec.Vector2) *Oval {
	return &Oval{base: newBase(), p1: p1, p2: p2}
}

func (o *Oval) Draw(win *window.Window) error {
	return o.attach(o, win)
}

func (o *Oval) Undraw() {
	o.detach(o)
}

func (o *Oval) SetFill(fill string) {
	o.mu.Lock()
	o.fill = fill
	o.mu.Unlock()
}

func (o *Oval) P1() vec.Vector2 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.p1
}

func (o *Oval) P2() vec.Vector2 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.p2
}

func (o *Oval) Center() vec.Vector2 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return rect.FromCorners(o.p1, o.p2).Center()
}

// Size is the width and height of the bounding box.
func (o *Oval) Size() vec.Vector2 {
	o.mu.Lock()
	defer o.mu.Unlock()
	box := rect.FromCorners(o.p1, o.p2)
	return vec.New(box.Width(), box.Height())
}

func (o *Oval) Position() vec.Vector2 {
	return o.P1()
}

func (o *Oval) SetPosition(v vec.Vector2) error {
	o.mu.Lock()
	delta := v.Sub(o.p1)
	o.p1 = v
	o.p2 = o.p2.Add(delta)
	o.mu.Unlock()
	return nil
}

func (o *Oval) Move(dx, dy float64) {
	o.mu.Lock()
	delta := vec.New(dx, dy)
	o.p1 = o.p1.Add(delta)
	o.p2 = o.p2.Add(delta)
	o.mu.Unlock()
}

func (o *Oval) DrawOn(canvas *gg.Context) {
	o.mu.Lock()
	box := rect.FromCorners(o.p1, o.p2)
	fill, outline, width := o.fill, o.outline, o.width
	o.mu.Unlock()

	center := box.Center()
	rx, ry := box.Width()/2, box.Height()/2
	if fill != "" {
		canvas.SetColor(color.Parse(fill))
		canvas.DrawEllipse(center.X, center.Y, rx, ry)
		canvas.Fill()
	}
	canvas.SetColor(color.Parse(outline))
	canvas.SetLineWidth(width)
	canvas.DrawEllipse(center.X, center.Y, rx, ry)
	canvas.Stroke()
}

func (o *Oval) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return fmt.Sprintf("Oval(%v, %v)", o.p1, o.p2)
}
