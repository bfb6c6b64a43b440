package shapes

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"gographics/color"
	"gographics/vec"
	"gographics/window"
)

// Line is a segment between two endpoints with a solid, dotted or
// dashed stroke. Both endpoints move together when the line animates.
type Line struct {
	base
	p1, p2   vec.Vector2
	lineType string
}

func NewLine(p1, p2 vec.Vector2) *Line {
	return &Line{base: newBase(), p1: p1, p2: p2, lineType: "solid"}
}

func (l *Line) Draw(win *window.Window) error {
	return l.attach(l, win)
}

func (l *Line) Undraw() {
	l.detach(l)
}

// SetType selects the stroke style: "solid", "dotted" or "dashed".
func (l *Line) SetType(lineType string) error {
	switch lineType {
	case "solid", "dotted", "dashed":
	default:
		return fmt.Errorf("invalid line type: %s", lineType)
	}
	l.mu.Lock()
	l.lineType = lineType
	l.mu.Unlock()
	return nil
}

func (l *Line) P1() vec.Vector2 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p1
}

func (l *Line) P2() vec.Vector2 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.p2
}

func (l *Line) SetP1(v vec.Vector2) {
	l.mu.Lock()
	l.p1 = v
	l.mu.Unlock()
}

func (l *Line) SetP2(v vec.Vector2) {
	l.mu.Lock()
	l.p2 = v
	l.mu.Unlock()
}

func (l *Line) Length() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return math.Hypot(l.p1.X-l.p2.X, l.p1.Y-l.p2.Y)
}

// Position is the first endpoint; it anchors animations.
func (l *Line) Position() vec.Vector2 {
	return l.P1()
}

// SetPosition moves the anchor to v and carries the second endpoint
// along by the same delta in the same write.
func (l *Line) SetPosition(v vec.Vector2) error {
	l.mu.Lock()
	delta := v.Sub(l.p1)
	l.p1 = v
	l.p2 = l.p2.Add(delta)
	l.mu.Unlock()
	return nil
}

func (l *Line) Move(dx, dy float64) {
	l.mu.Lock()
	delta := vec.New(dx, dy)
	l.p1 = l.p1.Add(delta)
	l.p2 = l.p2.Add(delta)
	l.mu.Unlock()
}

func (l *Line) DrawOn(canvas *gg.Context) {
	l.mu.Lock()
	p1, p2 := l.p1, l.p2
	width, outline, lineType := l.width, l.outline, l.lineType
	l.mu.Unlock()

	switch lineType {
	case "dotted":
		canvas.SetDash(1, width*2)
	case "dashed":
		canvas.SetDash(width*3, width*1.5)
	}
	canvas.SetColor(color.Parse(outline))
	canvas.SetLineWidth(width)
	canvas.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	canvas.Stroke()
	canvas.SetDash()
}

func (l *Line) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("Line(%v -> %v, type=%s)", l.p1, l.p2, l.lineType)
}
