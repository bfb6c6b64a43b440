package shapes

import (
	"fmt"

	"github.com/fogleman/gg"

	"gographics/color"
	"gographics/vec"
	"gographics/window"
)

// Point is a position in 2D space drawn as a small filled square.
type Point struct {
	base
	pos  vec.Vector2
	size float64
}

func NewPoint(x, y float64) *Point {
	p := &Point{base: newBase(), pos: vec.New(x, y), size: 2}
	return p
}

func (p *Point) Draw(win *window.Window) error {
	return p.attach(p, win)
}

func (p *Point) Undraw() {
	p.detach(p)
}

func (p *Point) Position() vec.Vector2 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos
}

func (p *Point) SetPosition(v vec.Vector2) error {
	p.mu.Lock()
	p.pos = v
	p.mu.Unlock()
	return nil
}

func (p *Point) Move(dx, dy float64) {
	p.mu.Lock()
	p.pos = p.pos.Add(vec.New(dx, dy))
	p.mu.Unlock()
}

func (p *Point) MoveTo(x, y float64) {
	p.SetPosition(vec.New(x, y))
}

// SetSize sets the drawn square's side length in pixels.
func (p *Point) SetSize(size float64) {
	p.mu.Lock()
	p.size = size
	p.mu.Unlock()
}

func (p *Point) Clone() *Point {
	pos := p.Position()
	return NewPoint(pos.X, pos.Y)
}

func (p *Point) DrawOn(canvas *gg.Context) {
	p.mu.Lock()
	pos, size, outline := p.pos, p.size, p.outline
	p.mu.Unlock()

	canvas.SetColor(color.Parse(outline))
	canvas.DrawRectangle(pos.X-size/2, pos.Y-size/2, size, size)
	canvas.Fill()
}

func (p *Point) String() string {
	pos := p.Position()
	return fmt.Sprintf("Point(%v, %v)", pos.X, pos.Y)
}
