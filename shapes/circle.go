package shapes

import (
	"fmt"

	"github.com/fogleman/gg"

	"gographics/color"
	"gographics/vec"
	"gographics/window"
)

// Circle is a center point plus a radius.
type Circle struct {
	base
	center vec.Vector2
	radius float64
	fill   string
}

func NewCircle(center vec.Vector2, radius float64) *Circle {
	return &Circle{base: newBase(), center: center, radius: radius}
}

func (c *Circle) Draw(win *window.Window) error {
	return c.attach(c, win)
}

func (c *Circle) Undraw() {
	c.detach(c)
}

func (c *Circle) SetFill(fill string) {
	c.mu.Lock()
	c.fill = fill
	c.mu.Unlock()
}

func (c *Circle) Center() vec.Vector2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.center
}

func (c *Circle) Radius() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.radius
}

func (c *Circle) Position() vec.Vector2 {
	return c.Center()
}

func (c *Circle) SetPosition(v vec.Vector2) error {
	c.mu.Lock()
	c.center = v
	c.mu.Unlock()
	return nil
}

func (c *Circle) Move(dx, dy float64) {
	c.mu.Lock()
	c.center = c.center.Add(vec.New(dx, dy))
	c.mu.Unlock()
}

func (c *Circle) DrawOn(canvas *gg.Context) {
	c.mu.Lock()
	center, radius := c.center, c.radius
	fill, outline, width := c.fill, c.outline, c.width
	c.mu.Unlock()

	if fill != "" {
		canvas.SetColor(color.Parse(fill))
		canvas.DrawCircle(center.X, center.Y, radius)
		canvas.Fill()
	}
	canvas.SetColor(color.Parse(outline))
	canvas.SetLineWidth(width)
	canvas.DrawCircle(center.X, center.Y, radius)
	canvas.Stroke()
}

func (c *Circle) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("Circle(center=%v, radius=%v)", c.center, c.radius)
}

// PointInCircle reports whether p lies inside or on c.
func PointInCircle(p vec.Vector2, c *Circle) bool {
	center := c.Center()
	radius := c.Radius()
	dx := p.X - center.X
	dy := p.Y - center.Y
	return dx*dx+dy*dy <= radius*radius
}
