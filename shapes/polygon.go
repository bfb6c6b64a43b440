package shapes

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"gographics/color"
	"gographics/vec"
	"gographics/window"
)

// Polygon is a closed shape over an arbitrary vertex list. Animating it
// applies one delta to every vertex inside a single write, so the
// vertices can never skew apart mid-animation.
type Polygon struct {
	base
	points []vec.Vector2
	fill   string
}

func NewPolygon(points []vec.Vector2) *Polygon {
	copied := make([]vec.Vector2, len(points))
	copy(copied, points)
	return &Polygon{base: newBase(), points: copied}
}

func (p *Polygon) Draw(win *window.Window) error {
	return p.attach(p, win)
}

func (p *Polygon) Undraw() {
	p.detach(p)
}

func (p *Polygon) SetFill(fill string) {
	p.mu.Lock()
	p.fill = fill
	p.mu.Unlock()
}

func (p *Polygon) Points() []vec.Vector2 {
	p.mu.Lock()
	defer p.mu.Unlock()
	points := make([]vec.Vector2, len(p.points))
	copy(points, p.points)
	return points
}

// Centroid is the vertex average.
func (p *Polygon) Centroid() vec.Vector2 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return centroid(p.points)
}

func centroid(points []vec.Vector2) vec.Vector2 {
	var sum vec.Vector2
	for _, pt := range points {
		sum = sum.Add(pt)
	}
	return sum.Scale(1 / float64(len(points)))
}

// Position is the first vertex; it anchors animations.
func (p *Polygon) Position() vec.Vector2 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.points[0]
}

// SetPosition moves the anchor vertex to v and shifts every other
// vertex by the same delta in the same write.
func (p *Polygon) SetPosition(v vec.Vector2) error {
	p.mu.Lock()
	delta := v.Sub(p.points[0])
	for i := range p.points {
		p.points[i] = p.points[i].Add(delta)
	}
	p.mu.Unlock()
	return nil
}

func (p *Polygon) Move(dx, dy float64) {
	p.mu.Lock()
	delta := vec.New(dx, dy)
	for i := range p.points {
		p.points[i] = p.points[i].Add(delta)
	}
	p.mu.Unlock()
}

func (p *Polygon) DrawOn(canvas *gg.Context) {
	p.mu.Lock()
	points := make([]vec.Vector2, len(p.points))
	copy(points, p.points)
	fill, outline, width := p.fill, p.outline, p.width
	p.mu.Unlock()

	if len(points) < 2 {
		return
	}
	canvas.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		canvas.LineTo(pt.X, pt.Y)
	}
	canvas.ClosePath()
	if fill != "" {
		canvas.SetColor(color.Parse(fill))
		canvas.FillPreserve()
	}
	canvas.SetColor(color.Parse(outline))
	canvas.SetLineWidth(width)
	canvas.Stroke()
}

func (p *Polygon) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fmt.Sprintf("Polygon(%d points)", len(p.points))
}

// RotatablePolygon is a Polygon that can rotate about the centroid of
// its original vertices. Rotation always recomputes from the original
// snapshot, so repeated small rotations do not accumulate drift.
type RotatablePolygon struct {
	*Polygon
	originals []vec.Vector2
	angle     float64
}

func NewRotatablePolygon(points []vec.Vector2) *RotatablePolygon {
	poly := NewPolygon(points)
	originals := make([]vec.Vector2, len(points))
	copy(originals, points)
	return &RotatablePolygon{Polygon: poly, originals: originals}
}

// Rotate turns the polygon by degrees (cumulative).
func (r *RotatablePolygon) Rotate(degrees float64) {
	r.mu.Lock()
	r.angle += degrees
	theta := r.angle * math.Pi / 180
	sin, cos := math.Sin(theta), math.Cos(theta)
	center := centroid(r.originals)
	for i, orig := range r.originals {
		dx := orig.X - center.X
		dy := orig.Y - center.Y
		r.points[i] = vec.New(
			center.X+dx*cos-dy*sin,
			center.Y+dx*sin+dy*cos,
		)
	}
	r.mu.Unlock()
}

func (r *RotatablePolygon) Angle() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.angle
}

func (r *RotatablePolygon) OriginalPoints() []vec.Vector2 {
	r.mu.Lock()
	defer r.mu.Unlock()
	originals := make([]vec.Vector2, len(r.originals))
	copy(originals, r.originals)
	return originals
}

// SetPosition shifts the rotated vertices and the original snapshot by
// the same delta, so a later Rotate stays anchored to the new spot.
func (r *RotatablePolygon) SetPosition(v vec.Vector2) error {
	r.mu.Lock()
	delta := v.Sub(r.points[0])
	for i := range r.points {
		r.points[i] = r.points[i].Add(delta)
	}
	for i := range r.originals {
		r.originals[i] = r.originals[i].Add(delta)
	}
	r.mu.Unlock()
	return nil
}

func (r *RotatablePolygon) Move(dx, dy float64) {
	r.mu.Lock()
	delta := vec.New(dx, dy)
	for i := range r.points {
		r.points[i] = r.points[i].Add(delta)
	}
	for i := range r.originals {
		r.originals[i] = r.originals[i].Add(delta)
	}
	r.mu.Unlock()
}
