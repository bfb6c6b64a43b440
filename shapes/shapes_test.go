package shapes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"gographics/animate"
	"gographics/vec"
)

// Every shape must be animatable and able to notify its host window.
var (
	_ animate.Target        = (*Point)(nil)
	_ animate.Target        = (*Line)(nil)
	_ animate.Target        = (*Rectangle)(nil)
	_ animate.Target        = (*Oval)(nil)
	_ animate.Target        = (*Circle)(nil)
	_ animate.Target        = (*Polygon)(nil)
	_ animate.Target        = (*RotatablePolygon)(nil)
	_ animate.Target        = (*Text)(nil)
	_ animate.Target        = (*Image)(nil)
	_ animate.FrameNotifier = (*Point)(nil)
	_ animate.FrameNotifier = (*Polygon)(nil)
)

func TestPointMove(t *testing.T) {
	p := NewPoint(10, 20)
	p.Move(5, -5)
	if got := p.Position(); got != vec.New(15, 15) {
		t.Errorf("position = %v, want (15, 15)", got)
	}
	p.MoveTo(1, 2)
	if got := p.Position(); got != vec.New(1, 2) {
		t.Errorf("position = %v, want (1, 2)", got)
	}
}

func TestLineCompoundSetPosition(t *testing.T) {
	l := NewLine(vec.New(0, 0), vec.New(30, 40))
	if err := l.SetPosition(vec.New(10, 10)); err != nil {
		t.Fatal(err)
	}
	if got := l.P1(); got != vec.New(10, 10) {
		t.Errorf("p1 = %v, want (10, 10)", got)
	}
	if got := l.P2(); got != vec.New(40, 50) {
		t.Errorf("p2 = %v, want (40, 50): endpoints must shift together", got)
	}
}

func TestLineLength(t *testing.T) {
	l := NewLine(vec.New(0, 0), vec.New(3, 4))
	if got := l.Length(); got != 5 {
		t.Errorf("length = %v, want 5", got)
	}
}

func TestLineTypeValidation(t *testing.T) {
	l := NewLine(vec.New(0, 0), vec.New(1, 1))
	for _, lineType := range []string{"solid", "dotted", "dashed"} {
		if err := l.SetType(lineType); err != nil {
			t.Errorf("SetType(%q) failed: %v", lineType, err)
		}
	}
	if err := l.SetType("wavy"); err == nil {
		t.Error("SetType(\"wavy\") succeeded, want error")
	}
}

func TestRectangleCompoundMoveAndContains(t *testing.T) {
	r := NewRectangle(vec.New(50, 60), vec.New(150, 120))
	r.Move(10, 10)
	if got := r.P1(); got != vec.New(60, 70) {
		t.Errorf("p1 = %v, want (60, 70)", got)
	}
	if got := r.P2(); got != vec.New(160, 130) {
		t.Errorf("p2 = %v, want (160, 130)", got)
	}
	if !r.Contains(100, 100) {
		t.Error("Contains(100, 100) = false, want true")
	}
	if r.Contains(0, 0) {
		t.Error("Contains(0, 0) = true, want false")
	}
}

func TestOvalCenterAndSize(t *testing.T) {
	o := NewOval(vec.New(30, 350), vec.New(180, 450))
	if got := o.Center(); got != vec.New(105, 400) {
		t.Errorf("center = %v, want (105, 400)", got)
	}
	if got := o.Size(); got != vec.New(150, 100) {
		t.Errorf("size = %v, want (150, 100)", got)
	}
}

func TestPolygonSetPositionShiftsEveryVertex(t *testing.T) {
	p := NewPolygon([]vec.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}})
	if err := p.SetPosition(vec.New(100, 100)); err != nil {
		t.Fatal(err)
	}
	want := []vec.Vector2{{X: 100, Y: 100}, {X: 110, Y: 100}, {X: 105, Y: 110}}
	if diff := cmp.Diff(want, p.Points()); diff != "" {
		t.Errorf("vertices after SetPosition (-want +got):\n%s", diff)
	}
}

func TestPolygonCentroid(t *testing.T) {
	p := NewPolygon([]vec.Vector2{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 6}, {X: 0, Y: 6}})
	if got := p.Centroid(); got != vec.New(3, 3) {
		t.Errorf("centroid = %v, want (3, 3)", got)
	}
}

func TestRotatablePolygonQuarterTurn(t *testing.T) {
	square := []vec.Vector2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	r := NewRotatablePolygon(square)
	r.Rotate(90)
	// A square is symmetric under quarter turns about its centroid:
	// each vertex lands on the previous one's slot.
	want := []vec.Vector2{{X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}}
	if diff := cmp.Diff(want, r.Points(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("vertices after 90 degree turn (-want +got):\n%s", diff)
	}
	r.Rotate(270)
	if diff := cmp.Diff(square, r.Points(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("vertices after full turn (-want +got):\n%s", diff)
	}
}

func TestRotatablePolygonMoveKeepsRotationAnchor(t *testing.T) {
	triangle := []vec.Vector2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 4}}
	r := NewRotatablePolygon(triangle)
	r.Move(10, 10)
	r.Rotate(360)
	want := []vec.Vector2{{X: 10, Y: 10}, {X: 14, Y: 10}, {X: 12, Y: 14}}
	if diff := cmp.Diff(want, r.Points(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("full turn after move should land on moved vertices (-want +got):\n%s", diff)
	}
}

func TestPointInCircle(t *testing.T) {
	c := NewCircle(vec.New(100, 100), 50)
	if !PointInCircle(vec.New(120, 120), c) {
		t.Error("(120, 120) should be inside")
	}
	if !PointInCircle(vec.New(150, 100), c) {
		t.Error("(150, 100) is on the rim, should count as inside")
	}
	if PointInCircle(vec.New(151, 100), c) {
		t.Error("(151, 100) should be outside")
	}
}

func TestTextAlignmentValidation(t *testing.T) {
	txt := NewText("hello", vec.New(0, 0))
	if err := txt.SetAlignment("center"); err != nil {
		t.Errorf("SetAlignment(center) failed: %v", err)
	}
	if err := txt.SetAlignment("justified"); err == nil {
		t.Error("SetAlignment(justified) succeeded, want error")
	}
}

func TestCircleIsAnimatableByCenter(t *testing.T) {
	c := NewCircle(vec.New(10, 10), 5)
	if err := c.SetPosition(vec.New(50, 60)); err != nil {
		t.Fatal(err)
	}
	if got := c.Center(); got != vec.New(50, 60) {
		t.Errorf("center = %v, want (50, 60)", got)
	}
	if got := c.Radius(); got != 5 {
		t.Errorf("radius changed to %v", got)
	}
}
