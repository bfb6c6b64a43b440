package rect

import (
	"testing"

	"gographics/vec"
)

func TestFromCornersCanonicalizes(t *testing.T) {
	r := FromCorners(vec.New(150, 20), vec.New(50, 120))
	if r.Left != 50 || r.Top != 20 || r.Right != 150 || r.Bottom != 120 {
		t.Errorf("got %v, want Rect(left=50, top=20, right=150, bottom=120)", r)
	}
	if r.Width() != 100 || r.Height() != 100 {
		t.Errorf("size = %vx%v, want 100x100", r.Width(), r.Height())
	}
	if r.Center() != vec.New(100, 70) {
		t.Errorf("center = %v, want (100, 70)", r.Center())
	}
}

func TestContainsPoint(t *testing.T) {
	r := New(0, 0, 10, 10)
	if !r.ContainsPoint(0, 0) {
		t.Error("top-left corner should be inside")
	}
	if r.ContainsPoint(10, 10) {
		t.Error("bottom-right corner is exclusive")
	}
}

func TestInflate(t *testing.T) {
	r := New(10, 10, 20, 20).Inflate(2, 3)
	if r != New(8, 7, 22, 23) {
		t.Errorf("inflated = %v", r)
	}
}

func TestIsEmpty(t *testing.T) {
	if !New(5, 5, 5, 10).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
	if New(0, 0, 1, 1).IsEmpty() {
		t.Error("unit rect should not be empty")
	}
}
