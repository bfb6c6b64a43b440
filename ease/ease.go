package ease

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidEasing reports an easing style or direction outside the
// supported set. Animations must fail with it up front instead of
// quietly falling back to a linear curve.
var ErrInvalidEasing = errors.New("invalid easing")

type Style int

const (
	Linear Style = iota
	Sine
	Quad
	Cubic
	Quart
	Quint
	Expo
	Circ
	Back
	Elastic
	Bounce
)

func (s Style) String() string {
	switch s {
	case Linear:
		return "linear"
	case Sine:
		return "sine"
	case Quad:
		return "quad"
	case Cubic:
		return "cubic"
	case Quart:
		return "quart"
	case Quint:
		return "quint"
	case Expo:
		return "expo"
	case Circ:
		return "circ"
	case Back:
		return "back"
	case Elastic:
		return "elastic"
	case Bounce:
		return "bounce"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

type Direction int

const (
	In Direction = iota
	Out
	InOut
)

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	case InOut:
		return "inout"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Curve returns the easing function for style composed with direction.
// The returned function maps progress in [0, 1] to eased progress, with
// the endpoints pinned to exactly 0 and 1. Back and Elastic overshoot
// that range mid-curve.
func Curve(style Style, direction Direction) (func(float64) float64, error) {
	if style < Linear || style > Bounce {
		return nil, fmt.Errorf("%w: unknown style %v", ErrInvalidEasing, style)
	}
	switch direction {
	case In:
		return func(t float64) float64 { return easeIn(style, t) }, nil
	case Out:
		return func(t float64) float64 { return 1 - easeIn(style, 1-t) }, nil
	case InOut:
		return func(t float64) float64 {
			if t < 0.5 {
				return easeIn(style, 2*t) / 2
			}
			return 1 - easeIn(style, 2*(1-t))/2
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown direction %v", ErrInvalidEasing, direction)
}

// Ease applies the curve for (style, direction) to t. It is the
// scheduling-free entry point for callers that only need a sample.
func Ease(t float64, style Style, direction Direction) (float64, error) {
	curve, err := Curve(style, direction)
	if err != nil {
		return 0, err
	}
	return curve(t), nil
}

// easeIn is the single base dispatch the direction rules compose over.
// Pinning the endpoints here keeps ease(0)==0 and ease(1)==1 exact for
// every style even where the formula itself would round off (Sine, Expo).
func easeIn(style Style, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch style {
	case Linear:
		return t
	case Sine:
		return 1 - math.Cos(t*math.Pi/2)
	case Quad:
		return t * t
	case Cubic:
		return t * t * t
	case Quart:
		return t * t * t * t
	case Quint:
		return t * t * t * t * t
	case Expo:
		return math.Pow(2, 10*(t-1))
	case Circ:
		return 1 - math.Sqrt(1-t*t)
	case Back:
		const s = 1.70158
		return t * t * ((s+1)*t - s)
	case Elastic:
		return -math.Pow(2, 10*(t-1)) * math.Sin((t-1.1)*2*math.Pi/0.3)
	case Bounce:
		return bounce(t)
	}
	panic("ease: unreachable style " + style.String())
}

// bounce is the classic four-segment piecewise parabola. It is the only
// bounce formula in the package; Out and InOut shapes come from the
// direction reflections above, never from a second hand-written curve.
func bounce(t float64) float64 {
	const n = 7.5625
	const d = 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}
