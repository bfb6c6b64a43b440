package animate

import (
	"fmt"
	"time"

	"gographics/ease"
	"gographics/vec"
)

// Tween is an immutable description of one animation: a start snapshot,
// a delta to travel, a duration, and the easing curve. The snapshot is a
// value copy, so moving the target by other means cannot shift where the
// tween will land.
type Tween struct {
	start    vec.Vector2
	delta    vec.Vector2
	duration time.Duration
	curve    func(float64) float64
}

func NewTween(start, delta vec.Vector2, duration time.Duration, style ease.Style, direction ease.Direction) (*Tween, error) {
	curve, err := ease.Curve(style, direction)
	if err != nil {
		return nil, fmt.Errorf("tween: %w", err)
	}
	return &Tween{
		start:    start,
		delta:    delta,
		duration: duration,
		curve:    curve,
	}, nil
}

// ValueAt interpolates the position for progress in [0, 1]. Completion
// writes must use Final instead so the end state is the literal sum.
func (t *Tween) ValueAt(progress float64) vec.Vector2 {
	return t.start.Add(t.delta.Scale(t.curve(progress)))
}

// Final is the exact end position, computed without the easing curve.
func (t *Tween) Final() vec.Vector2 {
	return t.start.Add(t.delta)
}

func (t *Tween) Start() vec.Vector2 {
	return t.start
}

func (t *Tween) Duration() time.Duration {
	return t.duration
}
