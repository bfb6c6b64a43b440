package animate

import (
	"sync"
	"time"

	"gographics/ease"
	"gographics/vec"
)

// Animator starts and tracks animations. It enforces one animation per
// target: starting a new one supersedes whatever is in flight on that
// target, so two runners never interleave writes to the same attribute.
// All other animation state lives inside each Animation/Tween pair.
type Animator struct {
	mu     sync.Mutex
	active map[Target]*Animation
}

func NewAnimator() *Animator {
	return &Animator{
		active: make(map[Target]*Animation),
	}
}

// Start supersedes whatever is running on target, snapshots the
// position it stopped at and begins animating by delta over duration
// with the given easing. It returns immediately; the returned handle
// can be waited on or cancelled.
//
// An unknown easing style or direction fails here, before the running
// animation is disturbed. A duration of zero or less is not an error:
// the target is moved to the exact final position at once and the
// returned handle is already completed.
func (an *Animator) Start(target Target, delta vec.Vector2, duration time.Duration, style ease.Style, direction ease.Direction) (*Animation, error) {
	if _, err := ease.Curve(style, direction); err != nil {
		return nil, err
	}

	an.mu.Lock()
	if prev := an.active[target]; prev != nil {
		prev.Cancel(false)
		delete(an.active, target)
	}
	// Snapshot only after the previous animation stopped writing, so
	// the tween starts from the position it actually left behind.
	tween, err := NewTween(target.Position(), delta, duration, style, direction)
	if err != nil {
		an.mu.Unlock()
		return nil, err
	}
	a := newAnimation(tween, target)

	if duration <= 0 {
		an.mu.Unlock()
		a.finishNow()
		return a, nil
	}

	an.active[target] = a
	an.mu.Unlock()

	a.onFinish = func(fin *Animation) {
		an.mu.Lock()
		if an.active[target] == fin {
			delete(an.active, target)
		}
		an.mu.Unlock()
	}
	go a.run()
	return a, nil
}

// CancelAll stops every in-flight animation, retaining last written
// values. Hosts call it on shutdown so no runner keeps ticking against
// a dead window.
func (an *Animator) CancelAll() {
	an.mu.Lock()
	running := make([]*Animation, 0, len(an.active))
	for _, a := range an.active {
		running = append(running, a)
	}
	an.mu.Unlock()
	for _, a := range running {
		a.Cancel(false)
	}
}
