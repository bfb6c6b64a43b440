package animate

import (
	"fmt"
	"sync"
	"time"

	"gographics/vec"
)

// TickInterval is the cadence every running animation samples time at.
// It is independent of the host's repaint rate.
const TickInterval = 10 * time.Millisecond

// Target is the capability an object needs to be animatable: read and
// write one interpolatable position. Compound shapes move every
// constituent point by the same delta inside a single SetPosition call.
type Target interface {
	Position() vec.Vector2
	SetPosition(vec.Vector2) error
}

// FrameNotifier is an optional hook a Target may implement. It runs
// after every position write so the host can schedule a repaint; hosts
// are free to coalesce notifications.
type FrameNotifier interface {
	FrameChanged()
}

// Animation is the handle for one in-flight tween. It is created by
// Animator.Start and drives its target from a dedicated goroutine; the
// caller that started it never blocks.
type Animation struct {
	tween  *Tween
	target Target

	mu       sync.Mutex
	finished bool
	warned   bool

	cancelled chan struct{}
	done      chan struct{}

	// set by the Animator to release the per-target slot
	onFinish func(*Animation)
}

func newAnimation(tween *Tween, target Target) *Animation {
	return &Animation{
		tween:     tween,
		target:    target,
		cancelled: make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Done is closed once the animation reached a terminal state, whether
// it completed naturally or was cancelled.
func (a *Animation) Done() <-chan struct{} {
	return a.done
}

// Running reports whether the animation is still ticking.
func (a *Animation) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.finished
}

// Cancel stops future ticks. With snapToFinal the exact final value is
// written first; otherwise the last written value is retained. Cancel
// is idempotent and a no-op after natural completion.
func (a *Animation) Cancel(snapToFinal bool) {
	a.mu.Lock()
	if a.finished {
		a.mu.Unlock()
		return
	}
	a.finished = true
	close(a.cancelled)
	if snapToFinal {
		a.write(a.tween.Final())
	}
	a.mu.Unlock()
}

// run is the animation's scheduling loop. It owns the tween exclusively
// and exits on completion or cancellation; the done channel closes in
// either case.
func (a *Animation) run() {
	defer func() {
		if a.onFinish != nil {
			a.onFinish(a)
		}
		close(a.done)
	}()

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()
	started := time.Now()

	for {
		select {
		case <-a.cancelled:
			return
		case <-ticker.C:
			elapsed := time.Since(started)
			progress := elapsed.Seconds() / a.tween.Duration().Seconds()
			if a.step(progress) {
				return
			}
		}
	}
}

// step applies one tick. It reports true once the terminal write
// happened; that write bypasses the eased formula entirely.
func (a *Animation) step(progress float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finished {
		return true
	}
	if progress >= 1 {
		a.finished = true
		a.write(a.tween.Final())
		return true
	}
	if progress < 0 {
		progress = 0
	}
	a.write(a.tween.ValueAt(progress))
	return false
}

// finishNow completes a zero-duration animation in place: one write of
// the exact final value, no goroutine, no intermediate state.
func (a *Animation) finishNow() {
	a.mu.Lock()
	a.finished = true
	a.write(a.tween.Final())
	a.mu.Unlock()
	close(a.done)
}

// write must run with a.mu held. A rejected write is a warning, not a
// failure: the animation keeps its bookkeeping either way.
func (a *Animation) write(value vec.Vector2) {
	if err := a.target.SetPosition(value); err != nil {
		if !a.warned {
			a.warned = true
			fmt.Println("animate: target rejected position write:", err)
		}
	}
	if notifier, ok := a.target.(FrameNotifier); ok {
		notifier.FrameChanged()
	}
}
