package shapes

import (
	"errors"
	"sync"

	"gographics/window"
)

// ErrAlreadyDrawn reports a Draw call on a shape that is already
// attached to a window.
var ErrAlreadyDrawn = errors.New("shape is already drawn")

// base carries what every shape shares: the window it is attached to,
// outline styling, and the lock that keeps animation writes and raster
// reads consistent.
type base struct {
	mu      sync.Mutex
	win     *window.Window
	outline string
	width   float64
}

func newBase() base {
	return base{outline: "black", width: 1}
}

func (b *base) attach(d window.Drawable, win *window.Window) error {
	b.mu.Lock()
	if b.win != nil {
		b.mu.Unlock()
		return ErrAlreadyDrawn
	}
	b.win = win
	b.mu.Unlock()
	win.AddItem(d)
	return nil
}

func (b *base) detach(d window.Drawable) {
	b.mu.Lock()
	win := b.win
	b.win = nil
	b.mu.Unlock()
	if win != nil {
		win.DeleteItem(d)
	}
}

// FrameChanged makes every shape an animate.FrameNotifier: a drawn
// shape asks its window for a repaint after each animation write, and
// the window coalesces however many arrive before the next frame.
func (b *base) FrameChanged() {
	b.mu.Lock()
	win := b.win
	b.mu.Unlock()
	if win != nil {
		win.RequestRedraw()
	}
}

// SetOutline sets the outline to a CSS color string.
func (b *base) SetOutline(color string) {
	b.mu.Lock()
	b.outline = color
	b.mu.Unlock()
}

// SetWidth sets the outline stroke width.
func (b *base) SetWidth(width float64) {
	b.mu.Lock()
	b.width = width
	b.mu.Unlock()
}
