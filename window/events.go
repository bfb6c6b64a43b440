package window

import (
	"slices"

	"github.com/veandco/go-sdl2/sdl"

	"gographics/vec"
)

func (w *Window) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		w.Close()
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		w.mu.Lock()
		if e.State == sdl.PRESSED {
			w.mousePressed = true
		} else {
			w.mousePressed = false
			click := vec.New(float64(e.X), float64(e.Y))
			w.lastClick = &click
		}
		w.mu.Unlock()
	case *sdl.MouseMotionEvent:
		w.mu.Lock()
		w.mousePos = vec.New(float64(e.X), float64(e.Y))
		w.mu.Unlock()
	case *sdl.KeyboardEvent:
		w.mu.Lock()
		if e.State == sdl.PRESSED {
			w.lastKey = e.Keysym.Sym
			if !slices.Contains(w.keysDown, e.Keysym.Sym) {
				w.keysDown = append(w.keysDown, e.Keysym.Sym)
			}
		} else {
			if i := slices.Index(w.keysDown, e.Keysym.Sym); i >= 0 {
				w.keysDown = slices.Delete(w.keysDown, i, i+1)
			}
		}
		w.mu.Unlock()
	}
}

// WaitMouse blocks until the left button is clicked and returns the
// click position. The second return is false if the window closed
// while waiting.
func (w *Window) WaitMouse() (vec.Vector2, bool) {
	w.mu.Lock()
	w.lastClick = nil
	w.mu.Unlock()
	for !w.Closed() {
		w.pump()
		w.mu.Lock()
		if w.lastClick != nil {
			pos := *w.lastClick
			w.lastClick = nil
			w.mu.Unlock()
			return pos, true
		}
		w.mu.Unlock()
		sdl.Delay(10)
	}
	return vec.Vector2{}, false
}

// WaitKey blocks until a key is pressed and returns its keycode. The
// second return is false if the window closed while waiting.
func (w *Window) WaitKey() (sdl.Keycode, bool) {
	w.mu.Lock()
	w.lastKey = sdl.K_UNKNOWN
	w.mu.Unlock()
	for !w.Closed() {
		w.pump()
		w.mu.Lock()
		if w.lastKey != sdl.K_UNKNOWN {
			key := w.lastKey
			w.lastKey = sdl.K_UNKNOWN
			w.mu.Unlock()
			return key, true
		}
		w.mu.Unlock()
		sdl.Delay(10)
	}
	return sdl.K_UNKNOWN, false
}

// CheckMouse reports whether the left button is currently held down.
func (w *Window) CheckMouse() bool {
	w.pump()
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mousePressed
}

// CheckKeys returns the keys currently held down.
func (w *Window) CheckKeys() []sdl.Keycode {
	w.pump()
	w.mu.Lock()
	defer w.mu.Unlock()
	keys := make([]sdl.Keycode, len(w.keysDown))
	copy(keys, w.keysDown)
	return keys
}

// MousePosition is the last observed cursor position, (-1, -1) before
// the cursor first enters the window.
func (w *Window) MousePosition() vec.Vector2 {
	w.pump()
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mousePos
}
