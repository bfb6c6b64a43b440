package window

import (
	"fmt"
	"image"
	col "image/color"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/fogleman/gg"
	"github.com/veandco/go-sdl2/sdl"

	"gographics/animate"
	"gographics/color"
	"gographics/ease"
	"gographics/task"
	"gographics/trace"
	"gographics/vec"
)

// Drawable is anything the window can raster. Shapes implement it.
type Drawable interface {
	DrawOn(canvas *gg.Context)
}

var sdlInit sync.Once

// Window hosts a set of drawables, rasters them with gg and blits the
// result to an SDL surface. All SDL calls happen on the goroutine that
// pumps the window (Update, Pause, WaitMouse, ...); everything else may
// be called from any goroutine.
type Window struct {
	sdlWindow *sdl.Window
	surface   *gg.Context
	width     int
	height    int
	autoflush bool

	redMask   uint32
	greenMask uint32
	blueMask  uint32
	alphaMask uint32

	mu         sync.Mutex
	items      []Drawable
	background col.Color
	closed     bool

	mousePos     vec.Vector2
	mousePressed bool
	lastClick    *vec.Vector2
	lastKey      sdl.Keycode
	keysDown     []sdl.Keycode

	needsRedraw atomic.Bool
	tasks       *task.Queue
	animator    *animate.Animator
	recorder    *trace.Recorder

	lastFrame time.Time
	delta     float64
}

func New(title string, width, height int, autoflush bool) (*Window, error) {
	var initErr error
	sdlInit.Do(func() {
		initErr = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	})
	if initErr != nil {
		return nil, fmt.Errorf("window: sdl init: %w", initErr)
	}

	sdlWindow, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("window: creating sdl window: %w", err)
	}

	w := &Window{
		sdlWindow:  sdlWindow,
		surface:    gg.NewContext(width, height),
		width:      width,
		height:     height,
		autoflush:  autoflush,
		background: col.White,
		mousePos:   vec.New(-1, -1),
		tasks:      task.NewQueue(),
		animator:   animate.NewAnimator(),
	}

	if sdl.BYTEORDER == sdl.BIG_ENDIAN {
		w.redMask = 0xff000000
		w.greenMask = 0x00ff0000
		w.blueMask = 0x0000ff00
		w.alphaMask = 0x000000ff
	} else {
		w.redMask = 0x000000ff
		w.greenMask = 0x0000ff00
		w.blueMask = 0x00ff0000
		w.alphaMask = 0xff000000
	}

	w.needsRedraw.Store(true)
	w.pump()
	return w, nil
}

func (w *Window) Width() int  { return w.width }
func (w *Window) Height() int { return w.height }

// Autoflush reports whether the window repaints itself after every
// item change instead of waiting for an explicit Update.
func (w *Window) Autoflush() bool { return w.autoflush }

func (w *Window) AddItem(d Drawable) {
	w.mu.Lock()
	w.items = append(w.items, d)
	w.mu.Unlock()
	if w.autoflush {
		w.RequestRedraw()
	}
}

func (w *Window) DeleteItem(d Drawable) {
	w.mu.Lock()
	for i, item := range w.items {
		if item == d {
			w.items = append(w.items[:i], w.items[i+1:]...)
			break
		}
	}
	w.mu.Unlock()
	if w.autoflush {
		w.RequestRedraw()
	}
}

func (w *Window) Items() []Drawable {
	w.mu.Lock()
	defer w.mu.Unlock()
	items := make([]Drawable, len(w.items))
	copy(items, w.items)
	return items
}

func (w *Window) SetBackground(c string) {
	w.mu.Lock()
	w.background = color.Parse(c)
	w.mu.Unlock()
	if w.autoflush {
		w.RequestRedraw()
	}
}

// ColorAt reports the rasterized color at pixel (x, y) of the last
// painted frame. Out-of-bounds coordinates come back fully transparent.
// Call it from the pumping goroutine, like Update.
func (w *Window) ColorAt(x, y int) col.Color {
	return w.surface.Image().At(x, y)
}

// RequestRedraw marks the window dirty. It is fire-and-forget and safe
// from any goroutine; any number of requests coalesce into the single
// repaint the next pump performs.
func (w *Window) RequestRedraw() {
	w.needsRedraw.Store(true)
}

// Post schedules fn to run on the pumping goroutine between frames.
func (w *Window) Post(fn func()) {
	w.tasks.Post(task.New(fn))
}

// Animate starts moving target by delta over duration with the given
// easing, superseding any animation already running on that target.
// It returns immediately.
func (w *Window) Animate(target animate.Target, delta vec.Vector2, duration time.Duration, style ease.Style, direction ease.Direction) (*animate.Animation, error) {
	return w.animator.Start(target, delta, duration, style, direction)
}

func (w *Window) Animator() *animate.Animator {
	return w.animator
}

// EnableTracing records draw and raster spans to a chrome-trace file.
func (w *Window) EnableTracing(path string) error {
	recorder, err := trace.NewRecorder(path)
	if err != nil {
		return err
	}
	w.recorder = recorder
	return nil
}

// Update recomputes delta time and repaints. Call it once per frame of
// an application's own loop.
func (w *Window) Update() {
	now := time.Now()
	if !w.lastFrame.IsZero() {
		w.delta = now.Sub(w.lastFrame).Seconds()
	}
	w.lastFrame = now
	w.RequestRedraw()
	w.pump()
}

// DeltaTime is the time in seconds between the last two Updates.
func (w *Window) DeltaTime() float64 {
	return w.delta
}

// Pause keeps the window live for d: events are processed and pending
// redraws (animation frames included) are painted while the caller's
// goroutine waits.
func (w *Window) Pause(d time.Duration) {
	deadline := time.Now().Add(d)
	for !w.Closed() && time.Now().Before(deadline) {
		w.pump()
		sdl.Delay(5)
	}
}

func (w *Window) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Close cancels all running animations (their targets keep the last
// written value), finishes tracing and destroys the SDL window.
// Closing twice is a no-op.
func (w *Window) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	w.animator.CancelAll()
	w.tasks.Clear()
	w.recorder.Finish()
	w.sdlWindow.Destroy()
}

// pump is one iteration of the window's loop: handle events, run posted
// tasks, repaint if anything asked for it.
func (w *Window) pump() {
	if w.Closed() {
		return
	}
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		w.handleEvent(event)
	}
	for _, t := range w.tasks.Drain() {
		t.Run()
	}
	if w.needsRedraw.Swap(false) {
		w.Draw()
	}
}

// Draw rasters all items over the background and blits the pixels to
// the SDL window surface.
func (w *Window) Draw() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	background := w.background
	items := make([]Drawable, len(w.items))
	copy(items, w.items)
	w.mu.Unlock()

	w.recorder.Begin("draw")
	canvas := w.surface
	canvas.SetColor(background)
	canvas.Clear()
	for _, item := range items {
		item.DrawOn(canvas)
	}
	w.recorder.End("draw")

	w.recorder.Begin("raster")
	defer w.recorder.End("raster")

	ggImage := w.surface.Image()
	rgba, ok := ggImage.(*image.RGBA)
	if !ok {
		panic("window: surface image is not RGBA")
	}

	depth := 32
	pitch := 4 * w.width
	sdlSurface, err := sdl.CreateRGBSurfaceFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(w.width), int32(w.height), depth, pitch,
		w.redMask, w.greenMask, w.blueMask, w.alphaMask,
	)
	if err != nil {
		panic("window: cannot create rgb surface")
	}
	defer sdlSurface.Free()

	bounds := &sdl.Rect{X: 0, Y: 0, W: int32(w.width), H: int32(w.height)}
	windowSurface, err := w.sdlWindow.GetSurface()
	if err != nil {
		panic("window: cannot get window surface")
	}
	sdlSurface.Blit(bounds, windowSurface, bounds)
	w.sdlWindow.UpdateSurface()
}
