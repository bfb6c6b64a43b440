package shapes

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"gographics/rect"
	"gographics/vec"
	"gographics/window"
)

// Image draws a bitmap loaded from disk, optionally rescaled, rotated
// and color-filtered. The position is the image center by default.
type Image struct {
	base
	pos      vec.Vector2
	original image.Image
	scaled   image.Image
	display  image.Image
	angle    float64
	align    string
	filter   *Filter
}

func NewImage(path string, pos vec.Vector2) (*Image, error) {
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("loading image %s: %w", path, err)
	}
	return &Image{
		base:     newBase(),
		pos:      pos,
		original: img,
		scaled:   img,
		display:  img,
		align:    "center",
	}, nil
}

func (i *Image) Draw(win *window.Window) error {
	return i.attach(i, win)
}

func (i *Image) Undraw() {
	i.detach(i)
}

// SetScale rescales from the original pixels by factor.
func (i *Image) SetScale(factor float64) {
	bounds := i.original.Bounds()
	i.resize(int(float64(bounds.Dx())*factor), int(float64(bounds.Dy())*factor))
}

// SetSize rescales from the original pixels to an exact size.
func (i *Image) SetSize(width, height int) {
	i.resize(width, height)
}

func (i *Image) resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), i.original, i.original.Bounds(), xdraw.Over, nil)

	i.mu.Lock()
	i.scaled = dst
	if i.filter != nil {
		i.display = i.filter.apply(dst)
	} else {
		i.display = dst
	}
	i.mu.Unlock()
}

// SetFilter recolors the image through a hue/saturation/brightness
// adjustment; a nil filter restores the unfiltered pixels.
func (i *Image) SetFilter(f *Filter) {
	i.mu.Lock()
	i.filter = f
	if f != nil {
		i.display = f.apply(i.scaled)
	} else {
		i.display = i.scaled
	}
	i.mu.Unlock()
}

// Rotate turns the image by degrees (cumulative) about its anchor.
func (i *Image) Rotate(degrees float64) {
	i.mu.Lock()
	i.angle += degrees
	i.mu.Unlock()
}

// SetAlignment anchors the image at its "center" (default) or
// "topleft" corner.
func (i *Image) SetAlignment(align string) error {
	switch align {
	case "center", "topleft":
	default:
		return fmt.Errorf("invalid alignment: %s", align)
	}
	i.mu.Lock()
	i.align = align
	i.mu.Unlock()
	return nil
}

// Bounds is the unrotated box the image occupies.
func (i *Image) Bounds() rect.Rect {
	i.mu.Lock()
	defer i.mu.Unlock()
	size := i.display.Bounds()
	w, h := float64(size.Dx()), float64(size.Dy())
	if i.align == "center" {
		return rect.New(i.pos.X-w/2, i.pos.Y-h/2, i.pos.X+w/2, i.pos.Y+h/2)
	}
	return rect.New(i.pos.X, i.pos.Y, i.pos.X+w, i.pos.Y+h)
}

func (i *Image) Position() vec.Vector2 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.pos
}

func (i *Image) SetPosition(v vec.Vector2) error {
	i.mu.Lock()
	i.pos = v
	i.mu.Unlock()
	return nil
}

func (i *Image) Move(dx, dy float64) {
	i.mu.Lock()
	i.pos = i.pos.Add(vec.New(dx, dy))
	i.mu.Unlock()
}

func (i *Image) DrawOn(canvas *gg.Context) {
	i.mu.Lock()
	display, pos, angle, align := i.display, i.pos, i.angle, i.align
	i.mu.Unlock()

	size := display.Bounds()
	var anchor vec.Vector2
	if align == "center" {
		anchor = pos
	} else {
		anchor = vec.New(pos.X+float64(size.Dx())/2, pos.Y+float64(size.Dy())/2)
	}

	canvas.Push()
	if angle != 0 {
		canvas.RotateAbout(gg.Radians(angle), anchor.X, anchor.Y)
	}
	if align == "center" {
		canvas.DrawImageAnchored(display, int(pos.X), int(pos.Y), 0.5, 0.5)
	} else {
		canvas.DrawImage(display, int(pos.X), int(pos.Y))
	}
	canvas.Pop()
}

func (i *Image) String() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	size := i.display.Bounds()
	return fmt.Sprintf("Image(%dx%d at %v)", size.Dx(), size.Dy(), i.pos)
}
