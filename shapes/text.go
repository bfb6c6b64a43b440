package shapes

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"

	"gographics/color"
	"gographics/font"
	"gographics/rect"
	"gographics/vec"
	"gographics/window"
)

// Text draws one or more lines of text, optionally boxed with a
// background and border. The position is the top-left of the text box.
type Text struct {
	base
	content     string
	pos         vec.Vector2
	family      string
	size        float64
	fill        string
	background  string
	border      string
	borderWidth float64
	align       string
	warned      bool
}

func NewText(content string, pos vec.Vector2) *Text {
	return &Text{
		base:    newBase(),
		content: content,
		pos:     pos,
		size:    16,
		fill:    "black",
		align:   "left",
	}
}

func (t *Text) Draw(win *window.Window) error {
	return t.attach(t, win)
}

func (t *Text) Undraw() {
	t.detach(t)
}

func (t *Text) SetText(content string) {
	t.mu.Lock()
	t.content = content
	t.mu.Unlock()
	t.FrameChanged()
}

func (t *Text) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.content
}

// SetFont selects a system font family at the given size. The family
// is resolved lazily at raster time.
func (t *Text) SetFont(family string, size float64) {
	t.mu.Lock()
	t.family = family
	t.size = size
	t.warned = false
	t.mu.Unlock()
}

func (t *Text) SetFill(fill string) {
	t.mu.Lock()
	t.fill = fill
	t.mu.Unlock()
}

func (t *Text) SetBackground(background string) {
	t.mu.Lock()
	t.background = background
	t.mu.Unlock()
}

func (t *Text) SetBorder(border string) {
	t.mu.Lock()
	t.border = border
	t.mu.Unlock()
}

func (t *Text) SetBorderWidth(width float64) {
	t.mu.Lock()
	t.borderWidth = width
	t.mu.Unlock()
}

// SetAlignment aligns lines within the text box: "left", "center" or
// "right".
func (t *Text) SetAlignment(align string) error {
	switch align {
	case "left", "center", "right":
	default:
		return fmt.Errorf("invalid alignment: %s", align)
	}
	t.mu.Lock()
	t.align = align
	t.mu.Unlock()
	return nil
}

func (t *Text) Position() vec.Vector2 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pos
}

func (t *Text) SetPosition(v vec.Vector2) error {
	t.mu.Lock()
	t.pos = v
	t.mu.Unlock()
	return nil
}

func (t *Text) Move(dx, dy float64) {
	t.mu.Lock()
	t.pos = t.pos.Add(vec.New(dx, dy))
	t.mu.Unlock()
}

func (t *Text) DrawOn(canvas *gg.Context) {
	t.mu.Lock()
	content, pos := t.content, t.pos
	family, size := t.family, t.size
	fill, background, border := t.fill, t.background, t.border
	borderWidth, align := t.borderWidth, t.align
	warned := t.warned
	t.mu.Unlock()

	face, err := font.Load(family, size)
	if err != nil {
		if !warned {
			fmt.Println("shapes: text font unavailable:", err)
			t.mu.Lock()
			t.warned = true
			t.mu.Unlock()
		}
		return
	}

	lines := strings.Split(content, "\n")
	lineHeight := font.Linespace(face)
	widest := 0.0
	for _, line := range lines {
		if w := font.Measure(face, line); w > widest {
			widest = w
		}
	}
	box := rect.New(pos.X, pos.Y, pos.X+widest, pos.Y+lineHeight*float64(len(lines))).Inflate(2, 2)

	if background != "" {
		canvas.SetColor(color.Parse(background))
		canvas.DrawRectangle(box.Left, box.Top, box.Width(), box.Height())
		canvas.Fill()
	}
	if border != "" && borderWidth > 0 {
		canvas.SetColor(color.Parse(border))
		canvas.SetLineWidth(borderWidth)
		canvas.DrawRectangle(box.Left, box.Top, box.Width(), box.Height())
		canvas.Stroke()
	}

	canvas.SetFontFace(face)
	canvas.SetColor(color.Parse(fill))
	for i, line := range lines {
		y := pos.Y + lineHeight*float64(i+1)
		switch align {
		case "center":
			canvas.DrawStringAnchored(line, pos.X+widest/2, y, 0.5, 0)
		case "right":
			canvas.DrawStringAnchored(line, pos.X+widest, y, 1, 0)
		default:
			canvas.DrawStringAnchored(line, pos.X, y, 0, 0)
		}
	}
}

func (t *Text) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fmt.Sprintf("Text(%q at %v)", t.content, t.pos)
}
