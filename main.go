package main

import (
	"fmt"
	"os"
	"time"

	"gographics/color"
	"gographics/ease"
	"gographics/shapes"
	"gographics/vec"
	"gographics/window"
)

// Demo: a window full of shapes, each animated with a different easing
// curve. Click anywhere to send the circle there; click inside the
// rectangle to shake it; press any key to quit.
func main() {
	win, err := window.New("gographics demo", 800, 600, true)
	if err != nil {
		fmt.Println("could not open window:", err)
		os.Exit(1)
	}
	defer win.Close()
	win.SetBackground("white")

	if len(os.Args) > 1 && os.Args[1] == "-trace" {
		if err := win.EnableTracing("graphics.trace"); err != nil {
			fmt.Println("tracing disabled:", err)
		}
	}

	circle := shapes.NewCircle(vec.New(120, 120), 40)
	circle.SetFill("red")
	circle.SetWidth(3)
	circle.Draw(win)

	box := shapes.NewRectangle(vec.New(50, 420), vec.New(170, 520))
	box.SetFill("cornflowerblue")
	box.Draw(win)

	poly := shapes.NewRotatablePolygon([]vec.Vector2{
		{X: 400, Y: 180}, {X: 470, Y: 300}, {X: 330, Y: 300},
	})
	poly.SetFill("magenta")
	poly.Rotate(15)
	poly.Draw(win)

	guide := shapes.NewLine(vec.New(50, 560), vec.New(750, 560))
	guide.SetType("dashed")
	guide.SetOutline("gray")
	guide.SetWidth(2)
	guide.Draw(win)

	label := shapes.NewText("click to animate, any key to quit", vec.New(250, 20))
	label.SetFill("black")
	label.Draw(win)

	// Opening flourish: a few easing families at once.
	win.Animate(circle, vec.New(500, 0), 2*time.Second, ease.Bounce, ease.Out)
	win.Animate(poly, vec.New(0, 150), 1500*time.Millisecond, ease.Elastic, ease.Out)
	slide, _ := win.Animate(box, vec.New(550, -100), 1800*time.Millisecond, ease.Back, ease.InOut)
	go func() {
		<-slide.Done()
		win.Post(func() { label.SetText("your turn") })
	}()

	clicks := 0
	for {
		click, ok := win.WaitMouse()
		if !ok {
			return
		}
		if len(win.CheckKeys()) > 0 {
			return
		}
		clicks++
		switch {
		case box.Contains(click.X, click.Y):
			box.SetFill(color.Standard[clicks%len(color.Standard)])
			win.Animate(box, vec.New(0, -80), 600*time.Millisecond, ease.Quad, ease.InOut)
		case shapes.PointInCircle(click, circle):
			win.Animate(circle, vec.New(0, 100), time.Second, ease.Sine, ease.InOut)
		default:
			delta := click.Sub(circle.Center())
			win.Animate(circle, delta, 1200*time.Millisecond, ease.Cubic, ease.Out)
		}
	}
}
