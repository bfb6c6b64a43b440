package color

import (
	col "image/color"

	"github.com/mazznoer/csscolorparser"
)

// Parse resolves a CSS color string ("red", "#ff8800", "rgb(0,0,255)").
// Unparsable strings come back black, which keeps raster code free of
// error plumbing for what is only a styling concern.
func Parse(color string) col.Color {
	c, err := csscolorparser.Parse(color)
	if err != nil {
		return col.Black
	}
	r, g, b, a := c.RGBA255()
	return col.RGBA{r, g, b, a}
}

// Standard is a ready-to-use palette for quick styling in teaching
// examples. Every entry parses with Parse.
var Standard = []string{
	"red", "green", "blue", "yellow", "cyan",
	"magenta", "black", "lightgray", "darkgray", "orange",
}
