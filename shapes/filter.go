package shapes

import (
	"image"
	"image/color"
	"math"
)

// Filter recolors image pixels in HSV space: Hue is added in degrees,
// Saturation and Brightness are multipliers.
type Filter struct {
	Hue        float64
	Saturation float64
	Brightness float64
}

func (f *Filter) apply(src image.Image) image.Image {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := src.At(x, y).RGBA()
			h, s, v := rgbToHSV(float64(r>>8), float64(g>>8), float64(b>>8))
			h = math.Mod(h+f.Hue, 360)
			if h < 0 {
				h += 360
			}
			s = clamp01(s * f.Saturation)
			v = clamp01(v * f.Brightness)
			nr, ng, nb := hsvToRGB(h, s, v)
			dst.Set(x, y, color.RGBA{nr, ng, nb, uint8(a >> 8)})
		}
	}
	return dst
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// rgbToHSV expects channels in [0,255]; hue comes back in degrees,
// saturation and value in [0,1].
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	r /= 255
	g /= 255
	b /= 255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	v = max
	delta := max - min
	if max > 0 {
		s = delta / max
	}
	if delta == 0 {
		return 0, s, v
	}
	switch max {
	case r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}
	return uint8((rf + m) * 255), uint8((gf + m) * 255), uint8((bf + m) * 255)
}
