package font

import (
	"fmt"
	"math"
	"sync"

	"github.com/adrg/sysfont"
	"github.com/fogleman/gg"
	fnt "golang.org/x/image/font"
)

type key struct {
	Family string
	Size   float64
}

var (
	mu     sync.Mutex
	cache  = map[key]fnt.Face{}
	finder *sysfont.Finder
)

// Load resolves a font family through the system font database and
// returns a face at the given size. Faces are cached per family/size;
// an empty family matches the finder's default.
func Load(family string, size float64) (fnt.Face, error) {
	mu.Lock()
	defer mu.Unlock()

	k := key{Family: family, Size: size}
	if face, ok := cache[k]; ok {
		return face, nil
	}

	if finder == nil {
		finder = sysfont.NewFinder(nil)
	}
	match := finder.Match(family)
	if match == nil {
		return nil, fmt.Errorf("font: no match for %q", family)
	}
	face, err := gg.LoadFontFace(match.Filename, size)
	if err != nil {
		return nil, fmt.Errorf("font: loading %s: %w", match.Filename, err)
	}
	cache[k] = face
	return face, nil
}

func Measure(face fnt.Face, text string) float64 {
	return math.Ceil(float64(fnt.MeasureString(face, text)) / 64.0)
}

func Linespace(face fnt.Face) float64 {
	// note: without the scaling factor, the lines are too narrow
	return math.Ceil(float64(face.Metrics().Height) / 64.0 * 96 / 72)
}

func Ascent(face fnt.Face) float64 {
	return float64(face.Metrics().Ascent) / 64.0
}

func Descent(face fnt.Face) float64 {
	return float64(face.Metrics().Descent) / 64.0
}
