package harmony

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/color-game/palettes/colorspace"
)

const (
	maxSetSize  = 4
	goldenSteps = 1000

	// a drawn color closer than minDrawDistance to an earlier one is redrawn,
	// at most maxRedraws times
	minDrawDistance = 24
	maxRedraws      = 8

	legibleLightMin = 25
	legibleLightMax = 85
	legibleSatMin   = 35
)

// Result is one randomized harmony generation.
type Result struct {
	Harmony Harmony                 `json:"harmony"`
	BaseHue float64                 `json:"baseHue"`
	Colors  []colorspace.ColorValue `json:"colors"`
}

// Set returns the seed followed by its harmony partners, keeping the seed's
// saturation and lightness. At most four colors are returned.
func Set(seed colorspace.ColorValue, h Harmony) ([]colorspace.ColorValue, error) {
	o, ok := offsets[h]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidHarmony, "%q", h)
	}
	return partners(seed, o), nil
}

func partners(seed colorspace.ColorValue, o []float64) []colorspace.ColorValue {
	if len(o) > maxSetSize {
		o = o[:maxSetSize]
	}

	set := make([]colorspace.ColorValue, 0, len(o))
	for _, offset := range o {
		if offset == 0 {
			set = append(set, seed)
			continue
		}
		set = append(set, colorspace.HSLToColor(seed.HSL.H+offset, seed.HSL.S, seed.HSL.L))
	}
	return set
}

// Select draws a harmony from the weighted distribution using one uniform
// sample compared against cumulative probabilities.
func Select(rng *rand.Rand) Harmony {
	r := rng.Float64()
	cumulative := 0.0
	all := All()
	for _, h := range all {
		cumulative += Weight(h)
		if r < cumulative {
			return h
		}
	}
	// float rounding can leave r just above the final cumulative sum
	return all[len(all)-1]
}

// BaseHue picks a step of the golden-angle sequence.
func BaseHue(rng *rand.Rand) float64 {
	step := rng.Intn(goldenSteps)
	return colorspace.NormalizeHue(float64(step) * GoldenAngle)
}

// Random generates count colors for a weighted-random harmony around a
// golden-angle base hue. count below 1 yields one color per harmony offset.
func Random(rng *rand.Rand, count int) Result {
	return generate(rng, Select(rng), count)
}

// RandomOf is Random with the harmony fixed by the caller.
func RandomOf(rng *rand.Rand, h Harmony, count int) (Result, error) {
	if _, ok := offsets[h]; !ok {
		return Result{}, errors.Wrapf(ErrInvalidHarmony, "%q", h)
	}
	return generate(rng, h, count), nil
}

func generate(rng *rand.Rand, h Harmony, count int) Result {
	o := offsets[h]
	band, _ := BandFor(h)
	if count < 1 {
		count = len(o)
	}

	base := BaseHue(rng)
	colors := make([]colorspace.ColorValue, 0, count)
	for i := 0; i < count; i++ {
		colors = append(colors, draw(rng, base+o[i%len(o)], band, colors))
	}

	return Result{Harmony: h, BaseHue: base, Colors: colors}
}

// draw samples a legible color of the given hue inside band. Samples that land
// within minDrawDistance of a color in kept are retried; the last sample is
// used when every retry is too close.
func draw(rng *rand.Rand, hue float64, band Band, kept []colorspace.ColorValue) colorspace.ColorValue {
	var c colorspace.ColorValue
	for try := 0; try <= maxRedraws; try++ {
		s := band.SatMin + rng.Float64()*(band.SatMax-band.SatMin)
		l := band.LightMin + rng.Float64()*(band.LightMax-band.LightMin)
		c = Legible(colorspace.HSLToColor(hue, s, l))

		nearest := colorspace.Nearest(c, kept)
		if nearest < 0 || colorspace.Distance(c, kept[nearest]) >= minDrawDistance {
			break
		}
	}
	return c
}

// Legible clamps lightness into [25,85] and lifts saturation to at least 35.
func Legible(c colorspace.ColorValue) colorspace.ColorValue {
	s := c.HSL.S
	if s < legibleSatMin {
		s = legibleSatMin
	}
	l := colorspace.Clamp(c.HSL.L, legibleLightMin, legibleLightMax)
	if s == c.HSL.S && l == c.HSL.L {
		return c
	}
	return colorspace.HSLToColor(c.HSL.H, s, l)
}
