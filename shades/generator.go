package shades

import (
	"math"
	"strconv"

	"github.com/color-game/palettes/accessibility"
	"github.com/color-game/palettes/colorspace"
	"github.com/color-game/palettes/models"
)

const (
	MinContrastShift = -50
	MaxContrastShift = 50
)

// Options selects how a scale is generated.
type Options struct {
	Algorithm     Algorithm
	ShadeCount    int
	ContrastShift int
	NamingPattern NamingPattern
	Label         string
}

// Generate builds a shade scale from seed. Unknown algorithms and naming
// patterns are errors; shade count and contrast shift are clamped.
func Generate(seed colorspace.ColorValue, opts Options) (models.Palette, error) {
	curve, err := CurveFor(opts.Algorithm)
	if err != nil {
		return models.Palette{}, err
	}

	pattern, err := ParsePattern(string(opts.NamingPattern))
	if err != nil {
		return models.Palette{}, err
	}

	count := ClampShadeCount(opts.ShadeCount)
	weights, err := pattern.Weights(count)
	if err != nil {
		return models.Palette{}, err
	}

	stops := make([]colorspace.HSL, count)
	for i := range stops {
		stops[i] = curve.Stop(seed.HSL, i, count)
	}
	stretch(stops, curve.Channel(), clampShift(opts.ContrastShift))

	shades := make([]models.ColorShade, count)
	for i, stop := range stops {
		color := colorspace.HSLToColor(stop.H, stop.S, stop.L)
		shades[i] = models.ColorShade{
			Name:     strconv.Itoa(weights[i]),
			Value:    weights[i],
			Color:    color,
			Contrast: textContrast(color),
		}
	}
	shades[activeIndex(seed, shades)].IsActive = true

	return models.Palette{
		Name:      opts.Label,
		BaseColor: seed,
		Shades:    shades,
		Algorithm: string(opts.Algorithm),
	}, nil
}

// Rebuild derives every color field of shade from its hex and refreshes the
// contrast against the ideal text color. Client supplied rgb, hsl and oklch
// values are discarded.
func Rebuild(shade models.ColorShade) (models.ColorShade, error) {
	color, err := colorspace.HexToColor(shade.Color.Hex)
	if err != nil {
		return models.ColorShade{}, err
	}
	shade.Color = color
	shade.Contrast = textContrast(color)
	return shade, nil
}

func textContrast(color colorspace.ColorValue) float64 {
	return math.Round(accessibility.ContrastRatio(color, accessibility.IdealTextColor(color))*100) / 100
}

func clampShift(shift int) int {
	if shift < MinContrastShift {
		return MinContrastShift
	}
	if shift > MaxContrastShift {
		return MaxContrastShift
	}
	return shift
}

// stretch widens or narrows the swept channel about the middle stop. A
// negative shift scales every distance from the middle by 1+shift/100. A
// positive shift moves each lightness or saturation stop shift percent of the
// way toward the bound on its side, which keeps stops inside [0,100] and in
// order. Hue distances are scaled by the same factor in both directions.
func stretch(stops []colorspace.HSL, ch Channel, shift int) {
	if shift == 0 || len(stops) == 0 {
		return
	}

	pivot := stops[len(stops)/2]
	factor := 1 + float64(shift)/100

	if ch == ChannelHue {
		for i := range stops {
			stops[i].H = pivot.H + hueDelta(pivot.H, stops[i].H)*factor
		}
		return
	}

	get := func(h colorspace.HSL) float64 { return h.L }
	set := func(h *colorspace.HSL, v float64) { h.L = v }
	if ch == ChannelSaturation {
		get = func(h colorspace.HSL) float64 { return h.S }
		set = func(h *colorspace.HSL, v float64) { h.S = v }
	}

	p := get(pivot)
	amount := float64(shift) / 100
	for i := range stops {
		v := get(stops[i])
		switch {
		case shift < 0:
			v = p + (v-p)*factor
		case v > p:
			v += (100 - v) * amount
		case v < p:
			v -= v * amount
		}
		set(&stops[i], colorspace.Clamp(v, 0, 100))
	}
}

// hueDelta returns the signed shortest rotation from a to b, in (-180,180].
func hueDelta(a, b float64) float64 {
	d := colorspace.NormalizeHue(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}

// activeIndex picks the shade whose lightness is closest to the seed's;
// ties go to the shade closest in saturation and hue, then the earliest.
func activeIndex(seed colorspace.ColorValue, shades []models.ColorShade) int {
	best := 0
	bestL, bestRest := math.MaxFloat64, math.MaxFloat64
	for i, shade := range shades {
		dl := math.Abs(shade.Color.HSL.L - seed.HSL.L)
		rest := math.Abs(shade.Color.HSL.S-seed.HSL.S) + math.Abs(hueDelta(seed.HSL.H, shade.Color.HSL.H))
		if dl < bestL || (dl == bestL && rest < bestRest) {
			best, bestL, bestRest = i, dl, rest
		}
	}
	return best
}
