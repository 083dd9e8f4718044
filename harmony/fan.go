package harmony

import (
	"math"

	"github.com/color-game/palettes/colorspace"
)

// MaxFanSize caps the number of colors in a fan palette.
const MaxFanSize = 16

// Position places one fan color on a half-circle arc.
type Position struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

var (
	saturationSteps = []float64{20, -20, 40, -40}
	lightnessSteps  = []float64{15, -15, 30, -30}
	fanHarmonies    = []Harmony{Complementary, Analogous, Triadic}
)

// Fan aggregates the seed, its complementary, analogous and triadic sets, and
// saturation and lightness variations. Duplicates by hex are dropped, the
// seed stays first, and the result holds at most MaxFanSize colors.
func Fan(seed colorspace.ColorValue) []colorspace.ColorValue {
	candidates := []colorspace.ColorValue{seed}

	for _, h := range fanHarmonies {
		candidates = append(candidates, partners(seed, offsets[h])...)
	}
	for _, step := range saturationSteps {
		candidates = append(candidates, colorspace.HSLToColor(seed.HSL.H, seed.HSL.S+step, seed.HSL.L))
	}
	for _, step := range lightnessSteps {
		candidates = append(candidates, colorspace.HSLToColor(seed.HSL.H, seed.HSL.S, seed.HSL.L+step))
	}

	// colors a whole RGB step apart have different hex values
	fan := colorspace.Distinct(candidates, 1)
	if len(fan) > MaxFanSize {
		fan = fan[:MaxFanSize]
	}
	return fan
}

// FanPositions spreads n points evenly over a 180° arc of the given radius.
// Index 0 sits at -90° (left), the last index at +90° (right) and 0° points
// straight up. A single point sits at 0°.
func FanPositions(n int, radius float64) []Position {
	if n <= 0 {
		return nil
	}

	positions := make([]Position, n)
	for i := range positions {
		angle := 0.0
		if n > 1 {
			angle = -90 + 180*float64(i)/float64(n-1)
		}
		rad := angle * math.Pi / 180
		positions[i] = Position{
			X:     radius * math.Sin(rad),
			Y:     -radius * math.Cos(rad),
			Angle: angle,
		}
	}
	return positions
}
