package accessibility

import (
	"math"

	"github.com/color-game/palettes/colorspace"
)

type Level string

// WCAG 2.x conformance levels.
const (
	AAA     Level = "AAA"
	AA      Level = "AA"
	AALarge Level = "AA Large"
	Fail    Level = "Fail"
)

const (
	minAAA   = 7.0
	minAA    = 4.5
	minLarge = 3.0
)

var (
	White = colorspace.MustHex("#FFFFFF")
	Black = colorspace.MustHex("#000000")
)

// Result is what the UI needs to render an accessibility badge.
type Result struct {
	Ratio     float64 `json:"ratio"`
	Level     Level   `json:"level"`
	PassesAA  bool    `json:"passesAA"`
	PassesAAA bool    `json:"passesAAA"`
}

func linearize(channel int) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of an sRGB color, in [0,1].
func RelativeLuminance(rgb colorspace.RGB) float64 {
	return 0.2126*linearize(rgb.R) + 0.7152*linearize(rgb.G) + 0.0722*linearize(rgb.B)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, from 1 to 21.
func ContrastRatio(a, b colorspace.ColorValue) float64 {
	l1 := RelativeLuminance(a.RGB)
	l2 := RelativeLuminance(b.RGB)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func Classify(ratio float64) Level {
	switch {
	case ratio >= minAAA:
		return AAA
	case ratio >= minAA:
		return AA
	case ratio >= minLarge:
		return AALarge
	}
	return Fail
}

// Check scores a foreground color against a background.
func Check(fg, bg colorspace.ColorValue) Result {
	ratio := ContrastRatio(fg, bg)
	return Result{
		Ratio:     math.Round(ratio*100) / 100,
		Level:     Classify(ratio),
		PassesAA:  ratio >= minAA,
		PassesAAA: ratio >= minAAA,
	}
}

// IdealTextColor picks black or white, whichever reads better on bg. Black wins ties.
func IdealTextColor(bg colorspace.ColorValue) colorspace.ColorValue {
	if ContrastRatio(Black, bg) >= ContrastRatio(White, bg) {
		return Black
	}
	return White
}
