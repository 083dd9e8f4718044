package shades

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/color-game/palettes/harmony"
)

type Algorithm string

const (
	Tailwind      Algorithm = "tailwind"
	Radix         Algorithm = "radix"
	Ant           Algorithm = "ant"
	Lightness     Algorithm = "lightness"
	Saturation    Algorithm = "saturation"
	Hue           Algorithm = "hue"
	Monochromatic Algorithm = "monochromatic"
	Analogous     Algorithm = "analogous"
	Complementary Algorithm = "complementary"
)

var ErrInvalidAlgorithm = errors.New("invalid algorithm")

var (
	tailwindCurve = scaleCurve{
		lightest: 97, darkest: 10,
		anchorMin: 25, anchorMax: 75,
		lightEase: 1.6, darkEase: 1.1,
		satDrop: 0.10,
	}
	radixCurve = scaleCurve{
		lightest: 99, darkest: 7,
		anchorMin: 30, anchorMax: 70,
		lightEase: 1.3, darkEase: 0.85,
		satDrop: 0.05,
	}
	antCurve = scaleCurve{
		lightest: 95, darkest: 15,
		anchorMin: 30, anchorMax: 70,
		lightEase: 1.4, darkEase: 1.2,
		satDrop: 0.35,
	}
)

var curves = map[Algorithm]Curve{
	Tailwind:      tailwindCurve,
	Radix:         radixCurve,
	Ant:           antCurve,
	Lightness:     lightnessSweep{lightest: 98, darkest: 2, anchorMin: 20, anchorMax: 80},
	Saturation:    saturationSweep{lowest: 5, highest: 100, anchorMin: 20, anchorMax: 80},
	Hue:           hueSweep{span: 120},
	Monochromatic: monochromeCurve{lightest: 97, darkest: 6},
	Analogous:     hueSplitCurve{base: tailwindCurve, offsets: sortedOffsets(harmony.Analogous)},
	Complementary: hueSplitCurve{base: tailwindCurve, offsets: sortedOffsets(harmony.Complementary)},
}

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{Tailwind, Radix, Ant, Lightness, Saturation, Hue, Monochromatic, Analogous, Complementary}
}

// ParseAlgorithm resolves an algorithm name, ignoring letter case.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := curves[a]; !ok {
		return "", errors.Wrapf(ErrInvalidAlgorithm, "%q", name)
	}
	return a, nil
}

// CurveFor returns the curve that drives algorithm a.
func CurveFor(a Algorithm) (Curve, error) {
	c, ok := curves[a]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidAlgorithm, "%q", a)
	}
	return c, nil
}
