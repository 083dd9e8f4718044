package colorspace

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// FallbackSeed is the color callers substitute when a seed cannot be parsed.
const FallbackSeed = "#3B82F6"

// oklchChromaScale maps the saturation-lightness product onto the OKLCH
// chroma range (max 0.37 at s=100, l=0.5).
const oklchChromaScale = 1.48

var ErrInvalidHex = errors.New("invalid hex color")

// ParseError reports a hex string that could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidHex, pe.Input, pe.Reason)
}

func (pe *ParseError) Unwrap() error {
	return ErrInvalidHex
}

type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// ColorValue holds four synchronized representations of one color. Build it
// with HexToColor, HSLToColor or RGBToColor; never edit the fields in place.
type ColorValue struct {
	Hex   string `json:"hex"`
	RGB   RGB    `json:"rgb"`
	HSL   HSL    `json:"hsl"`
	OKLCH OKLCH  `json:"oklch"`
}

// HexToColor parses a 3 or 6 digit hex color, with or without the leading '#'.
func HexToColor(hex string) (ColorValue, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(clean) {
	case 3:
		clean = string([]byte{clean[0], clean[0], clean[1], clean[1], clean[2], clean[2]})
	case 6:
	default:
		return ColorValue{}, &ParseError{Input: hex, Reason: fmt.Sprintf("expected 3 or 6 digits, got %d", len(clean))}
	}

	var channels [3]int
	for i := range channels {
		hi, okHi := hexDigit(clean[i*2])
		lo, okLo := hexDigit(clean[i*2+1])
		if !okHi || !okLo {
			return ColorValue{}, &ParseError{Input: hex, Reason: "non-hex character"}
		}
		channels[i] = hi<<4 | lo
	}

	return RGBToColor(channels[0], channels[1], channels[2]), nil
}

// MustHex is HexToColor for literals known to be valid.
func MustHex(hex string) ColorValue {
	c, err := HexToColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}

// RGBToHex formats channels as an uppercase #RRGGBB string. Channels are clamped to [0,255].
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(r), clampChannel(g), clampChannel(b))
}

// RGBToColor builds a ColorValue from 8-bit channels.
func RGBToColor(r, g, b int) ColorValue {
	rgb := RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
	hsl := rgbToHSL(rgb)
	return ColorValue{
		Hex:   RGBToHex(rgb.R, rgb.G, rgb.B),
		RGB:   rgb,
		HSL:   hsl,
		OKLCH: approximateOKLCH(hsl),
	}
}

// HSLToColor builds a ColorValue from hue in degrees and saturation/lightness in
// percent. Hue wraps, saturation and lightness clamp.
func HSLToColor(h, s, l float64) ColorValue {
	hsl := HSL{
		H: math.Round(NormalizeHue(h)),
		S: math.Round(Clamp(s, 0, 100)),
		L: math.Round(Clamp(l, 0, 100)),
	}
	if hsl.H >= 360 {
		hsl.H = 0
	}

	rgb := hslToRGB(hsl)
	return ColorValue{
		Hex:   RGBToHex(rgb.R, rgb.G, rgb.B),
		RGB:   rgb,
		HSL:   hsl,
		OKLCH: approximateOKLCH(hsl),
	}
}

// NormalizeHue wraps any angle into [0,360).
func NormalizeHue(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	h := math.Mod(angle, 360)
	if h < 0 {
		h += 360
	}
	// -1e-14 + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

// Clamp limits v to [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func rgbToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{H: 0, S: 0, L: math.Round(l * 100)}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	hue := math.Round(h)
	if hue >= 360 {
		hue = 0
	}
	return HSL{H: hue, S: math.Round(s * 100), L: math.Round(l * 100)}
}

func hslToRGB(hsl HSL) RGB {
	h := hsl.H / 360
	s := hsl.S / 100
	l := hsl.L / 100

	if s == 0 {
		v := int(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: int(math.Round(hueToChannel(p, q, h+1.0/3) * 255)),
		G: int(math.Round(hueToChannel(p, q, h) * 255)),
		B: int(math.Round(hueToChannel(p, q, h-1.0/3) * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// approximateOKLCH derives OKLCH from HSL lightness and saturation. It is not
// a perceptual transform and stored palettes depend on its exact output.
func approximateOKLCH(hsl HSL) OKLCH {
	l := hsl.L / 100
	c := (hsl.S / 100) * l * (1 - l) * oklchChromaScale
	return OKLCH{
		L: round(l, 4),
		C: round(c, 4),
		H: hsl.H,
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
