package naming

import (
	"math"
	"sort"

	"github.com/color-game/palettes/colorspace"
	"github.com/color-game/palettes/models"
)

type HueFamily string

const (
	Red    HueFamily = "red"
	Orange HueFamily = "orange"
	Yellow HueFamily = "yellow"
	Green  HueFamily = "green"
	Blue   HueFamily = "blue"
	Purple HueFamily = "purple"
	Pink   HueFamily = "pink"
)

type SaturationBand string

const (
	SaturationHigh   SaturationBand = "high"
	SaturationMedium SaturationBand = "medium"
	SaturationLow    SaturationBand = "low"
)

type LightnessBand string

const (
	LightnessDark   LightnessBand = "dark"
	LightnessMedium LightnessBand = "medium"
	LightnessLight  LightnessBand = "light"
)

type Structure string

const (
	StructureMonochromatic Structure = "monochromatic"
	StructureComplementary Structure = "complementary"
	StructureTriadic       Structure = "triadic"
	StructureTetradic      Structure = "tetradic"
	StructureAnalogous     Structure = "analogous"
	StructureCustom        Structure = "custom"
)

const structureBucket = 30

// Upper bounds (exclusive) of each hue bucket; red wraps around 0°.
var hueBuckets = []struct {
	upTo   float64
	family HueFamily
}{
	{15, Red},
	{45, Orange},
	{70, Yellow},
	{160, Green},
	{250, Blue},
	{290, Purple},
	{345, Pink},
	{360, Red},
}

// Traits summarize a shade set for naming.
type Traits struct {
	Hue        HueFamily      `json:"hue"`
	Saturation SaturationBand `json:"saturation"`
	Lightness  LightnessBand  `json:"lightness"`
	Structure  Structure      `json:"structure"`
}

// Classify describes the dominant (most saturated) shade and the hue
// structure of the whole set. An empty set classifies as a medium red.
func Classify(shades []models.ColorShade) Traits {
	if len(shades) == 0 {
		return Traits{Hue: Red, Saturation: SaturationLow, Lightness: LightnessMedium, Structure: StructureCustom}
	}

	dominant := shades[0].Color
	for _, shade := range shades[1:] {
		if shade.Color.HSL.S > dominant.HSL.S {
			dominant = shade.Color
		}
	}

	return Traits{
		Hue:        HueOf(dominant.HSL.H),
		Saturation: SaturationOf(dominant.HSL.S),
		Lightness:  LightnessOf(dominant.HSL.L),
		Structure:  StructureOf(shades),
	}
}

func HueOf(h float64) HueFamily {
	h = colorspace.NormalizeHue(h)
	for _, b := range hueBuckets {
		if h < b.upTo {
			return b.family
		}
	}
	return Red
}

func SaturationOf(s float64) SaturationBand {
	switch {
	case s > 70:
		return SaturationHigh
	case s > 30:
		return SaturationMedium
	}
	return SaturationLow
}

func LightnessOf(l float64) LightnessBand {
	switch {
	case l < 30:
		return LightnessDark
	case l < 70:
		return LightnessMedium
	}
	return LightnessLight
}

// StructureOf detects the harmony the shade hues form once rounded to 30°
// buckets. Three and four buckets are triadic and tetradic regardless of
// spacing. Otherwise the hues are analogous when they sit on one arc with no
// step wider than 60°.
func StructureOf(shades []models.ColorShade) Structure {
	seen := make(map[int]bool)
	var buckets []int
	for _, shade := range shades {
		b := int(math.Round(shade.Color.HSL.H/structureBucket)) * structureBucket % 360
		if !seen[b] {
			seen[b] = true
			buckets = append(buckets, b)
		}
	}
	sort.Ints(buckets)

	switch len(buckets) {
	case 0:
		return StructureCustom
	case 1:
		return StructureMonochromatic
	case 2:
		d := buckets[1] - buckets[0]
		if d > 180 {
			d = 360 - d
		}
		if d >= 150 {
			return StructureComplementary
		}
	case 3:
		return StructureTriadic
	case 4:
		return StructureTetradic
	}

	gaps := make([]int, len(buckets))
	for i := range buckets {
		next := buckets[(i+1)%len(buckets)]
		if i == len(buckets)-1 {
			next += 360
		}
		gaps[i] = next - buckets[i]
	}
	sort.Ints(gaps)
	// the widest gap is the outside of the arc
	for _, g := range gaps[:len(gaps)-1] {
		if g > 60 {
			return StructureCustom
		}
	}
	return StructureAnalogous
}
