package naming

import (
	"math/rand"
	"strings"

	"github.com/color-game/palettes/models"
)

// Untitled names a palette with no shades.
const Untitled = "Untitled Palette"

type words struct {
	hue        string
	saturation string
	lightness  string
	suffix     string
}

type composer func(rng *rand.Rand, w words) string

var randomTemplates = []composer{
	func(_ *rand.Rand, w words) string { return w.saturation + " " + w.hue },
	func(_ *rand.Rand, w words) string { return w.lightness + " " + w.hue },
	func(_ *rand.Rand, w words) string { return w.hue + " " + w.suffix },
	func(_ *rand.Rand, w words) string { return w.lightness + " " + w.hue + " " + w.suffix },
	func(rng *rand.Rand, w words) string { return w.hue + " " + pick(rng, natureWords) },
	func(rng *rand.Rand, w words) string { return pick(rng, natureWords) + " " + w.hue },
	func(rng *rand.Rand, w words) string { return w.saturation + " " + pick(rng, emotionWords) },
	func(rng *rand.Rand, w words) string { return w.hue + " " + pick(rng, emotionWords) },
	func(rng *rand.Rand, w words) string { return pick(rng, artWords) + " " + w.hue },
	func(rng *rand.Rand, w words) string { return pick(rng, artWords) + " " + w.suffix },
	func(rng *rand.Rand, w words) string { return pick(rng, seasonWords) + " " + w.hue },
	func(rng *rand.Rand, w words) string { return w.lightness + " " + pick(rng, seasonWords) },
	func(rng *rand.Rand, w words) string { return pick(rng, placeWords) + " " + w.hue },
	func(rng *rand.Rand, w words) string { return pick(rng, placeWords) + " " + pick(rng, timeWords) },
	func(rng *rand.Rand, w words) string { return w.hue + " & " + pick(rng, gemstoneWords) },
	func(rng *rand.Rand, w words) string { return pick(rng, gemstoneWords) + " " + w.suffix },
	func(rng *rand.Rand, w words) string { return pick(rng, timeWords) + " in " + pick(rng, placeWords) },
	func(rng *rand.Rand, w words) string { return w.saturation + " " + pick(rng, timeWords) },
}

// RandomName composes a name from the word banks using a random template.
// Two calls are not guaranteed to differ.
func RandomName(rng *rand.Rand, shades []models.ColorShade) string {
	if len(shades) == 0 {
		return Untitled
	}
	t := Classify(shades)
	w := words{
		hue:        pick(rng, hueNames[t.Hue]),
		saturation: pick(rng, saturationWords[t.Saturation]),
		lightness:  pick(rng, lightnessWords[t.Lightness]),
		suffix:     pick(rng, structureSuffixes[t.Structure]),
	}
	return randomTemplates[rng.Intn(len(randomTemplates))](rng, w)
}

// ConsistentName derives a name from a hash of the shade hex values, so the
// same shades always produce the same name.
func ConsistentName(shades []models.ColorShade) string {
	if len(shades) == 0 {
		return Untitled
	}

	var hexes strings.Builder
	for _, shade := range shades {
		hexes.WriteString(shade.Color.Hex)
	}
	hash := Hash(hexes.String())

	t := Classify(shades)
	hue := index(hueNames[t.Hue], hash>>2)

	switch hash % 4 {
	case 0:
		return index(saturationWords[t.Saturation], hash>>5) + " " + hue
	case 1:
		return index(lightnessWords[t.Lightness], hash>>7) + " " + hue
	case 2:
		return hue + " " + index(structureSuffixes[t.Structure], hash>>9)
	}
	return hue
}

// Hash is the 31-multiplier string hash with int32 wraparound, returned as
// its absolute value.
func Hash(s string) uint32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	if h < 0 {
		return uint32(-int64(h))
	}
	return uint32(h)
}

func pick(rng *rand.Rand, bank []string) string {
	if len(bank) == 0 {
		return ""
	}
	return bank[rng.Intn(len(bank))]
}

func index(bank []string, n uint32) string {
	if len(bank) == 0 {
		return ""
	}
	return bank[n%uint32(len(bank))]
}
