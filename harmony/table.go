package harmony

import (
	"strings"

	"github.com/pkg/errors"
)

type Harmony string

const (
	Complementary       Harmony = "complementary"
	Triadic             Harmony = "triadic"
	Tetradic            Harmony = "tetradic"
	Analogous           Harmony = "analogous"
	SplitComplementary  Harmony = "splitComplementary"
	DoubleComplementary Harmony = "doubleComplementary"
)

// GoldenAngle in degrees; successive multiples land far apart on the hue wheel.
const GoldenAngle = 137.508

var ErrInvalidHarmony = errors.New("invalid harmony")

// Band bounds the saturation and lightness sampled for a randomized harmony.
type Band struct {
	SatMin   float64 `json:"satMin"`
	SatMax   float64 `json:"satMax"`
	LightMin float64 `json:"lightMin"`
	LightMax float64 `json:"lightMax"`
}

// Profile describes how a harmony is built and how often it is drawn.
type Profile struct {
	Harmony Harmony   `json:"harmony"`
	Offsets []float64 `json:"offsets"`
	Weight  float64   `json:"weight"`
	Band    Band      `json:"band"`
}

type weighted struct {
	harmony Harmony
	weight  float64
}

// Hue offsets in degrees from the seed hue. The seed itself is always first.
var offsets = map[Harmony][]float64{
	Complementary:       {0, 180},
	Triadic:             {0, 120, 240},
	Tetradic:            {0, 90, 180, 270},
	Analogous:           {0, 15, -15, 30, -30},
	SplitComplementary:  {0, 150, 210},
	DoubleComplementary: {0, 30, 180, 210},
}

// Selection weights, summing to 1.0. Order is fixed so cumulative selection
// is reproducible for a given random source.
var weights = []weighted{
	{Complementary, 0.25},
	{Analogous, 0.20},
	{Triadic, 0.20},
	{SplitComplementary, 0.15},
	{Tetradic, 0.10},
	{DoubleComplementary, 0.10},
}

var bands = map[Harmony]Band{
	Complementary:       {SatMin: 65, SatMax: 90, LightMin: 45, LightMax: 65},
	Triadic:             {SatMin: 60, SatMax: 85, LightMin: 45, LightMax: 65},
	Tetradic:            {SatMin: 55, SatMax: 80, LightMin: 40, LightMax: 70},
	Analogous:           {SatMin: 50, SatMax: 80, LightMin: 40, LightMax: 70},
	SplitComplementary:  {SatMin: 60, SatMax: 85, LightMin: 45, LightMax: 65},
	DoubleComplementary: {SatMin: 55, SatMax: 80, LightMin: 40, LightMax: 65},
}

// All lists every harmony in selection-table order.
func All() []Harmony {
	all := make([]Harmony, len(weights))
	for i, w := range weights {
		all[i] = w.harmony
	}
	return all
}

// ParseHarmony accepts a harmony name in any letter case, with '-' or '_'
// separators allowed ("split-complementary").
func ParseHarmony(name string) (Harmony, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for _, h := range All() {
		if strings.ToLower(string(h)) == key {
			return h, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidHarmony, "%q", name)
}

// Offsets returns a copy of the hue offsets for h, or nil when h is unknown.
func Offsets(h Harmony) []float64 {
	o, ok := offsets[h]
	if !ok {
		return nil
	}
	return append([]float64(nil), o...)
}

// BandFor returns the saturation/lightness band for h.
func BandFor(h Harmony) (Band, bool) {
	b, ok := bands[h]
	return b, ok
}

// Weight returns the selection probability of h.
func Weight(h Harmony) float64 {
	for _, w := range weights {
		if w.harmony == h {
			return w.weight
		}
	}
	return 0
}

// Profiles lists every harmony in selection-table order.
func Profiles() []Profile {
	all := All()
	profiles := make([]Profile, len(all))
	for i, h := range all {
		band, _ := BandFor(h)
		profiles[i] = Profile{Harmony: h, Offsets: Offsets(h), Weight: Weight(h), Band: band}
	}
	return profiles
}
