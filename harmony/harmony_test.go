package harmony

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/color-game/palettes/colorspace"
)

func hues(colors []colorspace.ColorValue) []float64 {
	h := make([]float64, len(colors))
	for i, c := range colors {
		h[i] = c.HSL.H
	}
	return h
}

func equalHues(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSet(t *testing.T) {
	seed := colorspace.HSLToColor(200, 70, 50)

	tests := []struct {
		harmony Harmony
		want    []float64
	}{
		{Complementary, []float64{200, 20}},
		{Triadic, []float64{200, 320, 80}},
		{Tetradic, []float64{200, 290, 20, 110}},
		{Analogous, []float64{200, 215, 185, 230}},
		{SplitComplementary, []float64{200, 350, 50}},
		{DoubleComplementary, []float64{200, 230, 20, 50}},
	}

	for _, tt := range tests {
		t.Run(string(tt.harmony), func(t *testing.T) {
			set, err := Set(seed, tt.harmony)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := hues(set); !equalHues(got, tt.want) {
				t.Errorf("hues = %v, want %v", got, tt.want)
			}
			if set[0].Hex != seed.Hex {
				t.Errorf("first color %s, want seed %s", set[0].Hex, seed.Hex)
			}
			for _, c := range set {
				if c.HSL.S != 70 || c.HSL.L != 50 {
					t.Errorf("%s changed saturation or lightness: %+v", c.Hex, c.HSL)
				}
			}
		})
	}
}

func TestSetUnknownHarmony(t *testing.T) {
	_, err := Set(colorspace.MustHex("#1E96BE"), Harmony("pentadic"))
	if !errors.Is(err, ErrInvalidHarmony) {
		t.Errorf("error = %v, want ErrInvalidHarmony", err)
	}
}

func TestParseHarmony(t *testing.T) {
	tests := map[string]Harmony{
		"complementary":        Complementary,
		"TRIADIC":              Triadic,
		"split-complementary":  SplitComplementary,
		"double_complementary": DoubleComplementary,
		"splitComplementary":   SplitComplementary,
	}
	for in, want := range tests {
		got, err := ParseHarmony(in)
		if err != nil {
			t.Errorf("ParseHarmony(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseHarmony(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseHarmony("square"); !errors.Is(err, ErrInvalidHarmony) {
		t.Errorf("ParseHarmony(square) error = %v", err)
	}
}

func TestWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, h := range All() {
		sum += Weight(h)
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("weights sum to %v", sum)
	}
}

func TestSelectFollowsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const draws = 20000

	counts := make(map[Harmony]int)
	for i := 0; i < draws; i++ {
		counts[Select(rng)]++
	}

	for _, h := range All() {
		got := float64(counts[h]) / draws
		if math.Abs(got-Weight(h)) > 0.02 {
			t.Errorf("%s drawn %.3f of the time, want about %.2f", h, got, Weight(h))
		}
	}
}

func TestBaseHueOnGoldenAngleSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		h := BaseHue(rng)
		if h < 0 || h >= 360 {
			t.Fatalf("base hue %v out of range", h)
		}
	}
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		result := Random(rng, 0)
		if want := len(Offsets(result.Harmony)); len(result.Colors) != want {
			t.Fatalf("%s produced %d colors, want %d", result.Harmony, len(result.Colors), want)
		}
		for _, c := range result.Colors {
			if c.HSL.L < 25 || c.HSL.L > 85 {
				t.Errorf("%s lightness %v outside legible range", c.Hex, c.HSL.L)
			}
			if c.HSL.S < 35 {
				t.Errorf("%s saturation %v below legible minimum", c.Hex, c.HSL.S)
			}
		}
	}
}

func TestRandomOfIsReproducible(t *testing.T) {
	a, err := RandomOf(rand.New(rand.NewSource(99)), Triadic, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := RandomOf(rand.New(rand.NewSource(99)), Triadic, 6)

	if len(a.Colors) != 6 {
		t.Fatalf("got %d colors, want 6", len(a.Colors))
	}
	for i := range a.Colors {
		if a.Colors[i].Hex != b.Colors[i].Hex {
			t.Errorf("color %d differs: %s vs %s", i, a.Colors[i].Hex, b.Colors[i].Hex)
		}
	}

	if _, err := RandomOf(rand.New(rand.NewSource(1)), Harmony("nope"), 3); !errors.Is(err, ErrInvalidHarmony) {
		t.Errorf("RandomOf(nope) error = %v", err)
	}
}

func TestDrawKeepsDistanceFromEarlierColors(t *testing.T) {
	band, _ := BandFor(Analogous)
	kept := []colorspace.ColorValue{colorspace.HSLToColor(200, 65, 55)}

	for seed := int64(1); seed <= 50; seed++ {
		c := draw(rand.New(rand.NewSource(seed)), 200, band, kept)
		if d := colorspace.Distance(c, kept[0]); d < minDrawDistance {
			t.Errorf("seed %d: %s is %.1f from %s", seed, c.Hex, d, kept[0].Hex)
		}
	}
}

func TestDrawWithoutEarlierColors(t *testing.T) {
	band := Band{SatMin: 60, SatMax: 60, LightMin: 50, LightMax: 50}
	c := draw(rand.New(rand.NewSource(3)), 120, band, nil)
	if c.HSL != (colorspace.HSL{H: 120, S: 60, L: 50}) {
		t.Errorf("got %+v", c.HSL)
	}
}

func TestProfiles(t *testing.T) {
	profiles := Profiles()
	if len(profiles) != len(All()) {
		t.Fatalf("got %d profiles", len(profiles))
	}
	for _, p := range profiles {
		if p.Weight <= 0 || len(p.Offsets) == 0 || p.Offsets[0] != 0 {
			t.Errorf("%s: %+v", p.Harmony, p)
		}
		if p.Band.SatMin > p.Band.SatMax || p.Band.LightMin > p.Band.LightMax {
			t.Errorf("%s: inverted band %+v", p.Harmony, p.Band)
		}
	}
	if profiles[0].Harmony != Complementary || profiles[0].Weight != 0.25 {
		t.Errorf("first profile %+v", profiles[0])
	}
}

func TestLegible(t *testing.T) {
	tests := []struct {
		in   colorspace.ColorValue
		s, l float64
	}{
		{colorspace.HSLToColor(10, 10, 95), 35, 85},
		{colorspace.HSLToColor(10, 80, 5), 80, 25},
		{colorspace.HSLToColor(10, 60, 50), 60, 50},
	}
	for _, tt := range tests {
		got := Legible(tt.in)
		if got.HSL.S != tt.s || got.HSL.L != tt.l {
			t.Errorf("Legible(%+v) = %+v, want s=%v l=%v", tt.in.HSL, got.HSL, tt.s, tt.l)
		}
	}
}
