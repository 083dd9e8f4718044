package naming

import (
	"testing"

	"github.com/color-game/palettes/colorspace"
)

func TestHueOf(t *testing.T) {
	tests := []struct {
		hue  float64
		want HueFamily
	}{
		{0, Red},
		{14, Red},
		{15, Orange},
		{44, Orange},
		{60, Yellow},
		{120, Green},
		{200, Blue},
		{270, Purple},
		{320, Pink},
		{350, Red},
		{-10, Red},
		{380, Orange},
	}
	for _, tt := range tests {
		if got := HueOf(tt.hue); got != tt.want {
			t.Errorf("HueOf(%v) = %s, want %s", tt.hue, got, tt.want)
		}
	}
}

func TestBands(t *testing.T) {
	if SaturationOf(71) != SaturationHigh || SaturationOf(70) != SaturationMedium || SaturationOf(30) != SaturationLow {
		t.Error("saturation band boundaries wrong")
	}
	if LightnessOf(29) != LightnessDark || LightnessOf(30) != LightnessMedium || LightnessOf(70) != LightnessLight {
		t.Error("lightness band boundaries wrong")
	}
}

func TestStructureOf(t *testing.T) {
	at := func(hues ...float64) []colorspace.ColorValue {
		colors := make([]colorspace.ColorValue, len(hues))
		for i, h := range hues {
			colors[i] = colorspace.HSLToColor(h, 70, 50)
		}
		return colors
	}

	tests := []struct {
		name   string
		colors []colorspace.ColorValue
		want   Structure
	}{
		{"single hue", at(200, 200, 205), StructureMonochromatic},
		{"opposites", at(30, 210), StructureComplementary},
		{"near opposites", at(0, 150), StructureComplementary},
		{"three", at(0, 120, 240), StructureTriadic},
		{"four", at(0, 90, 180, 270), StructureTetradic},
		{"neighbours", at(200, 230), StructureAnalogous},
		{"neighbours across zero", at(340, 20), StructureAnalogous},
		{"five on an arc", at(0, 30, 60, 90, 120), StructureAnalogous},
		{"five spread", at(0, 60, 150, 210, 300), StructureCustom},
		{"quarter apart", at(0, 90), StructureCustom},
		{"empty", nil, StructureCustom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StructureOf(shadesOf(tt.colors...)); got != tt.want {
				t.Errorf("StructureOf = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyUsesMostSaturatedShade(t *testing.T) {
	traits := Classify(shadesOf(
		colorspace.HSLToColor(120, 10, 90),
		colorspace.HSLToColor(10, 90, 20),
		colorspace.HSLToColor(120, 40, 50),
	))
	if traits.Hue != Red || traits.Saturation != SaturationHigh || traits.Lightness != LightnessDark {
		t.Errorf("traits = %+v", traits)
	}
}
