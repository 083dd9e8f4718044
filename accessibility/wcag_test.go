package accessibility

import (
	"math"
	"testing"

	"github.com/color-game/palettes/colorspace"
)

func TestContrastRatioExtremes(t *testing.T) {
	if got := Check(White, Black).Ratio; got != 21 {
		t.Errorf("white on black = %v, want 21", got)
	}
	if got := ContrastRatio(White, White); got != 1 {
		t.Errorf("white on white = %v, want 1", got)
	}
}

func TestContrastRatioSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"#1E96BE", "#FFFFFF"},
		{"#777777", "#000000"},
		{"#F43F5E", "#0F172A"},
	}
	for _, p := range pairs {
		a, b := colorspace.MustHex(p[0]), colorspace.MustHex(p[1])
		if ContrastRatio(a, b) != ContrastRatio(b, a) {
			t.Errorf("ratio of %s/%s is not symmetric", p[0], p[1])
		}
		if r := ContrastRatio(a, b); r < 1 || r > 21 {
			t.Errorf("ratio of %s/%s out of range: %v", p[0], p[1], r)
		}
	}
}

func TestRelativeLuminance(t *testing.T) {
	if l := RelativeLuminance(colorspace.RGB{}); l != 0 {
		t.Errorf("black luminance = %v", l)
	}
	if l := RelativeLuminance(colorspace.RGB{R: 255, G: 255, B: 255}); math.Abs(l-1) > 1e-9 {
		t.Errorf("white luminance = %v", l)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		ratio float64
		want  Level
	}{
		{21, AAA},
		{7, AAA},
		{6.99, AA},
		{4.5, AA},
		{4.49, AALarge},
		{3, AALarge},
		{2.99, Fail},
		{1, Fail},
	}
	for _, tt := range tests {
		if got := Classify(tt.ratio); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}

func TestCheck(t *testing.T) {
	result := Check(colorspace.MustHex("#777777"), White)
	if result.Ratio != 4.48 {
		t.Errorf("ratio = %v, want 4.48", result.Ratio)
	}
	if result.Level != AALarge {
		t.Errorf("level = %s, want %s", result.Level, AALarge)
	}
	if result.PassesAA || result.PassesAAA {
		t.Errorf("#777 on white should fail AA: %+v", result)
	}
}

func TestIdealTextColor(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{"#FFFFFF", "#000000"},
		{"#000000", "#FFFFFF"},
		{"#1E96BE", "#000000"},
		{"#1E3A8A", "#FFFFFF"},
		{"#FACC15", "#000000"},
	}
	for _, tt := range tests {
		if got := IdealTextColor(colorspace.MustHex(tt.bg)).Hex; got != tt.want {
			t.Errorf("IdealTextColor(%s) = %s, want %s", tt.bg, got, tt.want)
		}
	}
}
