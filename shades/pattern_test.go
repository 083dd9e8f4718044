package shades

import (
	"errors"
	"testing"
)

func TestClampShadeCount(t *testing.T) {
	tests := map[int]int{
		-3: 5,
		0:  11,
		3:  5,
		5:  5,
		8:  9,
		11: 11,
		13: 13,
		14: 13,
	}
	for in, want := range tests {
		if got := ClampShadeCount(in); got != want {
			t.Errorf("ClampShadeCount(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestWeights(t *testing.T) {
	tests := []struct {
		pattern NamingPattern
		count   int
		want    []int
	}{
		{Pattern50To950, 11, []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}},
		{Pattern50To950, 5, []int{100, 300, 500, 700, 900}},
		{Pattern100To900, 9, []int{100, 200, 300, 400, 500, 600, 700, 800, 900}},
		{Pattern100To900, 5, []int{100, 300, 500, 700, 900}},
		{Pattern100To900, 7, []int{100, 230, 370, 500, 630, 770, 900}},
		{PatternOrdinal, 7, []int{1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		got, err := tt.pattern.Weights(tt.count)
		if err != nil {
			t.Fatalf("%s/%d: %v", tt.pattern, tt.count, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("%s/%d: got %v, want %v", tt.pattern, tt.count, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s/%d: got %v, want %v", tt.pattern, tt.count, got, tt.want)
				break
			}
		}
	}
}

func TestWeightsStrictlyIncrease(t *testing.T) {
	for _, p := range []NamingPattern{Pattern50To950, Pattern100To900, PatternOrdinal} {
		for count := MinShadeCount; count <= MaxShadeCount; count += 2 {
			w, err := p.Weights(count)
			if err != nil {
				t.Fatalf("%s/%d: %v", p, count, err)
			}
			for i := 1; i < len(w); i++ {
				if w[i] <= w[i-1] {
					t.Errorf("%s/%d: weights not increasing: %v", p, count, w)
					break
				}
			}
		}
	}
}

func TestParsePattern(t *testing.T) {
	if p, err := ParsePattern(""); err != nil || p != Pattern50To950 {
		t.Errorf("ParsePattern(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePattern("Ordinal"); err != nil || p != PatternOrdinal {
		t.Errorf("ParsePattern(Ordinal) = %q, %v", p, err)
	}
	if _, err := ParsePattern("a-z"); !errors.Is(err, ErrInvalidNamingPattern) {
		t.Errorf("ParsePattern(a-z) error = %v", err)
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range Algorithms() {
		got, err := ParseAlgorithm(string(a))
		if err != nil || got != a {
			t.Errorf("ParseAlgorithm(%s) = %s, %v", a, got, err)
		}
	}
	if got, err := ParseAlgorithm(" Radix "); err != nil || got != Radix {
		t.Errorf("ParseAlgorithm(Radix) = %s, %v", got, err)
	}
	if _, err := ParseAlgorithm("material"); !errors.Is(err, ErrInvalidAlgorithm) {
		t.Errorf("ParseAlgorithm(material) error = %v", err)
	}
}
