package shades

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

type NamingPattern string

const (
	Pattern50To950  NamingPattern = "50-950"
	Pattern100To900 NamingPattern = "100-900"
	PatternOrdinal  NamingPattern = "ordinal"
)

const (
	MinShadeCount     = 5
	MaxShadeCount     = 13
	DefaultShadeCount = 11
)

var ErrInvalidNamingPattern = errors.New("invalid naming pattern")

// Weights per shade count for 50-950. 500 is always the middle stop.
var tailwindWeights = map[int][]int{
	5:  {100, 300, 500, 700, 900},
	7:  {50, 200, 300, 500, 700, 800, 950},
	9:  {100, 200, 300, 400, 500, 600, 700, 800, 900},
	11: {50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950},
	13: {25, 50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950, 975},
}

// ParsePattern resolves a naming pattern. An empty name selects 50-950.
func ParsePattern(name string) (NamingPattern, error) {
	switch p := NamingPattern(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return Pattern50To950, nil
	case Pattern50To950, Pattern100To900, PatternOrdinal:
		return p, nil
	}
	return "", errors.Wrapf(ErrInvalidNamingPattern, "%q", name)
}

// ClampShadeCount maps any requested count onto {5,7,9,11,13}. Zero selects
// the default of 11; even counts round up to the next odd count.
func ClampShadeCount(n int) int {
	switch {
	case n == 0:
		return DefaultShadeCount
	case n < MinShadeCount:
		return MinShadeCount
	case n > MaxShadeCount:
		return MaxShadeCount
	case n%2 == 0:
		return n + 1
	}
	return n
}

// Weights returns count strictly increasing weights for the pattern. count
// must already be clamped.
func (p NamingPattern) Weights(count int) ([]int, error) {
	switch p {
	case Pattern50To950:
		w, ok := tailwindWeights[count]
		if !ok {
			return nil, errors.Errorf("no %s weights for %d shades", p, count)
		}
		return append([]int(nil), w...), nil
	case Pattern100To900:
		return linearWeights(100, 900, 10, count), nil
	case PatternOrdinal:
		return linearWeights(1, count, 1, count), nil
	}
	return nil, errors.Wrapf(ErrInvalidNamingPattern, "%q", p)
}

func linearWeights(from, to, step, count int) []int {
	weights := make([]int, count)
	if count == 1 {
		weights[0] = from
		return weights
	}
	span := float64(to - from)
	for i := range weights {
		v := float64(from) + span*float64(i)/float64(count-1)
		weights[i] = int(math.Round(v/float64(step))) * step
	}
	return weights
}
