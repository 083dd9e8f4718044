package colorspace

import "math"

// maxDistance is the diagonal of the RGB cube, sqrt(3 * 255^2).
const maxDistance = 441.67

// Distance returns the Euclidean distance between two colors in RGB space.
func Distance(a, b ColorValue) float64 {
	dr := float64(a.RGB.R - b.RGB.R)
	dg := float64(a.RGB.G - b.RGB.G)
	db := float64(a.RGB.B - b.RGB.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Similarity scores two colors from 0 (opposite corners of the RGB cube) to 100 (identical).
func Similarity(a, b ColorValue) int {
	score := int(math.Round((1 - (Distance(a, b) / maxDistance)) * 100))

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score
}

// Distinct drops every color that lies within minDistance of a color kept
// before it. Order is preserved and the first color always survives.
func Distinct(colors []ColorValue, minDistance float64) []ColorValue {
	kept := make([]ColorValue, 0, len(colors))
	for _, c := range colors {
		tooClose := false
		for _, k := range kept {
			if Distance(c, k) < minDistance {
				tooClose = true
				break
			}
		}
		if !tooClose {
			kept = append(kept, c)
		}
	}
	return kept
}

// Nearest returns the index of the candidate closest to target, or -1 when candidates is empty.
func Nearest(target ColorValue, candidates []ColorValue) int {
	best := -1
	bestDistance := math.MaxFloat64
	for i, c := range candidates {
		if d := Distance(target, c); d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	return best
}
