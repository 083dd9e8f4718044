package shades

import (
	"math"
	"sort"

	"github.com/color-game/palettes/colorspace"
	"github.com/color-game/palettes/harmony"
)

// Channel names the HSL channel a curve sweeps; contrast shift stretches it.
type Channel int

const (
	ChannelLightness Channel = iota
	ChannelSaturation
	ChannelHue
)

// Curve produces the HSL stop at a position of a scale. Index 0 is the
// lightest end of the scale.
type Curve interface {
	Stop(seed colorspace.HSL, index, count int) colorspace.HSL
	Channel() Channel
}

func position(index, count int) float64 {
	if count <= 1 {
		return 0.5
	}
	return float64(index) / float64(count-1)
}

// scaleCurve is a curated lightness progression anchored on the seed at the
// middle stop. The light half eases out toward lightest, the dark half eases
// toward darkest, and saturation falls off by up to satDrop at the ends.
type scaleCurve struct {
	lightest  float64
	darkest   float64
	anchorMin float64
	anchorMax float64
	lightEase float64
	darkEase  float64
	satDrop   float64
}

func (c scaleCurve) Channel() Channel { return ChannelLightness }

func (c scaleCurve) Stop(seed colorspace.HSL, index, count int) colorspace.HSL {
	t := position(index, count)
	return colorspace.HSL{
		H: seed.H,
		S: c.saturation(seed.S, t),
		L: c.lightness(seed.L, t),
	}
}

func (c scaleCurve) lightness(seedL, t float64) float64 {
	anchor := colorspace.Clamp(seedL, c.anchorMin, c.anchorMax)
	if t <= 0.5 {
		x := (0.5 - t) / 0.5
		return anchor + (c.lightest-anchor)*(1-math.Pow(1-x, c.lightEase))
	}
	x := (t - 0.5) / 0.5
	return anchor - (anchor-c.darkest)*math.Pow(x, c.darkEase)
}

func (c scaleCurve) saturation(seedS, t float64) float64 {
	edge := math.Abs(2*t - 1)
	return seedS * (1 - c.satDrop*math.Pow(edge, 1.5))
}

// lightnessSweep varies only lightness, linearly on each side of the seed.
type lightnessSweep struct {
	lightest  float64
	darkest   float64
	anchorMin float64
	anchorMax float64
}

func (c lightnessSweep) Channel() Channel { return ChannelLightness }

func (c lightnessSweep) Stop(seed colorspace.HSL, index, count int) colorspace.HSL {
	return colorspace.HSL{
		H: seed.H,
		S: seed.S,
		L: anchoredLinear(position(index, count), c.lightest, colorspace.Clamp(seed.L, c.anchorMin, c.anchorMax), c.darkest),
	}
}

// saturationSweep varies only saturation, from lowest at the light end to
// highest at the dark end, passing through the seed at the middle stop.
type saturationSweep struct {
	lowest    float64
	highest   float64
	anchorMin float64
	anchorMax float64
}

func (c saturationSweep) Channel() Channel { return ChannelSaturation }

func (c saturationSweep) Stop(seed colorspace.HSL, index, count int) colorspace.HSL {
	return colorspace.HSL{
		H: seed.H,
		S: anchoredLinear(position(index, count), c.lowest, colorspace.Clamp(seed.S, c.anchorMin, c.anchorMax), c.highest),
		L: seed.L,
	}
}

// hueSweep rotates hue linearly across span degrees centred on the seed.
type hueSweep struct {
	span float64
}

func (c hueSweep) Channel() Channel { return ChannelHue }

func (c hueSweep) Stop(seed colorspace.HSL, index, count int) colorspace.HSL {
	offset := -c.span/2 + c.span*position(index, count)
	return colorspace.HSL{H: seed.H + offset, S: seed.S, L: seed.L}
}

// monochromeCurve spaces lightness evenly from near-white to near-black.
type monochromeCurve struct {
	lightest float64
	darkest  float64
}

func (c monochromeCurve) Channel() Channel { return ChannelLightness }

func (c monochromeCurve) Stop(seed colorspace.HSL, index, count int) colorspace.HSL {
	t := position(index, count)
	return colorspace.HSL{H: seed.H, S: seed.S, L: c.lightest + (c.darkest-c.lightest)*t}
}

// hueSplitCurve assigns each stop one of the harmony hues, in contiguous runs,
// and takes lightness and saturation from base.
type hueSplitCurve struct {
	base    scaleCurve
	offsets []float64
}

func (c hueSplitCurve) Channel() Channel { return ChannelLightness }

func (c hueSplitCurve) Stop(seed colorspace.HSL, index, count int) colorspace.HSL {
	stop := c.base.Stop(seed, index, count)
	if len(c.offsets) > 0 && count > 0 {
		stop.H = seed.H + c.offsets[index*len(c.offsets)/count]
	}
	return stop
}

func anchoredLinear(t, start, mid, end float64) float64 {
	if t <= 0.5 {
		return start + (mid-start)*(t/0.5)
	}
	return mid + (end-mid)*((t-0.5)/0.5)
}

func sortedOffsets(h harmony.Harmony) []float64 {
	o := harmony.Offsets(h)
	sort.Float64s(o)
	return o
}
