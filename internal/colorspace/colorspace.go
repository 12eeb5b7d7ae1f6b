// Package colorspace implements the gamma-aware color interpolation used
// by the style sampler.
//
// Stored color channels are treated as already gamma-compressed with a
// fixed gamma of 2.2, a simplified stand-in for true sRGB rather than
// the exact IEC 61966-2-1 curve with its linear toe segment. Channels
// are linearized (ToLinear), lerped, then re-encoded (FromLinear)
// against a plain v^2.2 power law.
package colorspace

import "math"

// Gamma is the fixed gamma TinyVG colors are assumed to be encoded with.
const Gamma = 2.2

// ToLinear converts a gamma-compressed channel value in [0,1] to linear
// light via v^gamma.
func ToLinear(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Pow(v, Gamma)
}

// FromLinear converts a linear-light channel value in [0,1] back to
// gamma-compressed space via v^(1/gamma).
func FromLinear(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Pow(v, 1.0/Gamma)
}

// LerpChannel interpolates a single gamma-compressed channel in linear
// light: convert both endpoints to linear, lerp, convert back.
func LerpChannel(c0, c1, t float64) float64 {
	l0, l1 := ToLinear(c0), ToLinear(c1)
	return FromLinear(l0 + (l1-l0)*t)
}
