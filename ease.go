package dockmotion

import "github.com/tanema/gween/ease"

// The controller draws its easing vocabulary from gween's ease package and
// adds Smoothstep, which gween does not ship. Smoothstep uses the same
// TweenFunc signature so it slots in beside the gween curves anywhere a
// phase wants it.

// Smoothstep is the Hermite 3p²−2p³ curve: zero velocity at both ends,
// gentler than InOutQuad through the middle.
func Smoothstep(t, b, c, d float32) float32 {
	p := t / d
	return c*p*p*(3-2*p) + b
}

// fraction maps linear progress t ∈ [0,1] through fn and returns the eased
// fraction. gween computes in float32; the controller works in float64 world
// units, so the conversion lives here in one place.
func fraction(fn ease.TweenFunc, t float64) float64 {
	return float64(fn(float32(t), 0, 1, 1))
}

// easedRate approximates d(fraction)/dt at t by central difference,
// one-sided at the interval edges. Feeds only the advisory Speed channel;
// position never integrates it.
func easedRate(fn ease.TweenFunc, t float64) float64 {
	const h = 1e-3
	lo, hi := t-h, t+h
	if lo < 0 {
		lo = 0
	}
	if hi > 1 {
		hi = 1
	}
	if hi == lo {
		return 0
	}
	return (fraction(fn, hi) - fraction(fn, lo)) / (hi - lo)
}
