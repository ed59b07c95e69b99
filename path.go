package dockmotion

import "math"

// Path primitives. The plane is (X, Z) with heading r defined so the
// forward vector is (sin r, cos r): r = 0 faces +Z, r = π/2 faces +X.

// lerp is unclamped linear interpolation; callers guarantee t ∈ [0,1] by
// construction (an evaluator only ever sees localTime ≤ duration).
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clampf limits v to [lo, hi].
func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// arcPoint places a point on the circle of the given center and radius at
// position angle a, where the offset from the center is (cos a, sin a)·radius.
func arcPoint(cx, cz, radius, a float64) (x, z float64) {
	sin, cos := math.Sincos(a)
	return cx + radius*cos, cz + radius*sin
}

// arcHeading returns the travel heading tangent to a circle at position
// angle a for the given sweep direction: a increasing (sweep > 0) travels at
// r = −a, a decreasing at r = π − a.
//
//	forward = d/da (cos a, sin a) · sign = sign · (−sin a, cos a)
//
// The result is a raw branch; evaluators add a multiple of 2π where numeric
// continuity with a neighboring phase needs it.
func arcHeading(a, sweep float64) float64 {
	if sweep >= 0 {
		return -a
	}
	return math.Pi - a
}

// wrapAngle maps r into [0, 2π).
func wrapAngle(r float64) float64 {
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}

// angleDelta returns the smallest signed difference a−b, in (−π, π].
func angleDelta(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
