package dockmotion

// Consumer-side helpers. The controller itself is stateless; anything that
// smooths its output across frames lives in the consumer, and these two
// cover the cases every renderer of this controller ends up writing:
// exponential smoothing for gate/door angles and a roll accumulator for
// wheel spin.

// Damper low-pass filters a value toward a target with the per-frame
// exponential step value += (target − value) · Factor. Evaluate once per
// rendered frame; a Factor around 0.1 settles in roughly twenty frames.
type Damper struct {
	Value  float64
	Factor float64
}

// Update moves Value toward target by one smoothing step and returns it.
func (d *Damper) Update(target float64) float64 {
	d.Value += (target - d.Value) * d.Factor
	return d.Value
}

// WheelSpin integrates the advisory Speed channel into a wheel roll angle.
// The controller never integrates speed itself (position comes straight from
// elapsed time), so wheel rotation is the one place accumulation belongs.
type WheelSpin struct {
	Angle  float64
	Radius float64 // wheel radius in world units; zero means 0.55
}

// Update advances the roll angle by speed·dt/radius and returns it.
// Reversing speed spins the wheels backward, which is the point.
func (w *WheelSpin) Update(speed, dt float64) float64 {
	r := w.Radius
	if r <= 0 {
		r = 0.55
	}
	w.Angle += speed * dt / r
	return w.Angle
}
