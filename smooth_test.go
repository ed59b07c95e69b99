package dockmotion

import (
	"math"
	"testing"
)

func TestDamperConverges(t *testing.T) {
	d := Damper{Factor: 0.1}
	for i := 0; i < 200; i++ {
		d.Update(1)
	}
	if math.Abs(d.Value-1) > 1e-6 {
		t.Errorf("value = %v after 200 steps, want ~1", d.Value)
	}
}

func TestDamperStepIsExponential(t *testing.T) {
	d := Damper{Value: 0, Factor: 0.25}
	if got := d.Update(8); got != 2 {
		t.Errorf("first step = %v, want 2", got)
	}
	if got := d.Update(8); got != 3.5 {
		t.Errorf("second step = %v, want 3.5", got)
	}
}

func TestWheelSpinIntegratesSpeed(t *testing.T) {
	w := WheelSpin{Radius: 1}
	w.Update(2, 0.5)
	if w.Angle != 1 {
		t.Errorf("angle = %v, want 1", w.Angle)
	}
	w.Update(-2, 0.5)
	if w.Angle != 0 {
		t.Errorf("angle after reversing = %v, want 0", w.Angle)
	}
}

func TestWheelSpinDefaultRadius(t *testing.T) {
	w := WheelSpin{}
	w.Update(0.55, 1)
	if math.Abs(w.Angle-1) > 1e-12 {
		t.Errorf("angle = %v with default radius, want 1", w.Angle)
	}
}
