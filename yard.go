package dockmotion

import "math"

// Yard owns the two mirrored dock sites and applies the clock discipline
// their controllers expect: the simulation clock reduced modulo CycleLength,
// with the receiving site staggered by half a cycle so the two maneuvers
// interleave instead of running in lockstep.
type Yard struct {
	Shipping  *Controller
	Receiving *Controller

	// Stagger is the receiving site's offset into the cycle. NewYard sets
	// it to HalfCycle.
	Stagger float64
}

// NewYard returns a yard with both default controllers and the half-cycle
// stagger.
func NewYard() *Yard {
	return &Yard{
		Shipping:  Shipping(),
		Receiving: Receiving(),
		Stagger:   HalfCycle,
	}
}

// At returns the pose of both sites at simTime units of simulation time.
// simTime may be any float, including negative; wallClock is passed through
// unreduced for the signal blink term.
func (y *Yard) At(simTime, wallClock float64) (shipping, receiving Pose) {
	return y.Shipping.Pose(cycleMod(simTime), wallClock),
		y.Receiving.Pose(cycleMod(simTime+y.Stagger), wallClock)
}

// cycleMod reduces t into [0, CycleLength).
func cycleMod(t float64) float64 {
	m := math.Mod(t, CycleLength)
	if m < 0 {
		m += CycleLength
	}
	return m
}
