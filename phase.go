package dockmotion

// evalFunc synthesizes the pose for one phase. local is phase-relative
// elapsed time in [0, duration]; cyclePos and wallClock are passed through
// for evaluators that need the absolute cycle position (backing wobble) or
// the blink term.
type evalFunc func(c *Controller, local, duration, cyclePos, wallClock float64) Pose

// phaseSpec is one row of the cycle table: a phase tag, its fixed duration,
// and the evaluator that owns that interval.
type phaseSpec struct {
	phase    Phase
	duration float64
	eval     evalFunc
}

// poseAt walks the phase table accumulating a running threshold; the first
// row whose cumulative threshold exceeds cyclePos is active, and its
// evaluator receives the phase-local time. The table has at most a dozen
// rows, so a linear scan is all the dispatch this needs.
//
// Inputs at or past the table's end — including anything outside
// [0, CycleLength) a caller failed to wrap — fall through to the terminal
// leaving hold, so a bad input degrades to a stable pose instead of reading
// past the table.
func (c *Controller) poseAt(cyclePos, wallClock float64) Pose {
	if cyclePos < 0 {
		cyclePos = 0
	}
	start := 0.0
	for i := range c.phases {
		ps := &c.phases[i]
		if cyclePos < start+ps.duration {
			return ps.eval(c, cyclePos-start, ps.duration, cyclePos, wallClock)
		}
		start += ps.duration
	}
	return c.leavingHold()
}

// tableLength is the sum of the listed phase durations. The remainder of the
// cycle, [tableLength, CycleLength), is the designed leaving hold.
func (c *Controller) tableLength() float64 {
	total := 0.0
	for i := range c.phases {
		total += c.phases[i].duration
	}
	return total
}
