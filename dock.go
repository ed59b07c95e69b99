package dockmotion

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Tuning constants shared by every phase evaluator.
const (
	blinkRate = 8.0 // rad/s for the turn-signal blink term

	lagGain = 0.35 // trailer articulation per unit curvature·speed
	maxLag  = 0.22 // articulation clamp, ≈12.6°

	wobbleRate = 1.7   // backing heading wobble frequency
	wobbleAmp  = 0.018 // backing heading wobble amplitude

	rollGain      = 0.004 // cab roll per steering·|speed|
	throttlePitch = 0.02  // cab pitch-back per unit throttle
	brakePitch    = 0.035 // cab pitch-forward while braking

	steerRamp = 0.18 // fraction of an arc spent ramping steering in/out

	doorOpenDelay = 1.5 // docked time before the trailer doors open
	doorCloseLead = 1.5 // docked time reserved after the doors close

	idleThrottle = 0.04
)

// Layout holds the yard geometry for the canonical (shipping) frame. All
// values are world units; see Pose for the coordinate conventions.
//
// The maneuver it describes is a right-hand buttonhook: the truck enters
// northbound on the approach lane at LaneX, swings a 180° arc of ArcRadius
// at TurnZ onto the dock line at LaneX+2·ArcRadius, reverses north to DockZ,
// and departs south, turning left at PullOutZ onto the eastbound exit road.
type Layout struct {
	LaneX      float64 // approach lane x
	ApproachZ  float64 // z where the truck enters the scene
	TurnZ      float64 // z where the buttonhook arc begins
	ArcRadius  float64 // buttonhook arc radius
	DockZ      float64 // trailer z when flush with the dock
	PullOutZ   float64 // z where the departure turn begins
	ExitRadius float64 // departure arc radius
	ExitEndX   float64 // x where the truck leaves the scene
	Wheelbase  float64 // tractor wheelbase, sets the steering angle on arcs
}

// DefaultLayout is the yard geometry of the mill's truck bays.
func DefaultLayout() Layout {
	return Layout{
		LaneX:      26,
		ApproachZ:  -70,
		TurnZ:      -20,
		ArcRadius:  9,
		DockZ:      6,
		PullOutZ:   -12,
		ExitRadius: 9,
		ExitEndX:   98,
		Wheelbase:  4.2,
	}
}

// SiteConfig parameterizes a Controller for one dock site.
type SiteConfig struct {
	Layout Layout

	// Mirror reflects the canonical maneuver through the yard origin:
	// x and z negated, heading offset by π, and the left/right signal
	// roles swapped. The receiving site is exactly the shipping site
	// with Mirror set, which is what makes the two sites symmetric by
	// construction rather than by duplicated waypoint literals.
	Mirror bool
}

// Controller computes the docking-cycle pose for one dock site. It is
// stateless: every query is a pure function of its inputs, so a single
// Controller may be shared across goroutines and call sites freely.
type Controller struct {
	cfg    SiteConfig
	phases []phaseSpec

	// geometry derived from the layout once at construction
	dockX float64 // dock line x = LaneX + 2·ArcRadius
	arcCX float64 // buttonhook arc center x
	exitC float64 // departure arc center x
	exitZ float64 // exit road z = PullOutZ − ExitRadius
}

// NewController builds a controller for the given site configuration.
func NewController(cfg SiteConfig) *Controller {
	l := cfg.Layout
	c := &Controller{
		cfg:   cfg,
		dockX: l.LaneX + 2*l.ArcRadius,
		arcCX: l.LaneX + l.ArcRadius,
		exitZ: l.PullOutZ - l.ExitRadius,
	}
	c.exitC = c.dockX + l.ExitRadius
	c.phases = []phaseSpec{
		{PhaseEntering, 8, (*Controller).entering},
		{PhaseTurningIn, 8, (*Controller).turningIn},
		{PhaseStoppingToBack, 2, (*Controller).stoppingToBack},
		{PhaseBacking, 10, (*Controller).backing},
		{PhaseFinalAdjustment, 2, (*Controller).finalAdjustment},
		{PhaseDocked, 12, (*Controller).docked},
		{PhasePreparingToLeave, 2, (*Controller).preparingToLeave},
		{PhasePullingOut, 4, (*Controller).pullingOut},
		{PhaseTurningOut, 6, (*Controller).turningOut},
		{PhaseAccelerating, 5, (*Controller).accelerating},
	}
	return c
}

// Shipping returns the controller for the shipping dock with the default
// yard layout.
func Shipping() *Controller {
	return NewController(SiteConfig{Layout: DefaultLayout()})
}

// Receiving returns the controller for the receiving dock: the shipping
// maneuver mirrored through the yard origin.
func Receiving() *Controller {
	return NewController(SiteConfig{Layout: DefaultLayout(), Mirror: true})
}

// Pose returns the truck pose cyclePos time units into the docking cycle.
//
// cyclePos should lie in [0, CycleLength); callers with a raw monotonic
// clock reduce it modulo CycleLength first (Yard does this). Out-of-range
// values degrade to the terminal leaving hold. wallClock is unreduced
// monotonic seconds and drives only the signal blink term, so blinking stays
// steady across phase boundaries and cycle wraps.
func (c *Controller) Pose(cyclePos, wallClock float64) Pose {
	p := c.poseAt(cyclePos, wallClock)
	if c.cfg.Mirror {
		p.X, p.Z = -p.X, -p.Z
		p.Rotation += math.Pi
		p.LeftSignal, p.RightSignal = p.RightSignal, p.LeftSignal
	}
	return p
}

func blinkOn(wallClock float64) bool {
	return math.Sin(wallClock*blinkRate) > 0
}

// bodyCues fills the cosmetic roll/pitch channels from the channels already
// synthesized: roll leans out of the turn, pitch dips under braking and
// squats under throttle.
func bodyCues(p *Pose) {
	p.CabRoll = -p.SteeringAngle * math.Abs(p.Speed) * rollGain
	pitch := p.Throttle * throttlePitch
	if p.BrakeLights {
		pitch -= brakePitch * math.Min(math.Abs(p.Speed)/4, 1)
	}
	p.CabPitch = pitch
}

// steerEnvelope ramps steering in over the first steerRamp of an arc and
// back out over the last, holding full lock between.
func steerEnvelope(t float64) float64 {
	return clampf(math.Min(t, 1-t)/steerRamp, 0, 1)
}

// trailerLag models the trailer cutting inside the tractor's path mid-turn:
// proportional to curvature·speed, clamped, peaking mid-arc and returning to
// zero at both ends. The sign puts the trailer on the outside of the turn
// entry, trailing the cab.
func trailerLag(curvature, speed, t float64) float64 {
	return -clampf(curvature*speed*lagGain, -maxLag, maxLag) * math.Sin(t*math.Pi)
}

// entering: straight approach up the lane, decelerating toward the turn.
func (c *Controller) entering(local, duration, cyclePos, wallClock float64) Pose {
	l := c.cfg.Layout
	t := local / duration
	p := Pose{
		Phase:    PhaseEntering,
		X:        l.LaneX,
		Z:        lerp(l.ApproachZ, l.TurnZ, fraction(ease.OutQuad, t)),
		Rotation: 0,
		Speed:    (l.TurnZ - l.ApproachZ) / duration * easedRate(ease.OutQuad, t),
	}
	p.BrakeLights = t >= 0.7
	p.RightSignal = t >= 0.55 && blinkOn(wallClock)
	p.Throttle = clampf(0.55*(1-t), 0, 1)
	bodyCues(&p)
	return p
}

// turningIn: the 180° buttonhook arc from the lane onto the dock line.
// Position angle sweeps π → 0 around the arc center, so the tangent heading
// π − a runs 0 → π.
func (c *Controller) turningIn(local, duration, cyclePos, wallClock float64) Pose {
	l := c.cfg.Layout
	t := local / duration
	f := fraction(ease.InOutQuad, t)
	a := math.Pi * (1 - f)
	x, z := arcPoint(c.arcCX, l.TurnZ, l.ArcRadius, a)

	arcLen := math.Pi * l.ArcRadius
	speed := arcLen / duration * easedRate(ease.InOutQuad, t)
	curvature := 1 / l.ArcRadius // heading increases along the path

	p := Pose{
		Phase:         PhaseTurningIn,
		X:             x,
		Z:             z,
		Rotation:      arcHeading(a, -1),
		Speed:         speed,
		SteeringAngle: math.Atan(l.Wheelbase/l.ArcRadius) * steerEnvelope(t),
		TrailerAngle:  trailerLag(curvature, speed, t),
	}
	p.BrakeLights = t >= 0.75
	p.RightSignal = blinkOn(wallClock)
	p.Throttle = 0.35 * steerEnvelope(t)
	bodyCues(&p)
	return p
}

// stoppingToBack: stationary on the dock line, shifting into reverse.
func (c *Controller) stoppingToBack(local, duration, cyclePos, wallClock float64) Pose {
	l := c.cfg.Layout
	p := Pose{
		Phase:    PhaseStoppingToBack,
		X:        c.dockX,
		Z:        l.TurnZ,
		Rotation: math.Pi,
		Throttle: idleThrottle,
	}
	bodyCues(&p)
	return p
}

// backing: straight reverse from the dock line to the dock face. A small
// heading wobble, driven by the absolute cycle position and enveloped to
// zero at both ends, keeps the reverse from looking robotic.
func (c *Controller) backing(local, duration, cyclePos, wallClock float64) Pose {
	l := c.cfg.Layout
	t := local / duration
	wobble := math.Sin(cyclePos*wobbleRate) * wobbleAmp * (1 - t) * math.Sin(t*math.Pi)

	p := Pose{
		Phase:         PhaseBacking,
		X:             c.dockX,
		Z:             lerp(l.TurnZ, l.DockZ, fraction(Smoothstep, t)),
		Rotation:      math.Pi + wobble,
		Speed:         -(l.DockZ - l.TurnZ) / duration * easedRate(Smoothstep, t),
		SteeringAngle: wobble * 3,
		TrailerAngle:  -wobble * 2,
		ReverseLights: true,
		Throttle:      0.12,
	}
	bodyCues(&p)
	return p
}

// finalAdjustment: settled against the dock, airbrakes set.
func (c *Controller) finalAdjustment(local, duration, cyclePos, wallClock float64) Pose {
	l := c.cfg.Layout
	t := local / duration
	p := Pose{
		Phase:    PhaseFinalAdjustment,
		X:        c.dockX,
		Z:        l.DockZ,
		Rotation: math.Pi,
		Throttle: idleThrottle,
	}
	p.BrakeLights = t >= 0.4
	bodyCues(&p)
	return p
}

// docked: stationary at the dock. The trailer doors open a moment after
// arrival and close a moment before departure, strictly inside the phase.
func (c *Controller) docked(local, duration, cyclePos, wallClock float64) Pose {
	l := c.cfg.Layout
	p := Pose{
		Phase:    PhaseDocked,
		X:        c.dockX,
		Z:        l.DockZ,
		Rotation: math.Pi,
		Throttle: idleThrottle,
	}
	p.DoorsOpen = local >= doorOpenDelay && local <= duration-doorCloseLead
	return p
}

// preparingToLeave: doors shut, exit signal on, engine coming up.
func (c *Controller) preparingToLeave(local, duration, cyclePos, wallClock float64) Pose {
	l := c.cfg.Layout
	t := local / duration
	p := Pose{
		Phase:    PhasePreparingToLeave,
		X:        c.dockX,
		Z:        l.DockZ,
		Rotation: math.Pi,
		Throttle: lerp(idleThrottle, 0.25, t),
	}
	p.LeftSignal = blinkOn(wallClock) // departure turn is a left
	bodyCues(&p)
	return p
}

// pullingOut: straight forward pull off the dock, accelerating from rest.
func (c *Controller) pullingOut(local, duration, cyclePos, wallClock float64) Pose {
	l := c.cfg.Layout
	t := local / duration
	p := Pose{
		Phase:    PhasePullingOut,
		X:        c.dockX,
		Z:        lerp(l.DockZ, l.PullOutZ, fraction(ease.InQuad, t)),
		Rotation: math.Pi,
		Speed:    (l.DockZ - l.PullOutZ) / duration * easedRate(ease.InQuad, t),
		Throttle: lerp(0.3, 0.6, t),
	}
	p.LeftSignal = blinkOn(wallClock)
	bodyCues(&p)
	return p
}

// turningOut: 90° left onto the exit road. Position angle sweeps π → 3π/2;
// the tangent branch 2π − a keeps the heading numerically continuous with
// the π the pull-out ends on.
func (c *Controller) turningOut(local, duration, cyclePos, wallClock float64) Pose {
	l := c.cfg.Layout
	t := local / duration
	f := fraction(ease.InOutQuad, t)
	a := math.Pi + math.Pi/2*f
	x, z := arcPoint(c.exitC, l.PullOutZ, l.ExitRadius, a)

	arcLen := math.Pi / 2 * l.ExitRadius
	speed := arcLen / duration * easedRate(ease.InOutQuad, t)
	curvature := -1 / l.ExitRadius // heading decreases along the path

	p := Pose{
		Phase:         PhaseTurningOut,
		X:             x,
		Z:             z,
		Rotation:      arcHeading(a, 1) + 2*math.Pi,
		Speed:         speed,
		SteeringAngle: -math.Atan(l.Wheelbase/l.ExitRadius) * steerEnvelope(t),
		TrailerAngle:  trailerLag(curvature, speed, t),
	}
	p.LeftSignal = blinkOn(wallClock)
	p.Throttle = 0.45
	bodyCues(&p)
	return p
}

// accelerating: eastbound on the exit road, up to road speed.
func (c *Controller) accelerating(local, duration, cyclePos, wallClock float64) Pose {
	l := c.cfg.Layout
	t := local / duration
	p := Pose{
		Phase:    PhaseAccelerating,
		X:        lerp(c.exitC, l.ExitEndX, fraction(ease.InQuad, t)),
		Z:        c.exitZ,
		Rotation: math.Pi / 2,
		Speed:    (l.ExitEndX - c.exitC) / duration * easedRate(ease.InQuad, t),
		Throttle: lerp(0.6, 0.9, t),
	}
	bodyCues(&p)
	return p
}

// leavingHold is the terminal pose: the truck held at the far end of the
// exit road with every lamp dark. It covers the tail of the cycle after the
// listed phases and doubles as the graceful fallback for out-of-range input.
func (c *Controller) leavingHold() Pose {
	l := c.cfg.Layout
	accelDur := c.phases[len(c.phases)-1].duration
	p := Pose{
		Phase:    PhaseLeaving,
		X:        l.ExitEndX,
		Z:        c.exitZ,
		Rotation: math.Pi / 2,
		Speed:    (l.ExitEndX - c.exitC) / accelDur * easedRate(ease.InQuad, 1),
		Throttle: 0.7,
	}
	return p
}
