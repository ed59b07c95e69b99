package dockmotion

// CycleLength is the duration of one full docking cycle in simulation time
// units. Callers reduce their monotonic clock modulo CycleLength before
// querying a Controller (Yard does this for you).
const CycleLength = 60.0

// HalfCycle is the recommended stagger between the shipping and receiving
// sites so their maneuvers interleave instead of running in lockstep.
const HalfCycle = CycleLength / 2

// Phase identifies a named segment of the docking cycle. The set is a
// superset across both maneuver styles the controller family has shipped;
// the circular-arc buttonhook implemented here emits a subset (PhaseSlowing,
// PhaseStraightening, and PhasePositioning are reserved for the
// straight-segment style).
type Phase uint8

const (
	PhaseEntering Phase = iota
	PhaseSlowing
	PhaseTurningIn
	PhaseStraightening
	PhasePositioning
	PhaseStoppingToBack
	PhaseBacking
	PhaseFinalAdjustment
	PhaseDocked
	PhasePreparingToLeave
	PhasePullingOut
	PhaseTurningOut
	PhaseAccelerating
	PhaseLeaving
)

var phaseNames = [...]string{
	"entering",
	"slowing",
	"turning_in",
	"straightening",
	"positioning",
	"stopping_to_back",
	"backing",
	"final_adjustment",
	"docked",
	"preparing_to_leave",
	"pulling_out",
	"turning_out",
	"accelerating",
	"leaving",
}

// String returns the phase's snake_case name.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Pose is the full truck state at one instant of the docking cycle. It is
// synthesized fresh on every query and carries no identity; consumers that
// need smoothing across frames layer it on top (see Damper).
//
// Coordinates are planar world units: X lateral, Z depth, ground level
// implied. Rotation is the tractor heading in radians with 0 facing +Z and
// the forward vector (sin Rotation, cos Rotation). All other angles are
// radians.
type Pose struct {
	Phase Phase

	X, Z     float64
	Rotation float64

	// Speed is advisory (negative while reversing). Position is always
	// computed directly from elapsed time, never integrated from Speed,
	// so there is no drift to accumulate.
	Speed float64

	// SteeringAngle is advisory, for rotating front wheels in a consumer.
	SteeringAngle float64

	// TrailerAngle is the articulation offset between tractor heading and
	// trailer heading; the trailer lags the cab through turns.
	TrailerAngle float64

	BrakeLights   bool
	ReverseLights bool
	LeftSignal    bool
	RightSignal   bool
	DoorsOpen     bool

	// CabRoll and CabPitch are small cosmetic body cues correlated with
	// steering and braking/throttle.
	CabRoll  float64
	CabPitch float64

	// Throttle in [0,1] drives exhaust and engine-sound cues.
	Throttle float64
}
