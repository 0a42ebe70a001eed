package plan

// Source identifies which candidate won the cycle's arbitration.
type Source int

// Values of Source, in tie break priority order.
const (
	SourceCruise Source = iota
	SourceLead1
	SourceLead2
	SourceModel
)

func (s Source) String() string {
	switch s {
	case SourceCruise:
		return "cruise"
	case SourceLead1:
		return "lead1"
	case SourceLead2:
		return "lead2"
	case SourceModel:
		return "model"
	default:
		return ""
	}
}

// ControlState mirrors the longitudinal control loop's reported mode.
type ControlState int

const (
	ControlOff ControlState = iota
	ControlPID
	ControlStopping
	ControlStarting
)

// Lead is one radar tracked vehicle slot.
type Lead struct {
	DRel   float64 // m
	YRel   float64 // m, lateral
	VRel   float64 // m/s
	VLead  float64 // m/s, absolute
	VLeadK float64 // m/s, filtered
	ALeadK float64 // m/s^2, filtered
	VLat   float64 // m/s, lateral
	Status bool
	Fcw    bool
}

// Solution is one candidate's proposal for the next cycle.
type Solution struct {
	V       float64
	A       float64
	VFuture float64
}

// TracePoint is one step of a solver's projected profile.
type TracePoint struct {
	T float64
	V float64
	A float64
}

// LeadSolver produces following plans for one tracked lead slot. HadLead
// reports the slot's tracking status as of the last Update; NewLead reports
// a not-tracked to tracked transition during the last Update.
type LeadSolver interface {
	SetStart(v float64, a float64)
	Update(vEgo float64, aEgo float64, lead Lead)
	Solution() Solution
	Trace() []TracePoint
	HadLead() bool
	NewLead() bool
}

// ModelSolver produces plans from the perception model's own path.
type ModelSolver interface {
	SetStart(v float64, a float64)
	Update(vEgo float64, aEgo float64, traj Trajectory)
	Solution() Solution
	Valid() bool
}

// CollisionChecker flags imminent collision risk against lead one.
type CollisionChecker interface {
	ResetLead(t float64)
	Update(trace []TracePoint, t float64, active bool, vEgo float64, aEgo float64, lead Lead, blinkers bool) bool
}
