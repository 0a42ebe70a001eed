package plan

import (
	"log/slog"
	"math"

	"github.com/agegold/openpilot-085/settings"
	"github.com/agegold/openpilot-085/vehicle"
	"github.com/samber/lo"
)

// Planner fuses the cruise, lead and model candidates into one
// longitudinal plan per cycle. It owns the warm start state carried
// between cycles and must only ever be driven from a single goroutine.
type Planner struct {
	veh vehicle.Params

	lead1 LeadSolver
	lead2 LeadSolver
	model ModelSolver
	fcw   CollisionChecker

	// warm start handoff: next cycle begins where the interpolation at the
	// end of this cycle landed
	vAccStart float64
	aAccStart float64
	vAccNext  float64
	aAccNext  float64

	vAcc       float64
	aAcc       float64
	vAccFuture float64
	vCruise    float64
	aCruise    float64

	source    Source
	firstLoop bool
}

func New(veh vehicle.Params, lead1 LeadSolver, lead2 LeadSolver, model ModelSolver, fcw CollisionChecker) *Planner {
	return &Planner{
		veh:       veh,
		lead1:     lead1,
		lead2:     lead2,
		model:     model,
		fcw:       fcw,
		firstLoop: true,
	}
}

// Input is one cycle's collated snapshot.
type Input struct {
	VEgo             float64
	AEgo             float64
	SteeringAngleDeg float64
	GasPressed       bool
	BrakePressed     bool
	LeftBlinker      bool
	RightBlinker     bool

	VCruiseKph float64
	CtrlState  ControlState
	Active     bool
	ForceDecel bool

	Lead1 Lead
	Lead2 Lead

	ModelPositions  []float32
	ModelVelocities []float32
	ModelEnabled    bool

	CurTime float64 // seconds since daemon start
}

// Output is the cycle's plan, ready to publish.
type Output struct {
	VCruise       float64
	ACruise       float64
	VStart        float64
	AStart        float64
	VTarget       float64
	ATarget       float64
	VTargetFuture float64
	Source        Source
	HasLead       bool
	Fcw           bool
}

// Update runs one planning cycle. Call it once per fresh radar state.
func (p *Planner) Update(in Input) Output {
	vCruiseKph := math.Min(in.VCruiseKph, V_CRUISE_MAX)
	vCruiseSetpoint := vCruiseKph * settings.KPH_TO_MS

	enabled := in.CtrlState == ControlPID || in.CtrlState == ControlStopping
	engaged := enabled && !p.firstLoop && !in.BrakePressed && !in.GasPressed
	following := in.Lead1.Status && in.Lead1.DRel < 45.0 && in.Lead1.VLeadK > in.VEgo && in.Lead1.ALeadK > 0.0

	p.vAccStart = p.vAccNext
	p.aAccStart = p.aAccNext

	if engaged {
		accel := AccelLimits(in.VEgo, following)
		jerk := JerkLimits(accel)
		accelTurns := LimitAccelInTurns(in.VEgo, in.SteeringAngleDeg, accel, p.veh)

		if in.ForceDecel && FORCE_DECEL_ENABLED {
			// awareness decel is disabled for now
			accelTurns.Max = math.Min(accelTurns.Max, AWARENESS_DECEL)
			accelTurns.Min = math.Min(accelTurns.Min, accelTurns.Max)
		}

		p.vCruise, p.aCruise = SmoothSpeed(p.vAccStart, p.aAccStart, vCruiseSetpoint, accelTurns, jerk, LON_MPC_STEP)

		// cruise speed can't go negative even when the driver is distracted
		p.vCruise = math.Max(p.vCruise, 0)
	} else {
		// overridden, off, or first cycle: snap the whole state to the car
		starting := in.CtrlState == ControlStarting
		resetSpeed := in.VEgo
		resetAccel := math.Min(in.AEgo, 0)
		if starting {
			resetSpeed = p.veh.MinSpeedCan
			resetAccel = p.veh.StartAccel
		}
		p.vAcc = resetSpeed
		p.aAcc = resetAccel
		p.vAccStart = resetSpeed
		p.aAccStart = resetAccel
		p.vCruise = resetSpeed
		p.aCruise = resetAccel
	}

	p.lead1.SetStart(p.vAccStart, p.aAccStart)
	p.lead2.SetStart(p.vAccStart, p.aAccStart)
	p.model.SetStart(p.vAccStart, p.aAccStart)

	// lead candidates qualify on the previous cycle's tracking status
	eligible1 := p.lead1.HadLead()
	eligible2 := p.lead2.HadLead()

	p.lead1.Update(in.VEgo, in.AEgo, in.Lead1)
	p.lead2.Update(in.VEgo, in.AEgo, in.Lead2)
	p.model.Update(in.VEgo, in.AEgo, ResampleTrajectory(in.ModelPositions, in.ModelVelocities))

	p.chooseSolution(vCruiseSetpoint, engaged, eligible1, eligible2, in.ModelEnabled)

	if p.lead1.NewLead() {
		p.fcw.ResetLead(in.CurTime)
	}
	blinkers := in.LeftBlinker || in.RightBlinker
	fcw := p.fcw.Update(p.lead1.Trace(), in.CurTime, in.Active, in.VEgo, in.AEgo, in.Lead1, blinkers) && !in.BrakePressed
	if fcw {
		slog.Info("FCW triggered", "dRel", in.Lead1.DRel, "vRel", in.Lead1.VRel, "vEgo", in.VEgo)
	}

	// interpolate one radar tick ahead and save as next cycle's start
	aAccSol := p.aAccStart + (p.veh.RadarTimeStep/LON_MPC_STEP)*(p.aAcc-p.aAccStart)
	vAccSol := p.vAccStart + p.veh.RadarTimeStep*(aAccSol+p.aAccStart)/2
	p.vAccNext = vAccSol
	p.aAccNext = aAccSol

	p.firstLoop = false

	return Output{
		VCruise:       p.vCruise,
		ACruise:       p.aCruise,
		VStart:        p.vAccStart,
		AStart:        p.aAccStart,
		VTarget:       p.vAcc,
		ATarget:       p.aAcc,
		VTargetFuture: p.vAccFuture,
		Source:        p.source,
		HasLead:       p.lead1.HadLead(),
		Fcw:           fcw,
	}
}

type candidate struct {
	source Source
	sol    Solution
}

// chooseSolution picks the slowest eligible candidate as the plan and takes
// the lowest future speed across every source. Futures from both lead
// solvers and the setpoint always count; the model's only counts while the
// model candidate is in play. On override and transient cycles the previous
// source and target stand, only the future is refreshed.
func (p *Planner) chooseSolution(vCruiseSetpoint float64, engaged bool, lead1OK bool, lead2OK bool, modelEnabled bool) {
	sol1 := p.lead1.Solution()
	sol2 := p.lead2.Solution()

	possibleFutures := []float64{sol1.VFuture, sol2.VFuture, vCruiseSetpoint}

	if engaged {
		candidates := []candidate{{SourceCruise, Solution{V: p.vCruise, A: p.aCruise}}}
		if lead1OK {
			candidates = append(candidates, candidate{SourceLead1, sol1})
		}
		if lead2OK {
			candidates = append(candidates, candidate{SourceLead2, sol2})
		}
		if p.model.Valid() && modelEnabled {
			sol := p.model.Solution()
			candidates = append(candidates, candidate{SourceModel, sol})
			possibleFutures = append(possibleFutures, sol.VFuture)
		}

		slowest := lo.MinBy(candidates, func(a candidate, b candidate) bool {
			return a.sol.V < b.sol.V
		})
		p.source = slowest.source
		p.vAcc = slowest.sol.V
		p.aAcc = slowest.sol.A
	}

	p.vAccFuture = lo.Min(possibleFutures)
}
