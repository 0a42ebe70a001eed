package plan_test

import (
	"testing"

	"github.com/agegold/openpilot-085/plan"
	"github.com/agegold/openpilot-085/vehicle"
	"github.com/stretchr/testify/assert"
)

// fakeLead mirrors the real solver's tracking contract: HadLead reflects
// the status seen by the last Update, NewLead a false to true transition.
type fakeLead struct {
	sol     plan.Solution
	trace   []plan.TracePoint
	hadLead bool
	newLead bool
}

func (f *fakeLead) SetStart(v float64, a float64) {}

func (f *fakeLead) Update(vEgo float64, aEgo float64, lead plan.Lead) {
	f.newLead = !f.hadLead && lead.Status
	f.hadLead = lead.Status
}

func (f *fakeLead) Solution() plan.Solution  { return f.sol }
func (f *fakeLead) Trace() []plan.TracePoint { return f.trace }
func (f *fakeLead) HadLead() bool            { return f.hadLead }
func (f *fakeLead) NewLead() bool            { return f.newLead }

type fakeModel struct {
	sol     plan.Solution
	valid   bool
	gotTraj plan.Trajectory
}

func (f *fakeModel) SetStart(v float64, a float64) {}

func (f *fakeModel) Update(vEgo float64, aEgo float64, traj plan.Trajectory) {
	f.gotTraj = traj
}

func (f *fakeModel) Solution() plan.Solution { return f.sol }
func (f *fakeModel) Valid() bool             { return f.valid }

type fakeChecker struct {
	warn     bool
	resets   []float64
	active   bool
	blinkers bool
}

func (f *fakeChecker) ResetLead(t float64) { f.resets = append(f.resets, t) }

func (f *fakeChecker) Update(trace []plan.TracePoint, t float64, active bool, vEgo float64, aEgo float64, lead plan.Lead, blinkers bool) bool {
	f.active = active
	f.blinkers = blinkers
	return f.warn
}

type testRig struct {
	planner *plan.Planner
	lead1   *fakeLead
	lead2   *fakeLead
	model   *fakeModel
	checker *fakeChecker
}

func newRig() *testRig {
	r := &testRig{
		lead1:   &fakeLead{},
		lead2:   &fakeLead{},
		model:   &fakeModel{},
		checker: &fakeChecker{},
	}
	r.planner = plan.New(vehicle.Default(), r.lead1, r.lead2, r.model, r.checker)
	return r
}

func engagedInput() plan.Input {
	return plan.Input{
		VEgo:       12,
		AEgo:       0.1,
		VCruiseKph: 72,
		CtrlState:  plan.ControlPID,
		Active:     true,
	}
}

func TestFirstCycleSnapsToCar(t *testing.T) {
	r := newRig()
	in := engagedInput()
	in.AEgo = -0.4

	out := r.planner.Update(in)
	assert.Equal(t, 12.0, out.VTarget)
	assert.Equal(t, -0.4, out.ATarget)
	assert.Equal(t, 12.0, out.VStart)
	assert.Equal(t, 12.0, out.VCruise)
	assert.Equal(t, plan.SourceCruise, out.Source)
}

func TestFirstCycleClampsPositiveAccel(t *testing.T) {
	r := newRig()
	out := r.planner.Update(engagedInput())
	assert.Equal(t, 0.0, out.ATarget)
}

func TestBrakeOverrideSnapsToCar(t *testing.T) {
	r := newRig()
	r.lead1.sol = plan.Solution{V: 7, A: -0.5, VFuture: 7}
	in := engagedInput()
	in.Lead1 = plan.Lead{Status: true, DRel: 20}
	r.planner.Update(in)
	r.planner.Update(in)

	in.BrakePressed = true
	in.VEgo = 11.5
	in.AEgo = -0.8
	out := r.planner.Update(in)
	assert.Equal(t, 11.5, out.VTarget)
	assert.Equal(t, -0.8, out.ATarget)
	assert.Equal(t, 11.5, out.VStart)
}

func TestGasOverrideSnapsToCar(t *testing.T) {
	r := newRig()
	in := engagedInput()
	r.planner.Update(in)

	in.GasPressed = true
	in.VEgo = 13.2
	in.AEgo = 0.6
	out := r.planner.Update(in)
	assert.Equal(t, 13.2, out.VTarget)
	assert.Equal(t, 0.0, out.ATarget)
}

func TestStartingUsesLaunchConstants(t *testing.T) {
	r := newRig()
	veh := vehicle.Default()
	in := engagedInput()
	in.CtrlState = plan.ControlStarting
	in.VEgo = 0

	out := r.planner.Update(in)
	assert.Equal(t, veh.MinSpeedCan, out.VTarget)
	assert.Equal(t, veh.StartAccel, out.ATarget)
}

func TestArbitrationPicksSlowestEligible(t *testing.T) {
	r := newRig()
	r.lead1.sol = plan.Solution{V: 7, A: -0.5, VFuture: 7}
	r.model.sol = plan.Solution{V: 3, A: -1, VFuture: 3}
	r.model.valid = false

	in := engagedInput()
	in.Lead1 = plan.Lead{Status: true, DRel: 20}
	r.planner.Update(in)

	out := r.planner.Update(in)
	assert.Equal(t, plan.SourceLead1, out.Source)
	assert.Equal(t, 7.0, out.VTarget)
	assert.Equal(t, -0.5, out.ATarget)
}

func TestArbitrationTieBreaksInPriorityOrder(t *testing.T) {
	r := newRig()
	r.lead1.sol = plan.Solution{V: 5, A: -0.3, VFuture: 5}
	r.lead2.sol = plan.Solution{V: 5, A: -0.9, VFuture: 5}
	r.model.sol = plan.Solution{V: 5, A: -0.1, VFuture: 5}
	r.model.valid = true

	in := engagedInput()
	in.ModelEnabled = true
	in.Lead1 = plan.Lead{Status: true, DRel: 20}
	in.Lead2 = plan.Lead{Status: true, DRel: 40}
	r.planner.Update(in)

	out := r.planner.Update(in)
	assert.Equal(t, plan.SourceLead1, out.Source)
	assert.Equal(t, -0.3, out.ATarget)
}

func TestLeadEligibilityLagsOneCycle(t *testing.T) {
	r := newRig()
	r.lead1.sol = plan.Solution{V: 3, A: -1, VFuture: 3}

	in := engagedInput()
	r.planner.Update(in)
	r.planner.Update(in)

	// the lead appears now: this cycle still cruises, the next follows
	in.Lead1 = plan.Lead{Status: true, DRel: 15}
	out := r.planner.Update(in)
	assert.Equal(t, plan.SourceCruise, out.Source)
	assert.True(t, out.HasLead)

	out = r.planner.Update(in)
	assert.Equal(t, plan.SourceLead1, out.Source)
	assert.Equal(t, 3.0, out.VTarget)
}

func TestModelCandidateNeedsEnableFlag(t *testing.T) {
	r := newRig()
	r.model.sol = plan.Solution{V: 1, A: -1.2, VFuture: 1}
	r.model.valid = true

	in := engagedInput()
	r.planner.Update(in)

	out := r.planner.Update(in)
	assert.Equal(t, plan.SourceCruise, out.Source)

	in.ModelEnabled = true
	out = r.planner.Update(in)
	assert.Equal(t, plan.SourceModel, out.Source)
	assert.Equal(t, 1.0, out.VTarget)
}

func TestFutureSpeedIsMinAcrossSources(t *testing.T) {
	r := newRig()
	r.lead1.sol = plan.Solution{V: 18, A: 0, VFuture: 9}
	r.lead2.sol = plan.Solution{V: 18, A: 0, VFuture: 14}

	// lead futures count even though neither slot is eligible yet
	out := r.planner.Update(engagedInput())
	assert.Equal(t, 9.0, out.VTargetFuture)
}

func TestFutureSpeedIncludesModelOnlyWhenEligible(t *testing.T) {
	r := newRig()
	r.lead1.sol = plan.Solution{V: 18, A: 0, VFuture: 9}
	r.lead2.sol = plan.Solution{V: 18, A: 0, VFuture: 14}
	r.model.sol = plan.Solution{V: 8, A: 0, VFuture: 2}
	r.model.valid = true

	in := engagedInput()
	r.planner.Update(in)

	out := r.planner.Update(in)
	assert.Equal(t, 9.0, out.VTargetFuture)

	in.ModelEnabled = true
	out = r.planner.Update(in)
	assert.Equal(t, 2.0, out.VTargetFuture)
}

func TestFutureSpeedCapsAtCruiseSetpoint(t *testing.T) {
	r := newRig()
	r.lead1.sol = plan.Solution{V: 50, A: 0, VFuture: 100}
	r.lead2.sol = plan.Solution{V: 50, A: 0, VFuture: 100}

	in := engagedInput()
	in.VCruiseKph = 200 // capped to 144 kph before conversion
	out := r.planner.Update(in)
	assert.InDelta(t, 40.0, out.VTargetFuture, 1e-9)
}

func TestFutureSpeedRefreshedWhileDisabled(t *testing.T) {
	r := newRig()
	r.lead1.sol = plan.Solution{V: 18, A: 0, VFuture: 6}
	r.lead2.sol = plan.Solution{V: 18, A: 0, VFuture: 14}

	in := engagedInput()
	in.CtrlState = plan.ControlOff
	out := r.planner.Update(in)
	assert.Equal(t, 12.0, out.VTarget)
	assert.Equal(t, 6.0, out.VTargetFuture)
}

func TestDisabledCycleKeepsLastSource(t *testing.T) {
	r := newRig()
	r.lead1.sol = plan.Solution{V: 7, A: -0.5, VFuture: 7}

	in := engagedInput()
	in.Lead1 = plan.Lead{Status: true, DRel: 20}
	r.planner.Update(in)
	out := r.planner.Update(in)
	assert.Equal(t, plan.SourceLead1, out.Source)

	in.CtrlState = plan.ControlOff
	out = r.planner.Update(in)
	assert.Equal(t, plan.SourceLead1, out.Source)
	assert.Equal(t, 12.0, out.VTarget)
}

func TestWarmStartContinuity(t *testing.T) {
	r := newRig()
	r.lead1.sol = plan.Solution{V: 7, A: -0.5, VFuture: 7}
	veh := vehicle.Default()

	in := engagedInput()
	in.Lead1 = plan.Lead{Status: true, DRel: 20}
	r.planner.Update(in)

	prev := r.planner.Update(in)
	for range 5 {
		next := r.planner.Update(in)

		aSol := prev.AStart + (veh.RadarTimeStep/plan.LON_MPC_STEP)*(prev.ATarget-prev.AStart)
		vSol := prev.VStart + veh.RadarTimeStep*(aSol+prev.AStart)/2
		assert.Equal(t, vSol, next.VStart)
		assert.Equal(t, aSol, next.AStart)
		prev = next
	}
}

func TestFcwSuppressedByBrake(t *testing.T) {
	r := newRig()
	r.checker.warn = true

	in := engagedInput()
	in.Lead1 = plan.Lead{Status: true, DRel: 8}
	out := r.planner.Update(in)
	assert.True(t, out.Fcw)

	in.BrakePressed = true
	out = r.planner.Update(in)
	assert.False(t, out.Fcw)
}

func TestNewLeadResetsChecker(t *testing.T) {
	r := newRig()
	in := engagedInput()
	in.CurTime = 42.5
	r.planner.Update(in)
	assert.Empty(t, r.checker.resets)

	in.Lead1 = plan.Lead{Status: true, DRel: 30}
	r.planner.Update(in)
	assert.Equal(t, []float64{42.5}, r.checker.resets)
}

func TestCheckerSeesActiveAndBlinkers(t *testing.T) {
	r := newRig()
	in := engagedInput()
	in.RightBlinker = true
	r.planner.Update(in)
	assert.True(t, r.checker.active)
	assert.True(t, r.checker.blinkers)
}

func TestModelSolverSeesResampledTrajectory(t *testing.T) {
	r := newRig()
	in := engagedInput()
	in.ModelPositions = make([]float32, plan.TRAJECTORY_SIZE)
	in.ModelVelocities = make([]float32, plan.TRAJECTORY_SIZE)
	r.planner.Update(in)
	assert.False(t, r.model.gotTraj.Empty())

	in.ModelPositions = nil
	in.ModelVelocities = nil
	r.planner.Update(in)
	assert.True(t, r.model.gotTraj.Empty())
}
