package mpc

import (
	"math"

	"github.com/agegold/openpilot-085/plan"
	"github.com/samber/lo"
)

var (
	HORIZON_STEPS = 50 // of LON_MPC_STEP seconds each, ten second horizon

	MIN_GAP       = 4.0  // m, standstill distance
	HEADWAY       = 1.8  // s, desired time gap
	MAX_ACCEL     = 1.5  // m/s^2
	MAX_BRAKE     = 3.5  // m/s^2
	COMFORT_BRAKE = 2.0  // m/s^2, braking assumed inside the desired gap term
	FREE_SPEED    = 40.0 // m/s, open road ceiling when following nothing

	LEAD_ACCEL_DECAY = 0.9 // per step fade of the lead accel estimate
	NEW_LEAD_JUMP    = 2.5 // m, track jump treated as a different car
)

// Lead is a following solver for one radar lead slot. Each update rolls the
// ego and lead states forward over the horizon under an intelligent driver
// model and keeps the projected profile for the collision checker. With no
// tracked lead it follows a fake fast car far ahead so the plan stays
// unconstrained instead of collapsing.
type Lead struct {
	vStart float64
	aStart float64

	sol   plan.Solution
	trace []plan.TracePoint

	hadLead  bool
	newLead  bool
	prevDRel float64
}

func NewLead() *Lead {
	return &Lead{}
}

func (m *Lead) SetStart(v float64, a float64) {
	m.vStart = v
	m.aStart = a
}

func (m *Lead) Update(vEgo float64, aEgo float64, lead plan.Lead) {
	m.newLead = false
	if lead.Status {
		if !m.hadLead || math.Abs(lead.DRel-m.prevDRel) > NEW_LEAD_JUMP {
			m.newLead = true
		}
		m.hadLead = true
		m.prevDRel = lead.DRel
	} else {
		m.hadLead = false
		// fake a fast lead car so the solver keeps running
		lead = plan.Lead{DRel: 50.0, VLeadK: vEgo + 10.0}
	}

	m.simulate(lead)
}

func (m *Lead) simulate(lead plan.Lead) {
	dt := plan.LON_MPC_STEP

	v := m.vStart
	gap := lead.DRel
	vLead := lead.VLeadK
	aLead := lead.ALeadK

	m.trace = m.trace[:0]
	m.trace = append(m.trace, plan.TracePoint{T: 0, V: v, A: m.aStart})

	for i := 1; i <= HORIZON_STEPS; i++ {
		a := idmAccel(v, vLead, gap)
		vNext := math.Max(v+a*dt, 0)

		gap += vLead*dt - (v+vNext)/2*dt
		vLead = math.Max(vLead+aLead*dt, 0)
		aLead *= LEAD_ACCEL_DECAY

		v = vNext
		m.trace = append(m.trace, plan.TracePoint{T: float64(i) * dt, V: v, A: a})
	}

	m.sol = plan.Solution{
		V:       m.trace[1].V,
		A:       m.trace[1].A,
		VFuture: m.trace[len(m.trace)-1].V,
	}
}

// idmAccel is the intelligent driver model acceleration for the given gap.
// https://en.wikipedia.org/wiki/Intelligent_driver_model
func idmAccel(v float64, vLead float64, gap float64) float64 {
	if gap <= 0 {
		return -MAX_BRAKE
	}
	sStar := MIN_GAP + math.Max(0, v*HEADWAY+v*(v-vLead)/(2*math.Sqrt(MAX_ACCEL*COMFORT_BRAKE)))
	accel := MAX_ACCEL * (1 - math.Pow(v/FREE_SPEED, 4) - math.Pow(sStar/gap, 2))
	return lo.Clamp(accel, -MAX_BRAKE, MAX_ACCEL)
}

func (m *Lead) Solution() plan.Solution {
	return m.sol
}

func (m *Lead) Trace() []plan.TracePoint {
	return m.trace
}

func (m *Lead) HadLead() bool {
	return m.hadLead
}

func (m *Lead) NewLead() bool {
	return m.newLead
}
