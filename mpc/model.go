package mpc

import (
	"math"

	"github.com/agegold/openpilot-085/plan"
	"github.com/samber/lo"
)

var (
	SPEED_GAIN = 1.0 // 1/s, pull toward the profile's current speed
)

// Model plans along the perception model's own predicted path. It tracks
// the head of the resampled profile with a proportional speed correction
// and reports the tail as the future speed. An incomplete path marks the
// solver invalid until a full one arrives.
type Model struct {
	vStart float64
	aStart float64

	sol   plan.Solution
	valid bool
}

func NewModel() *Model {
	return &Model{}
}

func (m *Model) SetStart(v float64, a float64) {
	m.vStart = v
	m.aStart = a
}

func (m *Model) Update(vEgo float64, aEgo float64, traj plan.Trajectory) {
	if traj.Empty() {
		m.valid = false
		return
	}

	a := traj.Accels[0] + SPEED_GAIN*(traj.Speeds[0]-m.vStart)
	a = lo.Clamp(a, -MAX_BRAKE, MAX_ACCEL)

	m.sol = plan.Solution{
		V:       math.Max(m.vStart+a*plan.LON_MPC_STEP, 0),
		A:       a,
		VFuture: traj.Speeds[len(traj.Speeds)-1],
	}
	m.valid = true
}

func (m *Model) Solution() plan.Solution {
	return m.sol
}

func (m *Model) Valid() bool {
	return m.valid
}
