package mpc_test

import (
	"testing"

	"github.com/agegold/openpilot-085/mpc"
	"github.com/agegold/openpilot-085/plan"
	"github.com/stretchr/testify/assert"
)

func profile(v0 float64, slope float64, accel float64) plan.Trajectory {
	traj := plan.Trajectory{
		Distances: make([]float64, plan.PLAN_STEPS),
		Speeds:    make([]float64, plan.PLAN_STEPS),
		Accels:    make([]float64, plan.PLAN_STEPS),
	}
	for i := range traj.Speeds {
		traj.Speeds[i] = v0 + slope*float64(i)
		traj.Accels[i] = accel
	}
	return traj
}

func TestModelSolverInvalidOnEmptyPath(t *testing.T) {
	m := mpc.NewModel()
	m.SetStart(10, 0)

	m.Update(10, 0, plan.Trajectory{})
	assert.False(t, m.Valid())

	m.Update(10, 0, profile(10, 0, 0))
	assert.True(t, m.Valid())

	m.Update(10, 0, plan.Trajectory{})
	assert.False(t, m.Valid())
}

func TestModelSolverTracksProfile(t *testing.T) {
	m := mpc.NewModel()
	m.SetStart(12, 0)
	m.Update(12, 0, profile(12, 0.1, 0.5))

	sol := m.Solution()
	assert.Equal(t, 0.5, sol.A)
	assert.InDelta(t, 12.1, sol.V, 1e-9)
	assert.InDelta(t, 12.9, sol.VFuture, 1e-9)
}

func TestModelSolverPullsTowardFasterProfile(t *testing.T) {
	m := mpc.NewModel()
	m.SetStart(10, 0)
	m.Update(10, 0, profile(12, 0, 0.5))

	// head is 2 m/s faster, correction saturates the accel bound
	assert.Equal(t, mpc.MAX_ACCEL, m.Solution().A)
}

func TestModelSolverBrakeClampAndSpeedFloor(t *testing.T) {
	m := mpc.NewModel()
	m.SetStart(0.4, 0)

	traj := profile(0.4, 0, -4.0)
	traj.Speeds[0] = 0
	m.Update(0.4, 0, traj)

	sol := m.Solution()
	assert.Equal(t, -mpc.MAX_BRAKE, sol.A)
	assert.Equal(t, 0.0, sol.V)
}
