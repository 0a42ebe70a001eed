package plan_test

import (
	"testing"

	"github.com/agegold/openpilot-085/plan"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestResampleIndices(t *testing.T) {
	// nearest dense sample to each whole second, earliest index on ties
	expected := []int{0, 10, 14, 18, 20, 23, 25, 27, 29, 30}
	if diff := cmp.Diff(expected, plan.RESAMPLE_IDX); diff != "" {
		t.Errorf("resample indices mismatch (-want +got):\n%s", diff)
	}
}

func TestResampleTrajectoryConstantSpeed(t *testing.T) {
	positions := make([]float32, plan.TRAJECTORY_SIZE)
	velocities := make([]float32, plan.TRAJECTORY_SIZE)
	for i := range velocities {
		velocities[i] = 12.5
		positions[i] = float32(plan.MODEL_T[i]) * 12.5
	}

	traj := plan.ResampleTrajectory(positions, velocities)
	assert.False(t, traj.Empty())
	assert.Len(t, traj.Distances, plan.PLAN_STEPS)
	assert.Len(t, traj.Speeds, plan.PLAN_STEPS)
	assert.Len(t, traj.Accels, plan.PLAN_STEPS)
	for i := range traj.Accels {
		assert.InDelta(t, 12.5, traj.Speeds[i], 1e-6, "i=%d", i)
		assert.InDelta(t, 0, traj.Accels[i], 1e-9, "i=%d", i)
	}
}

func TestResampleTrajectoryRamp(t *testing.T) {
	positions := make([]float32, plan.TRAJECTORY_SIZE)
	velocities := make([]float32, plan.TRAJECTORY_SIZE)
	for i := range velocities {
		tm := plan.MODEL_T[i]
		velocities[i] = float32(5 + tm)
		positions[i] = float32(5*tm + tm*tm/2)
	}

	traj := plan.ResampleTrajectory(positions, velocities)
	for i := 1; i < plan.PLAN_STEPS-1; i++ {
		// nearest-sample jitter keeps these near one, not exactly one
		assert.InDelta(t, 1.0, traj.Accels[i], 0.25, "i=%d", i)
	}
	// endpoints follow the linear extension of their neighbours
	assert.InDelta(t, 2*traj.Accels[1]-traj.Accels[2], traj.Accels[0], 1e-9)
	assert.InDelta(t, 2*traj.Accels[8]-traj.Accels[7], traj.Accels[9], 1e-9)
}

func TestResampleTrajectoryIncomplete(t *testing.T) {
	assert.True(t, plan.ResampleTrajectory(nil, nil).Empty())

	short := make([]float32, 10)
	assert.True(t, plan.ResampleTrajectory(short, short).Empty())

	full := make([]float32, plan.TRAJECTORY_SIZE)
	assert.True(t, plan.ResampleTrajectory(full, short).Empty())
}
