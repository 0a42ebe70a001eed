package plan

import (
	"math"
)

var (
	TRAJECTORY_SIZE = 33 // samples per model path
	PLAN_STEPS      = 10 // resampled grid, one sample per second

	MODEL_T      = modelTimes()
	RESAMPLE_IDX = resampleIndices(MODEL_T)
)

// modelTimes returns the fixed timestamps the model reports against,
// t = i*i/102.4 seconds, front loaded over a 10 second horizon.
func modelTimes() []float64 {
	times := make([]float64, TRAJECTORY_SIZE)
	for i := range times {
		times[i] = float64(i*i) / 102.4
	}
	return times
}

// resampleIndices maps each whole second of the plan grid to the dense
// sample with the nearest timestamp. The earliest index wins a tie.
func resampleIndices(times []float64) []int {
	indices := make([]int, PLAN_STEPS)
	for k := range indices {
		best := 0
		for i, t := range times {
			if math.Abs(t-float64(k)) < math.Abs(times[best]-float64(k)) {
				best = i
			}
		}
		indices[k] = best
	}
	return indices
}

// Trajectory is a model path resampled onto the plan grid.
type Trajectory struct {
	Distances []float64
	Speeds    []float64
	Accels    []float64
}

// Empty reports whether there is no usable model path this cycle.
func (t Trajectory) Empty() bool {
	return len(t.Speeds) == 0
}

// ResampleTrajectory reduces a dense model path onto the plan grid.
// Accelerations come from central differences over the one second spacing,
// with both ends extended linearly. Anything but a complete input yields an
// empty trajectory.
func ResampleTrajectory(positions []float32, velocities []float32) Trajectory {
	if len(positions) != TRAJECTORY_SIZE || len(velocities) != TRAJECTORY_SIZE {
		return Trajectory{}
	}

	distances := make([]float64, PLAN_STEPS)
	speeds := make([]float64, PLAN_STEPS)
	for k, i := range RESAMPLE_IDX {
		distances[k] = float64(positions[i])
		speeds[k] = float64(velocities[i])
	}

	accels := make([]float64, PLAN_STEPS)
	for k := 1; k < PLAN_STEPS-1; k++ {
		accels[k] = (speeds[k+1] - speeds[k-1]) / 2
	}
	accels[0] = accels[1] - (accels[2] - accels[1])
	accels[PLAN_STEPS-1] = accels[PLAN_STEPS-2] - (accels[PLAN_STEPS-3] - accels[PLAN_STEPS-2])

	return Trajectory{Distances: distances, Speeds: speeds, Accels: accels}
}
