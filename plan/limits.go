package plan

import (
	"math"

	"github.com/agegold/openpilot-085/utils"
	"github.com/agegold/openpilot-085/vehicle"
	"gonum.org/v1/gonum/interp"
)

var (
	LON_MPC_STEP    = 0.2   // first step of the solver horizon, seconds
	V_CRUISE_MAX    = 144.0 // kph
	AWARENESS_DECEL = -0.2  // m/s^2, smooth decel when the driver is distracted

	// FORCE_DECEL_ENABLED arms the awareness decel clamp on the forceDecel
	// input. Awareness decel is disabled for now.
	FORCE_DECEL_ENABLED = false

	TO_RADIANS = math.Pi / 180
)

// Cruise accel envelopes by ego speed. The following pair allows harder
// braking and a looser ceiling at low speed so the car can keep pace with
// a faster lead. These must stay inside what the solvers tolerate.
var (
	A_CRUISE_MIN           = newTable([]float64{0, 5, 10, 20, 40}, []float64{-1.0, -0.8, -0.67, -0.5, -0.30})
	A_CRUISE_MIN_FOLLOWING = newTable([]float64{0, 5, 10, 20, 40}, []float64{-2.7, -2.4, -2.0, -1.4, -0.5})
	A_CRUISE_MAX           = newTable([]float64{0, 6.4, 22.5, 40}, []float64{1.2, 1.2, 0.65, 0.4})
	A_CRUISE_MAX_FOLLOWING = newTable([]float64{0, 6.4, 22.5, 40}, []float64{1.6, 1.6, 0.65, 0.4})

	// Total (lateral plus longitudinal) acceleration allowance by speed.
	A_TOTAL_MAX = newTable([]float64{20, 40}, []float64{1.7, 3.2})
)

// table is a piecewise-linear lookup. Queries outside the breakpoint range
// clamp to the end values.
type table struct {
	pl interp.PiecewiseLinear
}

func newTable(xs []float64, ys []float64) table {
	t := table{}
	utils.Check(t.pl.Fit(xs, ys))
	return t
}

func (t table) at(x float64) float64 {
	return t.pl.Predict(x)
}

// Limits is an inclusive lower/upper bound pair.
type Limits struct {
	Min float64
	Max float64
}

// AccelLimits returns the cruise acceleration envelope at the given speed.
func AccelLimits(vEgo float64, following bool) Limits {
	if following {
		return Limits{Min: A_CRUISE_MIN_FOLLOWING.at(vEgo), Max: A_CRUISE_MAX_FOLLOWING.at(vEgo)}
	}
	return Limits{Min: A_CRUISE_MIN.at(vEgo), Max: A_CRUISE_MAX.at(vEgo)}
}

// JerkLimits derives jerk bounds from the accel envelope.
// TODO: separate lookup for jerk tuning
func JerkLimits(accel Limits) Limits {
	return Limits{Min: math.Min(-0.1, accel.Min), Max: math.Max(0.1, accel.Max)}
}

// LimitAccelInTurns caps the upper acceleration bound so the combined
// lateral and longitudinal demand stays inside the total allowance. The
// lower bound passes through untouched.
func LimitAccelInTurns(vEgo float64, steeringAngleDeg float64, accel Limits, veh vehicle.Params) Limits {
	a_total_max := A_TOTAL_MAX.at(vEgo)
	a_y := vEgo * vEgo * steeringAngleDeg * TO_RADIANS / (veh.SteerRatio * veh.Wheelbase)
	a_x_allowed := math.Sqrt(math.Max(a_total_max*a_total_max-a_y*a_y, 0))

	return Limits{Min: accel.Min, Max: math.Min(accel.Max, a_x_allowed)}
}
