package plan

import (
	"github.com/samber/lo"
)

var (
	SPEED_SMOOTH_TAU = 1.0 // seconds to close the remaining speed gap
)

// SmoothSpeed advances (v, a) one step of ts seconds toward vTarget under
// the accel and jerk bounds. The returned speed never steps past the
// target; once there the acceleration ramps back to zero inside the jerk
// window.
func SmoothSpeed(vStart float64, aStart float64, vTarget float64, accel Limits, jerk Limits, ts float64) (float64, float64) {
	dv := vTarget - vStart

	aDesired := lo.Clamp(dv/SPEED_SMOOTH_TAU, accel.Min, accel.Max)
	a := aStart + lo.Clamp(aDesired-aStart, jerk.Min*ts, jerk.Max*ts)
	a = lo.Clamp(a, accel.Min, accel.Max)

	v := vStart + ts*(a+aStart)/2

	if (dv > 0 && v > vTarget) || (dv < 0 && v < vTarget) {
		v = vTarget
		a = aStart + lo.Clamp(-aStart, jerk.Min*ts, jerk.Max*ts)
	}
	return v, a
}
