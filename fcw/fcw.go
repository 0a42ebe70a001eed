// Package fcw raises a forward collision warning when the lead solver's own
// plan and the closing kinematics both point at an imminent hard stop.
package fcw

import (
	"math"

	"github.com/agegold/openpilot-085/plan"
)

var (
	MIN_SPEED    = 3.0 // m/s, no warnings at crawling speed
	SETTLE_TIME  = 1.0 // s after a lead swap before warnings rearm
	LATERAL_GATE = 1.2 // m, ignore cars mostly out of lane

	MAX_TTC           = 5.0 // s
	WARN_TTC          = 2.5 // s
	WARN_TTC_BLINKERS = 1.5 // s, a signalling driver gets less slack

	HARD_BRAKE        = -2.0 // m/s^2 planned decel that corroborates risk
	HARD_BRAKE_WINDOW = 2.0  // s of the profile considered

	PERSIST = 5 // consecutive risky cycles before warning
)

// Checker accumulates collision risk against lead one across cycles.
type Checker struct {
	counter    int
	leadResetT float64
}

func New() *Checker {
	return &Checker{}
}

// ResetLead rearms the checker after the tracked lead changes, so a track
// swap cannot fire a warning off stale state.
func (c *Checker) ResetLead(t float64) {
	c.counter = 0
	c.leadResetT = t
}

// Update ingests one cycle and reports whether a warning should fire.
func (c *Checker) Update(trace []plan.TracePoint, t float64, active bool, vEgo float64, aEgo float64, lead plan.Lead, blinkers bool) bool {
	if !lead.Status || !active || vEgo < MIN_SPEED || t-c.leadResetT < SETTLE_TIME || math.Abs(lead.YRel) > LATERAL_GATE {
		c.counter = 0
		return false
	}

	threshold := WARN_TTC
	if blinkers {
		threshold = WARN_TTC_BLINKERS
	}

	dangerous := lead.Fcw || TimeToCollision(vEgo, aEgo, lead) < threshold
	if !dangerous || !plannedHardBrake(trace) {
		c.counter = 0
		return false
	}

	c.counter++
	return c.counter >= PERSIST
}

// TimeToCollision solves the closing distance quadratic for the time until
// the gap reaches zero, capped at MAX_TTC. The closing acceleration is
// limited so a braking lead is not extrapolated past standstill.
func TimeToCollision(vEgo float64, aEgo float64, lead plan.Lead) float64 {
	vRel := vEgo - lead.VLead
	aRel := math.Min(aEgo-lead.ALeadK, lead.VLead/2)

	delta := vRel*vRel + 2*lead.DRel*aRel
	if delta < 0.1 || math.Sqrt(delta)+vRel < 0.1 {
		return MAX_TTC
	}
	return math.Min(2*lead.DRel/(math.Sqrt(delta)+vRel), MAX_TTC)
}

// plannedHardBrake reports whether the following solver already plans a
// hard deceleration in the near part of its profile.
func plannedHardBrake(trace []plan.TracePoint) bool {
	for _, pt := range trace {
		if pt.T > HARD_BRAKE_WINDOW {
			break
		}
		if pt.A < HARD_BRAKE {
			return true
		}
	}
	return false
}
