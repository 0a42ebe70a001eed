package fcw_test

import (
	"testing"

	"github.com/agegold/openpilot-085/fcw"
	"github.com/agegold/openpilot-085/plan"
	"github.com/stretchr/testify/assert"
)

func braking(accel float64, from float64) []plan.TracePoint {
	trace := []plan.TracePoint{{T: 0, V: 20, A: 0}}
	for i := 1; i <= 13; i++ {
		pt := plan.TracePoint{T: float64(i) * 0.2, V: 20, A: 0}
		if pt.T >= from {
			pt.A = accel
		}
		trace = append(trace, pt)
	}
	return trace
}

func closingLead() plan.Lead {
	return plan.Lead{Status: true, DRel: 10, VLead: 5}
}

func TestTimeToCollisionClosingConstantSpeed(t *testing.T) {
	ttc := fcw.TimeToCollision(20, 0, plan.Lead{Status: true, DRel: 30, VLead: 10})
	assert.InDelta(t, 3.0, ttc, 1e-9)
}

func TestTimeToCollisionOpeningGap(t *testing.T) {
	ttc := fcw.TimeToCollision(10, 0, plan.Lead{Status: true, DRel: 30, VLead: 15})
	assert.Equal(t, fcw.MAX_TTC, ttc)
}

func TestTimeToCollisionAcceleratingEgo(t *testing.T) {
	ttc := fcw.TimeToCollision(20, 2, plan.Lead{Status: true, DRel: 30, VLead: 10})
	assert.InDelta(t, 2.4162, ttc, 1e-3)
}

func TestTimeToCollisionCapped(t *testing.T) {
	ttc := fcw.TimeToCollision(40, 0, plan.Lead{Status: true, DRel: 300, VLead: 0})
	assert.Equal(t, fcw.MAX_TTC, ttc)
}

func TestCheckerWarnsAfterPersistentRisk(t *testing.T) {
	c := fcw.New()
	trace := braking(-2.5, 0.2)

	for i := 0; i < fcw.PERSIST-1; i++ {
		assert.False(t, c.Update(trace, 2.0, true, 20, 0, closingLead(), false))
	}
	assert.True(t, c.Update(trace, 2.0, true, 20, 0, closingLead(), false))
	assert.True(t, c.Update(trace, 2.0, true, 20, 0, closingLead(), false))
}

func TestCheckerInactiveResetsCounter(t *testing.T) {
	c := fcw.New()
	trace := braking(-2.5, 0.2)

	for i := 0; i < fcw.PERSIST-1; i++ {
		c.Update(trace, 2.0, true, 20, 0, closingLead(), false)
	}
	assert.False(t, c.Update(trace, 2.0, false, 20, 0, closingLead(), false))

	// the near miss above must not carry over
	for i := 0; i < fcw.PERSIST-1; i++ {
		assert.False(t, c.Update(trace, 2.0, true, 20, 0, closingLead(), false))
	}
	assert.True(t, c.Update(trace, 2.0, true, 20, 0, closingLead(), false))
}

func TestCheckerIgnoresCrawlingSpeeds(t *testing.T) {
	c := fcw.New()
	trace := braking(-2.5, 0.2)

	lead := plan.Lead{Status: true, DRel: 2, VLead: 0}
	for i := 0; i < 2*fcw.PERSIST; i++ {
		assert.False(t, c.Update(trace, 2.0, true, 2.9, 0, lead, false))
	}
}

func TestCheckerIgnoresOffsetLead(t *testing.T) {
	c := fcw.New()
	trace := braking(-2.5, 0.2)

	lead := closingLead()
	lead.YRel = 1.5
	for i := 0; i < 2*fcw.PERSIST; i++ {
		assert.False(t, c.Update(trace, 2.0, true, 20, 0, lead, false))
	}
}

func TestCheckerSettlesAfterLeadSwap(t *testing.T) {
	c := fcw.New()
	trace := braking(-2.5, 0.2)

	c.Update(trace, 2.0, true, 20, 0, closingLead(), false)
	c.Update(trace, 2.0, true, 20, 0, closingLead(), false)

	c.ResetLead(10.0)
	assert.False(t, c.Update(trace, 10.2, true, 20, 0, closingLead(), false))
	assert.False(t, c.Update(trace, 10.4, true, 20, 0, closingLead(), false))

	for i := 0; i < fcw.PERSIST-1; i++ {
		assert.False(t, c.Update(trace, 11.1, true, 20, 0, closingLead(), false))
	}
	assert.True(t, c.Update(trace, 11.1, true, 20, 0, closingLead(), false))
}

func TestCheckerBlinkersTightenThreshold(t *testing.T) {
	trace := braking(-2.5, 0.2)
	// two seconds to collision, inside the normal window only
	lead := plan.Lead{Status: true, DRel: 20, VLead: 10}

	c := fcw.New()
	for i := 0; i < 2*fcw.PERSIST; i++ {
		assert.False(t, c.Update(trace, 2.0, true, 20, 0, lead, true))
	}

	c = fcw.New()
	for i := 0; i < fcw.PERSIST-1; i++ {
		assert.False(t, c.Update(trace, 2.0, true, 20, 0, lead, false))
	}
	assert.True(t, c.Update(trace, 2.0, true, 20, 0, lead, false))
}

func TestCheckerHonorsRadarFcwFlag(t *testing.T) {
	c := fcw.New()
	trace := braking(-2.5, 0.2)

	// barely closing, time to collision alone would never warn
	lead := plan.Lead{Status: true, DRel: 100, VLead: 19.9, Fcw: true}
	for i := 0; i < fcw.PERSIST-1; i++ {
		assert.False(t, c.Update(trace, 2.0, true, 20, 0, lead, false))
	}
	assert.True(t, c.Update(trace, 2.0, true, 20, 0, lead, false))
}

func TestCheckerNeedsPlannedHardBrake(t *testing.T) {
	c := fcw.New()

	gentle := braking(-1.0, 0.2)
	for i := 0; i < 2*fcw.PERSIST; i++ {
		assert.False(t, c.Update(gentle, 2.0, true, 20, 0, closingLead(), false))
	}

	// hard braking planned, but only past the corroboration window
	late := braking(-3.0, 2.2)
	for i := 0; i < 2*fcw.PERSIST; i++ {
		assert.False(t, c.Update(late, 2.0, true, 20, 0, closingLead(), false))
	}
}
