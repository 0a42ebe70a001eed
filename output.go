package main

import (
	"time"

	"github.com/agegold/openpilot-085/cereal/log"
	"github.com/agegold/openpilot-085/plan"
)

// publishPlan mirrors one cycle onto the longitudinalPlan channel. The
// message is flagged invalid whenever any input channel has gone stale so
// consumers can fall back on their own.
func (d *Daemon) publishPlan(in plan.Input, out plan.Output) error {
	msg, lp := d.planPub.NewMessage(d.snap.Valid())

	lp.SetMdMonoTime(d.snap.model.LogMonoTime)
	lp.SetRadarStateMonoTime(d.snap.radar.LogMonoTime)
	lp.SetProcessingDelay(float32(time.Since(d.snap.radar.LastRecv).Seconds()))

	lp.SetVCruise(float32(out.VCruise))
	lp.SetACruise(float32(out.ACruise))
	lp.SetVStart(float32(out.VStart))
	lp.SetAStart(float32(out.AStart))
	lp.SetVTarget(float32(out.VTarget))
	lp.SetATarget(float32(out.ATarget))
	lp.SetVTargetFuture(float32(out.VTargetFuture))
	lp.SetLongitudinalPlanSource(planSource(out.Source))
	lp.SetFcw(out.Fcw)
	lp.SetModelLongActive(in.ModelEnabled)

	lp.SetHasLead(out.HasLead)
	lp.SetDRel1(float32(in.Lead1.DRel))
	lp.SetYRel1(float32(in.Lead1.YRel))
	lp.SetVRel1(float32(in.Lead1.VRel))
	lp.SetHasLead2(in.Lead2.Status)
	lp.SetDRel2(float32(in.Lead2.DRel))
	lp.SetYRel2(float32(in.Lead2.YRel))
	lp.SetVRel2(float32(in.Lead2.VRel))

	target, dist := d.camera.Published(in.VEgo)
	lp.SetTargetSpeedCamera(float32(target))
	lp.SetTargetSpeedCameraDist(float32(dist))

	return d.planPub.Send(msg)
}

func planSource(s plan.Source) log.LongitudinalPlanSource {
	switch s {
	case plan.SourceLead1:
		return log.LongitudinalPlanSource_leadOne
	case plan.SourceLead2:
		return log.LongitudinalPlanSource_leadTwo
	case plan.SourceModel:
		return log.LongitudinalPlanSource_model
	default:
		return log.LongitudinalPlanSource_cruise
	}
}
