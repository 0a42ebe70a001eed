package main

import (
	"log/slog"
	"time"

	"github.com/agegold/openpilot-085/cereal"
	"github.com/agegold/openpilot-085/cereal/custom"
	"github.com/agegold/openpilot-085/cereal/log"
	"github.com/agegold/openpilot-085/fcw"
	"github.com/agegold/openpilot-085/mpc"
	"github.com/agegold/openpilot-085/params"
	"github.com/agegold/openpilot-085/plan"
	"github.com/agegold/openpilot-085/record"
	ms "github.com/agegold/openpilot-085/settings"
	"github.com/agegold/openpilot-085/vehicle"
)

var RECORD_RETRY = 5 * time.Second // backoff after a failed drive file open
var STALL_WARN_DELAY = 5 * time.Second
var STALL_FACTOR = 3.0 // radar periods without an update before warning

// Daemon runs the planning cycle at radar rate and owns every channel the
// planner talks to.
type Daemon struct {
	veh     vehicle.Params
	planner *plan.Planner
	camera  SpeedCamera
	snap    Snapshot

	plannerIn cereal.Subscriber[custom.PlannerIn]
	planPub   cereal.Publisher[log.LongitudinalPlan]
	extended  ExtendedState

	recorder      *record.Recorder
	lastRecordTry time.Time
	lastStallWarn time.Time
	start         time.Time
}

func NewDaemon(veh vehicle.Params) *Daemon {
	d := &Daemon{
		veh:     veh,
		planner: plan.New(veh, mpc.NewLead(), mpc.NewLead(), mpc.NewModel(), fcw.New()),
		start:   time.Now(),
	}
	d.snap.Init()
	d.plannerIn = cereal.NewSubscriber("plannerIn", cereal.PlannerInReader, false)
	d.planPub = cereal.NewPublisher("longitudinalPlan", cereal.LongitudinalPlanCreator)
	d.extended.Pub = cereal.NewPublisher("plannerExtended", cereal.PlannerExtendedCreator)
	return d
}

func (d *Daemon) Close() {
	if d.recorder != nil {
		closeRecorder(d.recorder)
		d.recorder = nil
	}
	d.plannerIn.Sub.Msgq.Close()
	d.snap.Close()
}

func closeRecorder(r *record.Recorder) {
	if err := r.Close(); err != nil {
		slog.Warn("could not close drive file", "error", err)
	}
}

// run is the daemon's main loop. Input channels are polled every LOOP_DELAY
// but a planning cycle only happens when a fresh radarState arrives, so the
// effective rate is the radar's.
func (d *Daemon) run() {
	for {
		time.Sleep(ms.LOOP_DELAY)

		d.drainInputs()
		d.syncRecorder()

		d.snap.Refresh()
		if !d.snap.ReadRadar() {
			d.sendExtended()
			continue
		}
		if !d.snap.Ready() {
			slog.Debug("radar is up but car or controls state has never arrived")
			continue
		}

		in := d.buildInput()
		d.camera.Update()
		out := d.planner.Update(in)

		if err := d.publishPlan(in, out); err != nil {
			slog.Error("failed to publish plan", "error", err)
		}
		d.recordCycle(in, out)
		d.warnOnStall()

		d.extended.ModelLong = in.ModelEnabled
		d.sendExtended()
	}
}

// drainInputs applies every pending control message. The channel is not
// conflated, toggles arrive rarely but must not be dropped.
func (d *Daemon) drainInputs() {
	for {
		input, ok := d.plannerIn.Read()
		if !ok {
			break
		}
		ms.Settings.Handle(input)
	}
}

func (d *Daemon) syncRecorder() {
	if ms.Settings.RecordDrive && d.recorder == nil {
		if time.Since(d.lastRecordTry) < RECORD_RETRY {
			return
		}
		d.lastRecordTry = time.Now()
		rec, err := record.Open(ms.Settings.RecordPath, d.veh.Name)
		if err != nil {
			slog.Error("could not open drive file", "error", err)
			return
		}
		d.recorder = rec
		slog.Info("recording drive", "session", rec.Session())
	} else if !ms.Settings.RecordDrive && d.recorder != nil {
		closeRecorder(d.recorder)
		d.recorder = nil
	}
}

func (d *Daemon) buildInput() plan.Input {
	cs := d.snap.CarState
	ctrl := d.snap.ControlsState
	rs := d.snap.RadarState

	vCruiseKph := float64(ctrl.VCruise())
	if d.veh.SccBus == 2 {
		// stock cruise stays alive on a bus 2 harness, its setpoint is the
		// one the driver actually sees
		vCruiseKph = float64(cs.CruiseState().Speed()) * ms.MS_TO_KPH
	}

	positions, velocities := d.snap.ModelPath()

	return plan.Input{
		VEgo:             float64(cs.VEgo()),
		AEgo:             float64(cs.AEgo()),
		SteeringAngleDeg: float64(cs.SteeringAngleDeg()),
		GasPressed:       cs.GasPressed(),
		BrakePressed:     cs.BrakePressed(),
		LeftBlinker:      cs.LeftBlinker(),
		RightBlinker:     cs.RightBlinker(),

		VCruiseKph: vCruiseKph,
		CtrlState:  ctrlState(ctrl.LongControlState()),
		Active:     ctrl.Active(),
		ForceDecel: ctrl.ForceDecel(),

		Lead1: leadFromData(rs.LeadOne()),
		Lead2: leadFromData(rs.LeadTwo()),

		ModelPositions:  positions,
		ModelVelocities: velocities,
		ModelEnabled:    d.modelLongEnabled(),

		CurTime: time.Since(d.start).Seconds(),
	}
}

func ctrlState(s log.ControlsState_LongControlState) plan.ControlState {
	switch s {
	case log.ControlsState_LongControlState_pid:
		return plan.ControlPID
	case log.ControlsState_LongControlState_stopping:
		return plan.ControlStopping
	case log.ControlsState_LongControlState_starting:
		return plan.ControlStarting
	default:
		return plan.ControlOff
	}
}

func leadFromData(ld log.LeadData, err error) plan.Lead {
	if err != nil {
		slog.Debug("could not read lead from radar state", "error", err)
		return plan.Lead{}
	}
	return plan.Lead{
		DRel:   float64(ld.DRel()),
		YRel:   float64(ld.YRel()),
		VRel:   float64(ld.VRel()),
		VLead:  float64(ld.VLead()),
		VLeadK: float64(ld.VLeadK()),
		ALeadK: float64(ld.ALeadK()),
		VLat:   float64(ld.VLat()),
		Status: ld.Status(),
		Fcw:    ld.Fcw(),
	}
}

// modelLongEnabled prefers the param so the toggle can be flipped from the
// device UI without a settings round trip.
func (d *Daemon) modelLongEnabled() bool {
	enabled, err := params.GetBoolParam(params.MODEL_LONG_ENABLED)
	if err != nil {
		return ms.Settings.ModelLongEnabled
	}
	return enabled
}

func (d *Daemon) recordCycle(in plan.Input, out plan.Output) {
	if d.recorder == nil {
		return
	}
	if err := d.recorder.Record(in.CurTime, in.VEgo, out, in.Lead1); err != nil {
		slog.Warn("failed to record drive sample", "error", err)
	}
}

func (d *Daemon) warnOnStall() {
	period := d.snap.UpdateTime.DiffMA.Estimate
	if period <= STALL_FACTOR*d.veh.RadarTimeStep {
		return
	}
	if time.Since(d.lastStallWarn) < STALL_WARN_DELAY {
		return
	}
	d.lastStallWarn = time.Now()
	slog.Warn("radar updates are stalling", "period", period, "expected", d.veh.RadarTimeStep)
}

func (d *Daemon) sendExtended() {
	d.extended.Recording = d.recorder != nil
	if d.recorder != nil {
		d.extended.SessionId = d.recorder.Session()
	} else {
		d.extended.SessionId = ""
	}
	if err := d.extended.Send(); err != nil {
		slog.Warn("failed to send extended state", "error", err)
	}
}
