package main

import (
	"time"

	capnp "capnproto.org/go/capnp/v3"

	"github.com/agegold/openpilot-085/cereal"
	"github.com/agegold/openpilot-085/cereal/car"
	"github.com/agegold/openpilot-085/cereal/log"
	"github.com/agegold/openpilot-085/utils"
)

// ALIVE_WINDOW is how long a channel's last message stays fresh. The slowest
// input runs at radar rate, so this covers several missed cycles before the
// plan is marked invalid.
var ALIVE_WINDOW = 250 * time.Millisecond

// Snapshot keeps the latest message from every input channel. The state
// channels conflate so a slow cycle always sees the newest data, and the
// radar channel paces the planner.
type Snapshot struct {
	car      cereal.Subscriber[car.CarState]
	controls cereal.Subscriber[log.ControlsState]
	radar    cereal.Subscriber[log.RadarState]
	model    cereal.Subscriber[log.ModelDataV2]

	CarState      car.CarState
	ControlsState log.ControlsState
	RadarState    log.RadarState
	Model         log.ModelDataV2

	UpdateTime utils.UpdateTracker
}

func (s *Snapshot) Init() {
	s.car = cereal.NewSubscriber("carState", cereal.CarStateReader, true)
	s.controls = cereal.NewSubscriber("controlsState", cereal.ControlsStateReader, true)
	s.model = cereal.NewSubscriber("modelV2", cereal.ModelV2Reader, true)
	s.radar = cereal.NewSubscriber("radarState", cereal.RadarStateReader, true)
	s.UpdateTime.Init(100)
}

func (s *Snapshot) Close() {
	s.car.Sub.Msgq.Close()
	s.controls.Sub.Msgq.Close()
	s.model.Sub.Msgq.Close()
	s.radar.Sub.Msgq.Close()
}

// Refresh pulls the latest car, controls and model messages.
func (s *Snapshot) Refresh() {
	if carState, ok := s.car.Read(); ok {
		s.CarState = carState
	}
	if controls, ok := s.controls.Read(); ok {
		s.ControlsState = controls
	}
	if model, ok := s.model.Read(); ok {
		s.Model = model
	}
}

// ReadRadar reports whether a new radar state arrived. A plan cycle runs per
// radar message, everything else is sampled.
func (s *Snapshot) ReadRadar() bool {
	radar, ok := s.radar.Read()
	if !ok {
		return false
	}
	s.RadarState = radar
	s.UpdateTime.Update()
	return true
}

// Ready reports whether the planner has seen the car at all. Until the first
// car and controls messages arrive there is nothing meaningful to plan from.
func (s *Snapshot) Ready() bool {
	return !s.car.LastRecv.IsZero() && !s.controls.LastRecv.IsZero()
}

// Valid mirrors the upstream liveness contract: the plan is valid when the
// car, controls and radar feeds are all fresh and marked valid. The model
// feed is excluded, losing it only drops the model candidate.
func (s *Snapshot) Valid() bool {
	return s.car.Alive(ALIVE_WINDOW) && s.car.Valid &&
		s.controls.Alive(ALIVE_WINDOW) && s.controls.Valid &&
		s.radar.Alive(ALIVE_WINDOW) && s.radar.Valid
}

// ModelPath returns the predicted path arrays, or nil slices when the model
// feed is stale or incomplete so the model candidate drops out.
func (s *Snapshot) ModelPath() (positions []float32, velocities []float32) {
	if !s.model.Alive(ALIVE_WINDOW) {
		return nil, nil
	}
	position, err := s.Model.Position()
	if err != nil {
		return nil, nil
	}
	velocity, err := s.Model.Velocity()
	if err != nil {
		return nil, nil
	}
	return float32s(position.X()), float32s(velocity.X())
}

func float32s(list capnp.Float32List, err error) []float32 {
	if err != nil {
		return nil
	}
	out := make([]float32, list.Len())
	for i := range out {
		out[i] = list.At(i)
	}
	return out
}
