package main

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/agegold/openpilot-085/cereal"
	"github.com/agegold/openpilot-085/cereal/custom"
	ms "github.com/agegold/openpilot-085/settings"
)

// ExtendedState broadcasts slow-changing daemon state for the interactive
// tooling, throttled so it never competes with the plan channel.
type ExtendedState struct {
	Pub cereal.Publisher[custom.PlannerExtended]

	Recording bool
	SessionId string
	ModelLong bool

	lastSend time.Time
}

func (s *ExtendedState) Send() error {
	if time.Since(s.lastSend) > ms.BROADCAST_DELAY {
		s.lastSend = time.Now()
		msg, out := s.Pub.NewMessage(true)
		out.SetRecording(s.Recording)
		out.SetModelLongActive(s.ModelLong)
		s.setSettings(out)
		if err := out.SetSessionId(s.SessionId); err != nil {
			slog.Warn("failed to set session id in extended state")
		}
		return s.Pub.Send(msg)
	}
	return nil
}

func (s *ExtendedState) setSettings(out custom.PlannerExtended) {
	b, err := json.Marshal(ms.Settings)
	if err != nil {
		slog.Warn("failed to marshal settings for extended state")
		return
	}
	if err := out.SetSettings(string(b)); err != nil {
		slog.Warn("failed to set settings in extended state")
	}
}
