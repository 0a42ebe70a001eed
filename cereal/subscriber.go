package cereal

import (
	"math"
	"time"

	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"

	"github.com/agegold/openpilot-085/cereal/log"
	"github.com/agegold/openpilot-085/settings"
)

type Reader[T any] func(log.Event) (T, error)

type Subscriber[T any] struct {
	Sub gomsgq.MsgqSubscriber

	// metadata from the last successful Read, used for freshness checks
	LogMonoTime uint64
	Valid       bool
	LastRecv    time.Time

	reader Reader[T]
}

func (s *Subscriber[T]) Read() (obj T, success bool) {
	data := s.Sub.Read()
	if len(data) == 0 {
		return obj, false
	}
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return obj, false
	}

	// allow us to read as much as we want
	msg.ResetReadLimit(math.MaxUint64)

	event, err := log.ReadRootEvent(msg)
	if err != nil {
		return obj, false
	}

	obj, err = s.reader(event)
	if err != nil {
		return obj, false
	}

	s.LogMonoTime = event.LogMonoTime()
	s.Valid = event.Valid()
	s.LastRecv = time.Now()
	return obj, true
}

// Alive reports whether a message arrived within the given window.
func (s *Subscriber[T]) Alive(window time.Duration) bool {
	return !s.LastRecv.IsZero() && time.Since(s.LastRecv) < window
}

func NewSubscriber[T any](name string, reader Reader[T], conflate bool) (subscriber Subscriber[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, settings.GetSegmentSize(name))
	if err != nil {
		panic(err)
	}
	sub := gomsgq.MsgqSubscriber{}
	sub.Conflate = conflate
	sub.Init(msgq)

	subscriber.Sub = sub
	subscriber.reader = reader
	return subscriber
}
