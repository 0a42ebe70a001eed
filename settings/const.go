package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	MODEL_SEGMENT_SIZE   = 40 * 1024 * 1024
	LOOP_DELAY           = 5 * time.Millisecond
	BROADCAST_DELAY      = 1 * time.Second
	MS_TO_KPH            = 3.6
	KPH_TO_MS            = 1 / 3.6
)

// modelV2 carries the full predicted trajectory set and needs a larger
// segment than the state channels.
func GetSegmentSize(channel string) int {
	if channel == "modelV2" {
		return MODEL_SEGMENT_SIZE
	}
	return DEFAULT_SEGMENT_SIZE
}
