package cereal

import "time"

// GetTime returns the timestamp used for logMonoTime, in nanoseconds. Wall
// clock is used so every process on the device stamps against the same base.
func GetTime() uint64 {
	return uint64(time.Now().UnixNano())
}
