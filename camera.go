package main

import (
	"github.com/agegold/openpilot-085/params"
	ms "github.com/agegold/openpilot-085/settings"
	"github.com/agegold/openpilot-085/utils"
	"gonum.org/v1/gonum/interp"
)

var (
	CAM_MIN_SPEED = 29.0   // kph, targets at or below are treated as noise
	CAM_FAR_DIST  = 1001.0 // m, beyond this the camera shows regardless of approach

	READ_CYCLES = 75 // param read cadence, in radar cycles
	PREP_CYCLES = 50 // cycles before a read at which the scraper is expected to refresh
	HIT_BACKOFF = 80 // extra cycles between reads after a confirmed camera
	MAX_RETRIES = 2  // quick re-reads when the params are absent

	// approach window per kph of ego speed, and its widening when driving
	// well above the camera limit
	cam_distance = fitTable([]float64{30, 60, 100, 160}, []float64{3.75, 5.5, 6, 7})
	cam_consider = fitTable([]float64{10, 30}, []float64{1, 1.3})
)

func fitTable(xs []float64, ys []float64) interp.PiecewiseLinear {
	var pl interp.PiecewiseLinear
	utils.Check(pl.Fit(xs, ys))
	return pl
}

// SpeedCamera polls the params the platform's camera scraper writes and
// latches a target once the car is close enough for it to matter. The
// scraper itself lives outside this daemon, the counters here just pace the
// reads against its refresh cadence.
type SpeedCamera struct {
	Target float64 // kph, 0 when no camera ahead
	Dist   float64 // m to the camera

	counter int
	backoff int
	retries int
	reading bool
	block   bool
	sign    bool
}

func (c *SpeedCamera) Update() {
	if !ms.Settings.SpeedCameraControlEnabled {
		return
	}

	c.counter++
	if c.counter >= PREP_CYCLES+c.backoff && !c.reading {
		// scraper refresh window opens here, params land before the read
		c.reading = true
	} else if c.counter >= READ_CYCLES+c.backoff {
		c.backoff = 0
		c.counter = 0
		c.reading = false

		mapSpeed, errSpeed := params.GetFloatParam(params.LIMIT_SET_SPEED_CAMERA)
		mapDist, errDist := params.GetFloatParam(params.LIMIT_SET_SPEED_CAMERA_DIST)
		switch {
		case errSpeed == nil && errDist == nil:
			if mapSpeed > CAM_MIN_SPEED {
				c.Target = mapSpeed
				c.Dist = mapDist
				if c.Dist > CAM_FAR_DIST {
					c.block = true
				}
				c.backoff = HIT_BACKOFF
			} else {
				c.Target = 0
				c.Dist = 0
				c.block = false
			}
		case errSpeed != nil && errDist != nil && c.retries < MAX_RETRIES:
			// nothing written yet, come back on a short cycle
			c.retries++
			c.counter = READ_CYCLES - 24
			c.reading = true
			c.clear()
		default:
			c.counter = PREP_CYCLES - 1
			c.retries = 0
			c.reading = false
			c.clear()
		}
	}
}

func (c *SpeedCamera) clear() {
	c.Target = 0
	c.Dist = 0
	c.block = false
	c.sign = false
}

// Published returns the camera target and distance to put on the plan, or
// zeros while the camera is still too far ahead to show. Once shown it
// stays latched until the target clears, and long range cameras picked up
// early show immediately.
func (c *SpeedCamera) Published(vEgo float64) (target float64, dist float64) {
	if c.Target <= CAM_MIN_SPEED {
		return 0, 0
	}

	vKph := vEgo * ms.MS_TO_KPH
	window := cam_distance.Predict(vKph) * cam_consider.Predict(vKph-c.Target) * vKph

	switch {
	case c.Dist < window:
		c.sign = true
	case c.block:
		c.sign = true
	case c.sign:
		// latched on an earlier cycle
	default:
		return 0, 0
	}

	return c.Target + ms.Settings.SpeedCameraOffset, c.Dist
}
