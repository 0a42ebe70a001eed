package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agegold/openpilot-085/params"
	ms "github.com/agegold/openpilot-085/settings"
)

func cameraSettings(t *testing.T) {
	t.Helper()
	old := ms.Settings
	ms.Settings.Default()
	ms.Settings.SpeedCameraControlEnabled = true
	t.Cleanup(func() { ms.Settings = old })
}

func cameraParams(t *testing.T) {
	t.Helper()
	oldPath := params.ParamsPath
	oldSpeed := params.LIMIT_SET_SPEED_CAMERA
	oldDist := params.LIMIT_SET_SPEED_CAMERA_DIST
	params.ParamsPath = filepath.Join(t.TempDir(), "d")
	params.LIMIT_SET_SPEED_CAMERA = params.ParamPath("LimitSetSpeedCamera")
	params.LIMIT_SET_SPEED_CAMERA_DIST = params.ParamPath("LimitSetSpeedCameraDist")
	params.EnsureParamDirectories()
	t.Cleanup(func() {
		params.ParamsPath = oldPath
		params.LIMIT_SET_SPEED_CAMERA = oldSpeed
		params.LIMIT_SET_SPEED_CAMERA_DIST = oldDist
	})
}

func putCamera(t *testing.T, speed string, dist string) {
	t.Helper()
	require.NoError(t, params.PutParam(params.LIMIT_SET_SPEED_CAMERA, []byte(speed)))
	require.NoError(t, params.PutParam(params.LIMIT_SET_SPEED_CAMERA_DIST, []byte(dist)))
}

func cycle(c *SpeedCamera, n int) {
	for range n {
		c.Update()
	}
}

func TestSpeedCameraLatchesTarget(t *testing.T) {
	cameraSettings(t)
	cameraParams(t)
	putCamera(t, "60", "350")

	c := SpeedCamera{}
	target, dist := c.Published(25.0)
	assert.Equal(t, 0.0, target)
	assert.Equal(t, 0.0, dist)

	cycle(&c, READ_CYCLES)
	assert.Equal(t, 60.0, c.Target)
	assert.Equal(t, 350.0, c.Dist)

	// 90 kph against a 60 kph camera 350 m out is inside the approach window
	target, dist = c.Published(25.0)
	assert.Equal(t, 60.0, target)
	assert.Equal(t, 350.0, dist)
}

func TestSpeedCameraApproachWindow(t *testing.T) {
	cameraSettings(t)
	cameraParams(t)
	putCamera(t, "60", "600")

	c := SpeedCamera{}
	cycle(&c, READ_CYCLES)

	// at 30 kph the camera is still far beyond the window
	target, dist := c.Published(30 * ms.KPH_TO_MS)
	assert.Equal(t, 0.0, target)
	assert.Equal(t, 0.0, dist)

	// at 90 kph the window reaches it
	target, dist = c.Published(25.0)
	assert.Equal(t, 60.0, target)
	assert.Equal(t, 600.0, dist)

	// once shown it stays latched even after slowing down
	target, dist = c.Published(30 * ms.KPH_TO_MS)
	assert.Equal(t, 60.0, target)
	assert.Equal(t, 600.0, dist)
}

func TestSpeedCameraFarCameraShowsImmediately(t *testing.T) {
	cameraSettings(t)
	cameraParams(t)
	putCamera(t, "60", "1500")

	c := SpeedCamera{}
	cycle(&c, READ_CYCLES)
	assert.True(t, c.block)

	// way outside the window at 28.8 kph, but long range hits always show
	target, dist := c.Published(8.0)
	assert.Equal(t, 60.0, target)
	assert.Equal(t, 1500.0, dist)
}

func TestSpeedCameraHitBackoffDelaysNextRead(t *testing.T) {
	cameraSettings(t)
	cameraParams(t)
	putCamera(t, "60", "1500")

	c := SpeedCamera{}
	cycle(&c, READ_CYCLES)
	require.Equal(t, 60.0, c.Target)

	// a confirmed hit pushes the next read out by the backoff
	putCamera(t, "20", "0")
	cycle(&c, READ_CYCLES+HIT_BACKOFF-1)
	assert.Equal(t, 60.0, c.Target)

	cycle(&c, 1)
	assert.Equal(t, 0.0, c.Target)
	assert.Equal(t, 0.0, c.Dist)
	assert.False(t, c.block)

	target, dist := c.Published(25.0)
	assert.Equal(t, 0.0, target)
	assert.Equal(t, 0.0, dist)
}

func TestSpeedCameraSignCarriesToNextCamera(t *testing.T) {
	cameraSettings(t)
	cameraParams(t)
	putCamera(t, "60", "1500")

	c := SpeedCamera{}
	cycle(&c, READ_CYCLES)
	c.Published(8.0)
	require.True(t, c.sign)

	// a below threshold read clears the target but not the shown flag
	putCamera(t, "20", "0")
	cycle(&c, READ_CYCLES+HIT_BACKOFF)
	require.Equal(t, 0.0, c.Target)

	// so the next camera shows without waiting for the approach window
	putCamera(t, "80", "900")
	cycle(&c, READ_CYCLES)
	target, dist := c.Published(2.0)
	assert.Equal(t, 80.0, target)
	assert.Equal(t, 900.0, dist)
}

func TestSpeedCameraMissingParamsRetryCadence(t *testing.T) {
	cameraSettings(t)
	cameraParams(t)

	c := SpeedCamera{}
	cycle(&c, READ_CYCLES)
	assert.Equal(t, 1, c.retries)
	assert.Equal(t, READ_CYCLES-24, c.counter)
	assert.True(t, c.reading)

	cycle(&c, 24)
	assert.Equal(t, 2, c.retries)
	assert.Equal(t, READ_CYCLES-24, c.counter)

	// retries exhausted, fall back to the normal cadence
	cycle(&c, 24)
	assert.Equal(t, 0, c.retries)
	assert.Equal(t, PREP_CYCLES-1, c.counter)
	assert.False(t, c.reading)
	assert.Equal(t, 0.0, c.Target)
}

func TestSpeedCameraDisabledHoldsStill(t *testing.T) {
	cameraSettings(t)
	cameraParams(t)
	putCamera(t, "60", "350")
	ms.Settings.SpeedCameraControlEnabled = false

	c := SpeedCamera{}
	cycle(&c, 200)
	assert.Equal(t, 0, c.counter)
	assert.Equal(t, 0.0, c.Target)

	target, dist := c.Published(25.0)
	assert.Equal(t, 0.0, target)
	assert.Equal(t, 0.0, dist)
}

func TestSpeedCameraOffsetApplied(t *testing.T) {
	cameraSettings(t)
	cameraParams(t)
	putCamera(t, "60", "350")
	ms.Settings.SpeedCameraOffset = 5

	c := SpeedCamera{}
	cycle(&c, READ_CYCLES)

	target, dist := c.Published(25.0)
	assert.Equal(t, 65.0, target)
	assert.Equal(t, 350.0, dist)
}
