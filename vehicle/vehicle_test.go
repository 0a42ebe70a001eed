package vehicle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agegold/openpilot-085/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vehicle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
name: sonata
steer_ratio: 15.2
wheelbase: 2.9
scc_bus: 2
`)

	p, err := vehicle.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sonata", p.Name)
	assert.Equal(t, 15.2, p.SteerRatio)
	assert.Equal(t, 2.9, p.Wheelbase)
	assert.Equal(t, 2, p.SccBus)

	// untouched fields keep their defaults
	assert.Equal(t, vehicle.Default().RadarTimeStep, p.RadarTimeStep)
	assert.Equal(t, vehicle.Default().StartAccel, p.StartAccel)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p, err := vehicle.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Equal(t, vehicle.Default(), p)
}

func TestLoadRejectsBadYaml(t *testing.T) {
	_, err := vehicle.Load(writeConfig(t, "steer_ratio: [not a number"))
	assert.Error(t, err)
}

func TestValidateCatchesBadGeometry(t *testing.T) {
	p := vehicle.Default()
	p.SteerRatio = 0
	assert.Error(t, p.Validate())

	p = vehicle.Default()
	p.Wheelbase = -1
	assert.Error(t, p.Validate())

	p = vehicle.Default()
	p.RadarTimeStep = 0.5
	assert.Error(t, p.Validate())

	p = vehicle.Default()
	p.SccBus = 3
	assert.Error(t, p.Validate())

	assert.NoError(t, vehicle.Default().Validate())
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	_, err := vehicle.Load(writeConfig(t, "radar_time_step: 0\n"))
	assert.Error(t, err)
}
