// Package vehicle holds the physical car description the planner needs.
// Values come from a yaml file on device so one binary can serve different
// platforms.
package vehicle

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Params struct {
	Name          string  `yaml:"name"`
	SteerRatio    float64 `yaml:"steer_ratio"`
	Wheelbase     float64 `yaml:"wheelbase"`
	MinSpeedCan   float64 `yaml:"min_speed_can"`
	StartAccel    float64 `yaml:"start_accel"`
	RadarTimeStep float64 `yaml:"radar_time_step"`
	SccBus        int     `yaml:"scc_bus"`
}

func Default() Params {
	return Params{
		Name:          "generic",
		SteerRatio:    13.27,
		Wheelbase:     2.84,
		MinSpeedCan:   0.3,
		StartAccel:    0.8,
		RadarTimeStep: 0.05,
		SccBus:        0,
	}
}

func Load(path string) (Params, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, errors.Wrap(err, "could not read vehicle config")
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, errors.Wrap(err, "could not parse vehicle config")
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func (p Params) Validate() error {
	if p.SteerRatio <= 0 {
		return errors.New("steer_ratio must be positive")
	}
	if p.Wheelbase <= 0 {
		return errors.New("wheelbase must be positive")
	}
	if p.MinSpeedCan < 0 {
		return errors.New("min_speed_can must not be negative")
	}
	if p.RadarTimeStep <= 0 || p.RadarTimeStep > 0.2 {
		return errors.New("radar_time_step must be in (0, 0.2]")
	}
	if p.SccBus < 0 || p.SccBus > 2 {
		return errors.New("scc_bus must be 0, 1 or 2")
	}
	return nil
}
