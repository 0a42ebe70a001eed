package main

import (
	"log/slog"

	"github.com/agegold/openpilot-085/cli"
	"github.com/agegold/openpilot-085/params"
	ms "github.com/agegold/openpilot-085/settings"
	"github.com/agegold/openpilot-085/vehicle"
)

// VEHICLE_CONFIG_PATH is where the install step drops the platform's
// geometry file.
var VEHICLE_CONFIG_PATH = "/data/longplan/vehicle.yaml"

func main() {
	cli.Handle()

	params.EnsureParamDirectories()
	ms.Settings.LoadWithRetries(10)

	veh, err := vehicle.Load(VEHICLE_CONFIG_PATH)
	if err != nil {
		slog.Warn("using default vehicle parameters", "error", err)
		veh = vehicle.Default()
	}
	slog.Info("starting planner", "vehicle", veh.Name)

	d := NewDaemon(veh)
	defer d.Close()
	d.run()
}
