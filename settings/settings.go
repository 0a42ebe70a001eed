package settings

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/agegold/openpilot-085/cereal/custom"
	"github.com/agegold/openpilot-085/params"
	"github.com/agegold/openpilot-085/utils"
	"time"
)

var (
	Settings = PlannerSettings{}
)

type PlannerSettings struct {
	LogLevel                  string  `json:"log_level"`
	ModelLongEnabled          bool    `json:"model_long_enabled"`
	SpeedCameraControlEnabled bool    `json:"speed_camera_control_enabled"`
	SpeedCameraOffset         float64 `json:"speed_camera_offset"` // kph, added to the camera target
	RecordDrive               bool    `json:"record_drive"`
	RecordPath                string  `json:"record_path"`
}

func (s *PlannerSettings) Default() {
	s.LogLevel = "error"
	s.ModelLongEnabled = false
	s.SpeedCameraControlEnabled = true
	s.SpeedCameraOffset = 0
	s.RecordDrive = false
	s.RecordPath = "/data/media/0/longplan/drives.db"
}

func (s *PlannerSettings) Recommended() {
	s.LogLevel = "error"
	s.ModelLongEnabled = true
	s.SpeedCameraControlEnabled = true
	s.SpeedCameraOffset = 0
	s.RecordDrive = false
	s.RecordPath = "/data/media/0/longplan/drives.db"
}

func (s *PlannerSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.PLANNER_SETTINGS)
	if err != nil {
		utils.Loge(err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.setLogLevel()

	return true
}

func (s *PlannerSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

// Unmarshal overlays settings broadcast by a running daemon, it does not
// touch the persisted param.
func (s *PlannerSettings) Unmarshal(data []byte) error {
	return json.Unmarshal(data, s)
}

func (s *PlannerSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.PLANNER_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *PlannerSettings) setLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}

func (s *PlannerSettings) Handle(input custom.PlannerIn) {
	switch input.Type() {
	case custom.PlannerInputType_reloadSettings:
		s.Load()
	case custom.PlannerInputType_saveSettings:
		go s.Save()
	case custom.PlannerInputType_setModelLong:
		s.ModelLongEnabled = input.Bool()
	case custom.PlannerInputType_setSpeedCameraControl:
		s.SpeedCameraControlEnabled = input.Bool()
	case custom.PlannerInputType_setSpeedCameraOffset:
		s.SpeedCameraOffset = float64(input.Float())
	case custom.PlannerInputType_setRecordDrive:
		s.RecordDrive = input.Bool()
	case custom.PlannerInputType_setRecordPath:
		path, err := input.Str()
		if err != nil {
			utils.Loge(err)
			return
		}
		s.RecordPath = path
	case custom.PlannerInputType_loadDefaultSettings:
		s.Default()
	case custom.PlannerInputType_loadRecommendedSettings:
		s.Recommended()
	case custom.PlannerInputType_setLogLevel:
		logLevel, err := input.Str()
		if err != nil {
			utils.Loge(err)
			return
		}
		s.LogLevel = logLevel
		s.setLogLevel()
	}
}
