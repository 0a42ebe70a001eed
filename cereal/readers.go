package cereal

import (
	"github.com/agegold/openpilot-085/cereal/car"
	"github.com/agegold/openpilot-085/cereal/custom"
	"github.com/agegold/openpilot-085/cereal/log"
)

func CarStateReader(evt log.Event) (car.CarState, error) {
	return evt.CarState()
}

func ControlsStateReader(evt log.Event) (log.ControlsState, error) {
	return evt.ControlsState()
}

func RadarStateReader(evt log.Event) (log.RadarState, error) {
	return evt.RadarState()
}

func ModelV2Reader(evt log.Event) (log.ModelDataV2, error) {
	return evt.ModelV2()
}

func LongitudinalPlanReader(evt log.Event) (log.LongitudinalPlan, error) {
	return evt.LongitudinalPlan()
}

func PlannerInReader(evt log.Event) (custom.PlannerIn, error) {
	return evt.PlannerIn()
}

func PlannerExtendedReader(evt log.Event) (custom.PlannerExtended, error) {
	return evt.PlannerExtended()
}
