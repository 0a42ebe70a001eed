package cereal

import (
	"github.com/agegold/openpilot-085/cereal/custom"
	"github.com/agegold/openpilot-085/cereal/log"
)

func LongitudinalPlanCreator(evt log.Event) (log.LongitudinalPlan, error) {
	return evt.NewLongitudinalPlan()
}

func PlannerInCreator(evt log.Event) (custom.PlannerIn, error) {
	return evt.NewPlannerIn()
}

func PlannerExtendedCreator(evt log.Event) (custom.PlannerExtended, error) {
	return evt.NewPlannerExtended()
}
