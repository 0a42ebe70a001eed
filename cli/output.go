package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agegold/openpilot-085/cereal/log"
)

type outputModel struct {
	plan  log.LongitudinalPlan
	valid bool
}

func (m outputModel) Update(msg tea.Msg, mm *uiModel) (outputModel, tea.Cmd) {
	out, success := mm.planSub.Read()
	if success {
		m.valid = true
		m.plan = out
	}

	return m, nil
}

func (m outputModel) View() string {
	if !m.valid {
		return ""
	}
	return docStyle.Render(fmt.Sprintf(
		"source: %s\nv cruise: %f\na cruise: %f\nv target: %f\na target: %f\nv target future: %f\nhas lead: %t\nlead distance: %f\nlead velocity: %f\nfcw: %t\nspeed camera target: %f\nspeed camera distance: %f\nprocessing delay: %f",
		m.plan.LongitudinalPlanSource().String(),
		m.plan.VCruise(),
		m.plan.ACruise(),
		m.plan.VTarget(),
		m.plan.ATarget(),
		m.plan.VTargetFuture(),
		m.plan.HasLead(),
		m.plan.DRel1(),
		m.plan.VRel1(),
		m.plan.Fcw(),
		m.plan.TargetSpeedCamera(),
		m.plan.TargetSpeedCameraDist(),
		m.plan.ProcessingDelay(),
	) + "\n")
}
