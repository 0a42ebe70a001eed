package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agegold/openpilot-085/cereal/custom"
	ms "github.com/agegold/openpilot-085/settings"
)

type statusModel struct {
	extended custom.PlannerExtended
	valid    bool
}

func (m statusModel) Update(msg tea.Msg, mm *uiModel) (statusModel, tea.Cmd) {
	m.valid = mm.extendedDataValid
	m.extended = mm.extendedData

	return m, nil
}

func (m statusModel) View() string {
	if !m.valid {
		return ""
	}
	session, err := m.extended.SessionId()
	if err != nil {
		session = ""
	}
	return docStyle.Render(fmt.Sprintf(
		"recording: %t\nsession: %s\nmodel long active: %t\nrecord path: %s\nspeed camera control: %t\nspeed camera offset: %f\nlog level: %s",
		m.extended.Recording(),
		session,
		m.extended.ModelLongActive(),
		ms.Settings.RecordPath,
		ms.Settings.SpeedCameraControlEnabled,
		ms.Settings.SpeedCameraOffset,
		ms.Settings.LogLevel,
	) + "\n")
}
