package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agegold/openpilot-085/cereal/custom"
)

type SettingType int

const (
	String SettingType = iota
	Float
	Bool
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	settingsSend
)

type settingsItem struct {
	title, desc string
	state       settingsState
	MessageType custom.PlannerInputType
	Type        SettingType
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == settingsInput {
			switch msg.Type {
			case tea.KeyEnter:
				m.state = showSettingsMenu
				m.sendInput(mm)
				return m, nil
			case tea.KeyEsc:
				m.state = showSettingsMenu
				return m, nil
			}
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.state = it.state
			switch m.state {
			case settingsExit:
				m.state = showSettingsMenu
				mm.state = showMenu
			case settingsInput:
				m.prompt = it.Title()
				m.textInput.SetValue("")
				m.textInput.Focus()
			case settingsSend:
				m.state = showSettingsMenu
				mm.state = showMenu
				out, input := mm.pub.NewMessage(true)
				input.SetType(it.MessageType)
				mm.pub.Send(out)
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *settingsModel) sendInput(mm *uiModel) {
	out, input := mm.pub.NewMessage(true)
	input.SetType(m.selectedItem.MessageType)

	result := m.textInput.Value()
	switch m.selectedItem.Type {
	case String:
		if err := input.SetStr(result); err != nil {
			panic(err)
		}
	case Bool:
		switch result {
		case "true":
			input.SetBool(true)
		case "false":
			input.SetBool(false)
		}
	case Float:
		val, err := strconv.ParseFloat(result, 32)
		if err != nil {
			panic(err)
		}
		input.SetFloat(float32(val))
	}
	mm.pub.Send(out)
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			"(esc to cancel)",
		) + "\n")
	default:
		return docStyle.Render(m.list.View())
	}
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title:       "Model Long Control Enabled",
			desc:        "When enabled the planner will also consider the driving model's own speed profile",
			MessageType: custom.PlannerInputType_setModelLong,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Speed Camera Control Enabled",
			desc:        "When enabled the planner will publish speed camera targets read from the map data params",
			MessageType: custom.PlannerInputType_setSpeedCameraControl,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Speed Camera Offset",
			desc:        "The offset in kph that gets applied to a speed camera limit to determine a target speed",
			MessageType: custom.PlannerInputType_setSpeedCameraOffset,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Record Drive",
			desc:        "When enabled each planning cycle is appended to the drive file",
			MessageType: custom.PlannerInputType_setRecordDrive,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Record Path",
			desc:        "The sqlite drive file recorded drives are appended to",
			MessageType: custom.PlannerInputType_setRecordPath,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Set Log Level",
			desc:        "Modify how verbose logging will be for the planner",
			MessageType: custom.PlannerInputType_setLogLevel,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Save Settings",
			desc:        "Persists any updates to the settings across reboots",
			MessageType: custom.PlannerInputType_saveSettings,
			state:       settingsSend,
		},
		settingsItem{
			title:       "Reload Settings",
			desc:        "Discards unsaved changes and reloads the persisted settings",
			MessageType: custom.PlannerInputType_reloadSettings,
			state:       settingsSend,
		},
		settingsItem{
			title:       "Load Recommended Settings",
			desc:        "Applies the recommended settings without persisting them",
			MessageType: custom.PlannerInputType_loadRecommendedSettings,
			state:       settingsSend,
		},
		settingsItem{
			title:       "Load Default Settings",
			desc:        "Applies the default settings without persisting them",
			MessageType: custom.PlannerInputType_loadDefaultSettings,
			state:       settingsSend,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	ti := textinput.New()
	ti.CharLimit = 128
	m := settingsModel{list: list.New(items, listDelegate, 0, 0), textInput: ti}
	m.list.Title = "Planner Settings"
	return m
}
