package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agegold/openpilot-085/cereal"
	"github.com/agegold/openpilot-085/cereal/custom"
	"github.com/agegold/openpilot-085/cereal/log"
	ms "github.com/agegold/openpilot-085/settings"
)

type mainState int

const (
	showMenu mainState = iota
	showSettings
	showOutput
	showStatus
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(50*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list              list.Model
	state             mainState
	settings          settingsModel
	output            outputModel
	status            statusModel
	pub               *cereal.Publisher[custom.PlannerIn]
	planSub           *cereal.Subscriber[log.LongitudinalPlan]
	extendedSub       *cereal.Subscriber[custom.PlannerExtended]
	extendedData      custom.PlannerExtended
	extendedDataValid bool
}

type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel() uiModel {
	items := []list.Item{
		item{title: "Settings", desc: "Modify settings of an active instance of the planner", state: showSettings},
		item{title: "Watch", desc: "Watch the live plan output from the planner", state: showOutput},
		item{title: "Status", desc: "Watch recording and settings state from the planner", state: showStatus},
	}

	listDelegate := list.NewDefaultDelegate()
	pub := cereal.NewPublisher("plannerIn", cereal.PlannerInCreator)
	planSub := cereal.NewSubscriber("longitudinalPlan", cereal.LongitudinalPlanReader, true)
	extendedSub := cereal.NewSubscriber("plannerExtended", cereal.PlannerExtendedReader, true)
	m := uiModel{list: list.New(items, listDelegate, 0, 0), settings: getSettingsModel(), pub: &pub, planSub: &planSub, extendedSub: &extendedSub}
	m.list.Title = "Planner Actions"
	return m
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			m.state = it.state
			return m, nil
		}
		if msg.Type == tea.KeyEsc && (m.state == showOutput || m.state == showStatus) {
			m.state = showMenu
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.settings, _ = m.settings.Update(msg, &m)
		m.output, _ = m.output.Update(msg, &m)
		m.status, _ = m.status.Update(msg, &m)
	case TickMsg:
		extendedData, success := m.extendedSub.Read()
		if success {
			m.extendedData = extendedData
			settingsData, _ := extendedData.Settings()
			ms.Settings.Unmarshal([]byte(settingsData))
			m.extendedDataValid = true
		}
		m.output, _ = m.output.Update(msg, &m)
		m.status, _ = m.status.Update(msg, &m)
		m.settings, _ = m.settings.Update(msg, &m)
		return m, tickEvery()
	}

	var cmd tea.Cmd
	switch m.state {
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	case showOutput:
		m.output, cmd = m.output.Update(msg, &m)
	case showStatus:
		m.status, cmd = m.status.Update(msg, &m)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showSettings:
		return m.settings.View()
	case showOutput:
		return m.output.View()
	case showStatus:
		return m.status.View()
	}
	return docStyle.Render(m.list.View())
}

func interactive() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
