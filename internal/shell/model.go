// Package shell is the top-level bubbletea program: it renders whichever
// onboarding stage the controller reports and, once onboarding completes,
// hands the screen to the dashboard.
package shell

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/macsweep/macsweep/internal/config"
	"github.com/macsweep/macsweep/internal/dashboard"
	"github.com/macsweep/macsweep/internal/onboarding"
)

// Model drives the onboarding flow. All state decisions live in the
// controller; this model only translates terminal events into controller
// calls and picks the view for the current stage.
type Model struct {
	ctrl *onboarding.Controller
	dash dashboard.Model
	log  *zap.Logger

	terms    termsModel
	width    int
	height   int
	quitting bool
}

// New builds the shell around an onboarding controller.
func New(ctrl *onboarding.Controller, settings config.Settings, targets []config.CleanTarget, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	return Model{
		ctrl: ctrl,
		dash: dashboard.New(settings, targets),
		log:  log,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.terms.setSize(msg.Width, msg.Height)
		if m.ctrl.Stage() == onboarding.StageTerms {
			// A resize can reveal the end of short terms without scrolling.
			m.reportScroll()
		}
		next, cmd := m.dash.Update(msg)
		m.dash = next.(dashboard.Model)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)

	default:
		// Ticks and metric readings belong to the dashboard.
		if m.ctrl.Stage() == onboarding.StageMain {
			next, cmd := m.dash.Update(msg)
			m.dash = next.(dashboard.Model)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ctrl.Stage() {

	case onboarding.StageWelcome:
		switch msg.String() {
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter", " ":
			m.ctrl.AdvanceFromWelcome()
			if m.width > 0 {
				m.terms.setSize(m.width, m.height)
			}
			// First layout report; terms shorter than the window satisfy
			// the gate immediately.
			m.reportScroll()
		}
		return m, nil

	case onboarding.StageTerms:
		switch msg.String() {
		case "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "a", "enter":
			if err := m.ctrl.AdvanceFromTerms(); err != nil {
				m.log.Debug("agree pressed before reading terms", zap.Error(err))
				return m, nil
			}
			return m, m.dash.Init()
		}
		var cmd tea.Cmd
		m.terms.vp, cmd = m.terms.vp.Update(msg)
		m.reportScroll()
		return m, cmd

	default: // StageMain
		next, cmd := m.dash.Update(msg)
		m.dash = next.(dashboard.Model)
		return m, cmd
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.ctrl.Stage() {
	case onboarding.StageWelcome:
		return m.renderWelcome()
	case onboarding.StageTerms:
		return m.renderTerms()
	default:
		return m.dash.View()
	}
}

// reportScroll feeds the current terms geometry to the controller. The
// controller ignores it outside the terms stage.
func (m Model) reportScroll() {
	marker, bottom := m.terms.edges()
	m.ctrl.ReportScrollPosition(marker, bottom)
}
