// Package dashboard is the sidebar-navigated main screen shown once
// onboarding completes: the simulated smart scan, live system status,
// the cleanup target catalog, and an about pane.
package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/macsweep/macsweep/internal/config"
	"github.com/macsweep/macsweep/internal/scan"
)

// ─── Section enumeration ─────────────────────────────────────────────────────

// Section identifies one of the sidebar entries.
type Section int

const (
	SectionScan Section = iota
	SectionStatus
	SectionTargets
	SectionAbout
)

// SectionNames is the sidebar label for each section.
var SectionNames = []string{"Smart Scan", "System Status", "Cleanup Targets", "About"}

// ─── Messages ────────────────────────────────────────────────────────────────

type scanTickMsg time.Time

type metricsTickMsg time.Time

type metricsMsg struct {
	metrics *SystemMetrics
	err     error
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea model for the dashboard. It works standalone (the
// status subcommand) and embedded behind the onboarding shell.
type Model struct {
	Section Section
	Width   int
	Height  int

	sim     *scan.Sim
	prog    progress.Model
	metrics *SystemMetrics
	targets []config.CleanTarget
	refresh time.Duration

	quitting bool
	err      error
}

// New creates a dashboard using the given settings and target catalog.
func New(settings config.Settings, targets []config.CleanTarget) Model {
	refresh := settings.StatusRefresh
	if refresh <= 0 {
		refresh = time.Second
	}
	return Model{
		Width:   80,
		Height:  24,
		sim:     scan.NewSim(settings.ScanStep, settings.ScanInterval),
		prog:    progress.New(progress.WithDefaultGradient()),
		targets: targets,
		refresh: refresh,
	}
}

// ─── Commands ────────────────────────────────────────────────────────────────

func (m Model) collectMetrics() tea.Cmd {
	return func() tea.Msg {
		metrics, err := CollectMetrics()
		return metricsMsg{metrics: metrics, err: err}
	}
}

func (m Model) metricsTick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return metricsTickMsg(t)
	})
}

func (m Model) scanTick() tea.Cmd {
	return tea.Tick(m.sim.Interval(), func(t time.Time) tea.Msg {
		return scanTickMsg(t)
	})
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	// Collect immediately; the first metricsMsg starts the refresh loop.
	return m.collectMetrics()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.prog.Width = m.contentWidth() - 6
		if m.prog.Width > 60 {
			m.prog.Width = 60
		}
		if m.prog.Width < 10 {
			m.prog.Width = 10
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case metricsTickMsg:
		return m, m.collectMetrics()

	case metricsMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.metrics = msg.metrics
		}
		return m, m.metricsTick()

	case scanTickMsg:
		if !m.sim.Running() {
			return m, nil
		}
		m.sim.Step()
		if m.sim.Running() {
			return m, m.scanTick()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.Section > 0 {
			m.Section--
		}

	case "down", "j":
		if int(m.Section) < len(SectionNames)-1 {
			m.Section++
		}

	case "tab":
		m.Section = (m.Section + 1) % Section(len(SectionNames))

	case "1":
		m.Section = SectionScan
	case "2":
		m.Section = SectionStatus
	case "3":
		m.Section = SectionTargets
	case "4":
		m.Section = SectionAbout

	case "s", "enter":
		if m.Section == SectionScan && !m.sim.Running() {
			m.sim.Start()
			return m, m.scanTick()
		}

	case "r":
		if m.Section == SectionScan && !m.sim.Running() {
			m.sim.Reset()
		}
	}

	return m, nil
}

// View delegates to view.go renderView.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// Scanning reports whether the simulated scan is in flight.
func (m Model) Scanning() bool { return m.sim.Running() }

// ScanProgress returns the simulated scan progress in [0, 1].
func (m Model) ScanProgress() float64 { return m.sim.Progress() }

const sidebarWidth = 20

func (m Model) contentWidth() int {
	w := m.Width - sidebarWidth - 4
	if w < 30 {
		w = 30
	}
	return w
}
