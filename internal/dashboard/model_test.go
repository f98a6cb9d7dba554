package dashboard

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macsweep/macsweep/internal/config"
)

func newTestModel() Model {
	return New(config.DefaultSettings(), config.DefaultTargets())
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update must return a dashboard.Model")
	return out, cmd
}

func TestSectionNavigation(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, SectionScan, m.Section)

	m, _ = update(t, m, keyMsg("j"))
	assert.Equal(t, SectionStatus, m.Section)

	m, _ = update(t, m, keyMsg("j"))
	m, _ = update(t, m, keyMsg("j"))
	assert.Equal(t, SectionAbout, m.Section)

	// Clamped at the last entry.
	m, _ = update(t, m, keyMsg("j"))
	assert.Equal(t, SectionAbout, m.Section)

	m, _ = update(t, m, keyMsg("k"))
	assert.Equal(t, SectionTargets, m.Section)

	m, _ = update(t, m, keyMsg("1"))
	assert.Equal(t, SectionScan, m.Section)

	m, _ = update(t, m, keyMsg("tab"))
	assert.Equal(t, SectionStatus, m.Section)
}

func TestScanStartAndProgress(t *testing.T) {
	m := newTestModel()
	assert.False(t, m.Scanning())

	m, cmd := update(t, m, keyMsg("s"))
	assert.True(t, m.Scanning())
	require.NotNil(t, cmd, "starting a scan must schedule a tick")

	// Drive ticks until the simulation completes.
	ticks := 0
	for m.Scanning() {
		m, _ = update(t, m, scanTickMsg(time.Now()))
		ticks++
		require.Less(t, ticks, 1000, "scan never completed")
	}
	assert.Equal(t, 1.0, m.ScanProgress())

	// Stray ticks after completion are ignored.
	m, cmd = update(t, m, scanTickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.Equal(t, 1.0, m.ScanProgress())
}

func TestScanOnlyStartsOnScanSection(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("2"))

	m, cmd := update(t, m, keyMsg("s"))
	assert.False(t, m.Scanning())
	assert.Nil(t, cmd)
}

func TestScanResetAfterCompletion(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, keyMsg("s"))
	for m.Scanning() {
		m, _ = update(t, m, scanTickMsg(time.Now()))
	}

	m, _ = update(t, m, keyMsg("r"))
	assert.Equal(t, 0.0, m.ScanProgress())
	assert.False(t, m.Scanning())
}

func TestMetricsMsgSchedulesRefresh(t *testing.T) {
	m := newTestModel()

	met := &SystemMetrics{Hostname: "mbp", DiskTotal: 1 << 40, DiskFree: 1 << 39}
	m, cmd := update(t, m, metricsMsg{metrics: met})
	require.NotNil(t, cmd, "a metrics reading must schedule the next tick")
	assert.Equal(t, met, m.metrics)

	// A failed collection keeps the loop alive and surfaces the error.
	m, cmd = update(t, m, metricsMsg{err: assert.AnError})
	require.NotNil(t, cmd)
	assert.Error(t, m.err)
}

func TestWindowSizeClampsProgressWidth(t *testing.T) {
	m := newTestModel()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.LessOrEqual(t, m.prog.Width, 60)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.GreaterOrEqual(t, m.prog.Width, 10)
}

func TestViewRendersEachSection(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	for i := range SectionNames {
		m.Section = Section(i)
		assert.NotEmpty(t, m.View())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel()
	m, cmd := update(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}
