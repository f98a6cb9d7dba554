package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/macsweep/macsweep/internal/config"
	"github.com/macsweep/macsweep/internal/ui"
)

// ─── Top-level renderer ──────────────────────────────────────────────────────

func (m Model) renderView() string {
	w := m.Width
	if w < 60 {
		w = 60
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")

	sidebar := m.renderSidebar()

	var content string
	switch m.Section {
	case SectionScan:
		content = m.renderScan()
	case SectionStatus:
		content = m.renderStatus()
	case SectionTargets:
		content = m.renderTargets()
	case SectionAbout:
		content = m.renderAbout()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", content)
	s.WriteString(body)
	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Render("  " + ui.IconDiamond + " MacSweep")

	sub := ""
	if m.metrics != nil {
		sub = lipgloss.NewStyle().
			Foreground(ui.ColorTextDim).
			Render(fmt.Sprintf("   %s free of %s",
				ui.FormatSize(int64(m.metrics.DiskFree)),
				ui.FormatSize(int64(m.metrics.DiskTotal))))
	}

	divider := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Render(strings.Repeat("─", w))

	return title + sub + "\n" + divider
}

// ─── Sidebar ─────────────────────────────────────────────────────────────────

func (m Model) renderSidebar() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary)
	inactive := lipgloss.NewStyle().
		Foreground(ui.ColorMuted)

	var lines []string
	for i, name := range SectionNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Section(i) == m.Section {
			lines = append(lines, active.Render(" "+ui.IconBlock+" "+label))
		} else {
			lines = append(lines, inactive.Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Padding(1, 0).
		Render(strings.Join(lines, "\n"))
}

// ─── Smart Scan section ──────────────────────────────────────────────────────

func (m Model) renderScan() string {
	cw := m.contentWidth()

	if m.sim.Running() {
		pct := m.sim.Progress() * 100
		bar := m.prog.ViewAs(m.sim.Progress())
		label := lipgloss.NewStyle().
			Foreground(ui.ColorText).
			Render(fmt.Sprintf("Scanning… %.0f%%", pct))
		phase := lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render(scanPhase(m.sim.Progress()))
		return lipgloss.NewStyle().Padding(1, 1).Render(
			label + "\n\n" + bar + "\n\n" + phase)
	}

	if m.sim.Done() {
		check := lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorSuccess).
			Render(ui.IconCheck + " Scan complete")
		note := lipgloss.NewStyle().
			Foreground(ui.ColorTextDim).
			Render("Review the cleanup targets to see what a cleanup would cover.")
		hint := lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render("r to reset " + ui.IconPipe + " 3 to view targets")
		return lipgloss.NewStyle().Padding(1, 1).Render(
			check + "\n\n" + note + "\n\n" + hint)
	}

	// Idle: feature card grid.
	return lipgloss.NewStyle().Padding(1, 0).Render(m.renderFeatureCards(cw))
}

// scanPhase returns a decorative phase label for the simulated scan.
func scanPhase(p float64) string {
	switch {
	case p < 0.25:
		return "Looking through caches…"
	case p < 0.5:
		return "Checking application logs…"
	case p < 0.75:
		return "Sizing up developer leftovers…"
	default:
		return "Wrapping up…"
	}
}

type featureCard struct {
	icon  string
	title string
	desc  string
}

var featureCards = []featureCard{
	{ui.IconDiamond, "Smart Scan", "One pass over caches, logs and temp files"},
	{ui.IconFolder, "Large & Old", "Find forgotten space hogs"},
	{ui.IconCheck, "Safe by default", "Nothing is deleted without review"},
	{ui.IconArrow, "Status", "Live disk, memory and CPU readings"},
}

func (m Model) renderFeatureCards(cw int) string {
	cardW := cw/2 - 3
	if cardW < 22 {
		cardW = 22
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Width(cardW).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorAccent)
	descStyle := lipgloss.NewStyle().Foreground(ui.ColorTextDim)

	var cells []string
	for _, fc := range featureCards {
		cells = append(cells, card.Render(
			titleStyle.Render(fc.icon+" "+fc.title)+"\n"+descStyle.Render(fc.desc)))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, cells[0], " ", cells[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cells[2], " ", cells[3])

	hint := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Italic(true).
		Render("  Press s to start a smart scan")

	return top + "\n" + bottom + "\n\n" + hint
}

// ─── System Status section ───────────────────────────────────────────────────

func (m Model) renderStatus() string {
	if m.err != nil {
		return lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Padding(1, 1).
			Render(ui.IconError + " " + m.err.Error())
	}
	if m.metrics == nil {
		return lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Padding(1, 1).
			Render("Collecting metrics…")
	}

	met := m.metrics
	label := lipgloss.NewStyle().Foreground(ui.ColorTextDim).Width(10)
	value := lipgloss.NewStyle().Foreground(ui.ColorText)

	barW := 24

	rows := []string{
		label.Render("Host") + value.Render(fmt.Sprintf("%s (%s %s)", met.Hostname, met.Platform, met.PlatformVersion)),
		label.Render("Uptime") + value.Render(formatUptime(met.Uptime)),
		"",
		label.Render("CPU") + ui.GradientBar(met.CPUPercent, barW) + value.Render(fmt.Sprintf(" %5.1f%%", met.CPUPercent)),
		label.Render("Memory") + ui.GradientBar(met.MemPercent, barW) + value.Render(fmt.Sprintf(" %5.1f%%  %s / %s",
			met.MemPercent, ui.FormatSize(int64(met.MemUsed)), ui.FormatSize(int64(met.MemTotal)))),
		label.Render("Disk") + ui.GradientBar(met.DiskPercent, barW) + value.Render(fmt.Sprintf(" %5.1f%%  %s free",
			met.DiskPercent, ui.FormatSize(int64(met.DiskFree)))),
	}

	return lipgloss.NewStyle().Padding(1, 1).Render(strings.Join(rows, "\n"))
}

// ─── Cleanup Targets section ─────────────────────────────────────────────────

func (m Model) renderTargets() string {
	if len(m.targets) == 0 {
		return lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Padding(1, 1).
			Render("No cleanup targets configured.")
	}

	catStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorAccent)
	nameStyle := lipgloss.NewStyle().Foreground(ui.ColorText).Width(22)
	descStyle := lipgloss.NewStyle().Foreground(ui.ColorTextDim)

	order, grouped := config.TargetsByCategory(m.targets)

	var lines []string
	for _, cat := range order {
		lines = append(lines, catStyle.Render(strings.ToUpper(cat)))
		for _, tgt := range grouped[cat] {
			risk := ui.TagRiskStyle(tgt.RiskLevel).Render(tgt.RiskLevel)
			lines = append(lines, fmt.Sprintf("  %s %s %s  %s",
				ui.IconBullet, nameStyle.Render(tgt.Name), risk, descStyle.Render(tgt.Description)))
		}
		lines = append(lines, "")
	}

	note := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Italic(true).
		Render("Catalog only — nothing is scanned or deleted.")
	lines = append(lines, note)

	return lipgloss.NewStyle().Padding(1, 1).Render(strings.Join(lines, "\n"))
}

// ─── About section ───────────────────────────────────────────────────────────

func (m Model) renderAbout() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).Render("MacSweep")
	body := lipgloss.NewStyle().Foreground(ui.ColorTextDim).Render(
		"A terminal shell for a prospective macOS disk-cleanup utility.\n" +
			"Scanning, classification and cleanup engines are not built yet;\n" +
			"what you see is the interface they will plug into.")
	return lipgloss.NewStyle().Padding(1, 1).Render(title + "\n\n" + body)
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter() string {
	hints := []string{
		"↑↓ sections",
		"1-4 jump",
	}
	if m.Section == SectionScan && !m.sim.Running() {
		hints = append(hints, "s scan")
		if m.sim.Done() {
			hints = append(hints, "r reset")
		}
	}
	hints = append(hints, "q quit")
	return ui.HintBarStyle().Render("  " + strings.Join(hints, " "+ui.IconPipe+" "))
}
