package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/macsweep/macsweep/internal/ui"
)

func (m Model) renderWelcome() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Render(ui.IconDiamond + " Welcome to MacSweep")

	tagline := lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Render("Reclaim disk space on your Mac, carefully.")

	bullet := lipgloss.NewStyle().Foreground(ui.ColorAccent)
	text := lipgloss.NewStyle().Foreground(ui.ColorText)

	features := []string{
		"Smart scan across caches, logs and temp files",
		"Catalog of cleanup targets with risk levels",
		"Live disk, memory and CPU status",
		"Nothing is ever deleted without your review",
	}

	var list []string
	for _, f := range features {
		list = append(list, bullet.Render("  "+ui.IconBullet+" ")+text.Render(f))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Padding(1, 3).
		Render(title + "\n" + tagline + "\n\n" + strings.Join(list, "\n"))

	hints := ui.HintBarStyle().Render("Enter continue " + ui.IconPipe + " q quit")

	content := card + "\n\n" + hints

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
