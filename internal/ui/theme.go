// Package ui holds the shared visual vocabulary of the terminal interface:
// color tokens, icons, and small style/format helpers used by every view.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ─── Color tokens ────────────────────────────────────────────────────────────

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorCoral   = lipgloss.AdaptiveColor{Light: "#e11d48", Dark: "#fb7185"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorText    = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	ColorTextDim = lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#9ca3af"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconDiamond = "◆"
	IconChevron = "›"
	IconBullet  = "•"
	IconBlock   = "▌"
	IconFolder  = "▸"
	IconCheck   = "✓"
	IconWarning = "!"
	IconError   = "✗"
	IconPipe    = "│"
	IconArrow   = "→"
)

// ─── Styles ──────────────────────────────────────────────────────────────────

// HintBarStyle styles the keybinding hint line shown at the bottom of every
// full-screen view.
func HintBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// TagWarningStyle styles short inline warning tags.
func TagWarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1f2937")).
		Background(ColorWarning).
		Bold(true)
}

// TagRiskStyle styles a risk-level tag for a cleanup target.
func TagRiskStyle(risk string) lipgloss.Style {
	color := ColorSuccess
	switch risk {
	case "medium":
		color = ColorWarning
	case "high":
		color = ColorError
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// ─── Formatting helpers ──────────────────────────────────────────────────────

// FormatSize renders a byte count as a human-readable size with one decimal
// place, using binary units.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// GradientBar renders a horizontal usage bar of the given width, filled in
// proportion to pct (0–100) and colored from green through yellow and orange
// to red as the percentage climbs.
func GradientBar(pct float64, width int) string {
	if width < 1 {
		width = 1
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	color := ColorSuccess
	switch {
	case pct >= 90:
		color = ColorError
	case pct >= 75:
		color = lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"}
	case pct >= 50:
		color = ColorWarning
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Repeat("░", width-filled))
	return bar + rest
}
