package shell

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/macsweep/macsweep/internal/ui"
)

//go:embed assets/terms.md
var termsText string

// termsChromeHeight is the vertical space taken by the terms header and
// footer around the scrolling viewport.
const termsChromeHeight = 6

// termsModel wraps the scrolling terms-of-service pane. The pane itself
// carries no acceptance state; it only reports geometry to the onboarding
// controller after every scroll or resize.
type termsModel struct {
	vp    viewport.Model
	ready bool
}

// setSize (re)fits the viewport to the window and re-wraps the content.
func (t *termsModel) setSize(w, h int) {
	vh := h - termsChromeHeight
	if vh < 3 {
		vh = 3
	}
	if w < 20 {
		w = 20
	}
	if !t.ready {
		t.vp = viewport.New(w, vh)
		t.ready = true
	} else {
		t.vp.Width = w
		t.vp.Height = vh
	}
	t.vp.SetContent(renderTermsContent(w))
}

// edges returns the bottom edge of the end-of-content marker and the bottom
// edge of the visible area, both in lines from the top of the content. The
// marker is the line count itself: a zero-height sentinel after the last
// line.
func (t termsModel) edges() (markerBottom, viewportBottom float64) {
	return float64(t.vp.TotalLineCount()), float64(t.vp.YOffset + t.vp.Height)
}

func renderTermsContent(w int) string {
	return lipgloss.NewStyle().
		Width(w-4).
		Padding(0, 2).
		Foreground(ui.ColorText).
		Render(termsText)
}

// ─── Rendering ───────────────────────────────────────────────────────────────

func (m Model) renderTerms() string {
	w := m.width
	if w < 40 {
		w = 40
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Render("  " + ui.IconDiamond + " Terms of Service")

	divider := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Render(strings.Repeat("─", w))

	var s strings.Builder
	s.WriteString(title)
	s.WriteString("\n")
	s.WriteString(divider)
	s.WriteString("\n")
	s.WriteString(m.terms.vp.View())
	s.WriteString("\n")
	s.WriteString(divider)
	s.WriteString("\n")
	s.WriteString(m.renderTermsFooter())
	return s.String()
}

func (m Model) renderTermsFooter() string {
	if m.ctrl.HasReachedBottom() {
		ready := lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorSuccess).
			Render("  " + ui.IconCheck + " You've read to the end")
		hints := ui.HintBarStyle().Render(
			"  a agree and continue " + ui.IconPipe + " q quit")
		return ready + "\n" + hints
	}

	pct := m.terms.vp.ScrollPercent() * 100
	prompt := lipgloss.NewStyle().
		Foreground(ui.ColorWarning).
		Render(fmt.Sprintf("  ↓ Scroll to the end to continue (%.0f%%)", pct))
	hints := ui.HintBarStyle().Render(
		"  ↑↓ scroll " + ui.IconPipe + " PgDn faster " + ui.IconPipe + " q quit")
	return prompt + "\n" + hints
}
