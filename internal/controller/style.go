package controller

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

// palette colours outcome labels. A disabled palette returns text unchanged.
type palette struct {
	enabled bool
	pass    lipgloss.Style
	fail    lipgloss.Style
	err     lipgloss.Style
}

func newPalette(w io.Writer, enabled bool) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		enabled: enabled,
		pass:    r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	}
}

func (p palette) paint(outcome m.Outcome, text string) string {
	if !p.enabled {
		return text
	}

	switch outcome {
	case m.Passed:
		return p.pass.Render(text)
	case m.Failed:
		return p.fail.Render(text)
	default:
		return p.err.Render(text)
	}
}

// summaryOutcome picks the colour of a counts row.
func summaryOutcome(counts m.RunSummary) m.Outcome {
	switch {
	case counts.Error > 0:
		return m.Errored
	case counts.Failure > 0:
		return m.Failed
	default:
		return m.Passed
	}
}
