package controller

import (
	"github.com/charmbracelet/lipgloss"

	m "covmap.dev/pkg/covmap/internal/model"
)

var (
	resolvedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	notFoundStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
	ambiguousStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	titleStyle     = lipgloss.NewStyle().Bold(true)
)

func outcomeLabel(outcome m.Outcome) string {
	switch outcome {
	case m.Resolved:
		return "resolved"
	case m.NotFound:
		return "not found"
	case m.Ambiguous:
		return "ambiguous"
	default:
		return string(outcome)
	}
}

// renderOutcome returns the label for outcome, coloured when colored is set.
func renderOutcome(outcome m.Outcome, colored bool) string {
	label := outcomeLabel(outcome)
	if !colored {
		return label
	}

	switch outcome {
	case m.Resolved:
		return resolvedStyle.Render(label)
	case m.Ambiguous:
		return ambiguousStyle.Render(label)
	default:
		return notFoundStyle.Render(label)
	}
}

func renderTitle(title string, colored bool) string {
	if !colored {
		return title
	}

	return titleStyle.Render(title)
}
