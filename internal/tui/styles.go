package tui

import (
	"github.com/MKhiriev/go-field-validator/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().Bold(true)
	helpStyle         = lipgloss.NewStyle().Faint(true)
	labelStyle        = lipgloss.NewStyle().Width(12)
	focusedLabelStyle = labelStyle.Bold(true)
	overlayBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	statusStyles = map[models.ValidationStatus]lipgloss.Style{
		models.StatusOK:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		models.StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		models.StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

func statusStyle(status models.ValidationStatus) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
