package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-field-validator/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	log  *logger.Logger
	opts []tea.ProgramOption
}

// New returns a TUI running forms full-screen. opts replace the default
// program options.
func New(log *logger.Logger, opts ...tea.ProgramOption) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{log: log, opts: opts}
}

// Run installs validation on form, runs it until it is submitted or
// cancelled and removes validation again. A cancelled form yields
// ErrUserQuit.
func (t *TUI) Run(ctx context.Context, form *FormModel) (Submission, error) {
	if err := form.Install(); err != nil {
		return Submission{}, err
	}
	defer form.Teardown()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.opts...)
	finalModel, runErr := tea.NewProgram(form, opts...).Run()
	if runErr != nil {
		return Submission{}, runErr
	}

	return submissionFrom(finalModel)
}

func submissionFrom(model tea.Model) (Submission, error) {
	result, ok := model.(*FormModel)
	if !ok {
		return Submission{}, tea.ErrProgramKilled
	}
	if result.cancelled || !result.submitted {
		return Submission{}, ErrUserQuit
	}
	return result.Submission(), nil
}

// RenderSubmission renders submitted values as "label: value" lines.
func RenderSubmission(s Submission) string {
	var b strings.Builder
	for _, v := range s.Values {
		b.WriteString(v.Label)
		b.WriteString(": ")
		b.WriteString(fitText(valueOrDash(v.Value), 60))
		b.WriteString("\n")
	}
	return b.String()
}
