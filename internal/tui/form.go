// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-field-validator/internal/app"
	"github.com/MKhiriev/go-field-validator/internal/logger"
	"github.com/MKhiriev/go-field-validator/internal/validators"
	"github.com/MKhiriev/go-field-validator/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SubmittedValue is the final text of one form field.
type SubmittedValue struct {
	Name  string
	Label string
	Value string
}

// Submission is what a submitted form hands back: field values in form
// order and the validation result they were accepted with.
type Submission struct {
	Values []SubmittedValue
	Result *validators.Result
}

// Value returns the submitted value of the named field.
func (s Submission) Value(name string) (string, bool) {
	for _, v := range s.Values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// FormModel is a bubbletea model of a validated form. Fields are added with
// AddField before the form is installed; every change of any field
// re-validates the whole form and refreshes the per-field messages and the
// overall status line.
type FormModel struct {
	title   string
	toolkit *validators.Toolkit
	log     *logger.Logger

	vctx   *validators.Context
	fields []*Field
	focus  int

	result   *validators.Result
	messages map[validators.Field][]*validators.Result

	status    string
	buildInfo models.AppBuildInfo
	showInfo  bool

	installed bool
	submitted bool
	cancelled bool
}

// NewFormModel returns an empty form. A nil toolkit is replaced with one
// logging through log.
func NewFormModel(title string, toolkit *validators.Toolkit, log *logger.Logger) (*FormModel, error) {
	if log == nil {
		log = logger.Nop()
	}
	if toolkit == nil {
		toolkit = validators.NewToolkit(log)
	}

	m := &FormModel{
		title:   title,
		toolkit: toolkit,
		log:     log,
	}

	vctx, err := validators.NewContext(m.onResult)
	if err != nil {
		return nil, fmt.Errorf("create validation context: %w", err)
	}
	m.vctx = vctx
	return m, nil
}

// WithBuildInfo sets the metadata shown on the f1 screen.
func (m *FormModel) WithBuildInfo(info models.AppBuildInfo) *FormModel {
	m.buildInfo = info
	return m
}

// AddField appends f to the form with its validators. Adding a field again
// replaces its validators and keeps its position.
func (m *FormModel) AddField(f *Field, vs ...validators.Validator) error {
	if f == nil {
		return validators.ErrNilField
	}

	before := m.vctx.Len()
	if err := m.vctx.SetupField(f, vs...); err != nil {
		return fmt.Errorf("add field %q: %w", f.Name(), err)
	}
	if m.vctx.Len() > before {
		m.fields = append(m.fields, f)
	}
	return nil
}

// Fields returns the form fields in display order.
func (m *FormModel) Fields() []*Field {
	out := make([]*Field, len(m.fields))
	copy(out, m.fields)
	return out
}

// Install wires validation to every field, runs the first validation pass
// and focuses the first field.
func (m *FormModel) Install() error {
	if len(m.fields) == 0 {
		return ErrNoFields
	}
	if err := m.toolkit.SetupContext(m.vctx); err != nil {
		return fmt.Errorf("install form validation: %w", err)
	}

	result, err := m.vctx.Validate()
	if err != nil {
		m.Teardown()
		return fmt.Errorf("validate form: %w", err)
	}
	m.onResult(result)

	m.installed = true
	m.setFocus(0)
	m.log.Debug().Str("form", m.title).Int("fields", len(m.fields)).Msg("form installed")
	return nil
}

// Teardown removes validation from every field.
func (m *FormModel) Teardown() {
	removed := 0
	for _, f := range m.fields {
		n, err := m.toolkit.RemoveValidation(f)
		if err != nil {
			m.log.Error().Err(err).Str("field", f.Name()).Msg("remove field validation")
			continue
		}
		removed += n
	}
	m.installed = false
	m.log.Debug().Str("form", m.title).Int("removed", removed).Msg("form validation removed")
}

func (m *FormModel) onResult(result *validators.Result) {
	m.result = result
	m.messages = make(map[validators.Field][]*validators.Result)
	for _, leaf := range result.Leaves() {
		if leaf.Status() == models.StatusOK || leaf.Field() == nil {
			continue
		}
		m.messages[leaf.Field()] = append(m.messages[leaf.Field()], leaf)
	}
}

// Result returns the latest validation result, or nil before Install.
func (m *FormModel) Result() *validators.Result {
	return m.result
}

// Status returns the overall status of the form.
func (m *FormModel) Status() models.ValidationStatus {
	if m.result == nil {
		return models.StatusOK
	}
	return m.result.Status()
}

// Submitted reports whether the form was submitted.
func (m *FormModel) Submitted() bool { return m.submitted }

// Cancelled reports whether the user left the form without submitting.
func (m *FormModel) Cancelled() bool { return m.cancelled }

// Submission collects the current field values.
func (m *FormModel) Submission() Submission {
	values := make([]SubmittedValue, 0, len(m.fields))
	for _, f := range m.fields {
		text, err := f.Text()
		if err != nil {
			m.log.Error().Err(err).Str("field", f.Name()).Msg("read submitted value")
		}
		values = append(values, SubmittedValue{Name: f.Name(), Label: f.Label(), Value: text})
	}
	return Submission{Values: values, Result: m.result}
}

func (m *FormModel) setFocus(i int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	m.fields[m.focus].Blur()
	m.focus = (i + len(m.fields)) % len(m.fields)
	return m.fields[m.focus].Focus()
}

// Init implements tea.Model.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case copiedMsg:
		m.status = app.MsgReportCopied
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = fmt.Sprintf("%s: %v", app.MsgCopyFailed, msg.err)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	if len(m.fields) == 0 {
		return m, nil
	}
	return m, m.fields[m.focus].Update(msg)
}

func (m *FormModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showInfo {
		if key.Matches(msg, keys.info) || msg.String() == "esc" {
			m.showInfo = false
			return m, nil
		}
		if msg.String() != "ctrl+c" {
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, keys.cancel):
		m.cancelled = true
		m.Teardown()
		return m, tea.Quit
	case key.Matches(msg, keys.info):
		m.showInfo = true
		return m, nil
	case key.Matches(msg, keys.next):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, keys.prev):
		return m, m.setFocus(m.focus - 1)
	case key.Matches(msg, keys.copy):
		if m.result == nil {
			m.status = app.MsgNothingToCopy
			return m, nil
		}
		return m, cmdCopyToClipboard(RenderReport(m.result))
	case key.Matches(msg, keys.submit):
		if m.Status() != models.StatusOK {
			m.status = app.MsgFormHasErrors
			m.log.Debug().Str("form", m.title).Str("status", m.Status().String()).Msg("submit rejected")
			return m, nil
		}
		m.submitted = true
		m.Teardown()
		return m, tea.Quit
	}

	if len(m.fields) == 0 {
		return m, nil
	}
	return m, m.fields[m.focus].Update(msg)
}

// View implements tea.Model.
func (m *FormModel) View() string {
	if m.showInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	for i, f := range m.fields {
		cursor, label := "  ", labelStyle.Render(f.Label())
		if i == m.focus {
			cursor, label = "> ", focusedLabelStyle.Render(f.Label())
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cursor, label, " ", f.View()))
		b.WriteString("\n")

		for _, r := range m.messages[f] {
			b.WriteString("    ")
			b.WriteString(statusStyle(r.Status()).Render("• " + r.Message()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\nСтатус формы: ")
	b.WriteString(statusStyle(m.Status()).Render(m.Status().String()))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage(m.title, b.String(), "tab: след. поле │ shift+tab: пред. поле │ enter: отправить │ ctrl+y: копировать отчёт │ f1: о программе")
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
