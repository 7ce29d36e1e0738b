// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-field-validator/internal/validators"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldKind int

const (
	kindUnsupported fieldKind = iota
	kindTextInput
	kindTextArea
	kindChoice
)

// Field is a validatable form widget: a single-line input, a multi-line area
// or a choice between fixed options. Build it with one of the New*Field
// constructors; the zero value has no widget and every read of its text
// fails with validators.ErrUnsupportedField.
//
// Field notifies its change listeners whenever its text changes, whether
// from user input passed to Update or from SetValue.
type Field struct {
	validators.ListenerSet

	name  string
	label string
	kind  fieldKind

	input textinput.Model
	area  textarea.Model

	options  []string
	selected int
	focused  bool
}

// NewTextInputField returns a single-line input of the given width.
func NewTextInputField(name, label string, width int) *Field {
	input := textinput.New()
	input.Width = width
	input.Prompt = ""

	return &Field{name: name, label: label, kind: kindTextInput, input: input}
}

// NewTextAreaField returns a multi-line input. Enter is reserved for form
// submission, new lines are inserted with alt+enter.
func NewTextAreaField(name, label string, width, height int) *Field {
	area := textarea.New()
	area.SetWidth(width)
	area.SetHeight(height)
	area.ShowLineNumbers = false
	area.Prompt = ""
	area.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	return &Field{name: name, label: label, kind: kindTextArea, area: area}
}

// NewChoiceField returns a field whose text is one of options. The first
// option is selected initially.
func NewChoiceField(name, label string, options ...string) *Field {
	opts := make([]string, len(options))
	copy(opts, options)

	return &Field{name: name, label: label, kind: kindChoice, options: opts}
}

// Name returns the field name used in results and submissions.
func (f *Field) Name() string {
	return f.name
}

// Label returns the human-readable caption.
func (f *Field) Label() string {
	return f.label
}

// Text returns the current text of the widget.
func (f *Field) Text() (string, error) {
	switch f.kind {
	case kindTextInput:
		return f.input.Value(), nil
	case kindTextArea:
		return f.area.Value(), nil
	case kindChoice:
		if len(f.options) == 0 {
			return "", nil
		}
		return f.options[f.selected], nil
	default:
		return "", validators.ErrUnsupportedField
	}
}

// SetValue replaces the text and notifies listeners if it changed. A choice
// field only accepts one of its options.
func (f *Field) SetValue(value string) error {
	before, err := f.Text()
	if err != nil {
		return err
	}

	switch f.kind {
	case kindTextInput:
		f.input.SetValue(value)
	case kindTextArea:
		f.area.SetValue(value)
	case kindChoice:
		i := f.optionIndex(value)
		if i < 0 {
			return fmt.Errorf("%w: %q is not one of %s", ErrUnknownOption, value, strings.Join(f.options, ", "))
		}
		f.selected = i
	}

	f.notifyIfChanged(before)
	return nil
}

// Update forwards msg to the widget and notifies listeners if the text
// changed as a result.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	before, err := f.Text()
	if err != nil {
		return nil
	}

	var cmd tea.Cmd
	switch f.kind {
	case kindTextInput:
		f.input, cmd = f.input.Update(msg)
	case kindTextArea:
		f.area, cmd = f.area.Update(msg)
	case kindChoice:
		f.updateChoice(msg)
	}

	f.notifyIfChanged(before)
	return cmd
}

func (f *Field) updateChoice(msg tea.Msg) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !f.focused || len(f.options) == 0 {
		return
	}

	switch {
	case key.Matches(keyMsg, keys.prevOption):
		f.selected = (f.selected - 1 + len(f.options)) % len(f.options)
	case key.Matches(keyMsg, keys.nextOption):
		f.selected = (f.selected + 1) % len(f.options)
	}
}

func (f *Field) notifyIfChanged(before string) {
	after, err := f.Text()
	if err != nil || after == before {
		return
	}
	f.Notify(f)
}

func (f *Field) optionIndex(value string) int {
	for i, opt := range f.options {
		if opt == value {
			return i
		}
	}
	return -1
}

// Focus gives the widget keyboard focus.
func (f *Field) Focus() tea.Cmd {
	f.focused = true
	switch f.kind {
	case kindTextInput:
		return f.input.Focus()
	case kindTextArea:
		return f.area.Focus()
	}
	return nil
}

// Blur removes keyboard focus.
func (f *Field) Blur() {
	f.focused = false
	switch f.kind {
	case kindTextInput:
		f.input.Blur()
	case kindTextArea:
		f.area.Blur()
	}
}

// Focused reports whether the widget has keyboard focus.
func (f *Field) Focused() bool {
	return f.focused
}

// View renders the widget.
func (f *Field) View() string {
	switch f.kind {
	case kindTextInput:
		return "[" + f.input.View() + "]"
	case kindTextArea:
		return f.area.View()
	case kindChoice:
		return f.choiceView()
	default:
		return "-"
	}
}

func (f *Field) choiceView() string {
	if len(f.options) == 0 {
		return "-"
	}

	parts := make([]string, len(f.options))
	for i, opt := range f.options {
		if i == f.selected {
			parts[i] = "(•) " + opt
			continue
		}
		parts[i] = "( ) " + opt
	}
	out := strings.Join(parts, "  ")
	if f.focused {
		out = "< " + out + " >"
	}
	return out
}
