package tui

import (
	"testing"

	"github.com/MKhiriev/go-field-validator/internal/validators"
	"github.com/MKhiriev/go-field-validator/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// countChanges registers a listener counting change notifications of f.
func countChanges(f *Field) *int {
	n := 0
	f.AddChangeListener(validators.ChangeListenerFunc(func(validators.Field) { n++ }))
	return &n
}

func TestField_ZeroValueUnsupported(t *testing.T) {
	var f Field

	_, err := f.Text()
	require.ErrorIs(t, err, validators.ErrUnsupportedField)
	require.ErrorIs(t, f.SetValue("x"), validators.ErrUnsupportedField)
	assert.Nil(t, f.Update(runes("x")))
	assert.Equal(t, "-", f.View())
}

func TestField_ZeroValueRejectedBySetup(t *testing.T) {
	f := &Field{}
	err := validators.NewToolkit(nil).SetupField(f, nil, validators.NewNonEmptyValidator())
	require.ErrorIs(t, err, validators.ErrUnsupportedField)
	assert.Empty(t, f.ChangeListeners())
}

func TestTextInputField_SetValue(t *testing.T) {
	f := NewTextInputField("name", "Имя", 20)
	changes := countChanges(f)

	require.NoError(t, f.SetValue("Alice"))
	text, err := f.Text()
	require.NoError(t, err)
	assert.Equal(t, "Alice", text)
	assert.Equal(t, 1, *changes)

	require.NoError(t, f.SetValue("Alice"))
	assert.Equal(t, 1, *changes)
}

func TestTextInputField_Update(t *testing.T) {
	f := NewTextInputField("name", "Имя", 20)
	changes := countChanges(f)

	f.Update(runes("x"))
	assert.Zero(t, *changes, "unfocused input ignores keys")

	f.Focus()
	assert.True(t, f.Focused())
	f.Update(runes("Bob"))

	text, _ := f.Text()
	assert.Equal(t, "Bob", text)
	assert.Equal(t, 1, *changes)

	f.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 1, *changes)

	f.Blur()
	assert.False(t, f.Focused())
}

func TestTextAreaField(t *testing.T) {
	f := NewTextAreaField("notes", "Заметки", 30, 3)
	changes := countChanges(f)

	require.NoError(t, f.SetValue("line one\nline two"))
	text, err := f.Text()
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)
	assert.Equal(t, 1, *changes)

	f.Focus()
	f.Update(runes("!"))
	text, _ = f.Text()
	assert.Equal(t, "line one\nline two!", text)
	assert.Equal(t, 2, *changes)
}

func TestChoiceField(t *testing.T) {
	f := NewChoiceField("type", "Тип", "личный", "рабочий", "другой")
	changes := countChanges(f)

	text, err := f.Text()
	require.NoError(t, err)
	assert.Equal(t, "личный", text)

	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Zero(t, *changes, "unfocused choice ignores keys")

	f.Focus()
	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	text, _ = f.Text()
	assert.Equal(t, "рабочий", text)

	f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	text, _ = f.Text()
	assert.Equal(t, "другой", text)
	assert.Equal(t, 3, *changes)

	require.NoError(t, f.SetValue("личный"))
	assert.Equal(t, 4, *changes)

	err = f.SetValue("домашний")
	require.ErrorIs(t, err, ErrUnknownOption)
	text, _ = f.Text()
	assert.Equal(t, "личный", text)

	assert.Contains(t, f.View(), "(•) личный")
}

func TestChoiceField_NoOptions(t *testing.T) {
	f := NewChoiceField("empty", "Пусто")

	text, err := f.Text()
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Equal(t, "-", f.View())
}

func TestField_DrivesFieldValidation(t *testing.T) {
	f := NewTextInputField("age", "Возраст", 10)
	numeric, err := validators.NewNumericValidator(validators.WithNumberKind(models.Int8))
	require.NoError(t, err)

	var got *validators.Result
	require.NoError(t, validators.NewToolkit(nil).SetupField(f, func(r *validators.Result) { got = r }, numeric))

	f.Focus()
	f.Update(runes("12a"))
	require.NotNil(t, got)
	assert.Equal(t, models.StatusError, got.Status())
	assert.Equal(t, "Value 12a should be a int8 number!", got.Message())

	require.NoError(t, f.SetValue("12"))
	assert.Equal(t, models.StatusOK, got.Status())
}
