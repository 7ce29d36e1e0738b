package client

import (
	"fmt"

	"github.com/MKhiriev/go-field-validator/internal/config"
	"github.com/MKhiriev/go-field-validator/internal/logger"
	"github.com/MKhiriev/go-field-validator/internal/tui"
	"github.com/MKhiriev/go-field-validator/internal/validators"
	"github.com/MKhiriev/go-field-validator/models"
)

// Patterns of the regex-validated contact form fields.
const (
	CodePattern  = `[A-Z]{3}-[0-9]{4}`
	NotesPattern = `[^<>]*`
)

// Contact form field names.
const (
	FieldName   = "name"
	FieldEmail  = "email"
	FieldPhone  = "phone"
	FieldAge    = "age"
	FieldAmount = "amount"
	FieldCode   = "code"
	FieldKind   = "kind"
	FieldNotes  = "notes"
)

var contactKinds = []string{"личный", "рабочий", "другой"}

// NewContactForm builds the demo contact form. The amount field is checked
// by a numeric validator configured from cfg.Numeric.
func NewContactForm(cfg *config.StructuredConfig, defaults validators.Defaults, toolkit *validators.Toolkit, log *logger.Logger) (*tui.FormModel, error) {
	form, err := tui.NewFormModel(cfg.App.Title, toolkit, log)
	if err != nil {
		return nil, err
	}

	age, err := validators.NewNumericValidator(validators.WithNumberKind(models.Int8))
	if err != nil {
		return nil, fmt.Errorf("create age validator: %w", err)
	}
	amount, err := validators.NewNumericValidator(
		validators.WithNumberKind(cfg.Numeric.NumberKind()),
		validators.WithRadix(cfg.Numeric.Radix),
	)
	if err != nil {
		return nil, fmt.Errorf("create amount validator: %w", err)
	}
	code, err := validators.NewRegexValidator(CodePattern)
	if err != nil {
		return nil, fmt.Errorf("create code validator: %w", err)
	}
	notes, err := validators.NewRegexValidator(NotesPattern)
	if err != nil {
		return nil, fmt.Errorf("create notes validator: %w", err)
	}

	width := cfg.UI.FieldWidth
	fields := []struct {
		field      *tui.Field
		validators []validators.Validator
	}{
		{tui.NewTextInputField(FieldName, "Имя", width), []validators.Validator{defaults.NonEmpty}},
		{tui.NewTextInputField(FieldEmail, "Email", width), []validators.Validator{defaults.NonEmpty, defaults.Email}},
		{tui.NewTextInputField(FieldPhone, "Телефон", width), []validators.Validator{defaults.PhoneNumber}},
		{tui.NewTextInputField(FieldAge, "Возраст", width), []validators.Validator{age}},
		{tui.NewTextInputField(FieldAmount, "Сумма", width), []validators.Validator{amount}},
		{tui.NewTextInputField(FieldCode, "Код", width), []validators.Validator{code}},
		{tui.NewChoiceField(FieldKind, "Тип", contactKinds...), []validators.Validator{defaults.NonEmpty}},
		{tui.NewTextAreaField(FieldNotes, "Заметки", width, 3), []validators.Validator{notes}},
	}

	for _, f := range fields {
		if err := form.AddField(f.field, f.validators...); err != nil {
			return nil, err
		}
	}

	return form, nil
}
