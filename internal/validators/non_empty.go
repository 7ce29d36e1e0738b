package validators

const nonEmptyMessage = "Value should be non-empty!"

// NonEmptyValidator requires a value to be present.
type NonEmptyValidator struct {
	message string
}

// NewNonEmptyValidator returns a NonEmptyValidator.
func NewNonEmptyValidator() *NonEmptyValidator {
	return &NonEmptyValidator{message: nonEmptyMessage}
}

// Validate fails for the empty string.
func (v *NonEmptyValidator) Validate(value string) *Result {
	if value == "" {
		return Error(v.message, v)
	}
	return OK(v)
}
