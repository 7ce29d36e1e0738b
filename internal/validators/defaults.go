package validators

// Defaults holds default-configured validators. Build it once at startup
// with NewDefaults and pass it where validators are wired to fields.
//
// Numeric is a shared instance: configure a separate NumericValidator
// instead of calling its setters when a different kind or radix is needed.
type Defaults struct {
	NonEmpty    *NonEmptyValidator
	Numeric     *NumericValidator
	Email       *EmailValidator
	PhoneNumber *PhoneNumberValidator
}

// NewDefaults constructs one default instance of every built-in validator.
func NewDefaults() Defaults {
	return Defaults{
		NonEmpty:    NewNonEmptyValidator(),
		Numeric:     &NumericValidator{kind: defaultNumberKind, radix: DefaultRadix},
		Email:       NewEmailValidator(),
		PhoneNumber: NewPhoneNumberValidator(),
	}
}
