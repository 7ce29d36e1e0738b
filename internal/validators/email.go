package validators

import "fmt"

// EmailPattern is the full-string pattern accepted by EmailValidator.
const EmailPattern = `^[_A-Za-z0-9-\+]+(\.[_A-Za-z0-9-]+)*@[A-Za-z0-9-]+(\.[A-Za-z0-9]+)*(\.[A-Za-z]{2,})$`

// EmailValidator checks that a present value looks like an email address.
type EmailValidator struct {
	regex *RegexValidator
}

// NewEmailValidator returns an EmailValidator.
func NewEmailValidator() *EmailValidator {
	return &EmailValidator{
		regex: mustRegexValidator(EmailPattern, func(value string) string {
			return fmt.Sprintf("Email address \"%s\" is not valid", value)
		}),
	}
}

// Validate accepts the empty string and well-formed addresses.
func (v *EmailValidator) Validate(value string) *Result {
	return v.regex.validate(value, v)
}
