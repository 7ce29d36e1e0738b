package validators

import "fmt"

// PhoneNumberPattern accepts numbers of at most 10 digits with an optional
// 1-3 digit country code, e.g.
//
//	1234567890
//	123-456-7890
//	123.456.7890
//	(123) 456 7890
//	+1 (123) 456-7890
//	1-123-456-7890
const PhoneNumberPattern = `^(?:\+?[0-9]{1,3}[-. ]?)?\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`

// PhoneNumberValidator checks that a present value looks like a phone number.
type PhoneNumberValidator struct {
	regex *RegexValidator
}

// NewPhoneNumberValidator returns a PhoneNumberValidator.
func NewPhoneNumberValidator() *PhoneNumberValidator {
	return &PhoneNumberValidator{
		regex: mustRegexValidator(PhoneNumberPattern, func(value string) string {
			return fmt.Sprintf("Phone number \"%s\" is not valid", value)
		}),
	}
}

// Validate accepts the empty string and well-formed phone numbers.
func (v *PhoneNumberValidator) Validate(value string) *Result {
	return v.regex.validate(value, v)
}
