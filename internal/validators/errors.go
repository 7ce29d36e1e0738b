package validators

import "errors"

// Configuration errors. They are returned at construction or setup time and
// never reported through a Result.
var (
	ErrNilField          = errors.New("field can't be nil")
	ErrNilValidator      = errors.New("validator can't be nil")
	ErrNoValidators      = errors.New("at least one field validator should be specified")
	ErrNilCallback       = errors.New("callback can't be nil")
	ErrNilContext        = errors.New("validation context can't be nil")
	ErrInvalidPattern    = errors.New("invalid regular expression")
	ErrInvalidRadix      = errors.New("radix should be between 2 and 36")
	ErrInvalidNumberKind = errors.New("invalid number kind")
	ErrUnsupportedField  = errors.New("unsupported field kind")
)
