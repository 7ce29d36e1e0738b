// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-field-validator/models"
)

const (
	MinRadix     = 2
	MaxRadix     = 36
	DefaultRadix = 10

	defaultNumberKind = models.Float64
)

// NumericValidator checks that a present value is a number of the configured
// kind. Integer kinds are parsed in the configured radix; float kinds always
// use base-10 literals.
//
// Whitespace anywhere in the value and the first '+' sign are ignored, so
// inputs such as " 1 234 " or "+456" are accepted.
type NumericValidator struct {
	kind  models.NumberKind
	radix int
}

// NumericOption configures a NumericValidator at construction time.
type NumericOption func(v *NumericValidator) error

// WithNumberKind sets the expected number kind.
func WithNumberKind(kind models.NumberKind) NumericOption {
	return func(v *NumericValidator) error {
		return v.SetNumberKind(kind)
	}
}

// WithRadix sets the radix used for integer kinds.
func WithRadix(radix int) NumericOption {
	return func(v *NumericValidator) error {
		return v.SetRadix(radix)
	}
}

// NewNumericValidator returns a validator expecting a base-10 float64 unless
// configured otherwise by opts.
func NewNumericValidator(opts ...NumericOption) (*NumericValidator, error) {
	v := &NumericValidator{kind: defaultNumberKind, radix: DefaultRadix}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// NumberKind returns the expected number kind.
func (v *NumericValidator) NumberKind() models.NumberKind {
	return v.kind
}

// Radix returns the radix used for integer kinds.
func (v *NumericValidator) Radix() int {
	return v.radix
}

// SetNumberKind changes the expected number kind. An invalid kind is
// rejected with ErrInvalidNumberKind and leaves the validator unchanged.
func (v *NumericValidator) SetNumberKind(kind models.NumberKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidNumberKind, int(kind))
	}
	v.kind = kind
	return nil
}

// SetRadix changes the radix used for integer kinds. A radix outside
// [MinRadix, MaxRadix] is rejected with ErrInvalidRadix and leaves the
// validator unchanged.
func (v *NumericValidator) SetRadix(radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return fmt.Errorf("%w: got %d", ErrInvalidRadix, radix)
	}
	v.radix = radix
	return nil
}

// Validate accepts the empty string and any value representing a number of
// the configured kind.
func (v *NumericValidator) Validate(value string) *Result {
	if value == "" {
		return OK(v)
	}

	literal := normalizeNumber(value)
	if v.inferredMatches(literal) || v.parses(literal) {
		return OK(v)
	}

	return Error(fmt.Sprintf("Value %s should be a %s number!", value, v.kind), v)
}

// inferredMatches is the first attempt: the literal's own shape decides its
// kind. Literal inference only knows base 10 and hex, so it is skipped for
// integer kinds in any other radix.
func (v *NumericValidator) inferredMatches(literal string) bool {
	if v.kind.IsInteger() && v.radix != DefaultRadix {
		return false
	}
	inferred, ok := InferNumberKind(literal)
	return ok && v.kind.Holds(inferred)
}

// parses is the fallback: a strict parse keyed by the configured kind.
func (v *NumericValidator) parses(literal string) bool {
	if v.kind.IsInteger() {
		_, err := strconv.ParseInt(literal, v.radix, v.kind.BitSize())
		return err == nil
	}
	if !isDecimalFloat(literal) {
		return false
	}
	_, ok := parseFinite(literal, v.kind.BitSize())
	return ok
}

func normalizeNumber(value string) string {
	trimmed := strings.TrimSpace(value)
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, trimmed)
	return strings.Replace(compact, "+", "", 1)
}
