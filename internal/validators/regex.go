// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"regexp"
)

// RegexValidator checks that a present value matches a regular expression
// as a whole. The empty string is always accepted: presence is the job of
// NonEmptyValidator.
type RegexValidator struct {
	source  string
	pattern *regexp.Regexp
	message func(value string) string
}

// NewRegexValidator compiles pattern once for full-string matching.
// An invalid pattern yields an error wrapping ErrInvalidPattern.
func NewRegexValidator(pattern string) (*RegexValidator, error) {
	compiled, err := compileFullMatch(pattern)
	if err != nil {
		return nil, err
	}

	v := &RegexValidator{source: pattern, pattern: compiled}
	v.message = func(value string) string {
		return fmt.Sprintf("Value \"%s\" does not match regular expression \"%s\"", value, v.source)
	}
	return v, nil
}

func mustRegexValidator(pattern string, message func(value string) string) *RegexValidator {
	compiled, err := compileFullMatch(pattern)
	if err != nil {
		panic(err)
	}
	return &RegexValidator{source: pattern, pattern: compiled, message: message}
}

func compileFullMatch(pattern string) (*regexp.Regexp, error) {
	compiled, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return compiled, nil
}

// Pattern returns the regular expression the validator was built with.
func (v *RegexValidator) Pattern() string {
	return v.source
}

// Validate accepts the empty string and any value fully matching the pattern.
func (v *RegexValidator) Validate(value string) *Result {
	return v.validate(value, v)
}

// validate reports results on behalf of owner so that wrapping validators
// appear as the producer of their own results.
func (v *RegexValidator) validate(value string, owner Validator) *Result {
	if value == "" || v.pattern.MatchString(value) {
		return OK(owner)
	}
	return Error(v.message(value), owner)
}
