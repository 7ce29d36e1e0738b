package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegexValidator_InvalidPattern(t *testing.T) {
	v, err := NewRegexValidator("[0-9")
	require.ErrorIs(t, err, ErrInvalidPattern)
	assert.Nil(t, v)
}

func TestRegexValidator_EmptyValue(t *testing.T) {
	v, err := NewRegexValidator(`\s`)
	require.NoError(t, err)

	assertResultOK(t, v, v.Validate(""))
}

func TestRegexValidator_Matching(t *testing.T) {
	tests := []struct {
		pattern string
		value   string
	}{
		{`[0-9]+`, "12345"},
		{`[A-Za-z0-9]?.*`, "a456"},
		{`^aaa.*bbb$`, "aaa123123bbb"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.value, func(t *testing.T) {
			v, err := NewRegexValidator(tt.pattern)
			require.NoError(t, err)
			assertResultOK(t, v, v.Validate(tt.value))
		})
	}
}

func TestRegexValidator_NotMatching(t *testing.T) {
	tests := []struct {
		pattern string
		value   string
	}{
		{`[0-9]+`, "asd"},
		{`[A-Za-z0-9]{1}.*`, "--asd"},
		{`^aaa.*bbb$`, "aaabb"},
		// a substring match is not enough
		{`[0-9]+`, "abc123"},
		{`a|ab`, "ab1"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.value, func(t *testing.T) {
			v, err := NewRegexValidator(tt.pattern)
			require.NoError(t, err)

			r := v.Validate(tt.value)
			assertResultError(t, v, r)
			assert.Equal(t,
				`Value "`+tt.value+`" does not match regular expression "`+tt.pattern+`"`,
				r.Message())
		})
	}
}

func TestRegexValidator_AlternationMatchesWholeValue(t *testing.T) {
	v, err := NewRegexValidator(`a|ab`)
	require.NoError(t, err)

	assertResultOK(t, v, v.Validate("ab"))
	assert.Equal(t, `a|ab`, v.Pattern())
}

func TestRegexValidator_CaseSensitive(t *testing.T) {
	v, err := NewRegexValidator(`[a-z]+`)
	require.NoError(t, err)

	assertResultError(t, v, v.Validate("ABC"))
}

func TestEmailValidator(t *testing.T) {
	v := NewEmailValidator()

	assertResultOK(t, v, v.Validate(""))

	valid := []string{
		"test@test.com",
		"email.with.dots@test.host.with.dots",
		"CAPITAL_LETTERS@CAPITAL-HOST.NAME",
		"Mixed.Case.Letters@host.COM",
		"Letters123WithNum456789@host014.by",
		"456789465@55555.org",
		"email-with-hyphen@host-with-hyphen.net",
		"plus+tag@host.io",
	}
	for _, value := range valid {
		t.Run("valid "+value, func(t *testing.T) {
			assertResultOK(t, v, v.Validate(value))
		})
	}

	invalid := []string{
		"nohost@test",
		"no_at_sign.com",
		"wrong_symbols(@)host.com",
		"wrong+symbols@*host*.com",
		"illegal spaces@host. com",
		"trailing@host.c",
	}
	for _, value := range invalid {
		t.Run("invalid "+value, func(t *testing.T) {
			r := v.Validate(value)
			assertResultError(t, v, r)
			assert.Equal(t, `Email address "`+value+`" is not valid`, r.Message())
		})
	}
}

func TestPhoneNumberValidator(t *testing.T) {
	v := NewPhoneNumberValidator()

	assertResultOK(t, v, v.Validate(""))

	valid := []string{
		"1234567890",
		"123-456-7890",
		"123.456.7890",
		"123 456 7890",
		"(123) 456 7890",
		"(123)456-7890",
		"+1 (123) 456-7890",
		"1-123-456-7890",
		"11234567890",
	}
	for _, value := range valid {
		t.Run("valid "+value, func(t *testing.T) {
			assertResultOK(t, v, v.Validate(value))
		})
	}

	invalid := []string{
		"123-456",
		"123..456..7890",
		"1234567890123456",
		"((123)) 456 7890",
		"-1 (123) 456-7890",
		"00000",
	}
	for _, value := range invalid {
		t.Run("invalid "+value, func(t *testing.T) {
			r := v.Validate(value)
			assertResultError(t, v, r)
			assert.Equal(t, `Phone number "`+value+`" is not valid`, r.Message())
		})
	}
}

func TestRegexValidators_Idempotent(t *testing.T) {
	for _, v := range []Validator{NewEmailValidator(), NewPhoneNumberValidator()} {
		first := v.Validate("not valid at all")
		second := v.Validate("not valid at all")
		assert.Equal(t, first.Status(), second.Status())
		assert.Equal(t, first.Message(), second.Message())
	}
}
