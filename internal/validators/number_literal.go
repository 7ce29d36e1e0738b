package validators

import (
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-field-validator/models"
)

var integerKinds = []models.NumberKind{models.Int8, models.Int16, models.Int32, models.Int64}

// InferNumberKind reads the kind of a numeric literal from its own shape,
// the way a compiler types an untyped constant:
//
//	127, -0x80   narrowest integer kind holding the value
//	12L          int64
//	1.5f         float32
//	1.5, 2e3, 4d float64
//
// Decimal integers and hex integers are recognized; other radixes are not.
// The second return value is false when the literal is not recognized or
// does not fit any kind.
func InferNumberKind(literal string) (models.NumberKind, bool) {
	if literal == "" {
		return models.NumberKindUnknown, false
	}

	body := strings.TrimPrefix(literal, "-")
	if body == "" {
		return models.NumberKindUnknown, false
	}

	if hex, ok := cutHexPrefix(body); ok {
		return inferInteger(literal[:len(literal)-len(body)], hex, 16)
	}

	last := body[len(body)-1]
	switch last {
	case 'l', 'L':
		digits := body[:len(body)-1]
		if !isDecimalDigits(digits) {
			return models.NumberKindUnknown, false
		}
		if _, err := strconv.ParseInt(literal[:len(literal)-1], 10, 64); err != nil {
			return models.NumberKindUnknown, false
		}
		return models.Int64, true
	case 'f', 'F':
		return inferFloat(literal[:len(literal)-1], models.Float32)
	case 'd', 'D':
		return inferFloat(literal[:len(literal)-1], models.Float64)
	}

	if isDecimalDigits(body) {
		return inferInteger(literal[:len(literal)-len(body)], body, 10)
	}

	return inferFloat(literal, models.Float64)
}

func inferInteger(sign, digits string, base int) (models.NumberKind, bool) {
	if digits == "" {
		return models.NumberKindUnknown, false
	}
	for _, kind := range integerKinds {
		if _, err := strconv.ParseInt(sign+digits, base, kind.BitSize()); err == nil {
			return kind, true
		}
	}
	return models.NumberKindUnknown, false
}

func inferFloat(literal string, kind models.NumberKind) (models.NumberKind, bool) {
	if !isDecimalFloat(literal) {
		return models.NumberKindUnknown, false
	}
	if _, ok := parseFinite(literal, kind.BitSize()); !ok {
		return models.NumberKindUnknown, false
	}
	return kind, true
}

// parseFinite parses a base-10 float literal and rejects NaN, infinities and
// values out of range for bitSize.
func parseFinite(literal string, bitSize int) (float64, bool) {
	f, err := strconv.ParseFloat(literal, bitSize)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func cutHexPrefix(s string) (string, bool) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:], true
	}
	return "", false
}

func isDecimalDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isDecimalFloat accepts [-]digits[.digits][(e|E)[+-]digits] with at least
// one mantissa digit. It keeps strconv's hex floats, underscores and
// "inf"/"nan" spellings out of the accepted shapes.
func isDecimalFloat(s string) bool {
	s = strings.TrimPrefix(s, "-")
	mantissa, exponent, hasExp := strings.Cut(strings.ToLower(s), "e")
	intPart, fracPart, _ := strings.Cut(mantissa, ".")
	if intPart == "" && fracPart == "" {
		return false
	}
	if intPart != "" && !isDecimalDigits(intPart) {
		return false
	}
	if fracPart != "" && !isDecimalDigits(fracPart) {
		return false
	}
	if hasExp {
		if exponent != "" && (exponent[0] == '+' || exponent[0] == '-') {
			exponent = exponent[1:]
		}
		return isDecimalDigits(exponent)
	}
	return true
}
