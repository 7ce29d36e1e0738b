// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// NumberKind identifies the concrete numeric representation a value is
// expected to fit into. The set is closed; the zero value is invalid.
type NumberKind int

const (
	// NumberKindUnknown is the zero value and never a valid configuration.
	NumberKindUnknown NumberKind = iota

	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
)

var numberKindNames = map[NumberKind]string{
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Float32: "float32",
	Float64: "float64",
}

// String returns the Go type name of the kind, e.g. "int32".
func (k NumberKind) String() string {
	if name, ok := numberKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether k belongs to the closed set of number kinds.
func (k NumberKind) IsValid() bool {
	_, ok := numberKindNames[k]
	return ok
}

// IsInteger reports whether k is one of the signed integer kinds.
func (k NumberKind) IsInteger() bool {
	return k >= Int8 && k <= Int64
}

// BitSize returns the width of the kind in bits, or 0 for an invalid kind.
func (k NumberKind) BitSize() int {
	switch k {
	case Int8:
		return 8
	case Int16:
		return 16
	case Int32, Float32:
		return 32
	case Int64, Float64:
		return 64
	default:
		return 0
	}
}

// Holds reports whether a literal inferred as kind inferred is acceptable
// where k is expected. Wider integers hold narrower ones, any float kind holds
// whole numbers, and Float64 holds Float32.
func (k NumberKind) Holds(inferred NumberKind) bool {
	if !k.IsValid() || !inferred.IsValid() {
		return false
	}
	if k == inferred {
		return true
	}
	if k.IsInteger() {
		return inferred.IsInteger() && inferred.BitSize() <= k.BitSize()
	}
	if inferred.IsInteger() {
		return true
	}
	return k == Float64 && inferred == Float32
}

// ParseNumberKind converts a kind name such as "int16" or "float64"
// (case-insensitive) into a NumberKind.
func ParseNumberKind(s string) (NumberKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for kind, kindName := range numberKindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return NumberKindUnknown, fmt.Errorf("unknown number kind %q", s)
}
