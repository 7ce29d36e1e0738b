// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ValidationStatus is the outcome level of a single validation.
// The values are ordered: StatusOK < StatusWarning < StatusError, and
// aggregation always keeps the worst (maximum) status seen.
type ValidationStatus int

const (
	// StatusOK means the value passed validation.
	StatusOK ValidationStatus = iota

	// StatusWarning means the value is acceptable but deserves attention.
	StatusWarning

	// StatusError means the value failed validation.
	// Results with this status always carry a human-readable message.
	StatusError
)

// String returns the upper-case name of the status.
func (s ValidationStatus) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Less reports whether s is a better (lower) status than other.
func (s ValidationStatus) Less(other ValidationStatus) bool {
	return s < other
}

// MaxStatus returns the worse of the two statuses.
func MaxStatus(a, b ValidationStatus) ValidationStatus {
	if a.Less(b) {
		return b
	}
	return a
}
