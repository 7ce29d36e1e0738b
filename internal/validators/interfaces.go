// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mock.go -package=mock

// Package validators provides field validation for interactive forms and the
// glue that attaches it to UI fields.
//
// Core concepts:
//   - Validator: checks a single string value and returns a *Result.
//   - Result: the outcome of one validation, either a leaf produced by one
//     validator or a compound whose status is the worst of its children.
//   - Field: anything that can report its current text and notify listeners
//     when that text changes.
//   - Context: a form-wide mapping of fields to validators with one callback.
//   - Toolkit: installs and removes change-triggered validation on fields.
//
// Usage patterns:
//  1. Build validators once (see NewDefaults) and pass them explicitly.
//  2. Attach them to a single field with Toolkit.SetupField, or to a whole
//     form with a Context and Toolkit.SetupContext.
//  3. React to the *Result delivered to the callback on every change.
//
// Everything runs synchronously on the goroutine that delivers change
// notifications; nothing in this package starts goroutines.
package validators

// Validator checks a single textual value.
// An absent value is represented by the empty string.
type Validator interface {

	// Validate returns a leaf *Result describing the value. It never
	// returns nil and never fails: failures are reported as StatusError.
	Validate(value string) *Result
}

// ChangeListener is notified synchronously whenever a field's text changes.
type ChangeListener interface {
	FieldChanged(field Field)
}

// Field is the UI collaborator contract: a named source of text that can
// notify listeners about changes and remove them again.
type Field interface {

	// Name identifies the field in results and logs.
	Name() string

	// Text returns the current textual value of the field, or
	// ErrUnsupportedField when the wrapped widget kind is not recognized.
	Text() (string, error)

	// AddChangeListener registers l and returns the id of the registration.
	AddChangeListener(l ChangeListener) ListenerID

	// RemoveChangeListener removes the registration with the given id and
	// reports whether it existed.
	RemoveChangeListener(id ListenerID) bool

	// ChangeListeners returns a snapshot of the current registrations.
	ChangeListeners() []ListenerRegistration
}
