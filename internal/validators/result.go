// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"

	"github.com/MKhiriev/go-field-validator/models"
)

const defaultErrorMessage = "Value is not valid!"

// Result is the outcome of a validation pass.
//
// A leaf result is produced by exactly one validator for one field and has no
// children. A compound result has no validator of its own, carries at least
// one child and its status is the worst status among its children.
//
// Results are built fresh on every pass and must not be modified once they
// have been handed to a Callback.
type Result struct {
	status    models.ValidationStatus
	message   string
	validator Validator
	field     Field
	children  []*Result
}

// OK returns a successful leaf result produced by v.
func OK(v Validator) *Result {
	return &Result{status: models.StatusOK, validator: v}
}

// Warning returns a leaf result with StatusWarning and an optional message.
func Warning(message string, v Validator) *Result {
	return &Result{status: models.StatusWarning, message: message, validator: v}
}

// Error returns a failed leaf result. An ERROR result always has a message,
// so an empty message is replaced with a generic one.
func Error(message string, v Validator) *Result {
	if message == "" {
		message = defaultErrorMessage
	}
	return &Result{status: models.StatusError, message: message, validator: v}
}

// NewCompound returns an empty accumulator with StatusOK, ready to collect
// children via AddChild.
func NewCompound() *Result {
	return &Result{status: models.StatusOK}
}

// Status returns the status of the result.
func (r *Result) Status() models.ValidationStatus {
	return r.status
}

// Message returns the human-readable explanation. It is empty for OK results
// and for compound results.
func (r *Result) Message() string {
	return r.message
}

// Validator returns the validator that produced a leaf result, or nil for a
// compound result.
func (r *Result) Validator() Validator {
	return r.validator
}

// Field returns the field the result pertains to, or nil when the result was
// produced outside of a field validation pass.
func (r *Result) Field() Field {
	return r.field
}

// Children returns the child results in insertion order.
func (r *Result) Children() []*Result {
	out := make([]*Result, len(r.children))
	copy(out, r.children)
	return out
}

// IsCompound reports whether r aggregates other results.
func (r *Result) IsCompound() bool {
	return len(r.children) > 0
}

// AddChild appends child and escalates the status of r to the worse of the
// two. This is the only way statuses are combined.
func (r *Result) AddChild(child *Result) {
	if child == nil {
		return
	}
	r.status = models.MaxStatus(r.status, child.status)
	r.children = append(r.children, child)
}

// Leaves returns all leaf results of the tree in depth-first order.
// A leaf result returns itself.
func (r *Result) Leaves() []*Result {
	if !r.IsCompound() {
		return []*Result{r}
	}

	var leaves []*Result
	for _, child := range r.children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

// Errors returns the leaves with StatusError.
func (r *Result) Errors() []*Result {
	var failed []*Result
	for _, leaf := range r.Leaves() {
		if leaf.status == models.StatusError {
			failed = append(failed, leaf)
		}
	}
	return failed
}

// Err converts r into an error: nil unless the status is StatusError, the
// joined messages of the failed leaves otherwise.
func (r *Result) Err() error {
	if r.status != models.StatusError {
		return nil
	}

	errs := make([]error, 0, len(r.children)+1)
	for _, leaf := range r.Errors() {
		errs = append(errs, errors.New(leaf.message))
	}
	return errors.Join(errs...)
}

func (r *Result) setField(f Field) {
	r.field = f
}
