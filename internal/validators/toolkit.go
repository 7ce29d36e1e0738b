// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/MKhiriev/go-field-validator/internal/logger"
)

// Toolkit installs change-triggered validation on fields and removes it.
//
// Every listener installed by a Toolkit has the private type
// validationListener, which is how RemoveValidation tells them apart from
// listeners registered on the same field by other code.
type Toolkit struct {
	log *logger.Logger
}

// NewToolkit returns a Toolkit logging through log.
func NewToolkit(log *logger.Logger) *Toolkit {
	if log == nil {
		log = logger.Nop()
	}
	return &Toolkit{log: log}
}

// validationListener runs one validation pass per change notification.
type validationListener struct {
	run func(changed Field)
}

func (l *validationListener) FieldChanged(changed Field) {
	l.run(changed)
}

// ValidateField validates the current text of f with validators, without
// installing anything. See SetupField for how results are folded.
func (t *Toolkit) ValidateField(f Field, validators ...Validator) (*Result, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if err := checkValidators(validators); err != nil {
		return nil, err
	}
	return validateField(f, validators)
}

// SetupField installs validation on a single field. On every change the
// field's text goes through validators in order; with one validator its leaf
// result is reported as is, with several the leaves are wrapped into a
// compound result for the field. cb may be nil.
//
// Validation previously installed on f is replaced. On error nothing changes.
func (t *Toolkit) SetupField(f Field, cb Callback, validators ...Validator) error {
	if f == nil {
		return ErrNilField
	}
	if err := checkValidators(validators); err != nil {
		return err
	}
	if _, err := f.Text(); err != nil {
		return fmt.Errorf("setup validation of field %q: %w", f.Name(), err)
	}

	vs := make([]Validator, len(validators))
	copy(vs, validators)

	t.removeListeners(f)
	f.AddChangeListener(&validationListener{run: func(Field) {
		result, err := validateField(f, vs)
		if err != nil {
			t.log.Error().Err(err).Str("field", f.Name()).Msg("field validation skipped")
			return
		}

		t.log.Debug().
			Str("field", f.Name()).
			Str("status", result.Status().String()).
			Int("validators", len(vs)).
			Msg("field validated")

		if cb != nil {
			cb(result)
		}
	}})

	t.log.Debug().Str("field", f.Name()).Int("validators", len(vs)).Msg("field validation installed")
	return nil
}

// SetupContext installs validation on every field of c. A change of any field
// re-validates the whole context and reports one compound result to the
// context callback.
//
// Validation previously installed on those fields is replaced. On error
// nothing changes.
func (t *Toolkit) SetupContext(c *Context) error {
	if c == nil {
		return ErrNilContext
	}

	fields := c.Fields()
	for _, f := range fields {
		if _, err := f.Text(); err != nil {
			return fmt.Errorf("setup validation of field %q: %w", f.Name(), err)
		}
	}

	listener := &validationListener{run: func(changed Field) {
		result, err := c.Validate()
		if err != nil {
			t.log.Error().Err(err).Str("changed", changed.Name()).Msg("form validation skipped")
			return
		}

		t.log.Debug().
			Str("changed", changed.Name()).
			Str("status", result.Status().String()).
			Int("fields", c.Len()).
			Msg("form validated")

		c.callback(result)
	}}

	for _, f := range fields {
		t.removeListeners(f)
		f.AddChangeListener(listener)
	}

	t.log.Debug().Int("fields", len(fields)).Msg("form validation installed")
	return nil
}

// RemoveValidation removes every listener installed by a Toolkit from f and
// leaves other listeners in place. It returns the number of removed
// listeners.
func (t *Toolkit) RemoveValidation(f Field) (int, error) {
	if f == nil {
		return 0, ErrNilField
	}

	removed := t.removeListeners(f)
	t.log.Debug().Str("field", f.Name()).Int("removed", removed).Msg("field validation removed")
	return removed, nil
}

func (t *Toolkit) removeListeners(f Field) int {
	removed := 0
	for _, reg := range f.ChangeListeners() {
		if _, ok := reg.Listener.(*validationListener); !ok {
			continue
		}
		if f.RemoveChangeListener(reg.ID) {
			removed++
		}
	}
	return removed
}
