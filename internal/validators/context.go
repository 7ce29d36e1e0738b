// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "fmt"

// Callback receives the result of every validation pass.
type Callback func(result *Result)

type fieldConfig struct {
	field      Field
	validators []Validator
}

// Context describes a form: a set of logically connected fields, each with an
// ordered list of validators, validated as a whole and reported to a single
// callback. Install it with Toolkit.SetupContext.
//
// Any change of any field re-validates every field of the context, so the
// aggregate status always reflects the current state of the form and rules
// may depend on other fields.
//
// Fields are keyed by identity, so Field implementations must be comparable
// (pointer types in practice).
type Context struct {
	callback Callback
	fields   []fieldConfig
	index    map[Field]int
}

// NewContext returns an empty Context reporting to cb.
func NewContext(cb Callback) (*Context, error) {
	if cb == nil {
		return nil, ErrNilCallback
	}
	return &Context{
		callback: cb,
		index:    make(map[Field]int),
	}, nil
}

// SetupField configures the validators of a single field. Configuring a field
// again replaces its validators and keeps its position in the form.
func (c *Context) SetupField(f Field, validators ...Validator) error {
	return c.SetupFields([]Field{f}, validators...)
}

// SetupFields configures the same validators for every field in fs.
// Arguments are checked up front: on error the context is left unchanged.
func (c *Context) SetupFields(fs []Field, validators ...Validator) error {
	for _, f := range fs {
		if f == nil {
			return ErrNilField
		}
	}
	if err := checkValidators(validators); err != nil {
		return err
	}

	for _, f := range fs {
		vs := make([]Validator, len(validators))
		copy(vs, validators)

		if i, ok := c.index[f]; ok {
			c.fields[i].validators = vs
			continue
		}
		c.index[f] = len(c.fields)
		c.fields = append(c.fields, fieldConfig{field: f, validators: vs})
	}
	return nil
}

// Fields returns the configured fields in setup order.
func (c *Context) Fields() []Field {
	out := make([]Field, 0, len(c.fields))
	for _, fc := range c.fields {
		out = append(out, fc.field)
	}
	return out
}

// Validators returns the validators configured for f, or nil.
func (c *Context) Validators(f Field) []Validator {
	i, ok := c.index[f]
	if !ok {
		return nil
	}
	out := make([]Validator, len(c.fields[i].validators))
	copy(out, c.fields[i].validators)
	return out
}

// Len returns the number of configured fields.
func (c *Context) Len() int {
	return len(c.fields)
}

// Validate runs every configured field through its validators and folds the
// per-field results into one compound result, in setup order.
func (c *Context) Validate() (*Result, error) {
	result := NewCompound()
	for _, fc := range c.fields {
		fieldResult, err := validateField(fc.field, fc.validators)
		if err != nil {
			return nil, err
		}
		result.AddChild(fieldResult)
	}
	return result, nil
}

func checkValidators(validators []Validator) error {
	if len(validators) == 0 {
		return ErrNoValidators
	}
	for _, v := range validators {
		if v == nil {
			return ErrNilValidator
		}
	}
	return nil
}

// validateField reads the text of f once and runs every validator on it.
// A single validator yields its leaf as is; several are wrapped into a
// compound result for the field.
func validateField(f Field, validators []Validator) (*Result, error) {
	text, err := f.Text()
	if err != nil {
		return nil, fmt.Errorf("read text of field %q: %w", f.Name(), err)
	}

	if len(validators) == 1 {
		result := validators[0].Validate(text)
		result.setField(f)
		return result, nil
	}

	result := NewCompound()
	result.setField(f)
	for _, v := range validators {
		child := v.Validate(text)
		child.setField(f)
		result.AddChild(child)
	}
	return result, nil
}
