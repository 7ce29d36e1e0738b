package validators

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-field-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	c, err := NewContext(func(*Result) {})
	require.NoError(t, err)
	return c
}

func TestNewContext_NilCallback(t *testing.T) {
	c, err := NewContext(nil)
	require.ErrorIs(t, err, ErrNilCallback)
	assert.Nil(t, c)
}

func TestContext_SetupFieldErrors(t *testing.T) {
	c := newTestContext(t)
	f := newStubField("a", "")

	require.ErrorIs(t, c.SetupField(nil, NewNonEmptyValidator()), ErrNilField)
	require.ErrorIs(t, c.SetupField(f), ErrNoValidators)
	require.ErrorIs(t, c.SetupField(f, nil), ErrNilValidator)
	require.ErrorIs(t, c.SetupFields([]Field{f, nil}, NewNonEmptyValidator()), ErrNilField)

	assert.Zero(t, c.Len())
}

func TestContext_SetupOrderAndReplace(t *testing.T) {
	c := newTestContext(t)
	a, b, d := newStubField("a", ""), newStubField("b", ""), newStubField("d", "")
	nonEmpty := NewNonEmptyValidator()
	numeric := newNumeric(t)

	require.NoError(t, c.SetupField(a, nonEmpty))
	require.NoError(t, c.SetupFields([]Field{b, d}, nonEmpty, numeric))
	require.NoError(t, c.SetupField(a, numeric))

	assert.Equal(t, []Field{a, b, d}, c.Fields())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []Validator{numeric}, c.Validators(a))
	assert.Equal(t, []Validator{nonEmpty, numeric}, c.Validators(b))
	assert.Nil(t, c.Validators(newStubField("x", "")))
}

func TestContext_Validate(t *testing.T) {
	c := newTestContext(t)
	name := newStubField("name", "Bob")
	age := newStubField("age", "12a")
	nonEmpty := NewNonEmptyValidator()
	numeric := newNumeric(t, WithNumberKind(models.Int8))

	require.NoError(t, c.SetupField(name, nonEmpty))
	require.NoError(t, c.SetupField(age, nonEmpty, numeric))

	result, err := c.Validate()
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, result.Status())
	assert.Nil(t, result.Field())

	children := result.Children()
	require.Len(t, children, 2)

	assert.False(t, children[0].IsCompound())
	assert.Same(t, name, children[0].Field())
	assert.Equal(t, models.StatusOK, children[0].Status())

	require.True(t, children[1].IsCompound())
	assert.Same(t, age, children[1].Field())
	assert.Equal(t, models.StatusError, children[1].Status())
	for _, leaf := range children[1].Children() {
		assert.Same(t, age, leaf.Field())
	}

	failed := result.Errors()
	require.Len(t, failed, 1)
	assert.Same(t, numeric, failed[0].Validator())
	assert.Equal(t, "Value 12a should be a int8 number!", failed[0].Message())

	age.text = "12"
	result, err = c.Validate()
	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, result.Status())
	assert.NoError(t, result.Err())
}

func TestContext_ValidateEmpty(t *testing.T) {
	c := newTestContext(t)

	result, err := c.Validate()
	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, result.Status())
	assert.Empty(t, result.Children())
}

func TestContext_ValidateTextError(t *testing.T) {
	c := newTestContext(t)
	broken := newStubField("broken", "")
	broken.err = errors.New("widget disposed")
	require.NoError(t, c.SetupField(broken, NewNonEmptyValidator()))

	result, err := c.Validate()
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), `"broken"`)
	assert.ErrorIs(t, err, broken.err)
}
