package validators

import (
	"testing"

	"github.com/MKhiriev/go-field-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertResultOK(t *testing.T, v Validator, r *Result) {
	t.Helper()
	require.NotNil(t, r)
	assert.Equal(t, models.StatusOK, r.Status())
	assert.Empty(t, r.Message())
	assert.Same(t, v, r.Validator())
	assert.False(t, r.IsCompound())
}

func assertResultError(t *testing.T, v Validator, r *Result) {
	t.Helper()
	require.NotNil(t, r)
	assert.Equal(t, models.StatusError, r.Status())
	assert.NotEmpty(t, r.Message())
	assert.Same(t, v, r.Validator())
	assert.False(t, r.IsCompound())
}

// stubField is a minimal Field with settable text.
type stubField struct {
	ListenerSet
	name string
	text string
	err  error
}

func newStubField(name, text string) *stubField {
	return &stubField{name: name, text: text}
}

func (f *stubField) Name() string { return f.name }

func (f *stubField) Text() (string, error) { return f.text, f.err }

func (f *stubField) set(text string) {
	f.text = text
	f.Notify(f)
}
