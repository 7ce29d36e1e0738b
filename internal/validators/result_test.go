package validators

import (
	"testing"

	"github.com/MKhiriev/go-field-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_LeafConstructors(t *testing.T) {
	v := NewNonEmptyValidator()

	ok := OK(v)
	assert.Equal(t, models.StatusOK, ok.Status())
	assert.Empty(t, ok.Message())
	assert.Same(t, v, ok.Validator())
	assert.Nil(t, ok.Field())
	assert.False(t, ok.IsCompound())
	assert.Empty(t, ok.Children())

	warn := Warning("looks odd", v)
	assert.Equal(t, models.StatusWarning, warn.Status())
	assert.Equal(t, "looks odd", warn.Message())

	failed := Error("broken", v)
	assert.Equal(t, models.StatusError, failed.Status())
	assert.Equal(t, "broken", failed.Message())
}

func TestResult_ErrorAlwaysHasMessage(t *testing.T) {
	r := Error("", nil)
	assert.Equal(t, models.StatusError, r.Status())
	assert.NotEmpty(t, r.Message())
}

func TestResult_AddChild_EscalatesToWorst(t *testing.T) {
	tests := []struct {
		name     string
		children []models.ValidationStatus
		want     models.ValidationStatus
	}{
		{"ok error ok", []models.ValidationStatus{models.StatusOK, models.StatusError, models.StatusOK}, models.StatusError},
		{"ok ok", []models.ValidationStatus{models.StatusOK, models.StatusOK}, models.StatusOK},
		{"warning ok", []models.ValidationStatus{models.StatusWarning, models.StatusOK}, models.StatusWarning},
		{"warning error warning", []models.ValidationStatus{models.StatusWarning, models.StatusError, models.StatusWarning}, models.StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compound := NewCompound()
			added := make([]*Result, 0, len(tt.children))
			for _, status := range tt.children {
				child := &Result{status: status}
				if status == models.StatusError {
					child.message = "failed"
				}
				compound.AddChild(child)
				added = append(added, child)
			}

			assert.Equal(t, tt.want, compound.Status())
			assert.True(t, compound.IsCompound())
			assert.Nil(t, compound.Validator())
			assert.Empty(t, compound.Message())

			children := compound.Children()
			require.Len(t, children, len(tt.children))
			for i := range added {
				assert.Same(t, added[i], children[i])
			}
		})
	}
}

func TestResult_AddChild_IgnoresNil(t *testing.T) {
	compound := NewCompound()
	compound.AddChild(nil)

	assert.False(t, compound.IsCompound())
	assert.Equal(t, models.StatusOK, compound.Status())
}

func TestResult_Children_ReturnsCopy(t *testing.T) {
	compound := NewCompound()
	compound.AddChild(OK(nil))

	children := compound.Children()
	children[0] = nil

	assert.NotNil(t, compound.Children()[0])
}

func TestResult_LeavesAndErrors(t *testing.T) {
	nonEmpty := NewNonEmptyValidator()
	email := NewEmailValidator()

	field := NewCompound()
	field.AddChild(OK(nonEmpty))
	field.AddChild(Error("bad email", email))

	form := NewCompound()
	form.AddChild(OK(nonEmpty))
	form.AddChild(field)

	leaves := form.Leaves()
	require.Len(t, leaves, 3)
	assert.Same(t, email, leaves[2].Validator())

	errs := form.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "bad email", errs[0].Message())

	leaf := OK(nonEmpty)
	assert.Equal(t, []*Result{leaf}, leaf.Leaves())
}

func TestResult_Err(t *testing.T) {
	assert.NoError(t, OK(nil).Err())
	assert.NoError(t, Warning("careful", nil).Err())

	form := NewCompound()
	form.AddChild(Error("first", nil))
	form.AddChild(OK(nil))
	form.AddChild(Error("second", nil))

	err := form.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")
}
