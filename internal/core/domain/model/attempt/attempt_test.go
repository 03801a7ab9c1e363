package attempt_test

import (
	"testing"
	"time"

	"checkout/internal/core/domain/model/attempt"
	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func rejectedForm(t *testing.T, failures ...*checkout.ValidationFailure) *checkout.Form {
	t.Helper()
	form, err := checkout.NewForm(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, form.BeginValidation())
	require.NoError(t, form.Reject(checkout.NewErrorMap(failures...)))
	return form
}

func TestNewAttempt(t *testing.T) {
	t.Run("should record failed fields of a rejected form in form order", func(t *testing.T) {
		form := rejectedForm(t, checkout.ErrInvalidCvv, checkout.ErrMissingName)

		a, err := attempt.NewAttempt(form, submittedAt)

		require.NoError(t, err)
		assert.True(t, form.ID().IsEqual(a.SessionID()))
		assert.Equal(t, checkout.Rejected, a.Outcome())
		assert.False(t, a.IsAccepted())
		assert.Equal(t, []checkout.Field{checkout.FieldName, checkout.FieldCvv}, a.FailedFields())
		assert.Equal(t, submittedAt, a.CreatedAt())
		require.NoError(t, a.ID().Validate())
	})

	t.Run("should record an accepted form without failed fields", func(t *testing.T) {
		form, err := checkout.NewForm(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, form.BeginValidation())
		require.NoError(t, form.Accept())

		a, err := attempt.NewAttempt(form, submittedAt)

		require.NoError(t, err)
		assert.True(t, a.IsAccepted())
		assert.Empty(t, a.FailedFields())
	})

	t.Run("should refuse forms that were not submitted", func(t *testing.T) {
		form, err := checkout.NewForm(kernel.NewUUID())
		require.NoError(t, err)

		_, err = attempt.NewAttempt(form, submittedAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a submission outcome")
	})
}

func TestRestoreAttempt(t *testing.T) {
	t.Run("should reject inconsistent outcomes", func(t *testing.T) {
		_, err := attempt.RestoreAttempt(kernel.NewUUID(), kernel.NewUUID(), checkout.Accepted,
			[]checkout.Field{checkout.FieldCvv}, submittedAt)
		require.Error(t, err)

		_, err = attempt.RestoreAttempt(kernel.NewUUID(), kernel.NewUUID(), checkout.Rejected, nil, submittedAt)
		require.Error(t, err)
	})

	t.Run("should reject unknown fields and missing timestamps", func(t *testing.T) {
		_, err := attempt.RestoreAttempt(kernel.NewUUID(), kernel.NewUUID(), checkout.Rejected,
			[]checkout.Field{"zip"}, submittedAt)
		require.Error(t, err)

		_, err = attempt.RestoreAttempt(kernel.NewUUID(), kernel.NewUUID(), checkout.Rejected,
			[]checkout.Field{checkout.FieldName}, time.Time{})
		require.Error(t, err)
	})

	t.Run("should not share the failed field slice", func(t *testing.T) {
		fields := []checkout.Field{checkout.FieldName}
		a, err := attempt.RestoreAttempt(kernel.NewUUID(), kernel.NewUUID(), checkout.Rejected, fields, submittedAt)
		require.NoError(t, err)

		fields[0] = checkout.FieldCvv

		assert.Equal(t, []checkout.Field{checkout.FieldName}, a.FailedFields())
	})

	t.Run("should detect literal attempts", func(t *testing.T) {
		assert.Equal(t, attempt.ErrAttemptIsNotConstructed, (&attempt.Attempt{}).Validate())
	})
}
