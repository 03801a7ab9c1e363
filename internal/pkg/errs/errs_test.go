package errs_test

import (
	"errors"
	"testing"

	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("session", "8c1d")

		assert.Equal(t, "session", err.ParamName)
		assert.Equal(t, "8c1d", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 8c1d", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("session expired")
		err := errs.NewObjectNotFoundErrorWithCause("session", "8c1d", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: session, ID is: 8c1d (cause: session expired)",
			err.Error())
	})

	t.Run("Error with non string IDs", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("attempt", 42)
		assert.Equal(t, "object not found: %!s(int=42)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("field")

		assert.Equal(t, "field", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: field", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New(`"zip" is not a checkout field`)
		err := errs.NewValueIsInvalidErrorWithCause("field", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, `value is invalid: field (cause: "zip" is not a checkout field)`, err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("SUBMIT_RATE_LIMIT", 0, 1, 1000)

		assert.Equal(t, "SUBMIT_RATE_LIMIT", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"value is invalid: 0 is SUBMIT_RATE_LIMIT, min value is 1, max value is 1000",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("parse failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("SESSION_TTL", "-1m", "1s", "24h", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -1m is SESSION_TTL, min value is 1s, max value is 24h (cause: parse failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("confirmer")

		assert.Equal(t, "confirmer", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: confirmer", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("nil collaborator")
		err := errs.NewValueIsRequiredErrorWithCause("navigator", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: navigator (cause: nil collaborator)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("session", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("field"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("ttl", 0, 1, 2), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("navigator"), errs.ErrValueIsRequired)

	var notFound *errs.ObjectNotFoundError
	joined := errors.Join(errors.New("other"), errs.NewObjectNotFoundError("session", "1"))
	require.ErrorAs(t, joined, &notFound)
	assert.Equal(t, "session", notFound.ParamName)
}
