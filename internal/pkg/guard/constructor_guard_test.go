package guard_test

import (
	"errors"
	"testing"

	"checkout/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type submitCommand struct {
		sessionID string
		guard     guard.ConstructorGuard
	}

	errNotConstructed := errors.New("submitCommand must be created via newSubmitCommand")

	newSubmitCommand := func(sessionID string) (submitCommand, error) {
		if sessionID == "" {
			return submitCommand{}, errors.New("session id is required")
		}
		return submitCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		cmd, err := newSubmitCommand("s-1")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
		assert.Equal(t, "s-1", cmd.sessionID)
	})

	t.Run("literal_command_is_rejected", func(t *testing.T) {
		cmd := submitCommand{sessionID: "s-1"}

		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("constructor_failure_returns_zero_value", func(t *testing.T) {
		cmd, err := newSubmitCommand("")

		require.Error(t, err)
		require.Error(t, cmd.guard.Validate(errNotConstructed))
	})
}
