package commands_test

import (
	"errors"
	"testing"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateSessionCommand(t *testing.T) {
	t.Run("should keep the session id", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateSessionCommand(id)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, id.IsEqual(cmd.SessionID()))
	})

	t.Run("should reject the nil id", func(t *testing.T) {
		_, err := commands.NewCreateSessionCommand(kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.CreateSessionCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateSessionCommandIsNotConstructed)
	})
}

func TestCreateSessionCommandHandler_Handle(t *testing.T) {
	t.Run("should add an empty idle form", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewCreateSessionCommand(id)
		require.NoError(t, err)

		repo := new(MockSessionRepository)
		repo.On("Add", ctx, mock.MatchedBy(func(form *checkout.Form) bool {
			return form.ID().IsEqual(id) &&
				form.Status() == checkout.Idle &&
				form.Fields() == checkout.FormFields{} &&
				form.Errors().IsEmpty()
		})).Return(nil).Once()

		err = commands.NewCreateSessionCommandHandler(repo).Handle(ctx, cmd)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("should return repository errors", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateSessionCommand(kernel.NewUUID())
		require.NoError(t, err)

		expectedError := errors.New("session already exists")
		repo := new(MockSessionRepository)
		repo.On("Add", ctx, mock.AnythingOfType("*checkout.Form")).Return(expectedError).Once()

		err = commands.NewCreateSessionCommandHandler(repo).Handle(ctx, cmd)

		assert.Equal(t, expectedError, err)
	})

	t.Run("should refuse a command built as a literal", func(t *testing.T) {
		repo := new(MockSessionRepository)

		err := commands.NewCreateSessionCommandHandler(repo).Handle(t.Context(), commands.CreateSessionCommand{})

		require.ErrorIs(t, err, commands.ErrCreateSessionCommandIsNotConstructed)
		repo.AssertExpectations(t)
	})
}
