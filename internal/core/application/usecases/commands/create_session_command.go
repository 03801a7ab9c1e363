package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrCreateSessionCommandIsNotConstructed = errors.New(
		"CreateSessionCommand must be created via NewCreateSessionCommand constructor",
	)
)

// CreateSessionCommand opens a checkout session with an empty form.
//
// Example:
//
//	sessionID := kernel.NewUUID()
//	cmd, err := NewCreateSessionCommand(sessionID)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewCreateSessionCommandHandler(sessionRepo)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to open session: %w", err)
//	}
type CreateSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateSessionCommand creates a command for the given session id.
func NewCreateSessionCommand(sessionID kernel.UUID) (CreateSessionCommand, error) {
	command := CreateSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return CreateSessionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSessionCommandIsNotConstructed)
}

func (c CreateSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *CreateSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
