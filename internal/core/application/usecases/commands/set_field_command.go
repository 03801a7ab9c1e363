package commands

import (
	"errors"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrSetFieldCommandIsNotConstructed = errors.New(
		"SetFieldCommand must be created via NewSetFieldCommand constructor",
	)
)

// SetFieldCommand replaces the value of one field of a session's form.
// Any string value is accepted; only the field name is checked.
//
// Example:
//
//	field, err := checkout.ParseField("email")
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewSetFieldCommand(sessionID, field, "jane@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	err = NewSetFieldCommandHandler(sessionRepo).Handle(ctx, cmd)
type SetFieldCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	field     checkout.Field
	value     string

	guard guard.ConstructorGuard
}

// NewSetFieldCommand validates the session id and the field name.
func NewSetFieldCommand(sessionID kernel.UUID, field checkout.Field, value string) (SetFieldCommand, error) {
	command := SetFieldCommand{
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setField(field),
	); err != nil {
		return SetFieldCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetFieldCommand) Validate() error {
	return c.guard.Validate(ErrSetFieldCommandIsNotConstructed)
}

func (c SetFieldCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c SetFieldCommand) Field() checkout.Field {
	return c.field
}

func (c SetFieldCommand) Value() string {
	return c.value
}

func (c *SetFieldCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SetFieldCommand) setField(field checkout.Field) error {
	if err := field.Validate(); err != nil {
		return err
	}

	c.field = field
	return nil
}
