package commands

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var (
	ErrSubmitCheckoutCommandIsNotConstructed = errors.New(
		"SubmitCheckoutCommand must be created via NewSubmitCheckoutCommand constructor",
	)
)

// SubmitCheckoutCommand submits a session's form. The confirmer and navigator
// belong to the caller: an HTTP request or a terminal, for example, each react
// to an accepted order in their own way.
//
// Example:
//
//	cmd, err := NewSubmitCheckoutCommand(
//	    sessionID,
//	    ports.ConfirmerFunc(func() { placed = true }),
//	    ports.NavigatorFunc(func(path string) { redirect = path }),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type SubmitCheckoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	confirmer ports.Confirmer
	navigator ports.Navigator

	guard guard.ConstructorGuard
}

// NewSubmitCheckoutCommand requires a valid session id and both collaborators.
func NewSubmitCheckoutCommand(
	sessionID kernel.UUID,
	confirmer ports.Confirmer,
	navigator ports.Navigator,
) (SubmitCheckoutCommand, error) {
	command := SubmitCheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setConfirmer(confirmer),
		command.setNavigator(navigator),
	); err != nil {
		return SubmitCheckoutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCheckoutCommandIsNotConstructed)
}

func (c SubmitCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c SubmitCheckoutCommand) Confirmer() ports.Confirmer {
	return c.confirmer
}

func (c SubmitCheckoutCommand) Navigator() ports.Navigator {
	return c.navigator
}

func (c *SubmitCheckoutCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *SubmitCheckoutCommand) setConfirmer(confirmer ports.Confirmer) error {
	if confirmer == nil {
		return errs.NewValueIsRequiredError("confirmer")
	}

	c.confirmer = confirmer
	return nil
}

func (c *SubmitCheckoutCommand) setNavigator(navigator ports.Navigator) error {
	if navigator == nil {
		return errs.NewValueIsRequiredError("navigator")
	}

	c.navigator = navigator
	return nil
}
