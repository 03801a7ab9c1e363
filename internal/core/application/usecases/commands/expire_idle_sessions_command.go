package commands

import (
	"errors"
	"time"

	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var (
	ErrExpireIdleSessionsCommandIsNotConstructed = errors.New(
		"ExpireIdleSessionsCommand must be created via NewExpireIdleSessionsCommand constructor",
	)
)

// ExpireIdleSessionsCommand discards sessions not touched since Cutoff.
type ExpireIdleSessionsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewExpireIdleSessionsCommand(cutoff time.Time) (ExpireIdleSessionsCommand, error) {
	command := ExpireIdleSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCutoff(cutoff); err != nil {
		return ExpireIdleSessionsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireIdleSessionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireIdleSessionsCommandIsNotConstructed)
}

func (c ExpireIdleSessionsCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *ExpireIdleSessionsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	c.cutoff = cutoff
	return nil
}
