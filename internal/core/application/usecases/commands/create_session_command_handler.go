package commands

import (
	"context"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/ports"
)

// CreateSessionCommandHandler stores a new empty form under the command's session id.
type CreateSessionCommandHandler struct {
	sessions ports.SessionRepository
}

func NewCreateSessionCommandHandler(sessions ports.SessionRepository) CreateSessionCommandHandler {
	return CreateSessionCommandHandler{
		sessions: sessions,
	}
}

// Handle creates the Idle form and adds it to the session repository.
func (h CreateSessionCommandHandler) Handle(ctx context.Context, cmd CreateSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	form, err := checkout.NewForm(cmd.SessionID())
	if err != nil {
		return err
	}

	return h.sessions.Add(ctx, form)
}
