package commands

import (
	"context"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/ports"
)

// SetFieldCommandHandler applies a field edit inside the session's critical
// section. The edit clears the field's error and never runs validation.
type SetFieldCommandHandler struct {
	sessions ports.SessionRepository
}

func NewSetFieldCommandHandler(sessions ports.SessionRepository) SetFieldCommandHandler {
	return SetFieldCommandHandler{
		sessions: sessions,
	}
}

// Handle stores the new value. Returns an ObjectNotFoundError for unknown sessions.
func (h SetFieldCommandHandler) Handle(ctx context.Context, cmd SetFieldCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, cmd.SessionID(), func(form *checkout.Form) error {
		return form.SetField(cmd.Field(), cmd.Value())
	})
}
