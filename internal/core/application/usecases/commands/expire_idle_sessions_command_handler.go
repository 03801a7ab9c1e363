package commands

import (
	"context"

	"checkout/internal/core/ports"
)

// ExpireIdleSessionsCommandHandler sweeps abandoned sessions.
type ExpireIdleSessionsCommandHandler struct {
	sessions ports.SessionRepository
}

func NewExpireIdleSessionsCommandHandler(sessions ports.SessionRepository) ExpireIdleSessionsCommandHandler {
	return ExpireIdleSessionsCommandHandler{sessions: sessions}
}

// Handle returns how many sessions were discarded.
func (h ExpireIdleSessionsCommandHandler) Handle(ctx context.Context, cmd ExpireIdleSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.sessions.DeleteIdleSince(ctx, cmd.Cutoff())
}
