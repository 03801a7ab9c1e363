package queries

import (
	"context"

	"checkout/internal/core/ports"
)

// GetSessionQueryHandler reads sessions from the in-memory session store.
type GetSessionQueryHandler struct {
	sessions ports.SessionRepository
}

func NewGetSessionQueryHandler(sessions ports.SessionRepository) GetSessionQueryHandler {
	return GetSessionQueryHandler{sessions: sessions}
}

// Handle returns the session view, or an ObjectNotFoundError for unknown,
// expired or completed sessions.
func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	form, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	return GetSessionQueryResponse{
		ID:     form.ID(),
		Status: form.Status(),
		Fields: form.View(),
		Errors: form.Errors(),
	}, nil
}
