package ports

import (
	"context"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
)

// SessionRepository stores the live checkout forms, one per session.
// Forms are never written to durable storage.
type SessionRepository interface {
	// Add stores a new form. The form must be valid and its id unused.
	Add(ctx context.Context, form *checkout.Form) error

	// Get returns a snapshot of the form; changes to it are not stored.
	// Returns an ObjectNotFoundError for unknown or expired sessions.
	Get(ctx context.Context, id kernel.UUID) (*checkout.Form, error)

	// Update runs mutate on the stored form while holding the session
	// exclusively, so that edits and submits of one session never interleave.
	// When mutate returns an error the form is left as it was before the call.
	Update(ctx context.Context, id kernel.UUID, mutate func(form *checkout.Form) error) error

	// Delete discards a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteIdleSince discards every session not touched since cutoff and
	// returns how many were removed.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
}
