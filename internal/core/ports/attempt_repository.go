package ports

import (
	"context"

	"checkout/internal/core/domain/model/attempt"
)

// AttemptRepository records the outcome of checkout submissions.
// Only the outcome and the names of failed fields are stored, never values.
type AttemptRepository interface {
	// Add persists a new attempt.
	Add(ctx context.Context, a *attempt.Attempt) error
}
