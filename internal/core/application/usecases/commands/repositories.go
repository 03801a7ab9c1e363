// Package commands contains the checkout operations that change state:
// opening a session, editing a field and submitting the form.
// Every command is validated before its handler touches a repository.
package commands

import (
	"context"

	"checkout/internal/core/ports"
)

// Unit of Work interfaces used by handlers that write submission attempts.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AttemptRepoFactory provides access to the attempt repository within a transaction.
	AttemptRepoFactory interface {
		AttemptRepository() ports.AttemptRepository
	}

	// AggregateTracker reports what the unit of work has written.
	AggregateTracker interface {
		TrackedAggregates() []any
	}

	// AttemptUoW manages the transaction that records one submission attempt.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.AttemptRepository().Add(ctx, a)
	//   err = uow.Commit(ctx)
	//   written := uow.TrackedAggregates()
	AttemptUoW interface {
		TxManager
		AttemptRepoFactory
		AggregateTracker
	}

	// AttemptUoWFactory creates new attempt unit of work instances.
	AttemptUoWFactory interface {
		Create() AttemptUoW
	}
)
