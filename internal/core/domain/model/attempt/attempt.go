// Package attempt models the audit record kept for every checkout submission.
//
// An Attempt stores which session submitted, whether the submission was
// accepted and which fields failed validation. It never carries field values:
// buyer and payment data stay inside the session's Form.
package attempt

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
)

var (
	// ErrAttemptIsNotConstructed is returned by Validate for literal Attempts.
	ErrAttemptIsNotConstructed = errors.New("Attempt must be created via NewAttempt constructor")
)

// Attempt is the outcome of one submission.
//
// Invariants:
//   - outcome is Accepted or Rejected
//   - an Accepted attempt has no failed fields
//   - a Rejected attempt has at least one failed field, each a known field, in form order
type Attempt struct {
	id           kernel.UUID
	sessionID    kernel.UUID
	outcome      checkout.Status
	failedFields []checkout.Field
	createdAt    time.Time
}

// NewAttempt records the outcome of a submission of form at createdAt.
func NewAttempt(form *checkout.Form, createdAt time.Time) (*Attempt, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	return RestoreAttempt(kernel.NewUUID(), form.ID(), form.Status(), form.Errors().Fields(), createdAt)
}

// RestoreAttempt rebuilds an attempt from storage.
func RestoreAttempt(
	id, sessionID kernel.UUID,
	outcome checkout.Status,
	failedFields []checkout.Field,
	createdAt time.Time,
) (*Attempt, error) {
	a := &Attempt{
		id:           id,
		sessionID:    sessionID,
		outcome:      outcome,
		failedFields: slices.Clone(failedFields),
		createdAt:    createdAt.UTC(),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the attempt invariants.
func (a *Attempt) Validate() error {
	if a == nil || a.outcome == checkout.Unknown {
		return ErrAttemptIsNotConstructed
	}

	err := errors.Join(a.id.Validate(), a.sessionID.Validate())
	if a.createdAt.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("createdAt"))
	}
	for _, f := range a.failedFields {
		err = errors.Join(err, f.Validate())
	}

	switch a.outcome {
	case checkout.Accepted:
		if len(a.failedFields) > 0 {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
				"failedFields", fmt.Errorf("accepted attempt has %d failed fields", len(a.failedFields))))
		}
	case checkout.Rejected:
		if len(a.failedFields) == 0 {
			err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause(
				"failedFields", errors.New("rejected attempt without failed fields")))
		}
	default:
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"outcome", fmt.Errorf("%s is not a submission outcome", a.outcome)))
	}

	return err
}

func (a *Attempt) ID() kernel.UUID {
	return a.id
}

func (a *Attempt) SessionID() kernel.UUID {
	return a.sessionID
}

func (a *Attempt) Outcome() checkout.Status {
	return a.outcome
}

// FailedFields returns a copy of the failed field list.
func (a *Attempt) FailedFields() []checkout.Field {
	return slices.Clone(a.failedFields)
}

func (a *Attempt) CreatedAt() time.Time {
	return a.createdAt
}

// IsAccepted reports whether the submission placed the order.
func (a *Attempt) IsAccepted() bool {
	return a.outcome == checkout.Accepted
}
