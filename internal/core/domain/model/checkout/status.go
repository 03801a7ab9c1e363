package checkout

import (
	"fmt"

	"checkout/internal/pkg/errs"
)

// Status is the submission state of a checkout form.
//
// State transitions:
//
//	Idle ──submit──> Validating ──┬──> Rejected ──edit──> Idle
//	  ^                           │       │
//	  │                           │       └──submit──> Validating
//	  │                           └──> Accepted (terminal)
//	  └── new form
type Status int

const (
	// Unknown catches uninitialised Status values.
	Unknown Status = iota

	// Idle is the state of a new form and of a rejected form after an edit.
	Idle

	// Validating is held only while a submission is being decided.
	Validating

	// Rejected means the last submission found at least one invalid field.
	Rejected

	// Accepted means the order was confirmed. No further submission is allowed.
	Accepted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Idle:       "Idle",
		Validating: "Validating",
		Rejected:   "Rejected",
		Accepted:   "Accepted",
	}
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Accepted {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the form can no longer be submitted.
func (s Status) IsTerminal() bool {
	return s == Accepted
}

// BeginValidation moves an Idle or Rejected form into Validating.
func (s Status) BeginValidation() (Status, error) {
	if s != Idle && s != Rejected {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to submit", s.String()),
		)
	}
	return Validating, nil
}

// Reject ends a validation pass that found errors.
func (s Status) Reject() (Status, error) {
	if s != Validating {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}
	return Rejected, nil
}

// Accept ends a validation pass that found no errors.
func (s Status) Accept() (Status, error) {
	if s != Validating {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return Accepted, nil
}

// Edit returns the status after a field edit: a Rejected form goes back to
// Idle, every other status is kept. Edits never fail.
func (s Status) Edit() Status {
	if s == Rejected {
		return Idle
	}
	return s
}
