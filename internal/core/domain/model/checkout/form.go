package checkout

import (
	"errors"

	"checkout/internal/core/domain/model/kernel"
)

var (
	// ErrFormIsNotConstructed is returned by Validate for a Form built as a literal.
	ErrFormIsNotConstructed = errors.New("Form must be created via NewForm constructor")

	// ErrFormIsClosed is returned when an accepted form is submitted again.
	ErrFormIsClosed = errors.New("form is closed: order already placed")
)

const (
	// HomePath is where the buyer is sent after the order is placed.
	HomePath = "/"

	// OrderPlacedMessage is what the confirm collaborator shows the buyer.
	OrderPlacedMessage = "Order placed successfully!"
)

// Form is the Field Store of one checkout session: the current value of every
// field, the current error per field and the submission status.
//
// Form follows these invariants:
//   - all six fields always hold a string (initially "")
//   - error keys are always known fields with non-empty messages
//   - SetField removes exactly the edited field's error and nothing else
//   - ReplaceErrors swaps the whole error map
//
// A Form is not safe for concurrent use; its owner serialises access.
type Form struct {
	id     kernel.UUID
	fields FormFields
	errors ErrorMap
	status Status
}

// NewForm creates an empty Idle form for the given session.
func NewForm(id kernel.UUID) (*Form, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Form{
		id:     id,
		errors: ErrorMap{},
		status: Idle,
	}, nil
}

// RestoreForm rebuilds a form from stored state.
func RestoreForm(id kernel.UUID, fields FormFields, errorMap ErrorMap, status Status) (*Form, error) {
	if err := errors.Join(id.Validate(), errorMap.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Form{
		id:     id,
		fields: fields,
		errors: errorMap.Clone(),
		status: status,
	}, nil
}

// Validate checks that the form was created through NewForm or RestoreForm.
func (f *Form) Validate() error {
	if f == nil || f.status == Unknown {
		return ErrFormIsNotConstructed
	}
	return nil
}

func (f *Form) ID() kernel.UUID {
	return f.id
}

func (f *Form) Status() Status {
	return f.status
}

// Fields returns a snapshot of the current values.
func (f *Form) Fields() FormFields {
	return f.fields
}

// Errors returns a copy of the current error map.
func (f *Form) Errors() ErrorMap {
	return f.errors.Clone()
}

// Error returns the current message for field, if any.
func (f *Form) Error(field Field) (string, bool) {
	msg, ok := f.errors[field]
	return msg, ok
}

// SetField stores value for field and clears that field's error. Any string is
// accepted, including "" and values longer than the field's MaxLength hint.
// The only failure is an unknown field.
func (f *Form) SetField(field Field, value string) error {
	if err := field.Validate(); err != nil {
		return err
	}

	f.fields = f.fields.With(field, value)
	delete(f.errors, field)
	f.status = f.status.Edit()
	return nil
}

// ReplaceErrors swaps the whole error map for a copy of errorMap.
func (f *Form) ReplaceErrors(errorMap ErrorMap) error {
	if err := errorMap.Validate(); err != nil {
		return err
	}

	f.errors = errorMap.Clone()
	return nil
}

// BeginValidation marks the form as being submitted. An accepted form
// returns ErrFormIsClosed.
func (f *Form) BeginValidation() error {
	if f.status.IsTerminal() {
		return ErrFormIsClosed
	}

	next, err := f.status.BeginValidation()
	if err != nil {
		return err
	}

	f.status = next
	return nil
}

// Reject stores the validation outcome and ends the submission as Rejected.
func (f *Form) Reject(errorMap ErrorMap) error {
	next, err := f.status.Reject()
	if err != nil {
		return err
	}
	if err = f.ReplaceErrors(errorMap); err != nil {
		return err
	}

	f.status = next
	return nil
}

// Accept ends the submission as Accepted. Values and errors are left as they are.
func (f *Form) Accept() error {
	next, err := f.status.Accept()
	if err != nil {
		return err
	}

	f.status = next
	return nil
}

// Clone returns a deep copy, used by stores that hand out snapshots.
func (f *Form) Clone() *Form {
	cp := *f
	cp.errors = f.errors.Clone()
	return &cp
}
