// Package queries contains read operations over checkout sessions and the
// submission attempt audit. Queries return read models shaped for the
// inbound adapters.
package queries

import (
	"errors"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrGetSessionQueryIsNotConstructed = errors.New(
		"GetSessionQuery must be created via NewGetSessionQuery constructor",
	)
)

// GetSessionQuery reads the current state of one checkout session.
//
// Example:
//
//	query, err := NewGetSessionQuery(sessionID)
//	if err != nil {
//	    return err
//	}
//	session, err := NewGetSessionQueryHandler(sessionRepo).Handle(ctx, query)
//	for _, field := range session.Fields {
//	    render(field.Label, field.Value, field.Error)
//	}
type GetSessionQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionQuery{}, err
	}

	return GetSessionQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

func (q GetSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetSessionQueryResponse is the rendering view of a session's form.
// Fields are listed in form order.
type GetSessionQueryResponse struct {
	ID     kernel.UUID
	Status checkout.Status
	Fields []checkout.FieldView
	Errors checkout.ErrorMap
}
