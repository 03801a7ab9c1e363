package queries

import (
	"errors"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/pkg/guard"
)

var (
	ErrGetSubmissionStatsQueryIsNotConstructed = errors.New(
		"GetSubmissionStatsQuery must be created via NewGetSubmissionStatsQuery constructor",
	)
)

// GetSubmissionStatsQuery aggregates the submission attempt audit.
type GetSubmissionStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSubmissionStatsQuery() GetSubmissionStatsQuery {
	return GetSubmissionStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSubmissionStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetSubmissionStatsQueryIsNotConstructed)
}

// GetSubmissionStatsQueryResponse holds attempt totals and how often each
// field failed validation. Fields that never failed are reported with 0.
//
// Example:
//
//	GetSubmissionStatsQueryResponse{
//	    Total:    12,
//	    Accepted: 4,
//	    Rejected: 8,
//	    FailuresByField: map[checkout.Field]int64{
//	        checkout.FieldEmail: 5,
//	        checkout.FieldCvv:   3,
//	        ...
//	    },
//	}
type GetSubmissionStatsQueryResponse struct {
	Total           int64
	Accepted        int64
	Rejected        int64
	FailuresByField map[checkout.Field]int64
}
