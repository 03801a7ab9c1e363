package queries

import (
	"context"

	"checkout/internal/core/domain/model/checkout"

	"gorm.io/gorm"
)

// GetSubmissionStatsQueryHandler reads submission_attempts with raw SQL.
type GetSubmissionStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetSubmissionStatsQueryHandler(db *gorm.DB) GetSubmissionStatsQueryHandler {
	return GetSubmissionStatsQueryHandler{db: db}
}

// Handle returns the totals and per-field failure counts.
func (h GetSubmissionStatsQueryHandler) Handle(
	ctx context.Context,
	query GetSubmissionStatsQuery,
) (GetSubmissionStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSubmissionStatsQueryResponse{}, err
	}

	stats := GetSubmissionStatsQueryResponse{
		FailuresByField: make(map[checkout.Field]int64, len(checkout.Fields())),
	}
	for _, f := range checkout.Fields() {
		stats.FailuresByField[f] = 0
	}

	db := h.db.WithContext(ctx)
	err := db.Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE outcome = ?),
			COUNT(*) FILTER (WHERE outcome = ?)
		FROM submission_attempts
	`, int(checkout.Accepted), int(checkout.Rejected)).
		Row().
		Scan(&stats.Total, &stats.Accepted, &stats.Rejected)
	if err != nil {
		return GetSubmissionStatsQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT
			field,
			COUNT(*)
		FROM submission_attempts, unnest(failed_fields) AS field
		GROUP BY field
	`).Rows()
	if err != nil {
		return GetSubmissionStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int64
		if err = rows.Scan(&key, &count); err != nil {
			return GetSubmissionStatsQueryResponse{}, err
		}

		field, parseErr := checkout.ParseField(key)
		if parseErr != nil {
			return GetSubmissionStatsQueryResponse{}, parseErr
		}
		stats.FailuresByField[field] = count
	}

	if err = rows.Err(); err != nil {
		return GetSubmissionStatsQueryResponse{}, err
	}

	return stats, nil
}
