// Package attemptrepo persists submission attempts: which session submitted,
// the outcome and the names of the fields that failed validation.
package attemptrepo

import (
	"time"

	"checkout/internal/core/domain/model/attempt"
	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AttemptDTO is the submission_attempts row. FailedFields is a text[] so that
// failures can be counted per field with unnest.
type AttemptDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SessionID    uuid.UUID      `gorm:"type:uuid;index"`
	Outcome      int            `gorm:"index"`
	FailedFields pq.StringArray `gorm:"type:text[]"`
	CreatedAt    time.Time      `gorm:"index"`
}

func (AttemptDTO) TableName() string {
	return "submission_attempts"
}

func fromDomain(a *attempt.Attempt) AttemptDTO {
	failed := a.FailedFields()
	fields := make(pq.StringArray, 0, len(failed))
	for _, f := range failed {
		fields = append(fields, f.String())
	}

	return AttemptDTO{
		ID:           a.ID().Bytes(),
		SessionID:    a.SessionID().Bytes(),
		Outcome:      int(a.Outcome()),
		FailedFields: fields,
		CreatedAt:    a.CreatedAt(),
	}
}

func toDomain(dto AttemptDTO) (*attempt.Attempt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sessionID, err := kernel.UUIDFromBytes(dto.SessionID[:])
	if err != nil {
		return nil, err
	}

	failed := make([]checkout.Field, 0, len(dto.FailedFields))
	for _, key := range dto.FailedFields {
		f, parseErr := checkout.ParseField(key)
		if parseErr != nil {
			return nil, parseErr
		}
		failed = append(failed, f)
	}

	return attempt.RestoreAttempt(id, sessionID, checkout.Status(dto.Outcome), failed, dto.CreatedAt)
}
