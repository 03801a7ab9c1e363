package attemptrepo

import (
	"context"

	"checkout/internal/core/domain/model/attempt"
	"checkout/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAttemptRepository implements AttemptRepository using GORM.
type GormAttemptRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAttemptRepository creates a new GORM attempt repository.
func NewGormAttemptRepository(db *gorm.DB, tracker aggregateTracker) *GormAttemptRepository {
	return &GormAttemptRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new attempt.
func (r *GormAttemptRepository) Add(ctx context.Context, aggregate *attempt.Attempt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetBySession returns the attempts of one session, oldest first. The
// service only writes attempts; tests read them back through this.
func (r *GormAttemptRepository) GetBySession(ctx context.Context, sessionID kernel.UUID) ([]*attempt.Attempt, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AttemptDTO
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	attempts := make([]*attempt.Attempt, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}

	return attempts, nil
}
