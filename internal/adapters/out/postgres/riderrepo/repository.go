package riderrepo

import (
	"context"
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/rider"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRiderRepository implements RiderRepository using GORM.
type GormRiderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRiderRepository creates a new GORM rider repository.
func NewGormRiderRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderRepository {
	return &GormRiderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rider profile to the database.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.RiderProfile) error {
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

// Update saves an existing rider profile to the database.
func (r *GormRiderRepository) Update(ctx context.Context, aggregate *rider.RiderProfile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RiderProfileDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rider", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rider profile by ID.
func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.RiderProfile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// MarkBusy sets the busy flag with the full eligibility rule evaluated
// inside the UPDATE. Zero affected rows means the rider either does not
// exist or stopped being eligible since they were read; the caller's
// transaction aborts either way.
func (r *GormRiderRepository) MarkBusy(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RiderProfileDTO{}).
		Where(
			"id = ? AND user_type = ? AND is_online AND NOT has_delivery AND NOT is_blocked",
			id.Bytes(), int(rider.RiderUser),
		).
		Update("has_delivery", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("rider", id.String())
		}
		return errs.NewPreconditionFailedError(
			"rider eligibility", "online, free and not blocked rider", id.String(),
		)
	}

	return nil
}

// MarkFree clears the busy flag. Idempotent: freeing an already free
// rider succeeds.
func (r *GormRiderRepository) MarkFree(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RiderProfileDTO{}).
		Where("id = ?", id.Bytes()).
		Update("has_delivery", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rider", id.String())
	}

	return nil
}

// IncrementCancelCount bumps the rider-initiated cancellation counter.
func (r *GormRiderRepository) IncrementCancelCount(ctx context.Context, id kernel.UUID) error {
	return r.incrementCounter(ctx, id, "order_cancel_count")
}

// IncrementTotalDeliveries bumps the completed-deliveries counter.
func (r *GormRiderRepository) IncrementTotalDeliveries(ctx context.Context, id kernel.UUID) error {
	return r.incrementCounter(ctx, id, "total_deliveries")
}

func (r *GormRiderRepository) incrementCounter(ctx context.Context, id kernel.UUID, column string) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RiderProfileDTO{}).
		Where("id = ?", id.Bytes()).
		Update(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rider", id.String())
	}

	return nil
}

func (r *GormRiderRepository) exists(ctx context.Context, id kernel.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&RiderProfileDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
