package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryOrderRepository implements DeliveryOrderRepository using GORM.
type GormDeliveryOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryOrderRepository creates a new GORM delivery order repository.
func NewGormDeliveryOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryOrderRepository {
	return &GormDeliveryOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery order to the database.
func (r *GormDeliveryOrderRepository) Add(ctx context.Context, aggregate *delivery.DeliveryOrder) error {
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

// Update saves an existing delivery order, conditional on the row still
// holding expectedStatus. The status predicate is evaluated inside the
// UPDATE itself, so two concurrent transitions for the same order cannot
// both succeed; the loser gets a ConflictError.
func (r *GormDeliveryOrderRepository) Update(
	ctx context.Context,
	aggregate *delivery.DeliveryOrder,
	expectedStatus delivery.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryOrderDTO{}).
		Where("id = ? AND delivery_status = ?", dto.ID, int(expectedStatus)).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyMissedUpdate distinguishes a vanished row from a row that was
// concurrently moved to another status.
func (r *GormDeliveryOrderRepository) classifyMissedUpdate(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&DeliveryOrderDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("delivery order", id.String())
	}
	return errs.NewConflictError("delivery order status", id.String())
}

// Get retrieves a delivery order by ID.
func (r *GormDeliveryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTxRef retrieves a delivery order by its transaction reference.
func (r *GormDeliveryOrderRepository) GetByTxRef(ctx context.Context, txRef string) (*delivery.DeliveryOrder, error) {
	if txRef == "" {
		return nil, errs.NewValueIsRequiredError("txRef")
	}

	var dto DeliveryOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "tx_ref = ?", txRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery order", txRef)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAssignedBefore retrieves orders stuck in Assigned status whose last
// update is older than the cutoff.
func (r *GormDeliveryOrderRepository) GetAllAssignedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*delivery.DeliveryOrder, error) {
	var dtos []DeliveryOrderDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "delivery_status = ? AND updated_at < ?", int(delivery.Assigned), cutoff).Error; err != nil {
		return nil, err
	}

	orders := make([]*delivery.DeliveryOrder, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
