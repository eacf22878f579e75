// Package riderrepo provides data transfer objects and mapping functions
// for rider profile persistence. Availability flags and counters are
// mutated through conditional updates so eligibility is always evaluated
// atomically with the write.
package riderrepo

import (
	"time"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderProfileDTO represents the database structure for persisting rider
// profiles.
type RiderProfileDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserType         int
	Name             string     `gorm:"size:128"`
	Phone            string     `gorm:"size:32"`
	Email            string     `gorm:"size:128"`
	DispatcherID     *uuid.UUID `gorm:"type:uuid;index"`
	IsOnline         bool
	HasDelivery      bool
	IsBlocked        bool
	OrderCancelCount int
	TotalDeliveries  int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for rider profile entities.
func (RiderProfileDTO) TableName() string {
	return "rider_profiles"
}

// fromDomain converts a rider profile aggregate to its database
// representation.
func fromDomain(aggregate *rider.RiderProfile) RiderProfileDTO {
	var dispatcherID *uuid.UUID
	if id := aggregate.DispatcherID(); id != nil {
		raw := id.Bytes()
		dispatcherID = &raw
	}

	return RiderProfileDTO{
		ID:               aggregate.ID().Bytes(),
		UserType:         int(aggregate.UserType()),
		Name:             aggregate.Name(),
		Phone:            aggregate.Phone(),
		Email:            aggregate.Email(),
		DispatcherID:     dispatcherID,
		IsOnline:         aggregate.IsOnline(),
		HasDelivery:      aggregate.HasDelivery(),
		IsBlocked:        aggregate.IsBlocked(),
		OrderCancelCount: aggregate.OrderCancelCount(),
		TotalDeliveries:  aggregate.TotalDeliveries(),
	}
}

// toDomain converts a database DTO to a rider profile aggregate.
func toDomain(dto RiderProfileDTO) (*rider.RiderProfile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var dispatcherID *kernel.UUID
	if dto.DispatcherID != nil {
		dID, dispatcherErr := kernel.UUIDFromBytes((*dto.DispatcherID)[:])
		if dispatcherErr != nil {
			return nil, dispatcherErr
		}
		dispatcherID = &dID
	}

	return rider.RestoreRiderProfile(
		id,
		rider.UserType(dto.UserType),
		dto.Name,
		dto.Phone,
		dto.Email,
		dispatcherID,
		dto.IsOnline,
		dto.HasDelivery,
		dto.IsBlocked,
		dto.OrderCancelCount,
		dto.TotalDeliveries,
	)
}
