// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery order persistence. This package implements the repository
// pattern for the DeliveryOrder aggregate, handling the conversion between
// domain entities and database representations.
package deliveryrepo

import (
	"time"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryOrderDTO represents the database structure for persisting delivery
// order aggregates. The transaction reference carries a unique index because
// it is the external correlation key for the whole payment flow; the status
// column is indexed for the unassigned-pool and stale-assignment scans.
type DeliveryOrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TxRef             string     `gorm:"size:64;uniqueIndex"`
	OrderNumber       string     `gorm:"size:32"`
	SenderID          uuid.UUID  `gorm:"type:uuid;index"`
	RiderID           *uuid.UUID `gorm:"type:uuid;index"`
	DispatchID        *uuid.UUID `gorm:"type:uuid"`
	RiderPhone        *string    `gorm:"size:32"`
	PaymentStatus     int
	DeliveryStatus    int `gorm:"index"`
	DeliveryFee       int64
	AmountDueDispatch int64
	TotalPrice        int64
	IsSenderCancelled bool
	CancelReason      *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for delivery order entities.
func (DeliveryOrderDTO) TableName() string {
	return "delivery_orders"
}

// fromDomain converts a delivery order aggregate to its database
// representation.
func fromDomain(aggregate *delivery.DeliveryOrder) DeliveryOrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.RiderID(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	var dispatchID *uuid.UUID
	if id := aggregate.DispatchID(); id != nil {
		raw := id.Bytes()
		dispatchID = &raw
	}

	return DeliveryOrderDTO{
		ID:                aggregate.ID().Bytes(),
		TxRef:             aggregate.TxRef(),
		OrderNumber:       aggregate.OrderNumber(),
		SenderID:          aggregate.SenderID().Bytes(),
		RiderID:           riderID,
		DispatchID:        dispatchID,
		RiderPhone:        aggregate.RiderPhone(),
		PaymentStatus:     int(aggregate.PaymentStatus()),
		DeliveryStatus:    int(aggregate.Status()),
		DeliveryFee:       aggregate.DeliveryFee().Amount(),
		AmountDueDispatch: aggregate.AmountDueDispatch().Amount(),
		TotalPrice:        aggregate.TotalPrice().Amount(),
		IsSenderCancelled: aggregate.IsSenderCancelled(),
		CancelReason:      aggregate.CancelReason(),
	}
}

// toDomain converts a database DTO to a delivery order aggregate using
// RestoreDeliveryOrder, so the restored order enforces the same invariants
// as one mutated through domain operations.
func toDomain(dto DeliveryOrderDTO) (*delivery.DeliveryOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	var dispatchID *kernel.UUID
	if dto.DispatchID != nil {
		dID, dispatchErr := kernel.UUIDFromBytes((*dto.DispatchID)[:])
		if dispatchErr != nil {
			return nil, dispatchErr
		}
		dispatchID = &dID
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	amountDueDispatch, err := kernel.NewMoney(dto.AmountDueDispatch)
	if err != nil {
		return nil, err
	}
	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDeliveryOrder(
		id,
		dto.TxRef,
		dto.OrderNumber,
		senderID,
		riderID,
		dispatchID,
		dto.RiderPhone,
		delivery.PaymentStatus(dto.PaymentStatus),
		delivery.Status(dto.DeliveryStatus),
		deliveryFee,
		amountDueDispatch,
		totalPrice,
		dto.IsSenderCancelled,
		dto.CancelReason,
	)
}
