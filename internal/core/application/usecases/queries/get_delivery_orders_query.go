// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

var ErrGetDeliveryOrdersQueryIsNotConstructed = errors.New(
	"GetDeliveryOrdersQuery must be created via NewGetDeliveryOrdersQuery constructor",
)

// GetDeliveryOrdersQuery retrieves the delivery orders a user participates
// in, either as the sender or as the attached rider.
type GetDeliveryOrdersQuery struct {
	participantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryOrdersQuery creates a query for the given participant.
func NewGetDeliveryOrdersQuery(participantID kernel.UUID) (GetDeliveryOrdersQuery, error) {
	if err := participantID.Validate(); err != nil {
		return GetDeliveryOrdersQuery{}, err
	}

	return GetDeliveryOrdersQuery{
		participantID: participantID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryOrdersQueryIsNotConstructed if validation fails.
func (q GetDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrdersQueryIsNotConstructed)
}

// ParticipantID returns the user whose orders are requested.
func (q GetDeliveryOrdersQuery) ParticipantID() kernel.UUID {
	return q.participantID
}

// GetDeliveryOrdersQueryResponse represents one delivery order in the read
// model, trimmed to what order lists display.
type GetDeliveryOrdersQueryResponse struct {
	ID            kernel.UUID
	TxRef         string
	OrderNumber   string
	SenderID      kernel.UUID
	RiderID       *kernel.UUID
	Status        delivery.Status
	PaymentStatus delivery.PaymentStatus
	DeliveryFee   int64
	TotalPrice    int64
	CreatedAt     time.Time
}
