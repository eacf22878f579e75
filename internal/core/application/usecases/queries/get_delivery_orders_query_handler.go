package queries

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryOrdersQueryHandler retrieves delivery orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDeliveryOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryOrdersQueryHandler creates a handler for delivery order
// list queries. Requires a GORM database connection for query execution.
func NewGetDeliveryOrdersQueryHandler(db *gorm.DB) GetDeliveryOrdersQueryHandler {
	return GetDeliveryOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the participant's orders, newest
// first. Matches both sides of the order: the user as sender and the user
// as attached rider.
func (h GetDeliveryOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryOrdersQuery,
) ([]GetDeliveryOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetDeliveryOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tx_ref,
			order_number,
			sender_id,
			rider_id,
			delivery_status,
			payment_status,
			delivery_fee,
			total_price,
			created_at
		FROM delivery_orders
		WHERE sender_id = ? OR rider_id = ?
		ORDER BY created_at DESC
	`, query.ParticipantID().Bytes(), query.ParticipantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order GetDeliveryOrdersQueryResponse
		var id, senderID uuid.UUID
		var riderID *uuid.UUID
		var deliveryStatus, paymentStatus int

		err = rows.Scan(
			&id,
			&order.TxRef,
			&order.OrderNumber,
			&senderID,
			&riderID,
			&deliveryStatus,
			&paymentStatus,
			&order.DeliveryFee,
			&order.TotalPrice,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		order.ID = orderID

		ownerID, idErr := kernel.UUIDFromBytes(senderID[:])
		if idErr != nil {
			return nil, idErr
		}
		order.SenderID = ownerID

		if riderID != nil {
			rid, idErr := kernel.UUIDFromBytes((*riderID)[:])
			if idErr != nil {
				return nil, idErr
			}
			order.RiderID = &rid
		}

		order.Status = delivery.Status(deliveryStatus)
		order.PaymentStatus = delivery.PaymentStatus(paymentStatus)
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
