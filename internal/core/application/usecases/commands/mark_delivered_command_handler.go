package commands

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
)

// MarkDeliveredResult is the structured outcome of a delivery report.
type MarkDeliveredResult struct {
	OrderID kernel.UUID
	Status  delivery.Status
}

// MarkDeliveredCommandHandler records the hand-over of the package.
// No ledger effect; the money moves when the sender confirms completion.
type MarkDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery reports.
func NewMarkDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery report command.
func (h MarkDeliveredCommandHandler) Handle(
	ctx context.Context,
	command MarkDeliveredCommand,
) (MarkDeliveredResult, error) {
	if err := command.Validate(); err != nil {
		return MarkDeliveredResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MarkDeliveredResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.DeliveryOrderRepository().GetByTxRef(ctx, command.TxRef())
	if err != nil {
		return MarkDeliveredResult{}, err
	}

	loadedStatus := order.Status()
	if err = order.MarkDelivered(command.RiderID()); err != nil {
		return MarkDeliveredResult{}, err
	}

	if err = uow.DeliveryOrderRepository().Update(ctx, order, loadedStatus); err != nil {
		return MarkDeliveredResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MarkDeliveredResult{}, err
	}

	return MarkDeliveredResult{
		OrderID: order.ID(),
		Status:  order.Status(),
	}, nil
}
