package commands

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
)

// MarkInTransitResult is the structured outcome of a transit report.
type MarkInTransitResult struct {
	OrderID kernel.UUID
	Status  delivery.Status
}

// MarkInTransitCommandHandler records that the package left the pickup
// point. Pure status hop, no ledger effect.
type MarkInTransitCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkInTransitCommandHandler creates a handler for transit reports.
func NewMarkInTransitCommandHandler(uowFactory OrderUoWFactory) MarkInTransitCommandHandler {
	return MarkInTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transit command.
func (h MarkInTransitCommandHandler) Handle(
	ctx context.Context,
	command MarkInTransitCommand,
) (MarkInTransitResult, error) {
	if err := command.Validate(); err != nil {
		return MarkInTransitResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MarkInTransitResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.DeliveryOrderRepository().GetByTxRef(ctx, command.TxRef())
	if err != nil {
		return MarkInTransitResult{}, err
	}

	loadedStatus := order.Status()
	if err = order.MarkInTransit(command.RiderID()); err != nil {
		return MarkInTransitResult{}, err
	}

	if err = uow.DeliveryOrderRepository().Update(ctx, order, loadedStatus); err != nil {
		return MarkInTransitResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MarkInTransitResult{}, err
	}

	return MarkInTransitResult{
		OrderID: order.ID(),
		Status:  order.Status(),
	}, nil
}
