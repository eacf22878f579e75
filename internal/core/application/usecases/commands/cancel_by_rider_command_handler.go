package commands

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
)

// CancelByRiderCommandHandler bumps the attached rider's cancellation
// counter. The counter feeds rider-reliability scoring by an external
// collaborator; releasing the assignment itself is the decline flow's job.
type CancelByRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCancelByRiderCommandHandler creates a handler for rider cancellation
// counting.
func NewCancelByRiderCommandHandler(uowFactory RiderUoWFactory) CancelByRiderCommandHandler {
	return CancelByRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider cancellation command. Fails with a
// precondition error when the order has no rider attached.
func (h CancelByRiderCommandHandler) Handle(ctx context.Context, command CancelByRiderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.DeliveryOrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if order.RiderID() == nil {
		return errs.NewPreconditionFailedError("rider", "rider attached to order", "none")
	}

	if err = uow.RiderRepository().IncrementCancelCount(ctx, *order.RiderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
