package commands

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
)

// AcceptDeliveryResult is the structured outcome of a successful acceptance.
type AcceptDeliveryResult struct {
	OrderID kernel.UUID
	Status  delivery.Status
}

// AcceptDeliveryCommandHandler records a rider's commitment to a delivery.
//
// Accepting an order the rider is already committed to is a no-op that
// still succeeds, so client retries after a dropped response do not fail.
// When the rider claims an unassigned order straight from the pool, the
// handler additionally verifies eligibility and flips the busy flag; a
// rider accepting their own prior assignment is already busy.
type AcceptDeliveryCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery
// acceptance operations.
func NewAcceptDeliveryCommandHandler(uowFactory RiderUoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
func (h AcceptDeliveryCommandHandler) Handle(
	ctx context.Context,
	command AcceptDeliveryCommand,
) (AcceptDeliveryResult, error) {
	if err := command.Validate(); err != nil {
		return AcceptDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcceptDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.DeliveryOrderRepository().GetByTxRef(ctx, command.TxRef())
	if err != nil {
		return AcceptDeliveryResult{}, err
	}

	riderProfile, err := uow.RiderRepository().Get(ctx, command.RiderID())
	if err != nil {
		return AcceptDeliveryResult{}, err
	}

	loadedStatus := order.Status()
	claiming := order.RiderID() == nil
	if claiming {
		if err = riderProfile.ValidateEligibility(); err != nil {
			return AcceptDeliveryResult{}, err
		}
	}

	if err = order.Accept(
		riderProfile.ID(),
		riderProfile.DispatcherID(),
		riderProfile.Phone(),
	); err != nil {
		return AcceptDeliveryResult{}, err
	}

	// Retried acceptance leaves the order untouched; skip the writes.
	if order.Status() != loadedStatus {
		if err = uow.DeliveryOrderRepository().Update(ctx, order, loadedStatus); err != nil {
			return AcceptDeliveryResult{}, err
		}
		if claiming {
			if err = uow.RiderRepository().MarkBusy(ctx, riderProfile.ID()); err != nil {
				return AcceptDeliveryResult{}, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return AcceptDeliveryResult{}, err
	}

	return AcceptDeliveryResult{
		OrderID: order.ID(),
		Status:  order.Status(),
	}, nil
}
