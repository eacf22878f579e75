package commands

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
)

// AssignRiderResult is the structured outcome of a successful assignment,
// carrying the rider contact snapshot the caller renders back to the sender.
type AssignRiderResult struct {
	OrderID    kernel.UUID
	RiderID    kernel.UUID
	DispatchID *kernel.UUID
	RiderName  string
	RiderPhone string
	RiderEmail string
	Status     delivery.Status
}

// AssignRiderCommandHandler orchestrates rider assignment: it validates
// rider eligibility, attaches the rider to the order and flips the rider's
// busy flag in one transaction.
//
// Two concurrent assignments for the same order cannot both succeed: the
// order write is conditional on the status observed at load time, and the
// busy-flag write re-checks eligibility inside the update itself. The
// loser of either race gets a typed error and the transaction rolls back.
type AssignRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewAssignRiderCommandHandler creates a handler for rider assignment
// operations.
func NewAssignRiderCommandHandler(uowFactory RiderUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command and returns the rider contact
// snapshot on success.
func (h AssignRiderCommandHandler) Handle(
	ctx context.Context,
	command AssignRiderCommand,
) (AssignRiderResult, error) {
	if err := command.Validate(); err != nil {
		return AssignRiderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignRiderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.DeliveryOrderRepository().GetByTxRef(ctx, command.TxRef())
	if err != nil {
		return AssignRiderResult{}, err
	}

	riderProfile, err := uow.RiderRepository().Get(ctx, command.RiderID())
	if err != nil {
		return AssignRiderResult{}, err
	}
	if err = riderProfile.ValidateEligibility(); err != nil {
		return AssignRiderResult{}, err
	}

	loadedStatus := order.Status()
	if err = order.Assign(
		command.ActorID(),
		riderProfile.ID(),
		riderProfile.DispatcherID(),
		riderProfile.Phone(),
	); err != nil {
		return AssignRiderResult{}, err
	}

	if err = uow.DeliveryOrderRepository().Update(ctx, order, loadedStatus); err != nil {
		return AssignRiderResult{}, err
	}

	if err = uow.RiderRepository().MarkBusy(ctx, riderProfile.ID()); err != nil {
		return AssignRiderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignRiderResult{}, err
	}

	return AssignRiderResult{
		OrderID:    order.ID(),
		RiderID:    riderProfile.ID(),
		DispatchID: riderProfile.DispatcherID(),
		RiderName:  riderProfile.Name(),
		RiderPhone: riderProfile.Phone(),
		RiderEmail: riderProfile.Email(),
		Status:     order.Status(),
	}, nil
}
