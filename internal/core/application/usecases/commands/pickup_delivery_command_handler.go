package commands

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"
)

// PickupDeliveryResult is the structured outcome of a successful pickup.
type PickupDeliveryResult struct {
	OrderID kernel.UUID
	Status  delivery.Status
}

// PickupDeliveryCommandHandler records package pickup and moves the
// delivery fee into the dispatcher's escrow.
//
// The hold placed here is what completion later pays out from: the ledger
// postings down the lattice assume this one already happened, which is why
// pickup cannot be skipped.
type PickupDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewPickupDeliveryCommandHandler creates a handler for pickup operations.
func NewPickupDeliveryCommandHandler(uowFactory UoWFactory) PickupDeliveryCommandHandler {
	return PickupDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command.
func (h PickupDeliveryCommandHandler) Handle(
	ctx context.Context,
	command PickupDeliveryCommand,
) (PickupDeliveryResult, error) {
	if err := command.Validate(); err != nil {
		return PickupDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PickupDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.DeliveryOrderRepository().GetByTxRef(ctx, command.TxRef())
	if err != nil {
		return PickupDeliveryResult{}, err
	}

	loadedStatus := order.Status()
	if err = order.Pickup(command.RiderID()); err != nil {
		return PickupDeliveryResult{}, err
	}

	if err = uow.DeliveryOrderRepository().Update(ctx, order, loadedStatus); err != nil {
		return PickupDeliveryResult{}, err
	}

	// Independent riders have no dispatcher; the fee is held for the rider.
	dispatchOwnerID := command.RiderID()
	if order.DispatchID() != nil {
		dispatchOwnerID = *order.DispatchID()
	}

	dispatchWallet, err := uow.WalletRepository().GetByOwner(ctx, dispatchOwnerID)
	if err != nil {
		return PickupDeliveryResult{}, err
	}

	details, err := transaction.NewDetails(
		transaction.Credit,
		"delivery fee held in dispatch escrow on pickup",
		command.RiderID().String(),
	)
	if err != nil {
		return PickupDeliveryResult{}, err
	}

	record, err := transaction.NewRecord(
		kernel.NewUUID(),
		order.TxRef(),
		order.DeliveryFee(),
		order.SenderID(),
		&dispatchOwnerID,
		order.ID(),
		dispatchWallet.ID(),
		transaction.EscrowHold,
		transaction.PaymentSuccess,
		transaction.DeliveryOrder,
		details,
	)
	if err != nil {
		return PickupDeliveryResult{}, err
	}

	ledger := NewWalletLedger(uow.WalletRepository(), uow.TransactionRepository())
	if err = ledger.Post(ctx, dispatchWallet.ID(), 0, order.DeliveryFee().Amount(), record); err != nil {
		return PickupDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PickupDeliveryResult{}, err
	}

	return PickupDeliveryResult{
		OrderID: order.ID(),
		Status:  order.Status(),
	}, nil
}
