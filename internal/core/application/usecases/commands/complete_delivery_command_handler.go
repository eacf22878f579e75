package commands

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
)

// CompleteDeliveryResult is the structured outcome of a completion.
type CompleteDeliveryResult struct {
	OrderID kernel.UUID
	Status  delivery.Status
}

// CompleteDeliveryCommandHandler settles a delivered order: the dispatcher
// is paid out from the escrow that pickup funded, the sender's escrow is
// released, and the rider becomes available again with their completed
// deliveries counter bumped.
//
// Both wallet postings, the status write and the rider flags share one
// transaction; no observer can see the order completed while the money
// has not moved, or vice versa.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for completion
// operations.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompleteDeliveryCommandHandler) Handle( //nolint:funlen //single transaction script
	ctx context.Context,
	command CompleteDeliveryCommand,
) (CompleteDeliveryResult, error) {
	if err := command.Validate(); err != nil {
		return CompleteDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompleteDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.DeliveryOrderRepository().GetByTxRef(ctx, command.TxRef())
	if err != nil {
		return CompleteDeliveryResult{}, err
	}
	if order.RiderID() == nil {
		return CompleteDeliveryResult{}, errs.NewPreconditionFailedError(
			"rider", "rider attached to order", "none",
		)
	}
	riderID := *order.RiderID()

	loadedStatus := order.Status()
	if err = order.Complete(command.SenderID()); err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err = uow.DeliveryOrderRepository().Update(ctx, order, loadedStatus); err != nil {
		return CompleteDeliveryResult{}, err
	}

	dispatchOwnerID := riderID
	if order.DispatchID() != nil {
		dispatchOwnerID = *order.DispatchID()
	}

	dispatchWallet, err := uow.WalletRepository().GetByOwner(ctx, dispatchOwnerID)
	if err != nil {
		return CompleteDeliveryResult{}, err
	}
	senderWallet, err := uow.WalletRepository().GetByOwner(ctx, order.SenderID())
	if err != nil {
		return CompleteDeliveryResult{}, err
	}

	ledger := NewWalletLedger(uow.WalletRepository(), uow.TransactionRepository())
	fee := order.DeliveryFee().Amount()
	actor := command.SenderID().String()

	payoutDetails, err := transaction.NewDetails(
		transaction.Credit, "dispatch payout on delivery completion", actor,
	)
	if err != nil {
		return CompleteDeliveryResult{}, err
	}
	payoutRecord, err := transaction.NewRecord(
		kernel.NewUUID(),
		order.TxRef(),
		order.AmountDueDispatch(),
		order.SenderID(),
		&dispatchOwnerID,
		order.ID(),
		dispatchWallet.ID(),
		transaction.Payout,
		transaction.PaymentSuccess,
		transaction.DeliveryOrder,
		payoutDetails,
	)
	if err != nil {
		return CompleteDeliveryResult{}, err
	}
	payout := order.AmountDueDispatch().Amount()
	if err = ledger.Post(ctx, dispatchWallet.ID(), payout, -fee, payoutRecord); err != nil {
		return CompleteDeliveryResult{}, err
	}

	releaseDetails, err := transaction.NewDetails(
		transaction.Debit, "sender escrow released on delivery completion", actor,
	)
	if err != nil {
		return CompleteDeliveryResult{}, err
	}
	releaseRecord, err := transaction.NewRecord(
		kernel.NewUUID(),
		order.TxRef(),
		order.DeliveryFee(),
		order.SenderID(),
		nil,
		order.ID(),
		senderWallet.ID(),
		transaction.EscrowRelease,
		transaction.PaymentSuccess,
		transaction.DeliveryOrder,
		releaseDetails,
	)
	if err != nil {
		return CompleteDeliveryResult{}, err
	}
	if err = ledger.Post(ctx, senderWallet.ID(), 0, -fee, releaseRecord); err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err = uow.RiderRepository().MarkFree(ctx, riderID); err != nil {
		return CompleteDeliveryResult{}, err
	}
	if err = uow.RiderRepository().IncrementTotalDeliveries(ctx, riderID); err != nil {
		return CompleteDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CompleteDeliveryResult{}, err
	}

	return CompleteDeliveryResult{
		OrderID: order.ID(),
		Status:  order.Status(),
	}, nil
}
