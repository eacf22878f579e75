package commands

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
)

// DeclineDeliveryCommandHandler releases an assignment and refunds the
// delivery fee to the sender.
//
// A decline requires an escrow hold recorded for the order's transaction
// reference: the refund reverses money that payment capture put on hold,
// so a missing hold means the flow is in an inconsistent state and the
// whole operation fails rather than clearing the assignment silently.
// Decline is an undo, not a terminal state; the order re-enters the
// unassigned pool and the rider becomes free again.
type DeclineDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeclineDeliveryCommandHandler creates a handler for delivery decline
// operations.
func NewDeclineDeliveryCommandHandler(uowFactory UoWFactory) DeclineDeliveryCommandHandler {
	return DeclineDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decline command.
func (h DeclineDeliveryCommandHandler) Handle(ctx context.Context, command DeclineDeliveryCommand) error {
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

	order, err := uow.DeliveryOrderRepository().GetByTxRef(ctx, command.TxRef())
	if err != nil {
		return err
	}

	holdExists, err := uow.TransactionRepository().HasEscrowHold(ctx, order.TxRef())
	if err != nil {
		return err
	}
	if !holdExists {
		return errs.NewPreconditionFailedError("escrow hold", "hold recorded for transaction reference", "none")
	}

	loadedStatus := order.Status()
	if err = order.Decline(command.RiderID()); err != nil {
		return err
	}

	if err = uow.DeliveryOrderRepository().Update(ctx, order, loadedStatus); err != nil {
		return err
	}

	if err = uow.RiderRepository().MarkFree(ctx, command.RiderID()); err != nil {
		return err
	}

	senderWallet, err := uow.WalletRepository().GetByOwner(ctx, order.SenderID())
	if err != nil {
		return err
	}

	details, err := transaction.NewDetails(
		transaction.Credit,
		"delivery fee refund on rider decline",
		command.RiderID().String(),
	)
	if err != nil {
		return err
	}

	record, err := transaction.NewRecord(
		kernel.NewUUID(),
		order.TxRef(),
		order.DeliveryFee(),
		order.SenderID(),
		nil,
		order.ID(),
		senderWallet.ID(),
		transaction.Refunded,
		transaction.PaymentSuccess,
		transaction.DeliveryOrder,
		details,
	)
	if err != nil {
		return err
	}

	ledger := NewWalletLedger(uow.WalletRepository(), uow.TransactionRepository())
	fee := order.DeliveryFee().Amount()
	if err = ledger.Post(ctx, senderWallet.ID(), fee, -fee, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
