package commands

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"
)

// Caller-facing messages for the two cancellation outcomes.
const (
	MessageCancelledAndRefunded = "cancelled and refunded"
	MessageCancelled            = "cancelled"
	MessageMarkedForReturn      = "marked for return"
)

// CancelBySenderResult is the structured outcome of a sender cancellation.
// Cancelled is false when the order was past pickup and only flagged.
type CancelBySenderResult struct {
	OrderID   kernel.UUID
	Status    delivery.Status
	Cancelled bool
	Message   string
}

// CancelBySenderCommandHandler terminates an order on the sender's behalf.
//
// Before pickup the order moves to Cancelled, any attached rider is freed
// and the full price is refunded to the sender's spendable balance. After
// pickup the package is already with the rider, so the order is flagged
// for return logistics instead and nothing else changes.
type CancelBySenderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelBySenderCommandHandler creates a handler for sender
// cancellations.
func NewCancelBySenderCommandHandler(uowFactory UoWFactory) CancelBySenderCommandHandler {
	return CancelBySenderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelBySenderCommandHandler) Handle(
	ctx context.Context,
	command CancelBySenderCommand,
) (CancelBySenderResult, error) {
	if err := command.Validate(); err != nil {
		return CancelBySenderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelBySenderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.DeliveryOrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return CancelBySenderResult{}, err
	}

	// Captured before the aggregate clears the assignment fields.
	attachedRider := order.RiderID()
	wasPaid := order.PaymentStatus() == delivery.Paid

	loadedStatus := order.Status()
	cancelled, err := order.CancelBySender(command.SenderID(), command.Reason())
	if err != nil {
		return CancelBySenderResult{}, err
	}

	if err = uow.DeliveryOrderRepository().Update(ctx, order, loadedStatus); err != nil {
		return CancelBySenderResult{}, err
	}

	if !cancelled {
		if err = uow.Commit(ctx); err != nil {
			return CancelBySenderResult{}, err
		}
		return CancelBySenderResult{
			OrderID:   order.ID(),
			Status:    order.Status(),
			Cancelled: false,
			Message:   MessageMarkedForReturn,
		}, nil
	}

	if attachedRider != nil {
		if err = uow.RiderRepository().MarkFree(ctx, *attachedRider); err != nil {
			return CancelBySenderResult{}, err
		}
	}

	// Nothing was collected for an unpaid order, so there is nothing to
	// refund.
	message := MessageCancelled
	if wasPaid {
		if err = h.refundTotalPrice(ctx, uow, order, command); err != nil {
			return CancelBySenderResult{}, err
		}
		message = MessageCancelledAndRefunded
	}

	if err = uow.Commit(ctx); err != nil {
		return CancelBySenderResult{}, err
	}

	return CancelBySenderResult{
		OrderID:   order.ID(),
		Status:    order.Status(),
		Cancelled: true,
		Message:   message,
	}, nil
}

func (h CancelBySenderCommandHandler) refundTotalPrice(
	ctx context.Context,
	uow UoW,
	order *delivery.DeliveryOrder,
	command CancelBySenderCommand,
) error {
	senderWallet, err := uow.WalletRepository().GetByOwner(ctx, order.SenderID())
	if err != nil {
		return err
	}

	details, err := transaction.NewDetails(
		transaction.Credit,
		"total price refund on sender cancellation",
		command.SenderID().String(),
	)
	if err != nil {
		return err
	}

	record, err := transaction.NewRecord(
		kernel.NewUUID(),
		order.TxRef(),
		order.TotalPrice(),
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
	total := order.TotalPrice().Amount()
	return ledger.Post(ctx, senderWallet.ID(), total, -total, record)
}
