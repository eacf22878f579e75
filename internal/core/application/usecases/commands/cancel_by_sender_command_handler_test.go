package commands_test

import (
	"testing"

	"github.com/kenmoh/servipal-backend/internal/core/application/usecases/commands"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelBySenderCommandHandler_Handle_BeforePickup(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	order := restoreOrder(t, senderID, &riderID, delivery.Accepted)
	senderWallet := restoreWallet(t, senderID, 0, testTotal)

	orderRepo := new(MockDeliveryOrderRepository)
	riderRepo := new(MockRiderRepository)
	walletRepo := new(MockWalletRepository)
	txRepo := new(MockTransactionRepository)
	uow := new(MockUoW)
	uow.On("DeliveryOrderRepository").Return(orderRepo)
	uow.On("RiderRepository").Return(riderRepo)
	uow.On("WalletRepository").Return(walletRepo)
	uow.On("TransactionRepository").Return(txRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		orderRepo.On("Update", ctx, order, delivery.Accepted).Return(nil).Once(),
		riderRepo.On("MarkFree", ctx, riderID).Return(nil).Once(),
		walletRepo.On("GetByOwner", ctx, senderID).Return(senderWallet, nil).Once(),
		walletRepo.On("ApplyAdjustment", ctx, senderWallet.ID(), testTotal, -testTotal).Return(nil).Once(),
		txRepo.On("Append", ctx, mock.MatchedBy(func(record *transaction.Record) bool {
			return record.TransactionType() == transaction.Refunded &&
				record.Amount().Amount() == testTotal
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCancelBySenderCommand(order.ID(), senderID, "recipient unavailable")
	require.NoError(t, err)

	handler := commands.NewCancelBySenderCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, result.Cancelled)
	assert.Equal(t, commands.MessageCancelledAndRefunded, result.Message)
	assert.Equal(t, delivery.Cancelled, result.Status)
	orderRepo.AssertExpectations(t)
	riderRepo.AssertExpectations(t)
	walletRepo.AssertExpectations(t)
	txRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelBySenderCommandHandler_Handle_AfterPickupFlagsOnly(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	order := restoreOrder(t, senderID, &riderID, delivery.PickedUp)

	orderRepo := new(MockDeliveryOrderRepository)
	riderRepo := new(MockRiderRepository)
	walletRepo := new(MockWalletRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryOrderRepository").Return(orderRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once()
	orderRepo.On("Update", ctx, order, delivery.PickedUp).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCancelBySenderCommand(order.ID(), senderID, "changed my mind")
	require.NoError(t, err)

	handler := commands.NewCancelBySenderCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.False(t, result.Cancelled)
	assert.Equal(t, commands.MessageMarkedForReturn, result.Message)
	assert.Equal(t, delivery.PickedUp, result.Status)
	assert.True(t, order.IsSenderCancelled())
	assert.NotNil(t, order.RiderID())

	riderRepo.AssertNotCalled(t, "MarkFree", mock.Anything, mock.Anything)
	walletRepo.AssertNotCalled(t, "ApplyAdjustment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelBySenderCommandHandler_Handle_UnassignedOrder(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	order := restoreOrder(t, senderID, nil, delivery.PaidNeedsRider)
	senderWallet := restoreWallet(t, senderID, 0, testTotal)

	orderRepo := new(MockDeliveryOrderRepository)
	riderRepo := new(MockRiderRepository)
	walletRepo := new(MockWalletRepository)
	txRepo := new(MockTransactionRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryOrderRepository").Return(orderRepo)
	uow.On("WalletRepository").Return(walletRepo)
	uow.On("TransactionRepository").Return(txRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once()
	orderRepo.On("Update", ctx, order, delivery.PaidNeedsRider).Return(nil).Once()
	walletRepo.On("GetByOwner", ctx, senderID).Return(senderWallet, nil).Once()
	walletRepo.On("ApplyAdjustment", ctx, senderWallet.ID(), testTotal, -testTotal).Return(nil).Once()
	txRepo.On("Append", ctx, mock.Anything).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCancelBySenderCommand(order.ID(), senderID, "no longer needed")
	require.NoError(t, err)

	handler := commands.NewCancelBySenderCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, result.Cancelled)
	riderRepo.AssertNotCalled(t, "MarkFree", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelBySenderCommandHandler_Handle_TerminalOrderRejected(t *testing.T) {
	ctx := t.Context()
	senderID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	order := restoreOrder(t, senderID, &riderID, delivery.Delivered)

	orderRepo := new(MockDeliveryOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryOrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewCancelBySenderCommand(order.ID(), senderID, "too late")
	require.NoError(t, err)

	handler := commands.NewCancelBySenderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelBySenderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	handler := commands.NewCancelBySenderCommandHandler(factory)

	_, err := handler.Handle(t.Context(), commands.CancelBySenderCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelBySenderCommandIsNotConstructed)
}
