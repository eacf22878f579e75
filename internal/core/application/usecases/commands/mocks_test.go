package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/kenmoh/servipal-backend/internal/core/application/usecases/commands"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/rider"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/wallet"
	"github.com/kenmoh/servipal-backend/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryOrderRepository struct{ mock.Mock }

func (m *MockDeliveryOrderRepository) Add(ctx context.Context, aggregate *delivery.DeliveryOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryOrderRepository) Update(
	ctx context.Context,
	aggregate *delivery.DeliveryOrder,
	expectedStatus delivery.Status,
) error {
	args := m.Called(ctx, aggregate, expectedStatus)
	return args.Error(0)
}

func (m *MockDeliveryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) GetByTxRef(ctx context.Context, txRef string) (*delivery.DeliveryOrder, error) {
	args := m.Called(ctx, txRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.DeliveryOrder), args.Error(1)
}

func (m *MockDeliveryOrderRepository) GetAllAssignedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*delivery.DeliveryOrder, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.DeliveryOrder), args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, aggregate *rider.RiderProfile) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRiderRepository) Update(ctx context.Context, aggregate *rider.RiderProfile) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.RiderProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.RiderProfile), args.Error(1)
}

func (m *MockRiderRepository) MarkBusy(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRiderRepository) MarkFree(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRiderRepository) IncrementCancelCount(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRiderRepository) IncrementTotalDeliveries(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWalletRepository struct{ mock.Mock }

func (m *MockWalletRepository) Add(ctx context.Context, aggregate *wallet.Wallet) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) (*wallet.Wallet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ApplyAdjustment(
	ctx context.Context,
	walletID kernel.UUID,
	balanceDelta, escrowDelta int64,
) error {
	args := m.Called(ctx, walletID, balanceDelta, escrowDelta)
	return args.Error(0)
}

type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) Append(ctx context.Context, record *transaction.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTransactionRepository) HasEscrowHold(ctx context.Context, txRef string) (bool, error) {
	args := m.Called(ctx, txRef)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit-of-work composition used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryOrderRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

func (m *MockUoW) WalletRepository() ports.WalletRepository {
	args := m.Called()
	return args.Get(0).(ports.WalletRepository)
}

func (m *MockUoW) TransactionRepository() ports.TransactionRepository {
	args := m.Called()
	return args.Get(0).(ports.TransactionRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRiderUoWFactory struct{ mock.Mock }

func (m *MockRiderUoWFactory) Create() commands.RiderUoW {
	args := m.Called()
	return args.Get(0).(commands.RiderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// Fixture values shared across handler tests.
const (
	testTxRef       = "TX-1001"
	testOrderNumber = "ORD-1001"
	testFee         = int64(500)
	testDue         = int64(400)
	testTotal       = int64(2000)
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return money
}

func restoreOrder(
	t *testing.T,
	senderID kernel.UUID,
	riderID *kernel.UUID,
	status delivery.Status,
) *delivery.DeliveryOrder {
	t.Helper()

	var riderPhone *string
	if riderID != nil {
		phone := "+2348012345678"
		riderPhone = &phone
	}

	order, err := delivery.RestoreDeliveryOrder(
		kernel.NewUUID(),
		testTxRef,
		testOrderNumber,
		senderID,
		riderID,
		nil,
		riderPhone,
		delivery.Paid,
		status,
		mustMoney(t, testFee),
		mustMoney(t, testDue),
		mustMoney(t, testTotal),
		false,
		nil,
	)
	require.NoError(t, err)
	return order
}

func restoreRider(t *testing.T, id kernel.UUID, hasDelivery bool) *rider.RiderProfile {
	t.Helper()

	profile, err := rider.RestoreRiderProfile(
		id,
		rider.RiderUser,
		"Musa Ibrahim",
		"+2348012345678",
		"musa@servipal.com",
		nil,
		true,
		hasDelivery,
		false,
		0,
		3,
	)
	require.NoError(t, err)
	return profile
}

func restoreWallet(t *testing.T, ownerID kernel.UUID, balance, escrow int64) *wallet.Wallet {
	t.Helper()

	aggregate, err := wallet.RestoreWallet(
		kernel.NewUUID(),
		ownerID,
		mustMoney(t, balance),
		mustMoney(t, escrow),
	)
	require.NoError(t, err)
	return aggregate
}
