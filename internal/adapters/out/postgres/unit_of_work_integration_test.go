package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "github.com/kenmoh/servipal-backend/internal/adapters/out/postgres"
	"github.com/kenmoh/servipal-backend/internal/adapters/out/postgres/deliveryrepo"
	"github.com/kenmoh/servipal-backend/internal/adapters/out/postgres/riderrepo"
	"github.com/kenmoh/servipal-backend/internal/adapters/out/postgres/transactionrepo"
	"github.com/kenmoh/servipal-backend/internal/adapters/out/postgres/walletrepo"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/rider"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/wallet"
	"github.com/kenmoh/servipal-backend/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
// The settlement workflow tests verify that order status, rider flags,
// wallet postings and the audit record commit or roll back together.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&deliveryrepo.DeliveryOrderDTO{},
		&riderrepo.RiderProfileDTO{},
		&walletrepo.WalletDTO{},
		&transactionrepo.TransactionDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE delivery_orders, rider_profiles, wallets, transactions").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.DeliveryOrderRepository())
	suite.NotNil(uow1.RiderRepository())
	suite.NotNil(uow1.WalletRepository())
	suite.NotNil(uow1.TransactionRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder("TX-3001")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DeliveryOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.DeliveryOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.DeliveryOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

// TestUnitOfWork_SettlementWorkflow walks an order from assignment to
// completion, touching all four repositories in a single transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SettlementWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	senderID := kernel.NewUUID()
	testRider := createTestRider()
	testOrder := createPaidOrder("TX-3002", senderID)
	senderWallet := createTestWallet(senderID, 0, 500)
	riderWallet := createTestWallet(testRider.ID(), 0, 0)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DeliveryOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.RiderRepository().Add(ctx, testRider)
	suite.Require().NoError(err)
	err = uow.WalletRepository().Add(ctx, senderWallet)
	suite.Require().NoError(err)
	err = uow.WalletRepository().Add(ctx, riderWallet)
	suite.Require().NoError(err)

	// Assign the rider and mark them busy.
	loadedStatus := testOrder.Status()
	err = testOrder.Assign(senderID, testRider.ID(), nil, testRider.Phone())
	suite.Require().NoError(err)
	err = uow.DeliveryOrderRepository().Update(ctx, testOrder, loadedStatus)
	suite.Require().NoError(err)
	err = uow.RiderRepository().MarkBusy(ctx, testRider.ID())
	suite.Require().NoError(err)

	// Rider accepts, then walks the order to delivered.
	loadedStatus = testOrder.Status()
	err = testOrder.Accept(testRider.ID(), nil, testRider.Phone())
	suite.Require().NoError(err)
	err = uow.DeliveryOrderRepository().Update(ctx, testOrder, loadedStatus)
	suite.Require().NoError(err)

	for _, step := range []func(kernel.UUID) error{
		testOrder.Pickup, testOrder.MarkInTransit, testOrder.MarkDelivered,
	} {
		loadedStatus = testOrder.Status()
		err = step(testRider.ID())
		suite.Require().NoError(err)
		err = uow.DeliveryOrderRepository().Update(ctx, testOrder, loadedStatus)
		suite.Require().NoError(err)
	}

	// Settle: pay the rider out of the sender's escrow hold.
	loadedStatus = testOrder.Status()
	err = testOrder.Complete(senderID)
	suite.Require().NoError(err)
	err = uow.DeliveryOrderRepository().Update(ctx, testOrder, loadedStatus)
	suite.Require().NoError(err)

	err = uow.WalletRepository().ApplyAdjustment(ctx, riderWallet.ID(), 400, 0)
	suite.Require().NoError(err)
	err = uow.WalletRepository().ApplyAdjustment(ctx, senderWallet.ID(), 0, -500)
	suite.Require().NoError(err)

	payoutRecord := createTestRecord(suite.T(), testOrder, riderWallet, testRider.ID())
	err = uow.TransactionRepository().Append(ctx, payoutRecord)
	suite.Require().NoError(err)

	err = uow.RiderRepository().MarkFree(ctx, testRider.ID())
	suite.Require().NoError(err)
	err = uow.RiderRepository().IncrementTotalDeliveries(ctx, testRider.ID())
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state with a fresh unit of work.
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.DeliveryOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Completed, retrievedOrder.Status())

	retrievedRider, err := newUow.RiderRepository().Get(ctx, testRider.ID())
	suite.Require().NoError(err)
	suite.False(retrievedRider.HasDelivery())
	suite.Equal(1, retrievedRider.TotalDeliveries())

	retrievedSenderWallet, err := newUow.WalletRepository().GetByOwner(ctx, senderID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), retrievedSenderWallet.EscrowBalance().Amount())

	retrievedRiderWallet, err := newUow.WalletRepository().GetByOwner(ctx, testRider.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(400), retrievedRiderWallet.Balance().Amount())

	hasHold, err := newUow.TransactionRepository().HasEscrowHold(ctx, "TX-3002")
	suite.Require().NoError(err)
	suite.False(hasHold, "Only a payout record was appended")
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder("TX-3003")
	testRider := createTestRider()
	testWallet := createTestWallet(kernel.NewUUID(), 1000, 0)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DeliveryOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.RiderRepository().Add(ctx, testRider)
	suite.Require().NoError(err)
	err = uow.WalletRepository().Add(ctx, testWallet)
	suite.Require().NoError(err)

	_, err = uow.DeliveryOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.DeliveryOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.RiderRepository().Get(ctx, testRider.ID())
	suite.Require().Error(err, "Rider should not exist after rollback")

	_, err = newUow.WalletRepository().GetByOwner(ctx, testWallet.OwnerID())
	suite.Require().Error(err, "Wallet should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder("TX-3004")
	order2 := createTestOrder("TX-3005")

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.DeliveryOrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow2.DeliveryOrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.DeliveryOrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.DeliveryOrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.DeliveryOrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.DeliveryOrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work without
// explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder("TX-3006")

	err := uow.DeliveryOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.DeliveryOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

// TestUnitOfWork_EscrowHoldVisibleAfterCommit verifies the audit ledger
// answers the escrow hold precondition after the posting transaction lands.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_EscrowHoldVisibleAfterCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()

	senderID := kernel.NewUUID()
	testRider := createTestRider()
	testOrder := createPaidOrder("TX-3007", senderID)
	riderWallet := createTestWallet(testRider.ID(), 0, 0)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.DeliveryOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.WalletRepository().Add(ctx, riderWallet)
	suite.Require().NoError(err)

	holdRecord := createEscrowHoldRecord(suite.T(), testOrder, riderWallet, testRider.ID())
	err = uow.TransactionRepository().Append(ctx, holdRecord)
	suite.Require().NoError(err)
	err = uow.WalletRepository().ApplyAdjustment(ctx, riderWallet.ID(), 0, 500)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	hasHold, err := newUow.TransactionRepository().HasEscrowHold(ctx, "TX-3007")
	suite.Require().NoError(err)
	suite.True(hasHold)
}

// createTestOrder creates a pending unpaid order for testing purposes.
func createTestOrder(txRef string) *delivery.DeliveryOrder {
	fee, _ := kernel.NewMoney(500)
	due, _ := kernel.NewMoney(400)
	total, _ := kernel.NewMoney(2000)
	testOrder, _ := delivery.NewDeliveryOrder(
		kernel.NewUUID(), txRef, "ORD-3001", kernel.NewUUID(), fee, due, total,
	)
	return testOrder
}

// createPaidOrder creates a paid order awaiting a rider.
func createPaidOrder(txRef string, senderID kernel.UUID) *delivery.DeliveryOrder {
	fee, _ := kernel.NewMoney(500)
	due, _ := kernel.NewMoney(400)
	total, _ := kernel.NewMoney(2000)
	testOrder, _ := delivery.RestoreDeliveryOrder(
		kernel.NewUUID(), txRef, "ORD-3001", senderID,
		nil, nil, nil,
		delivery.Paid, delivery.PaidNeedsRider,
		fee, due, total, false, nil,
	)
	return testOrder
}

// createTestRider creates an online, free rider for testing purposes.
func createTestRider() *rider.RiderProfile {
	testRider, _ := rider.RestoreRiderProfile(
		kernel.NewUUID(), rider.RiderUser, "Musa Ibrahim", "+2348012345678",
		"musa@servipal.com", nil, true, false, false, 0, 0,
	)
	return testRider
}

// createTestWallet creates a wallet with the given balances.
func createTestWallet(ownerID kernel.UUID, balance, escrow int64) *wallet.Wallet {
	balanceMoney, _ := kernel.NewMoney(balance)
	escrowMoney, _ := kernel.NewMoney(escrow)
	testWallet, _ := wallet.RestoreWallet(kernel.NewUUID(), ownerID, balanceMoney, escrowMoney)
	return testWallet
}

// createTestRecord creates a payout record for the given order and wallet.
func createTestRecord(
	t *testing.T, order *delivery.DeliveryOrder, w *wallet.Wallet, riderID kernel.UUID,
) *transaction.Record {
	t.Helper()

	details, err := transaction.NewDetails(transaction.Credit, "dispatch payout on delivery completion", "system")
	if err != nil {
		t.Fatal(err)
	}

	record, err := transaction.NewRecord(
		kernel.NewUUID(), order.TxRef(), order.AmountDueDispatch(),
		order.SenderID(), &riderID, order.ID(), w.ID(),
		transaction.Payout, transaction.PaymentSuccess, transaction.DeliveryOrder, details,
	)
	if err != nil {
		t.Fatal(err)
	}
	return record
}

// createEscrowHoldRecord creates an escrow hold record for the given order.
func createEscrowHoldRecord(
	t *testing.T, order *delivery.DeliveryOrder, w *wallet.Wallet, riderID kernel.UUID,
) *transaction.Record {
	t.Helper()

	details, err := transaction.NewDetails(transaction.Credit, "delivery fee held in dispatch escrow on pickup", "system")
	if err != nil {
		t.Fatal(err)
	}

	record, err := transaction.NewRecord(
		kernel.NewUUID(), order.TxRef(), order.DeliveryFee(),
		order.SenderID(), &riderID, order.ID(), w.ID(),
		transaction.EscrowHold, transaction.PaymentSuccess, transaction.DeliveryOrder, details,
	)
	if err != nil {
		t.Fatal(err)
	}
	return record
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
