package walletrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/kenmoh/servipal-backend/internal/adapters/out/postgres/walletrepo"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/wallet"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// WalletRepositoryIntegrationTestSuite provides integration tests for
// WalletRepository using PostgreSQL containers, focused on the non-negativity
// guard inside ApplyAdjustment.
type WalletRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *walletrepo.GormWalletRepository
	tracker    *MockAggregateTracker
}

func (suite *WalletRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&walletrepo.WalletDTO{}))
}

func (suite *WalletRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE wallets").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = walletrepo.NewGormWalletRepository(suite.db, suite.tracker)
}

func (suite *WalletRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *WalletRepositoryIntegrationTestSuite) TestAdd_ValidWallet_Success() {
	ctx := context.Background()

	ownerID := kernel.NewUUID()
	testWallet := suite.restoreWallet(ownerID, 1000, 500)
	suite.tracker.On("TrackAggregate", testWallet.ID(), testWallet).Once()

	err := suite.repository.Add(ctx, testWallet)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByOwner(ctx, ownerID)
	suite.Require().NoError(err)
	suite.Equal(testWallet.ID(), retrieved.ID())
	suite.Equal(int64(1000), retrieved.Balance().Amount())
	suite.Equal(int64(500), retrieved.EscrowBalance().Amount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *WalletRepositoryIntegrationTestSuite) TestGetByOwner_UnknownOwner_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByOwner(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *WalletRepositoryIntegrationTestSuite) TestApplyAdjustment_BothDeltas_AppliedAtomically() {
	ctx := context.Background()

	ownerID := kernel.NewUUID()
	testWallet := suite.addWallet(ownerID, 1000, 500)

	// Escrow release: 500 moves from escrow to balance.
	err := suite.repository.ApplyAdjustment(ctx, testWallet.ID(), 500, -500)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByOwner(ctx, ownerID)
	suite.Require().NoError(err)
	suite.Equal(int64(1500), retrieved.Balance().Amount())
	suite.Equal(int64(0), retrieved.EscrowBalance().Amount())
}

func (suite *WalletRepositoryIntegrationTestSuite) TestApplyAdjustment_WouldGoNegative_ReturnsInsufficientFundsError() {
	testCases := []struct {
		name         string
		balanceDelta int64
		escrowDelta  int64
	}{
		{name: "balance would go negative", balanceDelta: -1001, escrowDelta: 0},
		{name: "escrow would go negative", balanceDelta: 0, escrowDelta: -501},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			ownerID := kernel.NewUUID()
			testWallet := suite.addWallet(ownerID, 1000, 500)

			err := suite.repository.ApplyAdjustment(ctx, testWallet.ID(), tc.balanceDelta, tc.escrowDelta)
			suite.Require().ErrorIs(err, errs.ErrInsufficientFunds)

			// The rejected adjustment leaves the row untouched.
			retrieved, err := suite.repository.GetByOwner(ctx, ownerID)
			suite.Require().NoError(err)
			suite.Equal(int64(1000), retrieved.Balance().Amount())
			suite.Equal(int64(500), retrieved.EscrowBalance().Amount())
		})
	}
}

func (suite *WalletRepositoryIntegrationTestSuite) TestApplyAdjustment_DrainToZero_Succeeds() {
	ctx := context.Background()

	ownerID := kernel.NewUUID()
	testWallet := suite.addWallet(ownerID, 1000, 500)

	err := suite.repository.ApplyAdjustment(ctx, testWallet.ID(), -1000, -500)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByOwner(ctx, ownerID)
	suite.Require().NoError(err)
	suite.Equal(int64(0), retrieved.Balance().Amount())
	suite.Equal(int64(0), retrieved.EscrowBalance().Amount())
}

func (suite *WalletRepositoryIntegrationTestSuite) TestApplyAdjustment_NonExistentWallet_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.ApplyAdjustment(ctx, kernel.NewUUID(), 100, 0)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// addWallet persists a wallet with the given balances.
func (suite *WalletRepositoryIntegrationTestSuite) addWallet(ownerID kernel.UUID, balance, escrow int64) *wallet.Wallet {
	testWallet := suite.restoreWallet(ownerID, balance, escrow)
	suite.tracker.On("TrackAggregate", testWallet.ID(), testWallet).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), testWallet))
	return testWallet
}

// restoreWallet builds a wallet with the given balances.
func (suite *WalletRepositoryIntegrationTestSuite) restoreWallet(ownerID kernel.UUID, balance, escrow int64) *wallet.Wallet {
	balanceMoney, err := kernel.NewMoney(balance)
	suite.Require().NoError(err)
	escrowMoney, err := kernel.NewMoney(escrow)
	suite.Require().NoError(err)

	testWallet, err := wallet.RestoreWallet(kernel.NewUUID(), ownerID, balanceMoney, escrowMoney)
	suite.Require().NoError(err)
	return testWallet
}

func TestWalletRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WalletRepositoryIntegrationTestSuite))
}
