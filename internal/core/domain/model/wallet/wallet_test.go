package wallet_test

import (
	"testing"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/wallet"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreWallet(t *testing.T, balance, escrow int64) *wallet.Wallet {
	t.Helper()

	balanceMoney, err := kernel.NewMoney(balance)
	require.NoError(t, err)
	escrowMoney, err := kernel.NewMoney(escrow)
	require.NoError(t, err)

	w, err := wallet.RestoreWallet(kernel.NewUUID(), kernel.NewUUID(), balanceMoney, escrowMoney)
	require.NoError(t, err)
	return w
}

func TestNewWallet(t *testing.T) {
	t.Run("should create empty wallet", func(t *testing.T) {
		id := kernel.NewUUID()
		ownerID := kernel.NewUUID()

		w, err := wallet.NewWallet(id, ownerID)

		require.NoError(t, err)
		assert.True(t, w.ID().IsEqual(id))
		assert.True(t, w.OwnerID().IsEqual(ownerID))
		assert.True(t, w.Balance().IsZero())
		assert.True(t, w.EscrowBalance().IsZero())
		assert.NoError(t, w.Validate())
	})

	t.Run("should reject invalid ids", func(t *testing.T) {
		_, err := wallet.NewWallet(kernel.UUID{}, kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRestoreWallet(t *testing.T) {
	t.Run("should restore balances", func(t *testing.T) {
		w := restoreWallet(t, 10_000, 500)

		assert.Equal(t, int64(10_000), w.Balance().Amount())
		assert.Equal(t, int64(500), w.EscrowBalance().Amount())
	})

	t.Run("should reject zero value money", func(t *testing.T) {
		var zero kernel.Money

		_, err := wallet.RestoreWallet(kernel.NewUUID(), kernel.NewUUID(), zero, zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestWallet_PostAdjustment(t *testing.T) {
	t.Run("should credit balance", func(t *testing.T) {
		w := restoreWallet(t, 1000, 0)

		require.NoError(t, w.PostAdjustment(400, 0))

		assert.Equal(t, int64(1400), w.Balance().Amount())
		assert.Equal(t, int64(0), w.EscrowBalance().Amount())
	})

	t.Run("should move funds between balance and escrow", func(t *testing.T) {
		w := restoreWallet(t, 2000, 0)

		require.NoError(t, w.PostAdjustment(-500, 500))

		assert.Equal(t, int64(1500), w.Balance().Amount())
		assert.Equal(t, int64(500), w.EscrowBalance().Amount())
	})

	t.Run("should apply payout and escrow release together", func(t *testing.T) {
		// Dispatcher at completion: balance += due, escrow -= fee.
		w := restoreWallet(t, 0, 500)

		require.NoError(t, w.PostAdjustment(400, -500))

		assert.Equal(t, int64(400), w.Balance().Amount())
		assert.Equal(t, int64(0), w.EscrowBalance().Amount())
	})

	t.Run("should reject posting that would drive balance negative", func(t *testing.T) {
		w := restoreWallet(t, 100, 0)

		err := w.PostAdjustment(-200, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		// The wallet is untouched.
		assert.Equal(t, int64(100), w.Balance().Amount())
	})

	t.Run("should reject posting that would drive escrow negative", func(t *testing.T) {
		w := restoreWallet(t, 1000, 100)

		err := w.PostAdjustment(0, -200)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, int64(1000), w.Balance().Amount())
		assert.Equal(t, int64(100), w.EscrowBalance().Amount())
	})

	t.Run("should reject partial application when one side fails", func(t *testing.T) {
		w := restoreWallet(t, 1000, 0)

		err := w.PostAdjustment(500, -100)

		require.Error(t, err)
		assert.Equal(t, int64(1000), w.Balance().Amount())
		assert.Equal(t, int64(0), w.EscrowBalance().Amount())
	})
}

func TestWallet_Validate(t *testing.T) {
	t.Run("should fail for zero value wallet", func(t *testing.T) {
		var w wallet.Wallet

		err := w.Validate()

		require.Error(t, err)
		assert.Equal(t, wallet.ErrWalletIsNotConstructed, err)
	})
}
