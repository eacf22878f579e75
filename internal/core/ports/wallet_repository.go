package ports

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/wallet"
)

// WalletRepository defines the persistence contract for wallets.
//
// ApplyAdjustment is the only mutation: both deltas are applied in a single
// conditional update that verifies the resulting balances stay non-negative,
// so no observer can ever read a wallet with a negative balance, even
// transiently.
type WalletRepository interface {
	// Add persists a new wallet to storage.
	Add(ctx context.Context, aggregate *wallet.Wallet) error

	// GetByOwner retrieves the wallet belonging to the given user.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) (*wallet.Wallet, error)

	// ApplyAdjustment applies signed deltas, in minor currency units, to the
	// wallet's balance and escrow balance in one atomic write. Returns an
	// InsufficientFundsError when either resulting balance would be
	// negative, and an ObjectNotFoundError when the wallet does not exist.
	ApplyAdjustment(ctx context.Context, walletID kernel.UUID, balanceDelta, escrowDelta int64) error
}
