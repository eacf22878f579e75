package commands

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"
	"github.com/kenmoh/servipal-backend/internal/core/ports"
)

// WalletLedger couples a wallet adjustment with its audit record. Every
// posting that moves money also appends exactly one transaction record;
// the two writes share the caller's unit of work, so neither can be
// observed without the other.
type WalletLedger struct {
	wallets      ports.WalletRepository
	transactions ports.TransactionRepository
}

// NewWalletLedger creates a ledger over the given transaction-bound
// repositories.
func NewWalletLedger(wallets ports.WalletRepository, transactions ports.TransactionRepository) WalletLedger {
	return WalletLedger{
		wallets:      wallets,
		transactions: transactions,
	}
}

// Post applies the signed deltas to the wallet and appends the audit
// record. Fails without touching the wallet when the record is invalid,
// and propagates InsufficientFundsError from the adjustment untouched.
func (l WalletLedger) Post(
	ctx context.Context,
	walletID kernel.UUID,
	balanceDelta, escrowDelta int64,
	record *transaction.Record,
) error {
	if err := record.Validate(); err != nil {
		return err
	}

	if err := l.wallets.ApplyAdjustment(ctx, walletID, balanceDelta, escrowDelta); err != nil {
		return err
	}

	return l.transactions.Append(ctx, record)
}
