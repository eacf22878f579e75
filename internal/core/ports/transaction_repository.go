package ports

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"
)

// TransactionRepository is the append-only audit ledger. Records are never
// updated or deleted; the interface deliberately has no mutation besides
// Append.
type TransactionRepository interface {
	// Append writes one transaction record. Pure insert.
	Append(ctx context.Context, record *transaction.Record) error

	// HasEscrowHold reports whether an EscrowHold record exists for the
	// given transaction reference. Used as a precondition for refunds.
	HasEscrowHold(ctx context.Context, txRef string) (bool, error)
}
