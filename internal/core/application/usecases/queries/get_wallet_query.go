package queries

import (
	"errors"
	"time"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

var ErrGetWalletQueryIsNotConstructed = errors.New(
	"GetWalletQuery must be created via NewGetWalletQuery constructor",
)

// GetWalletQuery retrieves a user's wallet statement: current balances plus
// the most recent ledger entries posted against the wallet.
type GetWalletQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWalletQuery creates a query for the given wallet owner.
func NewGetWalletQuery(ownerID kernel.UUID) (GetWalletQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetWalletQuery{}, err
	}

	return GetWalletQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWalletQueryIsNotConstructed if validation fails.
func (q GetWalletQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletQueryIsNotConstructed)
}

// OwnerID returns the user whose wallet is requested.
func (q GetWalletQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetWalletQueryResponse represents the wallet statement read model.
type GetWalletQueryResponse struct {
	WalletID      kernel.UUID
	OwnerID       kernel.UUID
	Balance       int64
	EscrowBalance int64
	Transactions  []WalletTransactionResponse
}

// WalletTransactionResponse represents one ledger entry in the statement.
type WalletTransactionResponse struct {
	ID              kernel.UUID
	TxRef           string
	Amount          int64
	TransactionType transaction.Type
	Label           transaction.Label
	Reason          string
	Actor           string
	CreatedAt       time.Time
}
