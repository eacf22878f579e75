package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// statementEntryLimit caps how many ledger entries a statement carries.
const statementEntryLimit = 20

// GetWalletQueryHandler retrieves wallet statements from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetWalletQueryHandler struct {
	db *gorm.DB
}

// NewGetWalletQueryHandler creates a handler for wallet statement queries.
// Requires a GORM database connection for query execution.
func NewGetWalletQueryHandler(db *gorm.DB) GetWalletQueryHandler {
	return GetWalletQueryHandler{db: db}
}

// Handle executes the query to retrieve the owner's wallet statement.
// Returns an ObjectNotFoundError when the user has no wallet.
func (h GetWalletQueryHandler) Handle(
	ctx context.Context,
	query GetWalletQuery,
) (GetWalletQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletQueryResponse{}, err
	}

	response, err := h.loadWallet(ctx, query.OwnerID())
	if err != nil {
		return GetWalletQueryResponse{}, err
	}

	transactions, err := h.loadTransactions(ctx, response.WalletID)
	if err != nil {
		return GetWalletQueryResponse{}, err
	}
	response.Transactions = transactions

	return response, nil
}

func (h GetWalletQueryHandler) loadWallet(
	ctx context.Context, ownerID kernel.UUID,
) (GetWalletQueryResponse, error) {
	var response GetWalletQueryResponse
	var walletID, owner uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			balance,
			escrow_balance
		FROM wallets
		WHERE owner_id = ?
	`, ownerID.Bytes()).Row()

	err := row.Scan(&walletID, &owner, &response.Balance, &response.EscrowBalance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetWalletQueryResponse{}, errs.NewObjectNotFoundError("wallet owner", ownerID.String())
		}
		return GetWalletQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(walletID[:])
	if err != nil {
		return GetWalletQueryResponse{}, err
	}
	response.WalletID = id

	oid, err := kernel.UUIDFromBytes(owner[:])
	if err != nil {
		return GetWalletQueryResponse{}, err
	}
	response.OwnerID = oid

	return response, nil
}

func (h GetWalletQueryHandler) loadTransactions(
	ctx context.Context, walletID kernel.UUID,
) ([]WalletTransactionResponse, error) {
	entries := make([]WalletTransactionResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tx_ref,
			amount,
			transaction_type,
			details_label,
			details_reason,
			details_actor,
			created_at
		FROM transactions
		WHERE wallet_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, walletID.Bytes(), statementEntryLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry WalletTransactionResponse
		var id uuid.UUID
		var transactionType, label int

		err = rows.Scan(
			&id,
			&entry.TxRef,
			&entry.Amount,
			&transactionType,
			&label,
			&entry.Reason,
			&entry.Actor,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		entry.TransactionType = transaction.Type(transactionType)
		entry.Label = transaction.Label(label)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
