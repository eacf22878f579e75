package transactionrepo

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM.
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GORM transaction repository.
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Append writes one transaction record. Pure insert.
func (r *GormTransactionRepository) Append(ctx context.Context, record *transaction.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// HasEscrowHold reports whether an EscrowHold record exists for the given
// transaction reference.
func (r *GormTransactionRepository) HasEscrowHold(ctx context.Context, txRef string) (bool, error) {
	if txRef == "" {
		return false, errs.NewValueIsRequiredError("txRef")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&TransactionDTO{}).
		Where("tx_ref = ? AND transaction_type = ?", txRef, int(transaction.EscrowHold)).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
