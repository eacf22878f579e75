// Package transactionrepo provides data transfer objects and mapping
// functions for the append-only transaction audit ledger. Rows are only
// ever inserted; there is no update path.
package transactionrepo

import (
	"time"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/transaction"

	"github.com/google/uuid"
)

// TransactionDTO represents the database structure for persisting audit
// ledger records. Amounts are stored in minor currency units.
type TransactionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TxRef           string    `gorm:"size:64;index"`
	Amount          int64
	FromUserID      uuid.UUID  `gorm:"type:uuid"`
	ToUserID        *uuid.UUID `gorm:"type:uuid"`
	OrderID         uuid.UUID  `gorm:"type:uuid;index"`
	WalletID        uuid.UUID  `gorm:"type:uuid;index"`
	TransactionType int        `gorm:"index"`
	PaymentStatus   int
	OrderType       int
	DetailsLabel    int
	DetailsReason   string `gorm:"size:255"`
	DetailsActor    string `gorm:"size:128"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for transaction entities.
func (TransactionDTO) TableName() string {
	return "transactions"
}

// fromDomain converts a transaction record to its database representation.
func fromDomain(record *transaction.Record) TransactionDTO {
	var toUserID *uuid.UUID
	if id := record.ToUserID(); id != nil {
		raw := id.Bytes()
		toUserID = &raw
	}

	return TransactionDTO{
		ID:              record.ID().Bytes(),
		TxRef:           record.TxRef(),
		Amount:          record.Amount().Amount(),
		FromUserID:      record.FromUserID().Bytes(),
		ToUserID:        toUserID,
		OrderID:         record.OrderID().Bytes(),
		WalletID:        record.WalletID().Bytes(),
		TransactionType: int(record.TransactionType()),
		PaymentStatus:   int(record.PaymentStatus()),
		OrderType:       int(record.OrderType()),
		DetailsLabel:    int(record.Details().Label()),
		DetailsReason:   record.Details().Reason(),
		DetailsActor:    record.Details().Actor(),
	}
}
