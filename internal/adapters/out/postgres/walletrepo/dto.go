// Package walletrepo provides data transfer objects and mapping functions
// for wallet persistence. Balance changes go through a single conditional
// update that enforces non-negativity at write time.
package walletrepo

import (
	"time"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/wallet"

	"github.com/google/uuid"
)

// WalletDTO represents the database structure for persisting wallets.
// Amounts are stored in minor currency units.
type WalletDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Balance       int64
	EscrowBalance int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for wallet entities.
func (WalletDTO) TableName() string {
	return "wallets"
}

// fromDomain converts a wallet aggregate to its database representation.
func fromDomain(aggregate *wallet.Wallet) WalletDTO {
	return WalletDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		Balance:       aggregate.Balance().Amount(),
		EscrowBalance: aggregate.EscrowBalance().Amount(),
	}
}

// toDomain converts a database DTO to a wallet aggregate.
func toDomain(dto WalletDTO) (*wallet.Wallet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}

	escrowBalance, err := kernel.NewMoney(dto.EscrowBalance)
	if err != nil {
		return nil, err
	}

	return wallet.RestoreWallet(id, ownerID, balance, escrowBalance)
}
