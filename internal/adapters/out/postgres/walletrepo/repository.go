package walletrepo

import (
	"context"
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/wallet"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWalletRepository implements WalletRepository using GORM.
type GormWalletRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWalletRepository creates a new GORM wallet repository.
func NewGormWalletRepository(db *gorm.DB, tracker aggregateTracker) *GormWalletRepository {
	return &GormWalletRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new wallet to the database.
func (r *GormWalletRepository) Add(ctx context.Context, aggregate *wallet.Wallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOwner retrieves the wallet belonging to the given user.
func (r *GormWalletRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) (*wallet.Wallet, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto WalletDTO
	if err := r.db.WithContext(ctx).First(&dto, "owner_id = ?", ownerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wallet owner", ownerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ApplyAdjustment applies both deltas in one conditional update. The WHERE
// clause re-checks non-negativity against the current row, so a stale read
// can never drive a balance below zero. Zero affected rows means either the
// wallet is gone or the funds are not there.
func (r *GormWalletRepository) ApplyAdjustment(ctx context.Context, walletID kernel.UUID, balanceDelta, escrowDelta int64) error {
	if err := walletID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&WalletDTO{}).
		Where(
			"id = ? AND balance + ? >= 0 AND escrow_balance + ? >= 0",
			walletID.Bytes(), balanceDelta, escrowDelta,
		).
		Updates(map[string]any{
			"balance":        gorm.Expr("balance + ?", balanceDelta),
			"escrow_balance": gorm.Expr("escrow_balance + ?", escrowDelta),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&WalletDTO{}).
			Where("id = ?", walletID.Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("wallet", walletID.String())
		}
		return errs.NewInsufficientFundsError(walletID.String())
	}

	return nil
}
