// Package commands contains business operations that modify system state.
// Each command is paired with a handler that runs the whole transition
// (order status, rider flags, wallet postings and the audit record) inside
// one unit of work, so partial application is never observable.
package commands

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/ports"
)

type (
	// TxManager defines transaction lifecycle management operations.
	// Provides methods to control database transaction boundaries.
	TxManager interface {
		// Begin starts a new database transaction.
		Begin(ctx context.Context) error
		// Commit commits the current transaction.
		Commit(ctx context.Context) error
		// Rollback rolls back the current transaction.
		Rollback(ctx context.Context) error
	}

	// DeliveryOrderRepoFactory provides access to delivery order repository
	// bound to the current transaction.
	DeliveryOrderRepoFactory interface {
		DeliveryOrderRepository() ports.DeliveryOrderRepository
	}

	// RiderRepoFactory provides access to rider repository operations
	// bound to the current transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// WalletRepoFactory provides access to wallet repository operations
	// bound to the current transaction.
	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	// TransactionRepoFactory provides access to the append-only audit
	// ledger bound to the current transaction.
	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	// OrderUoW combines transaction management with delivery order
	// repository access. Used by handlers that only move the order status.
	OrderUoW interface {
		TxManager
		DeliveryOrderRepoFactory
	}

	// RiderUoW combines transaction management with order and rider
	// repository access. Used by handlers that touch availability flags
	// but move no money.
	RiderUoW interface {
		TxManager
		DeliveryOrderRepoFactory
		RiderRepoFactory
	}

	// UoW provides full unit of work capabilities with access to every
	// repository. Used by handlers whose transition posts ledger entries.
	UoW interface {
		TxManager
		DeliveryOrderRepoFactory
		RiderRepoFactory
		WalletRepoFactory
		TransactionRepoFactory
	}

	// OrderUoWFactory creates OrderUoW instances for order-only operations.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RiderUoWFactory creates RiderUoW instances for order-and-rider
	// operations.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// UoWFactory creates UoW instances with full repository access.
	UoWFactory interface {
		Create() UoW
	}
)
