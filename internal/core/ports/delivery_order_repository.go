// Package ports defines repository and unit-of-work interfaces for the
// delivery domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/delivery"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
)

// DeliveryOrderRepository defines the persistence contract for delivery
// order aggregates.
//
// Update is a compare-and-set write: the caller states the status the order
// had when it was loaded, and the write only applies if the row still holds
// that status. Two concurrent transitions for the same order therefore
// cannot both succeed; the loser observes a ConflictError instead of
// silently overwriting. Guards are re-checked at write time, never cached
// from an earlier read.
type DeliveryOrderRepository interface {
	// Add persists a new delivery order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.DeliveryOrder) error

	// Update persists changes to an existing order, conditional on the row
	// still holding expectedStatus. Returns a ConflictError when the row
	// was concurrently moved to another status, and an ObjectNotFoundError
	// when the order does not exist.
	Update(ctx context.Context, aggregate *delivery.DeliveryOrder, expectedStatus delivery.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryOrder, error)

	// GetByTxRef retrieves an order aggregate by its transaction reference,
	// the external correlation key used by most operations.
	GetByTxRef(ctx context.Context, txRef string) (*delivery.DeliveryOrder, error)

	// GetAllAssignedBefore retrieves orders stuck in Assigned status whose
	// last update is older than the cutoff. Used by the stale-assignment
	// release job.
	GetAllAssignedBefore(ctx context.Context, cutoff time.Time) ([]*delivery.DeliveryOrder, error)
}
