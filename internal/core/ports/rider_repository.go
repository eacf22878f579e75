package ports

import (
	"context"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider profiles and
// doubles as the availability tracker: the busy flag and the counters are
// mutated through dedicated conditional updates rather than whole-aggregate
// writes, so availability checks are evaluated atomically with the write.
type RiderRepository interface {
	// Add persists a new rider profile to storage.
	Add(ctx context.Context, aggregate *rider.RiderProfile) error

	// Update persists changes to an existing rider profile.
	Update(ctx context.Context, aggregate *rider.RiderProfile) error

	// Get retrieves a rider profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.RiderProfile, error)

	// MarkBusy sets the busy flag with the eligibility rule evaluated
	// inside the update itself (rider type, online, free, not blocked).
	// Returns a PreconditionFailedError when the rider is not eligible at
	// write time, so two orders can never be assigned to the same rider
	// concurrently.
	MarkBusy(ctx context.Context, id kernel.UUID) error

	// MarkFree clears the busy flag. Idempotent.
	MarkFree(ctx context.Context, id kernel.UUID) error

	// IncrementCancelCount bumps the rider-initiated cancellation counter.
	IncrementCancelCount(ctx context.Context, id kernel.UUID) error

	// IncrementTotalDeliveries bumps the completed-deliveries counter.
	IncrementTotalDeliveries(ctx context.Context, id kernel.UUID) error
}
