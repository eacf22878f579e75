package commands

import (
	"context"
	"errors"
	"time"

	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
)

// ReleaseStaleAssignmentsCommandHandler returns orders that sat in
// Assigned past the timeout to the unassigned pool and frees their
// riders. Assignment is a notification step; a rider who never reacts
// must not keep an order (and themselves) locked forever.
//
// No money moves here: the sender's payment hold stays in place to fund
// the next assignment.
type ReleaseStaleAssignmentsCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewReleaseStaleAssignmentsCommandHandler creates a handler for the
// stale-assignment release job.
func NewReleaseStaleAssignmentsCommandHandler(
	uowFactory RiderUoWFactory,
) ReleaseStaleAssignmentsCommandHandler {
	return ReleaseStaleAssignmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle releases every stale assignment and reports how many orders were
// returned to the pool. An order whose rider accepted between the scan
// and the write is skipped, not treated as a failure.
func (h ReleaseStaleAssignmentsCommandHandler) Handle(
	ctx context.Context,
	command ReleaseStaleAssignmentsCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().Add(-command.StaleAfter())
	orders, err := uow.DeliveryOrderRepository().GetAllAssignedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, order := range orders {
		if order.RiderID() == nil {
			continue
		}
		riderID := *order.RiderID()

		loadedStatus := order.Status()
		if err = order.Decline(riderID); err != nil {
			return released, err
		}

		err = uow.DeliveryOrderRepository().Update(ctx, order, loadedStatus)
		if errors.Is(err, errs.ErrConflict) {
			continue
		}
		if err != nil {
			return released, err
		}

		if err = uow.RiderRepository().MarkFree(ctx, riderID); err != nil {
			return released, err
		}
		released++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}
