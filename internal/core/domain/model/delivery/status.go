package delivery

import (
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> PaidNeedsRider ──> Assigned ──> Accepted ──> PickedUp ──> InTransit ──> Delivered ──> Completed
//	                 │     ▲           │            │            │            │
//	                 │     └───────────┴────────────┘            └─> Delivered┘
//	                 │        (decline releases assignment)
//	                 └──────────> Cancelled (also from Assigned, Accepted)
//
// Accepted is reachable directly from PaidNeedsRider: a rider may claim an
// unassigned paid order without the Assigned notification step. Completed and
// Cancelled are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is created but not yet paid.
	Pending

	// PaidNeedsRider indicates payment is captured and the order is waiting
	// in the unassigned pool. Declined orders return to this status.
	PaidNeedsRider

	// Assigned indicates a rider was attached to the order by the sender.
	// The rider has not yet accepted; this is an optional notification step.
	Assigned

	// Accepted indicates the attached rider has committed to the delivery.
	Accepted

	// PickedUp indicates the rider has collected the package.
	// The delivery fee moves into the dispatcher's escrow at this point.
	PickedUp

	// InTransit indicates the package is on its way to the recipient.
	// This is an optional hop between PickedUp and Delivered.
	InTransit

	// Delivered indicates the rider has handed over the package and is
	// waiting for the sender's confirmation.
	Delivered

	// Completed indicates the sender confirmed delivery and the escrowed
	// funds were released. This is a final state.
	Completed

	// Cancelled indicates the order was terminated before pickup.
	// This is a final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		PaidNeedsRider: "PaidNeedsRider",
		Assigned:       "Assigned",
		Accepted:       "Accepted",
		PickedUp:       "PickedUp",
		InTransit:      "InTransit",
		Delivered:      "Delivered",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		PaidNeedsRider: "PaidNeedsRider",
		Assigned:       "Assigned",
		Accepted:       "Accepted",
		PickedUp:       "PickedUp",
		InTransit:      "InTransit",
		Delivered:      "Delivered",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("delivery status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateCanHaveRider validates the consistency between order status and
// rider assignment.
//
// Business rules:
//   - Pending, PaidNeedsRider and Cancelled orders must not have a rider
//   - Assigned through Completed orders must have a rider
func (s Status) ValidateCanHaveRider(rider bool) error {
	requiresRider := s == Assigned || s == Accepted || s == PickedUp ||
		s == InTransit || s == Delivered || s == Completed

	if rider && !requiresRider {
		return errs.NewPreconditionFailedError("delivery status", "status with rider attached", s.String())
	}
	if !rider && requiresRider {
		return errs.NewPreconditionFailedError("delivery status", "status without rider attached", s.String())
	}
	return nil
}

// transitionError builds the typed error for a transition attempted
// from a status outside the allowed guard set.
func (s Status) transitionError(expected string) error {
	return errs.NewPreconditionFailedError("delivery status", expected, s.String())
}

// MarkPaid transitions the status to PaidNeedsRider.
//
// Valid transitions:
//   - Pending -> PaidNeedsRider (payment captured)
func (s Status) MarkPaid() (Status, error) {
	if s != Pending {
		return 0, s.transitionError(Pending.String())
	}
	return PaidNeedsRider, nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned (payment confirmed out of band)
//   - PaidNeedsRider -> Assigned
//
// Reassignment of an already assigned order is not allowed; the current
// assignment must be declined first.
func (s Status) Assign() (Status, error) {
	if s != Pending && s != PaidNeedsRider {
		return 0, s.transitionError(PaidNeedsRider.String())
	}
	return Assigned, nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - PaidNeedsRider -> Accepted (rider claims an unassigned order)
//   - Assigned -> Accepted (the attached rider confirms)
func (s Status) Accept() (Status, error) {
	if s != PaidNeedsRider && s != Assigned {
		return 0, s.transitionError(PaidNeedsRider.String())
	}
	return Accepted, nil
}

// Decline releases the current assignment, returning the order to the
// unassigned pool.
//
// Valid transitions:
//   - Assigned -> PaidNeedsRider
//   - Accepted -> PaidNeedsRider
func (s Status) Decline() (Status, error) {
	if s != Assigned && s != Accepted {
		return 0, s.transitionError(Assigned.String())
	}
	return PaidNeedsRider, nil
}

// Pickup transitions the status to PickedUp.
//
// Valid transitions:
//   - Accepted -> PickedUp
func (s Status) Pickup() (Status, error) {
	if s != Accepted {
		return 0, s.transitionError(Accepted.String())
	}
	return PickedUp, nil
}

// MarkInTransit transitions the status to InTransit.
//
// Valid transitions:
//   - PickedUp -> InTransit
func (s Status) MarkInTransit() (Status, error) {
	if s != PickedUp {
		return 0, s.transitionError(PickedUp.String())
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - PickedUp -> Delivered
//   - InTransit -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != PickedUp && s != InTransit {
		return 0, s.transitionError(PickedUp.String())
	}
	return Delivered, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Delivered -> Completed
//
// Completed is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != Delivered {
		return 0, s.transitionError(Delivered.String())
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending, PaidNeedsRider, Assigned, Accepted -> Cancelled
//
// Orders already picked up cannot be cancelled outright; they are flagged
// for return instead (see DeliveryOrder.CancelBySender).
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != PaidNeedsRider && s != Assigned && s != Accepted {
		return 0, s.transitionError(PaidNeedsRider.String())
	}
	return Cancelled, nil
}
