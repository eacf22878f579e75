package rider

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

// Domain errors for rider operations.
var (
	// ErrNameIsRequired is returned when creating a rider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when creating a rider without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrRiderIsNotConstructed is returned when using an improperly initialized RiderProfile.
	ErrRiderIsNotConstructed = errors.New("RiderProfile must be created via NewRiderProfile constructor")
)

// RiderProfile represents a rider in the system. It is an aggregate root that
// manages the rider's availability for delivery assignment and the counters
// used for reliability scoring.
//
// Business rules:
//   - A rider is eligible for a new assignment only when the account is a
//     rider-type user, online, not busy and not blocked
//   - hasDelivery is set atomically with order assignment and cleared on
//     decline or cancel-before-pickup
//   - orderCancelCount and totalDeliveries are monotonic counters
type RiderProfile struct {
	// id uniquely identifies the rider
	id kernel.UUID
	// userType classifies the account; only rider accounts take deliveries
	userType UserType
	// name is the rider's display name
	name string
	// phone is the rider's contact number, snapshotted onto orders at assignment
	phone string
	// email is the rider's contact email
	email string
	// dispatcherID is the owning dispatcher, nil for independent riders
	dispatcherID *kernel.UUID
	// isOnline reports whether the rider is accepting work
	isOnline bool
	// hasDelivery reports whether the rider is busy with an order
	hasDelivery bool
	// isBlocked reports whether the rider is suspended
	isBlocked bool
	// orderCancelCount counts rider-initiated cancellations
	orderCancelCount int
	// totalDeliveries counts completed deliveries
	totalDeliveries int
	// guard ensures the profile was properly constructed
	guard guard.ConstructorGuard
}

// NewRiderProfile creates a new RiderProfile with validation. New riders
// start offline, free and unblocked with zeroed counters.
func NewRiderProfile(
	id kernel.UUID,
	userType UserType,
	name string,
	phone string,
	email string,
	dispatcherID *kernel.UUID,
) (*RiderProfile, error) {
	rider := &RiderProfile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rider.setID(id),
		rider.setUserType(userType),
		rider.setName(name),
		rider.setPhone(phone),
		rider.setEmail(email),
		rider.setDispatcherID(dispatcherID),
	); err != nil {
		return nil, err
	}

	return rider, nil
}

// RestoreRiderProfile reconstructs a RiderProfile aggregate from persistent
// storage, including availability flags and counters.
func RestoreRiderProfile(
	id kernel.UUID,
	userType UserType,
	name string,
	phone string,
	email string,
	dispatcherID *kernel.UUID,
	isOnline bool,
	hasDelivery bool,
	isBlocked bool,
	orderCancelCount int,
	totalDeliveries int,
) (*RiderProfile, error) {
	rider := &RiderProfile{
		isOnline:    isOnline,
		hasDelivery: hasDelivery,
		isBlocked:   isBlocked,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rider.setID(id),
		rider.setUserType(userType),
		rider.setName(name),
		rider.setPhone(phone),
		rider.setEmail(email),
		rider.setDispatcherID(dispatcherID),
		rider.setCounters(orderCancelCount, totalDeliveries),
	); err != nil {
		return nil, err
	}

	return rider, nil
}

// Validate ensures the RiderProfile was properly constructed.
func (r *RiderProfile) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by their unique identifiers.
func (r *RiderProfile) IsEqual(other *RiderProfile) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *RiderProfile) ID() kernel.UUID {
	return r.id
}

// UserType returns the account classification.
func (r *RiderProfile) UserType() UserType {
	return r.userType
}

// Name returns the rider's display name.
func (r *RiderProfile) Name() string {
	return r.name
}

// Phone returns the rider's contact number.
func (r *RiderProfile) Phone() string {
	return r.phone
}

// Email returns the rider's contact email.
func (r *RiderProfile) Email() string {
	return r.email
}

// DispatcherID returns the owning dispatcher's id, or nil for independent riders.
func (r *RiderProfile) DispatcherID() *kernel.UUID {
	return r.dispatcherID
}

// IsOnline reports whether the rider is accepting work.
func (r *RiderProfile) IsOnline() bool {
	return r.isOnline
}

// HasDelivery reports whether the rider is busy with an order.
func (r *RiderProfile) HasDelivery() bool {
	return r.hasDelivery
}

// IsBlocked reports whether the rider is suspended.
func (r *RiderProfile) IsBlocked() bool {
	return r.isBlocked
}

// OrderCancelCount returns the number of rider-initiated cancellations.
func (r *RiderProfile) OrderCancelCount() int {
	return r.orderCancelCount
}

// TotalDeliveries returns the number of completed deliveries.
func (r *RiderProfile) TotalDeliveries() int {
	return r.totalDeliveries
}

// IsEligible reports whether the rider can take a new assignment.
func (r *RiderProfile) IsEligible() bool {
	return r.userType == RiderUser && r.isOnline && !r.hasDelivery && !r.isBlocked
}

// ValidateEligibility checks the assignment eligibility rule and returns a
// typed error naming the first failing condition, so callers can surface
// which flag disqualified the rider.
func (r *RiderProfile) ValidateEligibility() error {
	if r.userType != RiderUser {
		return errs.NewPreconditionFailedError("user type", RiderUser.String(), r.userType.String())
	}
	if !r.isOnline {
		return errs.NewPreconditionFailedError("rider online", true, false)
	}
	if r.hasDelivery {
		return errs.NewPreconditionFailedError("rider free", true, false)
	}
	if r.isBlocked {
		return errs.NewPreconditionFailedError("rider not blocked", true, false)
	}
	return nil
}

// MarkBusy flags the rider as carrying a delivery. The rider must be
// eligible; callers run this inside the same unit of work as the order
// assignment so the flag and the assignment commit together.
func (r *RiderProfile) MarkBusy() error {
	if err := r.ValidateEligibility(); err != nil {
		return err
	}

	r.hasDelivery = true
	return nil
}

// MarkFree clears the busy flag. Used on decline and on cancellation before
// pickup. Idempotent.
func (r *RiderProfile) MarkFree() {
	r.hasDelivery = false
}

// IncrementCancelCount bumps the rider-initiated cancellation counter.
func (r *RiderProfile) IncrementCancelCount() {
	r.orderCancelCount++
}

// IncrementTotalDeliveries bumps the completed-deliveries counter.
func (r *RiderProfile) IncrementTotalDeliveries() {
	r.totalDeliveries++
}

// setID sets the rider's unique identifier with validation.
func (r *RiderProfile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setUserType sets the account classification with validation.
func (r *RiderProfile) setUserType(userType UserType) error {
	if err := userType.Validate(); err != nil {
		return err
	}
	r.userType = userType
	return nil
}

// setName sets the rider's name with validation.
func (r *RiderProfile) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

// setPhone sets the rider's phone number with validation.
func (r *RiderProfile) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	r.phone = phone
	return nil
}

// setEmail sets the rider's contact email.
func (r *RiderProfile) setEmail(email string) error {
	r.email = email
	return nil
}

// setDispatcherID sets the owning dispatcher with validation.
func (r *RiderProfile) setDispatcherID(dispatcherID *kernel.UUID) error {
	if dispatcherID != nil {
		if err := dispatcherID.Validate(); err != nil {
			return err
		}
	}
	r.dispatcherID = dispatcherID
	return nil
}

// setCounters sets the reliability counters during restoration.
func (r *RiderProfile) setCounters(orderCancelCount, totalDeliveries int) error {
	if orderCancelCount < 0 {
		return errs.NewValueIsInvalidError("orderCancelCount")
	}
	if totalDeliveries < 0 {
		return errs.NewValueIsInvalidError("totalDeliveries")
	}
	r.orderCancelCount = orderCancelCount
	r.totalDeliveries = totalDeliveries
	return nil
}
