package delivery

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

// Domain errors for delivery order operations.
var (
	// ErrTxRefIsRequired is returned when creating an order without a transaction reference.
	ErrTxRefIsRequired = errs.NewValueIsRequiredError("txRef")
	// ErrOrderNumberIsRequired is returned when creating an order without an order number.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
	// ErrCancelReasonIsRequired is returned when cancelling an order without a reason.
	ErrCancelReasonIsRequired = errs.NewValueIsRequiredError("cancelReason")
	// ErrDeliveryOrderIsNotConstructed is returned when using an improperly initialized DeliveryOrder.
	ErrDeliveryOrderIsNotConstructed = errors.New("DeliveryOrder must be created via NewDeliveryOrder constructor")
)

// DeliveryOrder represents a delivery order in the system. It is the aggregate
// root that manages the order lifecycle from payment through rider assignment,
// pickup and delivery to completion or cancellation.
//
// DeliveryOrder follows these invariants:
//   - Must have a valid unique identifier, transaction reference and sender
//   - A rider is attached iff the status is between Assigned and Completed
//   - Payment must be captured before any rider assignment
//   - amountDueDispatch never exceeds deliveryFee
//   - Status transitions follow the state machine defined on Status
//   - Can only be created through NewDeliveryOrder or RestoreDeliveryOrder
//
// Every mutator takes the acting user's id explicitly and checks it against
// the order's sender or assigned rider; the aggregate never reads ambient
// identity.
type DeliveryOrder struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// txRef is the external correlation key for the payment flow
	txRef string

	// orderNumber is the human-readable order reference
	orderNumber string

	// senderID identifies the customer who placed the order
	senderID kernel.UUID

	// riderID is the assigned rider's ID (nil if unassigned)
	riderID *kernel.UUID

	// dispatchID is the assigned rider's dispatcher (nil if unassigned)
	dispatchID *kernel.UUID

	// riderPhone is a denormalized snapshot taken at assignment time
	riderPhone *string

	// paymentStatus gates rider assignment
	paymentStatus PaymentStatus

	// status is the current state in the delivery lifecycle
	status Status

	// deliveryFee is the fee held in escrow for the delivery
	deliveryFee kernel.Money

	// amountDueDispatch is the dispatcher's share of the fee
	amountDueDispatch kernel.Money

	// totalPrice is the full amount the sender paid
	totalPrice kernel.Money

	// isSenderCancelled flags a post-pickup cancellation request
	isSenderCancelled bool

	// cancelReason explains a cancellation (nil until cancelled)
	cancelReason *string

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewDeliveryOrder creates a new DeliveryOrder with validation. The order
// starts in Pending status with payment not yet captured; the payment
// collaborator moves it to PaidNeedsRider via MarkPaid.
//
// Returns a validation error (aggregated for multiple issues) if any
// parameter is invalid.
func NewDeliveryOrder(
	id kernel.UUID,
	txRef string,
	orderNumber string,
	senderID kernel.UUID,
	deliveryFee kernel.Money,
	amountDueDispatch kernel.Money,
	totalPrice kernel.Money,
) (*DeliveryOrder, error) {
	order := &DeliveryOrder{
		paymentStatus: Unpaid,
		status:        Pending,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setTxRef(txRef),
		order.setOrderNumber(orderNumber),
		order.setSenderID(senderID),
		order.setAmounts(deliveryFee, amountDueDispatch, totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreDeliveryOrder reconstructs a DeliveryOrder aggregate from persistent
// storage. Unlike NewDeliveryOrder, this constructor restores the order to its
// previously persisted state, including status, assignment fields and
// cancellation flags. The restored order behaves identically to one mutated
// through normal domain operations.
func RestoreDeliveryOrder(
	id kernel.UUID,
	txRef string,
	orderNumber string,
	senderID kernel.UUID,
	riderID *kernel.UUID,
	dispatchID *kernel.UUID,
	riderPhone *string,
	paymentStatus PaymentStatus,
	status Status,
	deliveryFee kernel.Money,
	amountDueDispatch kernel.Money,
	totalPrice kernel.Money,
	isSenderCancelled bool,
	cancelReason *string,
) (*DeliveryOrder, error) {
	order := &DeliveryOrder{
		isSenderCancelled: isSenderCancelled,
		cancelReason:      cancelReason,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setTxRef(txRef),
		order.setOrderNumber(orderNumber),
		order.setSenderID(senderID),
		order.setAmounts(deliveryFee, amountDueDispatch, totalPrice),
		order.setPaymentStatus(paymentStatus),
		order.setStatus(status),
		order.setAssignment(riderID, dispatchID, riderPhone),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the DeliveryOrder was properly constructed.
func (d *DeliveryOrder) Validate() error {
	if d == nil {
		return ErrDeliveryOrderIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (d *DeliveryOrder) IsEqual(other *DeliveryOrder) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (d *DeliveryOrder) ID() kernel.UUID {
	return d.id
}

// TxRef returns the transaction reference correlating the payment flow.
func (d *DeliveryOrder) TxRef() string {
	return d.txRef
}

// OrderNumber returns the human-readable order reference.
func (d *DeliveryOrder) OrderNumber() string {
	return d.orderNumber
}

// SenderID returns the id of the customer who placed the order.
func (d *DeliveryOrder) SenderID() kernel.UUID {
	return d.senderID
}

// RiderID returns the assigned rider's id, or nil if unassigned.
func (d *DeliveryOrder) RiderID() *kernel.UUID {
	return d.riderID
}

// DispatchID returns the assigned rider's dispatcher id, or nil if unassigned.
func (d *DeliveryOrder) DispatchID() *kernel.UUID {
	return d.dispatchID
}

// RiderPhone returns the rider phone snapshot, or nil if unassigned.
func (d *DeliveryOrder) RiderPhone() *string {
	return d.riderPhone
}

// PaymentStatus returns the current payment status.
func (d *DeliveryOrder) PaymentStatus() PaymentStatus {
	return d.paymentStatus
}

// Status returns the current delivery status.
func (d *DeliveryOrder) Status() Status {
	return d.status
}

// DeliveryFee returns the fee held in escrow for the delivery.
func (d *DeliveryOrder) DeliveryFee() kernel.Money {
	return d.deliveryFee
}

// AmountDueDispatch returns the dispatcher's share of the delivery fee.
func (d *DeliveryOrder) AmountDueDispatch() kernel.Money {
	return d.amountDueDispatch
}

// TotalPrice returns the full amount the sender paid.
func (d *DeliveryOrder) TotalPrice() kernel.Money {
	return d.totalPrice
}

// IsSenderCancelled reports whether the sender requested cancellation after pickup.
func (d *DeliveryOrder) IsSenderCancelled() bool {
	return d.isSenderCancelled
}

// CancelReason returns the reason given on cancellation, or nil.
func (d *DeliveryOrder) CancelReason() *string {
	return d.cancelReason
}

// MarkPaid records payment capture and moves the order into the unassigned
// pool. Called by the payment collaborator once funds are held.
func (d *DeliveryOrder) MarkPaid() error {
	newStatus, err := d.status.MarkPaid()
	if err != nil {
		return err
	}

	d.paymentStatus = Paid
	d.status = newStatus
	return nil
}

// Assign attaches a rider to the order on behalf of the sender.
//
// Business rules:
//   - The acting user must be the order's sender
//   - Payment must be captured
//   - The order must not already have a rider
//   - The order must be in Pending or PaidNeedsRider status
//
// The rider's dispatcher id and phone number are snapshotted onto the order
// so downstream reads do not depend on the profile store.
func (d *DeliveryOrder) Assign(actorID, riderID kernel.UUID, dispatchID *kernel.UUID, riderPhone string) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if err := d.ensureActorIsSender(actorID, "assign rider"); err != nil {
		return err
	}
	if err := d.ensurePaid(); err != nil {
		return err
	}
	if d.riderID != nil {
		return errs.NewConflictError("order already has a rider", d.id)
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.riderID = &riderID
	d.dispatchID = dispatchID
	d.riderPhone = &riderPhone
	return nil
}

// Accept records the rider's commitment to the delivery.
//
// Business rules:
//   - If a rider is already attached, the acting user must be that rider
//   - Payment must be captured
//   - A rider may claim an unassigned order directly from PaidNeedsRider
//   - Accepting an already accepted order by the same rider is a no-op,
//     so client retries after a dropped response do not fail
func (d *DeliveryOrder) Accept(actorID kernel.UUID, dispatchID *kernel.UUID, riderPhone string) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if d.riderID != nil && !d.riderID.IsEqual(actorID) {
		return errs.NewConflictError("order is assigned to a different rider", d.id)
	}
	if err := d.ensurePaid(); err != nil {
		return err
	}

	if d.status == Accepted {
		return nil
	}

	newStatus, err := d.status.Accept()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.riderID = &actorID
	d.dispatchID = dispatchID
	d.riderPhone = &riderPhone
	return nil
}

// Decline releases the current assignment and returns the order to the
// unassigned pool. The acting user must be the attached rider.
func (d *DeliveryOrder) Decline(actorID kernel.UUID) error {
	if err := d.ensureActorIsRider(actorID, "decline delivery"); err != nil {
		return err
	}

	newStatus, err := d.status.Decline()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.riderID = nil
	d.dispatchID = nil
	d.riderPhone = nil
	return nil
}

// Pickup records that the attached rider collected the package.
func (d *DeliveryOrder) Pickup(actorID kernel.UUID) error {
	if err := d.ensureActorIsRider(actorID, "pickup delivery"); err != nil {
		return err
	}

	newStatus, err := d.status.Pickup()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// MarkInTransit records that the package is on its way to the recipient.
func (d *DeliveryOrder) MarkInTransit(actorID kernel.UUID) error {
	if err := d.ensureActorIsRider(actorID, "mark delivery in transit"); err != nil {
		return err
	}

	newStatus, err := d.status.MarkInTransit()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// MarkDelivered records that the rider handed over the package.
func (d *DeliveryOrder) MarkDelivered(actorID kernel.UUID) error {
	if err := d.ensureActorIsRider(actorID, "mark delivery delivered"); err != nil {
		return err
	}

	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Complete records the sender's confirmation of delivery.
// Completed is the final state in the delivery lifecycle.
func (d *DeliveryOrder) Complete(actorID kernel.UUID) error {
	if err := d.ensureActorIsSender(actorID, "complete delivery"); err != nil {
		return err
	}

	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// CancelBySender processes a cancellation request from the sender.
//
// Before pickup the order is terminated: the status moves to Cancelled and
// the assignment fields are cleared. After pickup the order cannot be
// terminated; it is flagged for return logistics instead and the status is
// left unchanged.
//
// Returns true when the order was terminated, false when it was only flagged.
func (d *DeliveryOrder) CancelBySender(actorID kernel.UUID, reason string) (bool, error) {
	if err := d.ensureActorIsSender(actorID, "cancel delivery"); err != nil {
		return false, err
	}
	if reason == "" {
		return false, ErrCancelReasonIsRequired
	}

	if d.status == PickedUp || d.status == InTransit {
		d.isSenderCancelled = true
		d.cancelReason = &reason
		return false, nil
	}

	newStatus, err := d.status.Cancel()
	if err != nil {
		return false, err
	}

	d.status = newStatus
	d.isSenderCancelled = true
	d.cancelReason = &reason
	d.riderID = nil
	d.dispatchID = nil
	d.riderPhone = nil
	return true, nil
}

// ensureActorIsSender checks that the acting user is the order's sender.
func (d *DeliveryOrder) ensureActorIsSender(actorID kernel.UUID, action string) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if !d.senderID.IsEqual(actorID) {
		return errs.NewNotAuthorizedError(action, actorID)
	}
	return nil
}

// ensureActorIsRider checks that the acting user is the attached rider.
func (d *DeliveryOrder) ensureActorIsRider(actorID kernel.UUID, action string) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if d.riderID == nil || !d.riderID.IsEqual(actorID) {
		return errs.NewNotAuthorizedError(action, actorID)
	}
	return nil
}

// ensurePaid checks that payment was captured for the order.
func (d *DeliveryOrder) ensurePaid() error {
	if d.paymentStatus != Paid {
		return errs.NewPreconditionFailedError("payment status", Paid.String(), d.paymentStatus.String())
	}
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (d *DeliveryOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setTxRef validates and sets the transaction reference.
func (d *DeliveryOrder) setTxRef(txRef string) error {
	if txRef == "" {
		return ErrTxRefIsRequired
	}
	d.txRef = txRef
	return nil
}

// setOrderNumber validates and sets the order number.
func (d *DeliveryOrder) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	d.orderNumber = orderNumber
	return nil
}

// setSenderID validates and sets the sender identifier.
func (d *DeliveryOrder) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	d.senderID = senderID
	return nil
}

// setAmounts validates and sets the order's monetary amounts.
// The dispatcher's share never exceeds the delivery fee, and the total
// price covers at least the fee.
func (d *DeliveryOrder) setAmounts(deliveryFee, amountDueDispatch, totalPrice kernel.Money) error {
	if err := errors.Join(
		deliveryFee.Validate(),
		amountDueDispatch.Validate(),
		totalPrice.Validate(),
	); err != nil {
		return err
	}

	if !deliveryFee.IsGreaterOrEqual(amountDueDispatch) {
		return errs.NewValueIsOutOfRangeError(
			"amountDueDispatch", amountDueDispatch.Amount(), kernel.MinAmount, deliveryFee.Amount())
	}
	if !totalPrice.IsGreaterOrEqual(deliveryFee) {
		return errs.NewValueIsOutOfRangeError(
			"deliveryFee", deliveryFee.Amount(), kernel.MinAmount, totalPrice.Amount())
	}

	d.deliveryFee = deliveryFee
	d.amountDueDispatch = amountDueDispatch
	d.totalPrice = totalPrice
	return nil
}

// setPaymentStatus validates and sets the payment status during restoration.
func (d *DeliveryOrder) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	d.paymentStatus = paymentStatus
	return nil
}

// setStatus validates and sets the delivery status during restoration.
func (d *DeliveryOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

// setAssignment validates and sets the assignment fields during restoration.
// Enforces the rider-presence invariant against the already restored status.
func (d *DeliveryOrder) setAssignment(riderID, dispatchID *kernel.UUID, riderPhone *string) error {
	if d.status != Unknown {
		if err := d.status.ValidateCanHaveRider(riderID != nil); err != nil {
			return err
		}
	}

	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return err
		}
	}
	if dispatchID != nil {
		if err := dispatchID.Validate(); err != nil {
			return err
		}
	}

	d.riderID = riderID
	d.dispatchID = dispatchID
	d.riderPhone = riderPhone
	return nil
}
