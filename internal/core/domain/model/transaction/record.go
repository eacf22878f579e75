package transaction

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

// Domain errors for transaction records.
var (
	// ErrTxRefIsRequired is returned when creating a record without a transaction reference.
	ErrTxRefIsRequired = errs.NewValueIsRequiredError("txRef")
	// ErrReasonIsRequired is returned when creating details without a reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
	// ErrRecordIsNotConstructed is returned when using an improperly initialized Record.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")
)

// Details carries the structured annotation attached to every posting:
// which side of the transfer this record describes, why the posting
// happened, and which actor triggered it.
type Details struct {
	label  Label
	reason string
	actor  string
}

// NewDetails creates a validated Details value.
func NewDetails(label Label, reason, actor string) (Details, error) {
	if err := label.Validate(); err != nil {
		return Details{}, err
	}
	if reason == "" {
		return Details{}, ErrReasonIsRequired
	}

	return Details{label: label, reason: reason, actor: actor}, nil
}

// Label returns which side of the transfer the record describes.
func (d Details) Label() Label {
	return d.label
}

// Reason returns why the posting happened.
func (d Details) Reason() string {
	return d.reason
}

// Actor returns the id or name of the user who triggered the posting.
func (d Details) Actor() string {
	return d.actor
}

// Record is one immutable entry in the audit ledger. Every successful
// wallet posting writes exactly one Record; records are append-only and
// never mutated after construction.
type Record struct {
	// id uniquely identifies the record
	id kernel.UUID
	// txRef correlates the record with the order's payment flow
	txRef string
	// amount is the absolute amount moved
	amount kernel.Money
	// fromUserID identifies the paying side
	fromUserID kernel.UUID
	// toUserID identifies the receiving side, nil for self-postings
	toUserID *kernel.UUID
	// orderID is the related delivery order
	orderID kernel.UUID
	// walletID is the wallet the posting was applied to
	walletID kernel.UUID
	// transactionType classifies the posting
	transactionType Type
	// paymentStatus records the payment flow outcome
	paymentStatus PaymentStatus
	// orderType names the vertical of the related order
	orderType OrderType
	// details carries the structured annotation
	details Details
	// guard ensures the record was properly constructed
	guard guard.ConstructorGuard
}

// NewRecord creates a validated immutable Record.
func NewRecord(
	id kernel.UUID,
	txRef string,
	amount kernel.Money,
	fromUserID kernel.UUID,
	toUserID *kernel.UUID,
	orderID kernel.UUID,
	walletID kernel.UUID,
	transactionType Type,
	paymentStatus PaymentStatus,
	orderType OrderType,
	details Details,
) (*Record, error) {
	record := &Record{
		toUserID: toUserID,
		details:  details,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setTxRef(txRef),
		record.setAmount(amount),
		record.setFromUserID(fromUserID),
		record.setToUserID(toUserID),
		record.setOrderID(orderID),
		record.setWalletID(walletID),
		record.setTransactionType(transactionType),
		record.setPaymentStatus(paymentStatus),
		record.setOrderType(orderType),
		record.setDetails(details),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate ensures the Record was properly constructed.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// IsEqual compares two records by their unique identifiers.
func (r *Record) IsEqual(other *Record) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// TxRef returns the correlated transaction reference.
func (r *Record) TxRef() string {
	return r.txRef
}

// Amount returns the absolute amount moved.
func (r *Record) Amount() kernel.Money {
	return r.amount
}

// FromUserID returns the paying side.
func (r *Record) FromUserID() kernel.UUID {
	return r.fromUserID
}

// ToUserID returns the receiving side, or nil for self-postings.
func (r *Record) ToUserID() *kernel.UUID {
	return r.toUserID
}

// OrderID returns the related delivery order.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// WalletID returns the wallet the posting was applied to.
func (r *Record) WalletID() kernel.UUID {
	return r.walletID
}

// TransactionType returns the posting classification.
func (r *Record) TransactionType() Type {
	return r.transactionType
}

// PaymentStatus returns the payment flow outcome.
func (r *Record) PaymentStatus() PaymentStatus {
	return r.paymentStatus
}

// OrderType returns the vertical of the related order.
func (r *Record) OrderType() OrderType {
	return r.orderType
}

// Details returns the structured annotation.
func (r *Record) Details() Details {
	return r.details
}

// setID sets the record identifier with validation.
func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setTxRef sets the transaction reference with validation.
func (r *Record) setTxRef(txRef string) error {
	if txRef == "" {
		return ErrTxRefIsRequired
	}
	r.txRef = txRef
	return nil
}

// setAmount sets the amount with validation.
func (r *Record) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	r.amount = amount
	return nil
}

// setFromUserID sets the paying side with validation.
func (r *Record) setFromUserID(fromUserID kernel.UUID) error {
	if err := fromUserID.Validate(); err != nil {
		return err
	}
	r.fromUserID = fromUserID
	return nil
}

// setToUserID validates the optional receiving side.
func (r *Record) setToUserID(toUserID *kernel.UUID) error {
	if toUserID != nil {
		if err := toUserID.Validate(); err != nil {
			return err
		}
	}
	r.toUserID = toUserID
	return nil
}

// setOrderID sets the related order with validation.
func (r *Record) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

// setWalletID sets the target wallet with validation.
func (r *Record) setWalletID(walletID kernel.UUID) error {
	if err := walletID.Validate(); err != nil {
		return err
	}
	r.walletID = walletID
	return nil
}

// setTransactionType sets the posting classification with validation.
func (r *Record) setTransactionType(transactionType Type) error {
	if err := transactionType.Validate(); err != nil {
		return err
	}
	r.transactionType = transactionType
	return nil
}

// setPaymentStatus sets the payment flow outcome with validation.
func (r *Record) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	r.paymentStatus = paymentStatus
	return nil
}

// setOrderType sets the order vertical with validation.
func (r *Record) setOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	r.orderType = orderType
	return nil
}

// setDetails sets the structured annotation with validation.
func (r *Record) setDetails(details Details) error {
	if err := details.Label().Validate(); err != nil {
		return err
	}
	if details.Reason() == "" {
		return ErrReasonIsRequired
	}
	r.details = details
	return nil
}
