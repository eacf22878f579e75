package transaction

import (
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
)

// Type classifies a ledger posting.
type Type int

const (
	// TypeUnknown represents an invalid or undefined transaction type.
	TypeUnknown Type = iota

	// EscrowHold marks funds captured and reserved for a specific order.
	EscrowHold

	// EscrowRelease marks held funds leaving escrow at completion.
	EscrowRelease

	// Refunded marks held funds returned to the sender on cancellation
	// or decline.
	Refunded

	// Payout marks the dispatcher's share credited at completion.
	Payout
)

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if t < EscrowHold || t > Payout {
		return errs.NewValueIsInvalidError("transaction type")
	}
	return nil
}

// String returns the human-readable name of the transaction type.
func (t Type) String() string {
	switch t {
	case EscrowHold:
		return "EscrowHold"
	case EscrowRelease:
		return "EscrowRelease"
	case Refunded:
		return "Refunded"
	case Payout:
		return "Payout"
	default:
		return "Unknown"
	}
}

// PaymentStatus records the outcome of the payment flow the posting
// belongs to.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending marks a posting awaiting gateway confirmation.
	PaymentPending

	// PaymentSuccess marks a confirmed posting.
	PaymentSuccess

	// PaymentFailed marks a failed payment flow.
	PaymentFailed
)

// Validate checks if the PaymentStatus value is valid.
func (p PaymentStatus) Validate() error {
	if p < PaymentPending || p > PaymentFailed {
		return errs.NewValueIsInvalidError("transaction payment status")
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (p PaymentStatus) String() string {
	switch p {
	case PaymentPending:
		return "Pending"
	case PaymentSuccess:
		return "Success"
	case PaymentFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// OrderType names the vertical the related order belongs to.
type OrderType int

const (
	// OrderTypeUnknown represents an invalid or undefined order type.
	OrderTypeUnknown OrderType = iota

	// DeliveryOrder is a package delivery order.
	DeliveryOrder

	// FoodOrder is a restaurant order.
	FoodOrder

	// MarketplaceOrder is a marketplace purchase.
	MarketplaceOrder
)

// Validate checks if the OrderType value is valid.
func (o OrderType) Validate() error {
	if o < DeliveryOrder || o > MarketplaceOrder {
		return errs.NewValueIsInvalidError("order type")
	}
	return nil
}

// String returns the human-readable name of the order type.
func (o OrderType) String() string {
	switch o {
	case DeliveryOrder:
		return "Delivery"
	case FoodOrder:
		return "Food"
	case MarketplaceOrder:
		return "Marketplace"
	default:
		return "Unknown"
	}
}

// Label marks which side of a posting the record describes.
type Label int

const (
	// LabelUnknown represents an invalid or undefined label.
	LabelUnknown Label = iota

	// Credit marks funds entering the wallet.
	Credit

	// Debit marks funds leaving the wallet.
	Debit
)

// Validate checks if the Label value is valid.
func (l Label) Validate() error {
	if l != Credit && l != Debit {
		return errs.NewValueIsInvalidError("details label")
	}
	return nil
}

// String returns the human-readable name of the label.
func (l Label) String() string {
	switch l {
	case Credit:
		return "Credit"
	case Debit:
		return "Debit"
	default:
		return "Unknown"
	}
}
