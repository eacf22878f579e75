package delivery

import (
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
)

// PaymentStatus indicates whether the order's payment has been captured.
// Payment capture itself happens in an external collaborator; the engine
// only gates transitions on the resulting flag.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// Unpaid indicates payment has not been captured yet.
	Unpaid

	// Paid indicates payment was captured and funds are held for the order.
	Paid
)

// Validate checks if the PaymentStatus value is valid.
func (p PaymentStatus) Validate() error {
	if p != Unpaid && p != Paid {
		return errs.NewValueIsInvalidError("payment status")
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (p PaymentStatus) String() string {
	switch p {
	case Unpaid:
		return "Unpaid"
	case Paid:
		return "Paid"
	default:
		return "Unknown"
	}
}
