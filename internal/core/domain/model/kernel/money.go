package kernel

import (
	"fmt"
	"math"

	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not properly
// initialized through NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Amount bounds in minor currency units.
const (
	MinAmount int64 = 0
	MaxAmount int64 = math.MaxInt64
)

// Money is a value object that represents a monetary amount in minor currency
// units (e.g. kobo). Amounts are always non-negative: debits are expressed as
// operations (Sub) rather than negative values, which keeps wallet balances
// and transaction records free of sign ambiguity.
//
// Money is immutable. Arithmetic methods return a new Money value and an error
// when the operation would leave the valid range.
type Money struct {
	amount int64

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor currency units.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < MinAmount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, MinAmount, MaxAmount)
	}
	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney returns a properly constructed Money value of zero.
func ZeroMoney() Money {
	return Money{
		amount: 0,
		guard:  guard.NewConstructorGuard(),
	}
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) (Money, error) {
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount + other.amount)
}

// Sub returns the difference of two Money values.
// Returns an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount - other.amount)
}

// IsEqual compares two Money values for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// IsGreaterOrEqual reports whether m is greater than or equal to other.
func (m Money) IsGreaterOrEqual(other Money) bool {
	return m.amount >= other.amount
}

// String returns the amount formatted in minor currency units.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}

// Validate checks if the Money value is properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
