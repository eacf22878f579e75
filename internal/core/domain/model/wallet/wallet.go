package wallet

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/errs"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

// ErrWalletIsNotConstructed is returned when using an improperly initialized Wallet.
var ErrWalletIsNotConstructed = errors.New("Wallet must be created via NewWallet constructor")

// Wallet represents a user's funds. It is an aggregate root holding the
// spendable balance and the escrow balance.
//
// Invariant: both balances are non-negative at every observable instant.
// PostAdjustment validates the resulting balances before applying anything,
// so a rejected posting leaves the wallet untouched.
type Wallet struct {
	// id uniquely identifies the wallet
	id kernel.UUID
	// ownerID identifies the user the wallet belongs to
	ownerID kernel.UUID
	// balance is the spendable amount
	balance kernel.Money
	// escrowBalance is the amount held against in-flight orders
	escrowBalance kernel.Money
	// guard ensures the wallet was properly constructed
	guard guard.ConstructorGuard
}

// NewWallet creates a new empty Wallet for the given owner.
func NewWallet(id, ownerID kernel.UUID) (*Wallet, error) {
	wallet := &Wallet{
		balance:       kernel.ZeroMoney(),
		escrowBalance: kernel.ZeroMoney(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wallet.setID(id),
		wallet.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return wallet, nil
}

// RestoreWallet reconstructs a Wallet aggregate from persistent storage.
func RestoreWallet(id, ownerID kernel.UUID, balance, escrowBalance kernel.Money) (*Wallet, error) {
	wallet := &Wallet{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wallet.setID(id),
		wallet.setOwnerID(ownerID),
		wallet.setBalances(balance, escrowBalance),
	); err != nil {
		return nil, err
	}

	return wallet, nil
}

// Validate ensures the Wallet was properly constructed.
func (w *Wallet) Validate() error {
	if w == nil {
		return ErrWalletIsNotConstructed
	}
	return w.guard.Validate(ErrWalletIsNotConstructed)
}

// IsEqual compares two wallets by their unique identifiers.
func (w *Wallet) IsEqual(other *Wallet) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the wallet's unique identifier.
func (w *Wallet) ID() kernel.UUID {
	return w.id
}

// OwnerID returns the id of the user the wallet belongs to.
func (w *Wallet) OwnerID() kernel.UUID {
	return w.ownerID
}

// Balance returns the spendable amount.
func (w *Wallet) Balance() kernel.Money {
	return w.balance
}

// EscrowBalance returns the amount held against in-flight orders.
func (w *Wallet) EscrowBalance() kernel.Money {
	return w.escrowBalance
}

// PostAdjustment applies signed deltas, in minor currency units, to the
// spendable balance and the escrow balance in one step. Returns an
// InsufficientFundsError and leaves the wallet untouched if either
// resulting balance would be negative.
func (w *Wallet) PostAdjustment(balanceDelta, escrowDelta int64) error {
	newBalance := w.balance.Amount() + balanceDelta
	newEscrow := w.escrowBalance.Amount() + escrowDelta

	if newBalance < 0 || newEscrow < 0 {
		return errs.NewInsufficientFundsError(w.id)
	}

	balance, err := kernel.NewMoney(newBalance)
	if err != nil {
		return err
	}
	escrow, err := kernel.NewMoney(newEscrow)
	if err != nil {
		return err
	}

	w.balance = balance
	w.escrowBalance = escrow
	return nil
}

// setID sets the wallet's unique identifier with validation.
func (w *Wallet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

// setOwnerID sets the wallet's owner with validation.
func (w *Wallet) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	w.ownerID = ownerID
	return nil
}

// setBalances sets both balances during restoration.
func (w *Wallet) setBalances(balance, escrowBalance kernel.Money) error {
	if err := errors.Join(balance.Validate(), escrowBalance.Validate()); err != nil {
		return err
	}
	w.balance = balance
	w.escrowBalance = escrowBalance
	return nil
}
