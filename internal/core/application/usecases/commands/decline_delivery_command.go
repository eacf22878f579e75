package commands

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

var ErrDeclineDeliveryCommandIsNotConstructed = errors.New(
	"DeclineDeliveryCommand must be created via NewDeclineDeliveryCommand constructor",
)

// DeclineDeliveryCommand represents the attached rider's request to walk
// away from a delivery, returning the order to the unassigned pool.
type DeclineDeliveryCommand struct { //nolint:recvcheck //using for validation
	txRef   string
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeclineDeliveryCommand creates a command for the given rider to
// decline the order identified by its transaction reference.
func NewDeclineDeliveryCommand(txRef string, riderID kernel.UUID) (DeclineDeliveryCommand, error) {
	declineCommand := DeclineDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		declineCommand.setTxRef(txRef),
		declineCommand.setRiderID(riderID),
	); err != nil {
		return DeclineDeliveryCommand{}, err
	}

	return declineCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeclineDeliveryCommandIsNotConstructed)
}

// TxRef returns the order's transaction reference.
func (c DeclineDeliveryCommand) TxRef() string {
	return c.txRef
}

// RiderID returns the declining rider.
func (c DeclineDeliveryCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *DeclineDeliveryCommand) setTxRef(txRef string) error {
	if txRef == "" {
		return ErrTxRefIsRequired
	}

	c.txRef = txRef
	return nil
}

func (c *DeclineDeliveryCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
