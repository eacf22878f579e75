package commands

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

var ErrPickupDeliveryCommandIsNotConstructed = errors.New(
	"PickupDeliveryCommand must be created via NewPickupDeliveryCommand constructor",
)

// PickupDeliveryCommand represents the attached rider reporting that the
// package was collected from the sender.
type PickupDeliveryCommand struct { //nolint:recvcheck //using for validation
	txRef   string
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickupDeliveryCommand creates a command for the given rider to report
// pickup of the order identified by its transaction reference.
func NewPickupDeliveryCommand(txRef string, riderID kernel.UUID) (PickupDeliveryCommand, error) {
	pickupCommand := PickupDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupCommand.setTxRef(txRef),
		pickupCommand.setRiderID(riderID),
	); err != nil {
		return PickupDeliveryCommand{}, err
	}

	return pickupCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrPickupDeliveryCommandIsNotConstructed)
}

// TxRef returns the order's transaction reference.
func (c PickupDeliveryCommand) TxRef() string {
	return c.txRef
}

// RiderID returns the reporting rider.
func (c PickupDeliveryCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *PickupDeliveryCommand) setTxRef(txRef string) error {
	if txRef == "" {
		return ErrTxRefIsRequired
	}

	c.txRef = txRef
	return nil
}

func (c *PickupDeliveryCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
