package commands

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents a rider's commitment to a delivery.
// The rider may be the one previously assigned by the sender, or any
// eligible rider claiming an unassigned order from the pool.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	txRef   string
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command for the given rider to accept
// the order identified by its transaction reference.
func NewAcceptDeliveryCommand(txRef string, riderID kernel.UUID) (AcceptDeliveryCommand, error) {
	acceptCommand := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setTxRef(txRef),
		acceptCommand.setRiderID(riderID),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// TxRef returns the order's transaction reference.
func (c AcceptDeliveryCommand) TxRef() string {
	return c.txRef
}

// RiderID returns the accepting rider.
func (c AcceptDeliveryCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *AcceptDeliveryCommand) setTxRef(txRef string) error {
	if txRef == "" {
		return ErrTxRefIsRequired
	}

	c.txRef = txRef
	return nil
}

func (c *AcceptDeliveryCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
