package commands

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

var ErrMarkInTransitCommandIsNotConstructed = errors.New(
	"MarkInTransitCommand must be created via NewMarkInTransitCommand constructor",
)

// MarkInTransitCommand represents the attached rider reporting that the
// package is on its way to the recipient. Optional hop; the rider may
// report delivery straight from pickup.
type MarkInTransitCommand struct { //nolint:recvcheck //using for validation
	txRef   string
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkInTransitCommand creates a command for the given rider to report
// the order identified by its transaction reference as in transit.
func NewMarkInTransitCommand(txRef string, riderID kernel.UUID) (MarkInTransitCommand, error) {
	transitCommand := MarkInTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitCommand.setTxRef(txRef),
		transitCommand.setRiderID(riderID),
	); err != nil {
		return MarkInTransitCommand{}, err
	}

	return transitCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkInTransitCommandIsNotConstructed)
}

// TxRef returns the order's transaction reference.
func (c MarkInTransitCommand) TxRef() string {
	return c.txRef
}

// RiderID returns the reporting rider.
func (c MarkInTransitCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *MarkInTransitCommand) setTxRef(txRef string) error {
	if txRef == "" {
		return ErrTxRefIsRequired
	}

	c.txRef = txRef
	return nil
}

func (c *MarkInTransitCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
