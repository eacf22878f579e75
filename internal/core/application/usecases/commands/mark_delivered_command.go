package commands

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents the attached rider reporting that the
// package was handed over to the recipient.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	txRef   string
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command for the given rider to report
// the order identified by its transaction reference as delivered.
func NewMarkDeliveredCommand(txRef string, riderID kernel.UUID) (MarkDeliveredCommand, error) {
	deliveredCommand := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveredCommand.setTxRef(txRef),
		deliveredCommand.setRiderID(riderID),
	); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return deliveredCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// TxRef returns the order's transaction reference.
func (c MarkDeliveredCommand) TxRef() string {
	return c.txRef
}

// RiderID returns the reporting rider.
func (c MarkDeliveredCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *MarkDeliveredCommand) setTxRef(txRef string) error {
	if txRef == "" {
		return ErrTxRefIsRequired
	}

	c.txRef = txRef
	return nil
}

func (c *MarkDeliveredCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
