package commands

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

var ErrCancelByRiderCommandIsNotConstructed = errors.New(
	"CancelByRiderCommand must be created via NewCancelByRiderCommand constructor",
)

// CancelByRiderCommand records a rider-initiated cancellation against the
// rider's reliability counter. The order status itself is untouched; the
// assignment is released through the decline flow.
type CancelByRiderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelByRiderCommand creates a command to count a rider cancellation
// for the given order.
func NewCancelByRiderCommand(orderID kernel.UUID) (CancelByRiderCommand, error) {
	cancelCommand := CancelByRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setOrderID(orderID); err != nil {
		return CancelByRiderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelByRiderCommand) Validate() error {
	return c.guard.Validate(ErrCancelByRiderCommandIsNotConstructed)
}

// OrderID returns the order the cancellation relates to.
func (c CancelByRiderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CancelByRiderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
