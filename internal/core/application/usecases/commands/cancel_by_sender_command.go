package commands

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

var (
	ErrCancelBySenderCommandIsNotConstructed = errors.New(
		"CancelBySenderCommand must be created via NewCancelBySenderCommand constructor",
	)
	ErrReasonIsRequired = errors.New("cancellation reason is required")
)

// CancelBySenderCommand represents the sender's request to cancel a
// delivery. Before pickup the order is terminated and refunded; after
// pickup it is only flagged for return logistics.
type CancelBySenderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	senderID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewCancelBySenderCommand creates a command for the given sender to
// cancel the order. A human-readable reason is mandatory.
func NewCancelBySenderCommand(orderID, senderID kernel.UUID, reason string) (CancelBySenderCommand, error) {
	cancelCommand := CancelBySenderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setSenderID(senderID),
		cancelCommand.setReason(reason),
	); err != nil {
		return CancelBySenderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBySenderCommand) Validate() error {
	return c.guard.Validate(ErrCancelBySenderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelBySenderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SenderID returns the cancelling sender.
func (c CancelBySenderCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Reason returns the cancellation reason.
func (c CancelBySenderCommand) Reason() string {
	return c.reason
}

func (c *CancelBySenderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelBySenderCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *CancelBySenderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
