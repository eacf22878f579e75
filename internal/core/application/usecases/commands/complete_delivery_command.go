package commands

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents the sender's confirmation that the
// delivered package arrived as expected, settling the escrowed funds.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	txRef    string
	senderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command for the given sender to
// confirm completion of the order identified by its transaction reference.
func NewCompleteDeliveryCommand(txRef string, senderID kernel.UUID) (CompleteDeliveryCommand, error) {
	completeCommand := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setTxRef(txRef),
		completeCommand.setSenderID(senderID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// TxRef returns the order's transaction reference.
func (c CompleteDeliveryCommand) TxRef() string {
	return c.txRef
}

// SenderID returns the confirming sender.
func (c CompleteDeliveryCommand) SenderID() kernel.UUID {
	return c.senderID
}

func (c *CompleteDeliveryCommand) setTxRef(txRef string) error {
	if txRef == "" {
		return ErrTxRefIsRequired
	}

	c.txRef = txRef
	return nil
}

func (c *CompleteDeliveryCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}
