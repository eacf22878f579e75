package commands

import (
	"errors"

	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"
	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

var (
	ErrAssignRiderCommandIsNotConstructed = errors.New(
		"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
	)
	ErrTxRefIsRequired = errors.New("transaction reference is required")
)

// AssignRiderCommand represents the sender's request to attach a rider to
// a paid delivery order.
//
// Example:
//
//	cmd, err := NewAssignRiderCommand("TX-1001", riderID, senderID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//
//	handler := NewAssignRiderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	txRef   string
	riderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign a rider to the order
// identified by its transaction reference. The actor is the user issuing
// the request; authorization against the order's sender happens in the
// domain.
func NewAssignRiderCommand(txRef string, riderID, actorID kernel.UUID) (AssignRiderCommand, error) {
	assignCommand := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setTxRef(txRef),
		assignCommand.setRiderID(riderID),
		assignCommand.setActorID(actorID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignRiderCommandIsNotConstructed if validation fails.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// TxRef returns the order's transaction reference.
func (c AssignRiderCommand) TxRef() string {
	return c.txRef
}

// RiderID returns the rider to attach.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// ActorID returns the user issuing the request.
func (c AssignRiderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AssignRiderCommand) setTxRef(txRef string) error {
	if txRef == "" {
		return ErrTxRefIsRequired
	}

	c.txRef = txRef
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *AssignRiderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
