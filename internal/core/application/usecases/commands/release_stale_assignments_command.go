package commands

import (
	"errors"
	"time"

	"github.com/kenmoh/servipal-backend/internal/pkg/guard"
)

var (
	ErrReleaseStaleAssignmentsCommandIsNotConstructed = errors.New(
		"ReleaseStaleAssignmentsCommand must be created via NewReleaseStaleAssignmentsCommand constructor",
	)
	ErrStaleAfterIsInvalid = errors.New("stale-after duration must be greater than 0")
)

// ReleaseStaleAssignmentsCommand requests that orders stuck in Assigned
// longer than the configured timeout be returned to the unassigned pool.
type ReleaseStaleAssignmentsCommand struct { //nolint:recvcheck //using for validation
	staleAfter time.Duration

	guard guard.ConstructorGuard
}

// NewReleaseStaleAssignmentsCommand creates a command releasing
// assignments older than staleAfter.
func NewReleaseStaleAssignmentsCommand(staleAfter time.Duration) (ReleaseStaleAssignmentsCommand, error) {
	releaseCommand := ReleaseStaleAssignmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := releaseCommand.setStaleAfter(staleAfter); err != nil {
		return ReleaseStaleAssignmentsCommand{}, err
	}

	return releaseCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseStaleAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStaleAssignmentsCommandIsNotConstructed)
}

// StaleAfter returns how long an assignment may sit unaccepted.
func (c ReleaseStaleAssignmentsCommand) StaleAfter() time.Duration {
	return c.staleAfter
}

func (c *ReleaseStaleAssignmentsCommand) setStaleAfter(staleAfter time.Duration) error {
	if staleAfter <= 0 {
		return ErrStaleAfterIsInvalid
	}

	c.staleAfter = staleAfter
	return nil
}
