package commands_test

import (
	"testing"
	"time"

	"github.com/kenmoh/servipal-backend/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReleaseStaleAssignmentsCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewReleaseStaleAssignmentsCommand(15 * time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cmd.StaleAfter())
	require.NoError(t, cmd.Validate())
}

func TestNewReleaseStaleAssignmentsCommand_NonPositiveDuration(t *testing.T) {
	_, err := commands.NewReleaseStaleAssignmentsCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStaleAfterIsInvalid)

	_, err = commands.NewReleaseStaleAssignmentsCommand(-time.Minute)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStaleAfterIsInvalid)
}

func TestReleaseStaleAssignmentsCommand_ZeroValueFailsValidation(t *testing.T) {
	err := commands.ReleaseStaleAssignmentsCommand{}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReleaseStaleAssignmentsCommandIsNotConstructed)
}
