package commands_test

import (
	"testing"

	"github.com/kenmoh/servipal-backend/internal/core/application/usecases/commands"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeclineDeliveryCommand_ValidInput(t *testing.T) {
	riderID := kernel.NewUUID()
	cmd, err := commands.NewDeclineDeliveryCommand(testTxRef, riderID)
	require.NoError(t, err)
	assert.Equal(t, testTxRef, cmd.TxRef())
	assert.True(t, cmd.RiderID().IsEqual(riderID))
	require.NoError(t, cmd.Validate())
}

func TestNewDeclineDeliveryCommand_InvalidRiderID(t *testing.T) {
	_, err := commands.NewDeclineDeliveryCommand(testTxRef, kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDeclineDeliveryCommand_ZeroValueFailsValidation(t *testing.T) {
	err := commands.DeclineDeliveryCommand{}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeclineDeliveryCommandIsNotConstructed)
}
