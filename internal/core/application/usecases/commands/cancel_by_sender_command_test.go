package commands_test

import (
	"testing"

	"github.com/kenmoh/servipal-backend/internal/core/application/usecases/commands"
	"github.com/kenmoh/servipal-backend/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelBySenderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	senderID := kernel.NewUUID()
	cmd, err := commands.NewCancelBySenderCommand(orderID, senderID, "recipient unavailable")
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.SenderID().IsEqual(senderID))
	assert.Equal(t, "recipient unavailable", cmd.Reason())
	require.NoError(t, cmd.Validate())
}

func TestNewCancelBySenderCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewCancelBySenderCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReasonIsRequired)
}

func TestNewCancelBySenderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCancelBySenderCommand(kernel.UUID{}, kernel.NewUUID(), "reason")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelBySenderCommand_ZeroValueFailsValidation(t *testing.T) {
	err := commands.CancelBySenderCommand{}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelBySenderCommandIsNotConstructed)
}
