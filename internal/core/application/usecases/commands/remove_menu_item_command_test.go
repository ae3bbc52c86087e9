package commands_test

import (
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveMenuItemCommand_ValidInput(t *testing.T) {
	itemID := kernel.NewUUID()
	cmd, err := commands.NewRemoveMenuItemCommand(kernel.RoleStaff, itemID)
	require.NoError(t, err)
	assert.Equal(t, kernel.RoleStaff, cmd.ActorRole())
	assert.Equal(t, itemID, cmd.ItemID())
}

func TestNewRemoveMenuItemCommand_InvalidItemID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewRemoveMenuItemCommand(kernel.RoleStaff, invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
