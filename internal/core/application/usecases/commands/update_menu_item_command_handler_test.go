package commands_test

import (
	"context"
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	item := makeMenuItem(t)
	cmd, _ := commands.NewUpdateMenuItemCommand(kernel.RoleStaff, item.ID(), "Cheese Maggi", 5000, "specials")

	menuRepo := new(MockMenuItemRepository)
	uow := new(MockMenuUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once(),
		menuRepo.On("Update", mock.Anything, item).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Broadcast", menu.UpdatedEventName, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMenuItemCommandHandler(factory, notifier)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Cheese Maggi", updated.Name())
	assert.Equal(t, 5000, updated.Price())
	assert.Equal(t, "specials", updated.Category())
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUpdateMenuItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateMenuItemCommand(kernel.RoleStaff, itemID, "Cheese Maggi", 5000, "specials")

	menuRepo := new(MockMenuItemRepository)
	menuRepo.On("Get", mock.Anything, itemID).
		Return(nil, errs.NewObjectNotFoundError("itemID", itemID)).Once()

	uow := new(MockMenuUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("MenuItemRepository").Return(menuRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	h := commands.NewUpdateMenuItemCommandHandler(factory, notifier)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
}

func TestUpdateMenuItemCommandHandler_Handle_StudentForbidden(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewUpdateMenuItemCommand(kernel.RoleStudent, kernel.NewUUID(), "Cheese Maggi", 5000, "specials")

	factory := new(MockMenuUoWFactory)
	h := commands.NewUpdateMenuItemCommandHandler(factory, new(MockNotifier))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
