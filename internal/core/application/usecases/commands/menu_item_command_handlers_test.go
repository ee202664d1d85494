package commands_test

import (
	"context"
	"testing"

	"jikoni/internal/core/application/usecases/commands"
	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	price, err := kernel.MoneyFromUnits(350)
	require.NoError(t, err)
	cmd, err := commands.NewCreateMenuItemCommand("Matoke", "Stewed plantains", price, "Main Course", 25)
	require.NoError(t, err)

	repo := new(MockMenuRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*menu.Item")).Return(nil).Once()

	h := commands.NewCreateMenuItemCommandHandler(repo)
	item, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, item)
	require.Equal(t, "Matoke", item.Name())
	require.True(t, item.IsAvailable())
	repo.AssertExpectations(t)
}

func TestCreateMenuItemCommand_Validation(t *testing.T) {
	price, err := kernel.MoneyFromUnits(100)
	require.NoError(t, err)

	_, err = commands.NewCreateMenuItemCommand("", "", price, "Main Course", 10)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateMenuItemCommand("Ugali", "", price, "", 10)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateMenuItemCommand("Ugali", "", price, "Main Course", 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	item := newTestItem(t, "Chai", 80)
	newPrice, err := kernel.MoneyFromUnits(100)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateMenuItemCommand(item.ID(), "Chai Masala", "With spices", newPrice, "Beverage", 7)
	require.NoError(t, err)

	repo := new(MockMenuRepository)
	mock.InOrder(
		repo.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		repo.On("Update", ctx, item).Return(nil).Once(),
	)

	h := commands.NewUpdateMenuItemCommandHandler(repo)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, "Chai Masala", item.Name())
	require.True(t, item.Price().IsEqual(newPrice))
	require.Equal(t, "Beverage", item.Category())
}

func TestUpdateMenuItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()
	price, err := kernel.MoneyFromUnits(100)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateMenuItemCommand(itemID, "Chai", "", price, "Beverage", 5)
	require.NoError(t, err)

	repo := new(MockMenuRepository)
	repo.On("Get", ctx, itemID).Return(nil, errs.NewObjectNotFoundError("menuItemID", itemID)).Once()

	h := commands.NewUpdateMenuItemCommandHandler(repo)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestSetMenuItemAvailabilityCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	item := newTestItem(t, "Mandazi", 30)
	cmd, err := commands.NewSetMenuItemAvailabilityCommand(item.ID(), false)
	require.NoError(t, err)

	repo := new(MockMenuRepository)
	mock.InOrder(
		repo.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		repo.On("Update", ctx, item).Return(nil).Once(),
	)

	h := commands.NewSetMenuItemAvailabilityCommandHandler(repo)
	require.NoError(t, h.Handle(ctx, cmd))
	require.False(t, item.IsAvailable())
}
