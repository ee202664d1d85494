package cmd

import (
	"jikoni/internal/adapters/out/memory"
	"jikoni/internal/core/application/usecases/commands"
	"jikoni/internal/core/application/usecases/queries"
)

// CompositionRoot owns the storage adapters and builds command and query
// handlers on top of them. Everything shares the same in-memory stores, so
// the root must be created once and reused.
type CompositionRoot struct {
	cartStore     *memory.CartStore
	menuRepo      *memory.MenuRepository
	tableRegistry *memory.TableRegistry
	orderRepo     *memory.OrderRepository
	staffRoster   *memory.StaffRoster
}

func NewCompositionRoot(_ Config) CompositionRoot {
	return CompositionRoot{
		cartStore:     memory.NewCartStore(),
		menuRepo:      memory.NewMenuRepository(),
		tableRegistry: memory.NewTableRegistry(),
		orderRepo:     memory.NewOrderRepository(),
		staffRoster:   memory.NewStaffRoster(),
	}
}

func (c *CompositionRoot) CartStore() *memory.CartStore {
	return c.cartStore
}

func (c *CompositionRoot) MenuRepository() *memory.MenuRepository {
	return c.menuRepo
}

func (c *CompositionRoot) TableRegistry() *memory.TableRegistry {
	return c.tableRegistry
}

func (c *CompositionRoot) OrderRepository() *memory.OrderRepository {
	return c.orderRepo
}

func (c *CompositionRoot) StaffRoster() *memory.StaffRoster {
	return c.staffRoster
}

func (c *CompositionRoot) CreateStartCartCommandHandler() commands.StartCartCommandHandler {
	return commands.NewStartCartCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartStore, c.menuRepo)
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartStore)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.cartStore, c.tableRegistry, c.orderRepo)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateSetTableStatusCommandHandler() commands.SetTableStatusCommandHandler {
	return commands.NewSetTableStatusCommandHandler(c.tableRegistry)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuRepo)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuRepo)
}

func (c *CompositionRoot) CreateSetMenuItemAvailabilityCommandHandler() commands.SetMenuItemAvailabilityCommandHandler {
	return commands.NewSetMenuItemAvailabilityCommandHandler(c.menuRepo)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.cartStore)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.menuRepo)
}

func (c *CompositionRoot) CreateGetTablesQueryHandler() queries.GetTablesQueryHandler {
	return queries.NewGetTablesQueryHandler(c.tableRegistry)
}

func (c *CompositionRoot) CreateGetStaffQueryHandler() queries.GetStaffQueryHandler {
	return queries.NewGetStaffQueryHandler(c.staffRoster)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.orderRepo, c.tableRegistry)
}
