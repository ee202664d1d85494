package http

import (
	"net/http"

	"jikoni/internal/core/application/usecases/commands"
	"jikoni/internal/core/application/usecases/queries"
	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/order"
	"jikoni/internal/core/domain/model/table"
	"jikoni/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the application core over HTTP. It translates JSON requests
// into commands and queries and maps their errors onto status codes; no
// business rules live here.
type Server struct {
	startCartHandler        commands.StartCartCommandHandler
	addCartItemHandler      commands.AddCartItemCommandHandler
	updateCartItemHandler   commands.UpdateCartItemCommandHandler
	removeCartItemHandler   commands.RemoveCartItemCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	advanceOrderHandler     commands.AdvanceOrderCommandHandler
	setOrderStatusHandler   commands.SetOrderStatusCommandHandler
	setTableStatusHandler   commands.SetTableStatusCommandHandler
	createMenuItemHandler   commands.CreateMenuItemCommandHandler
	updateMenuItemHandler   commands.UpdateMenuItemCommandHandler
	setItemAvailableHandler commands.SetMenuItemAvailabilityCommandHandler

	getCartHandler           queries.GetCartQueryHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
	getMenuHandler           queries.GetMenuQueryHandler
	getTablesHandler         queries.GetTablesQueryHandler
	getStaffHandler          queries.GetStaffQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler
}

// Handlers bundles everything a Server needs.
type Handlers struct {
	StartCart        commands.StartCartCommandHandler
	AddCartItem      commands.AddCartItemCommandHandler
	UpdateCartItem   commands.UpdateCartItemCommandHandler
	RemoveCartItem   commands.RemoveCartItemCommandHandler
	PlaceOrder       commands.PlaceOrderCommandHandler
	AdvanceOrder     commands.AdvanceOrderCommandHandler
	SetOrderStatus   commands.SetOrderStatusCommandHandler
	SetTableStatus   commands.SetTableStatusCommandHandler
	CreateMenuItem   commands.CreateMenuItemCommandHandler
	UpdateMenuItem   commands.UpdateMenuItemCommandHandler
	SetItemAvailable commands.SetMenuItemAvailabilityCommandHandler

	GetCart           queries.GetCartQueryHandler
	GetOrders         queries.GetOrdersQueryHandler
	GetMenu           queries.GetMenuQueryHandler
	GetTables         queries.GetTablesQueryHandler
	GetStaff          queries.GetStaffQueryHandler
	GetDashboardStats queries.GetDashboardStatsQueryHandler
}

// NewServer creates an HTTP server from the command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		startCartHandler:         h.StartCart,
		addCartItemHandler:       h.AddCartItem,
		updateCartItemHandler:    h.UpdateCartItem,
		removeCartItemHandler:    h.RemoveCartItem,
		placeOrderHandler:        h.PlaceOrder,
		advanceOrderHandler:      h.AdvanceOrder,
		setOrderStatusHandler:    h.SetOrderStatus,
		setTableStatusHandler:    h.SetTableStatus,
		createMenuItemHandler:    h.CreateMenuItem,
		updateMenuItemHandler:    h.UpdateMenuItem,
		setItemAvailableHandler:  h.SetItemAvailable,
		getCartHandler:           h.GetCart,
		getOrdersHandler:         h.GetOrders,
		getMenuHandler:           h.GetMenu,
		getTablesHandler:         h.GetTables,
		getStaffHandler:          h.GetStaff,
		getDashboardStatsHandler: h.GetDashboardStats,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.GET("/menu", s.GetMenu)
	v1.POST("/menu", s.CreateMenuItem)
	v1.PUT("/menu/:itemID", s.UpdateMenuItem)
	v1.PATCH("/menu/:itemID/availability", s.SetMenuItemAvailability)

	v1.GET("/tables", s.GetTables)
	v1.PATCH("/tables/:tableID/status", s.SetTableStatus)

	v1.POST("/carts", s.StartCart)
	v1.GET("/carts/:cartID", s.GetCart)
	v1.POST("/carts/:cartID/items", s.AddCartItem)
	v1.PATCH("/carts/:cartID/items/:lineIndex", s.UpdateCartItem)
	v1.DELETE("/carts/:cartID/items/:lineIndex", s.RemoveCartItem)
	v1.POST("/carts/:cartID/checkout", s.Checkout)

	v1.GET("/orders", s.GetOrders)
	v1.POST("/orders/:orderID/advance", s.AdvanceOrder)
	v1.PATCH("/orders/:orderID/status", s.SetOrderStatus)

	v1.GET("/staff", s.GetStaff)
	v1.GET("/dashboard/stats", s.GetDashboardStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /api/v1/menu. Supports ?category= and ?available=true.
func (s *Server) GetMenu(ctx echo.Context) error {
	availableOnly := ctx.QueryParam("available") == "true"
	query := queries.NewGetMenuQuery(ctx.QueryParam("category"), availableOnly)

	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = toMenuItemDTO(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/menu.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoney(body.PriceCents)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateMenuItemCommand(body.Name, body.Description, price, body.Category, body.PrepMinutes)
	if err != nil {
		return writeError(ctx, err)
	}

	item, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toMenuItemDTO(queries.GetMenuQueryResponse{
		ID:          item.ID(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price(),
		Category:    item.Category(),
		Available:   item.IsAvailable(),
		PrepMinutes: item.PrepMinutes(),
	}))
}

// UpdateMenuItem handles PUT /api/v1/menu/:itemID.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := parseUUID("itemID", ctx.Param("itemID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoney(body.PriceCents)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(itemID, body.Name, body.Description, price, body.Category, body.PrepMinutes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetMenuItemAvailability handles PATCH /api/v1/menu/:itemID/availability.
func (s *Server) SetMenuItemAvailability(ctx echo.Context) error {
	itemID, err := parseUUID("itemID", ctx.Param("itemID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body MenuItemAvailability
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetMenuItemAvailabilityCommand(itemID, body.Available)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setItemAvailableHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetTables handles GET /api/v1/tables. Supports ?available=true.
func (s *Server) GetTables(ctx echo.Context) error {
	query := queries.NewGetTablesQuery(ctx.QueryParam("available") == "true")

	tables, err := s.getTablesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Table, len(tables))
	for i, tbl := range tables {
		response[i] = toTableDTO(tbl)
	}
	return ctx.JSON(http.StatusOK, response)
}

// SetTableStatus handles PATCH /api/v1/tables/:tableID/status.
func (s *Server) SetTableStatus(ctx echo.Context) error {
	tableID, err := parseUUID("tableID", ctx.Param("tableID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body TableStatusChange
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	status, err := table.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	var orderID *kernel.UUID
	if body.CurrentOrderID != nil {
		id, idErr := parseUUID("currentOrderId", *body.CurrentOrderID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		orderID = &id
	}

	cmd, err := commands.NewSetTableStatusCommand(tableID, status, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setTableStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// StartCart handles POST /api/v1/carts.
func (s *Server) StartCart(ctx echo.Context) error {
	c, err := s.startCartHandler.Handle(ctx.Request().Context(), commands.NewStartCartCommand())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Cart{
		ID:        c.ID().String(),
		Lines:     []CartLine{},
		Total:     c.Total().String(),
		ItemCount: 0,
	})
}

// GetCart handles GET /api/v1/carts/:cartID.
func (s *Server) GetCart(ctx echo.Context) error {
	cartID, err := parseUUID("cartID", ctx.Param("cartID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCartQuery(cartID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCartDTO(resp))
}

// AddCartItem handles POST /api/v1/carts/:cartID/items. Responds with the
// updated cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	cartID, err := parseUUID("cartID", ctx.Param("cartID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewCartLine
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	menuItemID, err := parseUUID("menuItemId", body.MenuItemID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddCartItemCommand(cartID, menuItemID, body.Quantity, body.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return s.respondWithCart(ctx, cartID)
}

// UpdateCartItem handles PATCH /api/v1/carts/:cartID/items/:lineIndex.
// A quantity of zero or below removes the line.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	cartID, lineIndex, err := cartLineParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body CartLineQuantityChange
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCartItemCommand(cartID, lineIndex, body.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return s.respondWithCart(ctx, cartID)
}

// RemoveCartItem handles DELETE /api/v1/carts/:cartID/items/:lineIndex.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	cartID, lineIndex, err := cartLineParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(cartID, lineIndex)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return s.respondWithCart(ctx, cartID)
}

// Checkout handles POST /api/v1/carts/:cartID/checkout, converting the cart
// into a placed order.
func (s *Server) Checkout(ctx echo.Context) error {
	cartID, err := parseUUID("cartID", ctx.Param("cartID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body Checkout
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	tableID, err := parseUUID("tableId", body.TableID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(cartID, tableID, body.CustomerName, body.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, placedOrderToDTO(placed))
}

// GetOrders handles GET /api/v1/orders. Supports ?status=.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		query, err = queries.NewGetOrdersByStatusQuery(status)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderDTO(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AdvanceOrder handles POST /api/v1/orders/:orderID/advance, moving the
// order one step along the status chain.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetOrderStatus handles PATCH /api/v1/orders/:orderID/status, the manual
// any-to-any override.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body OrderStatusChange
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetStaff handles GET /api/v1/staff. Supports ?active=true.
func (s *Server) GetStaff(ctx echo.Context) error {
	query := queries.NewGetStaffQuery(ctx.QueryParam("active") == "true")

	members, err := s.getStaffHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]StaffMember, len(members))
	for i, member := range members {
		response[i] = toStaffMemberDTO(member)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetDashboardStats handles GET /api/v1/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	resp, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardStats{
		TotalOrders:       resp.TotalOrders,
		ActiveOrders:      resp.ActiveOrders,
		TotalRevenueCents: resp.TotalRevenue.Cents(),
		TotalRevenue:      resp.TotalRevenue.String(),
		AvailableTables:   resp.AvailableTables,
		OccupiedTables:    resp.OccupiedTables,
	})
}

func (s *Server) respondWithCart(ctx echo.Context, cartID kernel.UUID) error {
	query, err := queries.NewGetCartQuery(cartID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCartDTO(resp))
}

func cartLineParams(ctx echo.Context) (kernel.UUID, int, error) {
	cartID, err := parseUUID("cartID", ctx.Param("cartID"))
	if err != nil {
		return kernel.UUID{}, 0, err
	}

	var lineIndex int
	if err := echo.PathParamsBinder(ctx).Int("lineIndex", &lineIndex).BindError(); err != nil {
		return kernel.UUID{}, 0, errs.NewValueIsInvalidErrorWithCause("lineIndex", err)
	}
	return cartID, lineIndex, nil
}
