package http

import (
	"time"

	"jikoni/internal/core/application/usecases/queries"
	"jikoni/internal/core/domain/model/order"
)

const timeFormat = time.RFC3339

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MenuItem is the menu item resource. PriceCents is the canonical amount;
// Price is its display form.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Available   bool   `json:"available"`
	PrepMinutes int    `json:"prepMinutes"`
}

// NewMenuItem is the request body for creating a menu item.
type NewMenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Category    string `json:"category"`
	PrepMinutes int    `json:"prepMinutes"`
}

// MenuItemAvailability is the request body for flipping availability.
type MenuItemAvailability struct {
	Available bool `json:"available"`
}

// Table is the dining table resource.
type Table struct {
	ID             string  `json:"id"`
	Number         int     `json:"number"`
	Capacity       int     `json:"capacity"`
	Status         string  `json:"status"`
	CurrentOrderID *string `json:"currentOrderId,omitempty"`
}

// TableStatusChange is the request body for changing a table's floor state.
type TableStatusChange struct {
	Status         string  `json:"status"`
	CurrentOrderID *string `json:"currentOrderId,omitempty"`
}

// CartLine is one line of a cart.
type CartLine struct {
	MenuItemID     string `json:"menuItemId"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Note           string `json:"note,omitempty"`
	SubtotalCents  int64  `json:"subtotalCents"`
}

// Cart is the cart resource.
type Cart struct {
	ID         string     `json:"id"`
	Lines      []CartLine `json:"lines"`
	TotalCents int64      `json:"totalCents"`
	Total      string     `json:"total"`
	ItemCount  int        `json:"itemCount"`
}

// NewCartLine is the request body for adding an item to a cart.
type NewCartLine struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note,omitempty"`
}

// CartLineQuantityChange is the request body for changing a line's quantity.
// Zero or below removes the line.
type CartLineQuantityChange struct {
	Quantity int `json:"quantity"`
}

// Checkout is the request body for converting a cart into an order.
type Checkout struct {
	TableID      string `json:"tableId"`
	CustomerName string `json:"customerName,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// OrderLine is one line of a placed order.
type OrderLine struct {
	MenuItemID     string `json:"menuItemId"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Note           string `json:"note,omitempty"`
	SubtotalCents  int64  `json:"subtotalCents"`
}

// Order is the placed order resource.
type Order struct {
	ID           string      `json:"id"`
	TableID      string      `json:"tableId"`
	Lines        []OrderLine `json:"lines"`
	Status       string      `json:"status"`
	TotalCents   int64       `json:"totalCents"`
	Total        string      `json:"total"`
	ItemCount    int         `json:"itemCount"`
	CustomerName string      `json:"customerName,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt"`
}

// OrderStatusChange is the request body for the manual status override.
type OrderStatusChange struct {
	Status string `json:"status"`
}

// StaffMember is the staff roster resource.
type StaffMember struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Active bool   `json:"active"`
}

// DashboardStats is the manager dashboard resource.
type DashboardStats struct {
	TotalOrders       int    `json:"totalOrders"`
	ActiveOrders      int    `json:"activeOrders"`
	TotalRevenueCents int64  `json:"totalRevenueCents"`
	TotalRevenue      string `json:"totalRevenue"`
	AvailableTables   int    `json:"availableTables"`
	OccupiedTables    int    `json:"occupiedTables"`
}

func toCartDTO(resp queries.GetCartQueryResponse) Cart {
	lines := make([]CartLine, len(resp.Lines))
	for i, line := range resp.Lines {
		lines[i] = CartLine{
			MenuItemID:     line.MenuItemID.String(),
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPrice.Cents(),
			Note:           line.Note,
			SubtotalCents:  line.Subtotal.Cents(),
		}
	}
	return Cart{
		ID:         resp.ID.String(),
		Lines:      lines,
		TotalCents: resp.Total.Cents(),
		Total:      resp.Total.String(),
		ItemCount:  resp.ItemCount,
	}
}

func toOrderDTO(resp queries.GetOrdersQueryResponse) Order {
	lines := make([]OrderLine, len(resp.Lines))
	for i, line := range resp.Lines {
		lines[i] = OrderLine{
			MenuItemID:     line.MenuItemID.String(),
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPrice.Cents(),
			Note:           line.Note,
			SubtotalCents:  line.Subtotal.Cents(),
		}
	}
	return Order{
		ID:           resp.ID.String(),
		TableID:      resp.TableID.String(),
		Lines:        lines,
		Status:       resp.Status.String(),
		TotalCents:   resp.Total.Cents(),
		Total:        resp.Total.String(),
		ItemCount:    resp.ItemCount,
		CustomerName: resp.CustomerName,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.UTC().Format(timeFormat),
		UpdatedAt:    resp.UpdatedAt.UTC().Format(timeFormat),
	}
}

func placedOrderToDTO(o *order.Order) Order {
	lines := make([]OrderLine, len(o.Lines()))
	for i, line := range o.Lines() {
		lines[i] = OrderLine{
			MenuItemID:     line.MenuItemID().String(),
			Quantity:       line.Quantity(),
			UnitPriceCents: line.UnitPrice().Cents(),
			Note:           line.Note(),
			SubtotalCents:  line.Subtotal().Cents(),
		}
	}
	return Order{
		ID:           o.ID().String(),
		TableID:      o.TableID().String(),
		Lines:        lines,
		Status:       o.Status().String(),
		TotalCents:   o.Total().Cents(),
		Total:        o.Total().String(),
		ItemCount:    o.ItemCount(),
		CustomerName: o.CustomerName(),
		Notes:        o.Notes(),
		CreatedAt:    o.CreatedAt().UTC().Format(timeFormat),
		UpdatedAt:    o.UpdatedAt().UTC().Format(timeFormat),
	}
}

func toMenuItemDTO(resp queries.GetMenuQueryResponse) MenuItem {
	return MenuItem{
		ID:          resp.ID.String(),
		Name:        resp.Name,
		Description: resp.Description,
		PriceCents:  resp.Price.Cents(),
		Price:       resp.Price.String(),
		Category:    resp.Category,
		Available:   resp.Available,
		PrepMinutes: resp.PrepMinutes,
	}
}

func toTableDTO(resp queries.GetTablesQueryResponse) Table {
	dto := Table{
		ID:       resp.ID.String(),
		Number:   resp.Number,
		Capacity: resp.Capacity,
		Status:   resp.Status.String(),
	}
	if resp.CurrentOrderID != nil {
		id := resp.CurrentOrderID.String()
		dto.CurrentOrderID = &id
	}
	return dto
}

func toStaffMemberDTO(resp queries.GetStaffQueryResponse) StaffMember {
	return StaffMember{
		ID:     resp.ID.String(),
		Name:   resp.Name,
		Role:   resp.Role.String(),
		Email:  resp.Email,
		Phone:  resp.Phone,
		Active: resp.Active,
	}
}
