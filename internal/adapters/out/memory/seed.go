package memory

import (
	"context"
	"fmt"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/core/domain/model/menu"
	"jikoni/internal/core/domain/model/staff"
	"jikoni/internal/core/domain/model/table"
	"jikoni/internal/core/ports"
)

type seedItem struct {
	name        string
	description string
	priceUnits  int64
	category    string
	prepMinutes int
}

type seedMember struct {
	name  string
	role  staff.Role
	email string
	phone string
}

var seedMenu = []seedItem{
	{"Ugali", "Maize meal staple, served hot", 150, "Main Course", 15},
	{"Nyama Choma", "Grilled beef with kachumbari", 800, "Main Course", 30},
	{"Sukuma Wiki", "Sauteed collard greens", 200, "Side Dish", 10},
	{"Chapati", "Soft layered flatbread", 50, "Side Dish", 20},
	{"Mandazi", "Sweet fried dough", 30, "Dessert", 15},
	{"Chai", "Kenyan milk tea with spices", 80, "Beverage", 5},
	{"Pilau", "Spiced rice with beef", 400, "Main Course", 25},
	{"Githeri", "Maize and beans stew", 250, "Main Course", 20},
}

var seedStaff = []seedMember{
	{"Alice Johnson", staff.Manager, "alice@jikoni.example", "+254700000001"},
	{"Bob Wilson", staff.Chef, "bob@jikoni.example", "+254700000002"},
	{"Carol Davis", staff.Waiter, "carol@jikoni.example", "+254700000003"},
}

var seedTableCapacities = []int{2, 4, 4, 6, 2, 8}

// Seed loads the demo restaurant: the menu, the floor plan and the staff
// roster. Intended for fresh stores at startup; seeding twice duplicates
// the data.
func Seed(
	ctx context.Context,
	menuRepo ports.MenuRepository,
	tableRegistry ports.TableRegistry,
	staffRoster ports.StaffRoster,
) error {
	for _, s := range seedMenu {
		price, err := kernel.MoneyFromUnits(s.priceUnits)
		if err != nil {
			return fmt.Errorf("seed menu %q: %w", s.name, err)
		}
		item, err := menu.NewItem(kernel.NewUUID(), s.name, s.description, price, s.category, s.prepMinutes)
		if err != nil {
			return fmt.Errorf("seed menu %q: %w", s.name, err)
		}
		if err := menuRepo.Add(ctx, item); err != nil {
			return fmt.Errorf("seed menu %q: %w", s.name, err)
		}
	}

	for i, capacity := range seedTableCapacities {
		tbl, err := table.NewTable(kernel.NewUUID(), i+1, capacity)
		if err != nil {
			return fmt.Errorf("seed table %d: %w", i+1, err)
		}
		if err := tableRegistry.Add(ctx, tbl); err != nil {
			return fmt.Errorf("seed table %d: %w", i+1, err)
		}
	}

	for _, s := range seedStaff {
		member, err := staff.NewMember(kernel.NewUUID(), s.name, s.role, s.email, s.phone)
		if err != nil {
			return fmt.Errorf("seed staff %q: %w", s.name, err)
		}
		if err := staffRoster.Add(ctx, member); err != nil {
			return fmt.Errorf("seed staff %q: %w", s.name, err)
		}
	}

	return nil
}
