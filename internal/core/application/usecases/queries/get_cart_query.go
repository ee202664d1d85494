package queries

import (
	"errors"

	"jikoni/internal/core/domain/model/kernel"
	"jikoni/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves the current contents of one ordering session's cart.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a cart's contents.
func NewGetCartQuery(cartID kernel.UUID) (GetCartQuery, error) {
	q := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCartID(cartID); err != nil {
		return GetCartQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CartID returns the cart's session identifier.
func (q GetCartQuery) CartID() kernel.UUID {
	return q.cartID
}

func (q *GetCartQuery) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}
	q.cartID = cartID
	return nil
}

// CartLineResponse is one cart line in the read model. Subtotal is
// UnitPrice times Quantity; the unit price is the one captured when the
// line was added, not the menu's current price.
type CartLineResponse struct {
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  kernel.Money
	Note       string
	Subtotal   kernel.Money
}

// GetCartQueryResponse is the cart read model.
type GetCartQueryResponse struct {
	ID        kernel.UUID
	Lines     []CartLineResponse
	Total     kernel.Money
	ItemCount int
}
