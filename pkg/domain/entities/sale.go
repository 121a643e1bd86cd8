package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sale is an immutable record of one production/sale event. The
// ingredient cost is frozen at the unit costs in effect when the stock
// was consumed and is never recomputed against later cost updates.
type Sale struct {
	ID             uuid.UUID
	Recipe         *Recipe
	Quantity       int
	UnitPrice      Money
	IngredientCost Money
	Customer       *Customer // nil when the sale has no customer
	RecordedAt     time.Time
}

// NewSale creates a validated Sale. Customer may be nil.
func NewSale(recipe *Recipe, quantity int, unitPrice Money, ingredientCost Money, customer *Customer) (*Sale, error) {
	if recipe == nil {
		return nil, fmt.Errorf("%w: sale recipe cannot be nil", ErrInvalidArgument)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: sale quantity must be positive, got %d", ErrInvalidArgument, quantity)
	}
	if unitPrice < 0 {
		return nil, fmt.Errorf("%w: sale price cannot be negative, got %v", ErrInvalidArgument, unitPrice)
	}
	if ingredientCost < 0 {
		return nil, fmt.Errorf("%w: ingredient cost cannot be negative, got %v", ErrInvalidArgument, ingredientCost)
	}

	return &Sale{
		ID:             uuid.New(),
		Recipe:         recipe,
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		IngredientCost: ingredientCost,
		Customer:       customer,
		RecordedAt:     time.Now(),
	}, nil
}

// TotalRevenue is the gross revenue of the sale: unit price times
// quantity sold.
func (s *Sale) TotalRevenue() Money {
	return s.UnitPrice * Money(s.Quantity)
}
