package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity represents an amount of stock in an item's unit of measure.
// Fractional amounts are allowed (grams, milliliters).
type Quantity float64

// Money represents a currency amount in reais.
type Money float64

// String renders the quantity with two decimal places for display.
func (q Quantity) String() string {
	return decimal.NewFromFloat(float64(q)).StringFixed(2)
}

// String renders the amount with two decimal places for display.
func (m Money) String() string {
	return decimal.NewFromFloat(float64(m)).StringFixed(2)
}

// NormalizeName maps a display name to its identity key. Identity is
// case-insensitive and ignores surrounding whitespace, so normalization
// happens once where a name enters the system and again at every lookup.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Item is a tracked stock entry: an ingredient or material with its
// on-hand quantity, display unit and current unit cost.
type Item struct {
	Name     string
	Quantity Quantity
	Unit     string
	UnitCost Money
}

// NewItem creates a validated Item.
func NewItem(name string, quantity Quantity, unit string, unitCost Money) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: item name cannot be empty", ErrInvalidArgument)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: item quantity cannot be negative, got %v", ErrInvalidArgument, quantity)
	}
	if unitCost < 0 {
		return nil, fmt.Errorf("%w: unit cost cannot be negative, got %v", ErrInvalidArgument, unitCost)
	}

	return &Item{
		Name:     strings.TrimSpace(name),
		Quantity: quantity,
		Unit:     unit,
		UnitCost: unitCost,
	}, nil
}

// Consume deducts amount from the on-hand quantity. A deduction that
// would drive the quantity negative fails without mutating the item.
func (i *Item) Consume(amount Quantity) error {
	if amount > i.Quantity {
		return fmt.Errorf("%w: %s", ErrInsufficientStock, i.Name)
	}
	i.Quantity -= amount
	return nil
}
