package entities

import (
	"errors"
	"testing"
)

func testRecipe(t *testing.T) *Recipe {
	t.Helper()
	recipe, err := NewRecipe("Sanduíche de Frango", map[string]Quantity{"frango": 80})
	if err != nil {
		t.Fatalf("Failed to create recipe: %v", err)
	}
	return recipe
}

func TestNewSale(t *testing.T) {
	recipe := testRecipe(t)
	customer, err := NewCustomer("Maria", "9999-0000")
	if err != nil {
		t.Fatalf("Failed to create customer: %v", err)
	}

	sale, err := NewSale(recipe, 6, 15.0, 141.0, customer)
	if err != nil {
		t.Fatalf("Expected valid sale creation to succeed: %v", err)
	}

	if sale.TotalRevenue() != 90.0 {
		t.Errorf("Expected total revenue 90.00, got %v", sale.TotalRevenue())
	}
	if sale.IngredientCost != 141.0 {
		t.Errorf("Expected frozen ingredient cost 141.00, got %v", sale.IngredientCost)
	}
	if sale.Customer != customer {
		t.Errorf("Expected sale to reference the customer")
	}
	if sale.RecordedAt.IsZero() {
		t.Errorf("Expected RecordedAt to be set")
	}
}

func TestNewSale_NoCustomer(t *testing.T) {
	sale, err := NewSale(testRecipe(t), 1, 15.0, 23.5, nil)
	if err != nil {
		t.Fatalf("Expected sale without customer to be valid: %v", err)
	}
	if sale.Customer != nil {
		t.Errorf("Expected nil customer, got %+v", sale.Customer)
	}
}

func TestNewSale_Validation(t *testing.T) {
	recipe := testRecipe(t)

	testCases := []struct {
		name           string
		recipe         *Recipe
		quantity       int
		unitPrice      Money
		ingredientCost Money
	}{
		{"nil recipe", nil, 1, 10, 5},
		{"zero quantity", recipe, 0, 10, 5},
		{"negative quantity", recipe, -3, 10, 5},
		{"negative price", recipe, 1, -10, 5},
		{"negative cost", recipe, 1, 10, -5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSale(tc.recipe, tc.quantity, tc.unitPrice, tc.ingredientCost, nil)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestNewCustomer_Validation(t *testing.T) {
	if _, err := NewCustomer("  ", ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for blank customer name, got %v", err)
	}

	customer, err := NewCustomer(" João ", " 1234-5678 ")
	if err != nil {
		t.Fatalf("Expected valid customer creation to succeed: %v", err)
	}
	if customer.Name != "João" || customer.Contact != "1234-5678" {
		t.Errorf("Expected trimmed fields, got %+v", customer)
	}
}
