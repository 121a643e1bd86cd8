package entities

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewRecipe_NormalizesIngredients(t *testing.T) {
	recipe, err := NewRecipe("  Sanduíche de Frango  ", map[string]Quantity{
		"  Frango ": 80,
		"PRESUNTO":  1,
		"queijo":    1,
	})
	if err != nil {
		t.Fatalf("Expected valid recipe creation to succeed: %v", err)
	}

	if recipe.Name != "Sanduíche de Frango" {
		t.Errorf("Expected trimmed display name, got '%s'", recipe.Name)
	}
	for _, key := range []string{"frango", "presunto", "queijo"} {
		if _, ok := recipe.Ingredients[key]; !ok {
			t.Errorf("Expected normalized ingredient key '%s'", key)
		}
	}
	if recipe.Ingredients["frango"] != 80 {
		t.Errorf("Expected frango amount 80, got %v", recipe.Ingredients["frango"])
	}
}

func TestNewRecipe_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		recipeName  string
		ingredients map[string]Quantity
	}{
		{"empty name", "", map[string]Quantity{"ovo": 1}},
		{"no ingredients", "Misto", nil},
		{"empty ingredient map", "Misto", map[string]Quantity{}},
		{"blank ingredient name", "Misto", map[string]Quantity{"  ": 1}},
		{"zero amount", "Misto", map[string]Quantity{"ovo": 0}},
		{"negative amount", "Misto", map[string]Quantity{"ovo": -2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRecipe(tc.recipeName, tc.ingredients)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestRecipe_IngredientNames_Sorted(t *testing.T) {
	recipe, err := NewRecipe("Sanduíche", map[string]Quantity{
		"Tomate": 1,
		"Alface": 1,
		"Queijo": 1,
	})
	if err != nil {
		t.Fatalf("Failed to create recipe: %v", err)
	}

	expected := []string{"alface", "queijo", "tomate"}
	if got := recipe.IngredientNames(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}
