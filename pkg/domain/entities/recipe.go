package entities

import (
	"fmt"
	"sort"
	"strings"
)

// Recipe is a named formula mapping ingredient identities to the
// quantity required per single unit produced. Ingredient keys are
// normalized on construction; a recipe never holds live Item
// references, ingredients are resolved against stock at use time.
type Recipe struct {
	Name        string
	Ingredients map[string]Quantity
}

// NewRecipe creates a validated Recipe. Ingredient names are normalized
// to their identity keys; amounts must be positive.
func NewRecipe(name string, ingredients map[string]Quantity) (*Recipe, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: recipe name cannot be empty", ErrInvalidArgument)
	}
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: recipe must have at least one ingredient", ErrInvalidArgument)
	}

	normalized := make(map[string]Quantity, len(ingredients))
	for ingredient, amount := range ingredients {
		key := NormalizeName(ingredient)
		if key == "" {
			return nil, fmt.Errorf("%w: ingredient name cannot be empty", ErrInvalidArgument)
		}
		if amount <= 0 {
			return nil, fmt.Errorf("%w: ingredient amount must be positive, got %v for %s", ErrInvalidArgument, amount, ingredient)
		}
		normalized[key] = amount
	}

	return &Recipe{
		Name:        strings.TrimSpace(name),
		Ingredients: normalized,
	}, nil
}

// IngredientNames returns the normalized ingredient keys in a stable
// ascending order, for deterministic iteration and reporting.
func (r *Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for name := range r.Ingredients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
