package repositories

import "github.com/kauaigouveia/lanchonete/pkg/domain/entities"

// RecipeRepository provides access to the recipe catalog, keyed by
// normalized recipe name.
type RecipeRepository interface {
	// Add stores the recipe, replacing any recipe registered under the
	// same normalized name wholesale.
	Add(recipe *entities.Recipe)

	// Get returns the recipe registered under the normalized name, or
	// ErrRecipeNotFound.
	Get(name string) (*entities.Recipe, error)

	// All returns every registered recipe in unspecified order.
	All() []*entities.Recipe
}
