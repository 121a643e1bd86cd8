package memory

import (
	"fmt"
	"strings"

	"github.com/kauaigouveia/lanchonete/pkg/domain/entities"
	"github.com/kauaigouveia/lanchonete/pkg/domain/repositories"
)

// RecipeRepository provides in-memory recipe storage keyed by
// normalized recipe name.
type RecipeRepository struct {
	recipes map[string]*entities.Recipe
}

// NewRecipeRepository creates a new in-memory recipe repository.
func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{
		recipes: make(map[string]*entities.Recipe),
	}
}

// Verify interface compliance
var _ repositories.RecipeRepository = (*RecipeRepository)(nil)

// Add stores the recipe, replacing any previous recipe under the same
// normalized name wholesale. Referenced ingredients are deliberately
// not checked against stock: a recipe may be defined before its
// ingredients are stocked.
func (r *RecipeRepository) Add(recipe *entities.Recipe) {
	r.recipes[entities.NormalizeName(recipe.Name)] = recipe
}

// Get returns the recipe registered under the normalized name.
func (r *RecipeRepository) Get(name string) (*entities.Recipe, error) {
	recipe, ok := r.recipes[entities.NormalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrRecipeNotFound, strings.TrimSpace(name))
	}
	return recipe, nil
}

// All returns every registered recipe.
func (r *RecipeRepository) All() []*entities.Recipe {
	recipes := make([]*entities.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		recipes = append(recipes, recipe)
	}
	return recipes
}
