package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/kauaigouveia/lanchonete/pkg/domain/entities"
	"github.com/kauaigouveia/lanchonete/pkg/domain/repositories"
)

// maxCapacity caps the capacity reported for a recipe whose ingredient
// map is empty, which no binding constraint would otherwise limit.
const maxCapacity = math.MaxInt32

// StockService implements the stock ledger logic: registering items,
// recipe sufficiency checks, capacity computation and atomic
// consumption with cost accounting.
type StockService struct {
	stock repositories.StockRepository
}

// NewStockService creates a stock service over the given repository.
func NewStockService(stock repositories.StockRepository) *StockService {
	return &StockService{stock: stock}
}

// Upsert registers quantityDelta of an item at the given unit cost,
// creating the item on first use. Quantity is additive across upserts;
// the unit cost is overwritten with the latest value, not averaged.
func (s *StockService) Upsert(name string, quantityDelta entities.Quantity, unit string, unitCost entities.Money) error {
	_, err := s.stock.Upsert(name, quantityDelta, unit, unitCost)
	return err
}

// WriteOff removes amount of an item from stock without any sale,
// for waste, spoilage or loss. It fails for unknown items and for
// amounts exceeding the on-hand quantity.
func (s *StockService) WriteOff(name string, amount entities.Quantity) error {
	if amount <= 0 {
		return fmt.Errorf("%w: write-off amount must be positive, got %v", entities.ErrInvalidArgument, amount)
	}
	item := s.stock.Get(name)
	if item == nil {
		return fmt.Errorf("%w: %s", entities.ErrItemNotFound, strings.TrimSpace(name))
	}
	return item.Consume(amount)
}

// CanProduce reports whether current stock covers count units of the
// recipe. Zero count trivially holds.
func (s *StockService) CanProduce(recipe *entities.Recipe, count int) bool {
	if count < 0 {
		return false
	}
	_, short := s.shortfall(recipe, count)
	return !short
}

// MaxProducible returns the largest number of recipe units current
// stock can cover: the minimum over all ingredients of
// floor(onHand / perUnitAmount). An ingredient that is absent or has
// nothing on hand pins the result to zero.
func (s *StockService) MaxProducible(recipe *entities.Recipe) int {
	max := maxCapacity
	for ingredient, perUnit := range recipe.Ingredients {
		item := s.stock.Get(ingredient)
		if item == nil || item.Quantity <= 0 {
			return 0
		}
		if n := int(item.Quantity / perUnit); n < max {
			max = n
		}
	}
	return max
}

// ConsumeForRecipe deducts the ingredients for count units of the
// recipe and returns the total cost incurred at the unit costs in
// effect right now. The operation is all-or-nothing: sufficiency is
// re-validated up front and a failed call leaves every item unchanged.
func (s *StockService) ConsumeForRecipe(recipe *entities.Recipe, count int) (entities.Money, error) {
	if count < 0 {
		return 0, fmt.Errorf("%w: consume count cannot be negative, got %d", entities.ErrInvalidArgument, count)
	}
	if short, ok := s.shortfall(recipe, count); ok {
		return 0, fmt.Errorf("%w: %s", entities.ErrInsufficientStock, short)
	}

	var total entities.Money
	for ingredient, perUnit := range recipe.Ingredients {
		needed := perUnit * entities.Quantity(count)
		item := s.stock.Get(ingredient)
		if err := item.Consume(needed); err != nil {
			return 0, err
		}
		total += entities.Money(needed) * item.UnitCost
	}
	return total, nil
}

// Summary renders the current stock as human-readable text, sorted
// ascending by display name with two-decimal quantities and costs.
func (s *StockService) Summary() string {
	items := s.stock.All()
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})

	var b strings.Builder
	b.WriteString("Estoque atual:")
	for _, item := range items {
		fmt.Fprintf(&b, "\n- %s: %v %s (custo unitário: R$ %v)", item.Name, item.Quantity, item.Unit, item.UnitCost)
	}
	return b.String()
}

// shortfall returns the first ingredient, in ascending name order,
// whose stock does not cover count units of the recipe.
func (s *StockService) shortfall(recipe *entities.Recipe, count int) (string, bool) {
	for _, ingredient := range recipe.IngredientNames() {
		needed := recipe.Ingredients[ingredient] * entities.Quantity(count)
		item := s.stock.Get(ingredient)
		if item == nil || item.Quantity < needed {
			return ingredient, true
		}
	}
	return "", false
}
