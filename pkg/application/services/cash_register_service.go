package services

import (
	"fmt"
	"strings"

	"github.com/kauaigouveia/lanchonete/pkg/application/dto"
	"github.com/kauaigouveia/lanchonete/pkg/domain/entities"
	"github.com/kauaigouveia/lanchonete/pkg/domain/repositories"
)

// CashRegisterService implements the sales ledger: it records sales by
// consuming stock through the stock service, freezing the incurred
// ingredient cost on each sale, and aggregates the day's figures on
// demand.
type CashRegisterService struct {
	stock     *StockService
	sales     repositories.SaleRepository
	recipes   repositories.RecipeRepository
	customers repositories.CustomerRepository
	expenses  entities.Money
}

// NewCashRegisterService creates a cash register over the given stock
// service and repositories.
func NewCashRegisterService(
	stock *StockService,
	sales repositories.SaleRepository,
	recipes repositories.RecipeRepository,
	customers repositories.CustomerRepository,
) *CashRegisterService {
	return &CashRegisterService{
		stock:     stock,
		sales:     sales,
		recipes:   recipes,
		customers: customers,
	}
}

// RecordSale resolves the recipe and optional customer by name,
// consumes the ingredients for quantity units and appends an immutable
// sale record with the cost incurred at consumption time. No sale is
// recorded when the recipe is unknown or stock is insufficient; an
// unregistered customer name records the sale with no customer.
func (c *CashRegisterService) RecordSale(recipeName string, quantity int, unitPrice entities.Money, customerName string) (*entities.Sale, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: sale quantity must be positive, got %d", entities.ErrInvalidArgument, quantity)
	}
	if unitPrice < 0 {
		return nil, fmt.Errorf("%w: sale price cannot be negative, got %v", entities.ErrInvalidArgument, unitPrice)
	}

	recipe, err := c.recipes.Get(recipeName)
	if err != nil {
		return nil, err
	}

	var customer *entities.Customer
	if strings.TrimSpace(customerName) != "" {
		customer = c.customers.Get(customerName)
	}

	ingredientCost, err := c.stock.ConsumeForRecipe(recipe, quantity)
	if err != nil {
		return nil, err
	}

	sale, err := entities.NewSale(recipe, quantity, unitPrice, ingredientCost, customer)
	if err != nil {
		return nil, err
	}
	c.sales.Append(sale)
	return sale, nil
}

// MaxProducible resolves the recipe by name and returns how many units
// current stock can cover.
func (c *CashRegisterService) MaxProducible(recipeName string) (int, error) {
	recipe, err := c.recipes.Get(recipeName)
	if err != nil {
		return 0, err
	}
	return c.stock.MaxProducible(recipe), nil
}

// Sales returns the recorded sales in chronological order.
func (c *CashRegisterService) Sales() []*entities.Sale {
	return c.sales.All()
}

// CloseDay adds extraExpenses to the cumulative expense accumulator
// and returns the as-of summary. The ledger is never cleared: every
// call re-aggregates the entire historical sales list, and repeated
// calls keep adding expenses rather than replacing them.
func (c *CashRegisterService) CloseDay(extraExpenses entities.Money) dto.DaySummary {
	c.expenses += extraExpenses

	var revenue, ingredientCost entities.Money
	for _, sale := range c.sales.All() {
		revenue += sale.TotalRevenue()
		ingredientCost += sale.IngredientCost
	}

	grossProfit := revenue - ingredientCost
	return dto.DaySummary{
		Revenue:        revenue,
		IngredientCost: ingredientCost,
		GrossProfit:    grossProfit,
		Expenses:       c.expenses,
		NetProfit:      grossProfit - c.expenses,
	}
}
