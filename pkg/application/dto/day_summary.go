package dto

import "github.com/kauaigouveia/lanchonete/pkg/domain/entities"

// DaySummary contains the as-of financial figures of the cash
// register: every figure except Expenses is re-aggregated over the
// entire historical sales list each time it is produced.
type DaySummary struct {
	Revenue        entities.Money
	IngredientCost entities.Money
	GrossProfit    entities.Money
	Expenses       entities.Money
	NetProfit      entities.Money
}
