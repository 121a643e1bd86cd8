package memory

import (
	"fmt"

	"github.com/kauaigouveia/lanchonete/pkg/domain/entities"
	"github.com/kauaigouveia/lanchonete/pkg/domain/repositories"
)

// StockRepository provides in-memory stock storage keyed by normalized
// item name. The display name is kept from the first upsert.
type StockRepository struct {
	items map[string]*entities.Item
}

// NewStockRepository creates a new in-memory stock repository.
func NewStockRepository() *StockRepository {
	return &StockRepository{
		items: make(map[string]*entities.Item),
	}
}

// Verify interface compliance
var _ repositories.StockRepository = (*StockRepository)(nil)

// Upsert adds quantityDelta to the item registered under name and
// overwrites its unit cost (no averaging), or creates the item when
// absent. A delta that would drive the on-hand quantity below zero
// fails without mutating; deliberate shrinkage goes through the stock
// service's write-off operation instead.
func (r *StockRepository) Upsert(name string, quantityDelta entities.Quantity, unit string, unitCost entities.Money) (*entities.Item, error) {
	key := entities.NormalizeName(name)
	if key == "" {
		return nil, fmt.Errorf("%w: item name cannot be empty", entities.ErrInvalidArgument)
	}

	if item, ok := r.items[key]; ok {
		if item.Quantity+quantityDelta < 0 {
			return nil, fmt.Errorf("%w: delta %v would drive %s below zero", entities.ErrInvalidArgument, quantityDelta, item.Name)
		}
		item.Quantity += quantityDelta
		item.UnitCost = unitCost
		return item, nil
	}

	item, err := entities.NewItem(name, quantityDelta, unit, unitCost)
	if err != nil {
		return nil, err
	}
	r.items[key] = item
	return item, nil
}

// Get returns the live item registered under the normalized name, or
// nil when no such item exists.
func (r *StockRepository) Get(name string) *entities.Item {
	return r.items[entities.NormalizeName(name)]
}

// All returns every registered item.
func (r *StockRepository) All() []*entities.Item {
	items := make([]*entities.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	return items
}
