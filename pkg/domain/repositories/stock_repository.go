package repositories

import "github.com/kauaigouveia/lanchonete/pkg/domain/entities"

// StockRepository is the authoritative table of tracked stock items,
// keyed by normalized item name. Get returns live items; mutations made
// through a returned pointer are visible on the next lookup.
type StockRepository interface {
	// Upsert adds quantityDelta to the item registered under name,
	// overwriting its unit cost, or creates the item if absent. It fails
	// when the delta would drive the on-hand quantity below zero.
	Upsert(name string, quantityDelta entities.Quantity, unit string, unitCost entities.Money) (*entities.Item, error)

	// Get returns the item registered under the normalized name, or nil
	// when no such item exists.
	Get(name string) *entities.Item

	// All returns every registered item in unspecified order.
	All() []*entities.Item
}
