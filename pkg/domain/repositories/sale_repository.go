package repositories

import "github.com/kauaigouveia/lanchonete/pkg/domain/entities"

// SaleRepository is the append-only chronological record of sales.
// Records are never mutated or removed after insertion.
type SaleRepository interface {
	// Append adds a sale at the end of the ledger.
	Append(sale *entities.Sale)

	// All returns the recorded sales in insertion (chronological) order.
	All() []*entities.Sale
}
