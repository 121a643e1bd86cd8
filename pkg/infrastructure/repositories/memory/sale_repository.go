package memory

import (
	"github.com/kauaigouveia/lanchonete/pkg/domain/entities"
	"github.com/kauaigouveia/lanchonete/pkg/domain/repositories"
)

// SaleRepository provides in-memory append-only sale storage in
// insertion order.
type SaleRepository struct {
	sales []*entities.Sale
}

// NewSaleRepository creates a new in-memory sale repository.
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{
		sales: []*entities.Sale{},
	}
}

// Verify interface compliance
var _ repositories.SaleRepository = (*SaleRepository)(nil)

// Append adds a sale at the end of the ledger.
func (r *SaleRepository) Append(sale *entities.Sale) {
	r.sales = append(r.sales, sale)
}

// All returns the recorded sales in chronological order. The returned
// slice is a copy; the ledger itself cannot be reordered or truncated
// through it.
func (r *SaleRepository) All() []*entities.Sale {
	sales := make([]*entities.Sale, len(r.sales))
	copy(sales, r.sales)
	return sales
}
