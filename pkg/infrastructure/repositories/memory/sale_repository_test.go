package memory

import (
	"testing"

	"github.com/kauaigouveia/lanchonete/pkg/domain/entities"
)

func TestSaleRepository_AppendPreservesOrder(t *testing.T) {
	repo := NewSaleRepository()
	recipe := mustRecipe(t, "Sanduíche", map[string]entities.Quantity{"ovo": 1})

	var sales []*entities.Sale
	for i := 1; i <= 3; i++ {
		sale, err := entities.NewSale(recipe, i, 10, 2, nil)
		if err != nil {
			t.Fatalf("Failed to create sale: %v", err)
		}
		sales = append(sales, sale)
		repo.Append(sale)
	}

	all := repo.All()
	if len(all) != 3 {
		t.Fatalf("Expected 3 sales, got %d", len(all))
	}
	for i, sale := range all {
		if sale != sales[i] {
			t.Errorf("Expected chronological order at position %d", i)
		}
	}
}

func TestSaleRepository_All_ReturnsCopy(t *testing.T) {
	repo := NewSaleRepository()
	recipe := mustRecipe(t, "Sanduíche", map[string]entities.Quantity{"ovo": 1})

	sale, err := entities.NewSale(recipe, 1, 10, 2, nil)
	if err != nil {
		t.Fatalf("Failed to create sale: %v", err)
	}
	repo.Append(sale)

	all := repo.All()
	all[0] = nil
	if got := repo.All(); got[0] != sale {
		t.Error("Expected ledger to be unaffected by mutation of the returned slice")
	}
}
