package memory

import (
	"errors"
	"testing"

	"github.com/kauaigouveia/lanchonete/pkg/domain/entities"
)

func TestStockRepository_Upsert_Creates(t *testing.T) {
	repo := NewStockRepository()

	item, err := repo.Upsert("Frango", 500, "g", 0.25)
	if err != nil {
		t.Fatalf("Failed to upsert item: %v", err)
	}
	if item.Name != "Frango" {
		t.Errorf("Expected display name 'Frango', got '%s'", item.Name)
	}
	if item.Quantity != 500 {
		t.Errorf("Expected quantity 500, got %v", item.Quantity)
	}
	if item.UnitCost != 0.25 {
		t.Errorf("Expected unit cost 0.25, got %v", item.UnitCost)
	}
}

func TestStockRepository_Upsert_AdditiveQuantityOverwritingCost(t *testing.T) {
	repo := NewStockRepository()

	if _, err := repo.Upsert("Queijo", 10, "fatia", 2.0); err != nil {
		t.Fatalf("Failed to upsert item: %v", err)
	}

	item, err := repo.Upsert("Queijo", 5, "fatia", 3.0)
	if err != nil {
		t.Fatalf("Failed to upsert existing item: %v", err)
	}
	if item.Quantity != 15 {
		t.Errorf("Expected additive quantity 15, got %v", item.Quantity)
	}
	if item.UnitCost != 3.0 {
		t.Errorf("Expected unit cost overwritten to 3.00 (not averaged), got %v", item.UnitCost)
	}
}

func TestStockRepository_Upsert_CaseInsensitiveIdentity(t *testing.T) {
	repo := NewStockRepository()

	if _, err := repo.Upsert("Frango", 100, "g", 0.25); err != nil {
		t.Fatalf("Failed to upsert item: %v", err)
	}
	if _, err := repo.Upsert("  fRANGO ", 50, "g", 0.5); err != nil {
		t.Fatalf("Failed to upsert with different casing: %v", err)
	}

	item := repo.Get("FRANGO")
	if item == nil {
		t.Fatal("Expected lookup by any casing to find the item")
	}
	if item.Quantity != 150 {
		t.Errorf("Expected both upserts to hit the same item, got quantity %v", item.Quantity)
	}
	if item.Name != "Frango" {
		t.Errorf("Expected display name from first upsert, got '%s'", item.Name)
	}
	if len(repo.All()) != 1 {
		t.Errorf("Expected a single registered item, got %d", len(repo.All()))
	}
}

func TestStockRepository_Upsert_RejectsBelowZero(t *testing.T) {
	repo := NewStockRepository()

	if _, err := repo.Upsert("Ovo", 10, "un", 0.5); err != nil {
		t.Fatalf("Failed to upsert item: %v", err)
	}

	_, err := repo.Upsert("Ovo", -11, "un", 0.5)
	if err == nil {
		t.Fatal("Expected error for delta driving quantity below zero")
	}
	if !errors.Is(err, entities.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
	if item := repo.Get("ovo"); item.Quantity != 10 {
		t.Errorf("Expected quantity unchanged at 10, got %v", item.Quantity)
	}

	// A negative delta within the on-hand quantity is fine
	if _, err := repo.Upsert("Ovo", -10, "un", 0.5); err != nil {
		t.Fatalf("Expected delta down to zero to succeed: %v", err)
	}
	if item := repo.Get("ovo"); item.Quantity != 0 {
		t.Errorf("Expected quantity 0, got %v", item.Quantity)
	}
}

func TestStockRepository_Upsert_EmptyName(t *testing.T) {
	repo := NewStockRepository()

	if _, err := repo.Upsert("   ", 10, "un", 1.0); !errors.Is(err, entities.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for blank name, got %v", err)
	}
}

func TestStockRepository_Get_Missing(t *testing.T) {
	repo := NewStockRepository()

	if item := repo.Get("presunto"); item != nil {
		t.Errorf("Expected nil for unregistered item, got %+v", item)
	}
}
