package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kauaigouveia/lanchonete/pkg/domain/entities"
)

// Loader handles loading seed data from CSV files so a day's starting
// stock and recipe catalog do not have to be typed into the menu.
type Loader struct{}

// NewLoader creates a new CSV loader.
func NewLoader() *Loader {
	return &Loader{}
}

// StockRecord is one row of a stock seed file, applied as an upsert.
type StockRecord struct {
	Name     string
	Quantity entities.Quantity
	Unit     string
	UnitCost entities.Money
}

// LoadStock loads stock records from a CSV file with the header
// name,quantity,unit,unit_cost.
func (l *Loader) LoadStock(filename string) ([]StockRecord, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read stock CSV: %w", err)
	}

	expectedHeader := []string{"name", "quantity", "unit", "unit_cost"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("stock CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var stock []StockRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("stock CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		quantity, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("stock CSV row %d: invalid quantity %q: %w", i+2, record[1], err)
		}
		unitCost, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("stock CSV row %d: invalid unit cost %q: %w", i+2, record[3], err)
		}

		stock = append(stock, StockRecord{
			Name:     strings.TrimSpace(record[0]),
			Quantity: entities.Quantity(quantity),
			Unit:     strings.TrimSpace(record[2]),
			UnitCost: entities.Money(unitCost),
		})
	}

	return stock, nil
}

// LoadRecipes loads recipes from a CSV file with the header
// recipe,ingredient,amount. Rows sharing a recipe name form one
// recipe; the display name comes from the first row of the group.
func (l *Loader) LoadRecipes(filename string) ([]*entities.Recipe, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipes CSV: %w", err)
	}

	expectedHeader := []string{"recipe", "ingredient", "amount"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("recipes CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	displayNames := make(map[string]string)
	ingredients := make(map[string]map[string]entities.Quantity)
	var order []string

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("recipes CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		name := strings.TrimSpace(record[0])
		key := entities.NormalizeName(name)
		if key == "" {
			return nil, fmt.Errorf("recipes CSV row %d: recipe name cannot be empty", i+2)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("recipes CSV row %d: invalid amount %q: %w", i+2, record[2], err)
		}

		if _, ok := ingredients[key]; !ok {
			displayNames[key] = name
			ingredients[key] = make(map[string]entities.Quantity)
			order = append(order, key)
		}
		ingredients[key][strings.TrimSpace(record[1])] = entities.Quantity(amount)
	}

	var recipes []*entities.Recipe
	for _, key := range order {
		recipe, err := entities.NewRecipe(displayNames[key], ingredients[key])
		if err != nil {
			return nil, fmt.Errorf("recipes CSV: invalid recipe %s: %w", displayNames[key], err)
		}
		recipes = append(recipes, recipe)
	}

	return recipes, nil
}

// readAll opens a CSV file and returns its records, requiring at least
// a header and one data row.
func readAll(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s must have header and at least one data row", filename)
	}
	return records, nil
}

// validateHeader checks that the header matches expected column names,
// case-insensitively.
func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range expected {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return false
		}
	}
	return true
}
