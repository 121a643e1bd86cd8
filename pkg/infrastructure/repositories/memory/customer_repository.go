package memory

import (
	"github.com/kauaigouveia/lanchonete/pkg/domain/entities"
	"github.com/kauaigouveia/lanchonete/pkg/domain/repositories"
)

// CustomerRepository provides in-memory customer storage keyed by
// normalized customer name.
type CustomerRepository struct {
	customers map[string]*entities.Customer
}

// NewCustomerRepository creates a new in-memory customer repository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[string]*entities.Customer),
	}
}

// Verify interface compliance
var _ repositories.CustomerRepository = (*CustomerRepository)(nil)

// Add stores the customer, replacing any previous customer under the
// same normalized name.
func (r *CustomerRepository) Add(customer *entities.Customer) {
	r.customers[entities.NormalizeName(customer.Name)] = customer
}

// Get returns the customer registered under the normalized name, or
// nil when no such customer exists. A missing customer is not an
// error.
func (r *CustomerRepository) Get(name string) *entities.Customer {
	return r.customers[entities.NormalizeName(name)]
}
