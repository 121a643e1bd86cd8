package repositories

import "github.com/kauaigouveia/lanchonete/pkg/domain/entities"

// CustomerRepository provides access to the customer directory, keyed
// by normalized customer name. A missing customer is not an error:
// callers treat "no customer" as a valid, optional association.
type CustomerRepository interface {
	// Add stores the customer, replacing any customer registered under
	// the same normalized name.
	Add(customer *entities.Customer)

	// Get returns the customer registered under the normalized name, or
	// nil when no such customer exists.
	Get(name string) *entities.Customer
}
