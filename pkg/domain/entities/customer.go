package entities

import (
	"fmt"
	"strings"
)

// Customer is a named, purely descriptive record. It carries no
// business invariants; a sale may reference zero or one customer.
type Customer struct {
	Name    string
	Contact string
}

// NewCustomer creates a validated Customer. Contact is optional
// free-text (phone, e-mail, whatever the operator types in).
func NewCustomer(name, contact string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: customer name cannot be empty", ErrInvalidArgument)
	}

	return &Customer{
		Name:    strings.TrimSpace(name),
		Contact: strings.TrimSpace(contact),
	}, nil
}
