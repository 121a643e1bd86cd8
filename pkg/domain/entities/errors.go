package entities

import "errors"

// Sentinel errors for the failure kinds the core can return. Callers
// match them with errors.Is; messages carry the offending identity.
var (
	ErrInsufficientStock = errors.New("lanchonete: insufficient stock")
	ErrRecipeNotFound    = errors.New("lanchonete: recipe not found")
	ErrItemNotFound      = errors.New("lanchonete: item not found")
	ErrInvalidArgument   = errors.New("lanchonete: invalid argument")
)
