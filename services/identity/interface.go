package identity

import (
	"context"

	customerRepo "storefront/database/repository/customer"
	"storefront/models"
)

// Resolver classifies the current actor once at checkout open and produces
// the contact pre-fill for whichever source applied.
type Resolver interface {
	Resolve(ctx context.Context, principal *models.Principal) (models.Identity, models.CustomerForm)
}

// DefaultResolver implements Resolver over the customer profile repository.
type DefaultResolver struct {
	Customers customerRepo.CustomerRepository
}
