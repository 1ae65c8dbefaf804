package customerRepo

import "storefront/models"

// CustomerRepository defines data access methods for customer profiles.
type CustomerRepository interface {
	// GetByPrincipalID returns the customer profile linked to the given
	// authenticated principal, or (nil, nil) when no profile exists.
	GetByPrincipalID(principalID string) (*models.CustomerProfile, error)
}
