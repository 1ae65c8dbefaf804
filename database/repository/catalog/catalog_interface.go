package catalogRepo

import "storefront/models"

// CatalogRepository defines data access methods for the merchant catalog.
type CatalogRepository interface {
	// GetServiceByID returns the active service with the given id,
	// or (nil, nil) when no such service exists.
	GetServiceByID(id string) (*models.Service, error)
	// GetProductByID returns the active product with the given id,
	// or (nil, nil) when no such product exists.
	GetProductByID(id string) (*models.Product, error)
	// ListServices returns all active services for the merchant.
	ListServices(merchantID string) ([]models.Service, error)
	// ListProducts returns all active products for the merchant.
	ListProducts(merchantID string) ([]models.Product, error)
}
