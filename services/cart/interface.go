package cart

import (
	"context"

	"storefront/models"
)

// CartService defines the interface for managing a shopper's cart.
type CartService interface {
	GetCart(ctx context.Context, shopperID string) (*models.Cart, error)
	AddService(ctx context.Context, shopperID, serviceID string) (*models.Cart, error)
	AddProduct(ctx context.Context, shopperID, productID string) (*models.Cart, error)
	SetProductQuantity(ctx context.Context, shopperID, lineID string, quantity int) (*models.Cart, error)
	RemoveLine(ctx context.Context, shopperID, lineID string) (*models.Cart, error)
	Clear(ctx context.Context, shopperID string) error
}

// CartStore persists carts between requests.
type CartStore interface {
	// Get returns the stored cart for the shopper, or (nil, nil) when none exists.
	Get(ctx context.Context, shopperID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, shopperID string) error
}

// DefaultCartService implements CartService over a CartStore and the
// merchant catalog.
type DefaultCartService struct {
	Store   CartStore
	Catalog CatalogSource
}

// CatalogSource is the subset of the catalog repository the cart needs.
type CatalogSource interface {
	GetServiceByID(id string) (*models.Service, error)
	GetProductByID(id string) (*models.Product, error)
}
