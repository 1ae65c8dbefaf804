package cart

import (
	"context"
	"fmt"
	"time"

	"storefront/models"
)

// GetCart returns the shopper's cart, creating an empty one if none is stored.
func (s *DefaultCartService) GetCart(ctx context.Context, shopperID string) (*models.Cart, error) {
	stored, err := s.Store.Get(ctx, shopperID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if stored == nil {
		return &models.Cart{ShopperID: shopperID, UpdatedAt: time.Now()}, nil
	}
	return stored, nil
}

// AddService resolves the service from the catalog and inserts a service
// line. Re-adding a service already in the cart is a no-op.
func (s *DefaultCartService) AddService(ctx context.Context, shopperID, serviceID string) (*models.Cart, error) {
	svc, err := s.Catalog.GetServiceByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service %s: %w", serviceID, err)
	}
	if svc == nil {
		return nil, NewCatalogItemError(fmt.Sprintf("service %s not found", serviceID))
	}

	cart, err := s.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	cart.AddService(*svc)
	return cart, s.save(ctx, cart)
}

// AddProduct resolves the product from the catalog and inserts a product
// line, or increments the quantity of an existing line.
func (s *DefaultCartService) AddProduct(ctx context.Context, shopperID, productID string) (*models.Cart, error) {
	p, err := s.Catalog.GetProductByID(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product %s: %w", productID, err)
	}
	if p == nil {
		return nil, NewCatalogItemError(fmt.Sprintf("product %s not found", productID))
	}

	cart, err := s.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	cart.AddProduct(*p)
	return cart, s.save(ctx, cart)
}

// SetProductQuantity updates the quantity of a product line. A quantity of
// zero or less removes the line. Service lines are left untouched.
func (s *DefaultCartService) SetProductQuantity(ctx context.Context, shopperID, lineID string, quantity int) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	cart.SetProductQuantity(lineID, quantity)
	return cart, s.save(ctx, cart)
}

// RemoveLine removes the line with the given id regardless of kind.
func (s *DefaultCartService) RemoveLine(ctx context.Context, shopperID, lineID string) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	cart.RemoveLine(lineID)
	return cart, s.save(ctx, cart)
}

// Clear empties and deletes the stored cart.
func (s *DefaultCartService) Clear(ctx context.Context, shopperID string) error {
	if err := s.Store.Delete(ctx, shopperID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *DefaultCartService) save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()
	if err := s.Store.Save(ctx, cart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
