package checkout

import (
	"context"

	"storefront/models"
	"storefront/services/cart"
	"storefront/services/identity"
	"storefront/services/order"
)

// CheckoutService drives the checkout wizard for one shopper at a time:
// schedule selection, contact collection, confirmation, and submission.
// A shopper has at most one live session.
type CheckoutService interface {
	Open(ctx context.Context, shopperID string, principal *models.Principal) (*models.CheckoutSession, error)
	Get(ctx context.Context, shopperID string) (*models.CheckoutSession, error)
	SelectSchedule(ctx context.Context, shopperID, date, timeOfDay string) (*models.CheckoutSession, error)
	UpdateCustomer(ctx context.Context, shopperID string, form models.CustomerForm) (*models.CheckoutSession, error)
	Next(ctx context.Context, shopperID string) (*models.CheckoutSession, error)
	Back(ctx context.Context, shopperID string) (*models.CheckoutSession, error)
	Reset(ctx context.Context, shopperID string) (*models.CheckoutSession, error)
	Submit(ctx context.Context, shopperID string) (*SubmitResult, error)
	Close(ctx context.Context, shopperID string) error
}

// SubmitResult carries the post-submission session plus the linking hint
// the transport layer needs for the guest cookie sink.
type SubmitResult struct {
	Session *models.CheckoutSession
	OrderID string
	// GuestOrderID is set only for guest orders; the handler mirrors it
	// into the pending-link cookie.
	GuestOrderID string
}

// SessionStore persists checkout sessions between requests.
type SessionStore interface {
	// Get returns the stored session for the shopper, or (nil, nil) when none exists.
	Get(ctx context.Context, shopperID string) (*models.CheckoutSession, error)
	Save(ctx context.Context, sess *models.CheckoutSession) error
	Delete(ctx context.Context, shopperID string) error
}

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	Sessions SessionStore
	Carts    cart.CartService
	Identity identity.Resolver
	Orders   order.SubmissionService
}
