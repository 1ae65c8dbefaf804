package order

import (
	"context"

	"storefront/models"
	"storefront/services/cart"
)

// SubmissionService finalizes a checkout: it assembles the order payload,
// performs the create-order call, and on success clears the cart and
// prepares guest-to-account linking.
type SubmissionService interface {
	Submit(ctx context.Context, sess *models.CheckoutSession, crt *models.Cart) (*SubmitOutcome, error)
}

// SubmitOutcome reports a successful submission.
type SubmitOutcome struct {
	Order *models.CreatedOrder
	// Guest is true when the order carried no customer attribution; the
	// order id was then written to the pending-link store and should also
	// be handed to the transport layer for the cookie sink.
	Guest bool
}

// OrdersClient performs the opaque create-order network call.
type OrdersClient interface {
	CreateOrder(ctx context.Context, payload models.OrderPayload) (*models.OrderResult, error)
}

// LinkTokenStore persists a guest order id across sessions so a later
// sign-up flow can retroactively link the order to the new account.
type LinkTokenStore interface {
	Write(ctx context.Context, orderID string) error
}

// DefaultSubmissionService implements SubmissionService.
type DefaultSubmissionService struct {
	MerchantID string
	Client     OrdersClient
	Carts      cart.CartService
	LinkStore  LinkTokenStore
}
