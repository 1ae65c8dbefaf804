package identity

import (
	"context"

	"storefront/models"
	"storefront/utils"

	"go.uber.org/zap"
)

// Resolve classifies the actor behind the checkout session:
//   - no principal: guest.
//   - principal without a customer profile: treated as guest for ordering
//     purposes (staff and other non-customer accounts must not be attributed
//     orders), with email pre-filled from the token when available.
//   - principal with a customer profile: linked customer, contact fields
//     pre-filled from the profile.
//
// A profile lookup failure degrades to the guest classification; resolution
// never blocks checkout.
func (r *DefaultResolver) Resolve(ctx context.Context, principal *models.Principal) (models.Identity, models.CustomerForm) {
	if principal == nil {
		return models.Identity{}, models.CustomerForm{}
	}

	profile, err := r.Customers.GetByPrincipalID(principal.ID)
	if err != nil {
		utils.GetLogger().Warn("customer profile lookup failed, continuing as guest",
			zap.String("principalID", principal.ID), zap.Error(err))
		profile = nil
	}

	if profile == nil {
		// Authenticated but not a customer: guest attribution, email pre-fill only.
		return models.Identity{}, models.CustomerForm{Email: principal.Email}
	}

	email := profile.Email
	if email == "" {
		email = principal.Email
	}

	return models.Identity{
			UserID:             principal.ID,
			IsLinkedCustomer:   true,
			HasCompleteProfile: profile.Name != "" && profile.Phone != "",
		}, models.CustomerForm{
			Name:  profile.Name,
			Phone: profile.Phone,
			Email: email,
		}
}
