package checkout

import (
	"context"

	"storefront/models"
	"storefront/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Open starts (or re-enters) the checkout flow for a shopper. Identity is
// resolved once here and stays read-only for the session's lifetime. A
// session already on the success step is returned untouched: the success
// view persists until the consumer explicitly closes it. Any other existing
// session is rebuilt so the entry step reflects the current cart and
// identity.
func (s *DefaultCheckoutService) Open(ctx context.Context, shopperID string, principal *models.Principal) (*models.CheckoutSession, error) {
	existing, err := s.Sessions.Get(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Step == models.StepSuccess {
		return existing, nil
	}

	crt, err := s.Carts.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}

	id, prefill := s.Identity.Resolve(ctx, principal)
	sess := &models.CheckoutSession{
		SessionID: uuid.New().String(),
		ShopperID: shopperID,
		Step:      ComputeEntryStep(crt, id),
		Customer:  prefill,
		Identity:  id,
	}

	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns the shopper's live session.
func (s *DefaultCheckoutService) Get(ctx context.Context, shopperID string) (*models.CheckoutSession, error) {
	sess, err := s.Sessions.Get(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, NewSessionNotFoundError()
	}
	return sess, nil
}

// SelectSchedule records the chosen booking date and start time.
func (s *DefaultCheckoutService) SelectSchedule(ctx context.Context, shopperID, date, timeOfDay string) (*models.CheckoutSession, error) {
	sess, err := s.Get(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	sess.SelectedDate = date
	sess.SelectedTime = timeOfDay
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// UpdateCustomer overwrites the contact form fields. Updates typed by the
// shopper always win over the pre-fill, which only ever runs at open.
func (s *DefaultCheckoutService) UpdateCustomer(ctx context.Context, shopperID string, form models.CustomerForm) (*models.CheckoutSession, error) {
	sess, err := s.Get(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	sess.Customer = form
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Next advances the wizard one step when the current step's guard passes.
// The confirmation step completes through Submit, not Next.
func (s *DefaultCheckoutService) Next(ctx context.Context, shopperID string) (*models.CheckoutSession, error) {
	sess, err := s.Get(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	if sess.Step == models.StepConfirm {
		return nil, NewSubmitRequiredError()
	}
	crt, err := s.Carts.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	if !CanAdvance(sess, crt) {
		return nil, NewGuardError("required fields for the current step are missing")
	}
	sess.Step = NextStep(sess)
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Back moves the wizard one step backward where a backward transition exists.
func (s *DefaultCheckoutService) Back(ctx context.Context, shopperID string) (*models.CheckoutSession, error) {
	sess, err := s.Get(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	crt, err := s.Carts.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	sess.Step = PrevStep(sess, crt)
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Reset restores the entry step and clears schedule and notes. Contact
// fields survive for linked customers; everyone else starts blank again.
func (s *DefaultCheckoutService) Reset(ctx context.Context, shopperID string) (*models.CheckoutSession, error) {
	sess, err := s.Get(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	crt, err := s.Carts.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}

	sess.SelectedDate = ""
	sess.SelectedTime = ""
	sess.Customer.Notes = ""
	if !sess.Identity.IsLinkedCustomer {
		sess.Customer = models.CustomerForm{}
	}
	sess.Step = ComputeEntryStep(crt, sess.Identity)
	sess.Submitting = false

	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Submit finalizes the order from the confirmation step. Duplicate submits
// are rejected while one is in flight; a failed submission leaves the
// session on the confirmation step with its data intact.
func (s *DefaultCheckoutService) Submit(ctx context.Context, shopperID string) (*SubmitResult, error) {
	sess, err := s.Get(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	if sess.Step != models.StepConfirm {
		return nil, NewGuardError("submission is only available from the confirmation step")
	}
	if sess.Submitting {
		return nil, NewDuplicateSubmitError()
	}

	crt, err := s.Carts.GetCart(ctx, shopperID)
	if err != nil {
		return nil, err
	}
	if crt.IsEmpty() {
		return nil, NewEmptyCartError()
	}

	sess.Submitting = true
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	outcome, err := s.Orders.Submit(ctx, sess, crt)
	if err != nil {
		sess.Submitting = false
		if saveErr := s.Sessions.Save(ctx, sess); saveErr != nil {
			utils.GetLogger().Warn("failed to release submit flag", zap.Error(saveErr))
		}
		return nil, err
	}

	// The session may have been closed while the order call was in flight;
	// a success transition for a discarded session is dropped.
	current, err := s.Sessions.Get(ctx, shopperID)
	if err != nil || current == nil || current.SessionID != sess.SessionID {
		utils.GetLogger().Warn("checkout session discarded during submission",
			zap.String("orderID", outcome.Order.ID))
		return &SubmitResult{OrderID: outcome.Order.ID}, nil
	}

	sess.Submitting = false
	sess.Step = models.StepSuccess
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	result := &SubmitResult{Session: sess, OrderID: outcome.Order.ID}
	if outcome.Guest {
		result.GuestOrderID = outcome.Order.ID
	}
	return result, nil
}

// Close discards the session. The cart is untouched: it is cleared only on
// submission success, never on cancel.
func (s *DefaultCheckoutService) Close(ctx context.Context, shopperID string) error {
	return s.Sessions.Delete(ctx, shopperID)
}
