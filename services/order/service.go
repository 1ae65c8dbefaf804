package order

import (
	"context"
	"fmt"

	"storefront/models"
	"storefront/utils"

	"go.uber.org/zap"
)

// Submit performs the create-order call for a confirmed checkout session.
// On success the cart is cleared and, for guest orders, the returned order
// id is written to the pending-link store. On failure nothing changes: the
// shopper can retry with the same data.
func (s *DefaultSubmissionService) Submit(ctx context.Context, sess *models.CheckoutSession, crt *models.Cart) (*SubmitOutcome, error) {
	payload, err := BuildPayload(s.MerchantID, sess, crt)
	if err != nil {
		return nil, err
	}

	result, err := s.Client.CreateOrder(ctx, payload)
	if err != nil {
		return nil, NewSubmissionError(err.Error())
	}
	if !result.OK || result.Order == nil || result.Order.ID == "" {
		msg := result.Error
		if msg == "" {
			msg = "order was not created"
		}
		return nil, NewSubmissionError(msg)
	}

	logger := utils.GetLogger()
	if err := s.Carts.Clear(ctx, crt.ShopperID); err != nil {
		// The order exists; a stale cart is recoverable and must not fail the submission.
		logger.Warn("failed to clear cart after successful order",
			zap.String("orderID", result.Order.ID), zap.Error(err))
	}

	outcome := &SubmitOutcome{Order: result.Order, Guest: payload.CustomerID == nil}
	if outcome.Guest {
		if err := s.LinkStore.Write(ctx, result.Order.ID); err != nil {
			logger.Warn("failed to store pending link token",
				zap.String("orderID", result.Order.ID), zap.Error(err))
		}
	}

	logger.Info(fmt.Sprintf("order %s submitted", result.Order.ID),
		zap.Bool("guest", outcome.Guest), zap.Float64("total", payload.TotalPrice))
	return outcome, nil
}
