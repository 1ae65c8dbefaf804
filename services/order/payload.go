package order

import (
	"fmt"
	"time"

	"storefront/models"
)

// ComputeEndTime adds the total service duration to a HH:MM start time,
// wrapping within the 24-hour clock. A booking running past midnight keeps
// its booking date and wraps the clock time.
func ComputeEndTime(start string, durationMinutes int) (string, error) {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return "", fmt.Errorf("invalid start time %q: %w", start, err)
	}
	end := t.Add(time.Duration(durationMinutes) * time.Minute)
	return end.Format("15:04"), nil
}

// BuildPayload assembles the order payload from the cart snapshot, the
// session form fields, and the resolved identity. Orders are attributed to
// a customer id only for linked customers; every other actor submits as a
// guest regardless of authentication.
func BuildPayload(merchantID string, sess *models.CheckoutSession, crt *models.Cart) (models.OrderPayload, error) {
	if crt.IsEmpty() {
		return models.OrderPayload{}, NewSubmissionError("cart is empty")
	}

	payload := models.OrderPayload{
		MerchantID:    merchantID,
		CustomerName:  sess.Customer.Name,
		CustomerPhone: sess.Customer.Phone,
		Status:        models.OrderStatusPending,
		TotalPrice:    crt.Total(),
	}

	if sess.Identity.IsLinkedCustomer && sess.Identity.UserID != "" {
		id := sess.Identity.UserID
		payload.CustomerID = &id
	}
	if sess.Customer.Email != "" {
		email := sess.Customer.Email
		payload.CustomerEmail = &email
	}
	if sess.Customer.Notes != "" {
		notes := sess.Customer.Notes
		payload.Notes = &notes
	}

	if crt.HasServiceLines() {
		endTime, err := ComputeEndTime(sess.SelectedTime, crt.TotalServiceDurationMinutes())
		if err != nil {
			return models.OrderPayload{}, err
		}
		date, start := sess.SelectedDate, sess.SelectedTime
		payload.BookingDate = &date
		payload.StartTime = &start
		payload.EndTime = &endTime
	}

	payload.CartItems = make([]models.OrderItem, 0, len(crt.Lines))
	for _, line := range crt.Lines {
		item := models.OrderItem{
			Type:     string(line.Kind),
			ID:       line.ID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		}
		if line.Kind == models.LineKindService {
			item.DurationMinutes = line.DurationMinutes
		}
		payload.CartItems = append(payload.CartItems, item)
	}

	return payload, nil
}
