package models

// OrderStatusPending is the status every submitted order starts in.
const OrderStatusPending = "pending"

// OrderItem is the durable snapshot of a cart line at submission time,
// independent of later catalog changes.
type OrderItem struct {
	Type            string  `json:"type"`
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Quantity        int     `json:"quantity"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
}

// OrderPayload is the wire contract for the create-order call.
type OrderPayload struct {
	MerchantID    string      `json:"merchant_id"`
	CustomerID    *string     `json:"customer_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail *string     `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone"`
	BookingDate   *string     `json:"booking_date"`
	StartTime     *string     `json:"start_time"`
	EndTime       *string     `json:"end_time"`
	Status        string      `json:"status"`
	Notes         *string     `json:"notes"`
	TotalPrice    float64     `json:"total_price"`
	CartItems     []OrderItem `json:"cart_items"`
}

// CreatedOrder is the order reference returned by the orders API.
type CreatedOrder struct {
	ID string `json:"id"`
}

// OrderResult is the create-order response envelope.
type OrderResult struct {
	OK    bool          `json:"ok"`
	Order *CreatedOrder `json:"order,omitempty"`
	Error string        `json:"error,omitempty"`
}
