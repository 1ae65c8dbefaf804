package models

// Service is a bookable, time-based offering from the merchant catalog.
type Service struct {
	ID              string  `json:"id" bson:"id"`
	MerchantID      string  `json:"merchantId" bson:"merchant_id"`
	Name            string  `json:"name" bson:"name"`
	Description     string  `json:"description,omitempty" bson:"description,omitempty"`
	Price           float64 `json:"price" bson:"price"`
	DurationMinutes int     `json:"durationMinutes" bson:"duration_minutes"`
	Active          bool    `json:"active" bson:"active"`
}

// Product is a purchasable good from the merchant catalog.
type Product struct {
	ID          string  `json:"id" bson:"id"`
	MerchantID  string  `json:"merchantId" bson:"merchant_id"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64 `json:"price" bson:"price"`
	Active      bool    `json:"active" bson:"active"`
}
