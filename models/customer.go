package models

// CustomerProfile is a customer record linked to an authenticated principal.
// Only principals with a profile are eligible for order attribution.
type CustomerProfile struct {
	ID          string `json:"id" bson:"id"`
	PrincipalID string `json:"principalId" bson:"principal_id"`
	MerchantID  string `json:"merchantId" bson:"merchant_id"`
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string `json:"phone" bson:"phone"`
}

// Principal is the authenticated actor extracted from the bearer token.
// A nil Principal means the shopper is browsing as a guest.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}
