package models

// FlowStep is the current stage of the checkout wizard.
type FlowStep string

const (
	StepDateTime FlowStep = "datetime"
	StepInfo     FlowStep = "info"
	StepConfirm  FlowStep = "confirm"
	StepSuccess  FlowStep = "success"
)

// Identity is the actor classification resolved once when checkout opens.
// UserID is set only for linked customers; an authenticated principal without
// a customer profile is treated as a guest for ordering purposes.
type Identity struct {
	UserID             string `json:"userId,omitempty"`
	IsLinkedCustomer   bool   `json:"isLinkedCustomer"`
	HasCompleteProfile bool   `json:"hasCompleteProfile"`
}

// CustomerForm holds the mutable contact fields collected during checkout.
type CustomerForm struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// CheckoutSession holds checkout state between the open and submit phases.
type CheckoutSession struct {
	SessionID    string       `json:"sessionId"`
	ShopperID    string       `json:"shopperId"`
	Step         FlowStep     `json:"step"`
	SelectedDate string       `json:"selectedDate,omitempty"`
	SelectedTime string       `json:"selectedTime,omitempty"`
	Customer     CustomerForm `json:"customer"`
	Identity     Identity     `json:"identity"`
	Submitting   bool         `json:"submitting"`
}
