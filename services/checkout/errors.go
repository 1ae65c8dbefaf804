package checkout

import "fmt"

// FlowError signals a checkout flow operation that could not proceed.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionNotFoundError() error {
	return &FlowError{Code: "sessionNotFound", Message: "checkout session not found or expired"}
}

func NewGuardError(msg string) error {
	return &FlowError{Code: "guardBlocked", Message: msg}
}

func NewSubmitRequiredError() error {
	return &FlowError{Code: "submitRequired", Message: "confirmation step completes via submit"}
}

func NewDuplicateSubmitError() error {
	return &FlowError{Code: "duplicateSubmit", Message: "a submission is already in flight"}
}

func NewEmptyCartError() error {
	return &FlowError{Code: "emptyCart", Message: "cannot submit an order with an empty cart"}
}
