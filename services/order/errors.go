package order

import "fmt"

// SubmissionError signals a create-order call that did not succeed. The
// session stays on the confirmation step so the shopper can retry without
// re-entering data.
type SubmissionError struct {
	Code    string
	Message string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSubmissionError(msg string) error {
	return &SubmissionError{
		Code:    "submissionError",
		Message: msg,
	}
}
