package cart

import "fmt"

// CatalogItemError signals that a catalog id could not be resolved.
type CatalogItemError struct {
	Code    string
	Message string
}

func (e *CatalogItemError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewCatalogItemError(msg string) error {
	return &CatalogItemError{
		Code:    "catalogItemError",
		Message: msg,
	}
}
