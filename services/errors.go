package services

import "fmt"

// ServiceError is a typed error with an HTTP status code. Controllers render
// it as {"success": false, "message": ...}.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// NewServiceError creates a ServiceError.
func NewServiceError(status int, message string) *ServiceError {
	return &ServiceError{StatusCode: status, Message: message}
}

// InsufficientStockMessage formats the insufficient-stock response so the
// caller can see how much stock is actually available.
func InsufficientStockMessage(available int) string {
	return fmt.Sprintf("Only %d unit(s) available in stock. Please reduce the total quantity.", available)
}
