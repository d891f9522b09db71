package apperror

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors. Every error in this set is a non-retryable input or
// state error surfaced synchronously to the caller.
var (
	ErrOrderNotFound              = &AppError{Code: http.StatusNotFound, Message: "Order not found"}
	ErrCustomerNotFound           = &AppError{Code: http.StatusNotFound, Message: "Customer not found"}
	ErrTransactionNotFound        = &AppError{Code: http.StatusNotFound, Message: "Transaction not found"}
	ErrOrderAlreadyCompleted      = &AppError{Code: http.StatusBadRequest, Message: "Order already completed"}
	ErrAlreadyConfirmed           = &AppError{Code: http.StatusBadRequest, Message: "Already confirmed"}
	ErrCreditRequiresCustomer     = &AppError{Code: http.StatusBadRequest, Message: "Credit sale requires a customer"}
	ErrNoPaymentAccountConfigured = &AppError{Code: http.StatusBadRequest, Message: "No PromptPay account configured"}
	ErrUnsupportedPaymentMethod   = &AppError{Code: http.StatusBadRequest, Message: "Unsupported payment method"}
	ErrInternalServer             = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewProductNotFoundError reports an unknown product reference in a line item
func NewProductNotFoundError(productID string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: "Product " + productID + " not found",
	}
}

// NewInvalidLineItemError reports an invalid quantity or discount on a line item
func NewInvalidLineItemError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Invalid line item: " + message,
	}
}

// NewInsufficientPaymentError reports cash tendered below the order total
func NewInsufficientPaymentError(required decimal.Decimal) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Insufficient payment. Required: " + required.StringFixed(2),
	}
}

// NewInsufficientCreditError reports a charge above the customer's available credit
func NewInsufficientCreditError(available decimal.Decimal) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Insufficient credit. Available: " + available.StringFixed(2),
	}
}

// NewPaymentExceedsBalanceError reports a credit payment above the outstanding balance
func NewPaymentExceedsBalanceError(balance decimal.Decimal) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Payment exceeds outstanding balance: " + balance.StringFixed(2),
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
