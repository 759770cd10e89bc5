package internal

import (
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeDownstream   ErrorType = "DOWNSTREAM_ERROR"
)

// Operation identifies one public API operation. Each operation owns its own
// error code namespace: get-payment's not-found and get-events' not-found are
// distinct codes even though the condition is the same.
type Operation string

const (
	OpGetPayment       Operation = "get-payment"
	OpGetPaymentEvents Operation = "get-payment-events"
	OpSearchPayments   Operation = "search-payments"
	OpCreateMandate    Operation = "create-mandate"
	OpGetMandate       Operation = "get-mandate"
)

// APIError is the only error shape API consumers ever see. Downstream error
// bodies are never forwarded; Cause is for internal logging only.
type APIError struct {
	Type        ErrorType `json:"-"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	StatusCode  int       `json:"-"`
	Cause       error     `json:"-"`
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Description, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

func (e *APIError) WithCause(cause error) *APIError {
	copied := *e
	copied.Cause = cause
	return &copied
}

var notFoundCodes = map[Operation]string{
	OpGetPayment:       "P0200",
	OpGetPaymentEvents: "P0300",
	OpSearchPayments:   "P0402",
	OpGetMandate:       "P0700",
}

var downstreamCodes = map[Operation]string{
	OpGetPayment:       "P0298",
	OpGetPaymentEvents: "P0398",
	OpSearchPayments:   "P0498",
	OpCreateMandate:    "P0698",
	OpGetMandate:       "P0798",
}

// NotFoundError reports a confirmed absence from every resolved source.
func NotFoundError(op Operation) *APIError {
	description := "Not found"
	if op == OpSearchPayments {
		description = "Page not found"
	}
	return &APIError{
		Type:        ErrorTypeNotFound,
		Code:        notFoundCodes[op],
		Description: description,
		StatusCode:  http.StatusNotFound,
	}
}

// DownstreamError covers any backend response outside the expected
// success/not-found contract, including timeouts and transport failures.
func DownstreamError(op Operation) *APIError {
	return &APIError{
		Type:        ErrorTypeDownstream,
		Code:        downstreamCodes[op],
		Description: "Downstream system error",
		StatusCode:  http.StatusInternalServerError,
	}
}

// SearchValidationError aggregates every invalid search parameter into a
// single error. Fields must already be in canonical priority order.
func SearchValidationError(fields []string) *APIError {
	return &APIError{
		Type: ErrorTypeValidation,
		Code: "P0401",
		Description: fmt.Sprintf(
			"Invalid parameters: %s. See Public API documentation for the correct data formats",
			strings.Join(fields, ", ")),
		StatusCode: http.StatusUnprocessableEntity,
	}
}

// MandateValidationError covers a malformed create-mandate request body.
func MandateValidationError(description string) *APIError {
	return &APIError{
		Type:        ErrorTypeValidation,
		Code:        "P0601",
		Description: description,
		StatusCode:  http.StatusBadRequest,
	}
}

// AuthServiceError means the auth collaborator itself failed; distinct from
// a rejected token, which is UnauthorizedError.
func AuthServiceError() *APIError {
	return &APIError{
		Type:        ErrorTypeDownstream,
		Code:        "P0999",
		Description: "Downstream system error",
		StatusCode:  http.StatusInternalServerError,
	}
}

// UnauthorizedError is surfaced before any downstream call is attempted.
func UnauthorizedError() *APIError {
	return &APIError{
		Type:        ErrorTypeUnauthorized,
		Code:        "P0900",
		Description: "Credentials are required to access this resource",
		StatusCode:  http.StatusUnauthorized,
	}
}

func IsAPIError(err error) (*APIError, bool) {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr, true
	}
	return nil, false
}
