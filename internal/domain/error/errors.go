package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidPhone        = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidName         = 4003
	CodeInvalidRequest      = 4004
	CodeDuplicateCallback   = 4090
	CodeTransactionNotFound = 4040
	CodeSupporterNotFound   = 4041

	// 5xxx - Server/integration errors
	CodeInternalServer = 5000
	CodeConfiguration  = 5001
	CodePartnerAPI     = 5020
	CodeCallback       = 5021
)

// Base error types
var (
	// ErrInvalidPhone is returned when a phone number matches no accepted Kenyan shape
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidAmount is returned when a donation amount is not a positive round value
	ErrInvalidAmount = errors.New("invalid donation amount")

	// ErrInvalidName is returned when a supporter name is empty after sanitization
	ErrInvalidName = errors.New("invalid supporter name")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConfiguration is returned when required partner configuration is missing
	ErrConfiguration = errors.New("missing required configuration")

	// ErrPartnerAPI is returned when the payment partner rejects a request or the
	// network layer fails while talking to it
	ErrPartnerAPI = errors.New("payment partner request failed")

	// ErrCallback is returned for malformed or unmatched partner callback payloads
	ErrCallback = errors.New("invalid partner callback")

	// ErrDuplicateCallback is returned when a terminal status transition finds
	// the transaction already finalized by an earlier delivery
	ErrDuplicateCallback = errors.New("duplicate callback delivery")

	// ErrTransactionNotFound is returned when the requested donation transaction doesn't exist
	ErrTransactionNotFound = errors.New("donation transaction not found")

	// ErrSupporterNotFound is returned when an update targets a missing supporter row
	ErrSupporterNotFound = errors.New("supporter not found")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors.
// The mapping is total: anything unrecognized is an internal server error.
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidPhone):
		return CodeInvalidPhone
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidName):
		return CodeInvalidName
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrDuplicateCallback):
		return CodeDuplicateCallback
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrSupporterNotFound):
		return CodeSupporterNotFound
	case errors.Is(err, ErrConfiguration):
		return CodeConfiguration
	case errors.Is(err, ErrPartnerAPI):
		return CodePartnerAPI
	case errors.Is(err, ErrCallback):
		return CodeCallback
	default:
		return CodeInternalServer
	}
}

// PartnerAPIError carries the partner's response code and description for a
// rejected or failed Daraja request
type PartnerAPIError struct {
	ResponseCode string
	Description  string
	Err          error
}

// Error implements the error interface
func (e *PartnerAPIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("partner API error (code %s): %s: %v", e.ResponseCode, e.Description, e.Err)
	}
	return fmt.Sprintf("partner API error (code %s): %s", e.ResponseCode, e.Description)
}

// Is checks if the target error is an ErrPartnerAPI
func (e *PartnerAPIError) Is(target error) bool {
	return target == ErrPartnerAPI
}

// Unwrap returns the underlying error
func (e *PartnerAPIError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PartnerAPIError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":    "partner_api_error",
		"response_code": e.ResponseCode,
		"description":   e.Description,
		"error_code":    CodePartnerAPI,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewPartnerAPIError creates a detailed partner API error
func NewPartnerAPIError(responseCode, description string, err error) error {
	return &PartnerAPIError{
		ResponseCode: responseCode,
		Description:  description,
		Err:          err,
	}
}

// CallbackErrorKind distinguishes why a partner callback could not be processed
type CallbackErrorKind string

const (
	// CallbackMalformed means the envelope was missing required fields
	CallbackMalformed CallbackErrorKind = "malformed"
	// CallbackUnmatched means no transaction matched the checkout request id
	CallbackUnmatched CallbackErrorKind = "unmatched"
)

// CallbackError carries details about a callback that could not be reconciled.
// The webhook boundary still acknowledges the partner with HTTP 200; the kind
// lets the caller log unmatched payloads distinctly from malformed ones.
type CallbackError struct {
	Kind              CallbackErrorKind
	CheckoutRequestID string
	Reason            string
}

// Error implements the error interface
func (e *CallbackError) Error() string {
	if e.CheckoutRequestID != "" {
		return fmt.Sprintf("%s callback (checkout request %s): %s", e.Kind, e.CheckoutRequestID, e.Reason)
	}
	return fmt.Sprintf("%s callback: %s", e.Kind, e.Reason)
}

// Is checks if the target error is an ErrCallback
func (e *CallbackError) Is(target error) bool {
	return target == ErrCallback
}

// LogFields returns a map of fields for structured logging
func (e *CallbackError) LogFields() map[string]any {
	return map[string]any{
		"error_type":          "callback_error",
		"kind":                string(e.Kind),
		"checkout_request_id": e.CheckoutRequestID,
		"reason":              e.Reason,
		"error_code":          CodeCallback,
	}
}

// NewCallbackError creates a detailed callback error
func NewCallbackError(kind CallbackErrorKind, checkoutRequestID, reason string) error {
	return &CallbackError{
		Kind:              kind,
		CheckoutRequestID: checkoutRequestID,
		Reason:            reason,
	}
}

// IsCallbackUnmatched reports whether the error is a callback lookup miss
func IsCallbackUnmatched(err error) bool {
	var cbErr *CallbackError
	if errors.As(err, &cbErr) {
		return cbErr.Kind == CallbackUnmatched
	}
	return false
}

// IsPartnerAPIError checks if the error came from the payment partner layer
func IsPartnerAPIError(err error) bool {
	return errors.Is(err, ErrPartnerAPI)
}

// IsCallbackError checks if the error is a callback processing error
func IsCallbackError(err error) bool {
	return errors.Is(err, ErrCallback)
}

// IsSupporterNotFoundError checks if the error is a supporter not found error
func IsSupporterNotFoundError(err error) bool {
	return errors.Is(err, ErrSupporterNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrSupporterNotFound)
}
