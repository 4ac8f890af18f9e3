package handler

import (
	"net/http"

	domainerr "github.com/upendo-clinic/donation-ledger/internal/domain/error"
)

// httpStatusFor maps a domain error to the HTTP status of the response.
// Validation failures are the client's fault, partner rejections surface as
// bad gateway, everything unrecognized is an internal error.
func httpStatusFor(err error) int {
	switch domainerr.ErrorCode(err) {
	case domainerr.CodeInvalidPhone,
		domainerr.CodeInvalidAmount,
		domainerr.CodeInvalidName,
		domainerr.CodeInvalidRequest:
		return http.StatusBadRequest
	case domainerr.CodeTransactionNotFound,
		domainerr.CodeSupporterNotFound:
		return http.StatusNotFound
	case domainerr.CodeDuplicateCallback:
		return http.StatusConflict
	case domainerr.CodePartnerAPI:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
