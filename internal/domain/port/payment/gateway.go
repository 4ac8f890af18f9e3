package payment

import (
	"context"
)

// STKPushRequest is the domain view of a push-payment prompt request.
// The MSISDN is used as both payer and contact number.
type STKPushRequest struct {
	MSISDN           string
	Amount           int64
	AccountReference string
	TransactionDesc  string
}

// STKPushResult carries the partner-issued correlation identifiers returned
// at push-initiation time and echoed back in the asynchronous callback
type STKPushResult struct {
	MerchantRequestID   string
	CheckoutRequestID   string
	ResponseCode        string
	ResponseDescription string
	CustomerMessage     string
}

// Gateway abstracts the outbound payment partner integration. An accepted
// request only means the prompt was sent; the outcome arrives later through
// the partner's callback.
type Gateway interface {
	// InitiateSTKPush requests a push-payment prompt on the payer's phone
	//
	// Possible errors:
	// - ErrConfiguration: If required partner credentials are missing
	// - ErrPartnerAPI: If the partner rejected the request or the network
	//   layer failed (carries the partner response code when available)
	InitiateSTKPush(ctx context.Context, req STKPushRequest) (*STKPushResult, error)
}
