package donation

import (
	"encoding/json"

	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
)

// The partner posts a deeply nested envelope with an array of name/value
// pairs as metadata. The parser validates the required fields up front and
// builds a typed mapping, so the reconciler never deals with optional
// chaining over raw JSON.

// metadataItem is one entry of the partner's CallbackMetadata array
type metadataItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value,omitempty"`
}

// stkCallback is the partner's result object for one processed push request
type stkCallback struct {
	MerchantRequestID string `json:"MerchantRequestID"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResultCode        int    `json:"ResultCode"`
	ResultDesc        string `json:"ResultDesc"`
	CallbackMetadata  struct {
		Item []metadataItem `json:"Item"`
	} `json:"CallbackMetadata"`
}

// callbackEnvelope is the partner's outer callback wrapper
type callbackEnvelope struct {
	Body struct {
		STKCallback *stkCallback `json:"stkCallback"`
	} `json:"Body"`
}

// Metadata item names of interest
const (
	metadataAmount        = "Amount"
	metadataReceiptNumber = "MpesaReceiptNumber"
)

// CallbackResult is the validated, typed view of a partner callback
type CallbackResult struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	ReceiptNumber     string
	PaidAmount        *float64 // nil when the partner omitted the amount
	RawMetadata       string   // re-serialized metadata items, kept for audit
}

// IsSuccess reports whether the partner result code signals a completed payment
func (r *CallbackResult) IsSuccess() bool {
	return r.ResultCode == 0
}

// ParseCallback validates the partner's callback envelope and extracts the
// fields the reconciler needs. Fails with a malformed CallbackError when the
// nested result object or the checkout request id is absent.
func ParseCallback(payload []byte) (*CallbackResult, error) {
	var envelope callbackEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, errs.NewCallbackError(errs.CallbackMalformed, "", "invalid JSON payload: "+err.Error())
	}

	cb := envelope.Body.STKCallback
	if cb == nil {
		return nil, errs.NewCallbackError(errs.CallbackMalformed, "", "missing Body.stkCallback result object")
	}
	if cb.CheckoutRequestID == "" {
		return nil, errs.NewCallbackError(errs.CallbackMalformed, "", "missing CheckoutRequestID")
	}

	result := &CallbackResult{
		MerchantRequestID: cb.MerchantRequestID,
		CheckoutRequestID: cb.CheckoutRequestID,
		ResultCode:        cb.ResultCode,
		ResultDesc:        cb.ResultDesc,
	}

	for _, item := range cb.CallbackMetadata.Item {
		switch item.Name {
		case metadataReceiptNumber:
			if receipt, ok := item.Value.(string); ok {
				result.ReceiptNumber = receipt
			}
		case metadataAmount:
			if amount, ok := item.Value.(float64); ok {
				paid := amount
				result.PaidAmount = &paid
			}
		}
	}

	if len(cb.CallbackMetadata.Item) > 0 {
		if raw, err := json.Marshal(cb.CallbackMetadata.Item); err == nil {
			result.RawMetadata = string(raw)
		}
	}

	return result, nil
}
