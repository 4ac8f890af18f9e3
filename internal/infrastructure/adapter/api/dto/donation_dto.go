package dto

// DonationRequest represents the API request for starting an M-Pesa donation
type DonationRequest struct {
	Phone            string  `json:"phone" binding:"required"`
	Amount           float64 `json:"amount" binding:"required"`
	FirstName        string  `json:"firstName" binding:"required"`
	AccountReference string  `json:"accountReference"`
	TransactionDesc  string  `json:"transactionDesc"`
}

// DonationResponse is returned once the partner accepted the push request.
// The payment itself is still pending at this point.
type DonationResponse struct {
	TransactionID     string `json:"transactionId"`
	Status            string `json:"status"`
	MerchantRequestID string `json:"merchantRequestId,omitempty"`
	CheckoutRequestID string `json:"checkoutRequestId,omitempty"`
	CustomerMessage   string `json:"customerMessage,omitempty"`
}

// DonationStatusResponse is the polling view of one donation attempt. The
// supporter and totals blocks appear only after a confirmed payment has
// been recorded on the ledger.
type DonationStatusResponse struct {
	TransactionID      string `json:"transactionId"`
	Status             string `json:"status"`
	Amount             int64  `json:"amount"`
	FirstName          string `json:"firstName"`
	ResultDescription  string `json:"resultDescription,omitempty"`
	FailureReason      string `json:"failureReason,omitempty"`
	MpesaReceiptNumber string `json:"mpesaReceiptNumber,omitempty"`
	MerchantRequestID  string `json:"merchantRequestId,omitempty"`
	CheckoutRequestID  string `json:"checkoutRequestId,omitempty"`

	Supporter           *SupporterResponse `json:"supporter,omitempty"`
	Totals              *OverviewResponse  `json:"totals,omitempty"`
	RecentNewSupporters []TrendPointDTO    `json:"recentNewSupporters,omitempty"`
}

// CallbackAck is the acknowledgement body returned to the partner for every
// callback delivery, successful or not
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}
