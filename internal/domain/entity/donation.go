package entity

import (
	"strings"
	"time"

	coreport "github.com/upendo-clinic/donation-ledger/internal/domain/port/core"
)

// DonationStatus represents the lifecycle state of a donation transaction
type DonationStatus string

// Donation statuses. A transaction starts pending and transitions at most
// once to a terminal state.
const (
	StatusPending DonationStatus = "pending"
	StatusSuccess DonationStatus = "success"
	StatusFailed  DonationStatus = "failed"
)

// DefaultAccountReference is used when neither an explicit reference nor a
// usable first name is available
const DefaultAccountReference = "DONATION"

// MaxAccountReferenceLength is the partner's limit for the account reference
// shown in the STK prompt
const MaxAccountReferenceLength = 12

// DonationTransaction represents one payment attempt through the partner.
// Rows are never deleted; failed attempts stay on record with their reason.
type DonationTransaction struct {
	ID                 string         // Opaque, stable identifier
	RawPhone           string         // Phone exactly as submitted
	MSISDN             string         // Normalized 254-prefixed number
	Amount             int64          // Whole currency units
	FirstName          string         // Sanitized, title-cased
	AccountReference   string         // Sanitized alphanumeric, max 12 chars
	Status             DonationStatus
	MerchantRequestID  string     // Partner correlation id, empty until partner responds
	CheckoutRequestID  string     // Partner correlation id, unique once set
	ResultCode         *int       // Partner result code from the callback
	ResultDescription  string
	MpesaReceiptNumber string     // Set only on success
	FailureReason      string
	CallbackPayload    string     // Raw callback metadata, kept for audit
	SupporterID        *uint64    // Linked only after a successful reconciliation
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewDonationTransaction creates a pending transaction. It is persisted
// before the partner is contacted, so a durable record exists even if the
// push request never completes.
func NewDonationTransaction(
	id string,
	rawPhone string,
	msisdn string,
	amount int64,
	firstName string,
	accountReference string,
	timeProvider coreport.TimeProvider,
) *DonationTransaction {
	now := timeProvider.Now()
	return &DonationTransaction{
		ID:               id,
		RawPhone:         rawPhone,
		MSISDN:           msisdn,
		Amount:           amount,
		FirstName:        firstName,
		AccountReference: accountReference,
		Status:           StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsTerminal reports whether the transaction has reached a final state
func (t *DonationTransaction) IsTerminal() bool {
	return t.Status == StatusSuccess || t.Status == StatusFailed
}

// RecordPartnerAcceptance stores the partner-issued correlation ids after a
// successful push initiation. The transaction stays pending until the
// asynchronous callback arrives.
func (t *DonationTransaction) RecordPartnerAcceptance(merchantRequestID, checkoutRequestID string, timeProvider coreport.TimeProvider) {
	t.MerchantRequestID = merchantRequestID
	t.CheckoutRequestID = checkoutRequestID
	t.UpdatedAt = timeProvider.Now()
}

// MarkFailed terminalizes the transaction with a failure reason. Used both by
// the initiator's compensating path and by failed-callback reconciliation.
func (t *DonationTransaction) MarkFailed(reason string, timeProvider coreport.TimeProvider) {
	t.Status = StatusFailed
	t.FailureReason = reason
	t.UpdatedAt = timeProvider.Now()
}

// MarkSuccess terminalizes the transaction with the partner's receipt
func (t *DonationTransaction) MarkSuccess(receiptNumber string, timeProvider coreport.TimeProvider) {
	t.Status = StatusSuccess
	t.MpesaReceiptNumber = receiptNumber
	t.UpdatedAt = timeProvider.Now()
}

// RecordLedgerFailure notes that the supporter ledger step failed after the
// payment itself succeeded. The success status is untouched; only the reason
// is kept for operators to reconcile.
func (t *DonationTransaction) RecordLedgerFailure(reason string, timeProvider coreport.TimeProvider) {
	t.FailureReason = reason
	t.UpdatedAt = timeProvider.Now()
}

// RecordCallbackResult captures the partner's result code and description
func (t *DonationTransaction) RecordCallbackResult(resultCode int, resultDescription, rawMetadata string, timeProvider coreport.TimeProvider) {
	code := resultCode
	t.ResultCode = &code
	t.ResultDescription = resultDescription
	t.CallbackPayload = rawMetadata
	t.UpdatedAt = timeProvider.Now()
}

// LinkSupporter associates the transaction with its ledger row.
// Only valid once the transaction has reached success.
func (t *DonationTransaction) LinkSupporter(supporterID uint64, timeProvider coreport.TimeProvider) {
	id := supporterID
	t.SupporterID = &id
	t.UpdatedAt = timeProvider.Now()
}

// DeriveAccountReference produces the reference shown in the STK prompt:
// the explicit value sanitized to uppercase alphanumerics, falling back to
// the sanitized first name, then to a fixed default.
func DeriveAccountReference(explicit, firstName string) string {
	if ref := sanitizeReference(explicit); ref != "" {
		return ref
	}
	if ref := sanitizeReference(firstName); ref != "" {
		return ref
	}
	return DefaultAccountReference
}

// sanitizeReference keeps uppercase alphanumerics and truncates to the
// partner's 12-character limit
func sanitizeReference(raw string) string {
	var sb strings.Builder
	count := 0
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			count++
		}
		if count >= MaxAccountReferenceLength {
			break
		}
	}
	return sb.String()
}
