package model

import (
	"time"
)

// DonationTransaction represents the database model for donation payment
// attempts. Nullable partner fields are pointers: the correlation ids only
// exist once the partner has responded, and the checkout request id carries
// a unique index that must not collide on still-pending rows.
type DonationTransaction struct {
	ID                 string    `gorm:"primaryKey;size:36"`
	RawPhone           string    `gorm:"not null;size:50"`
	MSISDN             string    `gorm:"not null;size:12;index"`
	Amount             int64     `gorm:"not null"`
	FirstName          string    `gorm:"not null;size:100"`
	AccountReference   string    `gorm:"not null;size:12"`
	Status             string    `gorm:"not null;size:20;index"`
	MerchantRequestID  *string   `gorm:"size:100"`
	CheckoutRequestID  *string   `gorm:"uniqueIndex;size:100"`
	ResultCode         *int
	ResultDescription  string    `gorm:"size:255"`
	MpesaReceiptNumber string    `gorm:"size:50"`
	FailureReason      string    `gorm:"type:text"`
	CallbackPayload    string    `gorm:"type:text"`
	SupporterID        *uint64   `gorm:"index"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for DonationTransaction
func (DonationTransaction) TableName() string {
	return "donation_transactions"
}
