package model

import (
	"time"
)

// DonationSupporter represents the database model for the supporter ledger.
// The normalized name carries the unique index that the atomic
// upsert-with-increment conflicts on.
type DonationSupporter struct {
	ID                    uint64    `gorm:"primaryKey;autoIncrement"`
	DisplayName           string    `gorm:"not null;size:100"`
	NormalizedName        string    `gorm:"uniqueIndex;not null;size:100"`
	TotalAmount           int64     `gorm:"not null;default:0"`
	DonationCount         uint64    `gorm:"not null;default:0"`
	LastChannel           string    `gorm:"not null;size:20"`
	LastContributionAt    time.Time `gorm:"not null"`
	PublicAcknowledgement bool      `gorm:"not null;default:false"`
	CreatedAt             time.Time `gorm:"not null"`
	UpdatedAt             time.Time `gorm:"not null"`
}

// TableName specifies the table name for DonationSupporter
func (DonationSupporter) TableName() string {
	return "donation_supporters"
}
