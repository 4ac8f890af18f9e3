package entity

import (
	"fmt"
	"time"

	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
)

// Channel identifies how a contribution was collected
type Channel string

// Contribution channels
const (
	ChannelMpesa     Channel = "M-Pesa"
	ChannelPaypal    Channel = "PayPal"
	ChannelCashOther Channel = "Cash/Other"
)

// IsValidChannel validates if the channel is one of the fixed enumeration
func IsValidChannel(channel string) bool {
	return channel == string(ChannelMpesa) ||
		channel == string(ChannelPaypal) ||
		channel == string(ChannelCashOther)
}

// ShareConsent is a donor's choice about being listed publicly as a supporter
type ShareConsent string

// Share consent values. Pending means the donor has not been asked yet and
// must leave any existing acknowledgement flag untouched.
const (
	ConsentGranted  ShareConsent = "granted"
	ConsentDeclined ShareConsent = "declined"
	ConsentPending  ShareConsent = "pending"
)

// IsValidConsent validates if the consent value is recognized
func IsValidConsent(consent string) bool {
	return consent == string(ConsentGranted) ||
		consent == string(ConsentDeclined) ||
		consent == string(ConsentPending)
}

// IsExplicit reports whether the consent should overwrite the stored flag
func (c ShareConsent) IsExplicit() bool {
	return c == ConsentGranted || c == ConsentDeclined
}

// DonationSupporter is the aggregate ledger row for one normalized donor
// identity. Totals only increase; rows are never deleted.
type DonationSupporter struct {
	ID                    uint64
	DisplayName           string // Sanitized, title-cased
	NormalizedName        string // Globally unique dedup key
	TotalAmount           int64
	DonationCount         uint64
	LastChannel           Channel
	LastContributionAt    time.Time
	PublicAcknowledgement bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Contribution is a validated, normalized contribution ready to be applied
// to the supporter ledger
type Contribution struct {
	DisplayName    string
	NormalizedName string
	Amount         int64
	Channel        Channel
	Consent        ShareConsent
}

// NewContribution sanitizes and validates a raw contribution. The amount is
// rounded to the nearest whole unit; the normalized name is the dedup key.
func NewContribution(firstName string, amount float64, channel Channel, consent ShareConsent) (*Contribution, error) {
	displayName, err := SanitizeDisplayName(firstName)
	if err != nil {
		return nil, err
	}

	normalizedName, err := NormalizeNameKey(displayName)
	if err != nil {
		return nil, err
	}

	if !IsValidChannel(string(channel)) {
		return nil, fmt.Errorf("%w: unknown channel %q", errs.ErrInvalidRequest, channel)
	}

	if consent == "" {
		consent = ConsentPending
	}
	if !IsValidConsent(string(consent)) {
		return nil, fmt.Errorf("%w: unknown share consent %q", errs.ErrInvalidRequest, consent)
	}

	rounded, err := ValidateAmount(amount)
	if err != nil {
		return nil, err
	}

	return &Contribution{
		DisplayName:    displayName,
		NormalizedName: normalizedName,
		Amount:         rounded,
		Channel:        channel,
		Consent:        consent,
	}, nil
}
