package entity

import (
	"fmt"
	"strings"

	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
)

// CountryPrefix is the Kenyan international dialing prefix
const CountryPrefix = "254"

// MSISDNLength is the canonical length of a normalized Kenyan MSISDN
const MSISDNLength = 12

// NormalizeMSISDN converts an arbitrary phone string into the canonical
// 12-digit 254-prefixed MSISDN the payment partner requires.
//
// The shape rules are applied in order: an exact 12-digit 254 number is
// accepted as-is, a 10-digit 0-prefixed number has its leading zero replaced,
// a bare 9-digit subscriber number starting with 7 or 1 gets the prefix
// prepended, and an over-long 254 number is truncated to 12 digits.
// The ordering matters: a 9-digit local number must never be confused with
// a truncated long-prefixed number.
func NormalizeMSISDN(raw string) (string, error) {
	var sb strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	digits := sb.String()

	switch {
	case strings.HasPrefix(digits, CountryPrefix) && len(digits) == MSISDNLength:
		return digits, nil
	case strings.HasPrefix(digits, "0") && len(digits) == 10:
		return CountryPrefix + digits[1:], nil
	case (strings.HasPrefix(digits, "7") || strings.HasPrefix(digits, "1")) && len(digits) == 9:
		return CountryPrefix + digits, nil
	case strings.HasPrefix(digits, CountryPrefix) && len(digits) > MSISDNLength:
		return digits[:MSISDNLength], nil
	}

	return "", fmt.Errorf("%w: unrecognized format %q", errs.ErrInvalidPhone, raw)
}
