package entity

import (
	"testing"

	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMSISDN(t *testing.T) {
	t.Run("Accepted shapes", func(t *testing.T) {
		testCases := []struct {
			name     string
			input    string
			expected string
		}{
			{"Canonical 254 number", "254712345678", "254712345678"},
			{"Local 07 number", "0712345678", "254712345678"},
			{"Local 01 number", "0112345678", "254112345678"},
			{"Bare subscriber number starting with 7", "712345678", "254712345678"},
			{"Bare subscriber number starting with 1", "112345678", "254112345678"},
			{"Plus prefix", "+254712345678", "254712345678"},
			{"Spaces and dashes", "0712 345-678", "254712345678"},
			{"Parentheses", "(0712) 345678", "254712345678"},
			{"Overlong 254 number truncated", "2547123456789", "254712345678"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				msisdn, err := NormalizeMSISDN(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, msisdn)
				assert.Len(t, msisdn, MSISDNLength)
			})
		}
	})

	t.Run("Rejected shapes", func(t *testing.T) {
		testCases := []struct {
			name  string
			input string
		}{
			{"Empty string", ""},
			{"Letters only", "not a phone"},
			{"Too short local number", "07123"},
			{"Nine digits not starting with 7 or 1", "812345678"},
			{"Eleven digit 254 number", "25471234567"},
			{"Ten digits without leading zero", "7123456789"},
			{"Foreign prefix", "255712345678"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				msisdn, err := NormalizeMSISDN(tc.input)
				assert.ErrorIs(t, err, errs.ErrInvalidPhone)
				assert.Empty(t, msisdn)
			})
		}
	})

	t.Run("Normalization is idempotent", func(t *testing.T) {
		once, err := NormalizeMSISDN("0712345678")
		require.NoError(t, err)

		twice, err := NormalizeMSISDN(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})
}
