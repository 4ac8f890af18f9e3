package entity

import (
	"math"
	"testing"

	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	t.Run("Valid amounts rounded to whole units", func(t *testing.T) {
		testCases := []struct {
			name     string
			input    float64
			expected int64
		}{
			{"Whole number", 100, 100},
			{"Rounds down", 100.4, 100},
			{"Rounds up", 100.5, 101},
			{"Minimum donation", 1, 1},
			{"Fraction above half rounds to one", 0.6, 1},
			{"Large amount", 1000000, 1000000},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := ValidateAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			name  string
			input float64
		}{
			{"Zero", 0},
			{"Negative", -50},
			{"Rounds to zero", 0.4},
			{"NaN", math.NaN()},
			{"Positive infinity", math.Inf(1)},
			{"Negative infinity", math.Inf(-1)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := ValidateAmount(tc.input)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
				assert.Zero(t, got)
			})
		}
	})
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, int64(500), RoundAmount(500.0))
	assert.Equal(t, int64(500), RoundAmount(499.5))
	assert.Equal(t, int64(499), RoundAmount(499.4))
}
