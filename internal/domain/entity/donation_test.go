package entity

import (
	"testing"
	"time"

	coremocks "github.com/upendo-clinic/donation-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationTransactionLifecycle(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	newTxn := func() *DonationTransaction {
		return NewDonationTransaction("txn-1", "0712 345 678", "254712345678", 500, "Amina", "AMINA", mockTime)
	}

	t.Run("New transaction starts pending", func(t *testing.T) {
		txn := newTxn()

		assert.Equal(t, StatusPending, txn.Status)
		assert.False(t, txn.IsTerminal())
		assert.Empty(t, txn.MerchantRequestID)
		assert.Empty(t, txn.CheckoutRequestID)
		assert.Nil(t, txn.ResultCode)
		assert.Nil(t, txn.SupporterID)
		assert.Equal(t, fixedTime, txn.CreatedAt)
	})

	t.Run("Partner acceptance keeps transaction pending", func(t *testing.T) {
		txn := newTxn()
		txn.RecordPartnerAcceptance("mr-1", "ws_CO_123", mockTime)

		assert.Equal(t, StatusPending, txn.Status)
		assert.Equal(t, "mr-1", txn.MerchantRequestID)
		assert.Equal(t, "ws_CO_123", txn.CheckoutRequestID)
	})

	t.Run("MarkFailed is terminal and keeps the reason", func(t *testing.T) {
		txn := newTxn()
		txn.MarkFailed("insufficient funds", mockTime)

		assert.Equal(t, StatusFailed, txn.Status)
		assert.True(t, txn.IsTerminal())
		assert.Equal(t, "insufficient funds", txn.FailureReason)
	})

	t.Run("MarkSuccess records the receipt", func(t *testing.T) {
		txn := newTxn()
		txn.MarkSuccess("RKT12345", mockTime)

		assert.Equal(t, StatusSuccess, txn.Status)
		assert.True(t, txn.IsTerminal())
		assert.Equal(t, "RKT12345", txn.MpesaReceiptNumber)
	})

	t.Run("RecordLedgerFailure keeps success and notes the reason", func(t *testing.T) {
		txn := newTxn()
		txn.MarkSuccess("RKT12345", mockTime)
		txn.RecordLedgerFailure("supporter ledger recording failed: boom", mockTime)

		assert.Equal(t, StatusSuccess, txn.Status)
		assert.Equal(t, "supporter ledger recording failed: boom", txn.FailureReason)
		assert.Equal(t, fixedTime, txn.UpdatedAt)
	})

	t.Run("RecordCallbackResult captures code and metadata", func(t *testing.T) {
		txn := newTxn()
		txn.RecordCallbackResult(1032, "Request cancelled by user", `[{"Name":"Amount","Value":500}]`, mockTime)

		require.NotNil(t, txn.ResultCode)
		assert.Equal(t, 1032, *txn.ResultCode)
		assert.Equal(t, "Request cancelled by user", txn.ResultDescription)
		assert.NotEmpty(t, txn.CallbackPayload)
	})

	t.Run("LinkSupporter sets the ledger reference", func(t *testing.T) {
		txn := newTxn()
		txn.LinkSupporter(42, mockTime)

		require.NotNil(t, txn.SupporterID)
		assert.Equal(t, uint64(42), *txn.SupporterID)
	})
}

func TestDeriveAccountReference(t *testing.T) {
	testCases := []struct {
		name      string
		explicit  string
		firstName string
		expected  string
	}{
		{"Explicit reference wins", "WARD-7", "Amina", "WARD7"},
		{"Falls back to first name", "", "Amina", "AMINA"},
		{"Lowercase is uppercased", "ward7", "", "WARD7"},
		{"Truncated to twelve characters", "CHILDRENSWARDSEVEN", "", "CHILDRENSWAR"},
		{"Default when nothing usable", "", "", "DONATION"},
		{"Symbols-only explicit falls through", "!!!", "Amina", "AMINA"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveAccountReference(tc.explicit, tc.firstName)
			assert.Equal(t, tc.expected, got)
			assert.LessOrEqual(t, len(got), MaxAccountReferenceLength)
		})
	}
}
