package donation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/upendo-clinic/donation-ledger/internal/domain/entity"
	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
	supporterUseCase "github.com/upendo-clinic/donation-ledger/internal/domain/usecase/supporter"
	coremocks "github.com/upendo-clinic/donation-ledger/mocks/port/core"
	paymentmocks "github.com/upendo-clinic/donation-ledger/mocks/port/payment"
	persistencemocks "github.com/upendo-clinic/donation-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func successCallbackPayload(checkoutRequestID string, amount float64, receipt string) []byte {
	return []byte(fmt.Sprintf(`{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "mr-1",
				"CheckoutRequestID": %q,
				"ResultCode": 0,
				"ResultDesc": "The service request is processed successfully.",
				"CallbackMetadata": {
					"Item": [
						{"Name": "Amount", "Value": %v},
						{"Name": "MpesaReceiptNumber", "Value": %q},
						{"Name": "TransactionDate", "Value": 20250615100000},
						{"Name": "PhoneNumber", "Value": 254712345678}
					]
				}
			}
		}
	}`, checkoutRequestID, amount, receipt))
}

func failureCallbackPayload(checkoutRequestID string) []byte {
	return []byte(fmt.Sprintf(`{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "mr-1",
				"CheckoutRequestID": %q,
				"ResultCode": 1032,
				"ResultDesc": "Request cancelled by user"
			}
		}
	}`, checkoutRequestID))
}

type callbackFixture struct {
	service       *Service
	donationRepo  *persistencemocks.MockDonationRepository
	supporterRepo *persistencemocks.MockSupporterRepository
	timeProvider  *coremocks.MockTimeProvider
}

func newCallbackFixture(t *testing.T) *callbackFixture {
	fixedTime := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	mockDonationRepo := persistencemocks.NewMockDonationRepository(t)
	mockSupporterRepo := persistencemocks.NewMockSupporterRepository(t)
	mockGateway := paymentmocks.NewMockGateway(t)

	supporterService := supporterUseCase.NewService(mockSupporterRepo, mockTime, mockLogger)
	service := NewService(mockDonationRepo, supporterService, mockGateway, mockTime, mockLogger)

	return &callbackFixture{
		service:       service,
		donationRepo:  mockDonationRepo,
		supporterRepo: mockSupporterRepo,
		timeProvider:  mockTime,
	}
}

func pendingTransaction(checkoutRequestID string) *entity.DonationTransaction {
	return &entity.DonationTransaction{
		ID:                "txn-1",
		RawPhone:          "0712345678",
		MSISDN:            "254712345678",
		Amount:            500,
		FirstName:         "Amina",
		AccountReference:  "AMINA",
		Status:            entity.StatusPending,
		MerchantRequestID: "mr-1",
		CheckoutRequestID: checkoutRequestID,
	}
}

func TestProcessCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful callback records payment and updates ledger", func(t *testing.T) {
		f := newCallbackFixture(t)
		txn := pendingTransaction("ws_CO_123")

		f.donationRepo.EXPECT().GetByCheckoutRequestID(mock.Anything, "ws_CO_123").Return(txn, nil).Once()

		// Conditional success transition, then the supporter link
		f.donationRepo.EXPECT().UpdateIfPending(mock.Anything, mock.MatchedBy(func(u *entity.DonationTransaction) bool {
			return u.Status == entity.StatusSuccess && u.MpesaReceiptNumber == "RKT12345"
		})).Return(nil).Once()
		f.donationRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.DonationTransaction) bool {
			return u.Status == entity.StatusSuccess && u.SupporterID != nil
		})).Return(nil).Once()

		supporter := &entity.DonationSupporter{
			ID:             7,
			DisplayName:    "Amina",
			NormalizedName: "amina",
			TotalAmount:    500,
			DonationCount:  1,
			LastChannel:    entity.ChannelMpesa,
		}
		f.supporterRepo.EXPECT().ApplyContribution(mock.Anything, mock.MatchedBy(func(c *entity.Contribution) bool {
			return c.NormalizedName == "amina" &&
				c.Amount == 500 &&
				c.Channel == entity.ChannelMpesa &&
				c.Consent == entity.ConsentPending
		}), mock.Anything).Return(supporter, nil).Once()
		f.supporterRepo.EXPECT().List(mock.Anything).Return([]*entity.DonationSupporter{supporter}, nil).Once()

		outcome, err := f.service.ProcessCallback(ctx, successCallbackPayload("ws_CO_123", 500, "RKT12345"))

		require.NoError(t, err)
		assert.False(t, outcome.AlreadyProcessed)
		assert.Equal(t, entity.StatusSuccess, outcome.Transaction.Status)
		require.NotNil(t, outcome.Transaction.SupporterID)
		assert.Equal(t, uint64(7), *outcome.Transaction.SupporterID)
		assert.Equal(t, supporter, outcome.Supporter)
		require.NotNil(t, outcome.Totals)
		assert.Equal(t, int64(500), outcome.Totals.TotalAmount)
	})

	t.Run("Redelivered callback for successful transaction touches nothing", func(t *testing.T) {
		f := newCallbackFixture(t)
		txn := pendingTransaction("ws_CO_123")
		txn.Status = entity.StatusSuccess
		txn.MpesaReceiptNumber = "RKT12345"

		f.donationRepo.EXPECT().GetByCheckoutRequestID(mock.Anything, "ws_CO_123").Return(txn, nil).Once()

		outcome, err := f.service.ProcessCallback(ctx, successCallbackPayload("ws_CO_123", 500, "RKT12345"))

		require.NoError(t, err)
		assert.True(t, outcome.AlreadyProcessed)
		// No Update, ApplyContribution or List calls were registered; the
		// mocks would fail the test on any unexpected call
	})

	t.Run("Failed callback terminalizes without ledger interaction", func(t *testing.T) {
		f := newCallbackFixture(t)
		txn := pendingTransaction("ws_CO_123")

		f.donationRepo.EXPECT().GetByCheckoutRequestID(mock.Anything, "ws_CO_123").Return(txn, nil).Once()
		f.donationRepo.EXPECT().UpdateIfPending(mock.Anything, mock.MatchedBy(func(u *entity.DonationTransaction) bool {
			return u.Status == entity.StatusFailed &&
				u.FailureReason == "Request cancelled by user" &&
				u.ResultCode != nil && *u.ResultCode == 1032
		})).Return(nil).Once()

		outcome, err := f.service.ProcessCallback(ctx, failureCallbackPayload("ws_CO_123"))

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, outcome.Transaction.Status)
		assert.Nil(t, outcome.Supporter)
	})

	t.Run("Unmatched checkout request id yields an unmatched callback error", func(t *testing.T) {
		f := newCallbackFixture(t)

		f.donationRepo.EXPECT().GetByCheckoutRequestID(mock.Anything, "ws_CO_unknown").
			Return(nil, errs.ErrTransactionNotFound).Once()

		outcome, err := f.service.ProcessCallback(ctx, successCallbackPayload("ws_CO_unknown", 500, "RKT12345"))

		assert.Nil(t, outcome)
		assert.True(t, errs.IsCallbackUnmatched(err))
	})

	t.Run("Malformed payload rejected before any lookup", func(t *testing.T) {
		f := newCallbackFixture(t)

		outcome, err := f.service.ProcessCallback(ctx, []byte(`{"Body":{}}`))

		assert.Nil(t, outcome)
		assert.True(t, errs.IsCallbackError(err))
		assert.False(t, errs.IsCallbackUnmatched(err))
	})

	t.Run("Missing amount metadata falls back to the requested amount", func(t *testing.T) {
		f := newCallbackFixture(t)
		txn := pendingTransaction("ws_CO_123")

		payload := []byte(`{
			"Body": {
				"stkCallback": {
					"MerchantRequestID": "mr-1",
					"CheckoutRequestID": "ws_CO_123",
					"ResultCode": 0,
					"ResultDesc": "Processed",
					"CallbackMetadata": {
						"Item": [
							{"Name": "MpesaReceiptNumber", "Value": "RKT99"}
						]
					}
				}
			}
		}`)

		f.donationRepo.EXPECT().GetByCheckoutRequestID(mock.Anything, "ws_CO_123").Return(txn, nil).Once()
		f.donationRepo.EXPECT().UpdateIfPending(mock.Anything, mock.Anything).Return(nil).Once()
		f.donationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		supporter := &entity.DonationSupporter{ID: 7, NormalizedName: "amina", TotalAmount: 500, DonationCount: 1}
		f.supporterRepo.EXPECT().ApplyContribution(mock.Anything, mock.MatchedBy(func(c *entity.Contribution) bool {
			return c.Amount == 500
		}), mock.Anything).Return(supporter, nil).Once()
		f.supporterRepo.EXPECT().List(mock.Anything).Return([]*entity.DonationSupporter{supporter}, nil).Once()

		outcome, err := f.service.ProcessCallback(ctx, payload)

		require.NoError(t, err)
		assert.Equal(t, "RKT99", outcome.Transaction.MpesaReceiptNumber)
	})

	t.Run("Ledger failure keeps success status and surfaces the error", func(t *testing.T) {
		f := newCallbackFixture(t)
		txn := pendingTransaction("ws_CO_123")

		f.donationRepo.EXPECT().GetByCheckoutRequestID(mock.Anything, "ws_CO_123").Return(txn, nil).Once()
		// Conditional success transition, then the failure-reason capture
		f.donationRepo.EXPECT().UpdateIfPending(mock.Anything, mock.Anything).Return(nil).Once()
		f.donationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.supporterRepo.EXPECT().ApplyContribution(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrDatabaseConnection).Once()

		outcome, err := f.service.ProcessCallback(ctx, successCallbackPayload("ws_CO_123", 500, "RKT12345"))

		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		// The payment stays recorded as successful
		assert.Equal(t, entity.StatusSuccess, txn.Status)
		assert.Contains(t, txn.FailureReason, "supporter ledger recording failed")
		// The reason was captured through the entity, so the row's
		// modification time moved with it
		assert.Equal(t, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC), txn.UpdatedAt)
	})

	t.Run("Concurrent deliveries apply the ledger exactly once", func(t *testing.T) {
		f := newCallbackFixture(t)

		// Both deliveries read the row while it is still pending; the
		// conditional update decides the winner at the database.
		f.donationRepo.EXPECT().GetByCheckoutRequestID(mock.Anything, "ws_CO_123").
			RunAndReturn(func(context.Context, string) (*entity.DonationTransaction, error) {
				return pendingTransaction("ws_CO_123"), nil
			}).Twice()
		f.donationRepo.EXPECT().UpdateIfPending(mock.Anything, mock.Anything).Return(nil).Once()
		f.donationRepo.EXPECT().UpdateIfPending(mock.Anything, mock.Anything).Return(errs.ErrDuplicateCallback).Once()
		f.donationRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		supporter := &entity.DonationSupporter{ID: 7, NormalizedName: "amina", TotalAmount: 500, DonationCount: 1}
		f.supporterRepo.EXPECT().ApplyContribution(mock.Anything, mock.Anything, mock.Anything).
			Return(supporter, nil).Once()
		f.supporterRepo.EXPECT().List(mock.Anything).Return([]*entity.DonationSupporter{supporter}, nil).Once()

		payload := successCallbackPayload("ws_CO_123", 500, "RKT12345")

		first, err := f.service.ProcessCallback(ctx, payload)
		require.NoError(t, err)
		assert.False(t, first.AlreadyProcessed)

		second, err := f.service.ProcessCallback(ctx, payload)
		require.NoError(t, err)
		assert.True(t, second.AlreadyProcessed)
		assert.Nil(t, second.Supporter)

		// ApplyContribution was registered Once; a second ledger write
		// would have failed the mock expectations
		f.supporterRepo.AssertNumberOfCalls(t, "ApplyContribution", 1)
	})

	t.Run("Losing the race on a failure callback only acknowledges", func(t *testing.T) {
		f := newCallbackFixture(t)
		txn := pendingTransaction("ws_CO_123")

		f.donationRepo.EXPECT().GetByCheckoutRequestID(mock.Anything, "ws_CO_123").Return(txn, nil).Once()
		f.donationRepo.EXPECT().UpdateIfPending(mock.Anything, mock.Anything).Return(errs.ErrDuplicateCallback).Once()

		outcome, err := f.service.ProcessCallback(ctx, failureCallbackPayload("ws_CO_123"))

		require.NoError(t, err)
		assert.True(t, outcome.AlreadyProcessed)
	})
}
