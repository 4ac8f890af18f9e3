package donation

import (
	"context"
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

func newStatusFixture(t *testing.T) (*Service, *persistencemocks.MockDonationRepository, *persistencemocks.MockSupporterRepository) {
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

	return service, mockDonationRepo, mockSupporterRepo
}

func TestGetTransactionStatus(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Unknown transaction yields nil without error", func(t *testing.T) {
		service, mockRepo, _ := newStatusFixture(t)

		mockRepo.EXPECT().GetByID(mock.Anything, "missing").
			Return(nil, errs.ErrTransactionNotFound).Once()

		view, err := service.GetTransactionStatus(ctx, "missing")

		require.NoError(t, err)
		assert.Nil(t, view)
	})

	t.Run("Repository failure propagates", func(t *testing.T) {
		service, mockRepo, _ := newStatusFixture(t)

		mockRepo.EXPECT().GetByID(mock.Anything, "txn-1").
			Return(nil, errs.ErrDatabaseConnection).Once()

		view, err := service.GetTransactionStatus(ctx, "txn-1")

		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Pending transaction returns the bare view", func(t *testing.T) {
		service, mockRepo, mockSupporterRepo := newStatusFixture(t)

		mockRepo.EXPECT().GetByID(mock.Anything, "txn-1").Return(&entity.DonationTransaction{
			ID:        "txn-1",
			Status:    entity.StatusPending,
			Amount:    500,
			FirstName: "Amina",
		}, nil).Once()

		view, err := service.GetTransactionStatus(ctx, "txn-1")
		require.NoError(t, err)

		assert.Equal(t, entity.StatusPending, view.Status)
		assert.Equal(t, int64(500), view.Amount)
		assert.Nil(t, view.Supporter)
		assert.Nil(t, view.Totals)
		assert.Empty(t, view.RecentNewSupporters)
		mockSupporterRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Successful transaction is enriched with ledger data", func(t *testing.T) {
		service, mockRepo, mockSupporterRepo := newStatusFixture(t)

		supporterID := uint64(7)
		supporter := &entity.DonationSupporter{
			ID:             supporterID,
			DisplayName:    "Amina",
			NormalizedName: "amina",
			TotalAmount:    500,
			DonationCount:  1,
			CreatedAt:      fixedTime,
			UpdatedAt:      fixedTime,
		}

		mockRepo.EXPECT().GetByID(mock.Anything, "txn-1").Return(&entity.DonationTransaction{
			ID:                 "txn-1",
			Status:             entity.StatusSuccess,
			Amount:             500,
			FirstName:          "Amina",
			MpesaReceiptNumber: "NLJ7RT61SV",
			SupporterID:        &supporterID,
		}, nil).Once()
		mockSupporterRepo.EXPECT().GetByID(mock.Anything, supporterID).Return(supporter, nil).Once()
		mockSupporterRepo.EXPECT().List(mock.Anything).
			Return([]*entity.DonationSupporter{supporter}, nil).Once()

		view, err := service.GetTransactionStatus(ctx, "txn-1")
		require.NoError(t, err)

		assert.Equal(t, "NLJ7RT61SV", view.MpesaReceiptNumber)
		require.NotNil(t, view.Supporter)
		assert.Equal(t, supporterID, view.Supporter.ID)
		require.NotNil(t, view.Totals)
		assert.Equal(t, int64(500), view.Totals.TotalAmount)
		assert.Len(t, view.RecentNewSupporters, entity.TrendDays)
	})

	t.Run("Missing supporter row degrades the view instead of failing", func(t *testing.T) {
		service, mockRepo, mockSupporterRepo := newStatusFixture(t)

		supporterID := uint64(7)
		mockRepo.EXPECT().GetByID(mock.Anything, "txn-1").Return(&entity.DonationTransaction{
			ID:          "txn-1",
			Status:      entity.StatusSuccess,
			Amount:      500,
			SupporterID: &supporterID,
		}, nil).Once()
		mockSupporterRepo.EXPECT().GetByID(mock.Anything, supporterID).
			Return(nil, errs.ErrSupporterNotFound).Once()

		view, err := service.GetTransactionStatus(ctx, "txn-1")
		require.NoError(t, err)

		assert.Equal(t, entity.StatusSuccess, view.Status)
		assert.Nil(t, view.Supporter)
		assert.Nil(t, view.Totals)
	})
}
