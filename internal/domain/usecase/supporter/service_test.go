package supporter

import (
	"context"
	"testing"
	"time"

	"github.com/upendo-clinic/donation-ledger/internal/domain/entity"
	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
	coremocks "github.com/upendo-clinic/donation-ledger/mocks/port/core"
	persistencemocks "github.com/upendo-clinic/donation-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newServiceFixture(t *testing.T) (*Service, *persistencemocks.MockSupporterRepository) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixtureTime).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	mockRepo := persistencemocks.NewMockSupporterRepository(t)
	service := NewService(mockRepo, mockTime, mockLogger)

	return service, mockRepo
}

func aminaSnapshot() *entity.DonationSupporter {
	return &entity.DonationSupporter{
		ID:                 1,
		DisplayName:        "Amina",
		NormalizedName:     "amina",
		TotalAmount:        500,
		DonationCount:      1,
		LastChannel:        entity.ChannelMpesa,
		LastContributionAt: fixtureTime,
		CreatedAt:          fixtureTime,
		UpdatedAt:          fixtureTime,
	}
}

func TestRecordContribution(t *testing.T) {
	ctx := context.Background()

	t.Run("Sanitizes input before applying to the ledger", func(t *testing.T) {
		service, mockRepo := newServiceFixture(t)

		mockRepo.EXPECT().ApplyContribution(mock.Anything, mock.MatchedBy(func(c *entity.Contribution) bool {
			return c.DisplayName == "Amina" &&
				c.NormalizedName == "amina" &&
				c.Amount == 500 &&
				c.Channel == entity.ChannelMpesa &&
				c.Consent == entity.ConsentPending
		}), fixtureTime).Return(aminaSnapshot(), nil).Once()
		mockRepo.EXPECT().List(mock.Anything).
			Return([]*entity.DonationSupporter{aminaSnapshot()}, nil).Once()

		result, err := service.RecordContribution(ctx, "  AMINA  ", 500.4, entity.ChannelMpesa, entity.ConsentPending)
		require.NoError(t, err)

		assert.Equal(t, "Amina", result.Supporter.DisplayName)
		assert.Equal(t, int64(500), result.Supporter.TotalAmount)
		require.NotNil(t, result.Overview)
		assert.Equal(t, int64(500), result.Overview.TotalAmount)
		assert.Equal(t, 1, result.Overview.SupporterCount)
	})

	t.Run("Repeat contribution reflects accumulated totals", func(t *testing.T) {
		service, mockRepo := newServiceFixture(t)

		accumulated := aminaSnapshot()
		accumulated.TotalAmount = 2700
		accumulated.DonationCount = 2

		mockRepo.EXPECT().ApplyContribution(mock.Anything, mock.Anything, fixtureTime).
			Return(accumulated, nil).Once()
		mockRepo.EXPECT().List(mock.Anything).
			Return([]*entity.DonationSupporter{accumulated}, nil).Once()

		result, err := service.RecordContribution(ctx, "amina", 2200, entity.ChannelPaypal, entity.ConsentPending)
		require.NoError(t, err)

		assert.Equal(t, int64(2700), result.Supporter.TotalAmount)
		assert.Equal(t, uint64(2), result.Supporter.DonationCount)
		assert.Equal(t, int64(2700), result.Overview.TotalAmount)
		assert.Equal(t, 1, result.Overview.SupporterCount)
	})

	t.Run("Invalid input never reaches the repository", func(t *testing.T) {
		testCases := []struct {
			name      string
			firstName string
			amount    float64
			channel   entity.Channel
			consent   entity.ShareConsent
			wantErr   error
		}{
			{"Empty name", "   ", 500, entity.ChannelMpesa, entity.ConsentPending, errs.ErrInvalidName},
			{"Non-positive amount", "Amina", 0, entity.ChannelMpesa, entity.ConsentPending, errs.ErrInvalidAmount},
			{"Unknown channel", "Amina", 500, entity.Channel("Wire"), entity.ConsentPending, errs.ErrInvalidRequest},
			{"Unknown consent", "Amina", 500, entity.ChannelMpesa, entity.ShareConsent("maybe"), errs.ErrInvalidRequest},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				service, _ := newServiceFixture(t)

				result, err := service.RecordContribution(ctx, tc.firstName, tc.amount, tc.channel, tc.consent)

				assert.Nil(t, result)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})

	t.Run("Repository failure propagates", func(t *testing.T) {
		service, mockRepo := newServiceFixture(t)

		mockRepo.EXPECT().ApplyContribution(mock.Anything, mock.Anything, fixtureTime).
			Return(nil, errs.ErrDatabaseConnection).Once()

		result, err := service.RecordContribution(ctx, "Amina", 500, entity.ChannelMpesa, entity.ConsentPending)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestSetAcknowledgement(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending consent is rejected", func(t *testing.T) {
		service, _ := newServiceFixture(t)

		id := uint64(1)
		updated, err := service.SetAcknowledgement(ctx, AcknowledgementRequest{
			SupporterID: &id,
			Consent:     entity.ConsentPending,
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Locates supporter by id", func(t *testing.T) {
		service, mockRepo := newServiceFixture(t)

		granted := aminaSnapshot()
		granted.PublicAcknowledgement = true

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(aminaSnapshot(), nil).Once()
		mockRepo.EXPECT().UpdateAcknowledgement(mock.Anything, uint64(1), true, fixtureTime).
			Return(granted, nil).Once()

		id := uint64(1)
		updated, err := service.SetAcknowledgement(ctx, AcknowledgementRequest{
			SupporterID: &id,
			Consent:     entity.ConsentGranted,
		})
		require.NoError(t, err)

		assert.True(t, updated.PublicAcknowledgement)
	})

	t.Run("Locates supporter by name through the normalized key", func(t *testing.T) {
		service, mockRepo := newServiceFixture(t)

		declined := aminaSnapshot()
		declined.PublicAcknowledgement = false

		mockRepo.EXPECT().GetByNormalizedName(mock.Anything, "amina").
			Return(aminaSnapshot(), nil).Once()
		mockRepo.EXPECT().UpdateAcknowledgement(mock.Anything, uint64(1), false, fixtureTime).
			Return(declined, nil).Once()

		updated, err := service.SetAcknowledgement(ctx, AcknowledgementRequest{
			FirstName: "  AMINA  ",
			Consent:   entity.ConsentDeclined,
		})
		require.NoError(t, err)

		assert.False(t, updated.PublicAcknowledgement)
	})

	t.Run("Missing identifier is rejected", func(t *testing.T) {
		service, _ := newServiceFixture(t)

		updated, err := service.SetAcknowledgement(ctx, AcknowledgementRequest{
			Consent: entity.ConsentGranted,
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Unknown supporter passes the not-found error through", func(t *testing.T) {
		service, mockRepo := newServiceFixture(t)

		mockRepo.EXPECT().GetByNormalizedName(mock.Anything, "zuri").
			Return(nil, errs.ErrSupporterNotFound).Once()

		updated, err := service.SetAcknowledgement(ctx, AcknowledgementRequest{
			FirstName: "Zuri",
			Consent:   entity.ConsentGranted,
		})

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errs.ErrSupporterNotFound)
	})
}

func TestComputeOverview_RepositoryFailure(t *testing.T) {
	service, mockRepo := newServiceFixture(t)

	mockRepo.EXPECT().List(mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

	overview, err := service.ComputeOverview(context.Background())

	assert.Nil(t, overview)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}
