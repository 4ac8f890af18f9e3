package donation

import (
	coreport "github.com/upendo-clinic/donation-ledger/internal/domain/port/core"
	"github.com/upendo-clinic/donation-ledger/internal/domain/port/payment"
	"github.com/upendo-clinic/donation-ledger/internal/domain/port/persistence"
	supporterUseCase "github.com/upendo-clinic/donation-ledger/internal/domain/usecase/supporter"
)

// Service ties together the payment initiator, the callback reconciler and
// the status query over the donation transaction store
type Service struct {
	donationRepo persistence.DonationRepository
	supporters   *supporterUseCase.Service
	gateway      payment.Gateway
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new donation service
func NewService(
	donationRepo persistence.DonationRepository,
	supporters *supporterUseCase.Service,
	gateway payment.Gateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		donationRepo: donationRepo,
		supporters:   supporters,
		gateway:      gateway,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
