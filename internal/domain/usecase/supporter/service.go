package supporter

import (
	"context"
	"fmt"

	"github.com/upendo-clinic/donation-ledger/internal/domain/entity"
	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
	coreport "github.com/upendo-clinic/donation-ledger/internal/domain/port/core"
	"github.com/upendo-clinic/donation-ledger/internal/domain/port/persistence"
)

// Service implements the supporter ledger operations: contribution
// recording, acknowledgement preferences, and the derived overview
type Service struct {
	supporterRepo persistence.SupporterRepository
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewService creates a new supporter ledger service
func NewService(
	supporterRepo persistence.SupporterRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		supporterRepo: supporterRepo,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// RecordResult is the outcome of recording a contribution: the updated
// supporter snapshot plus a freshly recomputed overview
type RecordResult struct {
	Supporter *entity.DonationSupporter
	Overview  *entity.Overview
}

// RecordContribution sanitizes the contribution and applies it to the ledger
// through a single atomic upsert, then recomputes the overview.
func (s *Service) RecordContribution(
	ctx context.Context,
	firstName string,
	amount float64,
	channel entity.Channel,
	consent entity.ShareConsent,
) (*RecordResult, error) {
	contribution, err := entity.NewContribution(firstName, amount, channel, consent)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	supporter, err := s.supporterRepo.ApplyContribution(ctx, contribution, now)
	if err != nil {
		s.logger.Error("Failed to apply contribution to supporter ledger", map[string]any{
			"normalized_name": contribution.NormalizedName,
			"amount":          contribution.Amount,
			"channel":         string(contribution.Channel),
			"error":           err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Contribution recorded", map[string]any{
		"supporter_id":    supporter.ID,
		"normalized_name": supporter.NormalizedName,
		"amount":          contribution.Amount,
		"channel":         string(contribution.Channel),
		"total_amount":    supporter.TotalAmount,
		"donation_count":  supporter.DonationCount,
	})

	overview, err := s.ComputeOverview(ctx)
	if err != nil {
		return nil, err
	}

	return &RecordResult{
		Supporter: supporter,
		Overview:  overview,
	}, nil
}

// AcknowledgementRequest identifies a supporter by id or by first name and
// carries the new share consent value
type AcknowledgementRequest struct {
	SupporterID *uint64
	FirstName   string
	Consent     entity.ShareConsent
}

// SetAcknowledgement updates only the public acknowledgement flag of an
// existing supporter, located by id or by normalized name
func (s *Service) SetAcknowledgement(ctx context.Context, req AcknowledgementRequest) (*entity.DonationSupporter, error) {
	if !req.Consent.IsExplicit() {
		return nil, fmt.Errorf("%w: share consent must be granted or declined", errs.ErrInvalidRequest)
	}

	var supporter *entity.DonationSupporter
	var err error

	switch {
	case req.SupporterID != nil:
		supporter, err = s.supporterRepo.GetByID(ctx, *req.SupporterID)
	case req.FirstName != "":
		var displayName, normalizedName string
		displayName, err = entity.SanitizeDisplayName(req.FirstName)
		if err != nil {
			return nil, err
		}
		normalizedName, err = entity.NormalizeNameKey(displayName)
		if err != nil {
			return nil, err
		}
		supporter, err = s.supporterRepo.GetByNormalizedName(ctx, normalizedName)
	default:
		return nil, fmt.Errorf("%w: either supporterId or firstName is required", errs.ErrInvalidRequest)
	}

	if err != nil {
		return nil, err
	}

	granted := req.Consent == entity.ConsentGranted
	updated, err := s.supporterRepo.UpdateAcknowledgement(ctx, supporter.ID, granted, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Supporter acknowledgement updated", map[string]any{
		"supporter_id": updated.ID,
		"granted":      granted,
	})

	return updated, nil
}

// SupporterByID retrieves a single supporter snapshot
func (s *Service) SupporterByID(ctx context.Context, id uint64) (*entity.DonationSupporter, error) {
	return s.supporterRepo.GetByID(ctx, id)
}

// ComputeOverview aggregates the full supporter set into the sitewide totals
// and the 30-day new-supporter trend
func (s *Service) ComputeOverview(ctx context.Context) (*entity.Overview, error) {
	supporters, err := s.supporterRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return entity.ComputeOverview(supporters, s.timeProvider.Now()), nil
}

// Snapshots returns the full supporter set for admin dashboards and the
// public supporter trail
func (s *Service) Snapshots(ctx context.Context) ([]*entity.DonationSupporter, error) {
	return s.supporterRepo.List(ctx)
}
