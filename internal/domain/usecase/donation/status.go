package donation

import (
	"context"

	"github.com/upendo-clinic/donation-ledger/internal/domain/entity"
	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
)

// StatusView is the consolidated view returned to a polling client. The
// enriched fields are populated only once the transaction has reached
// success and acquired a supporter link.
type StatusView struct {
	ID                 string
	Status             entity.DonationStatus
	Amount             int64
	FirstName          string
	ResultDescription  string
	FailureReason      string
	MpesaReceiptNumber string
	MerchantRequestID  string
	CheckoutRequestID  string
	SupporterID        *uint64

	Supporter           *entity.DonationSupporter
	Totals              *entity.Overview
	RecentNewSupporters []entity.TrendPoint
}

// GetTransactionStatus joins the transaction with its supporter and the
// overview aggregate. Returns nil (without error) when no transaction with
// the given id exists.
func (s *Service) GetTransactionStatus(ctx context.Context, transactionID string) (*StatusView, error) {
	txn, err := s.donationRepo.GetByID(ctx, transactionID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}

	view := &StatusView{
		ID:                 txn.ID,
		Status:             txn.Status,
		Amount:             txn.Amount,
		FirstName:          txn.FirstName,
		ResultDescription:  txn.ResultDescription,
		FailureReason:      txn.FailureReason,
		MpesaReceiptNumber: txn.MpesaReceiptNumber,
		MerchantRequestID:  txn.MerchantRequestID,
		CheckoutRequestID:  txn.CheckoutRequestID,
		SupporterID:        txn.SupporterID,
	}

	if txn.Status != entity.StatusSuccess || txn.SupporterID == nil {
		return view, nil
	}

	supporter, err := s.supporters.SupporterByID(ctx, *txn.SupporterID)
	if err != nil {
		// A missing ledger row degrades the view but must not break polling
		s.logger.Warn("Linked supporter not found for successful transaction", map[string]any{
			"transaction_id": txn.ID,
			"supporter_id":   *txn.SupporterID,
			"error":          err.Error(),
		})
		return view, nil
	}

	overview, err := s.supporters.ComputeOverview(ctx)
	if err != nil {
		return nil, err
	}

	view.Supporter = supporter
	view.Totals = overview
	view.RecentNewSupporters = overview.DailyNewSupporters

	return view, nil
}
