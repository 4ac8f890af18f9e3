package donation

import (
	"context"
	"errors"
	"fmt"

	"github.com/upendo-clinic/donation-ledger/internal/domain/entity"
	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
)

// CallbackOutcome is the result of reconciling one partner callback
type CallbackOutcome struct {
	Transaction *entity.DonationTransaction
	// AlreadyProcessed is set when the callback was a redelivery for a
	// transaction another delivery had already finalized
	AlreadyProcessed bool
	// Populated only when this callback completed a successful payment
	Supporter           *entity.DonationSupporter
	Totals              *entity.Overview
	RecentNewSupporters []entity.TrendPoint
}

// ProcessCallback correlates an asynchronous partner result notification to
// its pending transaction and applies the terminal state transition.
//
// Redelivered callbacks never touch the ledger twice. Transactions already
// terminal at read time return immediately, and the transition itself is a
// compare-and-set on the pending status, so two concurrent deliveries of the
// same callback race on the database row and only the winner proceeds to the
// supporter ledger. A failure in the post-success ledger step is recorded on
// the transaction but does not revert the success status: the money was
// received, only the bookkeeping is degraded, and the error is re-thrown
// for the caller to log and alert on.
func (s *Service) ProcessCallback(ctx context.Context, payload []byte) (*CallbackOutcome, error) {
	result, err := ParseCallback(payload)
	if err != nil {
		return nil, err
	}

	txn, err := s.donationRepo.GetByCheckoutRequestID(ctx, result.CheckoutRequestID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.NewCallbackError(errs.CallbackUnmatched, result.CheckoutRequestID,
				"no transaction matches this checkout request id")
		}
		return nil, err
	}

	// Cheap fast path for redeliveries; the real idempotency guard is the
	// conditional update below
	if txn.IsTerminal() {
		s.logger.Info("Callback redelivery for finalized transaction, skipping", map[string]any{
			"transaction_id":      txn.ID,
			"checkout_request_id": result.CheckoutRequestID,
			"status":              string(txn.Status),
		})
		return &CallbackOutcome{Transaction: txn, AlreadyProcessed: true}, nil
	}

	txn.RecordCallbackResult(result.ResultCode, result.ResultDesc, result.RawMetadata, s.timeProvider)

	if !result.IsSuccess() {
		txn.MarkFailed(result.ResultDesc, s.timeProvider)
		if err := s.donationRepo.UpdateIfPending(ctx, txn); err != nil {
			if errors.Is(err, errs.ErrDuplicateCallback) {
				return s.concedeRedelivery(txn, result.CheckoutRequestID), nil
			}
			return nil, err
		}

		s.logger.Info("Donation payment failed at partner", map[string]any{
			"transaction_id":      txn.ID,
			"checkout_request_id": result.CheckoutRequestID,
			"result_code":         result.ResultCode,
			"result_desc":         result.ResultDesc,
		})
		return &CallbackOutcome{Transaction: txn}, nil
	}

	paidAmount := float64(txn.Amount)
	if result.PaidAmount != nil {
		paidAmount = *result.PaidAmount
	}

	txn.MarkSuccess(result.ReceiptNumber, s.timeProvider)
	if err := s.donationRepo.UpdateIfPending(ctx, txn); err != nil {
		if errors.Is(err, errs.ErrDuplicateCallback) {
			return s.concedeRedelivery(txn, result.CheckoutRequestID), nil
		}
		return nil, err
	}

	s.logger.Info("Donation payment confirmed", map[string]any{
		"transaction_id":      txn.ID,
		"checkout_request_id": result.CheckoutRequestID,
		"receipt_number":      result.ReceiptNumber,
		"amount":              paidAmount,
	})

	recorded, err := s.supporters.RecordContribution(ctx, txn.FirstName, paidAmount, entity.ChannelMpesa, entity.ConsentPending)
	if err != nil {
		// The payment happened; only the ledger bookkeeping failed. Capture
		// the reason on the transaction and re-throw so the caller can alert.
		txn.RecordLedgerFailure(fmt.Sprintf("supporter ledger recording failed: %s", err.Error()), s.timeProvider)
		if updateErr := s.donationRepo.Update(ctx, txn); updateErr != nil {
			s.logger.Error("Failed to record ledger failure reason on transaction", map[string]any{
				"transaction_id": txn.ID,
				"error":          updateErr.Error(),
			})
		}
		return nil, err
	}

	txn.LinkSupporter(recorded.Supporter.ID, s.timeProvider)
	if err := s.donationRepo.Update(ctx, txn); err != nil {
		return nil, err
	}

	return &CallbackOutcome{
		Transaction:         txn,
		Supporter:           recorded.Supporter,
		Totals:              recorded.Overview,
		RecentNewSupporters: recorded.Overview.DailyNewSupporters,
	}, nil
}

// concedeRedelivery handles losing the terminal-transition race: a concurrent
// delivery of the same callback finalized the row between our read and our
// conditional update. The winner owns the ledger step, so this delivery only
// acknowledges.
func (s *Service) concedeRedelivery(txn *entity.DonationTransaction, checkoutRequestID string) *CallbackOutcome {
	s.logger.Info("Concurrent callback delivery already finalized transaction, skipping", map[string]any{
		"transaction_id":      txn.ID,
		"checkout_request_id": checkoutRequestID,
	})
	return &CallbackOutcome{Transaction: txn, AlreadyProcessed: true}
}
