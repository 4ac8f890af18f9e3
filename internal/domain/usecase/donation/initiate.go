package donation

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/upendo-clinic/donation-ledger/internal/domain/entity"
	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
	"github.com/upendo-clinic/donation-ledger/internal/domain/port/payment"
)

// InitiateRequest is the input for starting a donation payment
type InitiateRequest struct {
	Phone            string
	Amount           float64
	FirstName        string
	AccountReference string
	TransactionDesc  string
}

// InitiateResult is returned to the client after the partner accepted the
// push request. The status is still pending; the outcome arrives through
// the asynchronous callback.
type InitiateResult struct {
	TransactionID     string
	MerchantRequestID string
	CheckoutRequestID string
	Status            entity.DonationStatus
	CustomerMessage   string
}

// defaultTransactionDesc is sent to the partner when the caller provided none
const defaultTransactionDesc = "Clinic donation"

// Initiate validates the donation input, persists a pending transaction
// BEFORE contacting the partner, and requests the STK push prompt.
//
// On any failure after the pending row exists the transaction is updated to
// failed with the captured reason before the error is returned. This is a
// compensating action, not a rollback: the row always exists and is
// explicitly terminalized so no transaction is left dangling.
func (s *Service) Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error) {
	msisdn, err := entity.NormalizeMSISDN(req.Phone)
	if err != nil {
		return nil, err
	}

	amount, err := entity.ValidateAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	firstName, err := entity.SanitizeDisplayName(req.FirstName)
	if err != nil {
		return nil, err
	}

	accountReference := entity.DeriveAccountReference(req.AccountReference, firstName)

	transactionDesc := req.TransactionDesc
	if transactionDesc == "" {
		transactionDesc = defaultTransactionDesc
	}

	txn := entity.NewDonationTransaction(
		uuid.NewString(),
		req.Phone,
		msisdn,
		amount,
		firstName,
		accountReference,
		s.timeProvider,
	)

	if err := s.donationRepo.Create(ctx, txn); err != nil {
		s.logger.Error("Failed to persist pending donation transaction", map[string]any{
			"transaction_id": txn.ID,
			"error":          err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("Pending donation transaction created", map[string]any{
		"transaction_id":    txn.ID,
		"msisdn":            msisdn,
		"amount":            amount,
		"account_reference": accountReference,
	})

	result, err := s.gateway.InitiateSTKPush(ctx, payment.STKPushRequest{
		MSISDN:           msisdn,
		Amount:           amount,
		AccountReference: accountReference,
		TransactionDesc:  transactionDesc,
	})
	if err != nil {
		s.terminalizeFailedInitiation(ctx, txn, err)
		return nil, err
	}

	txn.RecordPartnerAcceptance(result.MerchantRequestID, result.CheckoutRequestID, s.timeProvider)
	if err := s.donationRepo.Update(ctx, txn); err != nil {
		s.terminalizeFailedInitiation(ctx, txn, err)
		return nil, err
	}

	s.logger.Info("STK push accepted by partner", map[string]any{
		"transaction_id":      txn.ID,
		"merchant_request_id": result.MerchantRequestID,
		"checkout_request_id": result.CheckoutRequestID,
	})

	return &InitiateResult{
		TransactionID:     txn.ID,
		MerchantRequestID: result.MerchantRequestID,
		CheckoutRequestID: result.CheckoutRequestID,
		Status:            txn.Status,
		CustomerMessage:   result.CustomerMessage,
	}, nil
}

// terminalizeFailedInitiation marks the transaction failed with a
// human-readable reason. The update is conditional on the row still being
// pending, so a callback that slipped in first keeps its terminal state.
// It is also best-effort: if it fails too, the original initiation error
// still reaches the caller.
func (s *Service) terminalizeFailedInitiation(ctx context.Context, txn *entity.DonationTransaction, cause error) {
	txn.MarkFailed(cause.Error(), s.timeProvider)

	updateErr := s.donationRepo.UpdateIfPending(ctx, txn)
	if errors.Is(updateErr, errs.ErrDuplicateCallback) {
		s.logger.Warn("Transaction already finalized by a callback, keeping its state", map[string]any{
			"transaction_id": txn.ID,
			"cause":          cause.Error(),
		})
		return
	}
	if updateErr != nil {
		s.logger.Error("Failed to terminalize donation transaction after initiation failure", map[string]any{
			"transaction_id": txn.ID,
			"cause":          cause.Error(),
			"update_error":   updateErr.Error(),
		})
		return
	}

	s.logger.Warn("Donation initiation failed, transaction marked failed", map[string]any{
		"transaction_id": txn.ID,
		"reason":         cause.Error(),
	})
}
