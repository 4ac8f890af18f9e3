package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/upendo-clinic/donation-ledger/internal/domain/entity"
	errs "github.com/upendo-clinic/donation-ledger/internal/domain/error"
	coreport "github.com/upendo-clinic/donation-ledger/internal/domain/port/core"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/model"
)

// DonationRepository implements persistence.DonationRepository using GORM
type DonationRepository struct {
	db              *gorm.DB
	timeouts        QueryBounder
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewDonationRepository creates a new DonationRepository instance
func NewDonationRepository(db *gorm.DB, timeouts QueryBounder, logger coreport.Logger) *DonationRepository {
	return &DonationRepository{
		db:              db,
		timeouts:        timeouts,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a donation transaction entity to a database model
func (r *DonationRepository) entityToModel(txn *entity.DonationTransaction) model.DonationTransaction {
	m := model.DonationTransaction{
		ID:                 txn.ID,
		RawPhone:           txn.RawPhone,
		MSISDN:             txn.MSISDN,
		Amount:             txn.Amount,
		FirstName:          txn.FirstName,
		AccountReference:   txn.AccountReference,
		Status:             string(txn.Status),
		ResultCode:         txn.ResultCode,
		ResultDescription:  txn.ResultDescription,
		MpesaReceiptNumber: txn.MpesaReceiptNumber,
		FailureReason:      txn.FailureReason,
		CallbackPayload:    txn.CallbackPayload,
		SupporterID:        txn.SupporterID,
		CreatedAt:          txn.CreatedAt,
		UpdatedAt:          txn.UpdatedAt,
	}
	if txn.MerchantRequestID != "" {
		m.MerchantRequestID = &txn.MerchantRequestID
	}
	if txn.CheckoutRequestID != "" {
		m.CheckoutRequestID = &txn.CheckoutRequestID
	}
	return m
}

// modelToEntity converts a database model to a donation transaction entity
func (r *DonationRepository) modelToEntity(m *model.DonationTransaction) *entity.DonationTransaction {
	txn := &entity.DonationTransaction{
		ID:                 m.ID,
		RawPhone:           m.RawPhone,
		MSISDN:             m.MSISDN,
		Amount:             m.Amount,
		FirstName:          m.FirstName,
		AccountReference:   m.AccountReference,
		Status:             entity.DonationStatus(m.Status),
		ResultCode:         m.ResultCode,
		ResultDescription:  m.ResultDescription,
		MpesaReceiptNumber: m.MpesaReceiptNumber,
		FailureReason:      m.FailureReason,
		CallbackPayload:    m.CallbackPayload,
		SupporterID:        m.SupporterID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.MerchantRequestID != nil {
		txn.MerchantRequestID = *m.MerchantRequestID
	}
	if m.CheckoutRequestID != nil {
		txn.CheckoutRequestID = *m.CheckoutRequestID
	}
	return txn
}

// Create persists a new pending transaction
func (r *DonationRepository) Create(ctx context.Context, txn *entity.DonationTransaction) error {
	r.logger.Debug("Creating donation transaction", map[string]any{
		"transaction_id": txn.ID,
		"msisdn":         txn.MSISDN,
		"amount":         txn.Amount,
	})

	ctx, cancel := r.timeouts.WithTimeout(ctx)
	defer cancel()

	txnModel := r.entityToModel(txn)

	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		r.logger.Error("Failed to create donation transaction", map[string]any{
			"transaction_id": txn.ID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return nil
}

// Update persists correlation ids and post-transition bookkeeping
func (r *DonationRepository) Update(ctx context.Context, txn *entity.DonationTransaction) error {
	r.logger.Debug("Updating donation transaction", map[string]any{
		"transaction_id": txn.ID,
		"status":         string(txn.Status),
	})

	ctx, cancel := r.timeouts.WithTimeout(ctx)
	defer cancel()

	txnModel := r.entityToModel(txn)

	result := r.db.WithContext(ctx).Model(&model.DonationTransaction{}).
		Where("id = ?", txn.ID).
		Updates(map[string]interface{}{
			"status":               txnModel.Status,
			"merchant_request_id":  txnModel.MerchantRequestID,
			"checkout_request_id":  txnModel.CheckoutRequestID,
			"result_code":          txnModel.ResultCode,
			"result_description":   txnModel.ResultDescription,
			"mpesa_receipt_number": txnModel.MpesaReceiptNumber,
			"failure_reason":       txnModel.FailureReason,
			"callback_payload":     txnModel.CallbackPayload,
			"supporter_id":         txnModel.SupporterID,
			"updated_at":           txnModel.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update donation transaction", map[string]any{
			"transaction_id": txn.ID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Donation transaction not found during update", map[string]any{
			"transaction_id": txn.ID,
		})
		return errs.ErrTransactionNotFound
	}

	return nil
}

// UpdateIfPending persists a terminal status transition with a compare-and-set
// on the stored status. The WHERE clause carries the pending guard, so when two
// deliveries of the same callback race, the database lets exactly one row
// update through.
func (r *DonationRepository) UpdateIfPending(ctx context.Context, txn *entity.DonationTransaction) error {
	r.logger.Debug("Finalizing donation transaction", map[string]any{
		"transaction_id": txn.ID,
		"status":         string(txn.Status),
	})

	ctx, cancel := r.timeouts.WithTimeout(ctx)
	defer cancel()

	txnModel := r.entityToModel(txn)

	result := r.db.WithContext(ctx).Model(&model.DonationTransaction{}).
		Where("id = ? AND status = ?", txn.ID, string(entity.StatusPending)).
		Updates(map[string]interface{}{
			"status":               txnModel.Status,
			"merchant_request_id":  txnModel.MerchantRequestID,
			"checkout_request_id":  txnModel.CheckoutRequestID,
			"result_code":          txnModel.ResultCode,
			"result_description":   txnModel.ResultDescription,
			"mpesa_receipt_number": txnModel.MpesaReceiptNumber,
			"failure_reason":       txnModel.FailureReason,
			"callback_payload":     txnModel.CallbackPayload,
			"supporter_id":         txnModel.SupporterID,
			"updated_at":           txnModel.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to finalize donation transaction", map[string]any{
			"transaction_id": txn.ID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		// Either the row is gone or it already left pending
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.DonationTransaction{}).
			Where("id = ?", txn.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		if count == 0 {
			r.logger.Warn("Donation transaction not found during finalization", map[string]any{
				"transaction_id": txn.ID,
			})
			return errs.ErrTransactionNotFound
		}
		r.logger.Warn("Donation transaction already finalized, skipping update", map[string]any{
			"transaction_id": txn.ID,
		})
		return errs.ErrDuplicateCallback
	}

	return nil
}

// GetByID retrieves a transaction by its opaque identifier
func (r *DonationRepository) GetByID(ctx context.Context, id string) (*entity.DonationTransaction, error) {
	ctx, cancel := r.timeouts.WithTimeout(ctx)
	defer cancel()

	var txnModel model.DonationTransaction
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&txnModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Database error when getting donation transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&txnModel), nil
}

// GetByCheckoutRequestID retrieves a transaction by the partner's checkout
// request id, the only key the callback reconciler may use
func (r *DonationRepository) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*entity.DonationTransaction, error) {
	ctx, cancel := r.timeouts.WithTimeout(ctx)
	defer cancel()

	var txnModel model.DonationTransaction
	result := r.db.WithContext(ctx).
		Where("checkout_request_id = ?", checkoutRequestID).
		First(&txnModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Database error when getting donation transaction by checkout request id", map[string]any{
			"checkout_request_id": checkoutRequestID,
			"error":               result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&txnModel), nil
}
