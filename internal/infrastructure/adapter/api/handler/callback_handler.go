package handler

import (
	"io"
	"net/http"

	domainerr "github.com/upendo-clinic/donation-ledger/internal/domain/error"
	coreport "github.com/upendo-clinic/donation-ledger/internal/domain/port/core"
	donationUseCase "github.com/upendo-clinic/donation-ledger/internal/domain/usecase/donation"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CallbackHandler receives asynchronous payment result notifications from
// the Daraja partner
type CallbackHandler struct {
	donationService *donationUseCase.Service
	logger          coreport.Logger
}

// NewCallbackHandler creates a new callback handler instance
func NewCallbackHandler(donationService *donationUseCase.Service, logger coreport.Logger) *CallbackHandler {
	return &CallbackHandler{
		donationService: donationService,
		logger:          logger,
	}
}

// HandleMpesaCallback handles the POST /api/payments/mpesa/callback endpoint.
//
// The partner retries deliveries that don't get HTTP 200, so every outcome
// acknowledges with 200. Failures are only logged: a malformed or unmatched
// payload will never resolve on retry, and a processing failure is recorded
// on the transaction itself.
func (h *CallbackHandler) HandleMpesaCallback(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.Error("Failed to read callback body", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusOK, dto.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
		return
	}

	outcome, err := h.donationService.ProcessCallback(c.Request.Context(), payload)
	if err != nil {
		switch {
		case domainerr.IsCallbackUnmatched(err):
			h.logger.Warn("Callback matched no known transaction", callbackLogFields(err))
		case domainerr.IsCallbackError(err):
			h.logger.Warn("Malformed callback payload", callbackLogFields(err))
		default:
			h.logger.Error("Callback processing failed", map[string]any{
				"error": err.Error(),
			})
		}
		c.JSON(http.StatusOK, dto.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
		return
	}

	if outcome.AlreadyProcessed {
		h.logger.Info("Duplicate callback delivery acknowledged", map[string]any{
			"transaction_id": outcome.Transaction.ID,
		})
	}

	c.JSON(http.StatusOK, dto.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
}

// callbackLogFields extracts structured fields from a callback error
func callbackLogFields(err error) map[string]any {
	type fielder interface {
		LogFields() map[string]any
	}
	if f, ok := err.(fielder); ok {
		return f.LogFields()
	}
	return map[string]any{"error": err.Error()}
}
