package handler

import (
	"net/http"

	domainerr "github.com/upendo-clinic/donation-ledger/internal/domain/error"
	coreport "github.com/upendo-clinic/donation-ledger/internal/domain/port/core"
	donationUseCase "github.com/upendo-clinic/donation-ledger/internal/domain/usecase/donation"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// DonationHandler handles donation-related HTTP requests
type DonationHandler struct {
	donationService *donationUseCase.Service
	logger          coreport.Logger
}

// NewDonationHandler creates a new donation handler instance
func NewDonationHandler(donationService *donationUseCase.Service, logger coreport.Logger) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		logger:          logger,
	}
}

// InitiateDonation handles the POST /api/donations endpoint
func (h *DonationHandler) InitiateDonation(c *gin.Context) {
	var req dto.DonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid donation request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.donationService.Initiate(c.Request.Context(), donationUseCase.InitiateRequest{
		Phone:            req.Phone,
		Amount:           req.Amount,
		FirstName:        req.FirstName,
		AccountReference: req.AccountReference,
		TransactionDesc:  req.TransactionDesc,
	})
	if err != nil {
		c.JSON(httpStatusFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, dto.DonationResponse{
		TransactionID:     result.TransactionID,
		Status:            string(result.Status),
		MerchantRequestID: result.MerchantRequestID,
		CheckoutRequestID: result.CheckoutRequestID,
		CustomerMessage:   result.CustomerMessage,
	})
}

// GetDonationStatus handles the GET /api/donations/:id endpoint
func (h *DonationHandler) GetDonationStatus(c *gin.Context) {
	transactionID := c.Param("id")
	if transactionID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Missing transaction id",
		})
		return
	}

	view, err := h.donationService.GetTransactionStatus(c.Request.Context(), transactionID)
	if err != nil {
		c.JSON(httpStatusFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrTransactionNotFound),
			Message: "Donation transaction not found",
		})
		return
	}

	resp := dto.DonationStatusResponse{
		TransactionID:      view.ID,
		Status:             string(view.Status),
		Amount:             view.Amount,
		FirstName:          view.FirstName,
		ResultDescription:  view.ResultDescription,
		FailureReason:      view.FailureReason,
		MpesaReceiptNumber: view.MpesaReceiptNumber,
		MerchantRequestID:  view.MerchantRequestID,
		CheckoutRequestID:  view.CheckoutRequestID,
	}

	if view.Supporter != nil {
		supporter := dto.FromSupporter(view.Supporter)
		resp.Supporter = &supporter
	}
	if view.Totals != nil {
		totals := dto.FromOverview(view.Totals)
		resp.Totals = &totals
		resp.RecentNewSupporters = dto.FromTrendPoints(view.RecentNewSupporters)
	}

	c.JSON(http.StatusOK, resp)
}
