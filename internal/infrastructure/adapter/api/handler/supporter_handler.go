package handler

import (
	"net/http"

	"github.com/upendo-clinic/donation-ledger/internal/domain/entity"
	domainerr "github.com/upendo-clinic/donation-ledger/internal/domain/error"
	coreport "github.com/upendo-clinic/donation-ledger/internal/domain/port/core"
	supporterUseCase "github.com/upendo-clinic/donation-ledger/internal/domain/usecase/supporter"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SupporterHandler handles supporter ledger HTTP requests
type SupporterHandler struct {
	supporterService *supporterUseCase.Service
	logger           coreport.Logger
}

// NewSupporterHandler creates a new supporter handler instance
func NewSupporterHandler(supporterService *supporterUseCase.Service, logger coreport.Logger) *SupporterHandler {
	return &SupporterHandler{
		supporterService: supporterService,
		logger:           logger,
	}
}

// RecordContribution handles the POST /api/supporters/contributions endpoint
func (h *SupporterHandler) RecordContribution(c *gin.Context) {
	var req dto.ContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid contribution request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.supporterService.RecordContribution(
		c.Request.Context(),
		req.FirstName,
		req.Amount,
		entity.Channel(req.Channel),
		entity.ShareConsent(req.ShareConsent),
	)
	if err != nil {
		c.JSON(httpStatusFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ContributionResponse{
		Supporter: dto.FromSupporter(result.Supporter),
		Totals:    dto.FromOverview(result.Overview),
	})
}

// SetAcknowledgement handles the PATCH /api/supporters/acknowledgement endpoint
func (h *SupporterHandler) SetAcknowledgement(c *gin.Context) {
	var req dto.AcknowledgementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid acknowledgement request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	supporter, err := h.supporterService.SetAcknowledgement(c.Request.Context(), supporterUseCase.AcknowledgementRequest{
		SupporterID: req.SupporterID,
		FirstName:   req.FirstName,
		Consent:     entity.ShareConsent(req.ShareConsent),
	})
	if err != nil {
		c.JSON(httpStatusFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromSupporter(supporter))
}

// GetOverview handles the GET /api/supporters/overview endpoint
func (h *SupporterHandler) GetOverview(c *gin.Context) {
	overview, err := h.supporterService.ComputeOverview(c.Request.Context())
	if err != nil {
		c.JSON(httpStatusFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.FromOverview(overview))
}

// ListSupporters handles the GET /api/supporters endpoint
func (h *SupporterHandler) ListSupporters(c *gin.Context) {
	supporters, err := h.supporterService.Snapshots(c.Request.Context())
	if err != nil {
		c.JSON(httpStatusFor(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	out := make([]dto.SupporterResponse, 0, len(supporters))
	for _, s := range supporters {
		out = append(out, dto.FromSupporter(s))
	}

	c.JSON(http.StatusOK, out)
}
