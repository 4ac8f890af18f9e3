package routes

import (
	coreport "github.com/upendo-clinic/donation-ledger/internal/domain/port/core"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/upendo-clinic/donation-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	donationHandler *handler.DonationHandler,
	callbackHandler *handler.CallbackHandler,
	supporterHandler *handler.SupporterHandler,
	healthHandler *handler.HealthHandler,
	callbackSecret string,
	logger coreport.Logger,
) {
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	{
		// POST /api/donations
		api.POST("/donations", donationHandler.InitiateDonation)

		// GET /api/donations/:id
		api.GET("/donations/:id", donationHandler.GetDonationStatus)

		// POST /api/payments/mpesa/callback
		api.POST("/payments/mpesa/callback",
			middleware.CallbackAuth(callbackSecret, logger),
			callbackHandler.HandleMpesaCallback)

		supporters := api.Group("/supporters")
		{
			// GET /api/supporters
			supporters.GET("", supporterHandler.ListSupporters)

			// POST /api/supporters/contributions
			supporters.POST("/contributions", supporterHandler.RecordContribution)

			// PATCH /api/supporters/acknowledgement
			supporters.PATCH("/acknowledgement", supporterHandler.SetAcknowledgement)

			// GET /api/supporters/overview
			supporters.GET("/overview", supporterHandler.GetOverview)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
