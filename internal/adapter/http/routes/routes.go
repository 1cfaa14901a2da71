package routes

import (
	"log"
	"net/http"

	_ "taskilo_billing/docs" // swag generated
	"taskilo_billing/internal/adapter/http/handlers"
	"taskilo_billing/internal/adapter/http/middleware"
	"taskilo_billing/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(c *app.Container) {
	router := NewRouter(c)

	err := router.Run(":" + c.Config.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func NewRouter(c *app.Container) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	orderHandler := handlers.NewOrderHandler(c.Orders)
	timeEntryHandler := handlers.NewTimeEntryHandler(c.TimeEntries)
	approvalHandler := handlers.NewApprovalHandler(c.Approvals)
	billingHandler := handlers.NewBillingHandler(c.Billing, c.RateAudit)
	webhookHandler := handlers.NewWebhookHandler(c.Reconciler, c.Lookup, c.Notifier, handlers.WebhookConfig{
		StripeSecret:      c.Config.StripeWebhookSecret,
		MercadoPagoSecret: c.Config.MercadoPagoWebhookSecret,
	})

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, timeEntryHandler, approvalHandler, billingHandler)
	addWebhookRoutes(v1, webhookHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v request_id=%s", recovered, middleware.GetRequestID(c.Request.Context()))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
