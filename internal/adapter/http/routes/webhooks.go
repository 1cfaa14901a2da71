package routes

import (
	"taskilo_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhooks = "/webhooks"
)

// Provider callbacks. Authentication is the provider signature, checked in
// the handlers.
func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/stripe", h.StripeWebhook)
		webhooks.POST("/mercadopago", h.MercadoPagoWebhook)
	}
}
