package routes

import (
	"taskilo_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	entryHandler *handlers.TimeEntryHandler,
	approvalHandler *handlers.ApprovalHandler,
	billingHandler *handlers.BillingHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)

		orders.POST("/:order_id/time-tracking", orderHandler.InitializeTimeTracking)
		orders.GET("/:order_id/time-tracking/summary", entryHandler.Summary)

		orders.POST("/:order_id/time-entries", entryHandler.AppendEntry)
		orders.GET("/:order_id/time-entries", entryHandler.ListEntries)
		orders.PATCH("/:order_id/time-entries/:entry_id/status", entryHandler.UpdateEntryStatus)

		orders.POST("/:order_id/approvals", approvalHandler.SubmitForApproval)
		orders.POST("/:order_id/approvals/:request_id/decision", approvalHandler.ProcessApproval)

		orders.POST("/:order_id/billing/capture", billingHandler.RequestCapture)
		orders.GET("/:order_id/rate-audit", billingHandler.AuditRates)
	}
}
