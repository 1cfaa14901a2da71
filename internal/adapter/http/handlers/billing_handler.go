package handlers

import (
	"log"
	"net/http"

	request "taskilo_billing/internal/adapter/http/dto/request"
	response "taskilo_billing/internal/adapter/http/dto/response"
	"taskilo_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	capture usecase.IBillingRequestUseCase
	audit   usecase.IRateAuditUseCase
}

func NewBillingHandler(capture usecase.IBillingRequestUseCase, audit usecase.IRateAuditUseCase) *BillingHandler {
	return &BillingHandler{capture: capture, audit: audit}
}

// RequestCapture godoc
// @Summary      Send customer-approved hours to the payment provider
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                  true  "Order ID"
// @Param        capture   body      request.CaptureRequest  true  "Entries to bill"
// @Success      201       {object}  response.CaptureResponse
// @Failure      502       {object}  pkg.HTTPError
// @Failure      503       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/billing/capture [post]
func (h *BillingHandler) RequestCapture(c *gin.Context) {
	orderID := c.Param("order_id")
	var payload request.CaptureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	res, err := h.capture.RequestCapture(c.Request.Context(), orderID, payload.ToInput())
	if err != nil {
		log.Printf("[billing][handler] capture failed order_id=%s err=%v", orderID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCapture(res))
}

// AuditRates godoc
// @Summary      Report billable amounts that drifted from the hourly rate
// @Tags         billing
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  response.RateAuditResponse
// @Router       /orders/{order_id}/rate-audit [get]
func (h *BillingHandler) AuditRates(c *gin.Context) {
	orderID := c.Param("order_id")
	drifts, err := h.audit.AuditOrder(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRateAudit(orderID, drifts))
}
