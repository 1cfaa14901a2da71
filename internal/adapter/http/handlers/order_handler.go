package handlers

import (
	"log"
	"net/http"

	request "taskilo_billing/internal/adapter/http/dto/request"
	response "taskilo_billing/internal/adapter/http/dto/response"
	"taskilo_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.CreateOrderRequest  true  "Order"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.CreateOrder(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

// GetOrder godoc
// @Summary      Get an order with its time tracking
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  response.OrderResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// InitializeTimeTracking godoc
// @Summary      Start time tracking on a confirmed order
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      201       {object}  response.OrderResponse
// @Failure      409       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/time-tracking [post]
func (h *OrderHandler) InitializeTimeTracking(c *gin.Context) {
	orderID := c.Param("order_id")
	o, err := h.usecase.InitializeTimeTracking(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[billing][handler] init tracking failed order_id=%s err=%v", orderID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o))
}
