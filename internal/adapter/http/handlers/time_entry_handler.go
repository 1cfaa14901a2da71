package handlers

import (
	"log"
	"net/http"

	request "taskilo_billing/internal/adapter/http/dto/request"
	response "taskilo_billing/internal/adapter/http/dto/response"
	"taskilo_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TimeEntryHandler struct {
	usecase usecase.ITimeEntryUseCase
}

func NewTimeEntryHandler(uc usecase.ITimeEntryUseCase) *TimeEntryHandler {
	return &TimeEntryHandler{usecase: uc}
}

// AppendEntry godoc
// @Summary      Log additional hours
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                      true  "Order ID"
// @Param        entry     body      request.AppendEntryRequest  true  "Entry"
// @Success      201       {object}  response.TimeEntryResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/time-entries [post]
func (h *TimeEntryHandler) AppendEntry(c *gin.Context) {
	var payload request.AppendEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	e, err := h.usecase.AppendEntry(c.Request.Context(), c.Param("order_id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTimeEntry(e))
}

// ListEntries godoc
// @Summary      List time entries
// @Tags         time-entries
// @Produce      json
// @Param        order_id  path      string  true   "Order ID"
// @Param        status    query     string  false  "Entry status filter"
// @Success      200       {array}   response.TimeEntryResponse
// @Router       /orders/{order_id}/time-entries [get]
func (h *TimeEntryHandler) ListEntries(c *gin.Context) {
	entries, err := h.usecase.ListEntries(c.Request.Context(), c.Param("order_id"), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTimeEntries(entries))
}

// UpdateEntryStatus godoc
// @Summary      Move a time entry to a new billing status
// @Tags         time-entries
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                            true  "Order ID"
// @Param        entry_id  path      string                            true  "Entry ID"
// @Param        status    body      request.UpdateEntryStatusRequest  true  "Status"
// @Success      200       {object}  response.TimeEntryResponse
// @Failure      409       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/time-entries/{entry_id}/status [patch]
func (h *TimeEntryHandler) UpdateEntryStatus(c *gin.Context) {
	var payload request.UpdateEntryStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	orderID, entryID := c.Param("order_id"), c.Param("entry_id")
	e, err := h.usecase.UpdateEntryStatus(c.Request.Context(), orderID, entryID, payload.Status, payload.PaymentReference)
	if err != nil {
		log.Printf("[billing][handler] update status failed order_id=%s entry_id=%s status=%s err=%v", orderID, entryID, payload.Status, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTimeEntry(e))
}

// Summary godoc
// @Summary      Billing summary of an order's time tracking
// @Tags         time-entries
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  usecase.BillingSummary
// @Router       /orders/{order_id}/time-tracking/summary [get]
func (h *TimeEntryHandler) Summary(c *gin.Context) {
	s, err := h.usecase.Summary(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
