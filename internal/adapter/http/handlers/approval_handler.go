package handlers

import (
	"log"
	"net/http"

	request "taskilo_billing/internal/adapter/http/dto/request"
	response "taskilo_billing/internal/adapter/http/dto/response"
	"taskilo_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// SubmitForApproval godoc
// @Summary      Submit logged entries for customer approval
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        order_id  path      string                         true  "Order ID"
// @Param        approval  body      request.SubmitApprovalRequest  true  "Entries to submit"
// @Success      201       {object}  response.ApprovalRequestResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/approvals [post]
func (h *ApprovalHandler) SubmitForApproval(c *gin.Context) {
	orderID := c.Param("order_id")
	var payload request.SubmitApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.SubmitForApproval(c.Request.Context(), orderID, payload.ToInput())
	if err != nil {
		log.Printf("[billing][handler] approval submit failed order_id=%s err=%v", orderID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromApprovalRequest(req))
}

// ProcessApproval godoc
// @Summary      Record the customer's approval decision
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        order_id    path      string                           true  "Order ID"
// @Param        request_id  path      string                           true  "Approval request ID"
// @Param        decision    body      request.ApprovalDecisionRequest  true  "approved, rejected or partially_approved"
// @Success      200         {object}  response.ApprovalOutcomeResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /orders/{order_id}/approvals/{request_id}/decision [post]
func (h *ApprovalHandler) ProcessApproval(c *gin.Context) {
	orderID := c.Param("order_id")
	requestID := c.Param("request_id")
	var payload request.ApprovalDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	out, err := h.usecase.ProcessApproval(c.Request.Context(), orderID, requestID, payload.ToInput())
	if err != nil {
		log.Printf("[billing][handler] approval decision failed order_id=%s request_id=%s err=%v", orderID, requestID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApprovalOutcome(out))
}
