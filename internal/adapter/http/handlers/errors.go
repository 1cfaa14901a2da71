package handlers

import (
	"errors"
	"net/http"

	"taskilo_billing/internal/usecase"
	"taskilo_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

func writeError(c *gin.Context, err error) {
	appErr := mapBillingError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrInvalidOrder):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEntryNotFound):
		return pkg.NewDomainErrorSimple("TIME_ENTRY_NOT_FOUND", "Time entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApprovalRequestNotFound):
		return pkg.NewDomainErrorSimple("APPROVAL_REQUEST_NOT_FOUND", "Approval request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApprovalState):
		return pkg.NewDomainError("INVALID_APPROVAL_STATE", "Entry is not in the required approval state", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrTimeTrackingAlreadyInitialized):
		return pkg.NewDomainErrorSimple("TIME_TRACKING_ALREADY_INITIALIZED", "Time tracking already initialized", http.StatusConflict)
	case errors.Is(err, usecase.ErrTimeTrackingNotInitialized):
		return pkg.NewDomainErrorSimple("TIME_TRACKING_NOT_INITIALIZED", "Time tracking not initialized", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOrderState):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATE", "Order is not in a state that allows this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Invalid status transition", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEntryValidation):
		return pkg.NewDomainError("TIME_ENTRY_INVALID", "Stored time entry failed validation", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment gateway failure", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "Order was modified concurrently, retry", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrReconcileTimeout):
		return pkg.NewDomainError("RECONCILE_TIMEOUT", "Reconciliation timed out, retry", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
