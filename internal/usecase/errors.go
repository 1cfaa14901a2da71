package usecase

import (
	"errors"

	"taskilo_billing/internal/domain/entities"
)

var (
	ErrInvalidOrder                   = errors.New("invalid order")
	ErrInvalidOrderID                 = errors.New("invalid order id")
	ErrOrderNotFound                  = errors.New("order not found")
	ErrInvalidOrderState              = errors.New("order is not in a state that allows this operation")
	ErrTimeTrackingAlreadyInitialized = errors.New("time tracking already initialized")
	ErrTimeTrackingNotInitialized     = errors.New("time tracking not initialized")
	ErrValidation                     = errors.New("validation error")
	ErrEntryNotFound                  = errors.New("time entry not found")
	ErrApprovalRequestNotFound        = errors.New("approval request not found")
	ErrInvalidEvent                   = errors.New("invalid billing event")
	ErrConcurrentModification         = errors.New("order was modified concurrently")
	ErrReconcileTimeout               = errors.New("reconciliation timed out")
	ErrPaymentGateway                 = errors.New("payment gateway failure")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")

	// Re-exported so callers of the use cases need not import entities for
	// error checks.
	ErrInvalidTransition = entities.ErrInvalidTransition
	ErrEntryValidation   = entities.ErrEntryValidation
	ErrApprovalState     = entities.ErrApprovalState
)

// IsRetryable reports whether a reconciliation failure may succeed on
// redelivery of the same event.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrInvalidEvent):
		return false
	}
	return true
}
