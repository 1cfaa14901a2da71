package interfaces

import (
	"context"
	"errors"

	"taskilo_billing/internal/domain/entities"
)

// IPaymentGateway abstracts the payment provider used to capture billable
// hours (Stripe or Mercado Pago).
type IPaymentGateway interface {
	Provider() string
	CreateCapture(ctx context.Context, req entities.CaptureRequest) (entities.CaptureResult, error)
}

// ErrInvalidPaymentID means the provider id can never resolve to a payment.
var ErrInvalidPaymentID = errors.New("invalid payment id")

// IPaymentLookup resolves a provider payment id into a normalized billing
// event. ok is false when the payment is in a state the reconciler does not
// act on. A malformed id fails with ErrInvalidPaymentID.
type IPaymentLookup interface {
	LookupPayment(ctx context.Context, paymentID string) (ev entities.BillingEvent, ok bool, err error)
}
