// Package webhook turns payment-provider notifications into billing events.
package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/infrastructure/payments"

	"github.com/stripe/stripe-go/v84"
	stripewebhook "github.com/stripe/stripe-go/v84/webhook"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")
var ErrMalformedPayload = errors.New("malformed webhook payload")

// VerifyStripe checks the Stripe-Signature header and decodes the event.
func VerifyStripe(payload []byte, sigHeader, secret string) (stripe.Event, error) {
	ev, err := stripewebhook.ConstructEventWithOptions(payload, sigHeader, secret, stripewebhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return stripe.Event{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return ev, nil
}

// FromStripeEvent maps a verified Stripe event to a billing event. ok is false
// for events that carry no billing meaning for time entries.
//
// payment_intent.succeeded and charge.succeeded are routed by the metadata
// type set at capture time; transfer.created settles the payment named in its
// metadata.
func FromStripeEvent(ev stripe.Event) (entities.BillingEvent, bool, error) {
	out := entities.BillingEvent{ExternalID: ev.ID, Provider: payments.ProviderStripe}
	if ev.Data == nil {
		return out, false, fmt.Errorf("%w: event %s has no data", ErrMalformedPayload, ev.ID)
	}

	switch ev.Type {
	case stripe.EventTypePaymentIntentSucceeded:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
			return out, false, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		typ, ok := eventTypeForPayment(pi.Metadata)
		if !ok {
			return out, false, nil
		}
		out.Type = typ
		out.OrderID = strings.TrimSpace(pi.Metadata[payments.MetaOrderID])
		out.PaymentReference = pi.ID
		out.Amount = pi.AmountReceived
		if out.Amount == 0 {
			out.Amount = pi.Amount
		}
		return out, true, nil

	case stripe.EventTypeChargeSucceeded:
		var ch stripe.Charge
		if err := json.Unmarshal(ev.Data.Raw, &ch); err != nil {
			return out, false, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		typ, ok := eventTypeForPayment(ch.Metadata)
		if !ok {
			return out, false, nil
		}
		out.Type = typ
		out.OrderID = strings.TrimSpace(ch.Metadata[payments.MetaOrderID])
		if ch.PaymentIntent != nil {
			out.PaymentReference = ch.PaymentIntent.ID
		}
		out.Amount = ch.Amount
		return out, true, nil

	case stripe.EventTypeTransferCreated:
		var tr stripe.Transfer
		if err := json.Unmarshal(ev.Data.Raw, &tr); err != nil {
			return out, false, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		ref := strings.TrimSpace(tr.Metadata[payments.MetaPaymentIntentID])
		if ref == "" {
			return out, false, nil
		}
		out.Type = entities.EventTypeSettled
		out.OrderID = strings.TrimSpace(tr.Metadata[payments.MetaOrderID])
		out.PaymentReference = ref
		out.Amount = tr.Amount
		return out, true, nil
	}
	return out, false, nil
}

func eventTypeForPayment(meta map[string]string) (entities.EventType, bool) {
	typ := meta[payments.MetaType]
	if typ == "" {
		typ = meta["paymentType"]
	}
	switch typ {
	case entities.PaymentTypePlatformHold:
		return entities.EventTypeHeld, true
	case entities.PaymentTypeDirect:
		return entities.EventTypeSettled, true
	}
	return "", false
}
