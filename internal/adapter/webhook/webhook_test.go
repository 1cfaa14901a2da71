package webhook

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"taskilo_billing/internal/domain/entities"

	"github.com/stripe/stripe-go/v84"
	stripewebhook "github.com/stripe/stripe-go/v84/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test"

func stripeEvent(t *testing.T, id string, typ string, object map[string]any) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"id":          id,
		"object":      "event",
		"type":        typ,
		"api_version": stripe.APIVersion,
		"created":     time.Now().Unix(),
		"data":        map[string]any{"object": object},
	})
	require.NoError(t, err)
	return b
}

func signed(payload []byte) *stripewebhook.SignedPayload {
	return stripewebhook.GenerateTestSignedPayload(&stripewebhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testSecret,
		Timestamp: time.Now(),
	})
}

func TestVerifyStripe(t *testing.T) {
	payload := stripeEvent(t, "evt_1", "payment_intent.succeeded", map[string]any{"id": "pi_abc", "object": "payment_intent"})

	t.Run("valid signature", func(t *testing.T) {
		sp := signed(payload)
		ev, err := VerifyStripe(sp.Payload, sp.Header, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "evt_1", ev.ID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		sp := signed(payload)
		_, err := VerifyStripe(sp.Payload, sp.Header, "whsec_other")
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("tampered body", func(t *testing.T) {
		sp := signed(payload)
		tampered := stripeEvent(t, "evt_2", "payment_intent.succeeded", map[string]any{"id": "pi_abc", "object": "payment_intent"})
		_, err := VerifyStripe(tampered, sp.Header, testSecret)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := VerifyStripe(payload, "", testSecret)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})
}

func TestFromStripeEvent(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		object  map[string]any
		wantOK  bool
		want    entities.BillingEvent
		wantErr bool
	}{
		{
			name: "platform hold payment intent",
			typ:  "payment_intent.succeeded",
			object: map[string]any{
				"id": "pi_abc", "object": "payment_intent", "amount": 49200, "amount_received": 49200,
				"metadata": map[string]any{"orderId": "o-1", "type": "additional_hours_platform_hold", "entryIds": "e-1,e-2"},
			},
			wantOK: true,
			want:   entities.BillingEvent{ExternalID: "evt_1", Provider: "stripe", OrderID: "o-1", PaymentReference: "pi_abc", Amount: 49200, Type: entities.EventTypeHeld},
		},
		{
			name: "direct payment settles",
			typ:  "payment_intent.succeeded",
			object: map[string]any{
				"id": "pi_abc", "object": "payment_intent", "amount": 100,
				"metadata": map[string]any{"orderId": "o-1", "paymentType": "additional_hours"},
			},
			wantOK: true,
			want:   entities.BillingEvent{ExternalID: "evt_1", Provider: "stripe", OrderID: "o-1", PaymentReference: "pi_abc", Amount: 100, Type: entities.EventTypeSettled},
		},
		{
			name: "charge resolves its payment intent",
			typ:  "charge.succeeded",
			object: map[string]any{
				"id": "ch_1", "object": "charge", "amount": 49200, "payment_intent": "pi_abc",
				"metadata": map[string]any{"orderId": "o-1", "type": "additional_hours_platform_hold"},
			},
			wantOK: true,
			want:   entities.BillingEvent{ExternalID: "evt_1", Provider: "stripe", OrderID: "o-1", PaymentReference: "pi_abc", Amount: 49200, Type: entities.EventTypeHeld},
		},
		{
			name: "transfer settles",
			typ:  "transfer.created",
			object: map[string]any{
				"id": "tr_1", "object": "transfer", "amount": 46986,
				"metadata": map[string]any{"orderId": "o-1", "paymentIntentId": "pi_abc"},
			},
			wantOK: true,
			want:   entities.BillingEvent{ExternalID: "evt_1", Provider: "stripe", OrderID: "o-1", PaymentReference: "pi_abc", Amount: 46986, Type: entities.EventTypeSettled},
		},
		{
			name:   "other payment types are ignored",
			typ:    "payment_intent.succeeded",
			object: map[string]any{"id": "pi_abc", "object": "payment_intent", "metadata": map[string]any{"type": "b2b_project"}},
		},
		{
			name:   "transfer without payment reference is ignored",
			typ:    "transfer.created",
			object: map[string]any{"id": "tr_1", "object": "transfer", "metadata": map[string]any{"orderId": "o-1"}},
		},
		{
			name:   "unrelated event type",
			typ:    "customer.created",
			object: map[string]any{"id": "cus_1", "object": "customer"},
		},
		{
			name:   "missing order id still maps so the reconciler can reject it",
			typ:    "payment_intent.succeeded",
			object: map[string]any{"id": "pi_abc", "object": "payment_intent", "metadata": map[string]any{"type": "additional_hours_platform_hold"}},
			wantOK: true,
			want:   entities.BillingEvent{ExternalID: "evt_1", Provider: "stripe", PaymentReference: "pi_abc", Type: entities.EventTypeHeld},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := signed(stripeEvent(t, "evt_1", tt.typ, tt.object))
			ev, err := VerifyStripe(sp.Payload, sp.Header, testSecret)
			require.NoError(t, err)

			got, ok, err := FromStripeEvent(ev)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	t.Run("event without data", func(t *testing.T) {
		_, _, err := FromStripeEvent(stripe.Event{ID: "evt_x", Type: stripe.EventTypeChargeSucceeded})
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})
}

func TestParseMercadoPagoNotification(t *testing.T) {
	t.Run("webhook body with quoted id", func(t *testing.T) {
		n, err := ParseMercadoPagoNotification([]byte(`{"action":"payment.updated","type":"payment","data":{"id":"987"}}`), nil)
		require.NoError(t, err)
		assert.True(t, n.IsPayment())
		assert.Equal(t, "987", n.PaymentID())
	})

	t.Run("numeric id", func(t *testing.T) {
		n, err := ParseMercadoPagoNotification([]byte(`{"id":12,"type":"payment","data":{"id":987}}`), nil)
		require.NoError(t, err)
		assert.Equal(t, "987", n.PaymentID())
	})

	t.Run("query fallback", func(t *testing.T) {
		n, err := ParseMercadoPagoNotification(nil, url.Values{"data.id": {"555"}, "type": {"payment"}})
		require.NoError(t, err)
		assert.Equal(t, "555", n.PaymentID())
	})

	t.Run("non payment topic", func(t *testing.T) {
		n, err := ParseMercadoPagoNotification([]byte(`{"type":"merchant_order","data":{"id":"mo-1"}}`), nil)
		require.NoError(t, err)
		assert.False(t, n.IsPayment())
	})

	t.Run("payment without id", func(t *testing.T) {
		_, err := ParseMercadoPagoNotification([]byte(`{"type":"payment","data":{}}`), nil)
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseMercadoPagoNotification([]byte(`{`), nil)
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})
}

func TestVerifyMercadoPagoSignature(t *testing.T) {
	const secret = "mp-secret"
	sig := hex.EncodeToString(signMercadoPago("id:987;request-id:req-1;ts:1700000000;", secret))
	header := "ts=1700000000,v1=" + sig

	assert.NoError(t, VerifyMercadoPagoSignature(header, "req-1", "987", secret))

	tests := []struct {
		name, header, requestID, dataID, secret string
	}{
		{"wrong secret", header, "req-1", "987", "other"},
		{"other payment", header, "req-1", "988", secret},
		{"other request", header, "req-2", "987", secret},
		{"missing v1", "ts=1700000000", "req-1", "987", secret},
		{"non hex", "ts=1700000000,v1=zz", "req-1", "987", secret},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyMercadoPagoSignature(tt.header, tt.requestID, tt.dataID, tt.secret)
			assert.True(t, errors.Is(err, ErrInvalidSignature), "got %v", err)
		})
	}
}
