package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskilo_billing/internal/adapter/http/middleware"
	"taskilo_billing/internal/app"
	"taskilo_billing/internal/config"
	"taskilo_billing/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v84"
	stripewebhook "github.com/stripe/stripe-go/v84/webhook"
)

const testWebhookSecret = "whsec_routes"

func testConfig() config.Config {
	return config.Config{
		StoreBackend:         config.StoreMemory,
		PaymentProvider:      config.ProviderStripe,
		Currency:             "eur",
		RateTolerance:        10,
		ReconcileTimeout:     5 * time.Second,
		ReconcileMaxAttempts: 3,
		EventRetention:       time.Hour,
		StripeWebhookSecret:  testWebhookSecret,
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterWith(t, testConfig())
}

func newTestRouterWith(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, err := app.Build(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return NewRouter(c)
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)
	w, body := do(t, r, http.MethodGet, "/v1/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", body["message"])
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestBillingFlow(t *testing.T) {
	r := newTestRouter(t)

	w, _ := do(t, r, http.MethodPost, "/v1/orders", map[string]any{
		"id": "o-1", "total_price": 98400, "planned_hours": "10", "status": "paid",
		"start_date": "2025-03-01", "end_date": "2025-03-31",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, body := do(t, r, http.MethodPost, "/v1/orders/o-1/time-tracking", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	tracking := body["time_tracking"].(map[string]any)
	assert.Equal(t, float64(9840), tracking["hourly_rate"])

	w, body = do(t, r, http.MethodPost, "/v1/orders/o-1/time-entries", map[string]any{"date": "2025-03-14", "hours": 3})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, float64(29520), body["billable_amount"])
	entryID := body["id"].(string)

	w, _ = do(t, r, http.MethodPost, "/v1/orders/o-1/time-entries", map[string]any{"date": "2025-04-02", "hours": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code, "date outside the contracted range")

	w, _ = do(t, r, http.MethodPatch, "/v1/orders/o-1/time-entries/"+entryID+"/status", map[string]any{"status": "billing_pending", "payment_reference": "pi_abc"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	deliver := func(eventID string) (*httptest.ResponseRecorder, map[string]any) {
		payload, err := json.Marshal(map[string]any{
			"id": eventID, "object": "event", "type": "payment_intent.succeeded", "api_version": stripe.APIVersion,
			"created": time.Now().Unix(),
			"data": map[string]any{"object": map[string]any{
				"id": "pi_abc", "object": "payment_intent", "amount": 29520,
				"metadata": map[string]any{"orderId": "o-1", "type": entities.PaymentTypePlatformHold},
			}},
		})
		require.NoError(t, err)
		sp := stripewebhook.GenerateTestSignedPayload(&stripewebhook.UnsignedPayload{Payload: payload, Secret: testWebhookSecret, Timestamp: time.Now()})
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewReader(sp.Payload))
		req.Header.Set("Stripe-Signature", sp.Header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		var out map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		return w, out
	}

	w, body = deliver("evt_1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "applied", body["outcome"])

	// entries already moved on, so a redelivery resolves to nothing
	w, body = deliver("evt_1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "noop", body["outcome"])

	w, body = do(t, r, http.MethodGet, "/v1/orders/o-1/time-tracking/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "platform_held", body["status"])

	w, body = do(t, r, http.MethodGet, "/v1/orders/o-1/rate-audit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["drifts"])

	w, _ = do(t, r, http.MethodGet, "/v1/orders/o-404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApprovalFlow(t *testing.T) {
	cfg := testConfig()
	cfg.PaymentGatewayMock = true
	cfg.PlatformFeeBps = 450
	r := newTestRouterWith(t, cfg)

	w, _ := do(t, r, http.MethodPost, "/v1/orders", map[string]any{
		"id": "o-2", "total_price": 98400, "planned_hours": "10", "status": "paid",
		"start_date": "2025-03-01", "end_date": "2025-03-31",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w, _ = do(t, r, http.MethodPost, "/v1/orders/o-2/time-tracking", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ids []string
	for _, hours := range []int{3, 2} {
		w, body := do(t, r, http.MethodPost, "/v1/orders/o-2/time-entries", map[string]any{"date": "2025-03-14", "hours": hours})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "not_submitted", body["approval"])
		ids = append(ids, body["id"].(string))
	}

	w, _ = do(t, r, http.MethodPost, "/v1/orders/o-2/billing/capture", map[string]any{"entry_ids": ids[:1]})
	assert.Equal(t, http.StatusConflict, w.Code, "unapproved entries are not billable")

	w, body := do(t, r, http.MethodPost, "/v1/orders/o-2/approvals", map[string]any{"entry_ids": ids, "message": "two extra sessions"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, float64(49200), body["total_amount"])
	requestID := body["id"].(string)

	w, body = do(t, r, http.MethodPost, "/v1/orders/o-2/approvals/"+requestID+"/decision", map[string]any{
		"decision": "partially_approved", "approved_entry_ids": ids[:1], "feedback": "second session was not agreed",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "3", body["total_approved_hours"])

	w, _ = do(t, r, http.MethodPost, "/v1/orders/o-2/approvals/"+requestID+"/decision", map[string]any{"decision": "approved"})
	assert.Equal(t, http.StatusConflict, w.Code, "answers are final")

	w, _ = do(t, r, http.MethodPost, "/v1/orders/o-2/billing/capture", map[string]any{"entry_ids": ids[1:]})
	assert.Equal(t, http.StatusConflict, w.Code, "rejected entries are not billable")

	w, body = do(t, r, http.MethodPost, "/v1/orders/o-2/billing/capture", map[string]any{"entry_ids": ids[:1]})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, float64(29520), body["amount"])

	w, body = do(t, r, http.MethodGet, "/v1/orders/o-2/time-tracking/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", body["total_logged_hours"])
	assert.Equal(t, "3", body["total_approved_hours"])
}
