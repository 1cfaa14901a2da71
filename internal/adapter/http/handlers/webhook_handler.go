package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	response "taskilo_billing/internal/adapter/http/dto/response"
	"taskilo_billing/internal/adapter/webhook"
	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase"
	"taskilo_billing/internal/usecase/interfaces"
	"taskilo_billing/pkg"

	"github.com/gin-gonic/gin"
)

const (
	maxWebhookBodyBytes = 64 << 10
	alertTimeout        = 5 * time.Second
	providerMercadoPago = "mercadopago"
)

var (
	errWebhookNotConfigured = pkg.NewDomainErrorSimple("WEBHOOK_NOT_CONFIGURED", "Webhook endpoint not configured", http.StatusServiceUnavailable)
	errWebhookSignature     = pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusBadRequest)
	errWebhookPayload       = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
	errWebhookTooLarge      = pkg.NewDomainErrorSimple("PAYLOAD_TOO_LARGE", "Webhook payload too large", http.StatusRequestEntityTooLarge)
)

type WebhookConfig struct {
	StripeSecret      string
	MercadoPagoSecret string
}

// WebhookHandler receives provider confirmations and hands them to the
// reconciler. Providers redeliver on any non-2xx status, so only failures
// that can succeed later answer with one.
type WebhookHandler struct {
	reconciler usecase.IBillingReconciler
	lookup     interfaces.IPaymentLookup
	notifier   interfaces.INotifier
	cfg        WebhookConfig
	now        func() time.Time
}

// NewWebhookHandler builds the handler. lookup and notifier may be nil; without
// a lookup the Mercado Pago endpoint answers 503.
func NewWebhookHandler(reconciler usecase.IBillingReconciler, lookup interfaces.IPaymentLookup, notifier interfaces.INotifier, cfg WebhookConfig) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler, lookup: lookup, notifier: notifier, cfg: cfg, now: time.Now}
}

// StripeWebhook godoc
// @Summary      Stripe payment confirmations
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Stripe signature"
// @Success      200               {object}  response.WebhookResponse
// @Failure      400               {object}  pkg.HTTPError
// @Failure      503               {object}  pkg.HTTPError
// @Router       /webhooks/stripe [post]
func (h *WebhookHandler) StripeWebhook(c *gin.Context) {
	if h.cfg.StripeSecret == "" {
		log.Printf("[billing][webhook] stripe delivery refused: STRIPE_WEBHOOK_SECRET not set")
		c.JSON(errWebhookNotConfigured.HTTPStatus, errWebhookNotConfigured.ToHTTPError())
		return
	}
	body, ok := readWebhookBody(c)
	if !ok {
		return
	}

	ev, err := webhook.VerifyStripe(body, c.GetHeader("Stripe-Signature"), h.cfg.StripeSecret)
	if err != nil {
		log.Printf("[billing][webhook] stripe signature rejected err=%v", err)
		c.JSON(errWebhookSignature.HTTPStatus, errWebhookSignature.ToHTTPError())
		return
	}

	billingEvent, ok, err := webhook.FromStripeEvent(ev)
	if err != nil {
		log.Printf("[billing][webhook] stripe payload malformed event_id=%s type=%s err=%v", ev.ID, ev.Type, err)
		c.JSON(errWebhookPayload.HTTPStatus, errWebhookPayload.ToHTTPError())
		return
	}
	if !ok {
		log.Printf("[billing][webhook] stripe event ignored event_id=%s type=%s", ev.ID, ev.Type)
		c.JSON(http.StatusOK, response.WebhookResponse{Received: true, Outcome: response.OutcomeIgnored, EventID: ev.ID})
		return
	}
	billingEvent.ReceivedAt = h.now().UTC()
	h.reconcile(c, billingEvent)
}

// MercadoPagoWebhook godoc
// @Summary      Mercado Pago payment notifications
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        x-signature   header    string  false  "Mercado Pago signature"
// @Param        x-request-id  header    string  false  "Mercado Pago request id"
// @Success      200           {object}  response.WebhookResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      503           {object}  pkg.HTTPError
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPagoWebhook(c *gin.Context) {
	if h.lookup == nil {
		log.Printf("[billing][webhook] mercadopago delivery refused: no payment lookup configured")
		c.JSON(errWebhookNotConfigured.HTTPStatus, errWebhookNotConfigured.ToHTTPError())
		return
	}
	body, ok := readWebhookBody(c)
	if !ok {
		return
	}

	n, err := webhook.ParseMercadoPagoNotification(body, c.Request.URL.Query())
	if err != nil {
		log.Printf("[billing][webhook] mercadopago payload malformed err=%v", err)
		c.JSON(errWebhookPayload.HTTPStatus, errWebhookPayload.ToHTTPError())
		return
	}
	if !n.IsPayment() {
		c.JSON(http.StatusOK, response.WebhookResponse{Received: true, Outcome: response.OutcomeIgnored})
		return
	}

	paymentID := n.PaymentID()
	if h.cfg.MercadoPagoSecret != "" {
		if err := webhook.VerifyMercadoPagoSignature(c.GetHeader("x-signature"), c.GetHeader("x-request-id"), paymentID, h.cfg.MercadoPagoSecret); err != nil {
			log.Printf("[billing][webhook] mercadopago signature rejected payment_id=%s err=%v", paymentID, err)
			c.JSON(errWebhookSignature.HTTPStatus, errWebhookSignature.ToHTTPError())
			return
		}
	}

	ev, ok, err := h.lookup.LookupPayment(c.Request.Context(), paymentID)
	if errors.Is(err, interfaces.ErrInvalidPaymentID) {
		ev = entities.BillingEvent{Provider: providerMercadoPago, ExternalID: paymentID, PaymentReference: paymentID}
		log.Printf("[billing][webhook] ERROR mercadopago notification rejected, needs operator review payment_id=%q err=%v", paymentID, err)
		h.alert(c.Request.Context(), ev, err)
		c.JSON(http.StatusOK, response.WebhookResponse{Received: true, Outcome: response.OutcomeRejected, EventID: paymentID, Reason: err.Error()})
		return
	}
	if err != nil {
		log.Printf("[billing][webhook] mercadopago lookup failed payment_id=%s err=%v", paymentID, err)
		appErr := pkg.NewDomainError("PAYMENT_LOOKUP_FAILED", "Payment lookup failed, retry", err, http.StatusServiceUnavailable)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !ok {
		log.Printf("[billing][webhook] mercadopago payment ignored payment_id=%s", paymentID)
		c.JSON(http.StatusOK, response.WebhookResponse{Received: true, Outcome: response.OutcomeIgnored, EventID: ev.ExternalID})
		return
	}
	ev.ReceivedAt = h.now().UTC()
	h.reconcile(c, ev)
}

type rejectionAlert struct {
	Provider         string             `json:"provider"`
	EventID          string             `json:"event_id"`
	OrderID          string             `json:"order_id"`
	PaymentReference string             `json:"payment_reference"`
	Type             entities.EventType `json:"type"`
	Amount           int64              `json:"amount"`
	Reason           string             `json:"reason"`
}

func (h *WebhookHandler) reconcile(c *gin.Context, ev entities.BillingEvent) {
	res, err := h.reconciler.Reconcile(c.Request.Context(), ev)
	if err == nil {
		c.JSON(http.StatusOK, response.FromReconcile(res))
		return
	}

	if usecase.IsRetryable(err) {
		log.Printf("[billing][webhook] reconcile failed, asking for redelivery provider=%s event_id=%s order_id=%s err=%v",
			ev.Provider, ev.ExternalID, ev.OrderID, err)
		appErr := mapBillingError(err)
		c.JSON(http.StatusServiceUnavailable, pkg.HTTPError{Code: appErr.Code, Message: appErr.Message})
		return
	}

	log.Printf("[billing][webhook] ERROR event rejected, needs operator review provider=%s event_id=%s order_id=%s ref=%s type=%s err=%v",
		ev.Provider, ev.ExternalID, ev.OrderID, ev.PaymentReference, ev.Type, err)
	h.alert(c.Request.Context(), ev, err)
	c.JSON(http.StatusOK, response.WebhookResponse{
		Received: true,
		Outcome:  response.OutcomeRejected,
		EventID:  ev.ExternalID,
		Reason:   err.Error(),
	})
}

func (h *WebhookHandler) alert(ctx context.Context, ev entities.BillingEvent, cause error) {
	if h.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)
	defer cancel()
	err := h.notifier.Publish(ctx, usecase.RoutingKeyAlert, rejectionAlert{
		Provider:         ev.Provider,
		EventID:          ev.ExternalID,
		OrderID:          ev.OrderID,
		PaymentReference: ev.PaymentReference,
		Type:             ev.Type,
		Amount:           ev.Amount,
		Reason:           cause.Error(),
	})
	if err != nil {
		log.Printf("[billing][webhook] alert publish failed event_id=%s err=%v", ev.ExternalID, err)
	}
}

func readWebhookBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(errWebhookTooLarge.HTTPStatus, errWebhookTooLarge.ToHTTPError())
			return nil, false
		}
		c.JSON(errWebhookPayload.HTTPStatus, errWebhookPayload.ToHTTPError())
		return nil, false
	}
	return body, true
}
