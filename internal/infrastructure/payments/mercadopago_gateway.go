package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
)

const ProviderMercadoPago = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// mercadoPagoAPI is the part of payment.Client the gateway uses.
type mercadoPagoAPI interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type MercadoPagoGateway struct {
	client   mercadoPagoAPI
	mockMode bool
}

var (
	_ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)
	_ interfaces.IPaymentLookup  = (*MercadoPagoGateway)(nil)
)

func NewMercadoPagoGateway(accessToken string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[billing][gateway] mercadopago mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[billing][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[billing][gateway] failed creating mercadopago sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[billing][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Provider() string { return ProviderMercadoPago }

// CreateCapture opens a Mercado Pago payment for the entries. The order id
// travels as external_reference so notifications can be routed back.
func (g *MercadoPagoGateway) CreateCapture(ctx context.Context, req entities.CaptureRequest) (entities.CaptureResult, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[billing][gateway] mercadopago mock create order_id=%s provider_payment_id=%s amount=%d", req.OrderID, id, req.Amount)
		return entities.CaptureResult{Reference: id, Provider: ProviderMercadoPago, Status: "authorized"}, nil
	}
	if g == nil || g.client == nil {
		log.Printf("[billing][gateway] mercadopago gateway not configured")
		return entities.CaptureResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	in := payment.Request{
		TransactionAmount: minorToMajor(req.Amount),
		Description:       req.Description,
		ExternalReference: req.OrderID,
		PaymentMethodID:   req.PaymentMethodID,
		Metadata: map[string]any{
			"order_id":     req.OrderID,
			"entry_ids":    strings.Join(req.EntryIDs, ","),
			"type":         entities.PaymentTypePlatformHold,
			"platform_fee": req.PlatformFee,
		},
	}
	if req.PayerEmail != "" {
		in.Payer = &payment.PayerRequest{Email: req.PayerEmail}
	}
	log.Printf("[billing][gateway] mercadopago create start order_id=%s amount=%d", req.OrderID, req.Amount)

	resp, err := g.client.Create(ctx, in)
	if err != nil {
		log.Printf("[billing][gateway] mercadopago sdk create failed order_id=%s err=%v", req.OrderID, err)
		return entities.CaptureResult{}, err
	}
	log.Printf("[billing][gateway] mercadopago create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return entities.CaptureResult{
		Reference: strconv.Itoa(resp.ID),
		Provider:  ProviderMercadoPago,
		Status:    resp.Status,
	}, nil
}

// LookupPayment fetches a payment and turns its current status into a billing
// event. ok is false for statuses that carry no billing meaning.
func (g *MercadoPagoGateway) LookupPayment(ctx context.Context, paymentID string) (entities.BillingEvent, bool, error) {
	if g != nil && g.mockMode {
		log.Printf("[billing][gateway] mercadopago mock lookup ignored provider_payment_id=%s", paymentID)
		return entities.BillingEvent{}, false, nil
	}
	if g == nil || g.client == nil {
		return entities.BillingEvent{}, false, ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil || id <= 0 {
		return entities.BillingEvent{}, false, fmt.Errorf("%w: mercado pago payment id %q", interfaces.ErrInvalidPaymentID, paymentID)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[billing][gateway] mercadopago sdk get failed provider_payment_id=%d err=%v", id, err)
		return entities.BillingEvent{}, false, err
	}
	typ, ok := MercadoPagoEventType(resp.Status)
	if !ok {
		log.Printf("[billing][gateway] mercadopago status ignored provider_payment_id=%d status=%s", id, resp.Status)
		return entities.BillingEvent{}, false, nil
	}
	ref := strconv.Itoa(resp.ID)
	return entities.BillingEvent{
		ExternalID:       ref + ":" + resp.Status,
		Provider:         ProviderMercadoPago,
		OrderID:          resp.ExternalReference,
		PaymentReference: ref,
		Amount:           majorToMinor(resp.TransactionAmount),
		Type:             typ,
	}, true, nil
}

// MercadoPagoEventType maps a payment status to the billing event it confirms.
func MercadoPagoEventType(status string) (entities.EventType, bool) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "authorized":
		return entities.EventTypeHeld, true
	case "approved":
		return entities.EventTypeSettled, true
	case "charged_back":
		return entities.EventTypeDisputed, true
	}
	return "", false
}

func minorToMajor(v int64) float64 {
	return decimal.New(v, -2).InexactFloat64()
}

func majorToMinor(v float64) int64 {
	return decimal.NewFromFloat(v).Shift(2).Round(0).IntPart()
}
