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

	"github.com/stripe/stripe-go/v84"
)

const ProviderStripe = "stripe"

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

// Metadata keys shared with the webhook adapter.
const (
	MetaOrderID         = "orderId"
	MetaEntryIDs        = "entryIds"
	MetaType            = "type"
	MetaPlatformFee     = "platformFee"
	MetaPaymentIntentID = "paymentIntentId"
)

type paymentIntentCreator interface {
	Create(ctx context.Context, params *stripe.PaymentIntentCreateParams) (*stripe.PaymentIntent, error)
}

type StripeGateway struct {
	intents  paymentIntentCreator
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string, mockMode bool) (*StripeGateway, error) {
	if mockMode {
		log.Printf("[billing][gateway] stripe mock mode enabled")
		return &StripeGateway{mockMode: true}, nil
	}
	if secretKey == "" {
		log.Printf("[billing][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}
	sc := stripe.NewClient(secretKey)
	log.Printf("[billing][gateway] Stripe client initialized")
	return &StripeGateway{intents: sc.V1PaymentIntents}, nil
}

func (g *StripeGateway) Provider() string { return ProviderStripe }

// CreateCapture creates a PaymentIntent on the platform account. Funds stay
// there until the transfer to the provider, hence the platform hold type.
func (g *StripeGateway) CreateCapture(ctx context.Context, req entities.CaptureRequest) (entities.CaptureResult, error) {
	if g != nil && g.mockMode {
		ref := fmt.Sprintf("pi_mock_%d", time.Now().UTC().UnixNano())
		log.Printf("[billing][gateway] stripe mock create order_id=%s ref=%s amount=%d", req.OrderID, ref, req.Amount)
		return entities.CaptureResult{Reference: ref, Provider: ProviderStripe, Status: string(stripe.PaymentIntentStatusRequiresPaymentMethod)}, nil
	}
	if g == nil || g.intents == nil {
		log.Printf("[billing][gateway] stripe gateway not configured")
		return entities.CaptureResult{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.PaymentIntentCreateParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: map[string]string{
			MetaOrderID:     req.OrderID,
			MetaEntryIDs:    strings.Join(req.EntryIDs, ","),
			MetaType:        entities.PaymentTypePlatformHold,
			MetaPlatformFee: strconv.FormatInt(req.PlatformFee, 10),
		},
	}
	if req.PayerEmail != "" {
		params.ReceiptEmail = stripe.String(req.PayerEmail)
	}
	if req.PaymentMethodID != "" {
		params.PaymentMethod = stripe.String(req.PaymentMethodID)
	}
	log.Printf("[billing][gateway] stripe create start order_id=%s amount=%d currency=%s", req.OrderID, req.Amount, req.Currency)

	pi, err := g.intents.Create(ctx, params)
	if err != nil {
		log.Printf("[billing][gateway] stripe create failed order_id=%s err=%v", req.OrderID, err)
		return entities.CaptureResult{}, err
	}
	log.Printf("[billing][gateway] stripe create success ref=%s status=%s", pi.ID, pi.Status)

	return entities.CaptureResult{
		Reference:    pi.ID,
		Provider:     ProviderStripe,
		Status:       string(pi.Status),
		ClientSecret: pi.ClientSecret,
	}, nil
}
