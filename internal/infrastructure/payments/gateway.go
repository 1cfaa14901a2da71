package payments

import (
	"fmt"

	"taskilo_billing/internal/config"
	"taskilo_billing/internal/usecase/interfaces"
)

// NewGateway returns the capture gateway for cfg.PaymentProvider.
func NewGateway(cfg config.Config) (interfaces.IPaymentGateway, error) {
	switch cfg.PaymentProvider {
	case config.ProviderStripe:
		g, err := NewStripeGateway(cfg.StripeSecretKey, cfg.PaymentGatewayMock)
		if err != nil {
			return nil, err
		}
		return g, nil
	case config.ProviderMercadoPago:
		g, err := NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, fmt.Errorf("unknown PAYMENT_PROVIDER %q", cfg.PaymentProvider)
}
