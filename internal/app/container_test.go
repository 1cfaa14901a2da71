package app

import (
	"context"
	"testing"

	"taskilo_billing/internal/config"
	"taskilo_billing/internal/infrastructure/messaging"
	"taskilo_billing/internal/infrastructure/payments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		StoreBackend:         config.StoreMemory,
		PaymentProvider:      config.ProviderStripe,
		Currency:             "eur",
		RateTolerance:        10,
		ReconcileMaxAttempts: 3,
	}
}

func TestBuild_MemoryWithoutProviders(t *testing.T) {
	c, err := Build(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.Gateway)
	assert.Nil(t, c.Lookup)
	assert.Nil(t, c.Cache)
	assert.IsType(t, messaging.LogNotifier{}, c.Notifier)
	assert.NotNil(t, c.Orders)
	assert.NotNil(t, c.TimeEntries)
	assert.NotNil(t, c.Approvals)
	assert.NotNil(t, c.Billing)
	assert.NotNil(t, c.Reconciler)
	assert.NotNil(t, c.RateAudit)
}

func TestBuild_MockMercadoPagoServesBothRoles(t *testing.T) {
	cfg := memoryConfig()
	cfg.PaymentProvider = config.ProviderMercadoPago
	cfg.PaymentGatewayMock = true

	c, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Close()

	require.NotNil(t, c.Gateway)
	assert.Equal(t, payments.ProviderMercadoPago, c.Gateway.Provider())
	assert.Same(t, c.Gateway, c.Lookup)
}

func TestBuild_StripeCaptureWithMercadoPagoLookup(t *testing.T) {
	cfg := memoryConfig()
	cfg.PaymentGatewayMock = true

	c, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Close()

	require.NotNil(t, c.Gateway)
	assert.Equal(t, payments.ProviderStripe, c.Gateway.Provider())
	assert.NotNil(t, c.Lookup)
}

func TestBuild_UnknownStore(t *testing.T) {
	cfg := memoryConfig()
	cfg.StoreBackend = "postgres"

	_, err := Build(context.Background(), cfg)
	assert.ErrorContains(t, err, "STORE_BACKEND")
}
