package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "RATE_MISMATCH_TOLERANCE", "RECONCILE_TIMEOUT", "RECONCILE_MAX_ATTEMPTS",
		"PAYMENT_PROVIDER", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "STORE_BACKEND",
		"ORDERS_TABLE", "BILLING_EVENTS_TABLE", "BILLING_CURRENCY", "PLATFORM_FEE_BPS",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.RateTolerance != 10 {
		t.Fatalf("expected tolerance 10, got %d", cfg.RateTolerance)
	}
	if cfg.ReconcileTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.ReconcileTimeout)
	}
	if cfg.ReconcileMaxAttempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", cfg.ReconcileMaxAttempts)
	}
	if cfg.PaymentProvider != ProviderStripe || cfg.StoreBackend != StoreDynamoDB {
		t.Fatalf("unexpected provider/store %s/%s", cfg.PaymentProvider, cfg.StoreBackend)
	}
	if cfg.OrdersTable != "orders" || cfg.EventsTable != "billing_events" {
		t.Fatalf("unexpected tables %s/%s", cfg.OrdersTable, cfg.EventsTable)
	}
	if cfg.PlatformFeeBps != 450 || cfg.Currency != "eur" {
		t.Fatalf("unexpected fee/currency %d/%s", cfg.PlatformFeeBps, cfg.Currency)
	}
	if cfg.PaymentGatewayMock {
		t.Fatalf("expected mock mode off")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RATE_MISMATCH_TOLERANCE", "25")
	t.Setenv("RECONCILE_TIMEOUT", "3s")
	t.Setenv("RECONCILE_MAX_ATTEMPTS", "5")
	t.Setenv("PAYMENT_PROVIDER", "MercadoPago")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("STORE_BACKEND", "memory")

	cfg := Load()

	if cfg.RateTolerance != 25 {
		t.Fatalf("expected tolerance 25, got %d", cfg.RateTolerance)
	}
	if cfg.ReconcileTimeout != 3*time.Second || cfg.ReconcileMaxAttempts != 5 {
		t.Fatalf("unexpected reconcile settings %s/%d", cfg.ReconcileTimeout, cfg.ReconcileMaxAttempts)
	}
	if cfg.PaymentProvider != ProviderMercadoPago || !cfg.PaymentGatewayMock {
		t.Fatalf("unexpected gateway settings %s/%v", cfg.PaymentProvider, cfg.PaymentGatewayMock)
	}
	if cfg.StoreBackend != StoreMemory {
		t.Fatalf("expected memory store, got %s", cfg.StoreBackend)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_MISMATCH_TOLERANCE", "ten")
	t.Setenv("RECONCILE_TIMEOUT", "-1s")
	t.Setenv("RECONCILE_MAX_ATTEMPTS", "-2")

	cfg := Load()

	if cfg.RateTolerance != 10 {
		t.Fatalf("expected fallback tolerance 10, got %d", cfg.RateTolerance)
	}
	if cfg.ReconcileTimeout != 10*time.Second {
		t.Fatalf("expected fallback timeout, got %s", cfg.ReconcileTimeout)
	}
	if cfg.ReconcileMaxAttempts != 3 {
		t.Fatalf("expected fallback attempts, got %d", cfg.ReconcileMaxAttempts)
	}
}
