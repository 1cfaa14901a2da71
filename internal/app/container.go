// Package app wires configuration, storage, providers and use cases for the
// binaries.
package app

import (
	"context"
	"fmt"
	"log"

	"taskilo_billing/internal/adapter/persistence/memory"
	"taskilo_billing/internal/adapter/persistence/repository"
	"taskilo_billing/internal/config"
	"taskilo_billing/internal/infrastructure/cache"
	"taskilo_billing/internal/infrastructure/database"
	"taskilo_billing/internal/infrastructure/messaging"
	"taskilo_billing/internal/infrastructure/payments"
	"taskilo_billing/internal/usecase"
	"taskilo_billing/internal/usecase/interfaces"
)

type Container struct {
	Config config.Config

	Repo     interfaces.IOrderRepository
	Gateway  interfaces.IPaymentGateway
	Lookup   interfaces.IPaymentLookup
	Notifier interfaces.INotifier
	Cache    interfaces.IEventCache

	Orders      *usecase.OrderUseCase
	TimeEntries *usecase.TimeEntryUseCase
	Approvals   *usecase.ApprovalUseCase
	Billing     *usecase.BillingRequestUseCase
	Reconciler  *usecase.BillingReconciler
	RateAudit   *usecase.RateAuditUseCase

	closers []func()
}

// Build connects every backend named by cfg. Only the store is mandatory;
// a missing gateway, broker or cache degrades the service instead of
// stopping it.
func Build(ctx context.Context, cfg config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	repo, err := newRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.Repo = repo

	gateway, err := payments.NewGateway(cfg)
	if err != nil {
		log.Printf("[billing][app] payment gateway not configured provider=%s err=%v", cfg.PaymentProvider, err)
	} else {
		c.Gateway = gateway
	}
	c.Lookup = newLookup(cfg, c.Gateway)
	c.Notifier = c.newNotifier(cfg)
	c.Cache = c.newCache(ctx, cfg)

	c.Orders = usecase.NewOrderUseCase(c.Repo, cfg.Currency)
	c.TimeEntries = usecase.NewTimeEntryUseCase(c.Repo, cfg.ReconcileMaxAttempts)
	c.Approvals = usecase.NewApprovalUseCase(c.Repo, cfg.ReconcileMaxAttempts)
	c.Billing = usecase.NewBillingRequestUseCase(c.Repo, c.Gateway, cfg.PlatformFeeBps, cfg.ReconcileMaxAttempts)
	c.Reconciler = usecase.NewBillingReconciler(c.Repo, c.Notifier, c.Cache, usecase.ReconcilerConfig{
		Tolerance:      cfg.RateTolerance,
		Timeout:        cfg.ReconcileTimeout,
		MaxAttempts:    cfg.ReconcileMaxAttempts,
		EventRetention: cfg.EventRetention,
		EventCacheTTL:  cfg.EventCacheTTL,
	})
	c.RateAudit = usecase.NewRateAuditUseCase(c.Repo, cfg.RateTolerance)
	return c, nil
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

func newRepository(ctx context.Context, cfg config.Config) (interfaces.IOrderRepository, error) {
	switch cfg.StoreBackend {
	case config.StoreMemory:
		log.Printf("[billing][app] using in-memory order store")
		return memory.NewOrderRepository(), nil
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if cfg.DynamoDBEndpoint != "" {
			if err := database.EnsureTables(ctx, ddb, cfg.OrdersTable, cfg.EventsTable); err != nil {
				return nil, err
			}
		}
		log.Printf("[billing][app] using dynamodb orders_table=%s events_table=%s", cfg.OrdersTable, cfg.EventsTable)
		return repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable, cfg.EventsTable), nil
	}
	return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
}

// newLookup returns the Mercado Pago payment resolver used by its webhook,
// reusing the capture gateway when it already is one.
func newLookup(cfg config.Config, gateway interfaces.IPaymentGateway) interfaces.IPaymentLookup {
	if l, ok := gateway.(interfaces.IPaymentLookup); ok {
		return l
	}
	if cfg.MercadoPagoAccessToken == "" && !cfg.PaymentGatewayMock {
		return nil
	}
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("[billing][app] mercadopago lookup not configured err=%v", err)
		return nil
	}
	return mp
}

func (c *Container) newNotifier(cfg config.Config) interfaces.INotifier {
	if cfg.RabbitMQURL == "" {
		return messaging.LogNotifier{}
	}
	n, err := messaging.NewRabbitMQNotifier(cfg.RabbitMQURL, cfg.RabbitMQExchange)
	if err != nil {
		log.Printf("[billing][app] rabbitmq unavailable, notifications go to the log err=%v", err)
		return messaging.LogNotifier{}
	}
	c.closers = append(c.closers, n.Close)
	return n
}

func (c *Container) newCache(ctx context.Context, cfg config.Config) interfaces.IEventCache {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[billing][app] redis unavailable, event cache disabled addr=%s err=%v", cfg.RedisAddr, err)
		_ = rdb.Close()
		return nil
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return cache.NewRedisEventCache(rdb)
}
