package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/domain/rates"
	"taskilo_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrderInput struct {
	ID           string
	CustomerID   string
	ProviderID   string
	TotalPrice   int64
	PlannedHours decimal.Decimal
	Currency     string
	StartDate    time.Time
	EndDate      time.Time
	Status       entities.OrderStatus
	Billing      entities.BillingAddress
}

// IOrderUseCase covers the order lifecycle up to the point where hours can be
// logged against it.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	InitializeTimeTracking(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	currency string
	now      func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, defaultCurrency string) *OrderUseCase {
	if defaultCurrency == "" {
		defaultCurrency = "eur"
	}
	return &OrderUseCase{repo: repo, currency: strings.ToLower(defaultCurrency), now: time.Now}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if in.TotalPrice <= 0 {
		return entities.Order{}, fmt.Errorf("%w: total price must be positive", ErrInvalidOrder)
	}
	if !in.PlannedHours.IsPositive() {
		return entities.Order{}, fmt.Errorf("%w: planned hours must be positive", ErrInvalidOrder)
	}
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && in.EndDate.Before(in.StartDate) {
		return entities.Order{}, fmt.Errorf("%w: end date before start date", ErrInvalidOrder)
	}
	status := in.Status
	if status == "" {
		status = entities.OrderStatusCreated
	}
	if !canStartTracking(status) {
		return entities.Order{}, fmt.Errorf("%w: orders start as created, paid or clearing", ErrInvalidOrder)
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}
	currency := strings.ToLower(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = u.currency
	}

	now := u.now().UTC()
	o := entities.Order{
		ID:           id,
		CustomerID:   strings.TrimSpace(in.CustomerID),
		ProviderID:   strings.TrimSpace(in.ProviderID),
		TotalPrice:   in.TotalPrice,
		PlannedHours: in.PlannedHours,
		Currency:     currency,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Status:       status,
		Billing:      in.Billing,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		if errors.Is(err, interfaces.ErrOrderAlreadyExists) {
			return entities.Order{}, fmt.Errorf("%w: order %s already exists", ErrInvalidOrder, id)
		}
		log.Printf("[billing][order] create failed order_id=%s err=%v", id, err)
		return entities.Order{}, err
	}
	log.Printf("[billing][order] created order_id=%s total_price=%d planned_hours=%s", created.ID, created.TotalPrice, created.PlannedHours)
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// InitializeTimeTracking attaches time tracking to a confirmed order. The
// hourly rate is derived here from the order's own price and planned hours
// and never recomputed afterwards.
func (u *OrderUseCase) InitializeTimeTracking(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	updated, err := mutateOrder(ctx, u.repo, id, defaultMaxAttempts, func(o *entities.Order) error {
		if o.TimeTracking != nil {
			return ErrTimeTrackingAlreadyInitialized
		}
		if !canStartTracking(o.Status) {
			return fmt.Errorf("%w: order %s is %s", ErrInvalidOrderState, o.ID, o.Status)
		}
		rate, err := rates.DeriveHourlyRate(o.TotalPrice, o.PlannedHours)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
		}
		now := u.now().UTC()
		o.TimeTracking = &entities.TimeTracking{
			HourlyRate: rate,
			Entries:    []entities.TimeEntry{},
		}
		o.TimeTracking.Recompute(now)
		o.Status = entities.OrderStatusInProgress
		return nil
	})
	if err != nil {
		log.Printf("[billing][order] init time tracking failed order_id=%s err=%v", id, err)
		return entities.Order{}, err
	}
	log.Printf("[billing][order] time tracking initialized order_id=%s hourly_rate=%d", id, updated.TimeTracking.HourlyRate)
	return updated, nil
}

func canStartTracking(s entities.OrderStatus) bool {
	switch s {
	case entities.OrderStatusCreated, entities.OrderStatusPaid, entities.OrderStatusClearing:
		return true
	}
	return false
}
