package usecase

import (
	"context"
	"log"
	"strings"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/domain/rates"
	"taskilo_billing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// RateDrift describes a stored amount that no longer matches the amount
// recomputed from the order. EntryID is empty when the tracking rate itself
// differs from the rate derived from price and planned hours.
type RateDrift struct {
	OrderID    string               `json:"order_id"`
	EntryID    string               `json:"entry_id,omitempty"`
	Status     entities.EntryStatus `json:"status,omitempty"`
	Hours      decimal.Decimal      `json:"hours"`
	HourlyRate int64                `json:"hourly_rate"`
	Expected   int64                `json:"expected"`
	Stored     int64                `json:"stored"`
	Delta      int64                `json:"delta"`
}

type IRateAuditUseCase interface {
	AuditOrder(ctx context.Context, orderID string) ([]RateDrift, error)
	AuditByStatus(ctx context.Context, status entities.OrderStatus) ([]RateDrift, error)
}

// RateAuditUseCase reports drift; it never rewrites stored amounts.
type RateAuditUseCase struct {
	repo      interfaces.IOrderRepository
	tolerance int64
}

var _ IRateAuditUseCase = (*RateAuditUseCase)(nil)

func NewRateAuditUseCase(repo interfaces.IOrderRepository, tolerance int64) *RateAuditUseCase {
	return &RateAuditUseCase{repo: repo, tolerance: tolerance}
}

func (u *RateAuditUseCase) AuditOrder(ctx context.Context, orderID string) ([]RateDrift, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		return nil, ErrOrderNotFound
	}
	return u.audit(o), nil
}

func (u *RateAuditUseCase) AuditByStatus(ctx context.Context, status entities.OrderStatus) ([]RateDrift, error) {
	if !status.Valid() {
		return nil, ErrValidation
	}
	orders, err := u.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]RateDrift, 0)
	for _, o := range orders {
		out = append(out, u.audit(o)...)
	}
	log.Printf("[billing][audit] status=%s orders=%d drifts=%d", status, len(orders), len(out))
	return out, nil
}

func (u *RateAuditUseCase) audit(o entities.Order) []RateDrift {
	out := make([]RateDrift, 0)
	tt := o.TimeTracking
	if tt == nil {
		return out
	}

	if derived, err := rates.DeriveHourlyRate(o.TotalPrice, o.PlannedHours); err != nil {
		log.Printf("[billing][audit] WARNING cannot derive rate order_id=%s err=%v", o.ID, err)
	} else if derived != tt.HourlyRate {
		out = append(out, RateDrift{
			OrderID:    o.ID,
			Hours:      o.PlannedHours,
			HourlyRate: tt.HourlyRate,
			Expected:   derived,
			Stored:     tt.HourlyRate,
			Delta:      absInt64(derived - tt.HourlyRate),
		})
	}

	for _, e := range tt.Entries {
		d, err := rates.CheckBillable(e.Hours, tt.HourlyRate, e.BillableAmount, u.tolerance)
		if err != nil {
			log.Printf("[billing][audit] WARNING invalid entry order_id=%s entry_id=%s err=%v", o.ID, e.ID, err)
			continue
		}
		if !d.Exceeded {
			continue
		}
		out = append(out, RateDrift{
			OrderID:    o.ID,
			EntryID:    e.ID,
			Status:     e.Status,
			Hours:      e.Hours,
			HourlyRate: tt.HourlyRate,
			Expected:   d.Expected,
			Stored:     d.Stored,
			Delta:      d.Delta,
		})
	}
	if len(out) > 0 {
		log.Printf("[billing][audit] WARNING drift order_id=%s findings=%d tolerance=%d", o.ID, len(out), u.tolerance)
	}
	return out
}
