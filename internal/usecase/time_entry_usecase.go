package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/domain/rates"
	"taskilo_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultEntryCategory = "additional"

type AppendEntryInput struct {
	Date        time.Time
	Hours       decimal.Decimal
	Category    string
	Description string
}

type StatusTotals struct {
	Entries int             `json:"entries"`
	Hours   decimal.Decimal `json:"hours"`
	Amount  int64           `json:"amount"`
}

// BillingSummary is a read-only view of an order's time tracking.
type BillingSummary struct {
	OrderID                string                                `json:"order_id"`
	HourlyRate             int64                                 `json:"hourly_rate"`
	Status                 entities.TrackingStatus               `json:"status"`
	TotalLoggedHours       decimal.Decimal                       `json:"total_logged_hours"`
	TotalApprovedHours     decimal.Decimal                       `json:"total_approved_hours"`
	TotalBillableAmount    int64                                 `json:"total_billable_amount"`
	TotalTransferredAmount int64                                 `json:"total_transferred_amount"`
	ByStatus               map[entities.EntryStatus]StatusTotals `json:"by_status"`
	LastUpdated            time.Time                             `json:"last_updated"`
}

// ITimeEntryUseCase is the time entry store. UpdateEntryStatus is the only
// way entry status changes outside of reconciliation, and both paths go
// through entities.TimeEntry.Transition.
type ITimeEntryUseCase interface {
	AppendEntry(ctx context.Context, orderID string, in AppendEntryInput) (entities.TimeEntry, error)
	ListEntries(ctx context.Context, orderID string, statusFilter string) ([]entities.TimeEntry, error)
	UpdateEntryStatus(ctx context.Context, orderID, entryID, newStatus, paymentRef string) (entities.TimeEntry, error)
	Summary(ctx context.Context, orderID string) (BillingSummary, error)
}

type TimeEntryUseCase struct {
	repo        interfaces.IOrderRepository
	maxAttempts int
	now         func() time.Time
}

var _ ITimeEntryUseCase = (*TimeEntryUseCase)(nil)

func NewTimeEntryUseCase(repo interfaces.IOrderRepository, maxAttempts int) *TimeEntryUseCase {
	return &TimeEntryUseCase{repo: repo, maxAttempts: maxAttempts, now: time.Now}
}

func (u *TimeEntryUseCase) AppendEntry(ctx context.Context, orderID string, in AppendEntryInput) (entities.TimeEntry, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.TimeEntry{}, ErrInvalidOrderID
	}
	if !in.Hours.IsPositive() {
		return entities.TimeEntry{}, fmt.Errorf("%w: hours must be positive, got %s", ErrValidation, in.Hours.String())
	}
	if in.Date.IsZero() {
		return entities.TimeEntry{}, fmt.Errorf("%w: date is required", ErrValidation)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultEntryCategory
	}

	var appended entities.TimeEntry
	_, err := mutateOrder(ctx, u.repo, orderID, u.maxAttempts, func(o *entities.Order) error {
		if o.TimeTracking == nil {
			return ErrTimeTrackingNotInitialized
		}
		if !o.CoversDate(in.Date) {
			return fmt.Errorf("%w: date %s is outside the contracted range", ErrValidation, in.Date.Format("2006-01-02"))
		}
		amount, err := rates.ExpectedBillableAmount(in.Hours, o.TimeTracking.HourlyRate)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		now := u.now().UTC()
		appended = entities.TimeEntry{
			ID:             uuid.NewString(),
			Date:           entities.CalendarDate(in.Date),
			Hours:          in.Hours,
			Category:       category,
			Description:    strings.TrimSpace(in.Description),
			BillableAmount: amount,
			Status:         entities.EntryStatusLogged,
			CreatedAt:      now,
			LastUpdated:    now,
		}
		o.TimeTracking.Entries = append(o.TimeTracking.Entries, appended)
		o.TimeTracking.Recompute(now)
		return nil
	})
	if err != nil {
		log.Printf("[billing][entries] append failed order_id=%s err=%v", orderID, err)
		return entities.TimeEntry{}, err
	}
	log.Printf("[billing][entries] appended order_id=%s entry_id=%s hours=%s billable_amount=%d", orderID, appended.ID, appended.Hours, appended.BillableAmount)
	return appended, nil
}

func (u *TimeEntryUseCase) ListEntries(ctx context.Context, orderID string, statusFilter string) ([]entities.TimeEntry, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	var filter entities.EntryStatus
	if strings.TrimSpace(statusFilter) != "" {
		st, ok := entities.ParseEntryStatus(statusFilter)
		if !ok {
			return nil, fmt.Errorf("%w: unknown status filter %q", ErrValidation, statusFilter)
		}
		filter = st
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		return nil, ErrOrderNotFound
	}
	if o.TimeTracking == nil {
		return []entities.TimeEntry{}, nil
	}

	out := make([]entities.TimeEntry, 0, len(o.TimeTracking.Entries))
	for _, e := range o.TimeTracking.Entries {
		if filter != "" && e.Status != filter {
			continue
		}
		out = append(out, e)
	}
	// Stored order is creation order, so a stable sort by date keeps it for ties.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (u *TimeEntryUseCase) UpdateEntryStatus(ctx context.Context, orderID, entryID, newStatus, paymentRef string) (entities.TimeEntry, error) {
	orderID = strings.TrimSpace(orderID)
	entryID = strings.TrimSpace(entryID)
	if orderID == "" {
		return entities.TimeEntry{}, ErrInvalidOrderID
	}
	if entryID == "" {
		return entities.TimeEntry{}, fmt.Errorf("%w: entry id is required", ErrValidation)
	}
	to, ok := entities.ParseEntryStatus(newStatus)
	if !ok {
		return entities.TimeEntry{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, newStatus)
	}

	var updated entities.TimeEntry
	_, err := mutateOrder(ctx, u.repo, orderID, u.maxAttempts, func(o *entities.Order) error {
		if o.TimeTracking == nil {
			return ErrTimeTrackingNotInitialized
		}
		idx := o.TimeTracking.EntryIndex(entryID)
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
		}
		now := u.now().UTC()
		entry := &o.TimeTracking.Entries[idx]
		if err := entry.Transition(to, paymentRef, now); err != nil {
			return err
		}
		o.TimeTracking.Recompute(now)
		updated = *entry
		return nil
	})
	if err != nil {
		log.Printf("[billing][entries] status update failed order_id=%s entry_id=%s to=%s err=%v", orderID, entryID, to, err)
		return entities.TimeEntry{}, err
	}
	log.Printf("[billing][entries] status updated order_id=%s entry_id=%s status=%s ref=%s", orderID, entryID, updated.Status, updated.PaymentIntentID)
	return updated, nil
}

func (u *TimeEntryUseCase) Summary(ctx context.Context, orderID string) (BillingSummary, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return BillingSummary{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return BillingSummary{}, err
	}
	if o.ID == "" {
		return BillingSummary{}, ErrOrderNotFound
	}
	if o.TimeTracking == nil {
		return BillingSummary{}, ErrTimeTrackingNotInitialized
	}

	tt := o.TimeTracking
	s := BillingSummary{
		OrderID:                o.ID,
		HourlyRate:             tt.HourlyRate,
		Status:                 entities.DeriveAggregateStatus(tt.Entries),
		TotalLoggedHours:       tt.TotalLoggedHours,
		TotalApprovedHours:     tt.TotalApprovedHours,
		TotalBillableAmount:    tt.TotalBillableAmount,
		TotalTransferredAmount: tt.TotalTransferredAmount,
		ByStatus:               map[entities.EntryStatus]StatusTotals{},
		LastUpdated:            tt.LastUpdated,
	}
	for _, e := range tt.Entries {
		totals := s.ByStatus[e.Status]
		totals.Entries++
		totals.Hours = totals.Hours.Add(e.Hours)
		totals.Amount += e.BillableAmount
		s.ByStatus[e.Status] = totals
	}
	return s, nil
}
