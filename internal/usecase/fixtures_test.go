package usecase

import (
	"context"
	"testing"
	"time"

	"taskilo_billing/internal/adapter/persistence/memory"
	"taskilo_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func entry(id string, hours string, amount int64, status entities.EntryStatus, ref string) entities.TimeEntry {
	return entities.TimeEntry{
		ID:              id,
		Date:            day("2025-03-10"),
		Hours:           decimal.RequireFromString(hours),
		Category:        "additional",
		BillableAmount:  amount,
		Status:          status,
		PaymentIntentID: ref,
		CreatedAt:       fixedNow.Add(-time.Hour),
		LastUpdated:     fixedNow.Add(-time.Hour),
	}
}

// trackedOrder is a 98400 / 10h order (rate 9840) with the given entries.
func trackedOrder(id string, entries ...entities.TimeEntry) entities.Order {
	tt := &entities.TimeTracking{HourlyRate: 9840, Entries: entries}
	tt.Recompute(fixedNow.Add(-time.Hour))
	return entities.Order{
		ID:           id,
		TotalPrice:   98400,
		PlannedHours: decimal.NewFromInt(10),
		Currency:     "eur",
		StartDate:    day("2025-03-01"),
		EndDate:      day("2025-03-31"),
		Status:       entities.OrderStatusInProgress,
		TimeTracking: tt,
		Version:      1,
		CreatedAt:    fixedNow.Add(-24 * time.Hour),
	}
}

func seedRepo(t *testing.T, orders ...entities.Order) *memory.OrderRepository {
	t.Helper()
	repo := memory.NewOrderRepository()
	for _, o := range orders {
		if _, err := repo.Create(context.Background(), o); err != nil {
			t.Fatalf("seed order %s: %v", o.ID, err)
		}
	}
	return repo
}

func mustGet(t *testing.T, repo *memory.OrderRepository, id string) entities.Order {
	t.Helper()
	o, err := repo.GetByID(context.Background(), id)
	if err != nil || o.ID == "" {
		t.Fatalf("load order %s: %v", id, err)
	}
	return o
}

func entryByID(t *testing.T, o entities.Order, id string) entities.TimeEntry {
	t.Helper()
	idx := o.TimeTracking.EntryIndex(id)
	if idx < 0 {
		t.Fatalf("entry %s not found on order %s", id, o.ID)
	}
	return o.TimeTracking.Entries[idx]
}
