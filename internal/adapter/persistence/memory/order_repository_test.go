package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, r *OrderRepository) entities.Order {
	t.Helper()
	o, err := r.Create(context.Background(), entities.Order{
		ID:           "ord-1",
		TotalPrice:   98400,
		PlannedHours: decimal.NewFromInt(10),
		Status:       entities.OrderStatusInProgress,
		Version:      1,
		TimeTracking: &entities.TimeTracking{
			HourlyRate: 9840,
			Entries: []entities.TimeEntry{
				{ID: "e-1", Hours: decimal.NewFromInt(3), BillableAmount: 29520, Status: entities.EntryStatusLogged},
			},
		},
	})
	require.NoError(t, err)
	return o
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	r := NewOrderRepository()
	seedOrder(t, r)

	_, err := r.Create(context.Background(), entities.Order{ID: "ord-1"})
	assert.ErrorIs(t, err, interfaces.ErrOrderAlreadyExists)

	got, err := r.GetByID(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, int64(98400), got.TotalPrice)

	missing, err := r.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestOrderRepository_ReturnsCopies(t *testing.T) {
	r := NewOrderRepository()
	seedOrder(t, r)

	got, _ := r.GetByID(context.Background(), "ord-1")
	got.TimeTracking.Entries[0].Status = entities.EntryStatusTransferred

	again, _ := r.GetByID(context.Background(), "ord-1")
	assert.Equal(t, entities.EntryStatusLogged, again.TimeTracking.Entries[0].Status)
}

func TestOrderRepository_SaveOptimistic(t *testing.T) {
	r := NewOrderRepository()
	o := seedOrder(t, r)

	o.Status = entities.OrderStatusCompleted
	saved, err := r.Save(context.Background(), o, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.Version)

	_, err = r.Save(context.Background(), o, 1)
	assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
}

func TestOrderRepository_ConcurrentSavesSerialize(t *testing.T) {
	r := NewOrderRepository()
	o := seedOrder(t, r)

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Save(context.Background(), o, 1); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestOrderRepository_SaveReconciliation(t *testing.T) {
	r := NewOrderRepository()
	o := seedOrder(t, r)
	ev := entities.ProcessedEvent{Key: "stripe:evt_1", OrderID: o.ID, EntryIDs: []string{"e-1"}}

	saved, err := r.SaveReconciliation(context.Background(), o, 1, ev)
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.Version)

	stored, ok := r.ProcessedEvent("stripe:evt_1")
	require.True(t, ok)
	assert.Equal(t, []string{"e-1"}, stored.EntryIDs)

	_, err = r.SaveReconciliation(context.Background(), saved, 2, ev)
	assert.ErrorIs(t, err, interfaces.ErrEventAlreadyProcessed)
}

func TestOrderRepository_WriteHookAbortsWithoutChanges(t *testing.T) {
	r := NewOrderRepository()
	o := seedOrder(t, r)
	boom := errors.New("injected")
	r.SetWriteHook(func(op string, _ entities.Order) error {
		if op == "reconcile" {
			return boom
		}
		return nil
	})

	o.TimeTracking.Entries[0].Status = entities.EntryStatusBillingPending
	_, err := r.SaveReconciliation(context.Background(), o, 1, entities.ProcessedEvent{Key: "k"})
	assert.ErrorIs(t, err, boom)

	got, _ := r.GetByID(context.Background(), "ord-1")
	assert.Equal(t, entities.EntryStatusLogged, got.TimeTracking.Entries[0].Status)
	assert.Equal(t, int64(1), got.Version)
	_, ok := r.ProcessedEvent("k")
	assert.False(t, ok)
}

func TestOrderRepository_ListByStatus(t *testing.T) {
	r := NewOrderRepository()
	seedOrder(t, r)
	_, err := r.Create(context.Background(), entities.Order{ID: "ord-0", Status: entities.OrderStatusInProgress})
	require.NoError(t, err)
	_, err = r.Create(context.Background(), entities.Order{ID: "ord-2", Status: entities.OrderStatusCreated})
	require.NoError(t, err)

	got, err := r.ListByStatus(context.Background(), entities.OrderStatusInProgress)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ord-0", got[0].ID)
	assert.Equal(t, "ord-1", got[1].ID)
}
