// Package memory keeps orders in process memory. It backs STORE_BACKEND=memory
// for local runs and is the store used by the reconciliation property tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase/interfaces"
)

// WriteHook runs before a write is committed. A non-nil error aborts the write.
type WriteHook func(op string, o entities.Order) error

type OrderRepository struct {
	mu     sync.Mutex
	orders map[string]entities.Order
	events map[string]entities.ProcessedEvent
	hook   WriteHook
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: map[string]entities.Order{},
		events: map[string]entities.ProcessedEvent{},
	}
}

// SetWriteHook installs a hook used to inject store failures.
func (r *OrderRepository) SetWriteHook(h WriteHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hook = h
}

func (r *OrderRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return entities.Order{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return entities.Order{}, interfaces.ErrOrderAlreadyExists
	}
	if err := r.runHook("create", o); err != nil {
		return entities.Order{}, err
	}
	r.orders[o.ID] = o.Clone()
	return o.Clone(), nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return entities.Order{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return o.Clone(), nil
}

func (r *OrderRepository) Save(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return entities.Order{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saveLocked("save", o, expectedVersion)
}

func (r *OrderRepository) SaveReconciliation(ctx context.Context, o entities.Order, expectedVersion int64, ev entities.ProcessedEvent) (entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return entities.Order{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if ev.Key != "" {
		if _, ok := r.events[ev.Key]; ok {
			return entities.Order{}, interfaces.ErrEventAlreadyProcessed
		}
	}
	saved, err := r.saveLocked("reconcile", o, expectedVersion)
	if err != nil {
		return entities.Order{}, err
	}
	if ev.Key != "" {
		ev.EntryIDs = append([]string(nil), ev.EntryIDs...)
		r.events[ev.Key] = ev
	}
	return saved, nil
}

func (r *OrderRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.Order, 0)
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, o.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ProcessedEvent returns the audit record stored for key, if any.
func (r *OrderRepository) ProcessedEvent(key string) (entities.ProcessedEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[key]
	return ev, ok
}

func (r *OrderRepository) saveLocked(op string, o entities.Order, expectedVersion int64) (entities.Order, error) {
	current, ok := r.orders[o.ID]
	if !ok || current.Version != expectedVersion {
		return entities.Order{}, interfaces.ErrVersionConflict
	}
	if err := r.runHook(op, o); err != nil {
		return entities.Order{}, err
	}
	o.Version = expectedVersion + 1
	o.UpdatedAt = time.Now().UTC()
	r.orders[o.ID] = o.Clone()
	return o.Clone(), nil
}

func (r *OrderRepository) runHook(op string, o entities.Order) error {
	if r.hook == nil {
		return nil
	}
	return r.hook(op, o)
}
