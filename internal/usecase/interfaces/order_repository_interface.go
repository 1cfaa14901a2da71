package interfaces

import (
	"context"
	"errors"

	"taskilo_billing/internal/domain/entities"
)

var (
	// ErrVersionConflict means the order changed since it was read.
	ErrVersionConflict = errors.New("order version conflict")
	// ErrEventAlreadyProcessed means the event's audit record already exists,
	// so its transitions were committed by an earlier delivery.
	ErrEventAlreadyProcessed = errors.New("billing event already processed")
	ErrOrderAlreadyExists    = errors.New("order already exists")
)

// IOrderRepository persists orders together with their time tracking as a
// single document.
//
// GetByID returns a zero Order (empty ID) when the order does not exist.
// Save and SaveReconciliation only succeed when the stored version equals
// expectedVersion; they return the order as written, with Version bumped.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Save(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error)
	SaveReconciliation(ctx context.Context, o entities.Order, expectedVersion int64, ev entities.ProcessedEvent) (entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
}
