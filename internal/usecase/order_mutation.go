package usecase

import (
	"context"
	"errors"
	"log"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase/interfaces"
)

const defaultMaxAttempts = 3

// mutateOrder runs a read-modify-write cycle on one order. fn works on a deep
// copy, so a failing fn leaves nothing behind. Version conflicts reload and
// rerun fn against the fresh state.
func mutateOrder(
	ctx context.Context,
	repo interfaces.IOrderRepository,
	orderID string,
	attempts int,
	fn func(o *entities.Order) error,
) (entities.Order, error) {
	if attempts < 1 {
		attempts = defaultMaxAttempts
	}
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return entities.Order{}, err
		}
		current, err := repo.GetByID(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}
		if current.ID == "" {
			return entities.Order{}, ErrOrderNotFound
		}

		next := current.Clone()
		if err := fn(&next); err != nil {
			return entities.Order{}, err
		}

		saved, err := repo.Save(ctx, next, current.Version)
		if err == nil {
			return saved, nil
		}
		if !errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Order{}, err
		}
		log.Printf("[billing][usecase] version conflict order_id=%s attempt=%d/%d", orderID, attempt, attempts)
	}
	return entities.Order{}, ErrConcurrentModification
}
