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
)

const (
	notifyTimeout = 5 * time.Second

	RoutingKeyAlert = "billing.alert"
)

type ReconcilerConfig struct {
	// Tolerance is the allowed absolute drift, in minor units, between stored
	// and recomputed amounts. Drift beyond it is logged, never corrected.
	Tolerance      int64
	Timeout        time.Duration
	MaxAttempts    int
	EventRetention time.Duration
	EventCacheTTL  time.Duration
}

// IBillingReconciler applies payment-provider confirmations to time entries.
type IBillingReconciler interface {
	Reconcile(ctx context.Context, ev entities.BillingEvent) (entities.ReconcileResult, error)
}

// BillingReconciler is the single writer of confirmation-driven entry
// transitions.
//
// An event only touches entries whose payment reference matches and whose
// status is eligible for the event type, so a redelivered event resolves to
// nothing and is a no-op. The whole batch is applied to a copy and written
// with one conditional store write, so either every eligible entry moves or
// none does.
type BillingReconciler struct {
	repo     interfaces.IOrderRepository
	notifier interfaces.INotifier
	cache    interfaces.IEventCache
	cfg      ReconcilerConfig
	now      func() time.Time
}

var _ IBillingReconciler = (*BillingReconciler)(nil)

// NewBillingReconciler builds a reconciler. notifier and cache are optional.
func NewBillingReconciler(repo interfaces.IOrderRepository, notifier interfaces.INotifier, cache interfaces.IEventCache, cfg ReconcilerConfig) *BillingReconciler {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Tolerance < 0 {
		cfg.Tolerance = 0
	}
	return &BillingReconciler{repo: repo, notifier: notifier, cache: cache, cfg: cfg, now: time.Now}
}

func (u *BillingReconciler) Reconcile(ctx context.Context, ev entities.BillingEvent) (entities.ReconcileResult, error) {
	ev.OrderID = strings.TrimSpace(ev.OrderID)
	ev.PaymentReference = strings.TrimSpace(ev.PaymentReference)
	ev.ExternalID = strings.TrimSpace(ev.ExternalID)
	result := entities.ReconcileResult{EventID: ev.ExternalID, OrderID: ev.OrderID}
	log.Printf("[billing][reconciler] start event_id=%s provider=%s order_id=%s ref=%s type=%s amount=%d",
		ev.ExternalID, ev.Provider, ev.OrderID, ev.PaymentReference, ev.Type, ev.Amount)

	target, ok := ev.Type.TargetStatus()
	switch {
	case !ok:
		return result, fmt.Errorf("%w: unknown event type %q", ErrInvalidEvent, ev.Type)
	case ev.OrderID == "":
		return result, fmt.Errorf("%w: missing order id", ErrInvalidEvent)
	case ev.PaymentReference == "":
		return result, fmt.Errorf("%w: missing payment reference", ErrInvalidEvent)
	}

	ctx, cancel := context.WithTimeout(ctx, u.cfg.Timeout)
	defer cancel()

	key := ev.Key()
	if u.seen(ctx, key) {
		result.Outcome = entities.ReconcileOutcomeDuplicate
		log.Printf("[billing][reconciler] duplicate delivery (cache) event_key=%s order_id=%s", key, ev.OrderID)
		return result, nil
	}

	for attempt := 1; attempt <= u.cfg.MaxAttempts; attempt++ {
		res, err := u.apply(ctx, ev, target)
		if err == nil {
			u.afterCommit(ctx, ev, target, res)
			return res, nil
		}
		if errors.Is(err, interfaces.ErrVersionConflict) {
			log.Printf("[billing][reconciler] version conflict order_id=%s attempt=%d/%d", ev.OrderID, attempt, u.cfg.MaxAttempts)
			continue
		}
		return result, u.wrapTimeout(ctx, err)
	}
	log.Printf("[billing][reconciler] giving up after %d attempts order_id=%s ref=%s", u.cfg.MaxAttempts, ev.OrderID, ev.PaymentReference)
	return result, fmt.Errorf("%w: order %s", ErrConcurrentModification, ev.OrderID)
}

func (u *BillingReconciler) apply(ctx context.Context, ev entities.BillingEvent, target entities.EntryStatus) (entities.ReconcileResult, error) {
	result := entities.ReconcileResult{EventID: ev.ExternalID, OrderID: ev.OrderID}

	order, err := u.repo.GetByID(ctx, ev.OrderID)
	if err != nil {
		return result, err
	}
	if order.ID == "" {
		return result, fmt.Errorf("%w: %s", ErrOrderNotFound, ev.OrderID)
	}
	if order.TimeTracking == nil {
		result.Outcome = entities.ReconcileOutcomeNoop
		log.Printf("[billing][reconciler] noop (no time tracking) event_id=%s order_id=%s ref=%s", ev.ExternalID, ev.OrderID, ev.PaymentReference)
		return result, nil
	}
	result.AggregateStatus = order.TimeTracking.Status

	eligible := eligibleEntries(order.TimeTracking.Entries, ev)
	if len(eligible) == 0 {
		result.Outcome = entities.ReconcileOutcomeNoop
		log.Printf("[billing][reconciler] noop (no eligible entries) event_id=%s order_id=%s ref=%s type=%s", ev.ExternalID, ev.OrderID, ev.PaymentReference, ev.Type)
		return result, nil
	}

	next := order.Clone()
	tt := next.TimeTracking
	now := u.now().UTC()
	ids := make([]string, 0, len(eligible))
	var total int64
	for _, idx := range eligible {
		entry := &tt.Entries[idx]
		u.warnOnDrift(order.ID, *entry, tt.HourlyRate)
		if err := entry.Transition(target, ev.PaymentReference, now); err != nil {
			log.Printf("[billing][reconciler] batch aborted order_id=%s entry_id=%s ref=%s err=%v", order.ID, entry.ID, ev.PaymentReference, err)
			return result, fmt.Errorf("reconcile order %s: %w", order.ID, err)
		}
		ids = append(ids, entry.ID)
		total += entry.BillableAmount
	}
	if ev.Amount > 0 && absInt64(ev.Amount-total) > u.cfg.Tolerance {
		log.Printf("[billing][reconciler] WARNING amount mismatch order_id=%s ref=%s event_amount=%d entries_amount=%d tolerance=%d",
			order.ID, ev.PaymentReference, ev.Amount, total, u.cfg.Tolerance)
	}
	tt.Recompute(now)

	record := entities.ProcessedEvent{
		Key:              ev.Key(),
		Provider:         ev.Provider,
		ExternalID:       ev.ExternalID,
		OrderID:          order.ID,
		PaymentReference: ev.PaymentReference,
		Type:             ev.Type,
		EntryIDs:         ids,
		ProcessedAt:      now,
	}
	if u.cfg.EventRetention > 0 {
		record.ExpiresAt = now.Add(u.cfg.EventRetention)
	}

	saved, err := u.repo.SaveReconciliation(ctx, next, order.Version, record)
	if errors.Is(err, interfaces.ErrEventAlreadyProcessed) {
		result.Outcome = entities.ReconcileOutcomeDuplicate
		log.Printf("[billing][reconciler] duplicate delivery (store) event_key=%s order_id=%s", record.Key, order.ID)
		return result, nil
	}
	if err != nil {
		return result, err
	}

	result.Outcome = entities.ReconcileOutcomeApplied
	result.EntryIDs = ids
	result.AggregateStatus = saved.TimeTracking.Status
	log.Printf("[billing][reconciler] applied event_id=%s order_id=%s ref=%s status=%s entries=%d aggregate=%s",
		ev.ExternalID, order.ID, ev.PaymentReference, target, len(ids), result.AggregateStatus)
	return result, nil
}

func eligibleEntries(entries []entities.TimeEntry, ev entities.BillingEvent) []int {
	out := make([]int, 0)
	for i, e := range entries {
		if e.PaymentIntentID == ev.PaymentReference && ev.Type.Accepts(e.Status) {
			out = append(out, i)
		}
	}
	return out
}

func (u *BillingReconciler) warnOnDrift(orderID string, e entities.TimeEntry, rate int64) {
	d, err := rates.CheckBillable(e.Hours, rate, e.BillableAmount, u.cfg.Tolerance)
	if err != nil || !d.Exceeded {
		return
	}
	log.Printf("[billing][reconciler] WARNING rate drift order_id=%s entry_id=%s expected=%d stored=%d delta=%d tolerance=%d",
		orderID, e.ID, d.Expected, d.Stored, d.Delta, d.Tolerance)
}

func (u *BillingReconciler) seen(ctx context.Context, key string) bool {
	if u.cache == nil || key == "" {
		return false
	}
	ok, err := u.cache.Seen(ctx, key)
	if err != nil {
		log.Printf("[billing][reconciler] event cache lookup failed event_key=%s err=%v", key, err)
		return false
	}
	return ok
}

// afterCommit runs once the batch is durable. Nothing here can undo it.
// noop outcomes are not cached: the entries may simply not be marked
// billing_pending yet.
func (u *BillingReconciler) afterCommit(ctx context.Context, ev entities.BillingEvent, target entities.EntryStatus, res entities.ReconcileResult) {
	if res.Outcome == entities.ReconcileOutcomeNoop {
		return
	}
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if key := ev.Key(); u.cache != nil && key != "" {
		if err := u.cache.Remember(bg, key, u.cfg.EventCacheTTL); err != nil {
			log.Printf("[billing][reconciler] event cache write failed event_key=%s err=%v", key, err)
		}
	}
	if res.Outcome != entities.ReconcileOutcomeApplied || u.notifier == nil {
		return
	}
	payload := map[string]any{
		"event_id":          ev.ExternalID,
		"provider":          ev.Provider,
		"order_id":          res.OrderID,
		"payment_reference": ev.PaymentReference,
		"status":            string(target),
		"entry_ids":         res.EntryIDs,
		"aggregate_status":  string(res.AggregateStatus),
	}
	if err := u.notifier.Publish(bg, "billing.entries."+string(target), payload); err != nil {
		log.Printf("[billing][reconciler] notification failed order_id=%s err=%v", res.OrderID, err)
	}
}

func (u *BillingReconciler) wrapTimeout(ctx context.Context, err error) error {
	if errors.Is(err, ErrOrderNotFound) {
		return err
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrReconcileTimeout, err)
	}
	return err
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
