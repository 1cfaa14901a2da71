package entities

import (
	"strings"
	"time"
)

// EventType is the normalized kind of a payment-provider confirmation.
type EventType string

const (
	EventTypeHeld     EventType = "payment.held"
	EventTypeSettled  EventType = "payment.settled"
	EventTypeDisputed EventType = "payment.disputed"
)

func ParseEventType(s string) (EventType, bool) {
	t := EventType(strings.ToLower(strings.TrimSpace(s)))
	_, ok := t.TargetStatus()
	return t, ok
}

// TargetStatus is the entry status a confirmation of this type moves entries to.
func (t EventType) TargetStatus() (EntryStatus, bool) {
	switch t {
	case EventTypeHeld:
		return EntryStatusPlatformHeld, true
	case EventTypeSettled:
		return EntryStatusTransferred, true
	case EventTypeDisputed:
		return EntryStatusDisputed, true
	}
	return "", false
}

// EligibleFrom lists the entry statuses a confirmation of this type applies
// to. Entries in any other status are ignored, which is what makes a
// redelivered event a no-op.
func (t EventType) EligibleFrom() []EntryStatus {
	switch t {
	case EventTypeHeld:
		return []EntryStatus{EntryStatusBillingPending}
	case EventTypeSettled:
		return []EntryStatus{EntryStatusBillingPending, EntryStatusPlatformHeld}
	case EventTypeDisputed:
		return []EntryStatus{EntryStatusBillingPending, EntryStatusPlatformHeld, EntryStatusTransferred}
	}
	return nil
}

func (t EventType) Accepts(s EntryStatus) bool {
	for _, e := range t.EligibleFrom() {
		if e == s {
			return true
		}
	}
	return false
}

// BillingEvent is a payment-provider confirmation reduced to the fields the
// reconciler needs.
type BillingEvent struct {
	ExternalID       string    `json:"external_id"`
	Provider         string    `json:"provider"`
	OrderID          string    `json:"order_id"`
	PaymentReference string    `json:"payment_reference"`
	Amount           int64     `json:"amount"`
	Type             EventType `json:"type"`
	ReceivedAt       time.Time `json:"received_at"`
}

// Key identifies the delivery across retries. Empty when the provider sent no id.
func (e BillingEvent) Key() string {
	if strings.TrimSpace(e.ExternalID) == "" {
		return ""
	}
	p := e.Provider
	if p == "" {
		p = "unknown"
	}
	return p + ":" + e.ExternalID
}

// ProcessedEvent is the audit record written together with the entry
// transitions an event caused.
type ProcessedEvent struct {
	Key              string    `json:"key"`
	Provider         string    `json:"provider"`
	ExternalID       string    `json:"external_id"`
	OrderID          string    `json:"order_id"`
	PaymentReference string    `json:"payment_reference"`
	Type             EventType `json:"type"`
	EntryIDs         []string  `json:"entry_ids"`
	ProcessedAt      time.Time `json:"processed_at"`
	ExpiresAt        time.Time `json:"expires_at"`
}

type ReconcileOutcome string

const (
	ReconcileOutcomeApplied   ReconcileOutcome = "applied"
	ReconcileOutcomeNoop      ReconcileOutcome = "noop"
	ReconcileOutcomeDuplicate ReconcileOutcome = "duplicate"
)

type ReconcileResult struct {
	EventID         string           `json:"event_id,omitempty"`
	OrderID         string           `json:"order_id"`
	Outcome         ReconcileOutcome `json:"outcome"`
	EntryIDs        []string         `json:"entry_ids,omitempty"`
	AggregateStatus TrackingStatus   `json:"aggregate_status,omitempty"`
}
