package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEntryValidation   = errors.New("time entry failed validation")
)

// EntryStatus is the billing position of a single time entry.
//
// Progress order: logged < billing_pending < platform_held < transferred.
// disputed is terminal and can only be reached from an entry that already
// has a payment attached.
type EntryStatus string

const (
	EntryStatusLogged         EntryStatus = "logged"
	EntryStatusBillingPending EntryStatus = "billing_pending"
	EntryStatusPlatformHeld   EntryStatus = "platform_held"
	EntryStatusTransferred    EntryStatus = "transferred"
	EntryStatusDisputed       EntryStatus = "disputed"
)

var entryStatusRank = map[EntryStatus]int{
	EntryStatusLogged:         0,
	EntryStatusBillingPending: 1,
	EntryStatusPlatformHeld:   2,
	EntryStatusTransferred:    3,
}

func ParseEntryStatus(s string) (EntryStatus, bool) {
	st := EntryStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.Valid()
}

func (s EntryStatus) Valid() bool {
	if s == EntryStatusDisputed {
		return true
	}
	_, ok := entryStatusRank[s]
	return ok
}

func (s EntryStatus) IsTerminal() bool { return s == EntryStatusDisputed }

// TimeEntry is a single logged unit of billable work against an order.
type TimeEntry struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	Hours           decimal.Decimal `json:"hours"`
	Category        string          `json:"category"`
	Description     string          `json:"description,omitempty"`
	BillableAmount  int64           `json:"billable_amount"`
	Status          EntryStatus     `json:"status"`
	PaymentIntentID string          `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
	TransferredAt   *time.Time      `json:"transferred_at,omitempty"`
	DisputedAt      *time.Time      `json:"disputed_at,omitempty"`
	LastUpdated     time.Time       `json:"last_updated"`

	Approval            ApprovalStatus `json:"approval,omitempty"`
	ApprovalRequestID   string         `json:"approval_request_id,omitempty"`
	SubmittedAt         *time.Time     `json:"submitted_at,omitempty"`
	CustomerRespondedAt *time.Time     `json:"customer_responded_at,omitempty"`
}

// Validate checks the stored fields a status transition depends on.
func (e TimeEntry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrEntryValidation)
	}
	if !e.Hours.IsPositive() {
		return fmt.Errorf("%w: entry %s has non-positive hours %s", ErrEntryValidation, e.ID, e.Hours.String())
	}
	if e.BillableAmount < 0 {
		return fmt.Errorf("%w: entry %s has negative billable amount %d", ErrEntryValidation, e.ID, e.BillableAmount)
	}
	if !e.Status.Valid() {
		return fmt.Errorf("%w: entry %s has unknown status %q", ErrEntryValidation, e.ID, e.Status)
	}
	return nil
}

// Transition moves the entry to the given status. It is the only place entry
// status is written.
//
// Rules:
//   - disputed entries never change again
//   - disputed is reachable from billing_pending, platform_held and transferred
//   - any other move must strictly advance the progress order
//   - billing_pending, platform_held and transferred need a payment reference;
//     transferred needs it passed explicitly
//   - a passed reference must match the one already on the entry
func (e *TimeEntry) Transition(to EntryStatus, paymentRef string, now time.Time) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	from := e.Status
	if from.IsTerminal() {
		return fmt.Errorf("%w: entry %s is %s", ErrInvalidTransition, e.ID, from)
	}

	if to == EntryStatusDisputed {
		if from == EntryStatusLogged {
			return fmt.Errorf("%w: entry %s has no payment to dispute", ErrInvalidTransition, e.ID)
		}
	} else if entryStatusRank[to] <= entryStatusRank[from] {
		return fmt.Errorf("%w: entry %s cannot move from %s to %s", ErrInvalidTransition, e.ID, from, to)
	}

	ref := strings.TrimSpace(paymentRef)
	if ref != "" && e.PaymentIntentID != "" && ref != e.PaymentIntentID {
		return fmt.Errorf("%w: entry %s belongs to payment %s, not %s", ErrInvalidTransition, e.ID, e.PaymentIntentID, ref)
	}
	switch to {
	case EntryStatusTransferred:
		if ref == "" {
			return fmt.Errorf("%w: entry %s cannot be transferred without a payment reference", ErrInvalidTransition, e.ID)
		}
	case EntryStatusBillingPending, EntryStatusPlatformHeld:
		if ref == "" && e.PaymentIntentID == "" {
			return fmt.Errorf("%w: entry %s needs a payment reference for %s", ErrInvalidTransition, e.ID, to)
		}
	}

	now = now.UTC()
	if ref != "" {
		e.PaymentIntentID = ref
	}
	switch to {
	case EntryStatusPlatformHeld:
		e.PaidAt = &now
	case EntryStatusTransferred:
		if e.PaidAt == nil {
			e.PaidAt = &now
		}
		e.TransferredAt = &now
	case EntryStatusDisputed:
		e.DisputedAt = &now
	}
	e.Status = to
	e.LastUpdated = now
	return nil
}

func (e TimeEntry) clone() TimeEntry {
	c := e
	c.PaidAt = cloneTime(e.PaidAt)
	c.TransferredAt = cloneTime(e.TransferredAt)
	c.DisputedAt = cloneTime(e.DisputedAt)
	c.SubmittedAt = cloneTime(e.SubmittedAt)
	c.CustomerRespondedAt = cloneTime(e.CustomerRespondedAt)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
