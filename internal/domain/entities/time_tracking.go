package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrackingStatus is the aggregate billing status of an order's time tracking.
// It is always derived from the entries.
type TrackingStatus string

const (
	TrackingStatusPending        TrackingStatus = "pending"
	TrackingStatusBillingPending TrackingStatus = "billing_pending"
	TrackingStatusPlatformHeld   TrackingStatus = "platform_held"
	TrackingStatusTransferred    TrackingStatus = "transferred"
)

type TimeTracking struct {
	HourlyRate             int64           `json:"hourly_rate"`
	Status                 TrackingStatus  `json:"status"`
	Entries                []TimeEntry     `json:"entries"`
	TotalLoggedHours       decimal.Decimal `json:"total_logged_hours"`
	TotalApprovedHours     decimal.Decimal `json:"total_approved_hours"`
	TotalBillableAmount    int64           `json:"total_billable_amount"`
	TotalTransferredAmount int64           `json:"total_transferred_amount"`
	CustomerFeedback       string          `json:"customer_feedback,omitempty"`
	LastUpdated            time.Time       `json:"last_updated"`
}

// DeriveAggregateStatus returns the least-advanced status across all
// non-disputed entries. No such entries means pending.
func DeriveAggregateStatus(entries []TimeEntry) TrackingStatus {
	lowest := -1
	for _, e := range entries {
		if e.Status.IsTerminal() {
			continue
		}
		r, ok := entryStatusRank[e.Status]
		if !ok {
			continue
		}
		if lowest == -1 || r < lowest {
			lowest = r
		}
	}
	switch lowest {
	case entryStatusRank[EntryStatusBillingPending]:
		return TrackingStatusBillingPending
	case entryStatusRank[EntryStatusPlatformHeld]:
		return TrackingStatusPlatformHeld
	case entryStatusRank[EntryStatusTransferred]:
		return TrackingStatusTransferred
	default:
		return TrackingStatusPending
	}
}

// Recompute refreshes the derived status and totals and stamps LastUpdated.
// Logged and approved hours count every entry; amounts skip disputed ones.
func (t *TimeTracking) Recompute(now time.Time) {
	hours, approved := decimal.Zero, decimal.Zero
	var billable, transferred int64
	for _, e := range t.Entries {
		hours = hours.Add(e.Hours)
		if e.ApprovalState() == ApprovalApproved {
			approved = approved.Add(e.Hours)
		}
		if e.Status.IsTerminal() {
			continue
		}
		billable += e.BillableAmount
		if e.Status == EntryStatusTransferred {
			transferred += e.BillableAmount
		}
	}
	t.Status = DeriveAggregateStatus(t.Entries)
	t.TotalLoggedHours = hours
	t.TotalApprovedHours = approved
	t.TotalBillableAmount = billable
	t.TotalTransferredAmount = transferred
	t.LastUpdated = now.UTC()
}

func (t *TimeTracking) EntryIndex(id string) int {
	for i := range t.Entries {
		if t.Entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *TimeTracking) clone() *TimeTracking {
	if t == nil {
		return nil
	}
	c := *t
	c.Entries = make([]TimeEntry, len(t.Entries))
	for i, e := range t.Entries {
		c.Entries[i] = e.clone()
	}
	return &c
}
