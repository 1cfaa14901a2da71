package response

import (
	"encoding/json"
	"testing"
	"time"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromOrder(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	o := entities.Order{
		ID:           "o-1",
		TotalPrice:   98400,
		PlannedHours: decimal.NewFromInt(10),
		Currency:     "eur",
		StartDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:       entities.OrderStatusInProgress,
		Version:      3,
		TimeTracking: &entities.TimeTracking{
			HourlyRate:       9840,
			Status:           entities.TrackingStatusBillingPending,
			TotalLoggedHours: decimal.RequireFromString("2.5"),
			Entries: []entities.TimeEntry{{
				ID: "e-1", Date: now, Hours: decimal.RequireFromString("2.5"), BillableAmount: 24600,
				Status: entities.EntryStatusBillingPending, PaymentIntentID: "pi_1",
			}},
		},
	}

	resp := FromOrder(o)
	if resp.ID != "o-1" || resp.PlannedHours != "10" || resp.StartDate != "2025-03-01" || resp.EndDate != "" {
		t.Fatalf("unexpected order response: %+v", resp)
	}
	if resp.TimeTracking == nil || resp.TimeTracking.HourlyRate != 9840 || resp.TimeTracking.Status != "billing_pending" {
		t.Fatalf("unexpected tracking: %+v", resp.TimeTracking)
	}
	if len(resp.TimeTracking.Entries) != 1 || resp.TimeTracking.Entries[0].PaymentReference != "pi_1" || resp.TimeTracking.Entries[0].Date != "2025-03-14" {
		t.Fatalf("unexpected entries: %+v", resp.TimeTracking.Entries)
	}
	if resp.TimeTracking.Entries[0].Approval != "not_submitted" || resp.TimeTracking.TotalApprovedHours != "0" {
		t.Fatalf("unexpected approval view: %+v", resp.TimeTracking)
	}

	o.TimeTracking = nil
	if FromOrder(o).TimeTracking != nil {
		t.Fatalf("expected no time tracking")
	}
}

func TestFromTimeEntries_EmptyIsArray(t *testing.T) {
	b, err := json.Marshal(FromTimeEntries(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("expected [], got %s", b)
	}
}

func TestFromRateAudit_EmptyIsArray(t *testing.T) {
	b, err := json.Marshal(FromRateAudit("o-1", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"order_id":"o-1","drifts":[]}` {
		t.Fatalf("unexpected body: %s", b)
	}

	resp := FromRateAudit("o-1", []usecase.RateDrift{{OrderID: "o-1", EntryID: "e-1", Delta: 320}})
	if len(resp.Drifts) != 1 || resp.Drifts[0].Delta != 320 {
		t.Fatalf("unexpected drifts: %+v", resp.Drifts)
	}
}

func TestFromReconcile(t *testing.T) {
	resp := FromReconcile(entities.ReconcileResult{
		EventID: "stripe:evt_1", OrderID: "o-1", Outcome: entities.ReconcileOutcomeApplied,
		EntryIDs: []string{"e-1"}, AggregateStatus: entities.TrackingStatusPlatformHeld,
	})
	if !resp.Received || resp.Outcome != "applied" || resp.AggregateStatus != "platform_held" || len(resp.EntryIDs) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestFromCapture(t *testing.T) {
	resp := FromCapture(entities.CaptureResult{Reference: "pi_1", Provider: "stripe", Status: "requires_payment_method", Amount: 49200, Currency: "eur"})
	if resp.PaymentReference != "pi_1" || resp.ProviderStatus != "requires_payment_method" || resp.Amount != 49200 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestFromApprovalOutcome_EmptyListsAreArrays(t *testing.T) {
	resp := FromApprovalOutcome(usecase.ApprovalOutcome{
		RequestID:          "ar-1",
		OrderID:            "o-1",
		Decision:           entities.DecisionRejected,
		RejectedEntryIDs:   []string{"e-1"},
		TotalApprovedHours: decimal.Zero,
	})
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"request_id":"ar-1","order_id":"o-1","decision":"rejected","approved_entry_ids":[],"rejected_entry_ids":["e-1"],"total_approved_hours":"0"}`
	if string(b) != want {
		t.Fatalf("unexpected body: %s", b)
	}
}

func TestFromApprovalRequest(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	resp := FromApprovalRequest(usecase.ApprovalRequest{
		ID: "ar-1", OrderID: "o-1", EntryIDs: []string{"e-1", "e-2"},
		TotalHours: decimal.RequireFromString("4.5"), TotalAmount: 44280, SubmittedAt: now,
	})
	if resp.TotalHours != "4.5" || resp.TotalAmount != 44280 || len(resp.EntryIDs) != 2 || !resp.SubmittedAt.Equal(now) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
