package response

import (
	"time"

	"taskilo_billing/internal/domain/entities"
)

type TimeEntryResponse struct {
	ID               string     `json:"id"`
	Date             string     `json:"date"`
	Hours            string     `json:"hours"`
	Category         string     `json:"category"`
	Description      string     `json:"description,omitempty"`
	BillableAmount   int64      `json:"billable_amount"`
	Status           string     `json:"status"`
	PaymentReference string     `json:"payment_reference,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	TransferredAt    *time.Time `json:"transferred_at,omitempty"`
	DisputedAt       *time.Time `json:"disputed_at,omitempty"`
	LastUpdated      time.Time  `json:"last_updated"`

	Approval            string     `json:"approval"`
	ApprovalRequestID   string     `json:"approval_request_id,omitempty"`
	SubmittedAt         *time.Time `json:"submitted_at,omitempty"`
	CustomerRespondedAt *time.Time `json:"customer_responded_at,omitempty"`
}

type TimeTrackingResponse struct {
	HourlyRate             int64               `json:"hourly_rate"`
	Status                 string              `json:"status"`
	TotalLoggedHours       string              `json:"total_logged_hours"`
	TotalApprovedHours     string              `json:"total_approved_hours"`
	TotalBillableAmount    int64               `json:"total_billable_amount"`
	TotalTransferredAmount int64               `json:"total_transferred_amount"`
	CustomerFeedback       string              `json:"customer_feedback,omitempty"`
	Entries                []TimeEntryResponse `json:"entries"`
	LastUpdated            time.Time           `json:"last_updated"`
}

type OrderResponse struct {
	ID           string                  `json:"id"`
	CustomerID   string                  `json:"customer_id,omitempty"`
	ProviderID   string                  `json:"provider_id,omitempty"`
	TotalPrice   int64                   `json:"total_price"`
	PlannedHours string                  `json:"planned_hours"`
	Currency     string                  `json:"currency"`
	StartDate    string                  `json:"start_date,omitempty"`
	EndDate      string                  `json:"end_date,omitempty"`
	Status       string                  `json:"status"`
	Billing      entities.BillingAddress `json:"billing"`
	TimeTracking *TimeTrackingResponse   `json:"time_tracking,omitempty"`
	Version      int64                   `json:"version"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	out := OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		ProviderID:   o.ProviderID,
		TotalPrice:   o.TotalPrice,
		PlannedHours: o.PlannedHours.String(),
		Currency:     o.Currency,
		StartDate:    formatDate(o.StartDate),
		EndDate:      formatDate(o.EndDate),
		Status:       string(o.Status),
		Billing:      o.Billing,
		Version:      o.Version,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	if tt := o.TimeTracking; tt != nil {
		out.TimeTracking = &TimeTrackingResponse{
			HourlyRate:             tt.HourlyRate,
			Status:                 string(tt.Status),
			TotalLoggedHours:       tt.TotalLoggedHours.String(),
			TotalApprovedHours:     tt.TotalApprovedHours.String(),
			TotalBillableAmount:    tt.TotalBillableAmount,
			TotalTransferredAmount: tt.TotalTransferredAmount,
			CustomerFeedback:       tt.CustomerFeedback,
			Entries:                FromTimeEntries(tt.Entries),
			LastUpdated:            tt.LastUpdated,
		}
	}
	return out
}

func FromTimeEntry(e entities.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:               e.ID,
		Date:             formatDate(e.Date),
		Hours:            e.Hours.String(),
		Category:         e.Category,
		Description:      e.Description,
		BillableAmount:   e.BillableAmount,
		Status:           string(e.Status),
		PaymentReference: e.PaymentIntentID,
		CreatedAt:        e.CreatedAt,
		PaidAt:           e.PaidAt,
		TransferredAt:    e.TransferredAt,
		DisputedAt:       e.DisputedAt,
		LastUpdated:      e.LastUpdated,

		Approval:            string(e.ApprovalState()),
		ApprovalRequestID:   e.ApprovalRequestID,
		SubmittedAt:         e.SubmittedAt,
		CustomerRespondedAt: e.CustomerRespondedAt,
	}
}

func FromTimeEntries(entries []entities.TimeEntry) []TimeEntryResponse {
	out := make([]TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromTimeEntry(e))
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
