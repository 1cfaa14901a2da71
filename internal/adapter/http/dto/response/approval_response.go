package response

import (
	"time"

	"taskilo_billing/internal/usecase"
)

type ApprovalRequestResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	EntryIDs    []string  `json:"entry_ids"`
	TotalHours  string    `json:"total_hours"`
	TotalAmount int64     `json:"total_amount"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func FromApprovalRequest(r usecase.ApprovalRequest) ApprovalRequestResponse {
	return ApprovalRequestResponse{
		ID:          r.ID,
		OrderID:     r.OrderID,
		EntryIDs:    r.EntryIDs,
		TotalHours:  r.TotalHours.String(),
		TotalAmount: r.TotalAmount,
		Message:     r.Message,
		SubmittedAt: r.SubmittedAt,
	}
}

type ApprovalOutcomeResponse struct {
	RequestID          string   `json:"request_id"`
	OrderID            string   `json:"order_id"`
	Decision           string   `json:"decision"`
	ApprovedEntryIDs   []string `json:"approved_entry_ids"`
	RejectedEntryIDs   []string `json:"rejected_entry_ids"`
	TotalApprovedHours string   `json:"total_approved_hours"`
}

func FromApprovalOutcome(o usecase.ApprovalOutcome) ApprovalOutcomeResponse {
	approved, rejected := o.ApprovedEntryIDs, o.RejectedEntryIDs
	if approved == nil {
		approved = []string{}
	}
	if rejected == nil {
		rejected = []string{}
	}
	return ApprovalOutcomeResponse{
		RequestID:          o.RequestID,
		OrderID:            o.OrderID,
		Decision:           string(o.Decision),
		ApprovedEntryIDs:   approved,
		RejectedEntryIDs:   rejected,
		TotalApprovedHours: o.TotalApprovedHours.String(),
	}
}
