package request

import "taskilo_billing/internal/usecase"

type SubmitApprovalRequest struct {
	EntryIDs []string `json:"entry_ids" binding:"required"`
	Message  string   `json:"message"`
}

func (r SubmitApprovalRequest) ToInput() usecase.SubmitApprovalInput {
	return usecase.SubmitApprovalInput{EntryIDs: r.EntryIDs, Message: r.Message}
}

// ApprovalDecisionRequest carries the customer's answer. approved_entry_ids
// is read only for partially_approved.
type ApprovalDecisionRequest struct {
	Decision         string   `json:"decision" binding:"required"`
	ApprovedEntryIDs []string `json:"approved_entry_ids"`
	Feedback         string   `json:"feedback"`
}

func (r ApprovalDecisionRequest) ToInput() usecase.ApprovalDecisionInput {
	return usecase.ApprovalDecisionInput{
		Decision:         r.Decision,
		ApprovedEntryIDs: r.ApprovedEntryIDs,
		Feedback:         r.Feedback,
	}
}
