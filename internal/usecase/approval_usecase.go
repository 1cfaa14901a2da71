package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubmitApprovalInput struct {
	EntryIDs []string
	Message  string
}

type ApprovalDecisionInput struct {
	Decision         string
	ApprovedEntryIDs []string
	Feedback         string
}

// ApprovalRequest is the set of entries a provider put in front of the
// customer in one submission.
type ApprovalRequest struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	EntryIDs    []string        `json:"entry_ids"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount int64           `json:"total_amount"`
	Message     string          `json:"message,omitempty"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

type ApprovalOutcome struct {
	RequestID          string                    `json:"request_id"`
	OrderID            string                    `json:"order_id"`
	Decision           entities.ApprovalDecision `json:"decision"`
	ApprovedEntryIDs   []string                  `json:"approved_entry_ids"`
	RejectedEntryIDs   []string                  `json:"rejected_entry_ids"`
	TotalApprovedHours decimal.Decimal           `json:"total_approved_hours"`
}

// IApprovalUseCase runs the customer sign-off that must happen before logged
// hours are billed.
type IApprovalUseCase interface {
	SubmitForApproval(ctx context.Context, orderID string, in SubmitApprovalInput) (ApprovalRequest, error)
	ProcessApproval(ctx context.Context, orderID, requestID string, in ApprovalDecisionInput) (ApprovalOutcome, error)
}

type ApprovalUseCase struct {
	repo        interfaces.IOrderRepository
	maxAttempts int
	now         func() time.Time
	newID       func() string
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(repo interfaces.IOrderRepository, maxAttempts int) *ApprovalUseCase {
	return &ApprovalUseCase{repo: repo, maxAttempts: maxAttempts, now: time.Now, newID: uuid.NewString}
}

func (u *ApprovalUseCase) SubmitForApproval(ctx context.Context, orderID string, in SubmitApprovalInput) (ApprovalRequest, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ApprovalRequest{}, ErrInvalidOrderID
	}
	ids, err := normalizeEntryIDs(in.EntryIDs)
	if err != nil {
		return ApprovalRequest{}, err
	}

	req := ApprovalRequest{
		ID:       u.newID(),
		OrderID:  orderID,
		EntryIDs: ids,
		Message:  strings.TrimSpace(in.Message),
	}
	_, err = mutateOrder(ctx, u.repo, orderID, u.maxAttempts, func(o *entities.Order) error {
		if o.TimeTracking == nil {
			return ErrTimeTrackingNotInitialized
		}
		now := u.now().UTC()
		hours := decimal.Zero
		var amount int64
		for _, id := range ids {
			idx := o.TimeTracking.EntryIndex(id)
			if idx < 0 {
				return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
			}
			e := &o.TimeTracking.Entries[idx]
			if err := e.SubmitForApproval(req.ID, now); err != nil {
				return err
			}
			hours = hours.Add(e.Hours)
			amount += e.BillableAmount
		}
		o.TimeTracking.Recompute(now)
		req.TotalHours = hours
		req.TotalAmount = amount
		req.SubmittedAt = now
		return nil
	})
	if err != nil {
		log.Printf("[billing][approval] submit failed order_id=%s err=%v", orderID, err)
		return ApprovalRequest{}, err
	}
	log.Printf("[billing][approval] submitted order_id=%s request_id=%s entries=%d hours=%s amount=%d", orderID, req.ID, len(ids), req.TotalHours, req.TotalAmount)
	return req, nil
}

func (u *ApprovalUseCase) ProcessApproval(ctx context.Context, orderID, requestID string, in ApprovalDecisionInput) (ApprovalOutcome, error) {
	orderID = strings.TrimSpace(orderID)
	requestID = strings.TrimSpace(requestID)
	if orderID == "" {
		return ApprovalOutcome{}, ErrInvalidOrderID
	}
	if requestID == "" {
		return ApprovalOutcome{}, fmt.Errorf("%w: approval request id is required", ErrValidation)
	}
	decision, ok := entities.ParseApprovalDecision(in.Decision)
	if !ok {
		return ApprovalOutcome{}, fmt.Errorf("%w: unknown decision %q", ErrValidation, in.Decision)
	}
	approvedSet := map[string]struct{}{}
	if decision == entities.DecisionPartiallyApproved {
		ids, err := normalizeEntryIDs(in.ApprovedEntryIDs)
		if err != nil {
			return ApprovalOutcome{}, err
		}
		for _, id := range ids {
			approvedSet[id] = struct{}{}
		}
	}

	out := ApprovalOutcome{
		RequestID:        requestID,
		OrderID:          orderID,
		Decision:         decision,
		ApprovedEntryIDs: []string{},
		RejectedEntryIDs: []string{},
	}
	_, err := mutateOrder(ctx, u.repo, orderID, u.maxAttempts, func(o *entities.Order) error {
		if o.TimeTracking == nil {
			return ErrTimeTrackingNotInitialized
		}
		out.ApprovedEntryIDs = out.ApprovedEntryIDs[:0]
		out.RejectedEntryIDs = out.RejectedEntryIDs[:0]

		var pending []int
		seen := false
		for i, e := range o.TimeTracking.Entries {
			if e.ApprovalRequestID != requestID {
				continue
			}
			seen = true
			if e.ApprovalState() == entities.ApprovalPending {
				pending = append(pending, i)
			}
		}
		if !seen {
			return fmt.Errorf("%w: %s", ErrApprovalRequestNotFound, requestID)
		}
		if len(pending) == 0 {
			return fmt.Errorf("%w: approval request %s was already answered", ErrApprovalState, requestID)
		}
		for id := range approvedSet {
			idx := o.TimeTracking.EntryIndex(id)
			if idx < 0 || o.TimeTracking.Entries[idx].ApprovalRequestID != requestID {
				return fmt.Errorf("%w: entry %s is not part of approval request %s", ErrValidation, id, requestID)
			}
		}

		now := u.now().UTC()
		for _, idx := range pending {
			e := &o.TimeTracking.Entries[idx]
			approved := decision == entities.DecisionApproved
			if decision == entities.DecisionPartiallyApproved {
				_, approved = approvedSet[e.ID]
			}
			if err := e.RecordApproval(approved, now); err != nil {
				return err
			}
			if approved {
				out.ApprovedEntryIDs = append(out.ApprovedEntryIDs, e.ID)
			} else {
				out.RejectedEntryIDs = append(out.RejectedEntryIDs, e.ID)
			}
		}
		o.TimeTracking.CustomerFeedback = strings.TrimSpace(in.Feedback)
		o.TimeTracking.Recompute(now)
		out.TotalApprovedHours = o.TimeTracking.TotalApprovedHours
		return nil
	})
	if err != nil {
		log.Printf("[billing][approval] decision failed order_id=%s request_id=%s err=%v", orderID, requestID, err)
		return ApprovalOutcome{}, err
	}
	log.Printf("[billing][approval] decision recorded order_id=%s request_id=%s decision=%s approved=%d rejected=%d", orderID, requestID, decision, len(out.ApprovedEntryIDs), len(out.RejectedEntryIDs))
	return out, nil
}
