package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrApprovalState = errors.New("invalid approval state")

// ApprovalStatus is the customer's position on a single time entry. It runs
// beside EntryStatus: only approved entries may be sent for capture.
type ApprovalStatus string

const (
	ApprovalNotSubmitted ApprovalStatus = "not_submitted"
	ApprovalPending      ApprovalStatus = "pending"
	ApprovalApproved     ApprovalStatus = "approved"
	ApprovalRejected     ApprovalStatus = "rejected"
)

type ApprovalDecision string

const (
	DecisionApproved          ApprovalDecision = "approved"
	DecisionRejected          ApprovalDecision = "rejected"
	DecisionPartiallyApproved ApprovalDecision = "partially_approved"
)

func ParseApprovalDecision(s string) (ApprovalDecision, bool) {
	d := ApprovalDecision(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DecisionApproved, DecisionRejected, DecisionPartiallyApproved:
		return d, true
	}
	return d, false
}

// ApprovalState treats entries stored before approval existed as not submitted.
func (e TimeEntry) ApprovalState() ApprovalStatus {
	if e.Approval == "" {
		return ApprovalNotSubmitted
	}
	return e.Approval
}

// SubmitForApproval puts a logged, never submitted entry in front of the
// customer under requestID.
func (e *TimeEntry) SubmitForApproval(requestID string, now time.Time) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.Status != EntryStatusLogged {
		return fmt.Errorf("%w: entry %s is %s, only logged entries can be submitted", ErrApprovalState, e.ID, e.Status)
	}
	if st := e.ApprovalState(); st != ApprovalNotSubmitted {
		return fmt.Errorf("%w: entry %s is already %s", ErrApprovalState, e.ID, st)
	}
	now = now.UTC()
	e.Approval = ApprovalPending
	e.ApprovalRequestID = requestID
	e.SubmittedAt = &now
	e.LastUpdated = now
	return nil
}

// RecordApproval stores the customer's answer for a pending entry. Answers
// are final.
func (e *TimeEntry) RecordApproval(approved bool, now time.Time) error {
	if st := e.ApprovalState(); st != ApprovalPending {
		return fmt.Errorf("%w: entry %s is %s, not pending approval", ErrApprovalState, e.ID, st)
	}
	now = now.UTC()
	e.Approval = ApprovalRejected
	if approved {
		e.Approval = ApprovalApproved
	}
	e.CustomerRespondedAt = &now
	e.LastUpdated = now
	return nil
}
