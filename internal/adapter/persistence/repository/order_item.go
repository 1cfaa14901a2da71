package repository

import (
	"taskilo_billing/internal/domain/entities"
)

type orderItem struct {
	ID           string             `dynamodbav:"id"`
	CustomerID   string             `dynamodbav:"customer_id,omitempty"`
	ProviderID   string             `dynamodbav:"provider_id,omitempty"`
	TotalPrice   int64              `dynamodbav:"total_price"`
	PlannedHours string             `dynamodbav:"planned_hours"`
	Currency     string             `dynamodbav:"currency"`
	StartDate    string             `dynamodbav:"start_date,omitempty"`
	EndDate      string             `dynamodbav:"end_date,omitempty"`
	Status       string             `dynamodbav:"status"`
	Billing      billingAddressItem `dynamodbav:"billing"`
	TimeTracking *timeTrackingItem  `dynamodbav:"time_tracking,omitempty"`
	Version      int64              `dynamodbav:"version"`
	CreatedAt    string             `dynamodbav:"created_at"`
	UpdatedAt    string             `dynamodbav:"updated_at"`
}

type billingAddressItem struct {
	Name       string `dynamodbav:"name,omitempty"`
	Street     string `dynamodbav:"street,omitempty"`
	PostalCode string `dynamodbav:"postal_code,omitempty"`
	City       string `dynamodbav:"city,omitempty"`
	Country    string `dynamodbav:"country,omitempty"`
}

type timeTrackingItem struct {
	HourlyRate             int64           `dynamodbav:"hourly_rate"`
	Status                 string          `dynamodbav:"status"`
	Entries                []timeEntryItem `dynamodbav:"entries"`
	TotalLoggedHours       string          `dynamodbav:"total_logged_hours"`
	TotalApprovedHours     string          `dynamodbav:"total_approved_hours,omitempty"`
	TotalBillableAmount    int64           `dynamodbav:"total_billable_amount"`
	TotalTransferredAmount int64           `dynamodbav:"total_transferred_amount"`
	CustomerFeedback       string          `dynamodbav:"customer_feedback,omitempty"`
	LastUpdated            string          `dynamodbav:"last_updated"`
}

type timeEntryItem struct {
	ID              string `dynamodbav:"id"`
	Date            string `dynamodbav:"date"`
	Hours           string `dynamodbav:"hours"`
	Category        string `dynamodbav:"category"`
	Description     string `dynamodbav:"description,omitempty"`
	BillableAmount  int64  `dynamodbav:"billable_amount"`
	Status          string `dynamodbav:"status"`
	PaymentIntentID string `dynamodbav:"payment_intent_id,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	PaidAt          string `dynamodbav:"paid_at,omitempty"`
	TransferredAt   string `dynamodbav:"transferred_at,omitempty"`
	DisputedAt      string `dynamodbav:"disputed_at,omitempty"`
	LastUpdated     string `dynamodbav:"last_updated"`

	Approval            string `dynamodbav:"approval,omitempty"`
	ApprovalRequestID   string `dynamodbav:"approval_request_id,omitempty"`
	SubmittedAt         string `dynamodbav:"submitted_at,omitempty"`
	CustomerRespondedAt string `dynamodbav:"customer_responded_at,omitempty"`
}

type processedEventItem struct {
	Key              string   `dynamodbav:"event_key"`
	Provider         string   `dynamodbav:"provider"`
	ExternalID       string   `dynamodbav:"external_id"`
	OrderID          string   `dynamodbav:"order_id"`
	PaymentReference string   `dynamodbav:"payment_reference"`
	Type             string   `dynamodbav:"type"`
	EntryIDs         []string `dynamodbav:"entry_ids"`
	ProcessedAt      string   `dynamodbav:"processed_at"`
	ExpiresAt        int64    `dynamodbav:"expires_at,omitempty"`
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		ProviderID:   o.ProviderID,
		TotalPrice:   o.TotalPrice,
		PlannedHours: o.PlannedHours.String(),
		Currency:     o.Currency,
		StartDate:    formatTime(o.StartDate),
		EndDate:      formatTime(o.EndDate),
		Status:       string(o.Status),
		Billing: billingAddressItem{
			Name:       o.Billing.Name,
			Street:     o.Billing.Street,
			PostalCode: o.Billing.PostalCode,
			City:       o.Billing.City,
			Country:    o.Billing.Country,
		},
		Version:   o.Version,
		CreatedAt: formatTime(o.CreatedAt),
		UpdatedAt: formatTime(o.UpdatedAt),
	}
	if tt := o.TimeTracking; tt != nil {
		entries := make([]timeEntryItem, 0, len(tt.Entries))
		for _, e := range tt.Entries {
			entries = append(entries, toTimeEntryItem(e))
		}
		it.TimeTracking = &timeTrackingItem{
			HourlyRate:             tt.HourlyRate,
			Status:                 string(tt.Status),
			Entries:                entries,
			TotalLoggedHours:       tt.TotalLoggedHours.String(),
			TotalApprovedHours:     tt.TotalApprovedHours.String(),
			TotalBillableAmount:    tt.TotalBillableAmount,
			TotalTransferredAmount: tt.TotalTransferredAmount,
			CustomerFeedback:       tt.CustomerFeedback,
			LastUpdated:            formatTime(tt.LastUpdated),
		}
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		ProviderID:   it.ProviderID,
		TotalPrice:   it.TotalPrice,
		PlannedHours: parseDecimal(it.PlannedHours),
		Currency:     it.Currency,
		StartDate:    parseTime(it.StartDate),
		EndDate:      parseTime(it.EndDate),
		Status:       entities.OrderStatus(it.Status),
		Billing: entities.BillingAddress{
			Name:       it.Billing.Name,
			Street:     it.Billing.Street,
			PostalCode: it.Billing.PostalCode,
			City:       it.Billing.City,
			Country:    it.Billing.Country,
		},
		Version:   it.Version,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if tt := it.TimeTracking; tt != nil {
		entries := make([]entities.TimeEntry, 0, len(tt.Entries))
		for _, e := range tt.Entries {
			entries = append(entries, fromTimeEntryItem(e))
		}
		o.TimeTracking = &entities.TimeTracking{
			HourlyRate:             tt.HourlyRate,
			Status:                 entities.TrackingStatus(tt.Status),
			Entries:                entries,
			TotalLoggedHours:       parseDecimal(tt.TotalLoggedHours),
			TotalApprovedHours:     parseDecimal(tt.TotalApprovedHours),
			TotalBillableAmount:    tt.TotalBillableAmount,
			TotalTransferredAmount: tt.TotalTransferredAmount,
			CustomerFeedback:       tt.CustomerFeedback,
			LastUpdated:            parseTime(tt.LastUpdated),
		}
	}
	return o
}

func toTimeEntryItem(e entities.TimeEntry) timeEntryItem {
	return timeEntryItem{
		ID:              e.ID,
		Date:            formatTime(e.Date),
		Hours:           e.Hours.String(),
		Category:        e.Category,
		Description:     e.Description,
		BillableAmount:  e.BillableAmount,
		Status:          string(e.Status),
		PaymentIntentID: e.PaymentIntentID,
		CreatedAt:       formatTime(e.CreatedAt),
		PaidAt:          formatTimePtr(e.PaidAt),
		TransferredAt:   formatTimePtr(e.TransferredAt),
		DisputedAt:      formatTimePtr(e.DisputedAt),
		LastUpdated:     formatTime(e.LastUpdated),

		Approval:            string(e.Approval),
		ApprovalRequestID:   e.ApprovalRequestID,
		SubmittedAt:         formatTimePtr(e.SubmittedAt),
		CustomerRespondedAt: formatTimePtr(e.CustomerRespondedAt),
	}
}

func fromTimeEntryItem(it timeEntryItem) entities.TimeEntry {
	return entities.TimeEntry{
		ID:              it.ID,
		Date:            parseTime(it.Date),
		Hours:           parseDecimal(it.Hours),
		Category:        it.Category,
		Description:     it.Description,
		BillableAmount:  it.BillableAmount,
		Status:          entities.EntryStatus(it.Status),
		PaymentIntentID: it.PaymentIntentID,
		CreatedAt:       parseTime(it.CreatedAt),
		PaidAt:          parseTimePtr(it.PaidAt),
		TransferredAt:   parseTimePtr(it.TransferredAt),
		DisputedAt:      parseTimePtr(it.DisputedAt),
		LastUpdated:     parseTime(it.LastUpdated),

		Approval:            entities.ApprovalStatus(it.Approval),
		ApprovalRequestID:   it.ApprovalRequestID,
		SubmittedAt:         parseTimePtr(it.SubmittedAt),
		CustomerRespondedAt: parseTimePtr(it.CustomerRespondedAt),
	}
}

func toProcessedEventItem(ev entities.ProcessedEvent) processedEventItem {
	var expires int64
	if !ev.ExpiresAt.IsZero() {
		expires = ev.ExpiresAt.Unix()
	}
	return processedEventItem{
		Key:              ev.Key,
		Provider:         ev.Provider,
		ExternalID:       ev.ExternalID,
		OrderID:          ev.OrderID,
		PaymentReference: ev.PaymentReference,
		Type:             string(ev.Type),
		EntryIDs:         ev.EntryIDs,
		ProcessedAt:      formatTime(ev.ProcessedAt),
		ExpiresAt:        expires,
	}
}
