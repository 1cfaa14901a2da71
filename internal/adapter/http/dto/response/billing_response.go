package response

import (
	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase"
)

type CaptureResponse struct {
	PaymentReference string   `json:"payment_reference"`
	Provider         string   `json:"provider"`
	ProviderStatus   string   `json:"provider_status"`
	ClientSecret     string   `json:"client_secret,omitempty"`
	Amount           int64    `json:"amount"`
	Currency         string   `json:"currency"`
	EntryIDs         []string `json:"entry_ids"`
}

func FromCapture(r entities.CaptureResult) CaptureResponse {
	return CaptureResponse{
		PaymentReference: r.Reference,
		Provider:         r.Provider,
		ProviderStatus:   r.Status,
		ClientSecret:     r.ClientSecret,
		Amount:           r.Amount,
		Currency:         r.Currency,
		EntryIDs:         r.EntryIDs,
	}
}

type RateAuditResponse struct {
	OrderID string              `json:"order_id"`
	Drifts  []usecase.RateDrift `json:"drifts"`
}

func FromRateAudit(orderID string, drifts []usecase.RateDrift) RateAuditResponse {
	if drifts == nil {
		drifts = []usecase.RateDrift{}
	}
	return RateAuditResponse{OrderID: orderID, Drifts: drifts}
}

const OutcomeRejected = "rejected"
const OutcomeIgnored = "ignored"

// WebhookResponse acknowledges a provider delivery. Providers only look at
// the status code; the body is for humans replaying deliveries.
type WebhookResponse struct {
	Received        bool     `json:"received"`
	Outcome         string   `json:"outcome"`
	EventID         string   `json:"event_id,omitempty"`
	EntryIDs        []string `json:"entry_ids,omitempty"`
	AggregateStatus string   `json:"aggregate_status,omitempty"`
	Reason          string   `json:"reason,omitempty"`
}

func FromReconcile(r entities.ReconcileResult) WebhookResponse {
	return WebhookResponse{
		Received:        true,
		Outcome:         string(r.Outcome),
		EventID:         r.EventID,
		EntryIDs:        r.EntryIDs,
		AggregateStatus: string(r.AggregateStatus),
	}
}
