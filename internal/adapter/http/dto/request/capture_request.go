package request

import "taskilo_billing/internal/usecase"

type CaptureRequest struct {
	EntryIDs        []string `json:"entry_ids" binding:"required"`
	PayerEmail      string   `json:"payer_email"`
	PaymentMethodID string   `json:"payment_method_id"`
}

func (r CaptureRequest) ToInput() usecase.CaptureInput {
	return usecase.CaptureInput{
		EntryIDs:        r.EntryIDs,
		PayerEmail:      r.PayerEmail,
		PaymentMethodID: r.PaymentMethodID,
	}
}
