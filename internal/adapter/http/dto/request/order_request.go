package request

import (
	"errors"
	"strings"
	"time"

	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC3339")
)

type BillingAddressRequest struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`
}

// CreateOrderRequest is the payload of POST /v1/orders. Amounts are in minor
// units of Currency.
type CreateOrderRequest struct {
	ID           string                `json:"id"`
	CustomerID   string                `json:"customer_id"`
	ProviderID   string                `json:"provider_id"`
	TotalPrice   int64                 `json:"total_price" binding:"required"`
	PlannedHours decimal.Decimal       `json:"planned_hours"`
	Currency     string                `json:"currency"`
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	Status       string                `json:"status"`
	Billing      BillingAddressRequest `json:"billing"`
}

func (r CreateOrderRequest) ToInput() (usecase.CreateOrderInput, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return usecase.CreateOrderInput{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return usecase.CreateOrderInput{}, err
	}
	return usecase.CreateOrderInput{
		ID:           strings.TrimSpace(r.ID),
		CustomerID:   r.CustomerID,
		ProviderID:   r.ProviderID,
		TotalPrice:   r.TotalPrice,
		PlannedHours: r.PlannedHours,
		Currency:     r.Currency,
		StartDate:    start,
		EndDate:      end,
		Status:       entities.OrderStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		Billing: entities.BillingAddress{
			Name:       r.Billing.Name,
			Street:     r.Billing.Street,
			PostalCode: r.Billing.PostalCode,
			City:       r.Billing.City,
			Country:    r.Billing.Country,
		},
	}, nil
}

// ParseDate accepts a calendar date or a full RFC3339 timestamp. A timestamp
// keeps the calendar date of its own offset. An empty string yields the zero
// time.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return entities.CalendarDate(t), nil
}
