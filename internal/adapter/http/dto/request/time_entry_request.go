package request

import (
	"strings"

	"taskilo_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

// AppendEntryRequest logs additional hours. hours accepts a JSON number or a
// decimal string ("2.5").
type AppendEntryRequest struct {
	Date        string          `json:"date" binding:"required"`
	Hours       decimal.Decimal `json:"hours"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

func (r AppendEntryRequest) ToInput() (usecase.AppendEntryInput, error) {
	d, err := ParseDate(r.Date)
	if err != nil {
		return usecase.AppendEntryInput{}, err
	}
	return usecase.AppendEntryInput{
		Date:        d,
		Hours:       r.Hours,
		Category:    strings.TrimSpace(r.Category),
		Description: strings.TrimSpace(r.Description),
	}, nil
}

type UpdateEntryStatusRequest struct {
	Status           string `json:"status" binding:"required"`
	PaymentReference string `json:"payment_reference"`
}
