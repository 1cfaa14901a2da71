package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusCreated    OrderStatus = "created"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusClearing   OrderStatus = "clearing"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusDisputed   OrderStatus = "disputed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusClearing, OrderStatusInProgress,
		OrderStatusCompleted, OrderStatusDisputed, OrderStatusCancelled:
		return true
	}
	return false
}

type BillingAddress struct {
	Name       string `json:"name,omitempty"`
	Street     string `json:"street,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Order is a confirmed service engagement between a customer and a provider.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-index): status
//
// TotalPrice and PlannedHours are fixed at creation; the time tracking rate is
// derived from them once.
type Order struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id,omitempty"`
	ProviderID   string          `json:"provider_id,omitempty"`
	TotalPrice   int64           `json:"total_price"`
	PlannedHours decimal.Decimal `json:"planned_hours"`
	Currency     string          `json:"currency"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	Status       OrderStatus     `json:"status"`
	Billing      BillingAddress  `json:"billing"`
	TimeTracking *TimeTracking   `json:"time_tracking,omitempty"`
	Version      int64           `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Clone returns a deep copy, so a batch can be applied and thrown away on
// failure without touching the loaded order.
func (o Order) Clone() Order {
	c := o
	c.TimeTracking = o.TimeTracking.clone()
	return c
}

// CoversDate reports whether d falls inside the contracted range, comparing
// calendar dates in UTC with both ends inclusive.
func (o Order) CoversDate(d time.Time) bool {
	day := CalendarDate(d)
	if !o.StartDate.IsZero() && day.Before(CalendarDate(o.StartDate)) {
		return false
	}
	if !o.EndDate.IsZero() && day.After(CalendarDate(o.EndDate)) {
		return false
	}
	return true
}

// CalendarDate returns midnight UTC of the day t falls on in its own
// location, so 23:30 at -02:00 stays on that day.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
