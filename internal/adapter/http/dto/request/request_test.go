package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"taskilo_billing/internal/domain/entities"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"empty", "  ", time.Time{}, false},
		{"calendar date", "2025-03-14", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339 keeps its calendar date", "2025-03-14T10:00:00+02:00", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), false},
		{"late behind utc stays on its day", "2025-03-31T23:30:00-02:00", time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), false},
		{"early ahead of utc stays on its day", "2025-03-01T00:30:00+03:00", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"garbage", "14/03/2025", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("expected ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCreateOrderRequest_ToInput(t *testing.T) {
	var r CreateOrderRequest
	body := `{"id":" o-1 ","total_price":98400,"planned_hours":"10","start_date":"2025-03-01","end_date":"2025-03-31","status":" PAID ","billing":{"city":"Berlin"}}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ID != "o-1" || in.TotalPrice != 98400 || in.PlannedHours.String() != "10" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Status != entities.OrderStatusPaid {
		t.Fatalf("expected paid, got %q", in.Status)
	}
	if in.Billing.City != "Berlin" {
		t.Fatalf("expected billing city, got %+v", in.Billing)
	}
	if in.EndDate.Day() != 31 {
		t.Fatalf("expected end date parsed, got %v", in.EndDate)
	}

	r.EndDate = "soon"
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestAppendEntryRequest_ToInput(t *testing.T) {
	var r AppendEntryRequest
	if err := json.Unmarshal([]byte(`{"date":"2025-03-14","hours":2.5,"category":" overtime "}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Hours.String() != "2.5" || in.Category != "overtime" {
		t.Fatalf("unexpected input: %+v", in)
	}

	r.Date = "yesterday"
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCaptureRequest_ToInput(t *testing.T) {
	in := CaptureRequest{EntryIDs: []string{"e-1"}, PayerEmail: "a@b.c", PaymentMethodID: "pm_1"}.ToInput()
	if len(in.EntryIDs) != 1 || in.PayerEmail != "a@b.c" || in.PaymentMethodID != "pm_1" {
		t.Fatalf("unexpected input: %+v", in)
	}
}
