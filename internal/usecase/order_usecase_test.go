package usecase

import (
	"context"
	"errors"
	"testing"

	"taskilo_billing/internal/domain/entities"
	mock_interfaces "taskilo_billing/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validOrderInput() CreateOrderInput {
	return CreateOrderInput{
		ID:           "o-1",
		CustomerID:   "c-1",
		ProviderID:   "p-1",
		TotalPrice:   98400,
		PlannedHours: decimal.NewFromInt(10),
		StartDate:    day("2025-03-01"),
		EndDate:      day("2025-03-31"),
	}
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*CreateOrderInput)
		}{
			{"zero price", func(in *CreateOrderInput) { in.TotalPrice = 0 }},
			{"zero hours", func(in *CreateOrderInput) { in.PlannedHours = decimal.Zero }},
			{"negative hours", func(in *CreateOrderInput) { in.PlannedHours = decimal.NewFromInt(-2) }},
			{"end before start", func(in *CreateOrderInput) { in.EndDate = day("2025-02-01") }},
			{"completed status", func(in *CreateOrderInput) { in.Status = entities.OrderStatusCompleted }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := NewOrderUseCase(nil, "")
				in := validOrderInput()
				tt.mutate(&in)
				_, err := uc.CreateOrder(context.Background(), in)
				if !errors.Is(err, ErrInvalidOrder) {
					t.Fatalf("expected ErrInvalidOrder, got %v", err)
				}
			})
		}
	})

	t.Run("defaults", func(t *testing.T) {
		repo := seedRepo(t)
		uc := NewOrderUseCase(repo, "EUR")
		uc.now = fixedClock
		in := validOrderInput()
		in.ID = ""

		o, err := uc.CreateOrder(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID == "" || o.Status != entities.OrderStatusCreated || o.Currency != "eur" || o.Version != 1 {
			t.Fatalf("unexpected order: %+v", o)
		}
		if !o.CreatedAt.Equal(fixedNow) {
			t.Fatalf("expected created_at from clock, got %v", o.CreatedAt)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := seedRepo(t)
		uc := NewOrderUseCase(repo, "eur")
		if _, err := uc.CreateOrder(context.Background(), validOrderInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := uc.CreateOrder(context.Background(), validOrderInput())
		if !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("expected ErrInvalidOrder, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, "eur")

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.CreateOrder(context.Background(), validOrderInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_GetOrder(t *testing.T) {
	repo := seedRepo(t, trackedOrder("o-1"))
	uc := NewOrderUseCase(repo, "eur")

	if _, err := uc.GetOrder(context.Background(), " "); !errors.Is(err, ErrInvalidOrderID) {
		t.Fatalf("expected ErrInvalidOrderID, got %v", err)
	}
	if _, err := uc.GetOrder(context.Background(), "missing"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	o, err := uc.GetOrder(context.Background(), "o-1")
	if err != nil || o.ID != "o-1" {
		t.Fatalf("unexpected result: %+v err=%v", o, err)
	}
}

func TestOrderUseCase_InitializeTimeTracking(t *testing.T) {
	t.Run("derives the hourly rate", func(t *testing.T) {
		repo := seedRepo(t)
		uc := NewOrderUseCase(repo, "eur")
		uc.now = fixedClock
		if _, err := uc.CreateOrder(context.Background(), validOrderInput()); err != nil {
			t.Fatalf("create: %v", err)
		}

		o, err := uc.InitializeTimeTracking(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.TimeTracking == nil || o.TimeTracking.HourlyRate != 9840 {
			t.Fatalf("expected hourly rate 9840, got %+v", o.TimeTracking)
		}
		if o.TimeTracking.Status != entities.TrackingStatusPending || len(o.TimeTracking.Entries) != 0 {
			t.Fatalf("unexpected tracking: %+v", o.TimeTracking)
		}
		if o.Status != entities.OrderStatusInProgress {
			t.Fatalf("expected in_progress, got %s", o.Status)
		}

		_, err = uc.InitializeTimeTracking(context.Background(), "o-1")
		if !errors.Is(err, ErrTimeTrackingAlreadyInitialized) {
			t.Fatalf("expected ErrTimeTrackingAlreadyInitialized, got %v", err)
		}
	})

	t.Run("rate rounds half up", func(t *testing.T) {
		repo := seedRepo(t)
		uc := NewOrderUseCase(repo, "eur")
		in := validOrderInput()
		in.TotalPrice = 10000
		in.PlannedHours = decimal.NewFromInt(3)
		if _, err := uc.CreateOrder(context.Background(), in); err != nil {
			t.Fatalf("create: %v", err)
		}
		o, err := uc.InitializeTimeTracking(context.Background(), "o-1")
		if err != nil || o.TimeTracking.HourlyRate != 3333 {
			t.Fatalf("expected 3333, got %+v err=%v", o.TimeTracking, err)
		}
	})

	t.Run("wrong order state", func(t *testing.T) {
		done := trackedOrder("o-2")
		done.TimeTracking = nil
		done.Status = entities.OrderStatusCompleted
		repo := seedRepo(t, done)
		uc := NewOrderUseCase(repo, "eur")

		_, err := uc.InitializeTimeTracking(context.Background(), "o-2")
		if !errors.Is(err, ErrInvalidOrderState) {
			t.Fatalf("expected ErrInvalidOrderState, got %v", err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		uc := NewOrderUseCase(seedRepo(t), "eur")
		_, err := uc.InitializeTimeTracking(context.Background(), "nope")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
