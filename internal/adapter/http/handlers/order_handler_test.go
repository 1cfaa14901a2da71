package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskilo_billing/internal/adapter/http/handlers/mocks"
	"taskilo_billing/internal/domain/entities"
	"taskilo_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIOrderUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/orders", NewOrderHandler(uc).CreateOrder)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"total_price":100,"planned_hours":1,"start_date":"tomorrow"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrInvalidOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"total_price":100,"planned_hours":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateOrderInput) (entities.Order, error) {
			if in.TotalPrice != 98400 || in.PlannedHours.String() != "10" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Order{ID: "o-1", TotalPrice: in.TotalPrice, PlannedHours: in.PlannedHours, Status: entities.OrderStatusCreated, Version: 1}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"total_price":98400,"planned_hours":"10","start_date":"2025-03-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["id"] != "o-1" || body["planned_hours"] != "10" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		uc.EXPECT().GetOrder(gomock.Any(), "o-404").Return(entities.Order{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.GET("/v1/orders/:order_id", NewOrderHandler(uc).GetOrder)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/o-404", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with tracking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		now := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().GetOrder(gomock.Any(), "o-1").Return(entities.Order{
			ID: "o-1", PlannedHours: decimal.NewFromInt(10),
			TimeTracking: &entities.TimeTracking{HourlyRate: 9840, Status: entities.TrackingStatusPending, LastUpdated: now},
		}, nil)

		r := gin.New()
		r.GET("/v1/orders/:order_id", NewOrderHandler(uc).GetOrder)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/o-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"hourly_rate":9840`)) {
			t.Fatalf("expected hourly rate in body, got %s", w.Body.String())
		}
	})
}

func TestOrderHandler_InitializeTimeTracking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"created", nil, http.StatusCreated},
		{"already initialized", usecase.ErrTimeTrackingAlreadyInitialized, http.StatusConflict},
		{"wrong order state", usecase.ErrInvalidOrderState, http.StatusConflict},
		{"store failure", errors.New("dynamodb down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIOrderUseCase(ctrl)
			uc.EXPECT().InitializeTimeTracking(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, tt.err)

			r := gin.New()
			r.POST("/v1/orders/:order_id/time-tracking", NewOrderHandler(uc).InitializeTimeTracking)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/time-tracking", nil))

			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}
