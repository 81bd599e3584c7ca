package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ordersvc "github.com/tusharoffice40/Whole-X/internal/orders"
	"github.com/tusharoffice40/Whole-X/pkg/enums"
	"github.com/tusharoffice40/Whole-X/pkg/models"
	"github.com/tusharoffice40/Whole-X/pkg/session"
)

type stubOrdersService struct {
	result  ordersvc.Result
	history []models.Order
}

func (s *stubOrdersService) Checkout(sess *session.Session) ordersvc.Result {
	return s.result
}

func (s *stubOrdersService) History(sess *session.Session) []models.Order {
	return s.history
}

func TestCheckoutPerformed(t *testing.T) {
	svc := &stubOrdersService{result: ordersvc.Result{
		Performed: true,
		Order: &models.Order{
			ID:         "A1B2C3D4E",
			TotalCents: 46500,
			Status:     enums.OrderStatusPending,
			BuyerID:    "user_123",
		},
	}}
	handler := Checkout(svc, nil)

	req := requestWithSession(httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data ordersvc.Result `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data.Performed || envelope.Data.Order == nil {
		t.Fatalf("expected performed checkout, got %+v", envelope.Data)
	}
	if envelope.Data.Order.TotalCents != 46500 {
		t.Fatalf("unexpected total %d", envelope.Data.Order.TotalCents)
	}
}

func TestCheckoutEmptyCartIsNoOp(t *testing.T) {
	handler := Checkout(&stubOrdersService{result: ordersvc.Result{Performed: false}}, nil)

	req := requestWithSession(httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("empty cart checkout must still succeed, got %d", resp.Code)
	}

	var envelope struct {
		Data ordersvc.Result `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Performed || envelope.Data.Order != nil {
		t.Fatalf("expected no order, got %+v", envelope.Data)
	}
}

func TestOrdersList(t *testing.T) {
	svc := &stubOrdersService{history: []models.Order{
		{ID: "NEWERONE1"},
		{ID: "OLDERONE1"},
	}}
	handler := OrdersList(svc, nil)

	req := requestWithSession(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			Orders []models.Order `json:"orders"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Orders) != 2 || envelope.Data.Orders[0].ID != "NEWERONE1" {
		t.Fatalf("unexpected history %+v", envelope.Data.Orders)
	}
}
