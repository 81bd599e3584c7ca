package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tusharoffice40/Whole-X/api/middleware"
	"github.com/tusharoffice40/Whole-X/pkg/enums"
	"github.com/tusharoffice40/Whole-X/pkg/session"
)

func TestSessionFetchDefaults(t *testing.T) {
	handler := SessionFetch(nil)

	req := requestWithSession(httptest.NewRequest(http.MethodGet, "/api/v1/session/", nil))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data session.State `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Role != enums.RoleBuyer {
		t.Fatalf("expected default role BUYER, got %s", envelope.Data.Role)
	}
	if envelope.Data.Page != enums.PageHome {
		t.Fatalf("expected initial page home, got %s", envelope.Data.Page)
	}
}

func TestSessionSetRole(t *testing.T) {
	sess := session.NewManager().Issue()
	handler := SessionSetRole(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/session/role", bytes.NewReader([]byte(`{"role":"WHOLESALER"}`)))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(middleware.WithSession(req.Context(), sess))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := sess.Snapshot().Role; got != enums.RoleWholesaler {
		t.Fatalf("expected role WHOLESALER persisted, got %s", got)
	}
}

func TestSessionSetRoleInvalid(t *testing.T) {
	handler := SessionSetRole(nil)

	req := requestWithSession(httptest.NewRequest(http.MethodPut, "/api/v1/session/role", bytes.NewReader([]byte(`{"role":"superuser"}`))))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
