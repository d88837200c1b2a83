package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campusboard/result-api/internal/api/middleware"
	"github.com/campusboard/result-api/internal/core/domain"
)

func TestRoleHandler_GetRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/role", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAccountID, "abc123")
	c.Set(middleware.CtxRole, domain.RoleStudent)

	if err := NewRoleHandler().GetRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["role"] != "student" {
		t.Fatalf("expected role student, got %q", resp["role"])
	}
}

func TestRoleHandler_GetRole_NoIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/role", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewRoleHandler().GetRole(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
