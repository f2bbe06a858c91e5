// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Society360 Authors

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/society360/backend/internal/service"
	"github.com/society360/backend/models"
	"github.com/stretchr/testify/assert"
)

// routerForRole builds the full router with an auth stub that resolves
// every token to the given principal, so middleware ordering and role
// gates are exercised end to end.
func routerForRole(t *testing.T, principal models.Principal) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		authorizeFn: func(_ context.Context, _ string) (models.Principal, error) {
			return principal, nil
		},
	}
	notifications := &mockNotificationService{
		listForRecipientFn: func(_ context.Context, _ models.Principal, _, _ int) (service.NotificationPage, error) {
			return service.NotificationPage{}, nil
		},
		listForSenderFn: func(_ context.Context, _ models.Principal, _, _ int) (service.NotificationPage, error) {
			return service.NotificationPage{}, nil
		},
	}
	residents := &mockResidentService{
		listResidentsFn: func(_ context.Context) ([]models.ResidentAdminView, error) {
			return nil, nil
		},
	}

	h := newTestHandler(t, &service.Services{
		AuthService:         auth,
		ResidentService:     residents,
		NotificationService: notifications,
	})
	return h.Init()
}

func TestRoutes_AuthRequired(t *testing.T) {
	router := routerForRole(t, residentPrincipal())

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/profile"},
		{http.MethodGet, "/api/users/residents"},
		{http.MethodGet, "/api/notifications/my-notifications"},
		{http.MethodGet, "/api/notifications/sent"},
	}

	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equalf(t, http.StatusUnauthorized, rec.Code,
			"%s %s must require authentication", route.method, route.path)
	}
}

// TestRoutes_AdminGate verifies the admin surface rejects residents and
// the resident surface rejects admins once authentication passed.
func TestRoutes_AdminGate(t *testing.T) {
	asResident := routerForRole(t, residentPrincipal())
	asAdmin := routerForRole(t, adminPrincipal())

	adminOnly := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/residents"},
		{http.MethodGet, "/api/users/dashboard-stats"},
		{http.MethodGet, "/api/notifications/sent"},
	}

	for _, route := range adminOnly {
		req := httptest.NewRequest(route.method, route.path, nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		asResident.ServeHTTP(rec, req)

		assert.Equalf(t, http.StatusForbidden, rec.Code,
			"%s %s must be admin-only", route.method, route.path)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/my-notifications", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	asAdmin.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code, "my-notifications must be resident-only")
}

func TestRoutes_ResidentListings(t *testing.T) {
	asResident := routerForRole(t, residentPrincipal())
	asAdmin := routerForRole(t, adminPrincipal())

	req := httptest.NewRequest(http.MethodGet, "/api/notifications/my-notifications", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	asResident.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/notifications/sent", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec = httptest.NewRecorder()
	asAdmin.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	router := routerForRole(t, residentPrincipal())

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRoutes_UnknownPath(t *testing.T) {
	router := routerForRole(t, residentPrincipal())

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
