// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Society360 Authors

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/internal/service"
	"github.com/society360/backend/internal/utils"
	"github.com/society360/backend/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn       func(ctx context.Context, username, password string) (models.Principal, error)
	createTokenFn func(ctx context.Context, principal models.Principal) (models.Token, error)
	authorizeFn   func(ctx context.Context, tokenString string) (models.Principal, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.Principal, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, principal models.Principal) (models.Token, error) {
	return m.createTokenFn(ctx, principal)
}

func (m *mockAuthService) Authorize(ctx context.Context, tokenString string) (models.Principal, error) {
	return m.authorizeFn(ctx, tokenString)
}

// mockResidentService implements service.ResidentService for unit tests.
type mockResidentService struct {
	createResidentFn func(ctx context.Context, admin models.Principal, req models.CreateResidentRequest) (*models.Resident, error)
	listResidentsFn  func(ctx context.Context) ([]models.ResidentAdminView, error)
	getResidentFn    func(ctx context.Context, id uuid.UUID) (*models.Resident, error)
	updateResidentFn func(ctx context.Context, id uuid.UUID, req models.UpdateResidentRequest) (*models.Resident, error)
	deleteResidentFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockResidentService) CreateResident(ctx context.Context, admin models.Principal, req models.CreateResidentRequest) (*models.Resident, error) {
	return m.createResidentFn(ctx, admin, req)
}

func (m *mockResidentService) ListResidents(ctx context.Context) ([]models.ResidentAdminView, error) {
	return m.listResidentsFn(ctx)
}

func (m *mockResidentService) GetResident(ctx context.Context, id uuid.UUID) (*models.Resident, error) {
	return m.getResidentFn(ctx, id)
}

func (m *mockResidentService) UpdateResident(ctx context.Context, id uuid.UUID, req models.UpdateResidentRequest) (*models.Resident, error) {
	return m.updateResidentFn(ctx, id, req)
}

func (m *mockResidentService) DeleteResident(ctx context.Context, id uuid.UUID) error {
	return m.deleteResidentFn(ctx, id)
}

// mockNotificationService implements service.NotificationService for unit tests.
type mockNotificationService struct {
	sendFn             func(ctx context.Context, sender models.Principal, req models.SendNotificationRequest) (*models.Notification, error)
	listForRecipientFn func(ctx context.Context, recipient models.Principal, page, limit int) (service.NotificationPage, error)
	listForSenderFn    func(ctx context.Context, sender models.Principal, page, limit int) (service.NotificationPage, error)
	markReadFn         func(ctx context.Context, actor models.Principal, id uuid.UUID) error
	respondFn          func(ctx context.Context, actor models.Principal, id uuid.UUID, req models.RespondRequest) (*models.Notification, error)
}

func (m *mockNotificationService) Send(ctx context.Context, sender models.Principal, req models.SendNotificationRequest) (*models.Notification, error) {
	return m.sendFn(ctx, sender, req)
}

func (m *mockNotificationService) ListForRecipient(ctx context.Context, recipient models.Principal, page, limit int) (service.NotificationPage, error) {
	return m.listForRecipientFn(ctx, recipient, page, limit)
}

func (m *mockNotificationService) ListForSender(ctx context.Context, sender models.Principal, page, limit int) (service.NotificationPage, error) {
	return m.listForSenderFn(ctx, sender, page, limit)
}

func (m *mockNotificationService) MarkRead(ctx context.Context, actor models.Principal, id uuid.UUID) error {
	return m.markReadFn(ctx, actor, id)
}

func (m *mockNotificationService) Respond(ctx context.Context, actor models.Principal, id uuid.UUID, req models.RespondRequest) (*models.Notification, error) {
	return m.respondFn(ctx, actor, id, req)
}

// mockDashboardService implements service.DashboardService for unit tests.
type mockDashboardService struct {
	statsFn func(ctx context.Context) (*models.DashboardStats, error)
}

func (m *mockDashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return m.statsFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given mock services. Nil
// fields are fine for tests that never reach the corresponding service.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, logger.Nop())
}

// jsonBody serialises v into a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeEnvelope unmarshals the recorded response body into out.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// withURLParam attaches a chi route parameter to the request so that
// handlers called directly (outside the router) can resolve it.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withPrincipal injects a resolved principal into the request context
// the same way the auth middleware does.
func withPrincipal(r *http.Request, principal models.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, principal)
	return r.WithContext(ctx)
}

// adminPrincipal is a convenience fixture used across multiple tests.
func adminPrincipal() models.Admin {
	return models.Admin{
		ID:       uuid.New(),
		Username: "watchman",
	}
}

func residentPrincipal() models.Resident {
	return models.Resident{
		ID:       uuid.New(),
		Username: "john_doe",
		FullName: "John Doe",
		IsActive: true,
	}
}
