// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Society360 Authors

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/society360/backend/internal/store"
	"github.com/society360/backend/internal/utils"
	"github.com/society360/backend/models"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case; unset methods
// return zero values.
type mockUserRepository struct {
	createAdminFn          func(ctx context.Context, admin models.Admin) (models.Admin, error)
	createResidentFn       func(ctx context.Context, resident models.Resident) (models.Resident, error)
	findByUsernameFn       func(ctx context.Context, username string) (models.Principal, error)
	findByIDFn             func(ctx context.Context, id uuid.UUID) (models.Principal, error)
	listResidentsFn        func(ctx context.Context) ([]models.Resident, error)
	updateResidentFn       func(ctx context.Context, id uuid.UUID, update store.ResidentUpdate) (models.Resident, error)
	deleteResidentFn       func(ctx context.Context, id uuid.UUID) error
	summariesByIDsFn       func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.UserSummary, error)
	adminExistsFn          func(ctx context.Context) (bool, error)
	countResidentsFn       func(ctx context.Context) (int, error)
	countActiveResidentsFn func(ctx context.Context) (int, error)
	floorCountsFn          func(ctx context.Context) ([]models.FloorCount, error)
	recentResidentsFn      func(ctx context.Context, limit int) ([]models.ResidentBrief, error)
}

func (m *mockUserRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	if m.createAdminFn != nil {
		return m.createAdminFn(ctx, admin)
	}
	return admin, nil
}

func (m *mockUserRepository) CreateResident(ctx context.Context, resident models.Resident) (models.Resident, error) {
	if m.createResidentFn != nil {
		return m.createResidentFn(ctx, resident)
	}
	return resident, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (models.Principal, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (models.Principal, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserRepository) ListResidents(ctx context.Context) ([]models.Resident, error) {
	if m.listResidentsFn != nil {
		return m.listResidentsFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdateResident(ctx context.Context, id uuid.UUID, update store.ResidentUpdate) (models.Resident, error) {
	if m.updateResidentFn != nil {
		return m.updateResidentFn(ctx, id, update)
	}
	return models.Resident{}, nil
}

func (m *mockUserRepository) DeleteResident(ctx context.Context, id uuid.UUID) error {
	if m.deleteResidentFn != nil {
		return m.deleteResidentFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) SummariesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.UserSummary, error) {
	if m.summariesByIDsFn != nil {
		return m.summariesByIDsFn(ctx, ids)
	}
	return map[uuid.UUID]models.UserSummary{}, nil
}

func (m *mockUserRepository) AdminExists(ctx context.Context) (bool, error) {
	if m.adminExistsFn != nil {
		return m.adminExistsFn(ctx)
	}
	return false, nil
}

func (m *mockUserRepository) CountResidents(ctx context.Context) (int, error) {
	if m.countResidentsFn != nil {
		return m.countResidentsFn(ctx)
	}
	return 0, nil
}

func (m *mockUserRepository) CountActiveResidents(ctx context.Context) (int, error) {
	if m.countActiveResidentsFn != nil {
		return m.countActiveResidentsFn(ctx)
	}
	return 0, nil
}

func (m *mockUserRepository) FloorCounts(ctx context.Context) ([]models.FloorCount, error) {
	if m.floorCountsFn != nil {
		return m.floorCountsFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) RecentResidents(ctx context.Context, limit int) ([]models.ResidentBrief, error) {
	if m.recentResidentsFn != nil {
		return m.recentResidentsFn(ctx, limit)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.NotificationRepository
// ─────────────────────────────────────────────

type mockNotificationRepository struct {
	createFn                 func(ctx context.Context, notification models.Notification) (models.Notification, error)
	findByIDFn               func(ctx context.Context, id uuid.UUID) (models.Notification, error)
	listByRecipientFn        func(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]models.Notification, error)
	listBySenderFn           func(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]models.Notification, error)
	countByRecipientFn       func(ctx context.Context, recipientID uuid.UUID) (int, error)
	countUnreadByRecipientFn func(ctx context.Context, recipientID uuid.UUID) (int, error)
	countBySenderFn          func(ctx context.Context, senderID uuid.UUID) (int, error)
	markReadFn               func(ctx context.Context, id uuid.UUID, at time.Time) error
	setResponseFn            func(ctx context.Context, id uuid.UUID, response models.ResponseChoice, message *string, at time.Time) (models.Notification, error)
}

func (m *mockNotificationRepository) Create(ctx context.Context, notification models.Notification) (models.Notification, error) {
	if m.createFn != nil {
		return m.createFn(ctx, notification)
	}
	return notification, nil
}

func (m *mockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (models.Notification, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Notification{}, store.ErrNotificationNotFound
}

func (m *mockNotificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	if m.listByRecipientFn != nil {
		return m.listByRecipientFn(ctx, recipientID, limit, offset)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListBySender(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	if m.listBySenderFn != nil {
		return m.listBySenderFn(ctx, senderID, limit, offset)
	}
	return nil, nil
}

func (m *mockNotificationRepository) CountByRecipient(ctx context.Context, recipientID uuid.UUID) (int, error) {
	if m.countByRecipientFn != nil {
		return m.countByRecipientFn(ctx, recipientID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) CountUnreadByRecipient(ctx context.Context, recipientID uuid.UUID) (int, error) {
	if m.countUnreadByRecipientFn != nil {
		return m.countUnreadByRecipientFn(ctx, recipientID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) CountBySender(ctx context.Context, senderID uuid.UUID) (int, error) {
	if m.countBySenderFn != nil {
		return m.countBySenderFn(ctx, senderID)
	}
	return 0, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, id, at)
	}
	return nil
}

func (m *mockNotificationRepository) SetResponse(ctx context.Context, id uuid.UUID, response models.ResponseChoice, message *string, at time.Time) (models.Notification, error) {
	if m.setResponseFn != nil {
		return m.setResponseFn(ctx, id, response, message, at)
	}
	return models.Notification{}, nil
}

// ─────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────

// testAdmin returns an admin fixture with a bcrypt hash of the given
// password.
func testAdmin(password string) models.Admin {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return models.Admin{
		ID:           utils.NewID(),
		Username:     "watchman",
		PasswordHash: string(hash),
	}
}

// testResident returns an active resident fixture with a bcrypt hash of
// the given password.
func testResident(password string) models.Resident {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return models.Resident{
		ID:           utils.NewID(),
		Username:     "john_doe",
		PasswordHash: string(hash),
		FullName:     "John Doe",
		Email:        "john.doe@email.com",
		Phone:        "+1234567890",
		RoomNumber:   "101",
		Floor:        1,
		IsActive:     true,
	}
}
