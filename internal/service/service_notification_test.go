// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Society360 Authors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/internal/store"
	"github.com/society360/backend/internal/utils"
	"github.com/society360/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationService(notifications store.NotificationRepository, users store.UserRepository) NotificationService {
	return NewNotificationService(notifications, users, logger.Nop())
}

// summariesFor builds a summariesByIDsFn that resolves the given
// principals.
func summariesFor(principals ...models.Principal) func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.UserSummary, error) {
	return func(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]models.UserSummary, error) {
		out := make(map[uuid.UUID]models.UserSummary, len(principals))
		for _, p := range principals {
			out[p.PrincipalID()] = models.UserSummary{ID: p.PrincipalID(), Username: p.PrincipalUsername()}
		}
		return out, nil
	}
}

func unreadNotification(sender models.Admin, recipient models.Resident) models.Notification {
	return models.Notification{
		ID:          utils.NewID(),
		RecipientID: recipient.ID,
		SenderID:    sender.ID,
		Type:        models.NotificationParcel,
		Title:       "Parcel at the gate",
		Message:     "A parcel arrived for you.",
		CreatedAt:   time.Now(),
	}
}

// ─────────────────────────────────────────────
// Send
// ─────────────────────────────────────────────

func TestSend_Success(t *testing.T) {
	admin := testAdmin("watchman123")
	resident := testResident("password123")

	var persisted models.Notification
	notifications := &mockNotificationRepository{
		createFn: func(_ context.Context, n models.Notification) (models.Notification, error) {
			persisted = n
			return n, nil
		},
	}
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, id uuid.UUID) (models.Principal, error) {
			require.Equal(t, resident.ID, id)
			return resident, nil
		},
		summariesByIDsFn: summariesFor(admin, resident),
	}

	sent, err := newNotificationService(notifications, users).Send(context.Background(), admin, models.SendNotificationRequest{
		RecipientID: resident.ID,
		Type:        models.NotificationParcel,
		Title:       "  Parcel at the gate  ",
		Message:     "A parcel arrived for you.",
		IsUrgent:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Parcel at the gate", sent.Title, "title must be trimmed")
	assert.Equal(t, admin.ID, persisted.SenderID)
	assert.True(t, persisted.IsUrgent)

	// a fresh notification starts the lifecycle unread and unanswered
	assert.False(t, sent.IsRead)
	assert.Nil(t, sent.ReadAt)
	assert.False(t, sent.HasResponse)
	assert.Nil(t, sent.Response)

	require.NotNil(t, sent.Sender)
	assert.Equal(t, "watchman", sent.Sender.Username)
	require.NotNil(t, sent.Recipient)
	assert.Equal(t, "john_doe", sent.Recipient.Username)
}

func TestSend_DefaultsTypeToGeneral(t *testing.T) {
	admin := testAdmin("watchman123")
	resident := testResident("password123")

	notifications := &mockNotificationRepository{}
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (models.Principal, error) {
			return resident, nil
		},
		summariesByIDsFn: summariesFor(admin, resident),
	}

	sent, err := newNotificationService(notifications, users).Send(context.Background(), admin, models.SendNotificationRequest{
		RecipientID: resident.ID,
		Title:       "Water outage",
		Message:     "Maintenance tomorrow 10:00-12:00.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.NotificationGeneral, sent.Type)
}

func TestSend_ResidentSenderRejected(t *testing.T) {
	resident := testResident("password123")

	_, err := newNotificationService(&mockNotificationRepository{}, &mockUserRepository{}).
		Send(context.Background(), resident, models.SendNotificationRequest{
			RecipientID: uuid.New(),
			Title:       "Hello",
			Message:     "Hi",
		})
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestSend_AdminRecipientRejected(t *testing.T) {
	admin := testAdmin("watchman123")
	otherAdmin := testAdmin("watchman456")

	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (models.Principal, error) {
			return otherAdmin, nil
		},
	}

	_, err := newNotificationService(&mockNotificationRepository{}, users).
		Send(context.Background(), admin, models.SendNotificationRequest{
			RecipientID: otherAdmin.ID,
			Title:       "Hello",
			Message:     "Hi",
		})
	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestSend_UnknownRecipient(t *testing.T) {
	admin := testAdmin("watchman123")
	users := &mockUserRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (models.Principal, error) {
			return nil, store.ErrUserNotFound
		},
	}

	_, err := newNotificationService(&mockNotificationRepository{}, users).
		Send(context.Background(), admin, models.SendNotificationRequest{
			RecipientID: uuid.New(),
			Title:       "Hello",
			Message:     "Hi",
		})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestSend_Validation(t *testing.T) {
	admin := testAdmin("watchman123")
	svc := newNotificationService(&mockNotificationRepository{}, &mockUserRepository{})

	for name, req := range map[string]models.SendNotificationRequest{
		"nil recipient": {Title: "Hello", Message: "Hi"},
		"blank title":   {RecipientID: uuid.New(), Title: "   ", Message: "Hi"},
		"blank message": {RecipientID: uuid.New(), Title: "Hello", Message: "   "},
		"unknown type":  {RecipientID: uuid.New(), Title: "Hello", Message: "Hi", Type: "fanfare"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Send(context.Background(), admin, req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

// ─────────────────────────────────────────────
// MarkRead
// ─────────────────────────────────────────────

func TestMarkRead_Success(t *testing.T) {
	admin := testAdmin("watchman123")
	resident := testResident("password123")
	notification := unreadNotification(admin, resident)

	marked := false
	notifications := &mockNotificationRepository{
		findByIDFn: func(_ context.Context, id uuid.UUID) (models.Notification, error) {
			require.Equal(t, notification.ID, id)
			return notification, nil
		},
		markReadFn: func(_ context.Context, id uuid.UUID, at time.Time) error {
			marked = true
			assert.WithinDuration(t, time.Now(), at, time.Minute)
			return nil
		},
	}

	err := newNotificationService(notifications, &mockUserRepository{}).
		MarkRead(context.Background(), resident, notification.ID)
	require.NoError(t, err)
	assert.True(t, marked)
}

func TestMarkRead_NonRecipient(t *testing.T) {
	admin := testAdmin("watchman123")
	resident := testResident("password123")
	stranger := testResident("password456")
	stranger.ID = utils.NewID()
	notification := unreadNotification(admin, resident)

	notifications := &mockNotificationRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (models.Notification, error) {
			return notification, nil
		},
	}

	err := newNotificationService(notifications, &mockUserRepository{}).
		MarkRead(context.Background(), stranger, notification.ID)
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestMarkRead_NotFound(t *testing.T) {
	resident := testResident("password123")
	notifications := &mockNotificationRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (models.Notification, error) {
			return models.Notification{}, store.ErrNotificationNotFound
		},
	}

	err := newNotificationService(notifications, &mockUserRepository{}).
		MarkRead(context.Background(), resident, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotificationNotFound)
}

// ─────────────────────────────────────────────
// Respond
// ─────────────────────────────────────────────

func TestRespond_Success(t *testing.T) {
	admin := testAdmin("watchman123")
	resident := testResident("password123")
	notification := unreadNotification(admin, resident)

	var capturedMessage *string
	notifications := &mockNotificationRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (models.Notification, error) {
			return notification, nil
		},
		setResponseFn: func(_ context.Context, id uuid.UUID, response models.ResponseChoice, message *string, at time.Time) (models.Notification, error) {
			capturedMessage = message

			updated := notification
			updated.IsRead = true
			updated.ReadAt = &at
			updated.HasResponse = true
			updated.Response = &response
			updated.ResponseAt = &at
			updated.ResponseMessage = message
			return updated, nil
		},
	}
	users := &mockUserRepository{summariesByIDsFn: summariesFor(admin, resident)}

	updated, err := newNotificationService(notifications, users).
		Respond(context.Background(), resident, notification.ID, models.RespondRequest{
			Response:        models.ResponseComing,
			ResponseMessage: "  On my way  ",
		})
	require.NoError(t, err)

	// responding forces the read transition
	assert.True(t, updated.IsRead)
	assert.True(t, updated.HasResponse)
	require.NotNil(t, updated.Response)
	assert.Equal(t, models.ResponseComing, *updated.Response)
	require.NotNil(t, capturedMessage)
	assert.Equal(t, "On my way", *capturedMessage, "response message must be trimmed")
	require.NotNil(t, updated.Sender)
	assert.Equal(t, "watchman", updated.Sender.Username)
}

// TestRespond_KeepsEarlierReadTimestamp covers responding to a
// notification the resident already opened: the original read
// timestamp must come back untouched, with only the response fields
// updated.
func TestRespond_KeepsEarlierReadTimestamp(t *testing.T) {
	admin := testAdmin("watchman123")
	resident := testResident("password123")

	firstReadAt := time.Now().Add(-2 * time.Hour).UTC().Truncate(time.Second)

	notification := unreadNotification(admin, resident)
	notification.IsRead = true
	notification.ReadAt = &firstReadAt

	notifications := &mockNotificationRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (models.Notification, error) {
			return notification, nil
		},
		setResponseFn: func(_ context.Context, _ uuid.UUID, response models.ResponseChoice, message *string, at time.Time) (models.Notification, error) {
			// read_at = COALESCE(read_at, $3): an existing value wins.
			updated := notification
			updated.HasResponse = true
			updated.Response = &response
			updated.ResponseAt = &at
			updated.ResponseMessage = message
			return updated, nil
		},
	}
	users := &mockUserRepository{summariesByIDsFn: summariesFor(admin, resident)}

	updated, err := newNotificationService(notifications, users).
		Respond(context.Background(), resident, notification.ID, models.RespondRequest{Response: models.ResponseComing})
	require.NoError(t, err)

	require.NotNil(t, updated.ReadAt)
	assert.True(t, updated.ReadAt.Equal(firstReadAt), "responding must not move an existing read timestamp")
	require.NotNil(t, updated.ResponseAt)
	assert.True(t, updated.ResponseAt.After(firstReadAt))
}

// TestRespond_InvalidChoice verifies the "maybe" rejection happens
// before any repository access, so no state can change.
func TestRespond_InvalidChoice(t *testing.T) {
	resident := testResident("password123")

	touched := false
	notifications := &mockNotificationRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (models.Notification, error) {
			touched = true
			return models.Notification{}, nil
		},
	}

	_, err := newNotificationService(notifications, &mockUserRepository{}).
		Respond(context.Background(), resident, uuid.New(), models.RespondRequest{Response: "maybe"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.False(t, touched, "an invalid response must not reach the store")
}

func TestRespond_EmptyChoice(t *testing.T) {
	resident := testResident("password123")

	_, err := newNotificationService(&mockNotificationRepository{}, &mockUserRepository{}).
		Respond(context.Background(), resident, uuid.New(), models.RespondRequest{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestRespond_NonRecipient(t *testing.T) {
	admin := testAdmin("watchman123")
	resident := testResident("password123")
	notification := unreadNotification(admin, resident)

	notifications := &mockNotificationRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (models.Notification, error) {
			return notification, nil
		},
	}

	_, err := newNotificationService(notifications, &mockUserRepository{}).
		Respond(context.Background(), admin, notification.ID, models.RespondRequest{Response: models.ResponseNotComing})
	assert.ErrorIs(t, err, ErrNotAllowed)
}

// ─────────────────────────────────────────────
// Listings
// ─────────────────────────────────────────────

func TestListForRecipient_DefaultsAndCounts(t *testing.T) {
	admin := testAdmin("watchman123")
	resident := testResident("password123")

	var gotLimit, gotOffset int
	notifications := &mockNotificationRepository{
		listByRecipientFn: func(_ context.Context, recipientID uuid.UUID, limit, offset int) ([]models.Notification, error) {
			require.Equal(t, resident.ID, recipientID)
			gotLimit, gotOffset = limit, offset
			return []models.Notification{unreadNotification(admin, resident)}, nil
		},
		countByRecipientFn: func(_ context.Context, _ uuid.UUID) (int, error) {
			return 23, nil
		},
		countUnreadByRecipientFn: func(_ context.Context, _ uuid.UUID) (int, error) {
			return 5, nil
		},
	}
	users := &mockUserRepository{summariesByIDsFn: summariesFor(admin, resident)}

	page, err := newNotificationService(notifications, users).
		ListForRecipient(context.Background(), resident, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 10, gotLimit, "recipient listing defaults to 10 per page")
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, 23, page.Total)
	assert.Equal(t, 5, page.Unread)
	require.Len(t, page.Items, 1)
	require.NotNil(t, page.Items[0].Sender)
	assert.Equal(t, "watchman", page.Items[0].Sender.Username)
}

func TestListForRecipient_Offset(t *testing.T) {
	resident := testResident("password123")

	var gotLimit, gotOffset int
	notifications := &mockNotificationRepository{
		listByRecipientFn: func(_ context.Context, _ uuid.UUID, limit, offset int) ([]models.Notification, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
	}

	_, err := newNotificationService(notifications, &mockUserRepository{}).
		ListForRecipient(context.Background(), resident, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, 10, gotOffset)
}

func TestListForSender_Defaults(t *testing.T) {
	admin := testAdmin("watchman123")

	var gotLimit int
	notifications := &mockNotificationRepository{
		listBySenderFn: func(_ context.Context, senderID uuid.UUID, limit, _ int) ([]models.Notification, error) {
			require.Equal(t, admin.ID, senderID)
			gotLimit = limit
			return nil, nil
		},
		countBySenderFn: func(_ context.Context, _ uuid.UUID) (int, error) {
			return 0, nil
		},
	}

	page, err := newNotificationService(notifications, &mockUserRepository{}).
		ListForSender(context.Background(), admin, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, gotLimit, "sender listing defaults to 20 per page")
	assert.Equal(t, 0, page.Total)
	assert.Empty(t, page.Items)
}
