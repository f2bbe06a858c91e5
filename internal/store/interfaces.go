package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/society360/backend/models"
)

// ResidentUpdate carries the fields of a partial resident update.
// Nil fields are left untouched. A non-nil ImageURL pointing at an empty
// string clears the stored image URL.
type ResidentUpdate struct {
	FullName         *string
	Email            *string
	Phone            *string
	ImageURL         *string
	RoomNumber       *string
	Floor            *int
	EmergencyContact *models.EmergencyContact
	VehicleDetails   *models.VehicleDetails
	IsActive         *bool
}

// UserRepository is the data-access contract of the identity store.
type UserRepository interface {
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	CreateResident(ctx context.Context, resident models.Resident) (models.Resident, error)
	FindByUsername(ctx context.Context, username string) (models.Principal, error)
	FindByID(ctx context.Context, id uuid.UUID) (models.Principal, error)
	ListResidents(ctx context.Context) ([]models.Resident, error)
	UpdateResident(ctx context.Context, id uuid.UUID, update ResidentUpdate) (models.Resident, error)
	DeleteResident(ctx context.Context, id uuid.UUID) error

	// SummariesByIDs resolves identity summaries for the given principal
	// IDs in one query. Missing IDs are simply absent from the result.
	SummariesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.UserSummary, error)

	AdminExists(ctx context.Context) (bool, error)
	CountResidents(ctx context.Context) (int, error)
	CountActiveResidents(ctx context.Context) (int, error)
	FloorCounts(ctx context.Context) ([]models.FloorCount, error)
	RecentResidents(ctx context.Context, limit int) ([]models.ResidentBrief, error)
}

// NotificationRepository is the data-access contract of the notification
// store. List methods return records ordered by creation time descending.
type NotificationRepository interface {
	Create(ctx context.Context, notification models.Notification) (models.Notification, error)
	FindByID(ctx context.Context, id uuid.UUID) (models.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]models.Notification, error)
	ListBySender(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]models.Notification, error)
	CountByRecipient(ctx context.Context, recipientID uuid.UUID) (int, error)
	CountUnreadByRecipient(ctx context.Context, recipientID uuid.UUID) (int, error)
	CountBySender(ctx context.Context, senderID uuid.UUID) (int, error)

	// MarkRead applies the idempotent read transition: is_read becomes
	// true and read_at is set only if it was never set before.
	MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error

	// SetResponse records a response and forces the read transition in
	// the same statement, preserving an earlier read_at if present.
	SetResponse(ctx context.Context, id uuid.UUID, response models.ResponseChoice, message *string, at time.Time) (models.Notification, error)
}
