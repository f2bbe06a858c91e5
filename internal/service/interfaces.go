package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/society360/backend/models"
)

// AuthService verifies credentials and manages the session token
// lifecycle.
type AuthService interface {
	// Login authenticates a username/password pair and returns the
	// matching principal. Absent accounts, deactivated residents, and
	// password mismatches all fail with ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (models.Principal, error)

	// CreateToken issues a signed session token for the principal.
	CreateToken(ctx context.Context, principal models.Principal) (models.Token, error)

	// Authorize validates a raw token string and resolves it to a live
	// principal. Any validation or lookup failure yields
	// ErrTokenIsExpiredOrInvalid.
	Authorize(ctx context.Context, tokenString string) (models.Principal, error)
}

// ResidentService manages resident accounts on behalf of administrators.
type ResidentService interface {
	CreateResident(ctx context.Context, admin models.Principal, req models.CreateResidentRequest) (*models.Resident, error)
	ListResidents(ctx context.Context) ([]models.ResidentAdminView, error)
	GetResident(ctx context.Context, id uuid.UUID) (*models.Resident, error)
	UpdateResident(ctx context.Context, id uuid.UUID, req models.UpdateResidentRequest) (*models.Resident, error)
	DeleteResident(ctx context.Context, id uuid.UUID) error
}

// NotificationPage is one page of a notification listing together with
// its totals. Unread is meaningful only for recipient-facing listings.
type NotificationPage struct {
	Items  []models.Notification
	Total  int
	Unread int
}

// NotificationService drives the notification lifecycle
// (UNREAD → READ → RESPONDED) and enforces its access rules.
type NotificationService interface {
	// Send creates a new unread notification from an admin to a
	// resident and returns it with identity summaries attached.
	Send(ctx context.Context, sender models.Principal, req models.SendNotificationRequest) (*models.Notification, error)

	// ListForRecipient returns one page of the recipient's own
	// notifications, newest first, with sender summaries attached.
	ListForRecipient(ctx context.Context, recipient models.Principal, page, limit int) (NotificationPage, error)

	// ListForSender returns one page of the notifications the admin
	// sent, newest first, with recipient summaries attached.
	ListForSender(ctx context.Context, sender models.Principal, page, limit int) (NotificationPage, error)

	// MarkRead applies the idempotent read transition. Only the
	// recipient may read a notification.
	MarkRead(ctx context.Context, actor models.Principal, id uuid.UUID) error

	// Respond records the recipient's binary answer, forcing the read
	// transition as a side effect.
	Respond(ctx context.Context, actor models.Principal, id uuid.UUID, req models.RespondRequest) (*models.Notification, error)
}

// DashboardService produces read-only projections over the identity
// store.
type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}
