package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/models"
)

// notificationRepository is the PostgreSQL-backed implementation of
// [NotificationRepository].
type notificationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNotificationRepository constructs a [NotificationRepository] backed
// by the provided database connection and logger.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// notificationRow mirrors one row of the notifications table with its
// nullable read/response columns.
type notificationRow struct {
	ID              uuid.UUID
	RecipientID     uuid.UUID
	SenderID        uuid.UUID
	Type            string
	Title           string
	Message         string
	IsUrgent        bool
	IsRead          bool
	ReadAt          sql.NullTime
	HasResponse     bool
	Response        sql.NullString
	ResponseAt      sql.NullTime
	ResponseMessage sql.NullString
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// scanTargets returns scan destinations in the canonical
// notificationColumns order.
func (n *notificationRow) scanTargets() []any {
	return []any{
		&n.ID, &n.RecipientID, &n.SenderID, &n.Type, &n.Title, &n.Message,
		&n.IsUrgent, &n.IsRead, &n.ReadAt,
		&n.HasResponse, &n.Response, &n.ResponseAt, &n.ResponseMessage,
		&n.CreatedAt, &n.UpdatedAt,
	}
}

func (n *notificationRow) toNotification() models.Notification {
	notification := models.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		SenderID:    n.SenderID,
		Type:        models.NotificationType(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		IsUrgent:    n.IsUrgent,
		IsRead:      n.IsRead,
		HasResponse: n.HasResponse,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}

	if n.ReadAt.Valid {
		readAt := n.ReadAt.Time
		notification.ReadAt = &readAt
	}
	if n.Response.Valid {
		response := models.ResponseChoice(n.Response.String)
		notification.Response = &response
	}
	if n.ResponseAt.Valid {
		responseAt := n.ResponseAt.Time
		notification.ResponseAt = &responseAt
	}
	if n.ResponseMessage.Valid {
		responseMessage := n.ResponseMessage.String
		notification.ResponseMessage = &responseMessage
	}

	return notification
}

// Create persists a new notification in its initial unread state and
// returns the canonical database representation.
func (r *notificationRepository) Create(ctx context.Context, notification models.Notification) (models.Notification, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNotification,
		notification.ID,
		notification.RecipientID,
		notification.SenderID,
		string(notification.Type),
		notification.Title,
		notification.Message,
		notification.IsUrgent,
	)

	var saved notificationRow
	if err := row.Scan(saved.scanTargets()...); err != nil {
		log.Err(err).Str("func", "*notificationRepository.Create").Msg("error: notification insert failed")
		return models.Notification{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved.toNotification(), nil
}

// FindByID retrieves a single notification.
//
// Error handling:
//   - sql.ErrNoRows → [ErrNotificationNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (models.Notification, error) {
	log := logger.FromContext(ctx)

	var found notificationRow
	row := r.db.QueryRowContext(ctx, findNotificationByID, id)
	if err := row.Scan(found.scanTargets()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Notification{}, ErrNotificationNotFound
		}
		log.Err(err).Str("func", "*notificationRepository.FindByID").Msg("error: notification lookup failed")
		return models.Notification{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found.toNotification(), nil
}

// ListByRecipient returns one page of the recipient's notifications,
// newest first.
func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	return r.list(ctx, listNotificationsByRecipient, recipientID, limit, offset)
}

// ListBySender returns one page of the notifications sent by the given
// admin, newest first.
func (r *notificationRepository) ListBySender(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]models.Notification, error) {
	return r.list(ctx, listNotificationsBySender, senderID, limit, offset)
}

func (r *notificationRepository) list(ctx context.Context, query string, id uuid.UUID, limit, offset int) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, id, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.list").Msg("error: notifications query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0, limit)
	for rows.Next() {
		var current notificationRow
		if err := rows.Scan(current.scanTargets()...); err != nil {
			log.Err(err).Str("func", "*notificationRepository.list").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notifications = append(notifications, current.toNotification())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notifications, nil
}

// CountByRecipient returns the total number of notifications addressed
// to the recipient.
func (r *notificationRepository) CountByRecipient(ctx context.Context, recipientID uuid.UUID) (int, error) {
	return r.count(ctx, countNotificationsByRecipient, recipientID)
}

// CountUnreadByRecipient returns the number of unread notifications
// addressed to the recipient.
func (r *notificationRepository) CountUnreadByRecipient(ctx context.Context, recipientID uuid.UUID) (int, error) {
	return r.count(ctx, countUnreadNotificationsByRecipient, recipientID)
}

// CountBySender returns the total number of notifications sent by the
// given admin.
func (r *notificationRepository) CountBySender(ctx context.Context, senderID uuid.UUID) (int, error) {
	return r.count(ctx, countNotificationsBySender, senderID)
}

func (r *notificationRepository) count(ctx context.Context, query string, id uuid.UUID) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&total); err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return total, nil
}

// MarkRead applies the idempotent read transition. The COALESCE in the
// statement keeps the first recorded read_at on repeated calls.
func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, markNotificationRead, id, at)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.MarkRead").Msg("error: mark read failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// SetResponse records a resident's response and forces the read
// transition in the same statement. An earlier read_at survives; a
// never-read notification gets read_at equal to the response time.
func (r *notificationRepository) SetResponse(ctx context.Context, id uuid.UUID, response models.ResponseChoice, message *string, at time.Time) (models.Notification, error) {
	log := logger.FromContext(ctx)

	var responseMessage sql.NullString
	if message != nil && *message != "" {
		responseMessage = sql.NullString{String: *message, Valid: true}
	}

	var saved notificationRow
	row := r.db.QueryRowContext(ctx, setNotificationResponse, id, string(response), at, responseMessage)
	if err := row.Scan(saved.scanTargets()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Notification{}, ErrNotificationNotFound
		}
		log.Err(err).Str("func", "*notificationRepository.SetResponse").Msg("error: set response failed")
		return models.Notification{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved.toNotification(), nil
}
