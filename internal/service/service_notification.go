package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/internal/store"
	"github.com/society360/backend/internal/utils"
	"github.com/society360/backend/models"
)

// Default page sizes of the two notification listings.
const (
	defaultRecipientPageSize = 10
	defaultSenderPageSize    = 20
)

// notificationService is the concrete implementation of
// NotificationService. It owns the notification state machine
// (UNREAD → READ → RESPONDED) and the per-operation ownership checks;
// identity summaries on returned records come from a read-side join
// against the identity store and are never persisted.
type notificationService struct {
	notificationRepository store.NotificationRepository
	userRepository         store.UserRepository
	logger                 *logger.Logger
}

// NewNotificationService constructs a NotificationService wired to the
// given repositories.
func NewNotificationService(notificationRepository store.NotificationRepository, userRepository store.UserRepository, logger *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		userRepository:         userRepository,
		logger:                 logger,
	}
}

// Send creates a new unread notification.
//
// Only admins may send; the recipient must exist and be a resident.
// Title and message must be non-empty after trimming. The notification
// type defaults to "general" when empty.
//
// Returns the persisted notification with sender/recipient summaries
// attached, or:
//   - ErrNotAllowed if the sender is not an admin.
//   - store.ErrUserNotFound if the recipient does not exist.
//   - ErrInvalidRecipient if the recipient is not a resident.
//   - ErrInvalidDataProvided on empty title/message or an unknown type.
func (s *notificationService) Send(ctx context.Context, sender models.Principal, req models.SendNotificationRequest) (*models.Notification, error) {
	log := logger.FromContext(ctx)

	if sender.PrincipalRole() != models.RoleAdmin {
		return nil, ErrNotAllowed
	}

	title := strings.TrimSpace(req.Title)
	message := strings.TrimSpace(req.Message)
	if req.RecipientID == uuid.Nil || title == "" || message == "" {
		log.Error().Msg("missing required notification fields")
		return nil, ErrInvalidDataProvided
	}

	notificationType := req.Type
	if notificationType == "" {
		notificationType = models.NotificationGeneral
	}
	if !notificationType.Valid() {
		return nil, ErrInvalidDataProvided
	}

	recipient, err := s.userRepository.FindByID(ctx, req.RecipientID)
	if err != nil {
		return nil, err
	}
	if recipient.PrincipalRole() != models.RoleResident {
		return nil, ErrInvalidRecipient
	}

	notification := models.Notification{
		ID:          utils.NewID(),
		RecipientID: req.RecipientID,
		SenderID:    sender.PrincipalID(),
		Type:        notificationType,
		Title:       title,
		Message:     message,
		IsUrgent:    req.IsUrgent,
	}

	saved, err := s.notificationRepository.Create(ctx, notification)
	if err != nil {
		log.Err(err).Msg("notification creation ended with error")
		return nil, err
	}

	result := []models.Notification{saved}
	if err := s.attachSummaries(ctx, result); err != nil {
		return nil, err
	}

	return &result[0], nil
}

// ListForRecipient returns one page of the recipient's notifications,
// newest first, together with the total and unread counts.
func (s *notificationService) ListForRecipient(ctx context.Context, recipient models.Principal, page, limit int) (NotificationPage, error) {
	page, limit = normalizePage(page, limit, defaultRecipientPageSize)
	offset := (page - 1) * limit

	items, err := s.notificationRepository.ListByRecipient(ctx, recipient.PrincipalID(), limit, offset)
	if err != nil {
		return NotificationPage{}, err
	}

	total, err := s.notificationRepository.CountByRecipient(ctx, recipient.PrincipalID())
	if err != nil {
		return NotificationPage{}, err
	}

	unread, err := s.notificationRepository.CountUnreadByRecipient(ctx, recipient.PrincipalID())
	if err != nil {
		return NotificationPage{}, err
	}

	if err := s.attachSummaries(ctx, items); err != nil {
		return NotificationPage{}, err
	}

	return NotificationPage{Items: items, Total: total, Unread: unread}, nil
}

// ListForSender returns one page of the notifications the admin sent,
// newest first, together with the total count.
func (s *notificationService) ListForSender(ctx context.Context, sender models.Principal, page, limit int) (NotificationPage, error) {
	page, limit = normalizePage(page, limit, defaultSenderPageSize)
	offset := (page - 1) * limit

	items, err := s.notificationRepository.ListBySender(ctx, sender.PrincipalID(), limit, offset)
	if err != nil {
		return NotificationPage{}, err
	}

	total, err := s.notificationRepository.CountBySender(ctx, sender.PrincipalID())
	if err != nil {
		return NotificationPage{}, err
	}

	if err := s.attachSummaries(ctx, items); err != nil {
		return NotificationPage{}, err
	}

	return NotificationPage{Items: items, Total: total}, nil
}

// MarkRead applies the UNREAD→READ transition on behalf of the
// recipient. Re-marking a read notification is a no-op that preserves
// the original readAt.
//
// Returns store.ErrNotificationNotFound if the notification does not
// exist and ErrNotAllowed if the actor is not its recipient.
func (s *notificationService) MarkRead(ctx context.Context, actor models.Principal, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	notification, err := s.notificationRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if notification.RecipientID != actor.PrincipalID() {
		log.Debug().
			Str("notification_id", id.String()).
			Str("actor_id", actor.PrincipalID().String()).
			Msg("non-recipient attempted to mark notification read")
		return ErrNotAllowed
	}

	return s.notificationRepository.MarkRead(ctx, id, time.Now())
}

// Respond records the recipient's answer and forces the read transition.
// A prior readAt survives; responding to a never-read notification sets
// readAt equal to responseAt.
//
// A second respond call on an already-responded notification overwrites
// the earlier response; the storage layer keeps no version, so the last
// write wins.
//
// Returns the updated notification with summaries attached, or:
//   - ErrInvalidResponse if the response is not coming/not_coming.
//   - store.ErrNotificationNotFound if the notification does not exist.
//   - ErrNotAllowed if the actor is not the recipient.
func (s *notificationService) Respond(ctx context.Context, actor models.Principal, id uuid.UUID, req models.RespondRequest) (*models.Notification, error) {
	log := logger.FromContext(ctx)

	if !req.Response.Valid() {
		return nil, ErrInvalidResponse
	}

	notification, err := s.notificationRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if notification.RecipientID != actor.PrincipalID() {
		log.Debug().
			Str("notification_id", id.String()).
			Str("actor_id", actor.PrincipalID().String()).
			Msg("non-recipient attempted to respond to notification")
		return nil, ErrNotAllowed
	}

	var responseMessage *string
	if trimmedMessage := strings.TrimSpace(req.ResponseMessage); trimmedMessage != "" {
		responseMessage = &trimmedMessage
	}

	updated, err := s.notificationRepository.SetResponse(ctx, id, req.Response, responseMessage, time.Now())
	if err != nil {
		log.Err(err).Str("notification_id", id.String()).Msg("recording response ended with error")
		return nil, err
	}

	result := []models.Notification{updated}
	if err := s.attachSummaries(ctx, result); err != nil {
		return nil, err
	}

	return &result[0], nil
}

// attachSummaries performs the read-side join: it resolves sender and
// recipient identity summaries for the given notifications in a single
// identity-store query and attaches them in place.
func (s *notificationService) attachSummaries(ctx context.Context, notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]struct{}, 2*len(notifications))
	ids := make([]uuid.UUID, 0, 2*len(notifications))
	for _, notification := range notifications {
		for _, id := range []uuid.UUID{notification.SenderID, notification.RecipientID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	summaries, err := s.userRepository.SummariesByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolving identity summaries failed: %w", err)
	}

	for i := range notifications {
		if summary, ok := summaries[notifications[i].SenderID]; ok {
			sender := summary
			notifications[i].Sender = &sender
		}
		if summary, ok := summaries[notifications[i].RecipientID]; ok {
			recipient := summary
			notifications[i].Recipient = &recipient
		}
	}

	return nil
}

// normalizePage clamps page and limit to sane values.
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}
