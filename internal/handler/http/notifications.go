package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/internal/utils"
	"github.com/society360/backend/models"
)

func (h *Handler) sendNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sender, found := utils.GetPrincipalFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.sendNotification").Msg("no principal in context")
		writeErrorMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.SendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	notification, err := h.services.NotificationService.Send(ctx, sender, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sendNotification").Msg("error sending notification")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.NotificationResponse{
		Success:      true,
		Message:      "Notification sent successfully",
		Notification: notification,
	}, http.StatusCreated)
}

func (h *Handler) myNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recipient, found := utils.GetPrincipalFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.myNotifications").Msg("no principal in context")
		writeErrorMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	page, limit := pageParams(r, 10)

	result, err := h.services.NotificationService.ListForRecipient(ctx, recipient, page, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.myNotifications").Msg("error listing notifications")
		writeError(w, err)
		return
	}

	unread := result.Unread
	utils.WriteJSON(w, models.NotificationsListResponse{
		Success:       true,
		Notifications: result.Items,
		Pagination: models.Pagination{
			CurrentPage:        page,
			TotalPages:         totalPages(result.Total, limit),
			TotalNotifications: result.Total,
			UnreadCount:        &unread,
		},
	}, http.StatusOK)
}

func (h *Handler) sentNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sender, found := utils.GetPrincipalFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.sentNotifications").Msg("no principal in context")
		writeErrorMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	page, limit := pageParams(r, 20)

	result, err := h.services.NotificationService.ListForSender(ctx, sender, page, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sentNotifications").Msg("error listing sent notifications")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.NotificationsListResponse{
		Success:       true,
		Notifications: result.Items,
		Pagination: models.Pagination{
			CurrentPage:        page,
			TotalPages:         totalPages(result.Total, limit),
			TotalNotifications: result.Total,
		},
	}, http.StatusOK)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, found := utils.GetPrincipalFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.markNotificationRead").Msg("no principal in context")
		writeErrorMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := notificationIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid notification id")
		writeErrorMessage(w, "invalid notification id", http.StatusBadRequest)
		return
	}

	if err := h.services.NotificationService.MarkRead(ctx, actor, id); err != nil {
		log.Err(err).Str("func", "*Handler.markNotificationRead").Msg("error marking notification as read")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Success: true,
		Message: "Notification marked as read",
	}, http.StatusOK)
}

func (h *Handler) respondNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, found := utils.GetPrincipalFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.respondNotification").Msg("no principal in context")
		writeErrorMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id, err := notificationIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid notification id")
		writeErrorMessage(w, "invalid notification id", http.StatusBadRequest)
		return
	}

	var req models.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	notification, err := h.services.NotificationService.Respond(ctx, actor, id, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.respondNotification").Msg("error recording response")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.NotificationResponse{
		Success:      true,
		Message:      fmt.Sprintf("Response %q recorded successfully", req.Response.Label()),
		Notification: notification,
	}, http.StatusOK)
}

func notificationIDFromURL(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// pageParams reads the page and limit query parameters, falling back to
// page 1 and the route's default page size on absent or bad values.
func pageParams(r *http.Request, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}

	return page, limit
}

// totalPages is the page count for a listing of total items; zero items
// means zero pages, matching the pagination contract.
func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
