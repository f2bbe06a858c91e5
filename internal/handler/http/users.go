package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/internal/utils"
	"github.com/society360/backend/models"
)

func (h *Handler) createResident(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	admin, found := utils.GetPrincipalFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createResident").Msg("no principal in context")
		writeErrorMessage(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resident, err := h.services.ResidentService.CreateResident(ctx, admin, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createResident").Msg("error creating resident")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ResidentResponse{
		Success:  true,
		Message:  "Resident created successfully",
		Resident: resident,
	}, http.StatusCreated)
}

func (h *Handler) listResidents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	residents, err := h.services.ResidentService.ListResidents(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listResidents").Msg("error listing residents")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ResidentsListResponse{
		Success:   true,
		Count:     len(residents),
		Residents: residents,
	}, http.StatusOK)
}

func (h *Handler) getResident(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := residentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid resident id")
		writeErrorMessage(w, "invalid resident id", http.StatusBadRequest)
		return
	}

	resident, err := h.services.ResidentService.GetResident(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getResident").Msg("error getting resident")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ResidentResponse{
		Success:  true,
		Resident: resident,
	}, http.StatusOK)
}

func (h *Handler) updateResident(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := residentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid resident id")
		writeErrorMessage(w, "invalid resident id", http.StatusBadRequest)
		return
	}

	var req models.UpdateResidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resident, err := h.services.ResidentService.UpdateResident(ctx, id, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateResident").Msg("error updating resident")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ResidentResponse{
		Success:  true,
		Message:  "Resident updated successfully",
		Resident: resident,
	}, http.StatusOK)
}

func (h *Handler) deleteResident(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := residentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid resident id")
		writeErrorMessage(w, "invalid resident id", http.StatusBadRequest)
		return
	}

	if err := h.services.ResidentService.DeleteResident(ctx, id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteResident").Msg("error deleting resident")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Success: true,
		Message: "Resident deleted successfully",
	}, http.StatusOK)
}

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.DashboardService.Stats(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.dashboardStats").Msg("error aggregating dashboard stats")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.DashboardStatsResponse{
		Success: true,
		Stats:   stats,
	}, http.StatusOK)
}

func residentIDFromURL(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
