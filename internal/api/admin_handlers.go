package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dvdgp9/gema8-go/internal/model"
)

// AdminStats godoc
// @Summary Platform statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} model.AdminStats
// @Failure 403 {object} map[string]string "Oracle role required"
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.profileRepo.Stats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// AdminListUsers godoc
// @Summary List users with profiles
// @Tags Admin
// @Produce json
// @Param search query string false "Match against email"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "Oracle role required"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r, 50)
	search := r.URL.Query().Get("search")

	users, err := h.userRepo.ListWithProfiles(r.Context(), limit, offset, search)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	total, err := h.userRepo.Count(r.Context(), search)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to count users")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"users":  users,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// AdminUpdateUser godoc
// @Summary Update a user's credits or role
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.AdminUpdateUserRequest true "Fields to update"
// @Success 200 {object} model.Profile
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Oracle role required"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /admin/users/{id} [patch]
func (h *Handler) AdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req model.AdminUpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Credits == nil && req.Role == nil {
		respondError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load user")
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}

	if req.Credits != nil {
		if err := h.ledger.Set(r.Context(), id, *req.Credits); err != nil {
			respondServiceError(w, err)
			return
		}
	}
	if req.Role != nil {
		if err := h.ledger.SetRole(r.Context(), id, *req.Role); err != nil {
			respondServiceError(w, err)
			return
		}
	}

	profile, err := h.profileCache.Refresh(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// AdminDeleteUser godoc
// @Summary Delete a user and all their data
// @Tags Admin
// @Param id path int true "User ID"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]string "Oracle role required"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (h *Handler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load user")
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}

	if err := h.userRepo.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	h.profileCache.Invalidate(id)

	w.WriteHeader(http.StatusNoContent)
}
