package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-manager/internal/logger"
	"github.com/MKhiriev/go-user-manager/internal/utils"
	"github.com/MKhiriev/go-user-manager/models"
	"github.com/go-chi/chi/v5"
)

// root is a health banner for the unauthenticated index route.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("user manager API"))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("error occurred during user listing")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Data: models.UsersData{Users: users}}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid user id in path")
		respondMessage(w, "invalid user id", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error occurred during user lookup")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Data: models.UserData{User: foundUser}}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid user id in path")
		respondMessage(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	affected, err := h.services.UserService.UpdateUser(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error occurred during user update")
		respondError(w, err)
		return
	}

	actorID, _ := utils.GetUserIDFromContext(ctx)
	log.Info().Int64("id", id).Int64("actor", actorID).Msg("user updated")

	utils.WriteJSON(w, models.AffectedResponse{Affected: affected}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := userIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid user id in path")
		respondMessage(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.RemoveUser(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("error occurred during user deletion")
		respondError(w, err)
		return
	}

	actorID, _ := utils.GetUserIDFromContext(ctx)
	log.Info().Int64("id", id).Int64("actor", actorID).Msg("user deleted")

	utils.WriteJSON(w, models.AffectedResponse{Affected: 1}, http.StatusOK)
}

// userIDFromURL parses the {id} route parameter as a base-10 int64.
func userIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
