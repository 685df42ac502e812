package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yjkwon-dev/pinggye/internal/logger"
	"github.com/yjkwon-dev/pinggye/internal/service"
	"github.com/yjkwon-dev/pinggye/internal/store"
	"github.com/yjkwon-dev/pinggye/internal/utils"
	"github.com/yjkwon-dev/pinggye/models"
)

const defaultRecentLimit = 10

func (h *Handler) generateExcuse(w http.ResponseWriter, r *http.Request) {
	var req models.ExcuseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgGenerateError)
		return
	}

	owner := utils.OwnerFromContext(r.Context())

	excuse, err := h.services.Excuses.GenerateExcuse(r.Context(), req, owner)
	switch {
	case errors.Is(err, service.ErrInvalidCategory), errors.Is(err, service.ErrInvalidTone):
		writeMessage(w, http.StatusBadRequest, msgGenerateError)
		return
	case err != nil:
		logger.FromRequest(r).Error().Err(err).Msg("excuse generation failed")
		writeMessage(w, http.StatusInternalServerError, msgGenerateError)
		return
	}

	utils.WriteJSON(w, models.ExcuseResponse{ //nolint:errcheck
		ID:       excuse.ID,
		Excuse:   excuse.Content,
		Category: excuse.Category,
		Tone:     excuse.Tone,
	}, http.StatusOK)
}

func (h *Handler) bookmarkedExcuses(w http.ResponseWriter, r *http.Request) {
	owner := utils.OwnerFromContext(r.Context())

	excuses, err := h.services.Excuses.GetBookmarkedExcuses(r.Context(), owner)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("fetching bookmarked excuses failed")
		writeMessage(w, http.StatusInternalServerError, msgBookmarkedFetchError)
		return
	}

	utils.WriteJSON(w, excuses, http.StatusOK) //nolint:errcheck
}

func (h *Handler) recentExcuses(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	owner := utils.OwnerFromContext(r.Context())

	excuses, err := h.services.Excuses.GetRecentExcuses(r.Context(), limit, owner)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("fetching recent excuses failed")
		writeMessage(w, http.StatusInternalServerError, msgRecentFetchError)
		return
	}

	utils.WriteJSON(w, excuses, http.StatusOK) //nolint:errcheck
}

func (h *Handler) setBookmark(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusNotFound, msgExcuseNotFound)
		return
	}

	var req models.BookmarkRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgBookmarkUpdateError)
		return
	}

	excuse, err := h.services.Excuses.SetBookmark(r.Context(), id, req.Bookmarked)
	switch {
	case errors.Is(err, store.ErrExcuseNotFound):
		writeMessage(w, http.StatusNotFound, msgExcuseNotFound)
		return
	case err != nil:
		logger.FromRequest(r).Error().Err(err).Msg("bookmark update failed")
		writeMessage(w, http.StatusInternalServerError, msgBookmarkUpdateError)
		return
	}

	utils.WriteJSON(w, excuse, http.StatusOK) //nolint:errcheck
}

func (h *Handler) clearExcuses(w http.ResponseWriter, r *http.Request) {
	owner := utils.OwnerFromContext(r.Context())

	if err := h.services.Excuses.ClearExcuses(r.Context(), owner); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("clearing excuses failed")
		writeMessage(w, http.StatusInternalServerError, msgClearError)
		return
	}

	writeMessage(w, http.StatusOK, msgCleared)
}
