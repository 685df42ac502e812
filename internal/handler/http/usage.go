package http

import (
	"net/http"

	"github.com/yjkwon-dev/pinggye/internal/logger"
	"github.com/yjkwon-dev/pinggye/internal/utils"
)

func (h *Handler) currentWeekUsage(w http.ResponseWriter, r *http.Request) {
	owner := utils.OwnerFromContext(r.Context())

	summary, err := h.services.Usage.CurrentWeek(r.Context(), owner)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("fetching usage summary failed")
		writeMessage(w, http.StatusInternalServerError, msgUsageFetchError)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK) //nolint:errcheck
}

func (h *Handler) usageHistory(w http.ResponseWriter, r *http.Request) {
	owner := utils.OwnerFromContext(r.Context())

	history, err := h.services.Usage.History(r.Context(), owner)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("fetching usage history failed")
		writeMessage(w, http.StatusInternalServerError, msgHistoryFetchError)
		return
	}

	utils.WriteJSON(w, history, http.StatusOK) //nolint:errcheck
}
