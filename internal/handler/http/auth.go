package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yjkwon-dev/pinggye/internal/logger"
	"github.com/yjkwon-dev/pinggye/internal/service"
	"github.com/yjkwon-dev/pinggye/internal/store"
	"github.com/yjkwon-dev/pinggye/internal/utils"
	"github.com/yjkwon-dev/pinggye/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgSignupMissingFields)
		return
	}

	user, err := h.services.Auth.Signup(r.Context(), req)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeMessage(w, http.StatusBadRequest, msgSignupMissingFields)
		return
	case errors.Is(err, service.ErrUsernameTaken):
		writeMessage(w, http.StatusBadRequest, msgUsernameTaken)
		return
	case errors.Is(err, service.ErrEmailTaken):
		writeMessage(w, http.StatusBadRequest, msgEmailTaken)
		return
	case err != nil:
		logger.FromRequest(r).Error().Err(err).Msg("signup failed")
		writeMessage(w, http.StatusInternalServerError, msgSignupError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{ //nolint:errcheck
		Message: msgSignupOK,
		User:    userView(user),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgLoginMissingFields)
		return
	}

	user, err := h.services.Auth.Login(r.Context(), req)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeMessage(w, http.StatusBadRequest, msgLoginMissingFields)
		return
	case errors.Is(err, service.ErrAuthenticationFailed):
		writeMessage(w, http.StatusUnauthorized, msgBadCredentials)
		return
	case err != nil:
		logger.FromRequest(r).Error().Err(err).Msg("login failed")
		writeMessage(w, http.StatusInternalServerError, msgLoginError)
		return
	}

	h.setSessionCookie(w, h.sessions.Create(user.ID))

	utils.WriteJSON(w, models.AuthResponse{ //nolint:errcheck
		Message: msgLoginOK,
		User:    userView(user),
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		h.sessions.Destroy(cookie.Value)
	}

	h.clearSessionCookie(w)
	writeMessage(w, http.StatusOK, msgLogoutOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	user, err := h.services.Auth.GetUser(r.Context(), userID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, msgUserNotFound)
		return
	case err != nil:
		logger.FromRequest(r).Error().Err(err).Msg("fetching user failed")
		writeMessage(w, http.StatusInternalServerError, msgUserFetchError)
		return
	}

	utils.WriteJSON(w, userView(user), http.StatusOK) //nolint:errcheck
}
