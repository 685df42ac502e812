package http

import (
	"net/http"

	"github.com/yjkwon-dev/pinggye/internal/utils"
	"github.com/yjkwon-dev/pinggye/models"
)

// sessionCookieName is the cookie carrying the opaque session ID. The cookie
// holds nothing but the ID; all session state lives server-side.
const sessionCookieName = "pinggye_session"

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode) //nolint:errcheck
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.sessionTTL.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}

func userView(user *models.User) models.UserResponse {
	return models.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
