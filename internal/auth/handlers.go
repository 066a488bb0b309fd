package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/BellaCucina/bistro-backend/internal/config"
	"github.com/BellaCucina/bistro-backend/internal/utils"
)

const (
	maxUsernameLength = 64
	minPasswordLength = 8
	maxPasswordLength = 128
)

type Handler struct {
	svc    *Service
	secret string
	secure bool
}

func NewHandler(svc *Service, cfg config.Config) *Handler {
	return &Handler{
		svc:    svc,
		secret: cfg.SessionSecret,
		secure: cfg.Production,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func validateCredentials(req credentialsRequest) string {
	switch {
	case req.Username == "" || req.Password == "":
		return "Username and password are required"
	case len(req.Username) > maxUsernameLength:
		return "Username is too long"
	case len(req.Password) < minPasswordLength:
		return "Password must be at least 8 characters"
	case len(req.Password) > maxPasswordLength:
		return "Password is too long"
	default:
		return ""
	}
}

// setSession signs the session ID into the cookie so the client cannot mint
// identifiers.
func (h *Handler) setSession(w http.ResponseWriter, session Session) {
	value := utils.SignSessionID(session.SessionID, h.secret)
	http.SetCookie(w, sessionCookie(value, int(SessionLifetime.Seconds()), h.secure))
}

func (h *Handler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, sessionCookie("", -1, h.secure))
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	if msg := validateCredentials(req); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	user, session, err := h.svc.Register(req.Username, req.Password)
	if errors.Is(err, ErrDuplicateUsername) {
		utils.RespondError(w, http.StatusBadRequest, "Username already taken")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.setSession(w, session)
	utils.RespondJSON(w, http.StatusCreated, user)
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, session, err := h.svc.Login(req.Username, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		// One message for unknown username and wrong password.
		utils.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.setSession(w, session)
	utils.RespondJSON(w, http.StatusOK, user)
}

// LogoutHandler always answers 200: logging out twice, or with no session,
// is not an error.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(utils.SessionCookieName); err == nil {
		if sessionID, ok := utils.ParseSessionCookie(cookie.Value, h.secret); ok {
			if err := h.svc.Logout(sessionID); err != nil {
				// The cookie is cleared regardless; the orphaned row expires
				// on its own.
				log.Printf("[auth] logout: %v", err)
			}
		}
	}

	h.clearSession(w)
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// MeHandler is a pure context read; the identity middleware already resolved
// the session.
func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	utils.RespondJSON(w, http.StatusOK, PublicUser{
		UserID:   ident.UserID,
		Username: ident.Username,
		Role:     ident.Role,
	})
}

func (h *Handler) UpdatePasswordHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Current and new password are required")
		return
	}
	if len(req.NewPassword) < minPasswordLength || len(req.NewPassword) > maxPasswordLength {
		utils.RespondError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	err := h.svc.ChangePassword(ident.UserID, req.CurrentPassword, req.NewPassword)
	if errors.Is(err, ErrInvalidCredentials) {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid current password")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
