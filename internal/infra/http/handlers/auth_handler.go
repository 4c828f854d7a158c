package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/infra/security"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type AuthHandler struct {
	RegisterUC  *usecase.RegisterUserUseCase
	LoginUC     *usecase.LoginUserUseCase
	Users       entity.UserRepository
	Signer      *security.SessionSigner
	Denylist    *security.RedisDenylist
	rateLimiter *RateLimiter
}

func NewAuthHandler(
	registerUC *usecase.RegisterUserUseCase,
	loginUC *usecase.LoginUserUseCase,
	users entity.UserRepository,
	signer *security.SessionSigner,
	denylist *security.RedisDenylist,
) *AuthHandler {
	return &AuthHandler{
		RegisterUC:  registerUC,
		LoginUC:     loginUC,
		Users:       users,
		Signer:      signer,
		Denylist:    denylist,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "too many requests"})
		return
	}

	var input usecase.RegisterUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	user, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.setSessionCookie(w, user); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "too many requests"})
		return
	}

	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	user, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.setSessionCookie(w, user); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Logout limpa o cookie E revoga o jti no Redis até o token expirar.
// Sem a denylist o token continuaria válido por até 7 dias.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if claims, err := h.Signer.Parse(cookie.Value); err == nil && h.Denylist != nil {
			// Revogação falhada não pode passar em silêncio: o token
			// seguiria válido até expirar.
			if err := h.Denylist.Revoke(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				log.Printf("❌ [AUTH] Falha ao revogar sessão %s: %s", claims.ID, err)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.Users.FindByID(r.Context(), claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "user not found"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, user *entity.User) error {
	token, expiresAt, err := h.Signer.Sign(user)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
	})
	return nil
}
