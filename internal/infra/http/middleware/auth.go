package middleware

import (
	"context"
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/infra/security"
)

const SessionCookieName = "app_session"

type sessionKey struct{}

// Session resolve o dono da requisição: cookie -> JWT válido -> jti fora da
// denylist. O core confia no owner que sai daqui; é ele que escopa toda
// query de lead/campanha.
type Session struct {
	Signer   *security.SessionSigner
	Denylist *security.RedisDenylist
}

func NewSession(signer *security.SessionSigner, denylist *security.RedisDenylist) *Session {
	return &Session{Signer: signer, Denylist: denylist}
}

func (s *Session) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := s.Signer.Parse(cookie.Value)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if s.Denylist != nil {
			revoked, err := s.Denylist.IsRevoked(r.Context(), claims.ID)
			if err != nil {
				// Redis fora do ar não pode virar bypass de logout.
				http.Error(w, "Session check unavailable", http.StatusServiceUnavailable)
				return
			}
			if revoked {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), claims)))
	})
}

// WithSession anexa os claims ao contexto.
func WithSession(ctx context.Context, claims *security.SessionClaims) context.Context {
	return context.WithValue(ctx, sessionKey{}, claims)
}

// SessionFromContext devolve os claims colocados pelo middleware.
func SessionFromContext(ctx context.Context) (*security.SessionClaims, bool) {
	claims, ok := ctx.Value(sessionKey{}).(*security.SessionClaims)
	return claims, ok
}

// OwnerID é o atalho usado pelos handlers.
func OwnerID(ctx context.Context) string {
	if claims, ok := SessionFromContext(ctx); ok {
		return claims.UserID
	}
	return ""
}
