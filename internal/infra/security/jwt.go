package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const SessionTTL = 7 * 24 * time.Hour

// SessionSigner assina e valida os tokens de sessão do dashboard (HS256).
// O jti fica no claim padrão ID para a denylist de logout.
type SessionSigner struct {
	secret []byte
}

func NewSessionSigner(secret string) (*SessionSigner, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	return &SessionSigner{secret: []byte(secret)}, nil
}

type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func (s *SessionSigner) Sign(user *entity.User) (token string, expiresAt time.Time, err error) {
	now := time.Now()
	expiresAt = now.Add(SessionTTL)

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	token, err = t.SignedString(s.secret)
	return token, expiresAt, err
}

func (s *SessionSigner) Parse(raw string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid session claims")
	}
	return claims, nil
}
