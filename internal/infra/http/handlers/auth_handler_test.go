package handlers

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/infra/security"
)

// TestLogoutLogsFailedRevocation - Redis fora do ar não pode silenciar a
// revogação perdida; o logout ainda limpa o cookie, mas a falha fica no log.
func TestLogoutLogsFailedRevocation(t *testing.T) {
	signer, err := security.NewSessionSigner("segredo-de-teste")
	assert.NoError(t, err)
	token, _, err := signer.Sign(&entity.User{ID: "user-1", Email: "maria@acme.com"})
	assert.NoError(t, err)

	// Porta fechada: todo comando Redis falha na hora.
	deadRedis := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	denylist := security.NewRedisDenylist(deadRedis)

	handler := NewAuthHandler(nil, nil, nil, signer, denylist)

	var logs bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&logs)
	defer log.SetOutput(prev)

	req := httptest.NewRequest("POST", "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), "Falha ao revogar sessão")

	// O cookie é limpo mesmo assim; sem ele o browser não re-apresenta o token.
	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

// TestLogoutWithoutCookieStillSucceeds
func TestLogoutWithoutCookieStillSucceeds(t *testing.T) {
	signer, _ := security.NewSessionSigner("segredo-de-teste")
	handler := NewAuthHandler(nil, nil, nil, signer, nil)

	req := httptest.NewRequest("POST", "/auth/logout", nil)
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
