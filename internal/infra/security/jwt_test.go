package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

func TestSessionSignerRoundTrip(t *testing.T) {
	signer, err := NewSessionSigner("segredo-de-teste")
	assert.NoError(t, err)

	user := &entity.User{ID: "user-1", Email: "maria@acme.com"}

	token, expiresAt, err := signer.Sign(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(SessionTTL), expiresAt, time.Minute)

	claims, err := signer.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "maria@acme.com", claims.Email)
	// jti presente: é ele que a denylist de logout revoga.
	assert.NotEmpty(t, claims.ID)
}

func TestSessionSignerRejectsTamperedToken(t *testing.T) {
	signer, _ := NewSessionSigner("segredo-de-teste")

	token, _, err := signer.Sign(&entity.User{ID: "user-1", Email: "maria@acme.com"})
	assert.NoError(t, err)

	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = signer.Parse(tampered)
	assert.Error(t, err)
}

func TestSessionSignerRejectsOtherSecret(t *testing.T) {
	signerA, _ := NewSessionSigner("segredo-a")
	signerB, _ := NewSessionSigner("segredo-b")

	token, _, err := signerA.Sign(&entity.User{ID: "user-1", Email: "maria@acme.com"})
	assert.NoError(t, err)

	_, err = signerB.Parse(token)
	assert.Error(t, err)
}

func TestNewSessionSignerRequiresSecret(t *testing.T) {
	_, err := NewSessionSigner("")
	assert.Error(t, err)
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("supersegura")
	assert.NoError(t, err)
	assert.NotEqual(t, "supersegura", hash)

	assert.NoError(t, hasher.Compare(hash, "supersegura"))
	assert.Error(t, hasher.Compare(hash, "errada"))
}
