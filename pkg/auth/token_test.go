package auth_test

import (
	"strings"
	"testing"
	"time"

	"go-hiring-portal/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(42, "hr@example.com", "HRMANAGER")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "hr@example.com", claims.Email)
	assert.Equal(t, "HRMANAGER", claims.Role)
}

func TestExpiredToken(t *testing.T) {
	svc := auth.NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue(1, "user@example.com", "USER")
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestWrongSecret(t *testing.T) {
	issuer := auth.NewTokenService("secret-a", time.Hour)
	verifier := auth.NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(1, "user@example.com", "USER")
	assert.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTamperedToken(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(1, "user@example.com", "USER")
	assert.NoError(t, err)

	// Flip a character inside the payload segment
	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	parts[1] = string(payload)

	_, err = svc.Validate(strings.Join(parts, "."))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestGarbageToken(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
