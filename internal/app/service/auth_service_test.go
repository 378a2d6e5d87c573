package service

import (
	"testing"
	"time"

	"github.com/jlin/peacepet-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticVerifier_Plaintext(t *testing.T) {
	verifier := NewStaticVerifier("adminJ", "141225", "")

	assert.True(t, verifier.Verify("adminJ", "141225"))
	assert.False(t, verifier.Verify("adminJ", "wrong"))
	assert.False(t, verifier.Verify("someone", "141225"))
}

func TestStaticVerifier_BcryptHashTakesPrecedence(t *testing.T) {
	hash, err := util.HashPassword("s3cret")
	require.NoError(t, err)

	verifier := NewStaticVerifier("adminJ", "ignored-plaintext", hash)

	assert.True(t, verifier.Verify("adminJ", "s3cret"))
	assert.False(t, verifier.Verify("adminJ", "ignored-plaintext"))
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	svc := NewAuthService(NewStaticVerifier("adminJ", "141225", ""), "test-secret", time.Hour)

	token, err := svc.Login("adminJ", "141225")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateSession(token)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	svc := NewAuthService(NewStaticVerifier("adminJ", "141225", ""), "test-secret", time.Hour)

	_, err := svc.Login("adminJ", "guess")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ValidateRejectsGarbage(t *testing.T) {
	svc := NewAuthService(NewStaticVerifier("adminJ", "141225", ""), "test-secret", time.Hour)

	_, err := svc.ValidateSession("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestAuthService_ValidateRejectsForeignSignature(t *testing.T) {
	issuer := NewAuthService(NewStaticVerifier("adminJ", "141225", ""), "other-secret", time.Hour)
	svc := NewAuthService(NewStaticVerifier("adminJ", "141225", ""), "test-secret", time.Hour)

	token, err := issuer.Login("adminJ", "141225")
	require.NoError(t, err)

	_, err = svc.ValidateSession(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestAuthService_ValidateRejectsExpired(t *testing.T) {
	svc := NewAuthService(NewStaticVerifier("adminJ", "141225", ""), "test-secret", -time.Minute)

	token, err := svc.Login("adminJ", "141225")
	require.NoError(t, err)

	_, err = svc.ValidateSession(token)
	assert.ErrorIs(t, err, ErrExpiredSession)
}
