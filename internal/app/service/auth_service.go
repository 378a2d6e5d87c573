package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jlin/peacepet-backend/pkg/logger"
	"github.com/jlin/peacepet-backend/pkg/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid session token")
	ErrExpiredSession     = errors.New("session token expired")
)

// CredentialVerifier decides whether a username/password pair belongs to an
// administrator. The routing layer never sees the policy behind it.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticVerifier is the single-account verifier. When passwordHash is set
// it compares against the bcrypt hash, otherwise against the plaintext
// password from configuration.
type StaticVerifier struct {
	username     string
	password     string
	passwordHash string
}

func NewStaticVerifier(username, password, passwordHash string) *StaticVerifier {
	return &StaticVerifier{
		username:     username,
		password:     password,
		passwordHash: passwordHash,
	}
}

func (v *StaticVerifier) Verify(username, password string) bool {
	if username != v.username {
		return false
	}
	if v.passwordHash != "" {
		return util.VerifyPassword(v.passwordHash, password)
	}
	return password == v.password
}

// SessionClaims is the payload of the signed admin session cookie.
type SessionClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(username, password string) (string, error)
	ValidateSession(token string) (*SessionClaims, error)
}

type authService struct {
	verifier CredentialVerifier
	secret   string
	expiry   time.Duration
}

func NewAuthService(verifier CredentialVerifier, secret string, expiry time.Duration) AuthService {
	return &authService{
		verifier: verifier,
		secret:   secret,
		expiry:   expiry,
	}
}

// Login verifies the credentials and returns a signed session token.
func (s *authService) Login(username, password string) (string, error) {
	if !s.verifier.Verify(username, password) {
		logger.Warn("Admin login rejected", map[string]interface{}{
			"username": username,
		})
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := SessionClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		logger.Error("Failed to sign session token", err)
		return "", err
	}

	logger.Info("Admin logged in", map[string]interface{}{
		"username": username,
	})
	return signed, nil
}

// ValidateSession parses and verifies a session token.
func (s *authService) ValidateSession(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredSession
		}
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || !claims.Admin {
		return nil, ErrInvalidSession
	}
	return claims, nil
}
