package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-team-tasks/internal/models"
	"github.com/adanyl0v/go-team-tasks/internal/repository/memory"
)

var testAuthUser = models.AuthUser{
	ID:          "0195f0c4-0000-7000-8000-000000000001",
	PhoneNumber: "0901234567",
	Role:        models.RoleMember,
	Name:        "An",
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	s := newTestAuthService(memory.New(), testNow)

	token, expiresAt, err := s.IssueToken(testAuthUser)
	require.NoError(t, err)
	require.Equal(t, testNow.Add(TokenTTL), expiresAt)

	got, err := s.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, testAuthUser, *got)
}

func TestAuthService_VerifyRejectsTamperedSignature(t *testing.T) {
	s := newTestAuthService(memory.New(), testNow)

	token, _, err := s.IssueToken(testAuthUser)
	require.NoError(t, err)

	sigStart := strings.LastIndex(token, ".") + 1
	pos := sigStart + 5
	replacement := byte('A')
	if token[pos] == 'A' {
		replacement = 'B'
	}
	tampered := token[:pos] + string(replacement) + token[pos+1:]

	_, err = s.VerifyToken(tampered)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_VerifyRejectsExpiredToken(t *testing.T) {
	store := memory.New()
	issuer := newTestAuthService(store, testNow.Add(-TokenTTL-time.Minute))
	verifier := newTestAuthService(store, testNow)

	token, _, err := issuer.IssueToken(testAuthUser)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_VerifyAcceptsJustBeforeExpiry(t *testing.T) {
	store := memory.New()
	issuer := newTestAuthService(store, testNow.Add(-TokenTTL+time.Minute))
	verifier := newTestAuthService(store, testNow)

	token, _, err := issuer.IssueToken(testAuthUser)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	require.NoError(t, err)
}

func TestAuthService_VerifyRejectsForeignTokens(t *testing.T) {
	s := newTestAuthService(memory.New(), testNow)

	sign := func(method jwt.SigningMethod, key any, claims tokenClaims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}
	validClaims := func() tokenClaims {
		return tokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    s.jwtIssuer,
				Subject:   testAuthUser.ID,
				IssuedAt:  jwt.NewNumericDate(testNow),
				ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
			},
			PhoneNumber: testAuthUser.PhoneNumber,
			Role:        models.RoleMember,
			Name:        testAuthUser.Name,
		}
	}

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "someone-else"
	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil
	unknownRole := validClaims()
	unknownRole.Role = "owner"
	noSubject := validClaims()
	noSubject.Subject = ""

	tokens := map[string]string{
		"malformed":    "not-a-token",
		"empty":        "",
		"wrong key":    sign(jwt.SigningMethodHS256, []byte("other-key"), validClaims()),
		"wrong alg":    sign(jwt.SigningMethodHS512, s.jwtSigningKey, validClaims()),
		"none alg":     sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims()),
		"wrong issuer": sign(jwt.SigningMethodHS256, s.jwtSigningKey, wrongIssuer),
		"no expiry":    sign(jwt.SigningMethodHS256, s.jwtSigningKey, noExpiry),
		"unknown role": sign(jwt.SigningMethodHS256, s.jwtSigningKey, unknownRole),
		"no subject":   sign(jwt.SigningMethodHS256, s.jwtSigningKey, noSubject),
	}
	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			_, err := s.VerifyToken(token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	store := memory.New()
	user := seedUser(t, store, "An", "0901234567", "secret-password", models.RoleMember)
	s := newTestAuthService(store, testNow)

	result, err := s.Login(context.Background(), LoginParams{
		PhoneNumber: "0901234567",
		Password:    "secret-password",
	})
	require.NoError(t, err)
	require.Equal(t, user.AuthUser(), result.User)
	require.Equal(t, testNow.Add(TokenTTL), result.TokenExpiresAt)

	claims, err := s.VerifyToken(result.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.ID)
	require.Equal(t, models.RoleMember, claims.Role)
}

func TestAuthService_LoginFailures(t *testing.T) {
	store := memory.New()
	seedUser(t, store, "An", "0901234567", "secret-password", models.RoleMember)
	s := newTestAuthService(store, testNow)

	_, err := s.Login(context.Background(), LoginParams{PhoneNumber: "0901234567", Password: "wrong"})
	require.ErrorIs(t, err, ErrUserPasswordMismatch)

	_, err = s.Login(context.Background(), LoginParams{PhoneNumber: "0999999999", Password: "secret-password"})
	require.ErrorIs(t, err, ErrUserNotFound)
}
