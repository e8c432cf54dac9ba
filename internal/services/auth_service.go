package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-team-tasks/internal/models"
	"github.com/adanyl0v/go-team-tasks/internal/repository"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	Name        string `json:"name"`
}

type authServiceImpl struct {
	logger        zerolog.Logger
	users         repository.UserRepository
	jwtIssuer     string
	jwtSigningKey []byte
	now           func() time.Time
}

func NewAuthService(
	logger zerolog.Logger,
	users repository.UserRepository,
	jwtIssuer string,
	jwtSigningKey []byte,
) AuthService {
	return &authServiceImpl{
		logger:        logger,
		users:         users,
		jwtIssuer:     jwtIssuer,
		jwtSigningKey: jwtSigningKey,
		now:           time.Now,
	}
}

func (s *authServiceImpl) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	phoneNumber := strings.TrimSpace(params.PhoneNumber)

	user, err := s.users.GetUserByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("phone_number", phoneNumber).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Str("phone_number", phoneNumber).
			Msg("failed to select user by phone number")
		return nil, err
	}
	s.logger.Debug().
		Str("user_id", user.ID).
		Msg("selected user")

	match, err := argon2id.ComparePasswordAndHash(params.Password, user.Password)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to compare password")
		return nil, err
	} else if !match {
		s.logger.Error().
			Str("user_id", user.ID).
			Msg("passwords do not match")
		return nil, ErrUserPasswordMismatch
	}

	authUser := user.AuthUser()
	token, expiresAt, err := s.IssueToken(authUser)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to issue token")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("role", user.Role).
		Msg("logged in")
	return &LoginResult{
		User:           authUser,
		Token:          token,
		TokenExpiresAt: expiresAt,
	}, nil
}

func (s *authServiceImpl) IssueToken(user models.AuthUser) (string, time.Time, error) {
	tokenUUID, err := uuid.NewRandom()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate id: %w", err)
	}

	now := s.now()
	expiresAt := now.Add(TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenUUID.String(),
			Issuer:    s.jwtIssuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Name:        user.Name,
	})

	signed, err := token.SignedString(s.jwtSigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *authServiceImpl) VerifyToken(token string) (*models.AuthUser, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(token *jwt.Token) (any, error) {
			return s.jwtSigningKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.jwtIssuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Msg("failed to parse token")
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" || !models.IsValidRole(claims.Role) {
		s.logger.Debug().
			Str("subject", claims.Subject).
			Str("role", claims.Role).
			Msg("token claims are incomplete")
		return nil, ErrInvalidToken
	}

	return &models.AuthUser{
		ID:          claims.Subject,
		PhoneNumber: claims.PhoneNumber,
		Role:        claims.Role,
		Name:        claims.Name,
	}, nil
}
