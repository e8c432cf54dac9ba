package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-team-tasks/internal/models"
	"github.com/adanyl0v/go-team-tasks/internal/repository"
)

type userServiceImpl struct {
	logger     zerolog.Logger
	users      repository.UserRepository
	hashParams *argon2id.Params
	now        func() time.Time
}

func NewUserService(
	logger zerolog.Logger,
	users repository.UserRepository,
) UserService {
	return &userServiceImpl{
		logger:     logger,
		users:      users,
		hashParams: argon2id.DefaultParams,
		now:        time.Now,
	}
}

func (s *userServiceImpl) CreateMember(ctx context.Context, params CreateMemberParams) (*models.User, error) {
	return s.createUser(ctx, params, models.RoleMember)
}

func (s *userServiceImpl) ListMembers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.ListUsersByRole(ctx, models.RoleMember)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select members")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(users)).
		Msg("selected members")
	return users, nil
}

func (s *userServiceImpl) EnsureAdmin(ctx context.Context, params CreateMemberParams) (*models.User, bool, error) {
	phoneNumber := strings.TrimSpace(params.PhoneNumber)

	user, err := s.users.GetUserByPhoneNumber(ctx, phoneNumber)
	if err == nil {
		s.logger.Debug().
			Str("user_id", user.ID).
			Str("role", user.Role).
			Msg("admin account already exists")
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error().
			Err(err).
			Msg("failed to select admin by phone number")
		return nil, false, err
	}

	user, err = s.createUser(ctx, params, models.RoleAdmin)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *userServiceImpl) createUser(ctx context.Context, params CreateMemberParams, role string) (*models.User, error) {
	passwordHash, err := argon2id.CreateHash(params.Password, s.hashParams)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return nil, err
	}

	now := s.now()
	user := &models.User{
		PhoneNumber: strings.TrimSpace(params.PhoneNumber),
		Password:    passwordHash,
		Name:        strings.TrimSpace(params.Name),
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			s.logger.Error().
				Str("phone_number", user.PhoneNumber).
				Msg("user with this phone number already exists")
			return nil, ErrUserAlreadyExists
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("role", user.Role).
		Msg("created user")
	return user, nil
}
