package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"tourbook/internal/models"
	"tourbook/internal/repository"
	"tourbook/internal/security"
)

const MinPasswordLength = 6

type AuthService struct {
	users    *repository.UserRepository
	hasher   *security.PasswordHasher
	validate *validator.Validate
	clock    Clock
	log      zerolog.Logger
}

func NewAuthService(
	users *repository.UserRepository,
	hasher *security.PasswordHasher,
	clock Clock,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		validate: validator.New(),
		clock:    clock,
		log:      log,
	}
}

type RegisterInput struct {
	Email           string `validate:"required,email,max=254"`
	Password        string
	ConfirmPassword string
	FirstName       string `validate:"max=100"`
	LastName        string `validate:"max=100"`
	Phone           string `validate:"max=40"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	input.Email = normalizeEmail(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Phone = strings.TrimSpace(input.Phone)

	if input.Password != input.ConfirmPassword {
		return models.User{}, ErrPasswordMismatch
	}
	if utf8.RuneCountInString(input.Password) < MinPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}
	if err := s.validate.Struct(input); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidEmail, err)
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return models.User{}, err
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return models.User{}, err
	}

	now := s.clock.now()
	user := models.User{
		ID:           s.users.NextID(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         models.UserRoleClient,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return models.User{}, err
	}

	s.log.Info().Int("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.log.Error().Err(err).Int("user_id", user.ID).Msg("stored password hash unreadable")
		return models.User{}, ErrInvalidCredentials
	}
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) GetUser(ctx context.Context, id int) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

// NewAdminAccount builds the seeded administrator. The repository assigns
// its id.
func NewAdminAccount(hasher *security.PasswordHasher, email, password string, clock Clock) (models.User, error) {
	hash, err := hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash admin password: %w", err)
	}
	now := clock.now()
	return models.User{
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		FirstName:    "Admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
