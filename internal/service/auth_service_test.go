package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourbook/internal/models"
	"tourbook/internal/repository"
	"tourbook/internal/security"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	hasher := security.NewPasswordHasher(fastArgon)
	clock := fixedClock(2026, time.October, 14)

	admin, err := NewAdminAccount(hasher, "Admin@Mikola.com", "admin123", clock)
	require.NoError(t, err)

	users := repository.NewUserRepository(admin)
	return NewAuthService(users, hasher, clock, zerolog.Nop()), users
}

func TestLoginSeededAdmin(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Login(context.Background(), "admin@mikola.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.True(t, user.IsAdmin())

	_, err = svc.Login(context.Background(), "admin@mikola.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister(t *testing.T) {
	svc, users := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Email:           " Traveller@Example.com ",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FirstName:       " Ola ",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)
	assert.Equal(t, "traveller@example.com", user.Email)
	assert.Equal(t, "Ola", user.FirstName)
	assert.Equal(t, models.UserRoleClient, user.Role)
	assert.Equal(t, 2, users.Count())

	loggedIn, err := svc.Login(ctx, "TRAVELLER@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterRejections(t *testing.T) {
	cases := []struct {
		name  string
		input RegisterInput
		want  error
	}{
		{"mismatch", RegisterInput{Email: "a@example.com", Password: "secret1", ConfirmPassword: "secret2"}, ErrPasswordMismatch},
		{"short", RegisterInput{Email: "a@example.com", Password: "abc", ConfirmPassword: "abc"}, ErrPasswordTooShort},
		{"bad email", RegisterInput{Email: "not-an-email", Password: "secret1", ConfirmPassword: "secret1"}, ErrInvalidEmail},
		{"taken", RegisterInput{Email: "admin@mikola.com", Password: "secret1", ConfirmPassword: "secret1"}, ErrEmailTaken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, users := newAuthService(t)
			_, err := svc.Register(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 1, users.Count())
		})
	}
}
