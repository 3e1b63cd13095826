package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-data-market/internal/config"
	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/internal/store"
	"github.com/MKhiriev/go-data-market/internal/utils"
	"github.com/MKhiriev/go-data-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(users *mockUserRepository) AuthService {
	return NewAuthService(users, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "market-test",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	var persisted models.User
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 2
			return user, nil
		},
	}

	svc := newTestAuthService(users)

	registered, err := svc.RegisterUser(context.Background(), models.User{
		Login:    "alice",
		Password: "s3cret",
		Name:     "Alice",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), registered.UserID)
	assert.Empty(t, persisted.Password, "plain-text password must not reach the repository")
	assert.NotEmpty(t, persisted.PasswordHash)
	assert.NotEqual(t, "s3cret", persisted.PasswordHash)
	assert.True(t, utils.CheckPassword(persisted.PasswordHash, "s3cret"))
	assert.Equal(t, models.RoleConsumer, persisted.Role, "default role is consumer")
}

func TestRegisterUser_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_MalformedWallet(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.RegisterUser(context.Background(), models.User{
		Login:         "alice",
		Password:      "s3cret",
		WalletAddress: "definitely-not-hex",
	})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestRegisterUser_LoginTaken(t *testing.T) {
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}

	svc := newTestAuthService(users)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "s3cret"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	users := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, login string) (models.User, error) {
			assert.Equal(t, "alice", login)
			return models.User{UserID: 2, Login: "alice", PasswordHash: hash}, nil
		},
	}

	svc := newTestAuthService(users)

	found, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)

	users := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{UserID: 2, Login: "alice", PasswordHash: hash}, nil
		},
	}

	svc := newTestAuthService(users)

	_, err = svc.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownUser(t *testing.T) {
	users := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := newTestAuthService(users)

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "s3cret"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	other := NewAuthService(&mockUserRepository{}, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "someone-else",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := other.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepository{})

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
