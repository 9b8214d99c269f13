package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/civic-voice/internal/config"
	apperrors "github.com/spec-kit/civic-voice/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:    "test-secret",
			TokenTTLDays: 30,
			BcryptCost:   bcrypt.MinCost,
		},
	}
}

func registerInput() RegisterInput {
	return RegisterInput{
		Email:        "a@x.com",
		AadharCardNo: "123",
		PhoneNo:      "555",
		Password:     "pw",
		DisplayName:  "Al",
	}
}

func TestAuthService_Register(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})

	user, token, _, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Al", user.DisplayName)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.PublicID)
	assert.NotEqual(t, "pw", user.PasswordHash)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.PublicID, claims.PublicID)
}

func TestAuthService_RegisterNormalizesEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})

	input := registerInput()
	input.Email = "  A@X.Com "
	user, _, _, err := svc.Register(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestAuthService_RegisterDefaultsDisplayName(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})

	input := registerInput()
	input.DisplayName = "  "
	user, _, _, err := svc.Register(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "User", user.DisplayName)
}

func TestAuthService_RegisterConflictOnEachIdentityField(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})

	_, _, _, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	cases := map[string]RegisterInput{
		"email":  {Email: "a@x.com", AadharCardNo: "999", PhoneNo: "777", Password: "pw"},
		"aadhar": {Email: "b@x.com", AadharCardNo: "123", PhoneNo: "777", Password: "pw"},
		"phone":  {Email: "b@x.com", AadharCardNo: "999", PhoneNo: "555", Password: "pw"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, _, err := svc.Register(context.Background(), input)
			require.Error(t, err)
			domainErr := apperrors.ToDomainError(err)
			assert.Equal(t, "DUPLICATE_IDENTITY", domainErr.Code)
			assert.Equal(t, 400, domainErr.HTTPStatus)
		})
	}
}

func TestAuthService_RegisterInsertRaceMapsToConflict(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})

	_, _, _, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	// Pre-check misses but the unique index still rejects the insert.
	users.missPrecheck = true
	_, _, _, err = svc.Register(context.Background(), registerInput())
	require.Error(t, err)
	assert.Equal(t, "DUPLICATE_IDENTITY", apperrors.ToDomainError(err).Code)
}

func TestAuthService_LoginCaseInsensitiveEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})

	registered, _, _, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	user, token, _, err := svc.Login(context.Background(), "A@X.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})

	_, _, _, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(context.Background(), "nobody@x.com", "pw")
	require.Error(t, unknownErr)
	_, _, _, wrongErr := svc.Login(context.Background(), "a@x.com", "wrong")
	require.Error(t, wrongErr)

	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(unknownErr).Code)
	assert.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(wrongErr).Code)
}

func TestAuthService_LoginRejectsInactiveUser(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), AuthDependencies{UserRepo: users})

	user, _, _, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	users.deactivate(user.ID)

	_, _, _, err = svc.Login(context.Background(), "a@x.com", "pw")
	require.Error(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(err).Code)
}
