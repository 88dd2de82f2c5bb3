package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stemsi/absensi-backend/internal/config"
	"github.com/stemsi/absensi-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      testSecret,
		SessionTimeout: 24 * time.Hour,
		BcryptCost:     bcrypt.MinCost,
	}
}

func mustUser(t *testing.T, id int, name, email, password string, role model.Role) *model.User {
	t.Helper()
	hash, err := HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{ID: id, Name: name, Email: email, PasswordHash: hash, Role: role}
}

func newTestAuth(t *testing.T) (*AuthService, *fakeUsers, *fakeRevocations) {
	t.Helper()
	users := newFakeUsers(
		mustUser(t, 1, "Admin", "admin@school.test", "secret123", model.RoleAdmin),
		mustUser(t, 2, "Bu Guru", "guru@school.test", "secret123", model.RoleTeacher),
		mustUser(t, 3, "Murid", "murid@school.test", "secret123", model.RoleStudent),
	)
	revocations := newFakeRevocations()
	return NewAuthService(testConfig(), users, revocations, zerolog.Nop()), users, revocations
}

func TestLoginSuccess(t *testing.T) {
	svc, _, _ := newTestAuth(t)
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	res, err := svc.Login(context.Background(), "  Guru@School.test ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, &model.Profile{ID: 2, Name: "Bu Guru", Email: "guru@school.test", Role: model.RoleTeacher}, res.User)
	assert.True(t, now.Add(24*time.Hour).Equal(res.ExpiresAt))

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, 2, claims.UserID)
	assert.Equal(t, model.RoleTeacher, claims.Role)
	assert.Equal(t, "guru@school.test", claims.Email)
	assert.Equal(t, "Bu Guru", claims.Name)
	assert.NotEmpty(t, claims.ID)
}

func TestLoginFailures(t *testing.T) {
	svc, _, _ := newTestAuth(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"empty email", "", "secret123", ErrFieldsRequired},
		{"blank email", "   ", "secret123", ErrFieldsRequired},
		{"empty password", "admin@school.test", "", ErrFieldsRequired},
		{"malformed email", "not-an-email", "secret123", ErrInvalidEmailFormat},
		{"wrong password", "admin@school.test", "wrong", ErrInvalidCredentials},
		{"unknown email", "nobody@school.test", "secret123", ErrInvalidCredentials},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.Login(ctx, tc.email, tc.password)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoginStoreFailure(t *testing.T) {
	svc, users, _ := newTestAuth(t)
	users.err = errors.New("connection refused")

	_, err := svc.Login(context.Background(), "admin@school.test", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejects(t *testing.T) {
	svc, users, _ := newTestAuth(t)
	u, _ := users.GetByID(context.Background(), 1)

	issued := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	token, _, err := svc.IssueToken(u)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		svc.now = func() time.Time { return issued.Add(25 * time.Hour) }
		defer func() { svc.now = func() time.Time { return issued } }()
		_, err := svc.ValidateToken(token)
		assert.Error(t, err)

		user, err := svc.CurrentUser(context.Background(), token)
		assert.NoError(t, err)
		assert.Nil(t, user, "expired token must not resolve")
	})

	t.Run("tampered", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		_, err := svc.ValidateToken(parts[0] + "." + parts[1] + "." + string(sig))
		assert.Error(t, err)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewAuthService(&config.Config{JWTSecret: strings.Repeat("x", 32), SessionTimeout: time.Hour}, users, newFakeRevocations(), zerolog.Nop())
		other.now = svc.now
		_, err := other.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("none algorithm", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{ID: "x", ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour))},
			UserID:           1,
			Role:             model.RoleAdmin,
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.ValidateToken(unsigned)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}

func TestCurrentUser(t *testing.T) {
	svc, users, _ := newTestAuth(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "murid@school.test", "secret123")
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, res.Token)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 3, user.ID)

	user, err = svc.CurrentUser(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, user)

	users.delete(3)
	user, err = svc.CurrentUser(ctx, res.Token)
	require.NoError(t, err)
	assert.Nil(t, user, "deleted user must not resolve")
}

func TestRequireAuth(t *testing.T) {
	svc, users, _ := newTestAuth(t)
	ctx := context.Background()

	teacher, err := svc.Login(ctx, "guru@school.test", "secret123")
	require.NoError(t, err)

	_, err = svc.RequireAuth(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	user, err := svc.RequireAuth(ctx, teacher.Token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleTeacher, user.Role)

	user, err = svc.RequireAuth(ctx, teacher.Token, model.RoleTeacher)
	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)

	_, err = svc.RequireAuth(ctx, teacher.Token, model.RoleAdmin)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.RequireAuth(ctx, teacher.Token, model.RoleAdmin, model.RoleStudent)
	assert.ErrorIs(t, err, ErrForbidden)

	users.err = errors.New("db down")
	_, err = svc.RequireAuth(ctx, teacher.Token, model.RoleTeacher)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, revocations := newTestAuth(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "admin@school.test", "secret123")
	require.NoError(t, err)
	require.NotNil(t, svc.Session(ctx, res.Token))

	require.NoError(t, svc.Logout(ctx, res.Token))
	assert.Nil(t, svc.Session(ctx, res.Token), "revoked token must not resolve")

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	ttl, ok := revocations.revoked[claims.ID]
	require.True(t, ok)
	assert.InDelta(t, (24 * time.Hour).Seconds(), ttl.Seconds(), 5)

	// Idempotent.
	assert.NoError(t, svc.Logout(ctx, res.Token))
	assert.NoError(t, svc.Logout(ctx, ""))
	assert.NoError(t, svc.Logout(ctx, "garbage"))
}

func TestLogoutStoreFailure(t *testing.T) {
	svc, _, revocations := newTestAuth(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "admin@school.test", "secret123")
	require.NoError(t, err)

	revocations.err = errors.New("redis down")
	assert.Error(t, svc.Logout(ctx, res.Token))
}

func TestSessionRevocationLookupFailure(t *testing.T) {
	svc, _, revocations := newTestAuth(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, "admin@school.test", "secret123")
	require.NoError(t, err)

	revocations.err = errors.New("redis down")
	assert.Nil(t, svc.Session(ctx, res.Token))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia", hash)
	assert.NoError(t, CheckPassword(hash, "rahasia"))
	assert.ErrorIs(t, CheckPassword(hash, "salah"), ErrInvalidCredentials)
	assert.ErrorIs(t, CheckPassword("plaintext", "plaintext"), ErrInvalidCredentials)
}
