package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stemsi/absensi-backend/internal/config"
	"github.com/stemsi/absensi-backend/internal/model"
	"github.com/stemsi/absensi-backend/internal/repository"
	"github.com/stemsi/absensi-backend/internal/validator"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors.
var (
	ErrFieldsRequired     = errors.New("email and password are required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
)

// UserStore reads accounts from the credential store.
type UserStore interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// RevocationStore remembers logged-out tokens until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Claims are the session token contents.
type Claims struct {
	jwt.RegisteredClaims
	UserID int        `json:"userId"`
	Role   model.Role `json:"role"`
	Email  string     `json:"email"`
	Name   string     `json:"name"`
}

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *model.Profile
}

// AuthService handles credentials, session tokens and role checks.
type AuthService struct {
	cfg      *config.Config
	users    UserStore
	sessions RevocationStore
	log      zerolog.Logger
	now      func() time.Time

	// dummyHash is compared against when the email is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, users UserStore, sessions RevocationStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		cfg:      cfg,
		users:    users,
		sessions: sessions,
		log:      log.With().Str("component", "auth_service").Logger(),
		now:      time.Now,
	}
}

// SessionTimeout is the lifetime of issued tokens.
func (s *AuthService) SessionTimeout() time.Duration {
	return s.cfg.SessionTimeout
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrFieldsRequired
	}
	if !validator.IsEmail(email) {
		return nil, ErrInvalidEmailFormat
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.burnComparison(password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user.Profile(),
	}, nil
}

// IssueToken signs a session token for the user.
func (s *AuthService) IssueToken(user *model.User) (string, *Claims, error) {
	now := s.now()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionTimeout)),
		},
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		Name:   user.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// ValidateToken checks signature and expiry and returns the claims.
// It does not consult the revocation list; use Session for that.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.UserID <= 0 || claims.ID == "" || !claims.Role.Valid() {
		return nil, errors.New("incomplete token claims")
	}
	return claims, nil
}

// Session returns the claims of a valid, non-revoked token, or nil.
// Failures are logged and treated as no session.
func (s *AuthService) Session(ctx context.Context, tokenStr string) *Claims {
	if tokenStr == "" {
		return nil
	}

	claims, err := s.ValidateToken(tokenStr)
	if err != nil {
		s.log.Debug().Err(err).Msg("session token rejected")
		return nil
	}

	revoked, err := s.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.log.Error().Err(err).Str("jti", claims.ID).Msg("revocation lookup failed")
		return nil
	}
	if revoked {
		return nil
	}
	return claims
}

// CurrentUser re-reads the session's user from the credential store.
// It returns nil, nil when there is no session or the user is gone.
func (s *AuthService) CurrentUser(ctx context.Context, tokenStr string) (*model.Profile, error) {
	claims := s.Session(ctx, tokenStr)
	if claims == nil {
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load current user: %w", err)
	}
	return user.Profile(), nil
}

// RequireAuth resolves the current user and checks its role against
// allowed. An empty allowed list admits every role.
func (s *AuthService) RequireAuth(ctx context.Context, tokenStr string, allowed ...model.Role) (*model.Profile, error) {
	user, err := s.CurrentUser(ctx, tokenStr)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if len(allowed) > 0 && !user.Role.In(allowed...) {
		return nil, ErrForbidden
	}
	return user, nil
}

// Logout revokes the token until its natural expiry. Tokens that no
// longer verify need no revocation, so Logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	if tokenStr == "" {
		return nil
	}
	claims, err := s.ValidateToken(tokenStr)
	if err != nil {
		return nil
	}

	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if err := s.sessions.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *AuthService) burnComparison(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("absensi-dummy-password"), s.cfg.BcryptCost)
	})
	_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
}

// HashPassword hashes a password with the given bcrypt cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
