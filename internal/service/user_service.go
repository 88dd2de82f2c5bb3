package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stemsi/absensi-backend/internal/model"
	"github.com/stemsi/absensi-backend/internal/validator"
)

// UserWriter persists accounts.
type UserWriter interface {
	Create(ctx context.Context, u *model.User) error
	Upsert(ctx context.Context, u *model.User) error
}

// MinPasswordLength applies to accounts provisioned by the CLI tools.
const MinPasswordLength = 6

// UserService provisions accounts for the CLI tools and the seeder.
type UserService struct {
	repo       UserWriter
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(repo UserWriter, bcryptCost int) *UserService {
	return &UserService{repo: repo, bcryptCost: bcryptCost}
}

// Create validates and stores a new user with a hashed password.
func (s *UserService) Create(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	u, err := s.prepare(name, email, password, role)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Ensure creates the user or resets name, password and role of the
// existing account with the same email.
func (s *UserService) Ensure(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	u, err := s.prepare(name, email, password, role)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, u); err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return u, nil
}

func (s *UserService) prepare(name, email, password string, role model.Role) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	switch {
	case name == "":
		return nil, errors.New("name is required")
	case !validator.IsEmail(email):
		return nil, ErrInvalidEmailFormat
	case len(password) < MinPasswordLength:
		return nil, fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	case !role.Valid():
		return nil, fmt.Errorf("unknown role %q", role)
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &model.User{Name: name, Email: email, PasswordHash: hash, Role: role}, nil
}
