package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clinic/clinic/internal/platform/apperr"
	"github.com/clinic/clinic/internal/platform/auth"
)

// TokenIssuer signs credentials for a principal.
type TokenIssuer interface {
	Issue(p auth.Principal) (string, error)
}

type Service struct {
	users      UserRepository
	tokens     TokenIssuer
	bcryptCost int

	// compared against on unknown emails so both login failures cost the same
	dummyHash string
}

func NewService(users UserRepository, tokens TokenIssuer, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	dummy, err := hashPassword("not-a-real-password", bcryptCost)
	if err != nil {
		// out-of-range cost; bcrypt would fail every signup too
		bcryptCost = DefaultBcryptCost
		dummy, _ = hashPassword("not-a-real-password", bcryptCost)
	}
	return &Service{users: users, tokens: tokens, bcryptCost: bcryptCost, dummyHash: dummy}
}

// Register is the self-service signup. Only patient accounts can be created
// this way.
func (s *Service) Register(ctx context.Context, in NewUser) (*User, error) {
	role, err := validateNewUser(&in)
	if err != nil {
		return nil, err
	}
	if role != auth.RolePatient {
		return nil, apperr.Forbidden("only patient accounts can self-register")
	}
	return s.create(ctx, in, role)
}

// CreateUser creates an account of any role. Callers gate it to admins.
func (s *Service) CreateUser(ctx context.Context, in NewUser) (*User, error) {
	role, err := validateNewUser(&in)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, in, role)
}

func (s *Service) create(ctx context.Context, in NewUser, role auth.Role) (*User, error) {
	_, err := s.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, apperr.Conflict("email already exists")
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, err
	}

	hash, err := hashPassword(in.Password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, errPasswordTooLong) {
			return nil, apperr.Validation("%s", err.Error())
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Name:          in.Name,
		Email:         in.Email,
		Password:      hash,
		Role:          role,
		ContactNumber: in.ContactNumber,
		Age:           in.Age,
		Gender:        in.Gender,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.Conflict("email already exists")
		}
		return nil, err
	}
	return u, nil
}

func validateNewUser(in *NewUser) (auth.Role, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" || strings.TrimSpace(in.Role) == "" {
		return "", apperr.Validation("name, email, password and role are required")
	}
	if !strings.Contains(in.Email, "@") {
		return "", apperr.Validation("email is invalid")
	}
	role, ok := auth.ParseRole(in.Role)
	if !ok {
		return "", apperr.Validation("role must be one of admin, doctor, patient")
	}
	if in.Age != nil && (*in.Age < 0 || *in.Age > 150) {
		return "", apperr.Validation("age is out of range")
	}
	return role, nil
}

// Login exchanges an email and password for a signed token.
func (s *Service) Login(ctx context.Context, c Credentials) (string, error) {
	email := normalizeEmail(c.Email)
	if email == "" || c.Password == "" {
		return "", apperr.Validation("email and password are required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			checkPassword(s.dummyHash, c.Password)
			return "", apperr.Unauthenticated("invalid email or password")
		}
		return "", err
	}
	if !checkPassword(u.Password, c.Password) {
		return "", apperr.Unauthenticated("invalid email or password")
	}

	token, err := s.tokens.Issue(u.Principal())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *Service) GetUser(ctx context.Context, id uint) (*User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) Exists(ctx context.Context, id uint) (bool, error) {
	return s.users.Exists(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
