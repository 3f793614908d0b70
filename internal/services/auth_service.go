package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yoockh/devconnect/internal/models"
	pgrepo "github.com/yoockh/devconnect/internal/repositories/postgres"
	"github.com/yoockh/devconnect/internal/utils"
)

// MsgInvalidCredentials is shared by every login failure so callers cannot
// tell an unknown email from a wrong password.
const MsgInvalidCredentials = "Invalid credentials"

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, error)
	Login(ctx context.Context, in LoginInput) (string, error)
	VerifyToken(token string) (string, error)
	WhoAmI(ctx context.Context, userID string) (*models.User, error)
}

// Tokens signs and verifies bearer tokens.
type Tokens interface {
	Issue(userID string) (string, error)
	Verify(raw string) (string, error)
}

// Hasher hashes and checks passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Check(hash, password string) error
}

type bcryptHasher struct{}

func (bcryptHasher) Hash(password string) (string, error) { return utils.HashPassword(password) }
func (bcryptHasher) Check(hash, password string) error { return utils.CheckPassword(hash, password) }

type authService struct {
	users    pgrepo.UserRepository
	tokens   Tokens
	hasher   Hasher
	validate *validator.Validate
}

func NewAuthService(users pgrepo.UserRepository, tokens Tokens, v *validator.Validate) AuthService {
	return &authService{users: users, tokens: tokens, hasher: bcryptHasher{}, validate: v}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (string, error) {
	const op = "AuthService.Register"

	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := check(s.validate, op, in); err != nil {
		return "", err
	}

	_, err := s.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return "", utils.E(utils.CodeConflict, op, "User already exists", nil)
	case !errors.Is(err, utils.ErrNotFound):
		return "", utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Avatar:       utils.GravatarURL(in.Email),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return "", utils.E(utils.CodeConflict, op, "User already exists", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	return s.issue(op, u.ID)
}

func (s *authService) Login(ctx context.Context, in LoginInput) (string, error) {
	const op = "AuthService.Login"

	in.Email = normalizeEmail(in.Email)
	if err := check(s.validate, op, in); err != nil {
		return "", err
	}

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeUnauthorized, op, MsgInvalidCredentials, nil)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}
	if err := s.hasher.Check(u.PasswordHash, in.Password); err != nil {
		return "", utils.E(utils.CodeUnauthorized, op, MsgInvalidCredentials, nil)
	}

	return s.issue(op, u.ID)
}

func (s *authService) VerifyToken(token string) (string, error) {
	const op = "AuthService.VerifyToken"

	userID, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, utils.ErrTokenMissing) {
			return "", utils.E(utils.CodeUnauthorized, op, "No token, authorization denied", err)
		}
		return "", utils.E(utils.CodeUnauthorized, op, "Token is not valid", err)
	}
	return userID, nil
}

func (s *authService) WhoAmI(ctx context.Context, userID string) (*models.User, error) {
	const op = "AuthService.WhoAmI"

	if userID == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "No token, authorization denied", nil)
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "User not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}
	return u, nil
}

func (s *authService) issue(op, userID string) (string, error) {
	tok, err := s.tokens.Issue(userID)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return tok, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
