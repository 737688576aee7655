package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/DhavalSuthar-24/squadhub/internal/apperrors"
	"github.com/DhavalSuthar-24/squadhub/internal/database"
	"github.com/DhavalSuthar-24/squadhub/internal/user"
	"github.com/DhavalSuthar-24/squadhub/pkg/token"
	"github.com/DhavalSuthar-24/squadhub/utils"
)

// Login failures map to 401 in the controller rather than an apperrors kind.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// TokenConfig is what the service needs to sign access tokens.
type TokenConfig struct {
	Secret        string
	Issuer        string
	ExpiryMinutes int
}

type Service struct {
	users  user.Repository
	tokens TokenConfig
}

func NewService(users user.Repository, tokens TokenConfig) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) issue(u *user.User) (*AuthResponse, error) {
	accessToken, err := token.GenerateJWT(u.ID, string(u.Role), s.tokens.Issuer, s.tokens.Secret, s.tokens.ExpiryMinutes)
	if err != nil {
		return nil, apperrors.Internal(err, "Failed to generate access token")
	}
	return &AuthResponse{AccessToken: accessToken, User: user.FilterUserRecord(u)}, nil
}

// Register creates a PLAYER account. New accounts start UNVERIFIED.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	users := s.users.WithContext(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	exists, err := users.Exists(email, username, req.Phone)
	if err != nil {
		return nil, database.FromDB(err, "Failed to check existing users")
	}
	if exists {
		return nil, apperrors.Conflict("User with this email, username or phone already exists")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Internal(err, "Failed to hash password")
	}

	u := &user.User{
		Name:          strings.TrimSpace(req.Name),
		Username:      username,
		Email:         email,
		Phone:         req.Phone,
		Password:      hashed,
		AccountStatus: user.AccountUnverified,
		Role:          user.RolePlayer,
	}
	if err := users.Create(u); err != nil {
		return nil, database.FromDB(err, "Failed to create user")
	}
	return s.issue(u)
}

// Login checks the password against an email or username. Unknown
// identifiers and wrong passwords get the same answer.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.users.WithContext(ctx).GetByLoginIdentifier(req.LoginIdentifier)
	if err != nil {
		return nil, database.FromDB(err, "Failed to load user")
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if u.AccountStatus == user.AccountDisabled {
		return nil, ErrAccountDisabled
	}
	return s.issue(u)
}

func (s *Service) Me(ctx context.Context, userID uint) (*user.UserResponse, error) {
	u, err := s.users.WithContext(ctx).GetByID(userID)
	if err != nil {
		return nil, database.FromDB(err, "Failed to load user")
	}
	if u == nil {
		return nil, apperrors.NotFound("User not found")
	}
	res := user.FilterUserRecord(u)
	return &res, nil
}
