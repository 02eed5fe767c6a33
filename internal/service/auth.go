package service

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"tutorapi/internal/auth"
	"tutorapi/internal/model"
)

// LoginRequest carries the password grant credentials.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (r *LoginRequest) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Issue(username string) (string, error)
	Verify(token string) (string, error)
}

// AuthService issues bearer tokens and resolves them back to users.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*model.Token, error)
	// Authenticate returns the active user behind token. Disabled users get ErrInactiveUser.
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	users  auth.UserStore
	tokens TokenIssuer
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users auth.UserStore, tokens TokenIssuer) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*model.Token, error) {
	if err := req.validate(); err != nil {
		return nil, invalid(err)
	}
	u, err := s.users.Find(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)
		}
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)
	}

	tok, err := s.tokens.Issue(u.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &model.Token{AccessToken: tok, TokenType: "bearer"}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing bearer token", ErrUnauthorized)
	}
	username, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: could not validate credentials", ErrUnauthorized)
	}
	u, err := s.users.Find(ctx, username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: could not validate credentials", ErrUnauthorized)
		}
		return nil, err
	}
	if u.Disabled {
		return nil, ErrInactiveUser
	}
	return u, nil
}
