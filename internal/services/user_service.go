// File: internal/services/user_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/traza-ai/trainhub/internal/auth"
	"github.com/traza-ai/trainhub/internal/domain"
	"github.com/traza-ai/trainhub/internal/repository/user"
)

type UserService struct {
	userRepo  user.UserRepository
	jwtSecret []byte
}

func NewUserService(repo user.UserRepository, secretKey string) *UserService {
	return &UserService{
		userRepo:  repo,
		jwtSecret: []byte(secretKey),
	}
}

func (s *UserService) RegisterUser(ctx context.Context, u *domain.User, plainPassword string) (*domain.User, error) {
	_, err := s.userRepo.FindByUsername(ctx, u.Username)
	if err == nil {
		return nil, errors.New("username already exists")
	}

	if err := u.HashPassword(plainPassword); err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := u.ValidatePassword(password); err != nil {
		return "", errors.New("invalid credentials")
	}

	token, err := auth.GenerateJWT(u.ID, s.jwtSecret)
	if err != nil {
		return "", errors.New("could not generate token")
	}

	return token, nil
}

func (s *UserService) ValidateJWTToken(token string) (uint, error) {
	return auth.ValidateToken(token, s.jwtSecret)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// SetAPIKey stores a per-user Anthropic key override. An empty key clears
// the override so the server key applies again.
func (s *UserService) SetAPIKey(ctx context.Context, id uint, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" && !strings.HasPrefix(apiKey, "sk-ant-") {
		return errors.New("invalid API key format")
	}
	return s.userRepo.UpdateAPIKey(ctx, id, apiKey)
}

// ResolveAPIKey returns the key to use for the user's LLM calls: the
// user's own key when set, otherwise empty so the server key applies.
func (s *UserService) ResolveAPIKey(ctx context.Context, id uint) (string, error) {
	u, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.AnthropicAPIKey, nil
}
