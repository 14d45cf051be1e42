package user

import (
	"context"

	"github.com/traza-ai/trainhub/internal/domain"
)

// UserRepository handles user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateAPIKey(ctx context.Context, userID uint, apiKey string) error
	Delete(ctx context.Context, userID uint) error
}
