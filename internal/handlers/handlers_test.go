// File: internal/handlers/handlers_test.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/traza-ai/trainhub/internal/domain"
	"github.com/traza-ai/trainhub/internal/middleware"
	"github.com/traza-ai/trainhub/internal/repository/user"
	"github.com/traza-ai/trainhub/internal/services/ai"
)

const testUserID uint = 42

// withUser injects an authenticated user the way the JWT middleware does.
func withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.UserIDKey, testUserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// memoryUserRepo is a map-backed user.UserRepository for handler tests.
type memoryUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (r *memoryUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	u.ID = r.nextID
	r.nextID++
	copied := *u
	r.users[u.ID] = &copied
	return u, nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, user.ErrUserNotFound
}

func (r *memoryUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memoryUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *memoryUserRepo) UpdateAPIKey(_ context.Context, userID uint, apiKey string) error {
	u, ok := r.users[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.AnthropicAPIKey = apiKey
	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, userID uint) error {
	delete(r.users, userID)
	return nil
}

// stubProvider cans completion and streaming behavior for handler tests.
type stubProvider struct {
	completion    string
	completionErr error
	deltas        []string
	streamErr     error
	probeErr      error

	gotAPIKey string
	gotModel  string
	gotSystem string
}

func (s *stubProvider) GetCompletion(_ context.Context, apiKey, model, system, _ string) (string, error) {
	s.gotAPIKey, s.gotModel, s.gotSystem = apiKey, model, system
	return s.completion, s.completionErr
}

func (s *stubProvider) StreamChatCompletion(_ context.Context, apiKey, model, system string, _ []ai.ChatMessage, onDelta func(string) error) error {
	s.gotAPIKey, s.gotModel, s.gotSystem = apiKey, model, system
	for _, d := range s.deltas {
		if err := onDelta(d); err != nil {
			return err
		}
	}
	return s.streamErr
}

func (s *stubProvider) Probe(context.Context, string) error { return s.probeErr }

// upstreamError builds a provider error carrying an upstream HTTP status.
func upstreamError(status int) error {
	return ai.NewProviderError("completion", "upstream failure",
		&openai.APIError{HTTPStatusCode: status, Message: "upstream failure"})
}

var errStream = errors.New("stream interrupted")
