// File: internal/services/ai/errors.go
package ai

import (
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeNetwork    ErrorType = "NETWORK"
	ErrTypeProvider   ErrorType = "PROVIDER"
	ErrTypeRateLimit  ErrorType = "RATE_LIMIT"
	ErrTypeAuth       ErrorType = "AUTH"
	ErrTypeOverloaded ErrorType = "OVERLOADED"
	ErrTypeValidation ErrorType = "VALIDATION"
)

type AIError struct {
	Type      ErrorType
	Code      int
	Message   string
	Model     string
	Operation string
	Cause     error
}

func (e *AIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI %s error in %s: %s (caused by: %v)",
			e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("AI %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AIError) Unwrap() error { return e.Cause }

func NewConfigError(msg string) *AIError {
	return &AIError{Type: ErrTypeConfig, Message: msg, Operation: "config"}
}

// NewProviderError classifies an upstream failure by its HTTP status so
// handlers can map it to the right user-facing response.
func NewProviderError(operation, msg string, cause error) *AIError {
	errType := ErrTypeProvider
	code := 0
	var apiErr *openai.APIError
	if errors.As(cause, &apiErr) {
		code = apiErr.HTTPStatusCode
		switch apiErr.HTTPStatusCode {
		case 429:
			errType = ErrTypeRateLimit
		case 401, 403:
			errType = ErrTypeAuth
		case 529:
			errType = ErrTypeOverloaded
		}
	}
	return &AIError{Type: errType, Code: code, Operation: operation, Message: msg, Cause: cause}
}

// UpstreamStatus returns the upstream HTTP status carried by err, or 0
// when err carries none.
func UpstreamStatus(err error) int {
	var aiErr *AIError
	if errors.As(err, &aiErr) {
		return aiErr.Code
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	return 0
}
