package providers

import (
	"context"
	"errors"
	"fmt"
)

// GenerateRequest contains the prompt and bounded sampling parameters for one
// inference call. Generation is inference-only; there is no training path.
type GenerateRequest struct {
	Prompt       string
	MaxNewTokens int
	NumSequences int
	Temperature  float64
	Sample       bool
}

// GenerateResponse contains the raw generated text.
type GenerateResponse struct {
	Text string
}

// Generator is the model backend abstraction.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
	Model() string
}

// ErrBackendUnavailable indicates the model runtime could not be reached at
// all (server not running, connection refused, model still loading). Errors
// wrapping it carry an actionable remediation in their message.
var ErrBackendUnavailable = errors.New("model backend unavailable")

// New creates a generator by backend name.
func New(backend, model string) (Generator, error) {
	switch backend {
	case "hf", "huggingface":
		return NewHF(model), nil
	case "ollama", "lmstudio":
		return NewOllama(model), nil
	default:
		return nil, fmt.Errorf("unknown model backend: %s", backend)
	}
}
