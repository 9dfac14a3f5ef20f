package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultOllamaURL = "http://localhost:11434"

const ollamaRemedy = "install Ollama from https://ollama.com, then: ollama pull <model>"

// Ollama talks to a local Ollama server's generate endpoint. It serves as an
// alternative backend for machines that already run local models there.
type Ollama struct {
	model   string
	baseURL string
	client  *http.Client
}

// NewOllama creates an Ollama generator. The server address comes from
// OLLAMA_HOST, defaulting to the standard local port.
func NewOllama(model string) *Ollama {
	baseURL := os.Getenv("OLLAMA_HOST")
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return &Ollama{
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 300 * time.Second},
	}
}

func (o *Ollama) Name() string  { return "ollama" }
func (o *Ollama) Model() string { return o.model }

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// Generate performs one inference call against /api/generate. No retries.
func (o *Ollama) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	body := ollamaRequest{
		Model:  o.model,
		Prompt: req.Prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxNewTokens,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := o.client.Do(httpReq)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && ctx.Err() == nil {
			return GenerateResponse{}, fmt.Errorf("%w: ollama not reachable at %s (%s); %s",
				ErrBackendUnavailable, o.baseURL, urlErr.Err, ollamaRemedy)
		}
		return GenerateResponse{}, fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return GenerateResponse{}, fmt.Errorf("ollama error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var result ollamaResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return GenerateResponse{}, fmt.Errorf("parsing response: %w", err)
	}

	return GenerateResponse{Text: result.Response}, nil
}
