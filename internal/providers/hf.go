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

const defaultHFURL = "http://127.0.0.1:8080"

// DefaultModel is the pretrained text2text model used when none is configured.
const DefaultModel = "Salesforce/codet5-base"

const hfRemedy = "start a local inference endpoint, e.g.: " +
	"docker run -p 8080:80 ghcr.io/huggingface/text-generation-inference:latest --model-id " + DefaultModel

// HF talks to a Hugging Face style text2text-generation inference server
// (text-generation-inference or any server speaking the hosted inference API
// shape). Whether the server runs on a GPU only affects latency, never the
// response contract.
type HF struct {
	model   string
	baseURL string
	client  *http.Client
}

// NewHF creates an HF generator. The server address comes from
// CODEREVIEW_HF_URL, defaulting to a local endpoint.
func NewHF(model string) *HF {
	if model == "" {
		model = DefaultModel
	}
	baseURL := os.Getenv("CODEREVIEW_HF_URL")
	if baseURL == "" {
		baseURL = defaultHFURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return &HF{
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (h *HF) Name() string  { return "hf" }
func (h *HF) Model() string { return h.model }

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens       int     `json:"max_new_tokens"`
	NumReturnSequences int     `json:"num_return_sequences"`
	Temperature        float64 `json:"temperature"`
	DoSample           bool    `json:"do_sample"`
}

type hfGenerated struct {
	GeneratedText string `json:"generated_text"`
}

// Generate performs one inference call. Exactly one call is made; there are
// no retries at this layer or any other.
func (h *HF) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	body := hfRequest{
		Inputs: req.Prompt,
		Parameters: hfParameters{
			MaxNewTokens:       req.MaxNewTokens,
			NumReturnSequences: req.NumSequences,
			Temperature:        req.Temperature,
			DoSample:           req.Sample,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := h.baseURL + "/models/" + h.model
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := h.client.Do(httpReq)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && ctx.Err() == nil {
			return GenerateResponse{}, fmt.Errorf("%w: inference server not reachable at %s (%s); %s",
				ErrBackendUnavailable, h.baseURL, urlErr.Err, hfRemedy)
		}
		return GenerateResponse{}, fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode == http.StatusServiceUnavailable {
		// The hosted inference API answers 503 while the model loads.
		return GenerateResponse{}, fmt.Errorf("%w: model %s is not loaded yet at %s; %s",
			ErrBackendUnavailable, h.model, h.baseURL, hfRemedy)
	}
	if httpResp.StatusCode != http.StatusOK {
		return GenerateResponse{}, fmt.Errorf("inference API error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var results []hfGenerated
	if err := json.Unmarshal(respBody, &results); err != nil {
		// Some servers answer with a bare object rather than a one-element array.
		var single hfGenerated
		if err2 := json.Unmarshal(respBody, &single); err2 != nil {
			return GenerateResponse{}, fmt.Errorf("parsing response: %w", err)
		}
		results = []hfGenerated{single}
	}
	if len(results) == 0 {
		return GenerateResponse{}, fmt.Errorf("no sequences in response")
	}

	return GenerateResponse{Text: results[0].GeneratedText}, nil
}
