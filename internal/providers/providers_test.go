package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		backend  string
		wantName string
		wantErr  bool
	}{
		{"hf", "hf", false},
		{"huggingface", "hf", false},
		{"ollama", "ollama", false},
		{"lmstudio", "ollama", false},
		{"watsonx", "", true},
	}
	for _, tt := range tests {
		g, err := New(tt.backend, "m")
		if tt.wantErr {
			require.Error(t, err, tt.backend)
			continue
		}
		require.NoError(t, err, tt.backend)
		assert.Equal(t, tt.wantName, g.Name())
	}
}

func TestHF_Generate(t *testing.T) {
	var got hfRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models/Salesforce/codet5-base", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode([]hfGenerated{{GeneratedText: "looks fine"}})
	}))
	defer srv.Close()
	t.Setenv("CODEREVIEW_HF_URL", srv.URL)

	h := NewHF("")
	resp, err := h.Generate(context.Background(), GenerateRequest{
		Prompt:       "Review this",
		MaxNewTokens: 512,
		NumSequences: 1,
		Temperature:  0.7,
		Sample:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, "looks fine", resp.Text)
	assert.Equal(t, "Review this", got.Inputs)
	assert.Equal(t, 512, got.Parameters.MaxNewTokens)
	assert.Equal(t, 1, got.Parameters.NumReturnSequences)
	assert.True(t, got.Parameters.DoSample)
	assert.InDelta(t, 0.7, got.Parameters.Temperature, 1e-9)
}

func TestHF_BareObjectResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(hfGenerated{GeneratedText: "single"})
	}))
	defer srv.Close()
	t.Setenv("CODEREVIEW_HF_URL", srv.URL)

	resp, err := NewHF("m").Generate(context.Background(), GenerateRequest{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "single", resp.Text)
}

func TestHF_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Setenv("CODEREVIEW_HF_URL", srv.URL)
	srv.Close()

	_, err := NewHF("m").Generate(context.Background(), GenerateRequest{Prompt: "p"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "text-generation-inference")
}

func TestHF_ModelLoading503(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Model is currently loading"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	t.Setenv("CODEREVIEW_HF_URL", srv.URL)

	_, err := NewHF("m").Generate(context.Background(), GenerateRequest{Prompt: "p"})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestOllama_Generate(t *testing.T) {
	var got ollamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(ollamaResponse{Response: "ollama says hi"})
	}))
	defer srv.Close()
	t.Setenv("OLLAMA_HOST", srv.URL)

	o := NewOllama("codellama")
	resp, err := o.Generate(context.Background(), GenerateRequest{Prompt: "p", MaxNewTokens: 256, Temperature: 0.7})
	require.NoError(t, err)
	assert.Equal(t, "ollama says hi", resp.Text)
	assert.Equal(t, "codellama", got.Model)
	assert.False(t, got.Stream)
	assert.Equal(t, 256, got.Options.NumPredict)
}

func TestOllama_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Setenv("OLLAMA_HOST", srv.URL)
	srv.Close()

	_, err := NewOllama("m").Generate(context.Background(), GenerateRequest{Prompt: "p"})
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "ollama.com")
}
