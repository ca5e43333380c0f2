package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*OpenAIProvider, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(Config{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: server.URL + "/v1",
	})
	require.NoError(t, err)
	return p, server
}

func chatCompletionBody(content string) string {
	payload := map[string]any{
		"id":    "chatcmpl-test",
		"model": "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     21,
			"completion_tokens": 9,
			"total_tokens":      30,
		},
	}
	b, _ := json.Marshal(payload)
	return string(b)
}

func TestNewOpenAIProvider_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIProvider(Config{Model: "gpt-4o-mini"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestOpenAIProvider_Generate(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		msgs := body["messages"].([]any)
		require.Len(t, msgs, 2)
		assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
		assert.Equal(t, "user", msgs[1].(map[string]any)["role"])
		rf := body["response_format"].(map[string]any)
		assert.Equal(t, "json_object", rf["type"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionBody(`{"analysis_summary":"bagus","analysis_key_factors":["konsisten"]}`)))
	})

	resp, err := p.Generate(context.Background(), Request{
		System: "You are a test.",
		User:   "Analyze this.",
		Schema: ShortAnalysisSchema,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"analysis_summary":"bagus","analysis_key_factors":["konsisten"]}`, string(resp.Content))
	assert.Equal(t, 21, resp.Usage.InputTokens)
	assert.Equal(t, 9, resp.Usage.OutputTokens)
	assert.Equal(t, 30, resp.Usage.TotalTokens)
}

func TestOpenAIProvider_SchemaMismatch(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionBody(`{"analysis_summary":"tanpa key factors"}`)))
	})

	_, err := p.Generate(context.Background(), Request{
		User:   "Analyze this.",
		Schema: ShortAnalysisSchema,
	})
	require.Error(t, err)

	var invErr *ErrInvalidResponse
	assert.True(t, errors.As(err, &invErr))
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"requests"}}`))
	})

	_, err := p.Generate(context.Background(), Request{User: "halo"})
	require.Error(t, err)

	var rl *ErrRateLimit
	assert.True(t, errors.As(err, &rl))
}

func TestOpenAIProvider_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // langsung matikan

	p, err := NewOpenAIProvider(Config{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: server.URL + "/v1",
	})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{User: "halo"})
	require.Error(t, err)

	var unavail *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavail))
}

func TestOpenAIProvider_ModelID(t *testing.T) {
	p, err := NewOpenAIProvider(Config{APIKey: "k", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())
}
