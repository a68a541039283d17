package together

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tux-be/pkg/llm"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateSendsInferenceRequest(t *testing.T) {
	var captured inferenceRequest
	var gotPath, gotAuth string

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"output":{"choices":[{"text":"generated text"}]}}`))
	})

	p := New("secret-key", srv.URL)
	got, err := p.Generate(context.Background(), "design a dashboard", llm.WithModel(llm.ModelLlama370B))

	require.NoError(t, err)
	assert.Equal(t, "generated text", got)
	assert.Equal(t, "/inference", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)

	assert.Equal(t, "meta-llama/Llama-3-70b-chat-hf", captured.Model)
	assert.Equal(t, "design a dashboard", captured.Prompt)
	assert.Equal(t, 2048, captured.MaxTokens)
	assert.Equal(t, 0.7, captured.Temperature)
	assert.Equal(t, 0.9, captured.TopP)
}

func TestGenerateUnknownModelUsesDefaultMapping(t *testing.T) {
	var captured inferenceRequest
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"output":{"choices":[{"text":"ok"}]}}`))
	})

	p := New("secret-key", srv.URL)
	_, err := p.Generate(context.Background(), "hi", llm.WithModel("made-up-model"))

	require.NoError(t, err)
	assert.Equal(t, "meta-llama/Llama-3-8b-chat-hf", captured.Model)
}

func TestGenerateMissingKey(t *testing.T) {
	p := New("", "")
	_, err := p.Generate(context.Background(), "hi")
	assert.True(t, errors.Is(err, llm.ErrProviderUnavailable))
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	})

	p := New("secret-key", srv.URL)
	_, err := p.Generate(context.Background(), "hi")

	var upstream *llm.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "together", upstream.Provider)
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.Equal(t, "rate limited", upstream.Body)
}

func TestGenerateEmptyChoices(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"output":{"choices":[]}}`))
	})

	p := New("secret-key", srv.URL)
	_, err := p.Generate(context.Background(), "hi")
	assert.Error(t, err)
}
