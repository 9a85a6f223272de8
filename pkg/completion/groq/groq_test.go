package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"jqlgen/pkg/completion"
	"jqlgen/pkg/convo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ImplementsCompleter(t *testing.T) {
	var _ completion.Completer = (*Client)(nil)
}

func TestNew(t *testing.T) {
	g := New("test-key", nil)

	assert.Equal(t, DefaultBaseURL, g.BaseURL)
	assert.Equal(t, "test-key", g.Auth.Key)
}

func TestComplete_TextResponse(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "mixtral-8x7b-32768", req.Model)
		assert.Equal(t, 1024, req.MaxTokens)
		assert.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "You write JQL.", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "all open bugs", req.Messages[1].Content)

		resp := chatResponse{
			ID: "resp-1",
			Choices: []choice{{
				Message:      apiMessage{Role: "assistant", Content: "  issuetype = Bug AND status = Open  "},
				FinishReason: "stop",
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	g := New("test-key", srv.Client())
	g.BaseURL = srv.URL
	g.Name = "mixtral-8x7b-32768"
	g.MaxTokens = 1024

	c := convo.NewConversation(
		convo.New(convo.System, "You write JQL."),
		convo.New(convo.User, "all open bugs"),
	)

	got, err := g.Complete(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, "issuetype = Bug AND status = Open", got)
	assert.Equal(t, int32(1), calls.Load())
}

func TestComplete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"resp-2","choices":[]}`))
	}))
	defer srv.Close()

	g := New("test-key", srv.Client())
	g.BaseURL = srv.URL

	_, err := g.Complete(context.Background(), convo.NewConversation(
		convo.New(convo.User, "hello"),
	))

	assert.EqualError(t, err, "groq: empty response")
}

func TestComplete_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("over quota"))
	}))
	defer srv.Close()

	g := New("test-key", srv.Client())
	g.BaseURL = srv.URL

	_, err := g.Complete(context.Background(), convo.NewConversation(
		convo.New(convo.User, "hello"),
	))

	var rle *completion.RateLimitError
	require.ErrorAs(t, err, &rle)
	assert.Equal(t, completion.RateLimitMessage, completion.UserMessage(err))
}

func TestComplete_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	g := New("test-key", srv.Client())
	g.BaseURL = srv.URL

	_, err := g.Complete(context.Background(), convo.NewConversation(
		convo.New(convo.User, "hello"),
	))

	var he *completion.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
}

func TestComplete_OmitsZeroSamplingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.NotContains(t, raw, "temperature")
		assert.NotContains(t, raw, "max_tokens")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	g := New("test-key", srv.Client())
	g.BaseURL = srv.URL

	_, err := g.Complete(context.Background(), convo.NewConversation(
		convo.New(convo.User, "hello"),
	))
	require.NoError(t, err)
}
