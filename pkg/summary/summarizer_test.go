package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdesk/pkg/config"
)

func llmServer(t *testing.T, reply string, check func(req openai.ChatCompletionRequest)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if check != nil {
			check(req)
		}

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: reply}}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestSummarizer_Summarize(t *testing.T) {
	ts := llmServer(t, "The city council approved a transit budget.", func(req openai.ChatCompletionRequest) {
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, 150, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, "excerpts for a news site")
		assert.Contains(t, req.Messages[1].Content, "Title: Budget vote")
		assert.Contains(t, req.Messages[1].Content, "council met on Tuesday")
	})
	defer ts.Close()

	s := New(config.LLMConfig{Endpoint: ts.URL + "/v1", APIKey: "test-key", Model: "gpt-4o-mini", MaxTokens: 150, Timeout: 5 * time.Second})
	res, err := s.Summarize(context.Background(), "Budget vote", "The council met on Tuesday and voted.")
	require.NoError(t, err)
	assert.Equal(t, "The city council approved a transit budget.", res)
}

func TestSummarizer_CustomPrompt(t *testing.T) {
	ts := llmServer(t, "ok", func(req openai.ChatCompletionRequest) {
		assert.Equal(t, "be brief", req.Messages[0].Content)
	})
	defer ts.Close()

	s := New(config.LLMConfig{Endpoint: ts.URL + "/v1", APIKey: "test-key", Model: "m", SystemPrompt: "be brief"})
	_, err := s.Summarize(context.Background(), "", "text")
	require.NoError(t, err)
}

func TestSummarizer_Errors(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		s := New(config.LLMConfig{Endpoint: "http://127.0.0.1:1/v1", Model: "m"})
		_, err := s.Summarize(context.Background(), "title", "   ")
		require.EqualError(t, err, "empty article text")
	})

	t.Run("empty reply", func(t *testing.T) {
		ts := llmServer(t, "  ", nil)
		defer ts.Close()
		s := New(config.LLMConfig{Endpoint: ts.URL + "/v1", APIKey: "test-key", Model: "m"})
		_, err := s.Summarize(context.Background(), "t", "text")
		require.EqualError(t, err, "empty summary from llm")
	})

	t.Run("no choices", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer ts.Close()
		s := New(config.LLMConfig{Endpoint: ts.URL + "/v1", APIKey: "test-key", Model: "m"})
		_, err := s.Summarize(context.Background(), "t", "text")
		require.EqualError(t, err, "no response from llm")
	})

	t.Run("server error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()
		s := New(config.LLMConfig{Endpoint: ts.URL + "/v1", APIKey: "test-key", Model: "m"})
		_, err := s.Summarize(context.Background(), "t", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "llm request failed")
	})
}

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t, "Article:\nbody", buildPrompt("", "body"))
	assert.Equal(t, "Title: T\n\nArticle:\nbody", buildPrompt("T", "body"))

	long := strings.Repeat("ж", maxInputRunes+50)
	p := buildPrompt("", long)
	assert.Equal(t, maxInputRunes+len([]rune("Article:\n")), len([]rune(p)))
}

func TestCleanResponse(t *testing.T) {
	tests := map[string]string{
		"plain text":                "plain text",
		`"quoted reply"`:            "quoted reply",
		"Summary: prices went up":   "prices went up",
		"excerpt:  two   spaces":    "two spaces",
		"```\nfenced text\n```":     "fenced text",
		"  multi\nline\n  answer  ": "multi line answer",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanResponse(in), in)
	}
}
