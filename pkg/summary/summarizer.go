// Package summary writes short article excerpts with an OpenAI-compatible LLM
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/newsdesk/pkg/config"
)

// maximum article text sent to the model, in runes
const maxInputRunes = 12000

const defaultSystemPrompt = `You write excerpts for a news site.
Summarize the article in 2-3 sentences, at most 300 characters.
Write directly about the subject. NEVER start with phrases like "The article discusses" or "This piece covers".
Write the excerpt in the same language as the article. Reply with the excerpt text only, no quotes or markdown.`

// Summarizer makes article excerpts using an LLM
type Summarizer struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// New makes a Summarizer for the configured endpoint
func New(cfg config.LLMConfig) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Summarizer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// Summarize returns a short plain-text excerpt for the article
func (s *Summarizer) Summarize(ctx context.Context, title, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("empty article text")
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(title, text)},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from llm")
	}

	res := cleanResponse(resp.Choices[0].Message.Content)
	if res == "" {
		return "", errors.New("empty summary from llm")
	}
	return res, nil
}

func buildPrompt(title, text string) string {
	if utf8.RuneCountInString(text) > maxInputRunes {
		text = string([]rune(text)[:maxInputRunes])
	}
	var sb strings.Builder
	if title != "" {
		sb.WriteString("Title: ")
		sb.WriteString(title)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Article:\n")
	sb.WriteString(text)
	return sb.String()
}

// cleanResponse drops wrapping quotes, code fences and a "Summary:" label some models add
func cleanResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"Summary:", "Excerpt:"} {
		if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			s = strings.TrimSpace(s[len(prefix):])
		}
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.Join(strings.Fields(s), " ")
}
