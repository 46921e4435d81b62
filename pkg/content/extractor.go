package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; Newsdesk/1.0)"

// HTTPExtractor fetches a linked page and extracts its main text with trafilatura
type HTTPExtractor struct {
	client        *http.Client
	userAgent     string
	minTextLength int
}

// NewHTTPExtractor makes an extractor. Pages yielding less than minTextLength
// characters of text are reported as errors.
func NewHTTPExtractor(timeout time.Duration, userAgent string, minTextLength int) *HTTPExtractor {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &HTTPExtractor{
		client:        &http.Client{Timeout: timeout},
		userAgent:     userAgent,
		minTextLength: minTextLength,
	}
}

// Extract retrieves the page at urlStr and returns its main text content
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	SetBrowserHeaders(req, e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}

	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return "", fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if result == nil {
		return "", fmt.Errorf("no content extracted from %s", urlStr)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return "", fmt.Errorf("no text content extracted from %s", urlStr)
	}
	if len([]rune(text)) < e.minTextLength {
		return "", fmt.Errorf("extracted text from %s too short: %d chars", urlStr, len([]rune(text)))
	}
	return text, nil
}
