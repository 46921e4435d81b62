package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsdesk/pkg/content"
)

// Parser fetches and parses external RSS/Atom feeds for import
type Parser struct {
	client    *http.Client
	userAgent string
}

// NewParser makes a feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Parse fetches the feed at url and converts it
func (p *Parser) Parse(ctx context.Context, url string) (*Feed, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()
	return ParseReader(body)
}

// ParseReader parses feed xml from r
func ParseReader(r io.Reader) (*Feed, error) {
	parsed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	res := &Feed{
		Title:       parsed.Title,
		Description: parsed.Description,
		Link:        parsed.Link,
		Items:       make([]Item, 0, len(parsed.Items)),
	}
	for _, it := range parsed.Items {
		item := Item{
			Title:       it.Title,
			Link:        it.Link,
			Description: it.Description,
			Content:     it.Content,
			Categories:  it.Categories,
		}

		switch {
		case it.GUID != "":
			item.GUID = it.GUID
		case it.Link != "":
			item.GUID = it.Link
		default:
			item.GUID = fmt.Sprintf("%s-%s", parsed.Title, it.Title)
		}

		if it.Author != nil {
			item.Author = it.Author.Name
		}
		if it.Image != nil {
			item.ImageURL = it.Image.URL
		}
		for _, enc := range it.Enclosures {
			if item.ImageURL == "" && enc != nil && isImage(enc.Type) {
				item.ImageURL = enc.URL
			}
		}

		if it.PublishedParsed != nil {
			item.Published = *it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			item.Published = *it.UpdatedParsed
		}
		res.Items = append(res.Items, item)
	}
	return res, nil
}

func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	content.SetBrowserHeaders(req, p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func isImage(mime string) bool {
	return strings.HasPrefix(mime, "image/")
}
