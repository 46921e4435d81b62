package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/newsdesk/pkg/content"
	"github.com/umputun/newsdesk/pkg/domain"
)

const descriptionLength = 300

// GeneratorOpts describes the site the feed is generated for
type GeneratorOpts struct {
	BaseURL     string
	SiteName    string
	Description string
	Language    string
}

// Generator renders RSS 2.0 feeds of published articles
type Generator struct {
	opts      GeneratorOpts
	sanitizer *content.Sanitizer
}

// NewGenerator makes a feed generator
func NewGenerator(opts GeneratorOpts) *Generator {
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.SiteName == "" {
		opts.SiteName = "Newsdesk"
	}
	if opts.Language == "" {
		opts.Language = "en"
	}
	return &Generator{opts: opts, sanitizer: content.NewSanitizer(false)}
}

// GenerateRSS makes the feed document for articles. With category set the channel
// title and self link point to the category feed.
func (g *Generator) GenerateRSS(articles []domain.Article, category *domain.Category) (string, error) {
	title, selfLink := g.opts.SiteName, g.opts.BaseURL+"/rss"
	description := g.opts.Description
	if description == "" {
		description = "Latest articles from " + g.opts.SiteName
	}
	if category != nil {
		title = fmt.Sprintf("%s - %s", g.opts.SiteName, category.Name)
		selfLink = fmt.Sprintf("%s/rss/%s", g.opts.BaseURL, category.Slug)
		if category.Description != "" {
			description = category.Description
		}
	}

	items := make([]*RSSItem, 0, len(articles))
	for i := range articles {
		items = append(items, g.rssItem(&articles[i]))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.opts.BaseURL + "/",
			Description:   description,
			Language:      g.opts.Language,
			Copyright:     fmt.Sprintf("All rights reserved %d", time.Now().Year()),
			Generator:     "newsdesk",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			Image:         &RSSImage{URL: g.opts.BaseURL + "/logo.png", Title: title, Link: g.opts.BaseURL + "/"},
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}
	return xml.Header + string(output), nil
}

// ArticleURL is the public page of an article
func (g *Generator) ArticleURL(slug string) string {
	return fmt.Sprintf("%s/%s/article/%s", g.opts.BaseURL, g.opts.Language, slug)
}

func (g *Generator) rssItem(a *domain.Article) *RSSItem {
	link := g.ArticleURL(a.Slug)
	src := a.Excerpt
	if strings.TrimSpace(src) == "" {
		src = a.Content
	}
	item := &RSSItem{
		Title:       a.Title,
		Link:        link,
		GUID:        RSSGUID{Value: link, IsPermaLink: true},
		Description: content.Excerpt(content.PlainText(g.sanitizer.Strip(src)), descriptionLength),
		PubDate:     a.PublishedAt.Format(time.RFC1123Z),
	}
	if a.Author != nil {
		item.Author = a.Author.Name
	}
	if a.Category != nil {
		item.Category = a.Category.Name
	}
	if a.ImageURL != "" {
		item.Enclosure = &RSSEnclosure{URL: a.ImageURL, Type: imageType(a.ImageURL)}
	}
	return item
}

func imageType(u string) string {
	u = strings.ToLower(u)
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	switch {
	case strings.HasSuffix(u, ".png"):
		return "image/png"
	case strings.HasSuffix(u, ".gif"):
		return "image/gif"
	case strings.HasSuffix(u, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
