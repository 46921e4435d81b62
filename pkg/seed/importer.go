package seed

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsdesk/pkg/content"
	"github.com/umputun/newsdesk/pkg/domain"
	"github.com/umputun/newsdesk/pkg/feed"
	"github.com/umputun/newsdesk/pkg/repository"
)

//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . FeedParser
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer

// FeedParser loads an external feed
type FeedParser interface {
	Parse(ctx context.Context, url string) (*feed.Feed, error)
}

// Extractor returns the main text of a linked page
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Summarizer writes a short excerpt for an article
type Summarizer interface {
	Summarize(ctx context.Context, title, text string) (string, error)
}

// ImportOpts controls how feed items become articles
type ImportOpts struct {
	AuthorEmail string
	Category    string // category slug, created when missing
	Publish     bool
	MaxItems    int
	Workers     int
}

// ImportResult reports a finished import
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// Importer turns items of an external feed into articles.
// Extractor and Summarizer are optional.
type Importer struct {
	Repos      *repository.Repositories
	Parser     FeedParser
	Extractor  Extractor
	Summarizer Summarizer
	Processor  *content.Processor
	Opts       ImportOpts
}

// draft is a feed item prepared for storage
type draft struct {
	item    feed.Item
	article domain.Article
	ok      bool
}

// Import fetches the feed at url and stores new items as articles. Items whose
// slug already exists are skipped, so repeated imports of a feed are safe.
func (im *Importer) Import(ctx context.Context, url string) (ImportResult, error) {
	var res ImportResult
	parsed, err := im.Parser.Parse(ctx, url)
	if err != nil {
		return res, fmt.Errorf("load feed %s: %w", url, err)
	}
	lgr.Printf("[INFO] importing feed %q, %d items", parsed.Title, len(parsed.Items))

	author, err := im.importAuthor(ctx, parsed.Title)
	if err != nil {
		return res, err
	}
	category, _, err := ensureCategory(ctx, im.Repos.Category, domain.Category{
		Name: titleFromSlug(im.category()), Slug: im.category(), Description: "Articles imported from external feeds"})
	if err != nil {
		return res, fmt.Errorf("import category: %w", err)
	}

	items := parsed.Items
	if im.Opts.MaxItems > 0 && len(items) > im.Opts.MaxItems {
		items = items[:im.Opts.MaxItems]
	}

	drafts := make([]draft, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, im.Opts.Workers))
	for i, item := range items {
		g.Go(func() error {
			drafts[i] = im.prepare(gctx, item)
			return nil
		})
	}
	_ = g.Wait()

	for _, d := range drafts {
		if !d.ok {
			res.Skipped++
			continue
		}
		exists, err := im.Repos.Article.SlugExists(ctx, d.article.Slug)
		if err != nil {
			return res, fmt.Errorf("check slug %s: %w", d.article.Slug, err)
		}
		if exists {
			lgr.Printf("[DEBUG] skip %q, slug %s exists", d.item.Title, d.article.Slug)
			res.Skipped++
			continue
		}

		d.article.AuthorID = author.ID
		d.article.CategoryID = &category.ID
		tagIDs := im.tagIDs(ctx, d.item.Categories)
		if _, err := im.Repos.Article.Create(ctx, &d.article, tagIDs); err != nil {
			if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrValidation) {
				lgr.Printf("[WARN] can't import %q: %v", d.item.Title, err)
				res.Failed++
				continue
			}
			return res, fmt.Errorf("store %q: %w", d.item.Title, err)
		}
		res.Imported++
	}

	lgr.Printf("[INFO] feed %s imported: %d new, %d skipped, %d failed", url, res.Imported, res.Skipped, res.Failed)
	return res, nil
}

// prepare builds the article for an item, fetching the full text and a summary when configured
func (im *Importer) prepare(ctx context.Context, item feed.Item) draft {
	title := strings.TrimSpace(content.PlainText(item.Title))
	if title == "" || content.Slugify(title) == "" {
		return draft{item: item}
	}

	body := item.Content
	if strings.TrimSpace(body) == "" {
		body = item.Description
	}
	if im.Extractor != nil && item.Link != "" {
		text, err := im.Extractor.Extract(ctx, item.Link)
		if err != nil {
			lgr.Printf("[WARN] extract %s: %v", item.Link, err)
		} else {
			body = textToHTML(text)
		}
	}
	if strings.TrimSpace(content.PlainText(body)) == "" {
		return draft{item: item}
	}
	if item.Link != "" {
		body += fmt.Sprintf(`<p><a href="%s">Original article</a></p>`, html.EscapeString(item.Link))
	}

	excerpt := content.PlainText(item.Description)
	if im.Summarizer != nil {
		summary, err := im.Summarizer.Summarize(ctx, title, content.PlainText(body))
		if err != nil {
			lgr.Printf("[WARN] summarize %q: %v", title, err)
		} else {
			excerpt = summary
		}
	}

	published := item.Published
	if published.IsZero() {
		published = time.Now()
	}

	a := domain.Article{
		Title:       title,
		Content:     body,
		Excerpt:     excerpt,
		ImageURL:    item.ImageURL,
		ImageAlt:    title,
		IsPublished: im.Opts.Publish,
		PublishedAt: published.UTC(),
	}
	im.Processor.PrepareArticle(&a)
	return draft{item: item, article: a, ok: true}
}

func (im *Importer) importAuthor(ctx context.Context, feedTitle string) (*domain.Author, error) {
	email := im.Opts.AuthorEmail
	if email == "" {
		email = "import@newsdesk.local"
	}
	name := strings.TrimSpace(feedTitle)
	if name == "" {
		name = "Feed Import"
	}
	if _, err := ensureAuthor(ctx, im.Repos.Author, domain.Author{Name: name, Email: email, Bio: "Imported articles"}); err != nil {
		return nil, fmt.Errorf("import author: %w", err)
	}
	author, err := im.Repos.Author.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("import author: %w", err)
	}
	return author, nil
}

func (im *Importer) category() string {
	if slug := content.Slugify(im.Opts.Category); slug != "" {
		return slug
	}
	return "imported"
}

// tagIDs maps feed categories to tags, creating missing ones. Failures only drop the tag.
func (im *Importer) tagIDs(ctx context.Context, categories []string) []int64 {
	res := []int64{}
	seen := map[int64]bool{}
	for _, c := range categories {
		slug := content.Slugify(c)
		if slug == "" {
			continue
		}
		tag, _, err := ensureTag(ctx, im.Repos.Tag, slug)
		if err != nil {
			lgr.Printf("[WARN] tag %q: %v", c, err)
			continue
		}
		if !seen[tag.ID] {
			seen[tag.ID] = true
			res = append(res, tag.ID)
		}
		if len(res) == 5 {
			break
		}
	}
	return res
}

// textToHTML wraps extracted plain text paragraphs in <p> tags
func textToHTML(text string) string {
	var sb strings.Builder
	for _, para := range strings.Split(text, "\n") {
		if para = strings.TrimSpace(para); para != "" {
			sb.WriteString("<p>")
			sb.WriteString(html.EscapeString(para))
			sb.WriteString("</p>")
		}
	}
	return sb.String()
}
