package content

import (
	"strings"

	"github.com/umputun/newsdesk/pkg/domain"
)

// ProcessorOpts configures article preparation
type ProcessorOpts struct {
	ExcerptLength  int
	WordsPerMinute int
	AllowIframes   bool
}

// Processor prepares article and page bodies on write: sanitizes html,
// fills a missing slug and excerpt and computes reading time
type Processor struct {
	sanitizer *Sanitizer
	opts      ProcessorOpts
}

// NewProcessor makes a Processor, zero options fall back to 200 chars and 200 wpm
func NewProcessor(opts ProcessorOpts) *Processor {
	if opts.ExcerptLength <= 0 {
		opts.ExcerptLength = 200
	}
	if opts.WordsPerMinute <= 0 {
		opts.WordsPerMinute = 200
	}
	return &Processor{sanitizer: NewSanitizer(opts.AllowIframes), opts: opts}
}

// PrepareArticle normalizes a new article in place
func (p *Processor) PrepareArticle(a *domain.Article) {
	a.Content = p.sanitizer.HTML(a.Content)
	a.Excerpt = PlainText(a.Excerpt)
	if strings.TrimSpace(a.Slug) == "" {
		a.Slug = Slugify(a.Title)
	} else {
		a.Slug = Slugify(a.Slug)
	}
	text := PlainText(a.Content)
	if a.Excerpt == "" {
		a.Excerpt = Excerpt(text, p.opts.ExcerptLength)
	}
	a.ReadingTime = ReadingTime(text, p.opts.WordsPerMinute)
}

// PrepareUpdate normalizes the supplied fields of an article update in place.
// Reading time is recomputed whenever content changes.
func (p *Processor) PrepareUpdate(upd *domain.ArticleUpdate) {
	if upd.Slug != nil {
		slug := Slugify(*upd.Slug)
		upd.Slug = &slug
	}
	if upd.Excerpt != nil {
		excerpt := PlainText(*upd.Excerpt)
		upd.Excerpt = &excerpt
	}
	if upd.Content == nil {
		return
	}
	body := p.sanitizer.HTML(*upd.Content)
	upd.Content = &body
	minutes := ReadingTime(PlainText(body), p.opts.WordsPerMinute)
	upd.ReadingTime = &minutes
}

// PreparePage sanitizes page content and fills a missing slug
func (p *Processor) PreparePage(pg *domain.Page) {
	pg.Content = p.sanitizer.HTML(pg.Content)
	if strings.TrimSpace(pg.Slug) == "" {
		pg.Slug = Slugify(pg.Title)
	}
}

// SanitizeHTML cleans a rich-text fragment
func (p *Processor) SanitizeHTML(src string) string { return p.sanitizer.HTML(src) }

// Summary returns a plain-text excerpt of an HTML fragment
func (p *Processor) Summary(src string) string {
	return Excerpt(PlainText(src), p.opts.ExcerptLength)
}
