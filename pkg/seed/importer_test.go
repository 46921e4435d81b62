package seed

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdesk/pkg/content"
	"github.com/umputun/newsdesk/pkg/feed"
	"github.com/umputun/newsdesk/pkg/seed/mocks"
)

func testFeed() *feed.Feed {
	pub := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &feed.Feed{
		Title: "City Wire",
		Items: []feed.Item{
			{
				GUID: "1", Title: "Bridge reopens after repairs", Link: "http://example.com/bridge",
				Description: "The bridge is <b>open</b> again.",
				Content:     "<p>The river bridge reopened on Monday.</p><script>x()</script>",
				ImageURL:    "http://example.com/bridge.jpg",
				Categories:  []string{"Transport", "Local News", "transport"},
				Published:   pub,
			},
			{
				GUID: "2", Title: "Library extends hours", Link: "http://example.com/library",
				Description: "Open until nine.", Published: pub.Add(-time.Hour),
			},
			{GUID: "3", Title: "   ", Description: "no title"},
			{GUID: "4", Title: "Empty body"},
		},
	}
}

func TestImporter_Import(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	parser := &mocks.FeedParserMock{ParseFunc: func(ctx context.Context, url string) (*feed.Feed, error) {
		return testFeed(), nil
	}}
	im := &Importer{
		Repos:     repos,
		Parser:    parser,
		Processor: content.NewProcessor(content.ProcessorOpts{}),
		Opts:      ImportOpts{AuthorEmail: "wire@example.com", Category: "Local", Publish: true, Workers: 2},
	}

	res, err := im.Import(ctx, "http://example.com/rss")
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Imported: 2, Skipped: 2}, res)
	require.Len(t, parser.ParseCalls(), 1)
	assert.Equal(t, "http://example.com/rss", parser.ParseCalls()[0].URL)

	a, err := repos.Article.GetBySlug(ctx, "bridge-reopens-after-repairs", false)
	require.NoError(t, err)
	assert.True(t, a.IsPublished)
	assert.Equal(t, "The bridge is open again.", a.Excerpt)
	assert.NotContains(t, a.Content, "script")
	assert.Contains(t, a.Content, `<a href="http://example.com/bridge"`)
	assert.Equal(t, "http://example.com/bridge.jpg", a.ImageURL)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), a.PublishedAt.UTC())
	require.NotNil(t, a.Author)
	assert.Equal(t, "City Wire", a.Author.Name)
	assert.Equal(t, "wire@example.com", a.Author.Email)
	require.NotNil(t, a.Category)
	assert.Equal(t, "local", a.Category.Slug)
	require.Len(t, a.Tags, 2, "duplicate feed categories collapse")
	assert.Equal(t, "Local News", a.Tags[0].Name)
	assert.Equal(t, "transport", a.Tags[1].Slug)

	// second run skips everything already stored
	res, err = im.Import(ctx, "http://example.com/rss")
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Skipped: 4}, res)
}

func TestImporter_ImportWithExtractorAndSummarizer(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	extractor := &mocks.ExtractorMock{ExtractFunc: func(ctx context.Context, url string) (string, error) {
		if strings.Contains(url, "library") {
			return "", errors.New("blocked")
		}
		return "First paragraph of the story.\n\nSecond <paragraph>.", nil
	}}
	summarizer := &mocks.SummarizerMock{SummarizeFunc: func(ctx context.Context, title, text string) (string, error) {
		return "LLM summary of " + title, nil
	}}

	im := &Importer{
		Repos:      repos,
		Parser:     &mocks.FeedParserMock{ParseFunc: func(context.Context, string) (*feed.Feed, error) { return testFeed(), nil }},
		Extractor:  extractor,
		Summarizer: summarizer,
		Processor:  content.NewProcessor(content.ProcessorOpts{}),
		Opts:       ImportOpts{MaxItems: 2},
	}

	res, err := im.Import(ctx, "http://example.com/rss")
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Imported: 2}, res)
	assert.Len(t, extractor.ExtractCalls(), 2)
	assert.Len(t, summarizer.SummarizeCalls(), 2)

	bridge, err := repos.Article.GetBySlug(ctx, "bridge-reopens-after-repairs", false)
	require.NoError(t, err)
	assert.False(t, bridge.IsPublished, "drafts unless publish is set")
	assert.Contains(t, bridge.Content, "<p>First paragraph of the story.</p><p>Second &lt;paragraph&gt;.</p>")
	assert.Equal(t, "LLM summary of Bridge reopens after repairs", bridge.Excerpt)
	assert.Equal(t, "imported", bridge.Category.Slug)
	assert.Equal(t, "import@newsdesk.local", bridge.Author.Email)

	library, err := repos.Article.GetBySlug(ctx, "library-extends-hours", false)
	require.NoError(t, err)
	assert.Contains(t, library.Content, "Open until nine.", "falls back to description when extraction fails")
}

func TestImporter_ImportSummarizerFailure(t *testing.T) {
	repos := setupRepos(t)
	im := &Importer{
		Repos:      repos,
		Parser:     &mocks.FeedParserMock{ParseFunc: func(context.Context, string) (*feed.Feed, error) { return testFeed(), nil }},
		Summarizer: &mocks.SummarizerMock{SummarizeFunc: func(context.Context, string, string) (string, error) { return "", errors.New("quota") }},
		Processor:  content.NewProcessor(content.ProcessorOpts{}),
		Opts:       ImportOpts{MaxItems: 1},
	}
	res, err := im.Import(context.Background(), "http://example.com/rss")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)

	a, err := repos.Article.GetBySlug(context.Background(), "bridge-reopens-after-repairs", false)
	require.NoError(t, err)
	assert.Equal(t, "The bridge is open again.", a.Excerpt)
}

func TestImporter_ImportParseError(t *testing.T) {
	repos := setupRepos(t)
	im := &Importer{
		Repos:     repos,
		Parser:    &mocks.FeedParserMock{ParseFunc: func(context.Context, string) (*feed.Feed, error) { return nil, errors.New("boom") }},
		Processor: content.NewProcessor(content.ProcessorOpts{}),
	}
	_, err := im.Import(context.Background(), "http://example.com/rss")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load feed http://example.com/rss: boom")

	authors, err := repos.Author.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, authors)
}

func TestTextToHTML(t *testing.T) {
	assert.Equal(t, "<p>one</p><p>two &amp; three</p>", textToHTML("one\n\n  two & three \n"))
	assert.Equal(t, "", textToHTML("\n \n"))
}
