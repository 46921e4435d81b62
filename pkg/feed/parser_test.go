package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newsRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
	<title>City Wire</title>
	<link>http://example.com</link>
	<description>Local news</description>
	<item>
		<title>Bridge reopens after repairs</title>
		<link>http://example.com/bridge</link>
		<description>The bridge is open again.</description>
		<content:encoded><![CDATA[<p>The river bridge reopened on Monday.</p>]]></content:encoded>
		<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		<guid>http://example.com/bridge</guid>
		<author>desk@example.com (Anna Lee)</author>
		<category>Transport</category>
		<enclosure url="http://example.com/bridge.jpg" type="image/jpeg" length="1234"/>
	</item>
	<item>
		<title>Library extends hours</title>
		<link>http://example.com/library</link>
		<description>Open until nine.</description>
		<pubDate>Tue, 03 Jan 2006 15:04:05 -0700</pubDate>
	</item>
</channel>
</rss>`

func TestParser_Parse(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(newsRSS))
	}))
	defer ts.Close()

	feed, err := NewParser(5*time.Second, "importer/1.0").Parse(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "importer/1.0", gotUA)

	assert.Equal(t, "City Wire", feed.Title)
	assert.Equal(t, "Local news", feed.Description)
	assert.Equal(t, "http://example.com", feed.Link)
	require.Len(t, feed.Items, 2)

	first := feed.Items[0]
	assert.Equal(t, "Bridge reopens after repairs", first.Title)
	assert.Equal(t, "http://example.com/bridge", first.Link)
	assert.Equal(t, "The bridge is open again.", first.Description)
	assert.Equal(t, "<p>The river bridge reopened on Monday.</p>", first.Content)
	assert.Equal(t, "http://example.com/bridge", first.GUID)
	assert.Equal(t, "Anna Lee", first.Author)
	assert.Equal(t, []string{"Transport"}, first.Categories)
	assert.Equal(t, "http://example.com/bridge.jpg", first.ImageURL)
	assert.False(t, first.Published.IsZero())

	second := feed.Items[1]
	assert.Equal(t, "http://example.com/library", second.GUID, "guid falls back to link")
	assert.Empty(t, second.ImageURL)
}

func TestParseReader_Atom(t *testing.T) {
	atom := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Atom Desk</title>
	<link href="http://example.com"/>
	<subtitle>Atom news</subtitle>
	<entry>
		<title>Election results</title>
		<link href="http://example.com/election"/>
		<id>urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a</id>
		<updated>2006-01-02T15:04:05Z</updated>
		<summary>Final count is in.</summary>
		<author><name>John Doe</name></author>
	</entry>
</feed>`

	feed, err := ParseReader(strings.NewReader(atom))
	require.NoError(t, err)
	assert.Equal(t, "Atom Desk", feed.Title)
	assert.Equal(t, "Atom news", feed.Description)
	require.Len(t, feed.Items, 1)
	item := feed.Items[0]
	assert.Equal(t, "urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a", item.GUID)
	assert.Equal(t, "John Doe", item.Author)
	assert.Equal(t, time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC), item.Published.UTC())
}

func TestParseReader_NoGUID(t *testing.T) {
	rss := `<?xml version="1.0"?><rss version="2.0"><channel><title>Desk</title>
<item><title>Orphan</title><description>no link</description></item></channel></rss>`
	feed, err := ParseReader(strings.NewReader(rss))
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "Desk-Orphan", feed.Items[0].GUID)
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()
		_, err := NewParser(5*time.Second, "").Parse(context.Background(), ts.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 500")
	})

	t.Run("invalid xml", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not xml"))
		}))
		defer ts.Close()
		_, err := NewParser(5*time.Second, "").Parse(context.Background(), ts.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
	})

	t.Run("timeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer ts.Close()
		_, err := NewParser(100*time.Millisecond, "").Parse(context.Background(), ts.URL)
		require.Error(t, err)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := NewParser(5*time.Second, "").Parse(context.Background(), "not-a-url")
		require.Error(t, err)
	})
}
