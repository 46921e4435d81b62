package content

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// tags producing a word break in plain text
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "tr": true, "td": true, "th": true,
	"article": true, "section": true, "figure": true, "figcaption": true,
}

// PlainText returns the visible text of an HTML fragment with whitespace collapsed.
// Script and style bodies are dropped.
func PlainText(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))
	var sb strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				skip++
			}
			if blockTags[tag] {
				sb.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if (tag == "script" || tag == "style") && skip > 0 {
				skip--
			}
			if blockTags[tag] {
				sb.WriteByte(' ')
			}
		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
			}
		}
	}
}

// Excerpt shortens text to at most length runes, cutting on a word boundary
// and appending an ellipsis when anything was cut
func Excerpt(text string, length int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if length <= 0 || len(runes) <= length {
		return text
	}
	cut := string(runes[:length])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRightFunc(cut, func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSpace(r) }) + "..."
}

// ReadingTime estimates minutes needed to read text, never less than one
func ReadingTime(text string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 200
	}
	words := len(strings.Fields(text))
	return max(1, int(math.Ceil(float64(words)/float64(wordsPerMinute))))
}

// Slugify makes a url-friendly slug, lower case letters and digits separated by single dashes
func Slugify(s string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			dash = false
			sb.WriteRune(r)
		default:
			dash = true
		}
	}
	return sb.String()
}
