package content

import (
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans user supplied HTML before it is stored or syndicated
type Sanitizer struct {
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

// NewSanitizer makes a sanitizer. With allowIframes embedded players
// (iframe with src, size and allowfullscreen) survive the rich-text policy.
func NewSanitizer(allowIframes bool) *Sanitizer {
	ugc := bluemonday.UGCPolicy()
	ugc.AllowAttrs("class").OnElements("figure", "figcaption", "pre", "code")
	ugc.AllowElements("figure", "figcaption")
	if allowIframes {
		ugc.AllowElements("iframe")
		ugc.AllowAttrs("src", "width", "height", "allowfullscreen", "frameborder", "title").OnElements("iframe")
	}
	return &Sanitizer{ugc: ugc, strict: bluemonday.StrictPolicy()}
}

// HTML keeps safe formatting markup and drops scripts, handlers and unknown tags
func (s *Sanitizer) HTML(src string) string {
	return s.ugc.Sanitize(src)
}

// Strip removes all markup, used for feed descriptions and plain-text fields
func (s *Sanitizer) Strip(src string) string {
	return s.strict.Sanitize(src)
}
