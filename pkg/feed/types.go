package feed

import (
	"encoding/xml"
	"time"
)

// RSS is the root element of an RSS 2.0 document
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel is the site level part of the feed
type RSSChannel struct {
	XMLName       xml.Name   `xml:"channel"`
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	Language      string     `xml:"language,omitempty"`
	Copyright     string     `xml:"copyright,omitempty"`
	Generator     string     `xml:"generator,omitempty"`
	AtomLink      *AtomLink  `xml:"http://www.w3.org/2005/Atom link"`
	Image         *RSSImage  `xml:"image,omitempty"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*RSSItem `xml:"item"`
}

// AtomLink is the self reference of the feed
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// RSSImage is the channel logo
type RSSImage struct {
	URL   string `xml:"url"`
	Title string `xml:"title"`
	Link  string `xml:"link"`
}

// RSSGUID is an item id, a permalink for published articles
type RSSGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

// RSSEnclosure attaches the article image
type RSSEnclosure struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Length int64  `xml:"length,attr"`
}

// RSSItem is a single article in the feed
type RSSItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	GUID        RSSGUID       `xml:"guid"`
	Description string        `xml:"description"`
	Author      string        `xml:"author,omitempty"`
	Category    string        `xml:"category,omitempty"`
	Enclosure   *RSSEnclosure `xml:"enclosure,omitempty"`
	PubDate     string        `xml:"pubDate"`
}

// Feed is a parsed external RSS or Atom feed
type Feed struct {
	Title       string
	Description string
	Link        string
	Items       []Item
}

// Item is a single entry of a parsed feed
type Item struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Content     string // full content when the feed carries it
	Author      string
	ImageURL    string
	Categories  []string
	Published   time.Time
}
