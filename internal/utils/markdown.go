package utils

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// Ticket descriptions and comments are user input rendered into the page,
// so everything goes through markdown conversion and a strict sanitizer.

var (
	renderOnce sync.Once
	md         goldmark.Markdown
	policy     *bluemonday.Policy
)

func setup() {
	// Raw HTML passes through the renderer untouched; the sanitizer below
	// is the only line of defense, and it keeps the inner text of stripped
	// tags instead of dropping whole blocks.
	md = goldmark.New(
		goldmark.WithRendererOptions(
			ghtml.WithHardWraps(),
			ghtml.WithUnsafe(),
		),
	)

	p := bluemonday.NewPolicy()

	// Basic formatting
	p.AllowElements("b", "strong", "i", "em", "u", "s", "del")

	// Paragraphs, breaks and headings
	p.AllowElements("p", "br", "hr")
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")

	// Lists
	p.AllowElements("ul", "ol", "li")

	// Quotes and code
	p.AllowElements("blockquote", "code", "pre")

	// Links with safe attributes only
	p.AllowElements("a")
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireParseableURLs(true)
	p.RequireNoFollowOnLinks(true)
	p.RequireNoReferrerOnLinks(true)

	policy = p
}

// RenderMarkdown converts user-supplied markdown to sanitized HTML.
// Conversion failures fall back to sanitizing the raw input.
func RenderMarkdown(source string) string {
	renderOnce.Do(setup)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return policy.Sanitize(source)
	}
	return policy.Sanitize(buf.String())
}
