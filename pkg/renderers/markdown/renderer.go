// Package markdown renders documentation pages as plain Markdown, suitable
// for README embedding or static site generators that consume .md sources.
package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-modeldoc/pkg/page"
	"github.com/goliatone/go-modeldoc/pkg/render"
)

type Option func(*config)

type config struct {
	headingLevel int
}

// WithHeadingLevel sets the heading depth used for the page title. Member
// headings nest one level below it.
func WithHeadingLevel(level int) Option {
	return func(cfg *config) {
		if level >= 1 && level <= 5 {
			cfg.headingLevel = level
		}
	}
}

type Renderer struct {
	headingLevel int
}

func New(options ...Option) (*Renderer, error) {
	cfg := config{headingLevel: 1}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Renderer{headingLevel: cfg.headingLevel}, nil
}

func (r *Renderer) Name() string {
	return "markdown"
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, doc page.Page, options render.RenderOptions) ([]byte, error) {
	title := options.Title
	if title == "" {
		title = doc.Module
	}

	var b strings.Builder
	heading := strings.Repeat("#", r.headingLevel)
	fmt.Fprintf(&b, "%s %s\n", heading, title)
	if doc.Doc != "" {
		fmt.Fprintf(&b, "\n%s\n", doc.Doc)
	}

	memberHeading := heading + "#"
	for _, entry := range doc.Entries {
		signature := ""
		if entry.Signature != nil {
			signature = entry.Signature.PlainText()
		}
		fmt.Fprintf(&b, "\n%s `%s`\n", memberHeading, entry.Fullname)
		if signature != "" {
			fmt.Fprintf(&b, "\n```\n%s\n```\n", signature)
		}
		if entry.Doc != "" {
			fmt.Fprintf(&b, "\n%s\n", entry.Doc)
		}
	}

	return []byte(b.String()), nil
}
