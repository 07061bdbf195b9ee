package render

import (
	"context"

	"github.com/goliatone/go-modeldoc/pkg/page"
)

// Renderer converts a documentation page into a byte representation (HTML,
// markdown, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page page.Page, options RenderOptions) ([]byte, error)
}
