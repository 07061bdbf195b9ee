package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	docPolicyOnce sync.Once
	docPolicy     *bluemonday.Policy
)

// sanitizeDocMarkup strips dangerous markup from member docstrings. Docs come
// from model definition files and may carry inline formatting, so a UGC
// policy keeps the common tags while dropping scripts and event handlers.
func sanitizeDocMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(docSanitizer().Sanitize(trimmed))
}

func docSanitizer() *bluemonday.Policy {
	docPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").OnElements("code", "span", "pre", "a")
		docPolicy = policy
	})
	return docPolicy
}
