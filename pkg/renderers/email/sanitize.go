package email

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicyOnce sync.Once
	richTextPolicy     *bluemonday.Policy
)

// sanitizeRichText cleans user-authored long-text values down to basic
// formatting markup before they are embedded in a fragment. Values with no
// markup pass through unchanged apart from entity escaping of stray brackets.
func sanitizeRichText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(richTextSanitizer().Sanitize(trimmed))
}

func richTextSanitizer() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"p", "br", "strong", "b", "em", "i", "u", "s",
			"ul", "ol", "li", "span", "blockquote",
		)
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(false)
		richTextPolicy = policy
	})
	return richTextPolicy
}
