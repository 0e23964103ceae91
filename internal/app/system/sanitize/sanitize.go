// internal/app/system/sanitize/sanitize.go

// Package sanitize strips HTML from free-text fields before they enter a
// persisted document. Submissions come straight from a public form and the
// documents are rendered by the admin dashboard without further escaping.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML markup and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
