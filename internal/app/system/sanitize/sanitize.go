// Package sanitize strips markup from user-supplied free text.
//
// Incident descriptions, location text, and action notes are stored and
// later rendered by clients as plain text, so the strict policy removes all
// HTML rather than allowing a safe subset.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
