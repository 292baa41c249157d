// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Clean strips all HTML from user-supplied text and trims surrounding
// whitespace. Titles, descriptions, and addresses pass through here
// before they are stored.
func Clean(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
