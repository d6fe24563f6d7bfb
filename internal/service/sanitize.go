package service

import (
	"html"

	"alcyxob/gym-manager/internal/domain"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every HTML element from free-text fields.
var textPolicy = bluemonday.StrictPolicy()

// isPlainText reports whether s passes the strict policy untouched. Text with
// no tags or entities sanitises to exactly its escaped form.
func isPlainText(s string) bool {
	return textPolicy.Sanitize(s) == html.EscapeString(s)
}

// rejectMarkup returns a ValidationError for the first value carrying HTML
// tags or entities. Arguments come in name/value pairs. Values are stored as
// submitted, so markup is refused rather than rewritten.
func rejectMarkup(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if !isPlainText(pairs[i+1]) {
			return domain.NewValidationError(pairs[i], domain.MsgMarkupNotAllowed)
		}
	}
	return nil
}
