package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every tag and every attribute, keeping only text
// content. Policies are safe for concurrent use once constructed.
var textPolicy = bluemonday.StrictPolicy()

// StripMarkup removes all markup from input and returns the remaining
// text content. Empty input yields an empty string. Stripping never
// fails; the worst case is an empty result. The tokenizer underneath
// handles nested and malformed tags, so content cannot re-assemble into
// markup through split or encoded fragments.
func StripMarkup(input string) string {
	if input == "" {
		return ""
	}
	return textPolicy.Sanitize(input)
}
