package sanitize

import (
	"regexp"
	"strings"
)

// GenericErrorMessage is shown when there is no message that is safe to
// surface.
const GenericErrorMessage = "An unexpected error occurred"

// Go's regexp engine runs in time linear in the input, so adversarial
// messages cannot trigger backtracking blowups here.
var (
	stackFrameRe  = regexp.MustCompile(`\s+at\s+.*$`)
	fileLineColRe = regexp.MustCompile(`\([^()\s]*:\d+:\d+\)`)
	pathSegmentRe = regexp.MustCompile(`(?:/[\w.~-]+)+/?`)
)

// SanitizeError produces a user-presentable message from err: the first
// line only, stripped of markup, with stack frames, file:line:col
// positions and path-like segments removed. A nil error yields
// GenericErrorMessage.
func SanitizeError(err error) string {
	if err == nil {
		return GenericErrorMessage
	}
	return SanitizeErrorText(err.Error())
}

// SanitizeErrorText applies the same redaction to a message string that
// arrived without an error value, e.g. an upstream response body. No
// absolute or relative file path, line number or stack frame survives.
//
// Markup is stripped before the path redaction: removing "/word" tokens
// from raw text could otherwise splice fragments like <scr/x/ipt> into a
// live tag, and a closing </tag> would lose its slash mid-sanitization.
func SanitizeErrorText(msg string) string {
	line := msg
	if idx := strings.IndexAny(line, "\r\n"); idx >= 0 {
		line = line[:idx]
	}
	line = StripMarkup(line)
	line = stackFrameRe.ReplaceAllString(line, "")
	line = fileLineColRe.ReplaceAllString(line, "")
	line = pathSegmentRe.ReplaceAllString(line, "")
	line = strings.TrimSpace(line)
	if line == "" {
		return GenericErrorMessage
	}
	return line
}
