// Package redact removes sensitive details from strings before they are
// logged or returned in error responses. Errors from the catalog and config
// loaders can carry file system paths, and quantity errors echo raw user
// text; callers logging such errors pass them through Error and then Text.
package redact

import (
	"regexp"
	"unicode/utf8"
)

// Placeholders substituted for redacted content.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

// MaxTextLength is the longest user-supplied text kept verbatim by Text.
const MaxTextLength = 120

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules run in order; stack traces go first so their file paths are removed
// as a whole.
var rules = []rule{
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackPlaceholder},
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Text shortens user-supplied text to MaxTextLength runes for logging.
func Text(s string) string {
	if utf8.RuneCountInString(s) <= MaxTextLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxTextLength]) + "…"
}
