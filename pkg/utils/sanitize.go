package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// SanitizeString trims whitespace and drops control characters. The text is
// stored as typed; escaping belongs to whatever renders it as HTML.
func SanitizeString(input string) string {
	return removeControlChars(strings.TrimSpace(input), false)
}

// SanitizeEmail lowercases and strips markup and control characters
func SanitizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	email = stripHTML(email)
	return removeControlChars(email, false)
}

// SanitizeText is SanitizeString for multi-line input; newlines and tabs survive.
func SanitizeText(input string) string {
	return removeControlChars(strings.TrimSpace(input), true)
}

func stripHTML(input string) string {
	return htmlTag.ReplaceAllString(input, "")
}

func removeControlChars(input string, multiline bool) string {
	var result strings.Builder
	for _, r := range input {
		switch {
		case unicode.IsPrint(r):
			result.WriteRune(r)
		case multiline && (r == '\n' || r == '\t' || r == '\r'):
			result.WriteRune(r)
		case !multiline && unicode.IsSpace(r):
			result.WriteRune(' ')
		}
	}
	return result.String()
}
