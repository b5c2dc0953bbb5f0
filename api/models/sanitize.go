package models

import (
	"html"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes HTML tags from free-text input before it is persisted.
// The frontend renders these fields as markup-free text, so anything
// tag-shaped is noise at best and stored XSS at worst.
func StripTags(s string) string {
	stripped := tagPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(stripped)
}

// EscapeText HTML-escapes input that must keep its literal characters.
func EscapeText(s string) string {
	return html.EscapeString(s)
}
