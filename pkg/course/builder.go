package course

import (
	"fmt"
	"strings"
)

// ValidateID reports whether s follows the course id schema: exactly four
// ASCII letters followed by three ASCII digits, e.g. "MATH201" or "CSCI101".
func ValidateID(s string) bool {
	if len(s) != 7 {
		return false
	}

	for i := 0; i < 4; i++ {
		if !isASCIIAlpha(s[i]) {
			return false
		}
	}

	for i := 4; i < 7; i++ {
		if !isASCIIDigit(s[i]) {
			return false
		}
	}

	return true
}

// ValidateText reports whether s is usable as display text: non-empty and
// free of newline, carriage return and tab bytes.
func ValidateText(s string) bool {
	if s == "" {
		return false
	}

	return !strings.ContainsAny(s, "\n\r\t")
}

// Sanitize strips quote and control characters, leaving all other bytes
// untouched.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\'', '\n', '\r', '\t':
		default:
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

// Trim removes leading and trailing whitespace. An all-whitespace input
// yields the empty string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Build constructs a Course from raw fields: id, title, then zero or more
// prerequisite ids. Every field is sanitized and trimmed first. An invalid id
// or title fails the whole record; invalid prerequisites are dropped
// individually without failing it.
func Build(fields []string) (*Course, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields")
	}

	cleaned := make([]string, 0, len(fields))
	for _, f := range fields {
		cleaned = append(cleaned, Trim(Sanitize(f)))
	}

	if len(cleaned) < 2 {
		return nil, fmt.Errorf("need at least an id and a title, got %d fields", len(cleaned))
	}

	if !ValidateID(cleaned[0]) {
		return nil, fmt.Errorf("invalid course id: %q", cleaned[0])
	}

	if !ValidateText(cleaned[1]) {
		return nil, fmt.Errorf("invalid course title: %q", cleaned[1])
	}

	var prereqs []string
	for _, p := range cleaned[2:] {
		if ValidateID(p) {
			prereqs = append(prereqs, p)
		}
	}

	return New(cleaned[0], cleaned[1], prereqs), nil
}

func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
