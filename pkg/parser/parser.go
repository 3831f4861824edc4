package parser

import (
	"fmt"
	"strings"

	"github.com/coursecat/coursecat/pkg/course"
)

// Split breaks line into fields on delim. A field may wrap the delimiter in
// single or double quotes; a quote of one kind is literal inside a segment
// opened by the other kind. Quote characters are stripped from the produced
// fields. Consecutive delimiters are coalesced, so doubled delimiters never
// yield empty fields. An empty line yields an empty slice.
func Split(line string, delim byte) []string {
	fields := []string{}
	length := len(line)
	start := 0

	for start < length {
		index := start
		inQuote := false
		var quoteChar byte

		// find the next delimiter outside any quoted segment
		for index < length {
			c := line[index]
			if c == '"' || c == '\'' {
				if !inQuote {
					inQuote = true
					quoteChar = c
				} else if c == quoteChar {
					inQuote = false
					quoteChar = 0
				}
			} else if c == delim && !inQuote {
				break
			}
			index++
		}

		fields = append(fields, stripQuotes(line[start:index]))

		// skip the delimiter plus any immediately following ones
		start = index + 1
		for start < length && line[start] == delim {
			start++
		}
	}

	return fields
}

// Parse splits a single file line and builds a course from the fields.
// Failures carry the 1-based line number for diagnostics and are expected to
// be non-fatal to the surrounding ingest.
func Parse(line string, delim byte, lineNumber int) (*course.Course, error) {
	fields := Split(line, delim)

	if len(fields) < 2 {
		return nil, fmt.Errorf("invalid line format at line %d", lineNumber)
	}

	c, err := course.Build(fields)
	if err != nil {
		return nil, fmt.Errorf("failed building course at line %d: %w", lineNumber, err)
	}

	return c, nil
}

func stripQuotes(s string) string {
	if !strings.ContainsAny(s, `"'`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '"' && s[i] != '\'' {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
