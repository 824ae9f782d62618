package markup

import "strings"

// Position converts a byte offset into a 1-based line and byte column.
// "\n", "\r\n" and a lone "\r" each end a line.
func Position(input string, offset int) (line, column int) {
	offset = min(max(offset, 0), len(input))
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		switch input[i] {
		case '\n':
			line++
			lineStart = i + 1
		case '\r':
			if i+1 < len(input) && input[i+1] == '\n' {
				continue
			}
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}

// Excerpt returns the line holding offset, for error messages.
func Excerpt(input string, offset int) string {
	offset = min(max(offset, 0), len(input))
	start := strings.LastIndexAny(input[:offset], "\r\n") + 1
	end := strings.IndexAny(input[offset:], "\r\n")
	if end < 0 {
		return input[start:]
	}
	return input[start : offset+end]
}
