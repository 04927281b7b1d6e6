package markdown

import "strings"

// ReplaceBlock swaps the text between the begin and end markers for
// generated. When the markers are missing the block is appended after the
// existing body, separated by a blank line.
func ReplaceBlock(body, begin, end, generated string) string {
	block := begin + "\n" + strings.TrimRight(generated, "\n") + "\n" + end

	if i := strings.Index(body, begin); i >= 0 {
		if j := strings.Index(body[i:], end); j >= 0 {
			return body[:i] + block + body[i+j+len(end):]
		}
	}

	switch {
	case strings.TrimSpace(body) == "":
		return block + "\n"
	case strings.HasSuffix(body, "\n"):
		return body + "\n" + block + "\n"
	default:
		return body + "\n\n" + block + "\n"
	}
}
