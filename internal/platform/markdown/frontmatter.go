// Package markdown reads and writes notes made of a YAML frontmatter block
// followed by a Markdown body.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	fence      = "---"
	openFence  = fence + "\n"
	closeFence = "\n" + fence + "\n"
)

// SplitFrontmatter separates the frontmatter from the body. A note without
// frontmatter yields an empty map and the whole content as body.
func SplitFrontmatter(content string) (map[string]any, string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, openFence) {
		return map[string]any{}, content, nil
	}
	rest := content[len(openFence):]
	var raw, body string
	switch {
	case strings.HasPrefix(rest, openFence):
		body = rest[len(openFence):]
	default:
		idx := strings.Index(rest, closeFence)
		if idx < 0 {
			return nil, "", fmt.Errorf("invalid frontmatter: missing closing fence")
		}
		raw, body = rest[:idx], rest[idx+len(closeFence):]
	}

	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, "", fmt.Errorf("decode frontmatter: %w", err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, body, nil
}

// RenderFrontmatter writes meta as YAML between fences, then a blank line,
// then body.
func RenderFrontmatter(meta map[string]any, body string) (string, error) {
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(openFence)
	buf.Write(raw)
	buf.WriteString(openFence)
	if !strings.HasPrefix(body, "\n") {
		buf.WriteByte('\n')
	}
	buf.WriteString(body)
	return buf.String(), nil
}
