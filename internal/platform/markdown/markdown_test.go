package markdown_test

import (
	"strings"
	"testing"

	"chorely/internal/platform/markdown"
)

func TestFrontmatterRoundTrip(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.RenderFrontmatter(map[string]any{"week_key": "2026-02-23", "total_xp": 120}, "# Week\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(rendered, "---\n") || !strings.Contains(rendered, "\n---\n\n# Week\n") {
		t.Fatalf("unexpected layout:\n%s", rendered)
	}
	meta, body, err := markdown.SplitFrontmatter(rendered)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta["week_key"] != "2026-02-23" || meta["total_xp"] != 120 {
		t.Fatalf("unexpected meta %#v", meta)
	}
	if body != "\n# Week\n" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestSplitFrontmatterEdgeCases(t *testing.T) {
	t.Parallel()
	meta, body, err := markdown.SplitFrontmatter("plain note\n")
	if err != nil || len(meta) != 0 || body != "plain note\n" {
		t.Fatalf("plain note: %v %q %v", meta, body, err)
	}
	meta, body, err = markdown.SplitFrontmatter("---\r\nid: a\r\n---\r\nbody\r\n")
	if err != nil || meta["id"] != "a" || body != "body\n" {
		t.Fatalf("crlf note: %v %q %v", meta, body, err)
	}
	meta, body, err = markdown.SplitFrontmatter("---\n---\nbody")
	if err != nil || len(meta) != 0 || body != "body" {
		t.Fatalf("empty frontmatter: %v %q %v", meta, body, err)
	}
	if _, _, err := markdown.SplitFrontmatter("---\nid: a\nbody"); err == nil {
		t.Fatalf("expected missing fence error")
	}
}

func TestReplaceBlock(t *testing.T) {
	t.Parallel()
	const begin, end = "<!-- b -->", "<!-- e -->"
	first := markdown.ReplaceBlock("# Notes\nkeep me\n", begin, end, "one")
	if first != "# Notes\nkeep me\n\n<!-- b -->\none\n<!-- e -->\n" {
		t.Fatalf("unexpected append %q", first)
	}
	second := markdown.ReplaceBlock(first+"after\n", begin, end, "two\n")
	if second != "# Notes\nkeep me\n\n<!-- b -->\ntwo\n<!-- e -->\nafter\n" {
		t.Fatalf("unexpected replace %q", second)
	}
	if got := markdown.ReplaceBlock("  \n", begin, end, "x"); got != "<!-- b -->\nx\n<!-- e -->\n" {
		t.Fatalf("unexpected empty body result %q", got)
	}
}
