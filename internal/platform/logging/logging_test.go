package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"chorely/internal/platform/logging"
)

func TestNewJSONHandlerRespectsLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, "json")
	logger.Debug("hidden")
	logger.Info("session committed", "xp", 42)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %q", buf.String())
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if record["msg"] != "session committed" || record["xp"] != float64(42) {
		t.Fatalf("unexpected record %v", record)
	}
}

func TestOrDiscard(t *testing.T) {
	t.Parallel()
	if logging.OrDiscard(nil) == nil {
		t.Fatalf("expected fallback logger")
	}
	l := logging.New(&bytes.Buffer{}, slog.LevelInfo, "text")
	if logging.OrDiscard(l) != l {
		t.Fatalf("expected the same logger back")
	}
}
