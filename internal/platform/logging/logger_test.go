package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"WARNING": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", in, got, want)
		}
	}
}

func TestLogger_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.Info("recalculated", "season_id", "s-1", "created", 2, "error", errors.New("boom"))
	logger.Debug("hidden")

	out := buf.String()
	for _, part := range []string{`"msg":"recalculated"`, `"season_id":"s-1"`, `"created":2`, `"error":"boom"`} {
		if !strings.Contains(out, part) {
			t.Fatalf("log output %q does not contain %s", out, part)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered at info level")
	}
}

func TestWatermillAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewJSONWriter(&buf, LevelDebug).Watermill().With(watermill.LogFields{"topic": "t-1"})

	adapter.Info("message handled", watermill.LogFields{"message_uuid": "m-1"})

	out := buf.String()
	if !strings.Contains(out, `"topic":"t-1"`) || !strings.Contains(out, `"message_uuid":"m-1"`) {
		t.Fatalf("unexpected watermill log output: %s", out)
	}
}
