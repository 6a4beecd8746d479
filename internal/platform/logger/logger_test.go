package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func fixedNow() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "zoo-records", Out: &buf}).(*stdLogger)
	l.now = fixedNow

	l.With(map[string]any{"collection": "animals"}).Info("animal created", map[string]any{"id": 1})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	want := map[string]any{
		"app":        "zoo-records",
		"collection": "animals",
		"id":         float64(1),
		"level":      "info",
		"msg":        "animal created",
		"ts":         "2025-03-01T12:00:00Z",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Fatalf("field %s=%v want %v (line=%s)", k, entry[k], v, buf.String())
		}
	}
}

func TestLogger_TextSortedAndFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Out: &buf}).(*stdLogger)
	l.now = fixedNow

	l.Info("dropped", nil)
	l.Error("boom", map[string]any{"status": 500, "": "ignored"})

	line := strings.TrimSpace(buf.String())
	want := "level=error msg=boom status=500 ts=2025-03-01T12:00:00Z"
	if line != want {
		t.Fatalf("got %q want %q", line, want)
	}
}

func TestLogger_WithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Options{Level: Debug, Format: FormatJSON, Out: &buf})
	_ = parent.With(map[string]any{"child": true})

	parent.Debug("parent", nil)
	if strings.Contains(buf.String(), "child") {
		t.Fatalf("parent logger picked up child fields: %s", buf.String())
	}
}

func TestParse(t *testing.T) {
	if ParseLevel(" WARNING ") != Warn || ParseLevel("nope") != Info || ParseLevel("debug") != Debug {
		t.Fatal("unexpected level parsing")
	}
	if ParseFormat("JSON") != FormatJSON || ParseFormat("logfmt") != FormatText {
		t.Fatal("unexpected format parsing")
	}
}
