package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"Warning", LevelWarn, true},
		{"error", LevelError, true},
		{"verbose", LevelInfo, false},
		{"", LevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := LookupLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ParseLevel(tt.in) != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, ParseLevel(tt.in), tt.want)
		}
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelWarn)
	log.SetOutput(&buf)

	log.Debug("hidden %d", 1)
	log.Info("hidden %d", 2)
	log.Warn("shown %d", 3)
	log.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 3") || !strings.Contains(out, "[ERROR] shown 4") {
		t.Errorf("output missing messages: %q", out)
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelInfo)
	root.SetOutput(&buf)

	child := root.With("catalog")
	child.Info("loaded %d stars", 42)
	root.SetLevel(LevelError)
	child.Info("suppressed")

	out := buf.String()
	if !strings.Contains(out, "[INFO] catalog: loaded 42 stars") {
		t.Errorf("missing component prefix: %q", out)
	}
	if strings.Contains(out, "suppressed") {
		t.Errorf("child ignored the shared level: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("nothing")
	log.With("x").Error("nothing")
}
