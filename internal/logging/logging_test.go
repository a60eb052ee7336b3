package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown", "path", "items/apple.json")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged without verbose: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("info message missing: %q", out)
	}
	if !strings.Contains(out, "items/apple.json") {
		t.Errorf("key/value missing: %q", out)
	}
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Debug("details")
	if !strings.Contains(buf.String(), "details") {
		t.Errorf("debug message missing in verbose mode: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic.
	Discard().Warn("nothing")
}
