package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Prefix: "shell", Debug: true})
	logger.Debug("window", "event", "opened", "app", "blog")

	out := buf.String()
	for _, want := range []string{"shell", "window", "event=opened", "app=blog"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestDebugLevelGated(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{})
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message written without debug: %q", buf.String())
	}
}

func TestOpenFileWithoutDebugDiscards(t *testing.T) {
	logger, closer, err := OpenFile("retrodesk", false)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	logger.Info("dropped")
}
