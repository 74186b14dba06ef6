package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func TestParseLogLevel(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  log.Level
	}{
		{name: "empty defaults to info", input: "", want: log.InfoLevel},
		{name: "debug", input: "debug", want: log.DebugLevel},
		{name: "error", input: "error", want: log.ErrorLevel},
		{name: "unknown defaults to info", input: "chatty", want: log.InfoLevel},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoggers(t *testing.T) {
	t.Run("NewLogger writes to the given writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		WithLogger(logger, "component", "test").Info("hello")

		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("expected message in output, got %q", buf.String())
		}
		if !strings.Contains(buf.String(), "component=test") {
			t.Errorf("expected child logger fields in output, got %q", buf.String())
		}
	})

	t.Run("SetLogLevel filters lower levels", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.WarnLevel)
		logger.Info("quiet")

		if buf.Len() != 0 {
			t.Errorf("expected no output below warn, got %q", buf.String())
		}
	})

	t.Run("NewFileLogger creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "app.log")
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}
		logger.Info("to file")

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if !strings.Contains(string(data), "to file") {
			t.Errorf("expected message in log file, got %q", string(data))
		}
	})
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("expected a valid UUID, got %q: %v", id, err)
	}
	if id == GenerateID() {
		t.Error("expected distinct IDs")
	}
}

func TestMarshalJSON(t *testing.T) {
	t.Run("compact", func(t *testing.T) {
		data, err := MarshalJSON(map[string]int{"a": 1}, false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(data) != "{\"a\":1}\n" {
			t.Errorf("unexpected output %q", data)
		}
	})

	t.Run("pretty", func(t *testing.T) {
		data, _ := MarshalJSON(map[string]int{"a": 1}, true)
		if string(data) != "{\n  \"a\": 1\n}\n" {
			t.Errorf("unexpected output %q", data)
		}
	})

	t.Run("unsupported value", func(t *testing.T) {
		if _, err := MarshalJSON(make(chan int), false); err == nil {
			t.Error("expected error for channel value")
		}
	})
}
