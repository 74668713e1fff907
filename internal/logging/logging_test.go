package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("warn", &buf, FileConfig{})
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "k=1") {
		t.Errorf("missing warn record: %q", out)
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ggfu.log")
	var console bytes.Buffer
	cfg := DefaultFileConfig(path)
	cfg.Compress = false

	l, err := New("debug", &console, cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("to both", "step", 3)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "to both") {
		t.Errorf("file = %q", data)
	}
	if !strings.Contains(console.String(), "step=3") {
		t.Errorf("console = %q", console.String())
	}
}

func TestFileOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "only.log")
	l, err := New("info", nil, DefaultFileConfig(path))
	if err != nil {
		t.Fatal(err)
	}
	l.Info("file only")
	l.Close()
	if data, _ := os.ReadFile(path); !strings.Contains(string(data), "file only") {
		t.Errorf("file = %q", data)
	}
}

func TestBadLevel(t *testing.T) {
	if _, err := New("verbose", nil, FileConfig{}); err == nil {
		t.Error("expected error for unknown level")
	}
}
