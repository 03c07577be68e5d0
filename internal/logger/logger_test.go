package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure(t *testing.T) {
	tests := []struct {
		level, format string
		wantLevel     logrus.Level
		wantJSON      bool
	}{
		{"", "", logrus.InfoLevel, false},
		{"debug", "text", logrus.DebugLevel, false},
		{"warn", "JSON", logrus.WarnLevel, true},
		{"nonsense", "json", logrus.InfoLevel, true},
	}

	for _, tt := range tests {
		l := logrus.New()
		Configure(l, tt.level, tt.format)
		if l.GetLevel() != tt.wantLevel {
			t.Errorf("Configure(%q, %q) level = %v, want %v", tt.level, tt.format, l.GetLevel(), tt.wantLevel)
		}
		_, isJSON := l.Formatter.(*logrus.JSONFormatter)
		if isJSON != tt.wantJSON {
			t.Errorf("Configure(%q, %q) json formatter = %v, want %v", tt.level, tt.format, isJSON, tt.wantJSON)
		}
	}
}

func TestInitWritesToFile(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	path := filepath.Join(t.TempDir(), "game.log")
	closeLog, err := Init(path)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	Log.WithField("room_count", 3).Info("dungeon ready")
	if err := closeLog(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(content), "dungeon ready") {
		t.Errorf("log file missing message, got %q", content)
	}
	if !strings.Contains(string(content), "room_count=3") {
		t.Errorf("log file missing field, got %q", content)
	}
}

func TestInitBadPath(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	if _, err := Init(filepath.Join(t.TempDir(), "missing", "game.log")); err == nil {
		t.Error("Init() with missing directory should fail")
	}
	if Log != prev {
		t.Error("Init() failure should leave the logger unchanged")
	}
}
