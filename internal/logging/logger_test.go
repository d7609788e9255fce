package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesJSONWithProfileField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flowchat.log")

	logger, err := New(Options{Path: path, Profile: "work", Level: "debug"})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := strings.TrimSpace(string(data))
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("log line is not JSON: %q", line)
	}
	if rec["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", rec["msg"])
	}
	if rec["profile"] != "work" {
		t.Errorf("profile = %v, want work", rec["profile"])
	}
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowchat.log")

	logger, err := New(Options{Path: path, Level: "chatty"})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("dropped")
	logger.Info("kept")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "dropped") {
		t.Error("debug record written at info level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("info record missing")
	}
}
