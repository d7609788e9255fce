package profile

import (
	"path/filepath"
	"testing"

	"github.com/matheus3301/flowchat/internal/config"
)

func TestResolvePrecedence(t *testing.T) {
	base := t.TempDir()
	t.Setenv("FLOWCHAT_HOME", base)
	t.Setenv("FLOWCHAT_PROFILE", "")

	if got := Resolve(""); got != DefaultName {
		t.Errorf("Resolve() without config = %q, want %q", got, DefaultName)
	}

	if err := config.Save(filepath.Join(base, "config.toml"), &config.Config{DefaultProfile: "work"}); err != nil {
		t.Fatal(err)
	}
	if got := Resolve(""); got != "work" {
		t.Errorf("Resolve() with config = %q, want work", got)
	}

	t.Setenv("FLOWCHAT_PROFILE", "env")
	if got := Resolve(""); got != "env" {
		t.Errorf("Resolve() with env = %q, want env", got)
	}

	if got := Resolve("flag"); got != "flag" {
		t.Errorf("Resolve(flag) = %q, want flag", got)
	}
}
