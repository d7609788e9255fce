package ui

import (
	"errors"
	"testing"
	"time"
)

func TestFlashExpires(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	f := NewFlashModel()
	f.now = func() time.Time { return now }

	if f.Current() != nil {
		t.Fatal("expected no flash before any message")
	}

	f.Info("saved")
	msg := f.Current()
	if msg == nil || msg.Text != "saved" || msg.Level != FlashInfo {
		t.Fatalf("got %+v, want info flash 'saved'", msg)
	}

	now = now.Add(5 * time.Second)
	if f.Current() != nil {
		t.Error("info flash should expire after 4s")
	}
}

func TestFlashLevels(t *testing.T) {
	f := NewFlashModel()

	f.Warn("careful")
	if got := f.Current().Level; got != FlashWarn {
		t.Errorf("level = %v, want FlashWarn", got)
	}

	f.Err(errors.New("boom"))
	msg := f.Current()
	if msg.Level != FlashErr || msg.Text != "boom" {
		t.Errorf("got %+v, want error flash 'boom'", msg)
	}
}
