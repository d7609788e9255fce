package activity

import (
	"context"
	"testing"
	"time"

	"github.com/matheus3301/flowchat/internal/bus"
	"github.com/matheus3301/flowchat/internal/conversation"
	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/matheus3301/flowchat/internal/nav"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timeout waiting for condition")
}

func TestRecorderCountsEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	b := bus.New()
	r := NewRecorder(b, zap.New(core))
	r.Start(context.Background())
	defer r.Stop()

	b.Emit(bus.KindSignedIn, identity.User{ID: "u9"})
	b.Emit(bus.KindPageChanged, nav.Change{From: nav.Auth, To: nav.Chats})
	b.Emit(bus.KindMessageSent, conversation.Sent{
		ChatID:  "chat1",
		Message: conversation.Message{ID: "m1", Text: "secret words"},
	})
	b.Emit(bus.KindMessagesRead, conversation.Read{ChatID: "chat1", MessageIDs: []string{"a", "b"}})

	waitFor(t, func() bool { return r.Stats().MessagesRead == 2 })

	got := r.Stats()
	want := Stats{MessagesSent: 1, MessagesRead: 2, PageChanges: 1, SignIns: 1}
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}

	for _, e := range logs.All() {
		for _, f := range e.Context {
			if f.String == "secret words" {
				t.Errorf("message text logged in %q", e.Message)
			}
		}
	}
	if n := logs.FilterMessage("message sent").Len(); n != 1 {
		t.Errorf("got %d 'message sent' records, want 1", n)
	}
}

func TestStopWithoutStart(t *testing.T) {
	r := NewRecorder(bus.New(), zap.NewNop())
	r.Stop()
}
