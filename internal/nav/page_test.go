package nav

import (
	"testing"

	"github.com/matheus3301/flowchat/internal/bus"
)

func TestInitialPage(t *testing.T) {
	m := NewMachine(nil)
	if m.Current() != Booting {
		t.Errorf("initial page = %s, want BOOTING", m.Current())
	}
}

func TestValidTransitions(t *testing.T) {
	tests := []struct {
		path []Page
	}{
		{[]Page{Auth}},
		{[]Page{Chats}},
		{[]Page{Auth, Chats}},
		{[]Page{Chats, Settings}},
		{[]Page{Chats, Settings, Chats}},
		{[]Page{Chats, Auth}},
		{[]Page{Chats, Settings, Auth}},
	}
	for _, tt := range tests {
		t.Run(pathName(tt.path), func(t *testing.T) {
			m := NewMachine(nil)
			for _, p := range tt.path {
				if err := m.Go(p); err != nil {
					t.Fatalf("Go(%s) error = %v", p, err)
				}
			}
			if want := tt.path[len(tt.path)-1]; m.Current() != want {
				t.Errorf("page = %s, want %s", m.Current(), want)
			}
		})
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		setup []Page
		to    Page
	}{
		{nil, Settings},
		{[]Page{Auth}, Settings},
		{[]Page{Chats}, Booting},
	}
	for _, tt := range tests {
		t.Run(pathName(append(tt.setup, tt.to)), func(t *testing.T) {
			m := NewMachine(nil)
			for _, p := range tt.setup {
				if err := m.Go(p); err != nil {
					t.Fatal(err)
				}
			}
			before := m.Current()
			if err := m.Go(tt.to); err == nil {
				t.Errorf("Go(%s) from %s should fail", tt.to, before)
			}
			if m.Current() != before {
				t.Errorf("page changed to %s on invalid transition", m.Current())
			}
		})
	}
}

func TestSamePageIsNoop(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe("nav.", 10)
	defer unsub()

	m := NewMachine(b)
	if err := m.Go(Chats); err != nil {
		t.Fatal(err)
	}
	<-ch
	if err := m.Go(Chats); err != nil {
		t.Errorf("Go(current) error = %v", err)
	}
	select {
	case evt := <-ch:
		t.Errorf("unexpected event for no-op navigation: %v", evt)
	default:
	}
}

func TestGoEmitsEvent(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe("nav.", 10)
	defer unsub()

	m := NewMachine(b)
	if err := m.Go(Auth); err != nil {
		t.Fatal(err)
	}

	evt := <-ch
	if evt.Kind != bus.KindPageChanged {
		t.Errorf("event kind = %q, want %q", evt.Kind, bus.KindPageChanged)
	}
	change, ok := evt.Payload.(Change)
	if !ok {
		t.Fatalf("payload type = %T, want Change", evt.Payload)
	}
	if change.From != Booting || change.To != Auth {
		t.Errorf("change = %v -> %v, want BOOTING -> AUTH", change.From, change.To)
	}
}

func pathName(path []Page) string {
	name := string(Booting)
	for _, p := range path {
		name += "->" + string(p)
	}
	return name
}
