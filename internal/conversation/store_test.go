package conversation

import (
	"fmt"
	"testing"
	"time"

	"github.com/matheus3301/flowchat/internal/bus"
	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/stretchr/testify/require"
)

type fixedFormat struct{}

func (fixedFormat) ShortTime(t time.Time) string { return t.Format("15:04") }

func newTestStore(t *testing.T, b *bus.Bus) *Store {
	t.Helper()
	s := NewSeededStore(DefaultOwner, fixedFormat{}, b)
	s.now = func() time.Time { return time.Date(2026, 10, 15, 9, 45, 0, 0, time.UTC) }
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("test-%d", n)
	}
	return s
}

func messageCounts(s *Store) map[string]int {
	counts := map[string]int{}
	for _, c := range s.ListChats(SeedOwnerID) {
		counts[c.ID] = len(c.Messages)
	}
	return counts
}

func TestListChatsKeepsSeedOrder(t *testing.T) {
	s := newTestStore(t, nil)

	chats := s.ListChats(SeedOwnerID)
	ids := make([]string, len(chats))
	for i, c := range chats {
		ids[i] = c.ID
	}
	require.Equal(t, []string{"chat1", "chat2", "chat3", "chat4", "chat5"}, ids)
	require.Equal(t, 2, chats[0].UnreadCount)
}

func TestListChatsOnlyViewerChats(t *testing.T) {
	s := newTestStore(t, nil)

	chats := s.ListChats("user3")
	require.Len(t, chats, 1)
	require.Equal(t, "chat2", chats[0].ID)

	require.Empty(t, s.ListChats("stranger"))
}

func TestListChatsReturnsCopies(t *testing.T) {
	s := newTestStore(t, nil)

	chats := s.ListChats(SeedOwnerID)
	chats[0].Messages[0].Text = "tampered"
	chats[0].ParticipantIDs[1] = "nobody"

	c, ok := s.Chat("chat1")
	require.True(t, ok)
	require.Equal(t, "أهلاً! كيف حالك؟", c.Messages[0].Text)
	require.Equal(t, []string{SeedOwnerID, "user2"}, c.ParticipantIDs)
}

func TestParticipant(t *testing.T) {
	s := newTestStore(t, nil)
	c, ok := s.Chat("chat1")
	require.True(t, ok)

	p, ok := s.Participant(c, SeedOwnerID)
	require.True(t, ok)
	require.Equal(t, "user2", p.ID)
	require.Equal(t, "علياء", p.Name)

	p, ok = s.Participant(c, "user2")
	require.True(t, ok)
	require.Equal(t, SeedOwnerID, p.ID)
}

func TestParticipantNotFound(t *testing.T) {
	s := newTestStore(t, nil)

	tests := []struct {
		name   string
		chat   Chat
		viewer string
	}{
		{"viewer not in chat", Chat{ID: "c", ParticipantIDs: []string{"user2", "user3"}}, SeedOwnerID},
		{"unknown other user", Chat{ID: "c", ParticipantIDs: []string{SeedOwnerID, "ghost"}}, SeedOwnerID},
		{"chat with self", Chat{ID: "c", ParticipantIDs: []string{SeedOwnerID, SeedOwnerID}}, SeedOwnerID},
		{"no participants", Chat{ID: "c"}, SeedOwnerID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := s.Participant(tt.chat, tt.viewer)
			require.False(t, ok)
		})
	}
}

func TestChatUnknown(t *testing.T) {
	s := newTestStore(t, nil)
	_, ok := s.Chat("chat99")
	require.False(t, ok)
}

func TestFilterByParticipantName(t *testing.T) {
	users := []identity.User{
		{ID: "me", Name: "Me"},
		{ID: "a", Name: "علياء"},
		{ID: "m", Name: "محمد"},
	}
	chats := []Chat{
		{ID: "c1", ParticipantIDs: []string{"me", "a"}},
		{ID: "c2", ParticipantIDs: []string{"me", "m"}},
	}
	s := NewStore(users, chats, fixedFormat{}, nil)

	got := s.Filter("me", "علي")
	require.Len(t, got, 1)
	require.Equal(t, "c1", got[0].ID)
}

func TestFilterIgnoresCase(t *testing.T) {
	users := []identity.User{{ID: "me"}, {ID: "o", Name: "Omar"}}
	s := NewStore(users, []Chat{{ID: "c", ParticipantIDs: []string{"me", "o"}}}, fixedFormat{}, nil)

	require.Len(t, s.Filter("me", "oMA"), 1)
	require.Len(t, s.Filter("me", "OMAR"), 1)
	require.Empty(t, s.Filter("me", "zed"))
}

func TestFilterEmptyTermSkipsUnrenderable(t *testing.T) {
	users := []identity.User{{ID: "me"}, {ID: "o", Name: "Omar"}}
	chats := []Chat{
		{ID: "c1", ParticipantIDs: []string{"me", "o"}},
		{ID: "c2", ParticipantIDs: []string{"me", "ghost"}},
	}
	s := NewStore(users, chats, fixedFormat{}, nil)

	got := s.Filter("me", "")
	require.Len(t, got, 1)
	require.Equal(t, "c1", got[0].ID)
	require.Len(t, s.ListChats("me"), 2)
}

func TestSendMessageAppendsToTargetOnly(t *testing.T) {
	s := newTestStore(t, nil)
	before := messageCounts(s)

	c, ok := s.SendMessage("chat2", SeedOwnerID, "  hello  ")
	require.True(t, ok)
	require.Len(t, c.Messages, before["chat2"]+1)

	msg := c.Messages[len(c.Messages)-1]
	require.Equal(t, "test-1", msg.ID)
	require.Equal(t, SeedOwnerID, msg.SenderID)
	require.Equal(t, "hello", msg.Text)
	require.Equal(t, "09:45", msg.Timestamp)
	require.False(t, msg.Read)
	require.Zero(t, c.UnreadCount)

	after := messageCounts(s)
	for id, n := range before {
		if id == "chat2" {
			require.Equal(t, n+1, after[id])
			continue
		}
		require.Equal(t, n, after[id], "chat %s changed", id)
	}
}

func TestSendMessageTwiceYieldsDistinctMessages(t *testing.T) {
	s := NewSeededStore(DefaultOwner, fixedFormat{}, nil)

	_, ok := s.SendMessage("chat3", SeedOwnerID, "same")
	require.True(t, ok)
	c, ok := s.SendMessage("chat3", SeedOwnerID, "same")
	require.True(t, ok)

	require.Len(t, c.Messages, 3)
	require.NotEqual(t, c.Messages[1].ID, c.Messages[2].ID)
	require.Equal(t, 1, c.UnreadCount)
}

func TestSendMessageRejections(t *testing.T) {
	tests := []struct {
		name   string
		chatID string
		sender string
		text   string
	}{
		{"empty text", "chat1", SeedOwnerID, ""},
		{"whitespace text", "chat1", SeedOwnerID, " \t\n "},
		{"unknown chat", "chat99", SeedOwnerID, "hi"},
		{"sender outside chat", "chat1", "user3", "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, nil)
			before := messageCounts(s)

			_, ok := s.SendMessage(tt.chatID, tt.sender, tt.text)
			require.False(t, ok)
			require.Equal(t, before, messageCounts(s))
		})
	}
}

func TestSendMessagePublishesEvent(t *testing.T) {
	b := bus.New()
	ch, unsub := b.Subscribe("chat.", 4)
	defer unsub()
	s := newTestStore(t, b)

	_, ok := s.SendMessage("chat1", SeedOwnerID, "hi")
	require.True(t, ok)

	evt := <-ch
	require.Equal(t, bus.KindMessageSent, evt.Kind)
	sent, ok := evt.Payload.(Sent)
	require.True(t, ok)
	require.Equal(t, "chat1", sent.ChatID)
	require.Equal(t, "hi", sent.Message.Text)
}

func TestMarkRead(t *testing.T) {
	s := newTestStore(t, nil)

	require.Equal(t, 2, s.MarkRead("chat1", "msg1", "msg3", "msg2"))
	require.Equal(t, 0, s.MarkRead("chat1", "msg1"))
	require.Equal(t, 0, s.MarkRead("chat99", "msg1"))

	c, _ := s.Chat("chat1")
	require.True(t, c.Messages[0].Read)
	require.True(t, c.Messages[2].Read)
	require.False(t, c.Messages[3].Read)
	require.Equal(t, 2, c.UnreadCount)
}

func TestMarkIncomingRead(t *testing.T) {
	s := newTestStore(t, nil)
	_, ok := s.SendMessage("chat1", SeedOwnerID, "outgoing")
	require.True(t, ok)

	require.Equal(t, 3, s.MarkIncomingRead("chat1", SeedOwnerID))

	c, _ := s.Chat("chat1")
	last, _ := c.LastMessage()
	require.False(t, last.Read, "own message must stay unread until the peer reads it")
	for _, m := range c.Messages[:4] {
		require.True(t, m.Read, m.ID)
	}
}

func TestPutUserUpdatesParticipant(t *testing.T) {
	s := newTestStore(t, nil)
	u, ok := s.User("user2")
	require.True(t, ok)
	u.Name = "Alia"
	s.PutUser(u)

	c, _ := s.Chat("chat1")
	p, ok := s.Participant(c, SeedOwnerID)
	require.True(t, ok)
	require.Equal(t, "Alia", p.Name)
}
