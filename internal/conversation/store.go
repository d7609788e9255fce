// Package conversation holds the chats of the signed-in user and the rules
// for reading and appending to them.
package conversation

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/flowchat/internal/bus"
	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// TimeFormatter renders message timestamps for display.
type TimeFormatter interface {
	ShortTime(t time.Time) string
}

// Sent is the payload of bus.KindMessageSent.
type Sent struct {
	ChatID  string
	Message Message
}

// Read is the payload of bus.KindMessagesRead.
type Read struct {
	ChatID     string
	MessageIDs []string
}

// Store owns the chats of one session. It is not safe for concurrent use:
// callers drive it from a single UI event loop.
type Store struct {
	users map[string]identity.User
	chats []*Chat

	format TimeFormatter
	bus    *bus.Bus
	now    func() time.Time
	newID  func() string
}

// NewStore creates a store over users and chats. Chats keep the given order.
func NewStore(users []identity.User, chats []Chat, format TimeFormatter, b *bus.Bus) *Store {
	s := &Store{
		users:  make(map[string]identity.User, len(users)),
		format: format,
		bus:    b,
		now:    time.Now,
		newID:  func() string { return "msg-" + uuid.NewString() },
	}
	for _, u := range users {
		s.users[u.ID] = u
	}
	for _, c := range chats {
		c := c.clone()
		s.chats = append(s.chats, &c)
	}
	return s
}

// User looks up a user by id.
func (s *Store) User(id string) (identity.User, bool) {
	u, ok := s.users[id]
	return u, ok
}

// PutUser adds or replaces a user record, e.g. after a profile edit.
func (s *Store) PutUser(u identity.User) {
	s.users[u.ID] = u
}

// Chat returns a copy of the chat with the given id.
func (s *Store) Chat(chatID string) (Chat, bool) {
	c := s.find(chatID)
	if c == nil {
		return Chat{}, false
	}
	return c.clone(), true
}

// ListChats returns copies of every chat viewerID takes part in, in store order.
func (s *Store) ListChats(viewerID string) []Chat {
	visible := lo.Filter(s.chats, func(c *Chat, _ int) bool {
		return c.HasParticipant(viewerID)
	})
	return lo.Map(visible, func(c *Chat, _ int) Chat {
		return c.clone()
	})
}

// Participant resolves the other party of chat relative to viewerID. It
// reports false when viewerID is not in the chat, the chat does not have
// exactly one other participant, or that user is unknown.
func (s *Store) Participant(chat Chat, viewerID string) (identity.User, bool) {
	if !chat.HasParticipant(viewerID) {
		return identity.User{}, false
	}
	others := lo.Without(chat.ParticipantIDs, viewerID)
	if len(others) != 1 {
		return identity.User{}, false
	}
	return s.User(others[0])
}

// Filter returns the renderable chats of viewerID whose participant name
// contains term, ignoring case. An empty term matches every renderable chat.
func (s *Store) Filter(viewerID, term string) []Chat {
	needle := fold(strings.TrimSpace(term))
	return lo.Filter(s.ListChats(viewerID), func(c Chat, _ int) bool {
		p, ok := s.Participant(c, viewerID)
		if !ok {
			return false
		}
		return strings.Contains(fold(p.Name), needle)
	})
}

// SendMessage appends a message from senderID to the chat. It reports false
// and changes nothing when the trimmed text is empty, the chat is unknown or
// senderID is not one of its participants. The unread counter is left as is.
func (s *Store) SendMessage(chatID, senderID, text string) (Chat, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Chat{}, false
	}
	c := s.find(chatID)
	if c == nil || !c.HasParticipant(senderID) {
		return Chat{}, false
	}

	msg := Message{
		ID:        s.newID(),
		SenderID:  senderID,
		Text:      text,
		Timestamp: s.format.ShortTime(s.now()),
	}
	c.Messages = append(c.Messages, msg)
	s.bus.Emit(bus.KindMessageSent, Sent{ChatID: chatID, Message: msg})
	return c.clone(), true
}

// MarkRead flips the read flag of the given messages and returns how many
// changed. Read messages stay read; the unread counter is not touched.
func (s *Store) MarkRead(chatID string, messageIDs ...string) int {
	c := s.find(chatID)
	if c == nil {
		return 0
	}
	var changed []string
	for i := range c.Messages {
		m := &c.Messages[i]
		if m.Read || !lo.Contains(messageIDs, m.ID) {
			continue
		}
		m.Read = true
		changed = append(changed, m.ID)
	}
	if len(changed) > 0 {
		s.bus.Emit(bus.KindMessagesRead, Read{ChatID: chatID, MessageIDs: changed})
	}
	return len(changed)
}

// MarkIncomingRead marks every message in the chat not sent by viewerID as read.
func (s *Store) MarkIncomingRead(chatID, viewerID string) int {
	c := s.find(chatID)
	if c == nil {
		return 0
	}
	incoming := lo.FilterMap(c.Messages, func(m Message, _ int) (string, bool) {
		return m.ID, m.SenderID != viewerID && !m.Read
	})
	return s.MarkRead(chatID, incoming...)
}

func (s *Store) find(chatID string) *Chat {
	c, ok := lo.Find(s.chats, func(c *Chat) bool { return c.ID == chatID })
	if !ok {
		return nil
	}
	return c
}

func fold(s string) string {
	return cases.Fold().String(s)
}
