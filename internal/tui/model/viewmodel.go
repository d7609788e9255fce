// Package model turns application state into the rows and lines the views
// render.
package model

import (
	"github.com/matheus3301/flowchat/internal/conversation"
	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/matheus3301/flowchat/internal/state"
)

// Translator resolves UI strings.
type Translator interface {
	T(id string) string
}

// ChatRow is one entry of the chat list.
type ChatRow struct {
	ChatID  string
	Name    string
	Preview string
	Time    string
	Unread  int
	Online  bool
}

// Line is one message of an open conversation.
type Line struct {
	ID     string
	Sender string
	Text   string
	Time   string
	Mine   bool
	Read   bool
}

// Thread is an open conversation.
type Thread struct {
	ChatID      string
	Participant identity.User
	Lines       []Line
}

// ViewModel exposes the signed-in user's conversations to the views. It is
// only touched from the UI event loop.
type ViewModel struct {
	app *state.App
	tr  Translator

	ActiveChatID string
	Filter       string
}

// NewViewModel creates a view model over app.
func NewViewModel(app *state.App, tr Translator) *ViewModel {
	return &ViewModel{app: app, tr: tr}
}

func (vm *ViewModel) session() (identity.User, *conversation.Store, bool) {
	u, ok := vm.app.CurrentUser()
	if !ok {
		return identity.User{}, nil, false
	}
	s, ok := vm.app.Chats()
	return u, s, ok
}

// Rows returns the chat list for the current filter. Chats whose other
// participant cannot be resolved are left out.
func (vm *ViewModel) Rows() []ChatRow {
	u, s, ok := vm.session()
	if !ok {
		return nil
	}

	var rows []ChatRow
	for _, c := range s.Filter(u.ID, vm.Filter) {
		p, ok := s.Participant(c, u.ID)
		if !ok {
			continue
		}
		row := ChatRow{
			ChatID: c.ID,
			Name:   p.Name,
			Unread: c.UnreadCount,
			Online: p.Online,
		}
		if last, ok := c.LastMessage(); ok {
			row.Preview = last.Text
			row.Time = last.Timestamp
			if last.SenderID == u.ID {
				row.Preview = vm.tr.T("thread.you") + ": " + last.Text
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Summary returns the header data for the signed-in user.
func (vm *ViewModel) Summary() (chats, unread int) {
	u, s, ok := vm.session()
	if !ok {
		return 0, 0
	}
	list := s.ListChats(u.ID)
	for _, c := range list {
		unread += c.UnreadCount
	}
	return len(list), unread
}

// Open makes chatID the active conversation and marks the incoming messages
// as read.
func (vm *ViewModel) Open(chatID string) (Thread, bool) {
	u, s, ok := vm.session()
	if !ok {
		return Thread{}, false
	}
	if _, ok := s.Chat(chatID); !ok {
		return Thread{}, false
	}
	vm.ActiveChatID = chatID
	s.MarkIncomingRead(chatID, u.ID)
	return vm.Thread()
}

// Close leaves the active conversation.
func (vm *ViewModel) Close() {
	vm.ActiveChatID = ""
}

// Thread returns the active conversation.
func (vm *ViewModel) Thread() (Thread, bool) {
	u, s, ok := vm.session()
	if !ok || vm.ActiveChatID == "" {
		return Thread{}, false
	}
	c, ok := s.Chat(vm.ActiveChatID)
	if !ok {
		return Thread{}, false
	}
	p, ok := s.Participant(c, u.ID)
	if !ok {
		return Thread{}, false
	}

	t := Thread{ChatID: c.ID, Participant: p, Lines: make([]Line, 0, len(c.Messages))}
	for _, m := range c.Messages {
		l := Line{
			ID:     m.ID,
			Sender: p.Name,
			Text:   m.Text,
			Time:   m.Timestamp,
			Mine:   m.SenderID == u.ID,
			Read:   m.Read,
		}
		if l.Mine {
			l.Sender = vm.tr.T("thread.you")
		}
		t.Lines = append(t.Lines, l)
	}
	return t, true
}

// Send posts text to the active conversation as the signed-in user. It
// reports false when nothing was sent.
func (vm *ViewModel) Send(text string) bool {
	u, s, ok := vm.session()
	if !ok || vm.ActiveChatID == "" {
		return false
	}
	_, ok = s.SendMessage(vm.ActiveChatID, u.ID, text)
	return ok
}
