package conversation

import "slices"

// Message is one entry of a chat. Only Read ever changes after creation.
type Message struct {
	ID       string
	SenderID string
	Text     string
	// Timestamp is already formatted for display.
	Timestamp string
	Read      bool
}

// Chat is a two-party conversation. Messages are oldest first.
type Chat struct {
	ID             string
	ParticipantIDs []string
	Messages       []Message
	// UnreadCount is a stored hint, not derived from Message.Read.
	UnreadCount int
}

// HasParticipant reports whether userID takes part in the chat.
func (c Chat) HasParticipant(userID string) bool {
	return slices.Contains(c.ParticipantIDs, userID)
}

// LastMessage returns the newest message of the chat.
func (c Chat) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

func (c Chat) clone() Chat {
	c.ParticipantIDs = append([]string(nil), c.ParticipantIDs...)
	c.Messages = append([]Message(nil), c.Messages...)
	return c
}
