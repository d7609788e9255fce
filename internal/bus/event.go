package bus

import "time"

// Event kinds published inside the app. Subscribers filter by prefix, e.g.
// "chat." or "session.".
const (
	KindMessageSent   = "chat.message_sent"
	KindMessagesRead  = "chat.messages_read"
	KindPageChanged   = "nav.page_changed"
	KindSignedIn      = "session.signed_in"
	KindSignedOut     = "session.signed_out"
	KindProfileEdited = "session.profile_updated"
	KindThemeChanged  = "session.theme_changed"
)

// Event is a notification published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}
