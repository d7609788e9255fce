package conversation

import (
	"github.com/matheus3301/flowchat/internal/bus"
	"github.com/matheus3301/flowchat/internal/identity"
)

// SeedOwnerID is the participant id of the signed-in user in the seed data.
const SeedOwnerID = "user1"

// DefaultOwner is the seeded current user. Login results are merged over it.
var DefaultOwner = identity.User{
	ID:        SeedOwnerID,
	Name:      "المستخدم الحالي",
	AvatarURL: identity.AvatarURL("user1"),
	Status:    "متصل الآن",
	Online:    true,
	Email:     "user@example.com",
}

var seedContacts = []identity.User{
	{ID: "user2", Name: "علياء", AvatarURL: identity.AvatarURL("user2"), Status: "مشغولة", Online: true, Email: "alia@example.com"},
	{ID: "user3", Name: "محمد", AvatarURL: identity.AvatarURL("user3"), Status: "في العمل", Online: false, Email: "mohammed@example.com"},
	{ID: "user4", Name: "سارة", AvatarURL: identity.AvatarURL("user4"), Status: "متاح للدردشة", Online: true, Email: "sara@example.com"},
	{ID: "user5", Name: "خالد", AvatarURL: identity.AvatarURL("user5"), Status: "نائم", Online: false, Email: "khaled@example.com"},
	{ID: "user6", Name: "فاطمة", AvatarURL: identity.AvatarURL("user6"), Status: "في إجازة", Online: true, Email: "fatima@example.com"},
}

var seedChats = []Chat{
	{
		ID:             "chat1",
		ParticipantIDs: []string{"user1", "user2"},
		UnreadCount:    2,
		Messages: []Message{
			{ID: "msg1", SenderID: "user2", Text: "أهلاً! كيف حالك؟", Timestamp: "10:30 صباحًا"},
			{ID: "msg2", SenderID: "user1", Text: "أهلاً علياء! أنا بخير، شكرًا لك. ماذا عنك؟", Timestamp: "10:31 صباحًا", Read: true},
			{ID: "msg3", SenderID: "user2", Text: "بخير الحمد لله. هل أنت متفرغ اليوم؟", Timestamp: "10:32 صباحًا"},
			{ID: "msg4", SenderID: "user2", Text: "لدي سؤال بخصوص المشروع.", Timestamp: "10:32 صباحًا"},
		},
	},
	{
		ID:             "chat2",
		ParticipantIDs: []string{"user1", "user3"},
		Messages: []Message{
			{ID: "msg5", SenderID: "user1", Text: "مرحبًا محمد، هل استلمت البريد الإلكتروني الذي أرسلته؟", Timestamp: "9:15 صباحًا", Read: true},
			{ID: "msg6", SenderID: "user3", Text: "نعم، استلمته. سأقوم بالرد عليه قريبًا.", Timestamp: "9:20 صباحًا", Read: true},
		},
	},
	{
		ID:             "chat3",
		ParticipantIDs: []string{"user1", "user4"},
		UnreadCount:    1,
		Messages: []Message{
			{ID: "msg7", SenderID: "user4", Text: "مساء الخير!", Timestamp: "8:00 مساءً"},
		},
	},
	{
		ID:             "chat4",
		ParticipantIDs: []string{"user1", "user5"},
		Messages: []Message{
			{ID: "msg8", SenderID: "user1", Text: "أتمنى لك ليلة سعيدة يا خالد.", Timestamp: "11:00 مساءً", Read: true},
		},
	},
	{
		ID:             "chat5",
		ParticipantIDs: []string{"user1", "user6"},
		Messages: []Message{
			{ID: "msg9", SenderID: "user6", Text: "شكرًا على المساعدة اليوم!", Timestamp: "4:30 عصرًا", Read: true},
			{ID: "msg10", SenderID: "user1", Text: "على الرحب والسعة!", Timestamp: "4:31 عصرًا", Read: true},
		},
	},
}

// Seed returns the demo users and chats with the seeded current user
// replaced by owner, so every seeded chat belongs to whoever signed in.
func Seed(owner identity.User) ([]identity.User, []Chat) {
	users := append([]identity.User{owner}, seedContacts...)

	chats := make([]Chat, 0, len(seedChats))
	for _, c := range seedChats {
		c = c.clone()
		for i, id := range c.ParticipantIDs {
			if id == SeedOwnerID {
				c.ParticipantIDs[i] = owner.ID
			}
		}
		for i := range c.Messages {
			if c.Messages[i].SenderID == SeedOwnerID {
				c.Messages[i].SenderID = owner.ID
			}
		}
		chats = append(chats, c)
	}
	return users, chats
}

// NewSeededStore builds a store holding the demo data for owner.
func NewSeededStore(owner identity.User, format TimeFormatter, b *bus.Bus) *Store {
	users, chats := Seed(owner)
	return NewStore(users, chats, format, b)
}
