package conversation

import (
	"testing"

	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/stretchr/testify/require"
)

func TestSeedRebindsOwner(t *testing.T) {
	owner := identity.User{ID: "sara@x.com", Name: "sara", Email: "sara@x.com"}
	users, chats := Seed(owner)

	require.Len(t, users, 6)
	require.Equal(t, owner, users[0])
	require.Len(t, chats, 5)
	for _, c := range chats {
		require.True(t, c.HasParticipant("sara@x.com"), c.ID)
		require.False(t, c.HasParticipant(SeedOwnerID), c.ID)
	}
	require.Equal(t, "sara@x.com", chats[0].Messages[1].SenderID)
}

func TestSeedDoesNotAliasPackageData(t *testing.T) {
	_, chats := Seed(identity.User{ID: "a@x.com"})
	chats[0].Messages[0].Text = "changed"

	_, again := Seed(identity.User{ID: "b@x.com"})
	require.Equal(t, "أهلاً! كيف حالك؟", again[0].Messages[0].Text)
	require.Equal(t, "b@x.com", again[0].ParticipantIDs[0])
}

func TestSeededStoreResolvesEveryChat(t *testing.T) {
	owner := identity.User{ID: "u9", Name: "X", Email: "u9@x.com"}
	s := NewSeededStore(owner, fixedFormat{}, nil)

	chats := s.ListChats("u9")
	require.Len(t, chats, 5)
	for _, c := range chats {
		p, ok := s.Participant(c, "u9")
		require.True(t, ok, c.ID)
		require.NotEqual(t, "u9", p.ID)
	}
}

func TestLastMessage(t *testing.T) {
	_, chats := Seed(DefaultOwner)

	last, ok := chats[0].LastMessage()
	require.True(t, ok)
	require.Equal(t, "msg4", last.ID)

	_, ok = Chat{}.LastMessage()
	require.False(t, ok)
}
