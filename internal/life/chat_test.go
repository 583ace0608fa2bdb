package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mini-life/internal/person"
)

func TestChatCreatesThread(t *testing.T) {
	s := newTestSim(1)
	g, id := withContact(s, person.Traits{Friendliness: 80, Temperament: person.Cheerful}, 50)

	next, reply, err := s.Chat(g, id, "hey, how was work today?")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Response)

	thread, ok := next.Threads[id]
	require.True(t, ok)
	require.Len(t, thread.Messages, 2)
	assert.Equal(t, "player", thread.Messages[0].Sender)
	assert.Equal(t, "hey, how was work today?", thread.Messages[0].Text)
	assert.Equal(t, "npc", thread.Messages[1].Sender)
	assert.Equal(t, reply.Response, thread.Messages[1].Text)
}

func TestChatAppendsToExistingThread(t *testing.T) {
	s := newTestSim(2)
	g, id := withContact(s, person.Traits{Friendliness: 80}, 50)

	g1, _, err := s.Chat(g, id, "hello!")
	require.NoError(t, err)
	g2, _, err := s.Chat(g1, id, "what's new with the family?")
	require.NoError(t, err)

	assert.Len(t, g2.Threads[id].Messages, 4)
	assert.Len(t, g1.Threads[id].Messages, 2, "earlier snapshot untouched")
}

func TestChatMovesRelationLevel(t *testing.T) {
	s := newTestSim(3)
	g, id := withContact(s, person.Traits{Friendliness: 80}, 50)

	next, reply, err := s.Chat(g, id, "that was awesome")
	require.NoError(t, err)
	got := next.Relationships[len(next.Relationships)-1].Level
	assert.Equal(t, 50+reply.RelationChange, got)
	assert.Equal(t, 50, g.Relationships[len(g.Relationships)-1].Level)
}

func TestChatMoodStaysBounded(t *testing.T) {
	s := newTestSim(4)
	g, id := withContact(s, person.Traits{Friendliness: 80}, 90)

	for i := 0; i < 20; i++ {
		next, _, err := s.Chat(g, id, "that was awesome")
		require.NoError(t, err)
		g = next
	}
	mood := g.Threads[id].Mood
	assert.GreaterOrEqual(t, mood, -10)
	assert.LessOrEqual(t, mood, 10)
}

func TestChatUnknownContact(t *testing.T) {
	s := newTestSim(5)
	g, _ := withContact(s, person.Traits{}, 50)
	_, _, err := s.Chat(g, "ghost", "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChatDeadGuard(t *testing.T) {
	s := newTestSim(6)
	g, id := withContact(s, person.Traits{}, 50)
	g.Alive = false
	_, _, err := s.Chat(g, id, "hello")
	assert.ErrorIs(t, err, ErrDeadCharacter)
}
