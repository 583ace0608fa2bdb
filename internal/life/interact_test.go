package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mini-life/internal/person"
)

func withContact(s *Sim, traits person.Traits, level int) (*Game, string) {
	g := s.NewGame("A", "B", person.Male, "United States")
	g.Age = 20
	r := person.Relationship{
		ID: "contact-1", Name: "Sam Rivera", Type: person.RelFriend,
		Age: 20, Level: level, Alive: true, Traits: traits,
	}
	g.Relationships = append(g.Relationships, r)
	return g, r.ID
}

func TestInteractUnknownContact(t *testing.T) {
	s := newTestSim(1)
	g, _ := withContact(s, person.Traits{}, 50)
	_, _, err := s.Interact(g, "nope", "talk")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInteractDeadContact(t *testing.T) {
	s := newTestSim(2)
	g, id := withContact(s, person.Traits{}, 50)
	g.Relationships[len(g.Relationships)-1].Alive = false
	_, _, err := s.Interact(g, id, "talk")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInteractDoesNotMutateInput(t *testing.T) {
	s := newTestSim(3)
	g, id := withContact(s, person.Traits{Friendliness: 90}, 50)
	next, _, err := s.Interact(g, id, "talk")
	require.NoError(t, err)
	assert.Equal(t, 50, g.Relationships[len(g.Relationships)-1].Level)
	assert.NotEqual(t, g, next)
}

func TestTalkBranches(t *testing.T) {
	s := newTestSim(4)

	friendly, id := withContact(s, person.Traits{Friendliness: 90}, 50)
	for i := 0; i < 50; i++ {
		next, res, err := s.Interact(friendly, id, "talk")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.RelationChange, 3)
		assert.LessOrEqual(t, res.RelationChange, 8)
		assert.GreaterOrEqual(t, res.MoodChange, 2)
		assert.LessOrEqual(t, res.MoodChange, 6)
		got := next.Relationships[len(next.Relationships)-1].Level
		assert.Equal(t, 50+res.RelationChange, got)
	}

	cold, id := withContact(s, person.Traits{Friendliness: 10}, 50)
	for i := 0; i < 50; i++ {
		_, res, err := s.Interact(cold, id, "talk")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.RelationChange, -3)
		assert.LessOrEqual(t, res.RelationChange, 2)
	}
}

func TestJokeBranches(t *testing.T) {
	s := newTestSim(5)

	funny, id := withContact(s, person.Traits{Humor: 80}, 50)
	_, res, err := s.Interact(funny, id, "joke")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "laughed hard")

	serious, id := withContact(s, person.Traits{Humor: 20, Temperament: person.Serious}, 50)
	for i := 0; i < 50; i++ {
		_, res, err := s.Interact(serious, id, "joke")
		require.NoError(t, err)
		assert.Less(t, res.RelationChange, 0)
	}
}

func TestHangoutBranches(t *testing.T) {
	s := newTestSim(6)

	buddy, id := withContact(s, person.Traits{Friendliness: 70}, 60)
	for i := 0; i < 30; i++ {
		_, res, err := s.Interact(buddy, id, "hangout")
		require.NoError(t, err)
		assert.Contains(t, res.Text, "together")
		assert.GreaterOrEqual(t, res.RelationChange, 5)
		assert.LessOrEqual(t, res.RelationChange, 12)
	}

	distant, id := withContact(s, person.Traits{Friendliness: 70}, 10)
	_, res, err := s.Interact(distant, id, "hangout")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "busy")
	assert.LessOrEqual(t, res.MoodChange, -1)
}

func TestHelpLoyaltyBranch(t *testing.T) {
	s := newTestSim(7)
	loyal, id := withContact(s, person.Traits{Loyalty: 80}, 50)
	for i := 0; i < 30; i++ {
		_, res, err := s.Interact(loyal, id, "help")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.RelationChange, 8)
		assert.LessOrEqual(t, res.RelationChange, 15)
	}
}

func TestGossipBranches(t *testing.T) {
	s := newTestSim(8)

	wild, id := withContact(s, person.Traits{Temperament: person.Wild}, 50)
	_, res, err := s.Interact(wild, id, "gossip")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "tea")

	loyal, id := withContact(s, person.Traits{Loyalty: 90, Temperament: person.Calm}, 50)
	for i := 0; i < 30; i++ {
		_, res, err := s.Interact(loyal, id, "gossip")
		require.NoError(t, err)
		assert.Less(t, res.RelationChange, 0)
	}
}

func TestPartyTemperamentBranch(t *testing.T) {
	s := newTestSim(9)

	cheerful, id := withContact(s, person.Traits{Temperament: person.Cheerful}, 50)
	_, res, err := s.Interact(cheerful, id, "party")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "partied hard")

	serious, id := withContact(s, person.Traits{Temperament: person.Serious}, 50)
	_, res, err = s.Interact(serious, id, "party")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "low-key")
}

func TestUnknownActionDefaults(t *testing.T) {
	s := newTestSim(10)
	g, id := withContact(s, person.Traits{}, 50)
	for i := 0; i < 30; i++ {
		_, res, err := s.Interact(g, id, "interpretive_dance")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.RelationChange, 0)
		assert.LessOrEqual(t, res.RelationChange, 3)
	}
}

func TestInteractLevelClamped(t *testing.T) {
	s := newTestSim(11)
	g, id := withContact(s, person.Traits{Friendliness: 90}, 99)
	next, _, err := s.Interact(g, id, "talk")
	require.NoError(t, err)
	assert.Equal(t, 100, next.Relationships[len(next.Relationships)-1].Level)
}
