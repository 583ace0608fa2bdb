package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mini-life/internal/person"
)

func findByType(g *Game, want person.RelationType) *person.Relationship {
	for i := range g.Relationships {
		if g.Relationships[i].Type == want {
			return &g.Relationships[i]
		}
	}
	return nil
}

func TestDateTooYoung(t *testing.T) {
	s := newTestSim(1)
	g := s.NewGame("A", "B", person.Male, "Brazil")
	g.Age = 14
	_, err := s.Date(g)
	assert.ErrorIs(t, err, ErrRequirements)
}

func TestDateEventuallySucceeds(t *testing.T) {
	s := newTestSim(2)
	g := s.NewGame("A", "B", person.Male, "Brazil")
	g.Age = 20
	g.Stats.Looks = 70

	for i := 0; i < 50; i++ {
		next, err := s.Date(g)
		require.NoError(t, err)
		if p := findByType(next, person.RelPartner); p != nil {
			assert.Equal(t, person.Female, p.Gender)
			assert.GreaterOrEqual(t, p.Age, 15)
			assert.LessOrEqual(t, p.Age, 25)
			assert.GreaterOrEqual(t, p.Level, 30)
			assert.LessOrEqual(t, p.Level, 60)
			return
		}
		g = next
	}
	t.Fatal("70% looks never landed a date in 50 tries")
}

func TestDateBlockedWhileTaken(t *testing.T) {
	s := newTestSim(3)
	g := s.NewGame("A", "B", person.Female, "Brazil")
	g.Age = 20
	g.Relationships = append(g.Relationships, person.Relationship{
		ID: "p1", Name: "Alex", Type: person.RelPartner, Level: 50, Alive: true,
	})
	_, err := s.Date(g)
	assert.ErrorIs(t, err, ErrRequirements)
}

func TestMarryChecksAndUpgrade(t *testing.T) {
	s := newTestSim(4)
	g := s.NewGame("A", "B", person.Male, "Brazil")
	g.Age = 25
	g.Money = 10000

	_, err := s.Marry(g)
	assert.ErrorIs(t, err, ErrRequirements, "no partner")

	g.Relationships = append(g.Relationships, person.Relationship{
		ID: "p1", Name: "Dana", Type: person.RelPartner, Level: 40, Alive: true,
	})
	_, err = s.Marry(g)
	assert.ErrorIs(t, err, ErrRequirements, "bond too weak")

	g.Relationships[len(g.Relationships)-1].Level = 80
	next, err := s.Marry(g)
	require.NoError(t, err)
	assert.Equal(t, 5000, next.Money)
	spouse := findByType(next, person.RelSpouse)
	require.NotNil(t, spouse)
	assert.Equal(t, "Dana", spouse.Name)
	assert.Nil(t, findByType(next, person.RelPartner))
}

func TestBreakup(t *testing.T) {
	s := newTestSim(5)
	g := s.NewGame("A", "B", person.Male, "Brazil")
	g.Age = 25
	g.Relationships = append(g.Relationships, person.Relationship{
		ID: "p1", Name: "Dana", Type: person.RelPartner, Level: 50, Alive: true,
	})

	next, err := s.Breakup(g, "p1")
	require.NoError(t, err)
	ex := findByType(next, person.RelEx)
	require.NotNil(t, ex)
	assert.Equal(t, 20, ex.Level)

	parent := findByType(g, person.RelParent)
	_, err = s.Breakup(g, parent.ID)
	assert.ErrorIs(t, err, ErrRequirements)
}

func TestBreakupLevelFloor(t *testing.T) {
	s := newTestSim(6)
	g := s.NewGame("A", "B", person.Male, "Brazil")
	g.Age = 25
	g.Relationships = append(g.Relationships, person.Relationship{
		ID: "p1", Name: "Dana", Type: person.RelSpouse, Level: 10, Alive: true,
	})
	next, err := s.Breakup(g, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, findByType(next, person.RelEx).Level)
}

func TestHaveChildNeedsSpouse(t *testing.T) {
	s := newTestSim(7)
	g := s.NewGame("A", "B", person.Male, "Brazil")
	g.Age = 30
	_, err := s.HaveChild(g)
	assert.ErrorIs(t, err, ErrRequirements)

	g.Relationships = append(g.Relationships, person.Relationship{
		ID: "sp", Name: "Dana Rivera", Type: person.RelSpouse, Level: 80, Alive: true,
	})
	next, err := s.HaveChild(g)
	require.NoError(t, err)
	child := findByType(next, person.RelChild)
	require.NotNil(t, child)
	assert.Contains(t, child.Name, next.LastName)
	assert.GreaterOrEqual(t, child.Level, 60)
	assert.LessOrEqual(t, child.Level, 90)
	assert.Equal(t, 0, child.Age)
}

func TestGestureTable(t *testing.T) {
	s := newTestSim(8)
	g := s.NewGame("A", "B", person.Male, "Brazil")
	g.Age = 20
	g.Money = 1000
	g.Relationships = append(g.Relationships, person.Relationship{
		ID: "f1", Name: "Kim", Type: person.RelFriend, Level: 50, Alive: true,
	})

	for i := 0; i < 30; i++ {
		next, err := s.Gesture(g, "f1", "gift")
		require.NoError(t, err)
		spent := g.Money - next.Money
		assert.GreaterOrEqual(t, spent, 20)
		assert.LessOrEqual(t, spent, 200)
		lvl := findByType(next, person.RelFriend).Level
		assert.GreaterOrEqual(t, lvl, 55)
		assert.LessOrEqual(t, lvl, 65)
	}

	for i := 0; i < 30; i++ {
		next, err := s.Gesture(g, "f1", "insult")
		require.NoError(t, err)
		lvl := findByType(next, person.RelFriend).Level
		assert.GreaterOrEqual(t, lvl, 25)
		assert.LessOrEqual(t, lvl, 40)
	}

	_, err := s.Gesture(g, "f1", "serenade")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGestureGiftAffordability(t *testing.T) {
	s := newTestSim(9)
	g := s.NewGame("A", "B", person.Male, "Brazil")
	g.Age = 20
	g.Money = 0
	g.Relationships = append(g.Relationships, person.Relationship{
		ID: "f1", Name: "Kim", Type: person.RelFriend, Level: 50, Alive: true,
	})
	_, err := s.Gesture(g, "f1", "gift")
	assert.ErrorIs(t, err, ErrRequirements)
}
