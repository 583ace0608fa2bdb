package life

import (
	"fmt"

	"github.com/talgya/mini-life/internal/dialogue"
	"github.com/talgya/mini-life/internal/person"
	"github.com/talgya/mini-life/internal/stats"
)

// NewGame creates a newborn character: rolled stats, two parents,
// a 60% chance of an older-ish sibling, and a birth log entry.
// The baby starts at the parents' house, on basic everything.
func (s *Sim) NewGame(firstName, lastName string, gender person.Gender, country string) *Game {
	relationships := []person.Relationship{
		s.gen.NewRelative(person.RelParent, person.Male, lastName, 25, 40, 50, 90),
		s.gen.NewRelative(person.RelParent, person.Female, lastName, 23, 38, 50, 90),
	}
	if s.chance(0.6) {
		relationships = append(relationships,
			s.gen.NewRelative(person.RelSibling, s.gen.RandomGender(), lastName, 0, 5, 40, 80))
	}

	g := &Game{
		ID:        s.id(),
		FirstName: firstName,
		LastName:  lastName,
		Gender:    gender,
		Country:   country,
		Alive:     true,
		Traits:    s.gen.NewTraits(),
		Stats: stats.Block{
			Happiness:  s.between(50, 80),
			Health:     s.between(60, 95),
			Smarts:     s.between(20, 70),
			Looks:      s.between(20, 80),
			Karma:      s.between(40, 70),
			Discipline: s.between(30, 60),
			Popularity: s.between(20, 50),
			Fitness:    s.between(30, 60),
			Creativity: s.between(20, 70),
		},
		Housing: Housing{Name: "Parents' House", Type: HousingParents, Quality: 3},
		School: School{
			Grade:      70,
			Popularity: s.between(20, 50),
		},
		Job:           emptyJob(),
		Business:      emptyBusiness(),
		Education:     []string{},
		Investments:   []Investment{},
		Assets:        []Asset{},
		Relationships: relationships,
		Events:        []Event{},
		Threads:       map[string]*dialogue.Thread{},
		YearBorn:      s.baseYear,
	}
	g.log(fmt.Sprintf("%s %s was born in %s. 👶", firstName, lastName, country))
	return g
}
