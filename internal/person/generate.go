package person

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/mini-life/internal/entropy"
)

// Generator mints NPCs. All randomness flows through the injected
// entropy source so a seeded run reproduces the same cast.
type Generator struct {
	rng entropy.Source
	id  IDGen
}

// NewGenerator returns a Generator using src for rolls. A nil idgen
// falls back to UUIDs.
func NewGenerator(src entropy.Source, idgen IDGen) *Generator {
	if idgen == nil {
		idgen = uuid.NewString
	}
	return &Generator{rng: src, id: idgen}
}

// NewTraits rolls a fresh personality. Temperament is uniform over the
// five values.
func (g *Generator) NewTraits() Traits {
	return Traits{
		Friendliness: entropy.Between(g.rng, 20, 90),
		Humor:        entropy.Between(g.rng, 10, 90),
		Loyalty:      entropy.Between(g.rng, 30, 95),
		Intelligence: entropy.Between(g.rng, 20, 90),
		Ambition:     entropy.Between(g.rng, 20, 80),
		Temperament:  entropy.Pick(g.rng, Temperaments[:]),
	}
}

// FirstName picks a first name for the given gender.
func (g *Generator) FirstName(gender Gender) string {
	if gender == Female {
		return entropy.Pick(g.rng, femaleNames)
	}
	return entropy.Pick(g.rng, maleNames)
}

// FullName picks a first and last name for the given gender.
func (g *Generator) FullName(gender Gender) (first, last string) {
	return g.FirstName(gender), entropy.Pick(g.rng, lastNames)
}

// RandomGender is a fair coin flip.
func (g *Generator) RandomGender() Gender {
	if entropy.Chance(g.rng, 0.5) {
		return Female
	}
	return Male
}

// NewRelative builds a family member who shares the player's last name.
func (g *Generator) NewRelative(rel RelationType, gender Gender, lastName string, ageLo, ageHi, levelLo, levelHi int) Relationship {
	return Relationship{
		ID:     g.id(),
		Name:   fmt.Sprintf("%s %s", g.FirstName(gender), lastName),
		Type:   rel,
		Gender: gender,
		Age:    entropy.Between(g.rng, ageLo, ageHi),
		Level:  entropy.Between(g.rng, levelLo, levelHi),
		Alive:  true,
		Traits: g.NewTraits(),
	}
}

// NewPeers builds count same-age acquaintances (classmates, coworkers,
// schoolmates). Ages land within a year of the player's.
func (g *Generator) NewPeers(rel RelationType, count, playerAge int) []Relationship {
	peers := make([]Relationship, 0, count)
	for i := 0; i < count; i++ {
		gender := g.RandomGender()
		first, last := g.FullName(gender)
		peers = append(peers, Relationship{
			ID:     g.id(),
			Name:   fmt.Sprintf("%s %s", first, last),
			Type:   rel,
			Gender: gender,
			Age:    playerAge + entropy.Between(g.rng, -1, 1),
			Level:  entropy.Between(g.rng, 20, 60),
			Alive:  true,
			Traits: g.NewTraits(),
		})
	}
	return peers
}

// NewStranger builds an unrelated NPC with an age offset from the
// player's and a rolled relationship level.
func (g *Generator) NewStranger(rel RelationType, gender Gender, playerAge, ageLo, ageHi, levelLo, levelHi int) Relationship {
	first, last := g.FullName(gender)
	return Relationship{
		ID:     g.id(),
		Name:   fmt.Sprintf("%s %s", first, last),
		Type:   rel,
		Gender: gender,
		Age:    playerAge + entropy.Between(g.rng, ageLo, ageHi),
		Level:  entropy.Between(g.rng, levelLo, levelHi),
		Alive:  true,
		Traits: g.NewTraits(),
	}
}
