package life

import (
	"fmt"

	"github.com/talgya/mini-life/internal/person"
	"github.com/talgya/mini-life/internal/stats"
)

// Date tries to start a relationship with a stranger. Acceptance is a
// looks roll with a flat bonus, so even a plain character gets a shot.
func (s *Sim) Date(g *Game) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	if g.Age < 16 {
		return nil, reqErr("too young to date")
	}
	for _, r := range g.Relationships {
		if (r.Type == person.RelPartner || r.Type == person.RelSpouse) && r.Alive {
			return nil, reqErr("already in a relationship")
		}
	}
	next := g.Clone()
	partnerGender := person.Female
	if next.Gender == person.Female {
		partnerGender = person.Male
	}
	partner := s.gen.NewStranger(person.RelPartner, partnerGender, next.Age, -5, 5, 30, 60)
	if s.rng.Float()*100 > float64(next.Stats.Looks+20) {
		next.log(fmt.Sprintf("Tried dating %s but got rejected. 💔", partner.Name))
		next.notify(fmt.Sprintf("%s said no. 💔", partner.Name))
		stats.Add(&next.Stats.Happiness, -5)
		return next, nil
	}
	next.Relationships = append(next.Relationships, partner)
	stats.Add(&next.Stats.Happiness, 15)
	next.log(fmt.Sprintf("Started dating %s! 💕", partner.Name))
	next.notify(fmt.Sprintf("Dating %s! 💕", partner.Name))
	return next, nil
}

// Marry turns the current partner into a spouse. The wedding costs a
// flat $5,000 and the partner wants the bond above 60 first.
func (s *Sim) Marry(g *Game) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	var partner *person.Relationship
	for i := range g.Relationships {
		r := &g.Relationships[i]
		if r.Type == person.RelPartner && r.Alive {
			partner = r
			break
		}
	}
	switch {
	case partner == nil:
		return nil, reqErr("need a partner")
	case partner.Level < 60:
		return nil, reqErr("%s says it's too soon", partner.Name)
	case g.Age < 18:
		return nil, reqErr("too young to marry")
	}
	next := g.Clone()
	r, _ := next.relation(partner.ID)
	r.Type = person.RelSpouse
	next.Money -= 5000
	next.TotalSpent += 5000
	stats.Add(&next.Stats.Happiness, 20)
	next.log(fmt.Sprintf("Married %s! 💒", r.Name))
	next.notify(fmt.Sprintf("Married %s! 💒", r.Name))
	return next, nil
}

// Breakup ends a relationship; the ex keeps a bruised bond.
func (s *Sim) Breakup(g *Game, relID string) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	next := g.Clone()
	r, err := next.relation(relID)
	if err != nil {
		return nil, err
	}
	if r.Type != person.RelPartner && r.Type != person.RelSpouse {
		return nil, reqErr("not a romantic partner")
	}
	r.Type = person.RelEx
	r.Level -= 30
	if r.Level < 0 {
		r.Level = 0
	}
	stats.Add(&next.Stats.Happiness, -15)
	next.log(fmt.Sprintf("Broke up with %s. 💔", r.Name))
	next.notify(fmt.Sprintf("Broke up with %s. 💔", r.Name))
	return next, nil
}

// HaveChild adds a baby to a married couple. The child takes the
// family name and ages alongside everyone else.
func (s *Sim) HaveChild(g *Game) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	married := false
	for _, r := range g.Relationships {
		if r.Type == person.RelSpouse && r.Alive {
			married = true
			break
		}
	}
	if !married {
		return nil, reqErr("need to be married")
	}
	if g.Age < 18 {
		return nil, reqErr("too young")
	}
	next := g.Clone()
	gender := s.gen.RandomGender()
	child := person.Relationship{
		ID:     s.id(),
		Name:   fmt.Sprintf("%s %s", s.gen.FirstName(gender), next.LastName),
		Type:   person.RelChild,
		Gender: gender,
		Level:  s.between(60, 90),
		Alive:  true,
		Traits: s.gen.NewTraits(),
	}
	next.Relationships = append(next.Relationships, child)
	stats.Add(&next.Stats.Happiness, 20)
	word := "girl"
	if gender == person.Male {
		word = "boy"
	}
	next.log(fmt.Sprintf("Had a baby: %s! 👶", child.Name))
	next.notify(fmt.Sprintf("Had a baby %s: %s! 👶", word, child.Name))
	return next, nil
}

// Gesture is a quick one-sided social move that doesn't go through the
// dialogue engine: quality time, a compliment, a gift, or picking a
// fight.
func (s *Sim) Gesture(g *Game, relID, action string) (*Game, error) {
	if err := s.guard(g); err != nil {
		return nil, err
	}
	next := g.Clone()
	r, err := next.relation(relID)
	if err != nil {
		return nil, err
	}
	if !r.Alive {
		return nil, ErrNotFound
	}

	var change, moodChange, moneyChange int
	var text string
	switch action {
	case "spend_time":
		change = s.between(3, 12)
		moodChange = s.between(2, 8)
		text = fmt.Sprintf("Spent time with %s. 💕", r.Name)
	case "compliment":
		change = s.between(2, 8)
		moodChange = s.between(1, 5)
		text = fmt.Sprintf("Complimented %s. 😊", r.Name)
	case "gift":
		change = s.between(5, 15)
		moodChange = s.between(3, 8)
		moneyChange = -s.between(20, 200)
		text = fmt.Sprintf("Gave %s a gift. 🎁", r.Name)
	case "insult":
		change = -s.between(10, 25)
		moodChange = s.between(-5, 2)
		text = fmt.Sprintf("Insulted %s. 😤", r.Name)
	case "argue":
		change = -s.between(5, 20)
		moodChange = -s.between(3, 10)
		text = fmt.Sprintf("Argued with %s. 😡", r.Name)
	default:
		return nil, ErrNotFound
	}
	if next.Money+moneyChange < 0 {
		return nil, reqErr("can't afford a gift")
	}
	r.Level = stats.Clamp(r.Level + change)
	next.Money += moneyChange
	stats.Add(&next.Stats.Happiness, moodChange)
	next.log(text)
	next.notify(text)
	return next, nil
}
