package life

import (
	"fmt"

	"github.com/talgya/mini-life/internal/person"
	"github.com/talgya/mini-life/internal/stats"
)

// InteractResult reports what happened during a relationship action.
type InteractResult struct {
	Text           string `json:"text"`
	RelationChange int    `json:"relation_change"`
	MoodChange     int    `json:"mood_change"`
}

// Interact performs a social action with a contact. The outcome text
// and deltas branch on the contact's traits, so the same action lands
// differently with different people. Unknown actions take a neutral
// default.
func (s *Sim) Interact(g *Game, relID, action string) (*Game, *InteractResult, error) {
	if !g.Alive {
		return nil, nil, ErrDeadCharacter
	}
	next := g.Clone()
	r, err := next.relation(relID)
	if err != nil {
		return nil, nil, err
	}
	if !r.Alive {
		return nil, nil, ErrNotFound
	}

	res := s.interactOutcome(r, action)
	r.Level = stats.Clamp(r.Level + res.RelationChange)
	stats.Add(&next.Stats.Happiness, res.MoodChange)
	next.log(fmt.Sprintf("%s: %s", r.Name, res.Text))

	s.logger.Debug("interaction",
		"life", next.ID, "contact", r.Name, "action", action,
		"relation_change", res.RelationChange)
	return next, res, nil
}

func (s *Sim) interactOutcome(r *person.Relationship, action string) *InteractResult {
	t := r.Traits
	switch action {
	case "talk":
		switch {
		case t.Friendliness > 70:
			lines := []string{
				"had a great conversation with you!",
				"loved chatting with you!",
				"really enjoyed talking to you!",
			}
			return s.outcome(s.pick(lines), 3, 8, 2, 6)
		case t.Friendliness < 30:
			lines := []string{
				"seemed uninterested in talking.",
				"gave short, cold answers.",
			}
			return s.outcome(s.pick(lines), -3, 2, -3, 0)
		default:
			return s.outcome("had a nice conversation with you.", 1, 5, 0, 3)
		}
	case "joke":
		switch {
		case t.Humor > 60:
			return s.outcome("laughed hard at your joke! 😂", 4, 10, 3, 8)
		case t.Temperament == person.Serious:
			return s.outcome("didn't find it funny. 😐", -5, -1, -2, 0)
		default:
			return s.outcome("chuckled politely at your joke.", 1, 4, 1, 3)
		}
	case "hangout":
		switch {
		case t.Friendliness > 50 && r.Level > 30:
			acts := []string{
				"went to the mall", "played video games", "watched a movie",
				"went for a walk", "grabbed food",
			}
			return s.outcome(fmt.Sprintf("You %s together. It was fun!", s.pick(acts)), 5, 12, 4, 10)
		case r.Level < 20:
			return s.outcome("said they were busy. 😕", -2, 1, -3, -1)
		default:
			return s.outcome("hung out with you for a while.", 2, 6, 1, 4)
		}
	case "help":
		if t.Loyalty > 60 {
			return s.outcome("was really grateful for your help!", 8, 15, 3, 7)
		}
		return s.outcome("appreciated your help.", 4, 8, 2, 5)
	case "gossip":
		switch {
		case t.Temperament == person.Wild || t.Friendliness > 60:
			return s.outcome("spilled all the tea! 🍵", 3, 8, 2, 5)
		case t.Loyalty > 70:
			return s.outcome("didn't want to gossip about others.", -5, -1, -2, 0)
		default:
			return s.outcome("shared a little gossip with you.", 1, 4, 0, 3)
		}
	case "study":
		if t.Intelligence > 60 {
			return s.outcome("helped you understand the material!", 3, 7, 1, 4)
		}
		return s.outcome("studied with you, though they struggled too.", 1, 4, -1, 2)
	case "coffee":
		return s.outcome("enjoyed grabbing coffee with you. ☕", 3, 8, 3, 7)
	case "dinner":
		return s.outcome("had a lovely dinner with you. 🍽️", 5, 12, 5, 10)
	case "party":
		if t.Temperament == person.Wild || t.Temperament == person.Cheerful {
			return s.outcome("partied hard with you! 🎉", 5, 12, 5, 12)
		}
		return s.outcome("came to the party but stayed low-key.", 1, 5, 1, 5)
	default:
		return s.outcome("spent some time with you.", 0, 3, 0, 2)
	}
}

func (s *Sim) outcome(text string, relLo, relHi, moodLo, moodHi int) *InteractResult {
	return &InteractResult{
		Text:           text,
		RelationChange: s.between(relLo, relHi),
		MoodChange:     s.between(moodLo, moodHi),
	}
}
