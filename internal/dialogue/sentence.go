package dialogue

import (
	"fmt"
	"strings"

	"github.com/talgya/mini-life/internal/entropy"
	"github.com/talgya/mini-life/internal/person"
)

func (e *Engine) pick(pool []string) string {
	return entropy.Pick(e.rng, pool)
}

func (e *Engine) chance(p float64) bool {
	return entropy.Chance(e.rng, p)
}

func nounsFor(topic string) []string {
	if ns, ok := topicNouns[topic]; ok {
		return ns
	}
	return topicNouns["general"]
}

func verbsFor(topic string) []string {
	if vs, ok := topicVerbs[topic]; ok {
		return vs
	}
	return topicVerbs["general"]
}

func actionsFor(topic string) []string {
	if as, ok := adviceActions[topic]; ok {
		return as
	}
	return adviceActions["general"]
}

// pattern builders. Each assembles one sentence skeleton; post
// processing in compose dresses it up.
type patternFn func(e *Engine, topic string, temp person.Temperament, subjects []string) string

var patterns = []patternFn{
	// reaction + connector + opinion about the topic
	func(e *Engine, topic string, temp person.Temperament, _ []string) string {
		return fmt.Sprintf("%s %s %s %s",
			e.pick(reactions[temp]), e.pick(connectors[temp]),
			e.pick(nounsFor(topic)), e.pick(verbsFor(topic)))
	},
	// opinion starter + noun + verb
	func(e *Engine, topic string, temp person.Temperament, _ []string) string {
		return fmt.Sprintf("%s %s %s",
			e.pick(opinionStarters[temp]), e.pick(nounsFor(topic)), e.pick(verbsFor(topic)))
	},
	// personal anecdote around the topic noun
	func(e *Engine, topic string, temp person.Temperament, _ []string) string {
		return strings.Replace(e.pick(anecdoteTemplates[temp]), "[noun]", e.pick(nounsFor(topic)), 1)
	},
	// advice
	func(e *Engine, topic string, temp person.Temperament, _ []string) string {
		return fmt.Sprintf("%s %s", e.pick(adviceVerbs[temp]), e.pick(actionsFor(topic)))
	},
	// adjective + noun + verb
	func(e *Engine, topic string, temp person.Temperament, _ []string) string {
		return fmt.Sprintf("%s is %s because it %s",
			e.pick(nounsFor(topic)), e.pick(adjectives[temp]), e.pick(verbsFor(topic)))
	},
	// follow-up question
	func(e *Engine, topic string, temp person.Temperament, _ []string) string {
		return strings.Replace(e.pick(followUpTemplates[temp]), "[noun]", e.pick(nounsFor(topic)), 1)
	},
	// reaction + reflect the player's own subject words back
	func(e *Engine, _ string, temp person.Temperament, subjects []string) string {
		if len(subjects) == 0 {
			return e.pick(reactions[temp])
		}
		subject := strings.Join(subjects, " and ")
		opinions := []string{
			fmt.Sprintf("when you mention %s it makes me think", subject),
			fmt.Sprintf("the %s thing is interesting", subject),
			fmt.Sprintf("%s is something i think about too", subject),
			fmt.Sprintf("i have thoughts about %s too", subject),
			fmt.Sprintf("the whole %s situation is something", subject),
		}
		return fmt.Sprintf("%s %s", e.pick(reactions[temp]), e.pick(opinions))
	},
	// two-clause compound
	func(e *Engine, topic string, temp person.Temperament, _ []string) string {
		return fmt.Sprintf("%s %s %s %s thats %s",
			e.pick(nounsFor(topic)), e.pick(verbsFor(topic)),
			e.pick(connectors[temp]), e.pick(opinionStarters[temp]), e.pick(adjectives[temp]))
	},
}

func (e *Engine) greeting(temp person.Temperament) string {
	return fmt.Sprintf("%s %s", e.pick(greetWords[temp]), e.pick(greetFollowUps[temp]))
}

func (e *Engine) goodbye(temp person.Temperament) string {
	return e.pick(goodbyes[temp])
}

func (e *Engine) insultResponse(temp person.Temperament) string {
	return fmt.Sprintf("%s %s", e.pick(insultShock[temp]), e.pick(insultFollow[temp]))
}

func (e *Engine) complimentResponse(temp person.Temperament) string {
	return fmt.Sprintf("%s %s", e.pick(complimentThanks[temp]), e.pick(complimentReflect[temp]))
}

func (e *Engine) coldResponse(temp person.Temperament) string {
	return e.pick(coldResponses[temp])
}

func (e *Engine) metaComment(topic string, temp person.Temperament) string {
	meta := map[person.Temperament][]string{
		person.Cheerful: {
			fmt.Sprintf("haha we keep coming back to %s", topic),
			fmt.Sprintf("lol %s again i love how we always talk about this", topic),
		},
		person.Calm: {
			fmt.Sprintf("we've been talking about %s a lot", topic),
			fmt.Sprintf("seems like %s is really on your mind lately", topic),
		},
		person.Moody: {
			fmt.Sprintf("%s again huh", topic),
			fmt.Sprintf("why do we always end up on %s", topic),
		},
		person.Serious: {
			fmt.Sprintf("this is the third time %s has come up and i think thats significant", topic),
			fmt.Sprintf("you clearly have a lot to process about %s", topic),
		},
		person.Wild: {
			fmt.Sprintf("BRO %s AGAIN we are OBSESSED", topic),
			fmt.Sprintf("okay at this point %s is our whole personality lmao", topic),
		},
	}
	return e.pick(meta[temp])
}

// compose builds a full sentence for one non-special topic: a random
// pattern, then the probabilistic dressing passes in fixed order
// (opener, closer, sad prefix, friendly tag, joke tag, smart tag).
func (e *Engine) compose(topic string, traits person.Traits, subjects []string, mood int, pastTopics []string) string {
	temp := traits.Temperament

	switch topic {
	case "greeting":
		return e.greeting(temp)
	case "goodbye":
		return e.goodbye(temp)
	case "insult":
		return e.insultResponse(temp)
	case "compliment":
		return e.complimentResponse(temp)
	}

	// Same topic twice in the last three messages earns meta commentary.
	recent := pastTopics
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	same := 0
	for _, t := range recent {
		if t == topic {
			same++
		}
	}
	if same >= 2 && e.chance(0.5) {
		return e.metaComment(topic, temp)
	}

	idx := int(e.rng.Float() * float64(len(patterns)))
	if idx >= len(patterns) {
		idx = len(patterns) - 1
	}
	sentence := patterns[idx](e, topic, temp, subjects)

	if e.chance(0.4) {
		sentence = e.pick(openers[temp]) + " " + sentence
	}
	if e.chance(0.5) {
		sentence = sentence + " " + e.pick(closers[temp])
	}
	if mood < -5 && e.chance(0.3) {
		sentence = e.pick(sadPrefixes) + sentence
	}
	if traits.Friendliness > 75 && e.chance(0.25) {
		sentence += e.pick(friendlyTags)
	}
	if traits.Humor > 70 && e.chance(0.2) {
		sentence += e.pick(jokeTags)
	}
	if traits.Intelligence > 75 && e.chance(0.2) {
		sentence += e.pick(smartTags)
	}
	return sentence
}
