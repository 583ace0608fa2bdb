package dialogue

import (
	"github.com/talgya/mini-life/internal/entropy"
	"github.com/talgya/mini-life/internal/person"
)

// Message is one line of a chat conversation.
type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"` // "player" or "npc"
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Thread accumulates conversation state with one contact: the message
// log, the topic history, and the contact's rolling mood (-10..10).
type Thread struct {
	ContactID string    `json:"contact_id"`
	Messages  []Message `json:"messages"`
	Topics    []string  `json:"topics"`
	Mood      int       `json:"mood"`
}

// NewThread starts an empty conversation with the given contact.
func NewThread(contactID string) *Thread {
	return &Thread{ContactID: contactID, Messages: []Message{}, Topics: []string{}}
}

// Reply is the engine's answer to one player message. RelationChange
// and MoodChange are raw deltas; clamping is the caller's job.
type Reply struct {
	Response       string `json:"response"`
	Topic          string `json:"topic"`
	RelationChange int    `json:"relation_change"`
	MoodChange     int    `json:"mood_change"`
}

// Engine generates NPC chat responses. Stateless apart from the
// entropy source, so one engine serves every thread.
type Engine struct {
	rng entropy.Source
}

// NewEngine returns an Engine rolling on src.
func NewEngine(src entropy.Source) *Engine {
	return &Engine{rng: src}
}

// Respond produces the contact's reply to message. The first extracted
// topic is the main topic; it is appended to the thread history before
// sentence assembly so repeat-topic detection sees the current
// message. Contacts below relationship 25 have a 40% chance of
// brushing the player off, unless the player is just saying hi.
func (e *Engine) Respond(message string, contact person.Relationship, thread *Thread) Reply {
	topics := ExtractTopics(message)
	mainTopic := topics[0]
	subjects := SubjectWords(message)
	thread.Topics = append(thread.Topics, mainTopic)

	var response string
	if contact.Level < 25 && e.chance(0.4) && mainTopic != "greeting" {
		response = e.coldResponse(contact.Traits.Temperament)
	} else {
		response = e.compose(mainTopic, contact.Traits, subjects, thread.Mood, thread.Topics)
	}

	var relationChange int
	switch mainTopic {
	case "compliment":
		relationChange = entropy.Between(e.rng, 1, 4)
	case "insult":
		relationChange = -entropy.Between(e.rng, 3, 10)
	case "greeting", "fun":
		relationChange = entropy.Between(e.rng, 0, 2)
	default:
		relationChange = entropy.Between(e.rng, -1, 1)
	}

	var moodChange int
	switch mainTopic {
	case "insult":
		moodChange = -3
	case "compliment":
		moodChange = 2
	case "fun", "food":
		moodChange = 1
	}

	return Reply{
		Response:       response,
		Topic:          mainTopic,
		RelationChange: relationChange,
		MoodChange:     moodChange,
	}
}
