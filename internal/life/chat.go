package life

import (
	"time"

	"github.com/talgya/mini-life/internal/dialogue"
	"github.com/talgya/mini-life/internal/stats"
)

// Chat sends a text message to a contact and generates their reply.
// The conversation state lives on the snapshot, so saved games keep
// their message history and per-thread mood.
func (s *Sim) Chat(g *Game, contactID, message string) (*Game, *dialogue.Reply, error) {
	if !g.Alive {
		return nil, nil, ErrDeadCharacter
	}
	next := g.Clone()
	r, err := next.relation(contactID)
	if err != nil {
		return nil, nil, err
	}
	if !r.Alive {
		return nil, nil, ErrNotFound
	}

	if next.Threads == nil {
		next.Threads = make(map[string]*dialogue.Thread)
	}
	thread, ok := next.Threads[contactID]
	if !ok {
		thread = dialogue.NewThread(contactID)
		next.Threads[contactID] = thread
	}

	now := time.Now().Unix()
	thread.Messages = append(thread.Messages, dialogue.Message{
		ID:        s.id(),
		Sender:    "player",
		Text:      message,
		Timestamp: now,
	})

	reply := s.chat.Respond(message, *r, thread)

	thread.Messages = append(thread.Messages, dialogue.Message{
		ID:        s.id(),
		Sender:    "npc",
		Text:      reply.Response,
		Timestamp: now,
	})
	r.Level = stats.Clamp(r.Level + reply.RelationChange)
	thread.Mood = clampMood(thread.Mood + reply.MoodChange)

	s.logger.Debug("chat",
		"life", next.ID, "contact", r.Name, "topic", reply.Topic,
		"relation_change", reply.RelationChange)
	return next, &reply, nil
}

// Thread mood is bounded tighter than stats; it only tilts sentence
// dressing, never gameplay.
func clampMood(v int) int {
	if v < -10 {
		return -10
	}
	if v > 10 {
		return 10
	}
	return v
}
