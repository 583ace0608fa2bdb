package dialogue

import (
	"strings"
)

// ExtractTopics runs spell correction on the message and scans the
// corrected text for keyword hits, topic by topic in registry order.
// Substring matching is deliberate: "working" hits "work". Falls back
// to ["general"] when nothing matches.
func ExtractTopics(text string) []string {
	corrected := CorrectText(text)
	var found []string
	for _, e := range topicRegistry {
		for _, kw := range e.keywords {
			if strings.Contains(corrected, kw) {
				found = append(found, e.name)
				break
			}
		}
	}
	if len(found) == 0 {
		return []string{"general"}
	}
	return found
}

// SubjectWords pulls up to three content words from the corrected
// message for reflecting back at the player. Short words and stop
// words are dropped.
func SubjectWords(text string) []string {
	corrected := CorrectText(text)
	var b strings.Builder
	for _, r := range corrected {
		if (r >= 'a' && r <= 'z') || r == ' ' || r == '\t' || r == '\n' {
			b.WriteRune(r)
		}
	}
	var out []string
	for _, w := range strings.Fields(b.String()) {
		if len(w) <= 2 {
			continue
		}
		if _, skip := stopWords[w]; skip {
			continue
		}
		out = append(out, w)
		if len(out) == 3 {
			break
		}
	}
	return out
}
