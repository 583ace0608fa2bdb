package dialogue

import (
	"regexp"
	"strings"
)

// levenshtein is the plain dynamic-programming edit distance. Inputs
// are short (chat words), so the full matrix is fine.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := 0; j <= len(a); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if b[i-1] == a[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// CorrectWord normalizes a single lowercase word: dictionary lookup
// first, then known-keyword passthrough, then fuzzy matching against
// the keyword registry for words of 4+ letters. Words within edit
// distance 2 of a keyword snap to it; length differences over 2 are
// skipped outright. Anything else passes through unchanged.
func CorrectWord(word string) string {
	if repl, ok := spellMap[word]; ok {
		return repl
	}
	for _, kw := range allKeywords {
		if kw == word {
			return word
		}
	}
	if len(word) >= 4 {
		best := ""
		bestDist := 3
		for _, kw := range allKeywords {
			diff := len(kw) - len(word)
			if diff < -2 || diff > 2 {
				continue
			}
			if d := levenshtein(word, kw); d < bestDist {
				bestDist = d
				best = kw
			}
		}
		if best != "" {
			return best
		}
	}
	return word
}

var wordCore = regexp.MustCompile(`^([^a-z]*)([a-z]+)([^a-z]*)$`)

// CorrectText lowercases the message and corrects it word by word,
// stripping leading/trailing punctuation for the lookup and
// reattaching it after.
func CorrectText(text string) string {
	words := strings.Fields(strings.ToLower(text))
	for i, w := range words {
		m := wordCore.FindStringSubmatch(w)
		if m == nil {
			continue
		}
		words[i] = m[1] + CorrectWord(m[2]) + m[3]
	}
	return strings.Join(words, " ")
}
