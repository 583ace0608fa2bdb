package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTopics(t *testing.T) {
	topics := ExtractTopics("i love my family")
	assert.Contains(t, topics, "love")
	assert.Contains(t, topics, "family")
}

func TestExtractTopicsRegistryOrder(t *testing.T) {
	// greeting is registered before goodbye, so it comes out first.
	topics := ExtractTopics("hello and goodbye")
	assert.Equal(t, []string{"greeting", "goodbye"}, topics)
}

func TestExtractTopicsFallback(t *testing.T) {
	assert.Equal(t, []string{"general"}, ExtractTopics(""))
	assert.Equal(t, []string{"general"}, ExtractTopics("zzz qqq"))
}

func TestExtractTopicsSubstrings(t *testing.T) {
	// Keyword matching is substring-based, so "working" hits "work".
	topics := ExtractTopics("working late again")
	assert.Contains(t, topics, "work")
}

func TestSubjectWords(t *testing.T) {
	words := SubjectWords("i really love my big family")
	// Stopwords and short words drop out; at most three survive.
	assert.LessOrEqual(t, len(words), 3)
	assert.NotContains(t, words, "i")
	assert.NotContains(t, words, "my")
	assert.Contains(t, words, "love")
}

func TestSubjectWordsStripsNonLetters(t *testing.T) {
	words := SubjectWords("pizza!!! 123 forever")
	assert.Contains(t, words, "pizza")
	assert.Contains(t, words, "forever")
}
