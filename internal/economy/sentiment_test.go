package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentimentBoundsAndDeterminism(t *testing.T) {
	m := NewMarket(42)
	again := NewMarket(42)
	other := NewMarket(7)

	varied := false
	for year := 2025; year < 2125; year++ {
		v := m.Sentiment(year)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
		assert.Equal(t, v, again.Sentiment(year))
		if other.Sentiment(year) != v {
			varied = true
		}
	}
	assert.True(t, varied, "different seeds should disagree somewhere")
}

func TestSentimentDriftsOverTime(t *testing.T) {
	m := NewMarket(1)
	base := m.Sentiment(2025)
	moved := false
	for year := 2026; year < 2075; year++ {
		if m.Sentiment(year) != base {
			moved = true
			break
		}
	}
	assert.True(t, moved)
}

func TestWordBands(t *testing.T) {
	assert.Equal(t, "brutal", Word(-0.9))
	assert.Equal(t, "shaky", Word(-0.4))
	assert.Equal(t, "flat", Word(0.0))
	assert.Equal(t, "steady", Word(0.4))
	assert.Equal(t, "booming", Word(0.9))
}
