// Package economy provides the market-sentiment stream that flavors
// investment-year event text. Sentiment is a smooth noise signal, so
// neighboring years feel correlated the way real market moods do.
// It never alters investment returns.
package economy

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// sentimentFreq controls how fast the mood drifts year over year.
const sentimentFreq = 0.15

// Market is a seeded sentiment stream.
type Market struct {
	noise opensimplex.Noise
}

// NewMarket returns a Market seeded deterministically.
func NewMarket(seed int64) *Market {
	return &Market{noise: opensimplex.NewNormalized(seed)}
}

// Sentiment returns the mood for a given year in [-1, 1].
func (m *Market) Sentiment(year int) float64 {
	v := m.noise.Eval2(float64(year)*sentimentFreq, 0.5)
	return v*2 - 1
}

// Word maps a sentiment value to a market adjective.
func Word(v float64) string {
	switch {
	case v < -0.6:
		return "brutal"
	case v < -0.2:
		return "shaky"
	case v < 0.2:
		return "flat"
	case v < 0.6:
		return "steady"
	default:
		return "booming"
	}
}
