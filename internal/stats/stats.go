// Package stats provides the bounded character stat block and the Effects
// delta sets that events apply to it.
package stats

// Block holds the core character stats. All values stay in [0, 100].
type Block struct {
	Happiness  int `json:"happiness"`
	Health     int `json:"health"`
	Smarts     int `json:"smarts"`
	Looks      int `json:"looks"`
	Karma      int `json:"karma"`
	Discipline int `json:"discipline"`
	Popularity int `json:"popularity"`
	Fitness    int `json:"fitness"`
	Creativity int `json:"creativity"`
}

// Effects is a set of deltas applied together. Money is carried alongside the
// bounded stats because most event tables mix the two; it is the caller's
// balance that absorbs it, unclamped.
type Effects struct {
	Happiness  int     `json:"happiness,omitempty"`
	Health     int     `json:"health,omitempty"`
	Smarts     int     `json:"smarts,omitempty"`
	Looks      int     `json:"looks,omitempty"`
	Karma      int     `json:"karma,omitempty"`
	Discipline int     `json:"discipline,omitempty"`
	Popularity int     `json:"popularity,omitempty"`
	Fitness    int     `json:"fitness,omitempty"`
	Creativity int     `json:"creativity,omitempty"`
	Money      float64 `json:"money,omitempty"`
}

// Clamp bounds a stat value to [0, 100].
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Apply adds the bounded deltas of e to b, clamping each stat, and returns
// the money delta for the caller to settle.
func (b *Block) Apply(e Effects) float64 {
	b.Happiness = Clamp(b.Happiness + e.Happiness)
	b.Health = Clamp(b.Health + e.Health)
	b.Smarts = Clamp(b.Smarts + e.Smarts)
	b.Looks = Clamp(b.Looks + e.Looks)
	b.Karma = Clamp(b.Karma + e.Karma)
	b.Discipline = Clamp(b.Discipline + e.Discipline)
	b.Popularity = Clamp(b.Popularity + e.Popularity)
	b.Fitness = Clamp(b.Fitness + e.Fitness)
	b.Creativity = Clamp(b.Creativity + e.Creativity)
	return e.Money
}

// Add adjusts a single stat by delta with clamping.
func Add(v *int, delta int) {
	*v = Clamp(*v + delta)
}
