package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 0, Clamp(0))
	assert.Equal(t, 57, Clamp(57))
	assert.Equal(t, 100, Clamp(100))
	assert.Equal(t, 100, Clamp(140))
}

func TestApplyClampsStatsNotMoney(t *testing.T) {
	b := Block{Happiness: 95, Health: 3}
	money := b.Apply(Effects{Happiness: 20, Health: -10, Money: -1500})
	assert.Equal(t, 100, b.Happiness)
	assert.Equal(t, 0, b.Health)
	assert.Equal(t, -1500.0, money)
}

func TestAdd(t *testing.T) {
	v := 98
	Add(&v, 10)
	assert.Equal(t, 100, v)
	Add(&v, -250)
	assert.Equal(t, 0, v)
	Add(&v, 33)
	assert.Equal(t, 33, v)
}
