package persistence

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mini-life/internal/entropy"
	"github.com/talgya/mini-life/internal/life"
	"github.com/talgya/mini-life/internal/person"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testGame(t *testing.T) *life.Game {
	t.Helper()
	n := 0
	sim := life.NewSim(life.Options{
		Source: entropy.NewSeeded(42),
		IDGen: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	})
	g := sim.NewGame("Morgan", "Reyes", person.Female, "Spain")
	g.Age = 23
	g.Money = 4200
	g.Notifications = []string{"welcome"}
	return g
}

func TestSaveLoadRoundtrip(t *testing.T) {
	db := openTestDB(t)
	g := testGame(t)

	require.NoError(t, db.Save(0, g))

	loaded, err := db.Load(0)
	require.NoError(t, err)
	assert.Equal(t, g.ID, loaded.ID)
	assert.Equal(t, "Morgan", loaded.FirstName)
	assert.Equal(t, 23, loaded.Age)
	assert.Equal(t, 4200, loaded.Money)
	assert.Equal(t, len(g.Relationships), len(loaded.Relationships))
	assert.Nil(t, loaded.Notifications, "transient state stripped")
}

func TestSaveStripDoesNotTouchOriginal(t *testing.T) {
	db := openTestDB(t)
	g := testGame(t)
	require.NoError(t, db.Save(1, g))
	assert.Equal(t, []string{"welcome"}, g.Notifications)
}

func TestSaveOverwritesSlot(t *testing.T) {
	db := openTestDB(t)
	g := testGame(t)
	require.NoError(t, db.Save(2, g))

	g.Age = 60
	require.NoError(t, db.Save(2, g))

	loaded, err := db.Load(2)
	require.NoError(t, err)
	assert.Equal(t, 60, loaded.Age)
}

func TestLoadEmptySlot(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Load(3)
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestSlotRange(t *testing.T) {
	db := openTestDB(t)
	g := testGame(t)
	assert.ErrorIs(t, db.Save(-1, g), ErrBadSlot)
	assert.ErrorIs(t, db.Save(MaxSlots, g), ErrBadSlot)
	_, err := db.Load(99)
	assert.ErrorIs(t, err, ErrBadSlot)
}

func TestListCoversAllSlots(t *testing.T) {
	db := openTestDB(t)
	g := testGame(t)
	require.NoError(t, db.Save(1, g))
	require.NoError(t, db.Save(4, g))

	slots, err := db.List()
	require.NoError(t, err)
	require.Len(t, slots, MaxSlots)

	for i, s := range slots {
		assert.Equal(t, i, s.ID)
		if i == 1 || i == 4 {
			assert.True(t, s.Occupied)
			assert.Equal(t, "Morgan Reyes", s.Name)
			assert.Equal(t, 23, s.Age)
		} else {
			assert.False(t, s.Occupied)
		}
	}
}

func TestDelete(t *testing.T) {
	db := openTestDB(t)
	g := testGame(t)
	require.NoError(t, db.Save(0, g))
	require.NoError(t, db.Delete(0))
	_, err := db.Load(0)
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestMetaRoundtrip(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SaveMeta("last_slot", "3"))
	v, err := db.GetMeta("last_slot")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	_, err = db.GetMeta("missing")
	assert.Error(t, err)
}
