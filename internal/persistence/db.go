// Package persistence provides SQLite-based save-slot storage for
// lives in progress.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/mini-life/internal/life"
)

// MaxSlots is the number of save slots, numbered 0..MaxSlots-1.
const MaxSlots = 5

var (
	ErrBadSlot   = errors.New("slot out of range")
	ErrSlotEmpty = errors.New("slot is empty")
)

// Slot summarizes one save slot for listing.
type Slot struct {
	ID        int    `json:"id"         db:"id"`
	Name      string `json:"name"       db:"name"`
	Age       int    `json:"age"        db:"age"`
	Money     int    `json:"money"      db:"money"`
	Timestamp int64  `json:"timestamp"  db:"timestamp"`
	Occupied  bool   `json:"occupied"   db:"-"`
}

// DB wraps a SQLite connection for save storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		money INTEGER NOT NULL,
		timestamp INTEGER NOT NULL,
		state_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS save_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Save writes a life snapshot into a slot, replacing whatever was
// there. Transient state is stripped first so loads come up clean.
func (db *DB) Save(slot int, g *life.Game) error {
	if slot < 0 || slot >= MaxSlots {
		return ErrBadSlot
	}

	clean := g.Clone()
	clean.Notifications = nil
	clean.Pending = nil

	stateJSON, err := json.Marshal(clean)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT OR REPLACE INTO saves
		(id, name, age, money, timestamp, state_json)
		VALUES (?, ?, ?, ?, ?, ?)`,
		slot, clean.FirstName+" "+clean.LastName, clean.Age, clean.Money,
		time.Now().Unix(), string(stateJSON),
	)
	if err != nil {
		return fmt.Errorf("insert save %d: %w", slot, err)
	}

	return tx.Commit()
}

// Load reads the life stored in a slot.
func (db *DB) Load(slot int) (*life.Game, error) {
	if slot < 0 || slot >= MaxSlots {
		return nil, ErrBadSlot
	}

	var stateJSON string
	err := db.conn.Get(&stateJSON, "SELECT state_json FROM saves WHERE id = ?", slot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}

	var g life.Game
	if err := json.Unmarshal([]byte(stateJSON), &g); err != nil {
		return nil, fmt.Errorf("unmarshal save %d: %w", slot, err)
	}
	g.Notifications = nil
	g.Pending = nil
	return &g, nil
}

// List returns all slots in order; unoccupied slots come back zeroed.
func (db *DB) List() ([]Slot, error) {
	var rows []Slot
	err := db.conn.Select(&rows,
		"SELECT id, name, age, money, timestamp FROM saves ORDER BY id")
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, MaxSlots)
	for i := range slots {
		slots[i].ID = i
	}
	for _, r := range rows {
		if r.ID >= 0 && r.ID < MaxSlots {
			r.Occupied = true
			slots[r.ID] = r
		}
	}
	return slots, nil
}

// Delete clears a slot. Deleting an empty slot is a no-op.
func (db *DB) Delete(slot int) error {
	if slot < 0 || slot >= MaxSlots {
		return ErrBadSlot
	}
	_, err := db.conn.Exec("DELETE FROM saves WHERE id = ?", slot)
	return err
}

// SaveMeta stores a key-value pair alongside the slots.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO save_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM save_meta WHERE key = ?", key)
	return value, err
}
