// Package storage provides SQLite-based persistence for checkpoint saves
// and end-game records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-adventure/internal/event"
	"github.com/vovakirdan/tui-adventure/internal/registry"
)

// DefaultSlot is the save slot used for local play.
const DefaultSlot = "default"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// CheckpointInfo summarises a saved checkpoint.
type CheckpointInfo struct {
	Slot      string
	Map       string
	TileX     int
	TileY     int
	Coins     int
	Keys      int
	Removed   int // sprites taken across all maps
	UpdatedAt time.Time
}

// Result is the record of a finished adventure.
type Result struct {
	ID        int64
	Player    string
	Coins     int
	Total     int
	Lives     int
	Ticks     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS checkpoints (
			slot TEXT PRIMARY KEY,
			map TEXT NOT NULL,
			tile_x INTEGER NOT NULL,
			tile_y INTEGER NOT NULL,
			level INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			keys INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS checkpoint_sprites (
			slot TEXT NOT NULL,
			map TEXT NOT NULL,
			uid TEXT NOT NULL,
			door INTEGER NOT NULL DEFAULT 0,
			tile_x INTEGER NOT NULL DEFAULT 0,
			tile_y INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 0,
			seq INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (slot, map, uid)
		);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			coins INTEGER NOT NULL,
			total INTEGER NOT NULL,
			lives INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(coins DESC, ticks ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCheckpoint stores a snapshot in slot, replacing what was there.
func (s *Store) SaveCheckpoint(slot string, r *registry.Registry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin checkpoint save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO checkpoints (slot, map, tile_x, tile_y, level, coins, keys, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		slot, r.Map, r.TileX, r.TileY, r.Level, r.Coins, r.Keys,
	); err != nil {
		return fmt.Errorf("storage: cannot save checkpoint: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM checkpoint_sprites WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot clear checkpoint sprites: %w", err)
	}

	for _, mapName := range r.Maps() {
		doors := make(map[string]event.DoorMetadata)
		order := make(map[string]int)
		for i, d := range r.OpenedDoors(mapName) {
			doors[d.ID] = d
			order[d.ID] = i
		}
		for _, uid := range r.RemovedUIDs(mapName) {
			d, isDoor := doors[uid]
			if _, err := tx.Exec(
				`INSERT INTO checkpoint_sprites (slot, map, uid, door, tile_x, tile_y, level, seq)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				slot, mapName, uid, isDoor, d.TileX, d.TileY, d.Level, order[uid],
			); err != nil {
				return fmt.Errorf("storage: cannot save checkpoint sprite %s/%s: %w", mapName, uid, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint returns the snapshot stored in slot.
// Returns nil if the slot is empty.
func (s *Store) LoadCheckpoint(slot string) (*registry.Registry, error) {
	var (
		mapName             string
		tileX, tileY, level int
		coins, keys         int
	)
	err := s.db.QueryRow(
		`SELECT map, tile_x, tile_y, level, coins, keys FROM checkpoints WHERE slot = ?`,
		slot,
	).Scan(&mapName, &tileX, &tileY, &level, &coins, &keys)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query checkpoint: %w", err)
	}

	r := registry.New(mapName, tileX, tileY, level)
	r.Coins = coins
	r.Keys = keys
	r.Checkpoint = true

	rows, err := s.db.Query(
		`SELECT map, uid, door, tile_x, tile_y, level
		 FROM checkpoint_sprites
		 WHERE slot = ?
		 ORDER BY map, door, seq, uid`,
		slot,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query checkpoint sprites: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			spriteMap, uid string
			door           bool
			d              event.DoorMetadata
		)
		if err := rows.Scan(&spriteMap, &uid, &door, &d.TileX, &d.TileY, &d.Level); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if door {
			d.ID = uid
			r.OpenDoor(spriteMap, d)
			continue
		}
		r.MarkRemoved(spriteMap, uid)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return r, nil
}

// Checkpoints lists the saved checkpoints, most recent first.
func (s *Store) Checkpoints() ([]CheckpointInfo, error) {
	rows, err := s.db.Query(
		`SELECT c.slot, c.map, c.tile_x, c.tile_y, c.coins, c.keys,
		        (SELECT COUNT(*) FROM checkpoint_sprites cs WHERE cs.slot = c.slot),
		        c.updated_at
		 FROM checkpoints c
		 ORDER BY c.updated_at DESC, c.slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query checkpoints: %w", err)
	}
	defer rows.Close()

	var infos []CheckpointInfo
	for rows.Next() {
		var info CheckpointInfo
		var updatedAt any
		if err := rows.Scan(&info.Slot, &info.Map, &info.TileX, &info.TileY,
			&info.Coins, &info.Keys, &info.Removed, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteCheckpoint removes the snapshot stored in slot.
func (s *Store) DeleteCheckpoint(slot string) error {
	if _, err := s.db.Exec("DELETE FROM checkpoint_sprites WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete checkpoint sprites: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM checkpoints WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete checkpoint: %w", err)
	}
	return nil
}

// ClearCheckpoints deletes every saved checkpoint.
func (s *Store) ClearCheckpoints() error {
	if _, err := s.db.Exec("DELETE FROM checkpoint_sprites"); err != nil {
		return fmt.Errorf("storage: cannot clear checkpoint sprites: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM checkpoints"); err != nil {
		return fmt.Errorf("storage: cannot clear checkpoints: %w", err)
	}
	return nil
}

// RecordResult stores the result of a finished adventure.
// Returns the ID of the inserted record.
func (s *Store) RecordResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO results (player, coins, total, lives, ticks) VALUES (?, ?, ?, ?, ?)",
		r.Player, r.Coins, r.Total, r.Lives, r.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N results: most coins, then fewest ticks.
func (s *Store) TopResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, coins, total, lives, ticks, created_at
		 FROM results
		 ORDER BY coins DESC, ticks ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Coins, &r.Total, &r.Lives, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearResults deletes every recorded result.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
