// Package storage provides SQLite-based persistence for saved frame results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snooker/internal/config"
	"github.com/vovakirdan/tui-snooker/internal/snooker"
)

// Store manages the SQLite database connection for frame results.
type Store struct {
	db *sql.DB
}

// FrameResult is a saved snapshot of a frame's score.
type FrameResult struct {
	ID        int64
	FrameID   string // UUID, generated on save when empty
	Player1   string
	Player2   string
	Score1    int
	Score2    int
	RedsLeft  int
	Remaining int
	Cleared   bool // All colors potted in sequence
	CreatedAt time.Time
}

// Winner returns the name of the player ahead, or empty on a tie.
func (r FrameResult) Winner() string {
	switch {
	case r.Score1 > r.Score2:
		return r.Player1
	case r.Score2 > r.Score1:
		return r.Player2
	default:
		return ""
	}
}

// NewFrameResult builds a result from the current frame state and player names.
func NewFrameResult(f snooker.Frame, names [2]string) FrameResult {
	return FrameResult{
		Player1:   names[snooker.Player1],
		Player2:   names[snooker.Player2],
		Score1:    f.Score(snooker.Player1),
		Score2:    f.Score(snooker.Player2),
		RedsLeft:  f.RedsLeft,
		Remaining: f.Remaining,
		Cleared:   f.Cleared(),
	}
}

// PlayerStats contains aggregated results for one player name.
type PlayerStats struct {
	Player       string
	FramesPlayed int
	FramesWon    int
	HighScore    int
	TotalPoints  int64
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS frames (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			frame_id TEXT NOT NULL UNIQUE,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			reds_left INTEGER NOT NULL DEFAULT 0,
			remaining INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_frames_player1 ON frames(player1);
		CREATE INDEX IF NOT EXISTS idx_frames_player2 ON frames(player2);
		CREATE INDEX IF NOT EXISTS idx_frames_created ON frames(created_at DESC);
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

// SaveFrame records a frame result.
// Returns the stored result with its ID, FrameID and CreatedAt populated.
func (s *Store) SaveFrame(result FrameResult) (FrameResult, error) {
	if result.FrameID == "" {
		result.FrameID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO frames
		 (frame_id, player1, player2, score1, score2, reds_left, remaining, cleared)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		result.FrameID,
		result.Player1,
		result.Player2,
		result.Score1,
		result.Score2,
		result.RedsLeft,
		result.Remaining,
		result.Cleared,
	)
	if err != nil {
		return result, fmt.Errorf("storage: cannot save frame: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return result, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	saved, err := s.FrameByID(result.FrameID)
	if err != nil {
		return result, err
	}
	if saved == nil {
		result.ID = id
		return result, nil
	}
	return *saved, nil
}

const frameColumns = `id, frame_id, player1, player2, score1, score2, reds_left, remaining, cleared, created_at`

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFrame(row rowScanner) (FrameResult, error) {
	var r FrameResult
	var createdAt any
	err := row.Scan(
		&r.ID,
		&r.FrameID,
		&r.Player1,
		&r.Player2,
		&r.Score1,
		&r.Score2,
		&r.RedsLeft,
		&r.Remaining,
		&r.Cleared,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// FrameByID retrieves a frame result by its frame ID.
// Returns nil without error if no such frame exists.
func (s *Store) FrameByID(frameID string) (*FrameResult, error) {
	r, err := scanFrame(s.db.QueryRow(
		`SELECT `+frameColumns+` FROM frames WHERE frame_id = ?`,
		frameID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frame: %w", err)
	}
	return &r, nil
}

// RecentFrames retrieves the most recently saved frames.
func (s *Store) RecentFrames(limit int) ([]FrameResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+frameColumns+`
		 FROM frames
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	return collectFrames(rows)
}

// PlayerFrames retrieves the most recent frames involving the given player name.
func (s *Store) PlayerFrames(player string, limit int) ([]FrameResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+frameColumns+`
		 FROM frames
		 WHERE player1 = ? OR player2 = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player frames: %w", err)
	}
	return collectFrames(rows)
}

func collectFrames(rows *sql.Rows) ([]FrameResult, error) {
	defer rows.Close()

	var results []FrameResult
	for rows.Next() {
		r, err := scanFrame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// DeleteFrame removes a saved frame. Deleting an unknown frame is not an error.
func (s *Store) DeleteFrame(frameID string) error {
	_, err := s.db.Exec("DELETE FROM frames WHERE frame_id = ?", frameID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete frame: %w", err)
	}
	return nil
}

// ClearFrames deletes all saved frames.
func (s *Store) ClearFrames() error {
	_, err := s.db.Exec("DELETE FROM frames")
	if err != nil {
		return fmt.Errorf("storage: cannot clear frames: %w", err)
	}
	return nil
}

// GetPlayerStats retrieves aggregated statistics for a player name.
func (s *Store) GetPlayerStats(player string) (*PlayerStats, error) {
	stats := &PlayerStats{Player: player}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT
			COUNT(*),
			COALESCE(SUM(CASE
				WHEN player1 = ? AND score1 > score2 THEN 1
				WHEN player2 = ? AND score2 > score1 THEN 1
				ELSE 0 END), 0),
			COALESCE(MAX(CASE WHEN player1 = ? THEN score1 ELSE score2 END), 0),
			COALESCE(SUM(CASE WHEN player1 = ? THEN score1 ELSE score2 END), 0),
			MAX(created_at)
		 FROM frames
		 WHERE player1 = ? OR player2 = ?`,
		player, player, player, player, player, player,
	).Scan(&stats.FramesPlayed, &stats.FramesWon, &stats.HighScore, &stats.TotalPoints, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// Players returns every player name that appears in a saved frame, sorted.
func (s *Store) Players() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT name FROM (
			SELECT player1 AS name FROM frames
			UNION
			SELECT player2 AS name FROM frames
		 ) ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return names, nil
}
