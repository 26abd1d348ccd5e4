package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"othello/experiments/metrics"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	agent1 INTEGER,
	agent2 INTEGER,
	starting_player INTEGER,
	winner INTEGER,
	tokens_one INTEGER,
	tokens_two INTEGER,
	total_moves INTEGER,
	passes INTEGER,
	started_at TEXT,
	ended_at TEXT
);
CREATE TABLE IF NOT EXISTS moves (
	game_id TEXT REFERENCES games(id),
	step INTEGER,
	player INTEGER,
	move_row INTEGER,
	move_col INTEGER,
	depth INTEGER,
	nodes INTEGER,
	leaves INTEGER,
	cutoffs INTEGER,
	score INTEGER,
	duration_ns INTEGER,
	PRIMARY KEY (game_id, step)
);
`

// Store persists finished games in SQLite
type Store struct {
	db *sql.DB
}

// Open creates the database file and its tables if needed
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Debug().Msgf("database initialized at %s", path)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGame stores a game and its moves in one transaction
func (s *Store) SaveGame(ctx context.Context, record metrics.GameRecord, moves []metrics.MoveRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO games (id, agent1, agent2, starting_player, winner, tokens_one, tokens_two, total_moves, passes, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Agent1,
		record.Agent2,
		record.StartingPlayer,
		record.Winner,
		record.TokensOne,
		record.TokensTwo,
		record.TotalMoves,
		record.Passes,
		record.StartTime.UTC().Format(time.RFC3339Nano),
		record.EndTime.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert game %s: %w", record.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO moves (game_id, step, player, move_row, move_col, depth, nodes, leaves, cutoffs, score, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare move insert: %w", err)
	}
	defer stmt.Close()

	for _, move := range moves {
		_, err = stmt.ExecContext(ctx,
			record.ID,
			move.Step,
			move.Player,
			move.Move.Row,
			move.Move.Col,
			move.Depth,
			move.Nodes,
			move.Leaves,
			move.Cutoffs,
			move.Score,
			move.Duration.Nanoseconds(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert move %d of game %s: %w", move.Step, record.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game %s: %w", record.ID, err)
	}
	return nil
}

// Games returns all stored games ordered by start time
func (s *Store) Games(ctx context.Context) ([]metrics.GameRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, agent1, agent2, starting_player, winner, tokens_one, tokens_two, total_moves, passes, started_at, ended_at
		FROM games ORDER BY started_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var records []metrics.GameRecord
	for rows.Next() {
		var r metrics.GameRecord
		var startedAt, endedAt string
		err := rows.Scan(&r.ID, &r.Agent1, &r.Agent2, &r.StartingPlayer, &r.Winner, &r.TokensOne, &r.TokensTwo,
			&r.TotalMoves, &r.Passes, &startedAt, &endedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		if r.StartTime, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, fmt.Errorf("failed to parse start time of game %s: %w", r.ID, err)
		}
		if r.EndTime, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, fmt.Errorf("failed to parse end time of game %s: %w", r.ID, err)
		}
		r.Duration = r.EndTime.Sub(r.StartTime)
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountMoves returns the number of moves stored for a game
func (s *Store) CountMoves(ctx context.Context, gameID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM moves WHERE game_id = ?`, gameID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves of game %s: %w", gameID, err)
	}
	return count, nil
}
