package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"othello/experiments/metrics"
	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "db", "games.db"))
	require.NoError(t, err)
	defer s.Close()

	start := time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)
	record := metrics.GameRecord{
		ID:     "5f0c6a1e-0000-4000-8000-000000000001",
		Agent1: 1,
		Agent2: 2,
		GameMetric: metrics.GameMetric{
			StartingPlayer: game.PlayerOne,
			Winner:         game.PlayerOne,
			TokensOne:      40,
			TokensTwo:      24,
			StartTime:      start,
			EndTime:        start.Add(1500 * time.Millisecond),
			TotalMoves:     2,
			Passes:         1,
		},
	}
	moves := []metrics.MoveRecord{
		{Game: record.ID, MoveMetric: metrics.MoveMetric{Step: 1, Player: game.PlayerOne, Move: game.Position{Row: 2, Col: 3},
			SearchMetric: metrics.SearchMetric{Depth: 4, Nodes: 300, Leaves: 200, Cutoffs: 12, Score: 5}}},
		{Game: record.ID, MoveMetric: metrics.MoveMetric{Step: 2, Player: game.PlayerTwo, Move: game.Position{Row: 2, Col: 2}}},
	}

	t.Run("saving and loading a game", func(t *testing.T) {
		require.NoError(t, s.SaveGame(ctx, record, moves))

		games, err := s.Games(ctx)
		require.NoError(t, err)
		require.Len(t, games, 1)
		got := games[0]
		require.Equal(t, record.ID, got.ID)
		require.Equal(t, record.Winner, got.Winner)
		require.Equal(t, record.TokensOne, got.TokensOne)
		require.Equal(t, record.Passes, got.Passes)
		require.True(t, record.StartTime.Equal(got.StartTime))
		require.Equal(t, 1500*time.Millisecond, got.Duration)

		count, err := s.CountMoves(ctx, record.ID)
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})

	t.Run("rejecting duplicate game IDs atomically", func(t *testing.T) {
		err := s.SaveGame(ctx, record, moves[:1])
		require.Error(t, err)

		count, err := s.CountMoves(ctx, record.ID)
		require.NoError(t, err)
		require.Equal(t, 2, count, "Failed save should not leave moves behind")
	})

	t.Run("counting moves of an unknown game", func(t *testing.T) {
		count, err := s.CountMoves(ctx, "missing")
		require.NoError(t, err)
		require.Zero(t, count)
	})
}
