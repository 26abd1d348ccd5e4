package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func smallConfig(t *testing.T) Config {
	dir := t.TempDir()
	return Config{
		Name:      "small",
		BoardSize: 4,
		Games:     4,
		OutputDir: filepath.Join(dir, "results"),
		Database:  filepath.Join(dir, "games.db"),
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: metrics.AlphaBetaAgent, Depth: 2},
			{ID: 2, Kind: metrics.RandomAgent, Seed: 5},
		},
		MatchUps: [][]int{{1, 2}},
	}
}

/**
 * Runs a 4x4 experiment and checks that:
 * - every game is recorded once with a fresh UUID
 * - the starting agent alternates between games
 * - tallies add up to the number of games
 * - CSV files and the SQLite database hold the same games
 */
func TestRun(t *testing.T) {
	ctx := context.Background()
	cfg := smallConfig(t)

	result, err := Run(ctx, cfg)
	require.NoError(t, err)
	require.Len(t, result.Games, cfg.Games)

	t.Run("records", func(t *testing.T) {
		ids := make(map[string]bool)
		moves := 0
		for i, record := range result.Games {
			_, err := uuid.Parse(record.ID)
			require.NoError(t, err)
			require.False(t, ids[record.ID], "Game IDs should be unique")
			ids[record.ID] = true

			if i%2 == 0 {
				require.Equal(t, 1, record.Agent1)
				require.Equal(t, 2, record.Agent2)
			} else {
				require.Equal(t, 2, record.Agent1)
				require.Equal(t, 1, record.Agent2)
			}
			require.Equal(t, game.PlayerOne, record.StartingPlayer)
			moves += record.TotalMoves
		}
		require.Len(t, result.Moves, moves)
		for _, move := range result.Moves {
			require.True(t, ids[move.Game])
		}
	})

	t.Run("tallies", func(t *testing.T) {
		one, two := result.Tallies[1], result.Tallies[2]
		require.Equal(t, cfg.Games, one.Wins+one.Losses+one.Draws)
		require.Equal(t, cfg.Games, two.Wins+two.Losses+two.Draws)
		require.Equal(t, one.Wins, two.Losses)
		require.Equal(t, one.Draws, two.Draws)
	})

	t.Run("csv output", func(t *testing.T) {
		require.NotEmpty(t, result.Dir)
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			_, err := os.Stat(filepath.Join(result.Dir, name))
			require.NoError(t, err, name)
		}
	})

	t.Run("database output", func(t *testing.T) {
		s, err := store.Open(cfg.Database)
		require.NoError(t, err)
		defer s.Close()

		games, err := s.Games(ctx)
		require.NoError(t, err)
		require.Len(t, games, cfg.Games)
		for _, g := range games {
			count, err := s.CountMoves(ctx, g.ID)
			require.NoError(t, err)
			require.Equal(t, g.TotalMoves, count)
		}
	})
}

func TestRunWithoutOutputs(t *testing.T) {
	cfg := smallConfig(t)
	cfg.OutputDir = ""
	cfg.Database = ""
	cfg.Games = 1

	result, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	require.Empty(t, result.Dir)
	require.Len(t, result.Games, 1)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Games = 0
	_, err := Run(context.Background(), cfg)
	require.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Run(ctx, smallConfig(t))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, result.Games)
}

func TestCreateSearcher(t *testing.T) {
	t.Run("alpha-beta", func(t *testing.T) {
		s, err := createSearcher(metrics.AgentConfig{Kind: metrics.AlphaBetaAgent, Depth: 3}, 0)
		require.NoError(t, err)
		require.Equal(t, "alphabeta(depth=3)", s.Name())
	})

	t.Run("default depth", func(t *testing.T) {
		s, err := createSearcher(metrics.AgentConfig{Kind: metrics.AlphaBetaAgent}, 0)
		require.NoError(t, err)
		require.Equal(t, searcher.NewAlphaBeta().Name(), s.Name())
	})

	t.Run("random", func(t *testing.T) {
		s, err := createSearcher(metrics.AgentConfig{Kind: metrics.RandomAgent, Seed: 1}, 2)
		require.NoError(t, err)
		require.Equal(t, "random", s.Name())
	})

	t.Run("unknown evaluation", func(t *testing.T) {
		_, err := createSearcher(metrics.AgentConfig{Kind: metrics.AlphaBetaAgent, Evaluation: "mobility"}, 0)
		require.Error(t, err)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := createSearcher(metrics.AgentConfig{Kind: "mcts"}, 0)
		require.Error(t, err)
	})
}
