package engine

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedAgent always answers the same move
type fixedAgent struct {
	move  game.Position
	calls int
}

func (f *fixedAgent) FindMove(state game.State) (game.Position, metrics.SearchMetric) {
	f.calls++
	return f.move, metrics.SearchMetric{}
}

func (f *fixedAgent) Name() string {
	return "fixed"
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("full game between alpha-beta and random", func(t *testing.T) {
		agents := []searcher.Searcher{
			searcher.NewAlphaBeta(searcher.WithDepth(2), searcher.WithMetrics()),
			searcher.NewRandom(3),
		}
		e, err := LocalEngine(agents, 6)
		require.NoError(t, err)

		winner, gameMetric, moveMetrics := e.Run()

		require.True(t, e.State.IsFinished(), "Game should be played to the end")
		require.Equal(t, e.State.Winner(), winner)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, game.PlayerOne, gameMetric.StartingPlayer)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		one, two := e.State.TokenCounts()
		require.Equal(t, one, gameMetric.TokensOne)
		require.Equal(t, two, gameMetric.TokensTwo)
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))

		// Every move places one token on top of the four starting ones
		require.Equal(t, 4+gameMetric.TotalMoves, one+two)
		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			if mm.Player == game.PlayerOne {
				require.Greater(t, mm.Nodes, 0, "Alpha-beta moves should carry search metrics")
			}
		}
	})

	t.Run("illegal answers fall back to the first legal move", func(t *testing.T) {
		agent := &fixedAgent{move: game.Pass}
		e, err := LocalEngine([]searcher.Searcher{agent, searcher.NewRandom(1)}, 6)
		require.NoError(t, err)

		_, _, moveMetrics := e.Run()

		require.NotEmpty(t, moveMetrics)
		require.Equal(t, game.Position{Row: 1, Col: 2}, moveMetrics[0].Move)
		require.Greater(t, agent.calls, 0)
	})

	t.Run("stuck side passes", func(t *testing.T) {
		agents := []searcher.Searcher{searcher.NewAlphaBeta(), searcher.NewAlphaBeta()}
		e, err := LocalEngine(agents, 4)
		require.NoError(t, err)
		e.State = game.FromBoard([][]int{
			{1, 2, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, game.PlayerTwo)

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, 1, gameMetric.Passes)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, game.Position{Row: 0, Col: 2}, moveMetrics[0].Move)
		require.Equal(t, game.PlayerOne, winner)
		require.Equal(t, game.PlayerTwo, gameMetric.StartingPlayer)
	})
}

func TestLocalEngineSetup(t *testing.T) {
	require.Panics(t, func() {
		_, _ = LocalEngine([]searcher.Searcher{searcher.NewRandom(1)}, 8)
	}, "Should need two agents")

	_, err := LocalEngine([]searcher.Searcher{searcher.NewRandom(1), searcher.NewRandom(2)}, 5)
	require.Error(t, err, "Odd board sizes are rejected")
}
