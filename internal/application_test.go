package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/bot"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

func TestPlayMatches(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Counts every game", func(t *testing.T) {
		// Given: five games between random players
		var buf bytes.Buffer
		out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
		conf := config.Match{PlayerX: bot.KindRandom, PlayerO: bot.KindRandom, Autoplay: true, RandomSeed: 42, Games: 5}

		// When: they are played
		summary, err := PlayMatches(ctx, logger, conf, strings.NewReader(""), out)
		require.NoError(t, err)

		// Then: every game is counted once
		assert.Equal(t, 5, summary.XWins+summary.OWins+summary.Draws)
	})

	t.Run("Random never beats minimax", func(t *testing.T) {
		var buf bytes.Buffer
		out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
		conf := config.Match{PlayerX: bot.KindRandom, PlayerO: bot.KindMinimax, Autoplay: true, RandomSeed: 7, Games: 5}

		summary, err := PlayMatches(ctx, logger, conf, strings.NewReader(""), out)
		require.NoError(t, err)

		assert.Zero(t, summary.XWins)
	})

	t.Run("No games", func(t *testing.T) {
		conf := config.Match{PlayerX: bot.KindRandom, PlayerO: bot.KindRandom, Games: 0}

		_, err := PlayMatches(ctx, logger, conf, strings.NewReader(""), termenv.NewOutput(io.Discard))

		require.ErrorIs(t, err, ErrNoGames)
	})

	t.Run("Failing match", func(t *testing.T) {
		conf := config.Match{PlayerX: bot.KindHuman, PlayerO: bot.KindHuman, Autoplay: true, Games: 2}

		_, err := PlayMatches(ctx, logger, conf, strings.NewReader(""), termenv.NewOutput(io.Discard))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "match 1 failed")
	})
}
