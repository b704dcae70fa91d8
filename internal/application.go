package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/bot"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrNoGames = errors.New("number of games must be positive")

// Summary counts the outcomes of a series of matches.
type Summary struct {
	XWins int
	OWins int
	Draws int
}

func (that *Summary) add(result *service.MatchResult) {
	switch result.Winner {
	case tictactoe.X:
		that.XWins++
	case tictactoe.O:
		that.OWins++
	default:
		that.Draws++
	}
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	profile := termenv.Ascii
	if conf.Color {
		profile = termenv.EnvColorProfile()
	}
	out := termenv.NewOutput(os.Stdout, termenv.WithProfile(profile))

	summary, err := PlayMatches(ctx, logger, conf.Match, os.Stdin, out)
	if err != nil {
		return err
	}

	log.Info("All matches finished", "x_wins", summary.XWins, "o_wins", summary.OWins, "draws", summary.Draws)

	return nil
}

// PlayMatches - plays the configured number of games back to back.
func PlayMatches(ctx context.Context, logger *slog.Logger, conf config.Match, input io.Reader, out *termenv.Output) (*Summary, error) {
	if conf.Games <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoGames, conf.Games)
	}

	seed := conf.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	gamePlay := service.NewGamePlayService(logger.With("component", "gameplay"), conf, bot.NewRandSource(seed), input, out)

	summary := &Summary{}
	for i := 0; i < conf.Games; i++ {
		result, err := gamePlay.PlayMatch(ctx)
		if err != nil {
			return nil, fmt.Errorf("match %d failed: %w", i+1, err)
		}

		summary.add(result)
	}

	return summary, nil
}
