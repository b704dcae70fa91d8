package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/bot"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// MatchResult is the outcome of one finished game.
type MatchResult struct {
	ID     string
	Winner tictactoe.Mark
	Board  tictactoe.Board
	Plies  int
}

func (that *MatchResult) IsDraw() bool {
	return that.Winner == tictactoe.Empty
}

type GamePlayService interface {
	PlayMatch(ctx context.Context) (*MatchResult, error)
}

type gamePlayService struct {
	logger *slog.Logger

	conf  config.Match
	src   bot.RandSource
	input *bufio.Scanner
	out   *termenv.Output
}

func NewGamePlayService(logger *slog.Logger, conf config.Match, src bot.RandSource, input io.Reader, out *termenv.Output) GamePlayService {
	return &gamePlayService{
		logger: logger,
		conf:   conf,
		src:    src,
		input:  bufio.NewScanner(input),
		out:    out,
	}
}

// PlayMatch - plays one game between the configured players until it is over.
func (that *gamePlayService) PlayMatch(ctx context.Context) (*MatchResult, error) {
	matchID := uuid.NewString()
	log := that.logger.With("method", "PlayMatch", "match_id", matchID)

	playerX, err := bot.NewPlayer(that.conf.PlayerX, that.src)
	if err != nil {
		return nil, fmt.Errorf("failed to create player x: %w", err)
	}

	playerO, err := bot.NewPlayer(that.conf.PlayerO, that.src)
	if err != nil {
		return nil, fmt.Errorf("failed to create player o: %w", err)
	}

	game, err := tictactoe.NewGame(playerX, playerO, tictactoe.WithAutoplay(that.conf.Autoplay))
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("match started", "player_x", that.conf.PlayerX, "player_o", that.conf.PlayerO, "board", game.String())
	that.printBoard(game)

	for game.IsInProgress() {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("match interrupted: %w", err)
		}

		mark := game.Turn()

		position, err := that.choose(game, mark)
		if err != nil {
			return nil, err
		}

		if err = game.Move(mark, position); err != nil {
			if errors.Is(err, apperror.ErrCellOccupied) || errors.Is(err, apperror.ErrInvalidCell) {
				fmt.Fprintf(that.out, "%v, try again\n", err)
				continue
			}

			return nil, fmt.Errorf("failed to make move: %w", err)
		}

		log.Debug("move made", "mark", mark.String(), "position", position, "board", game.String())
		that.printBoard(game)
	}

	result := &MatchResult{
		ID:     matchID,
		Winner: game.Winner(),
		Board:  game.Grid(),
		Plies:  tictactoe.GridSize - len(game.OpenSpaces()),
	}

	log.Info("match finished", "winner", result.Winner.String(), "plies", result.Plies, "board", game.String())
	that.printResult(result)

	return result, nil
}

// choose - asks the seat to move for a position. Decision makers only get
// here when autoplay is off.
func (that *gamePlayService) choose(game *tictactoe.Game, mark tictactoe.Mark) (int, error) {
	if decider, ok := game.Player(mark).(tictactoe.DecisionMaker); ok && decider.IsComputer() {
		position, err := decider.NextMove(game, mark)
		if err != nil {
			return 0, fmt.Errorf("player %s failed to choose a move: %w", mark, err)
		}

		return position, nil
	}

	for {
		fmt.Fprintf(that.out, "player %s, pick a cell %v: ", that.styleMark(mark), game.OpenSpaces())

		if !that.input.Scan() {
			if err := that.input.Err(); err != nil {
				return 0, fmt.Errorf("failed to read move: %w", err)
			}

			return 0, apperror.ErrInputExhausted
		}

		position, err := strconv.Atoi(strings.TrimSpace(that.input.Text()))
		if err != nil {
			fmt.Fprintln(that.out, "not a number, try again")
			continue
		}

		return position, nil
	}
}

func (that *gamePlayService) printBoard(game *tictactoe.Game) {
	fmt.Fprintf(that.out, "\n%s\n\n", tictactoe.FormatGrid(game.Grid(), that.styleMark))
}

func (that *gamePlayService) printResult(result *MatchResult) {
	if result.IsDraw() {
		fmt.Fprintln(that.out, that.out.String("draw").Bold())
		return
	}

	fmt.Fprintln(that.out, that.out.String("winner:").Bold(), that.styleMark(result.Winner))
}

func (that *gamePlayService) styleMark(mark tictactoe.Mark) string {
	switch mark {
	case tictactoe.X:
		return that.out.String(mark.String()).Foreground(that.out.Color("1")).Bold().String()
	case tictactoe.O:
		return that.out.String(mark.String()).Foreground(that.out.Color("4")).Bold().String()
	default:
		return that.out.String(mark.String()).Faint().String()
	}
}
