package game

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper-classic/internal/mines"
)

var ErrGameOver = errors.New("game is over, start a new one")

// Session owns the one board that is in play. Every method holds the session
// lock for its whole duration, so board operations never interleave.
type Session struct {
	mu     sync.Mutex
	logger *slog.Logger
	rnd    *rand.Rand

	id    uuid.UUID
	board *mines.Board
	over  bool
}

func New(logger *slog.Logger, rnd *rand.Rand, d mines.Difficulty) *Session {
	s := &Session{logger: logger, rnd: rnd}
	s.newGame(d)
	return s
}

type State struct {
	GameID     string           `json:"game_id"`
	Difficulty string           `json:"difficulty"`
	Over       bool             `json:"over"`
	Board      mines.Snapshot   `json:"board"`
	Size       mines.Difficulty `json:"size"`
}

func (s *Session) state() State {
	return State{
		GameID:     s.id.String(),
		Difficulty: DifficultyName(s.board.Difficulty()),
		Over:       s.over,
		Board:      s.board.Snapshot(),
		Size:       s.board.Difficulty(),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Session) newGame(d mines.Difficulty) {
	s.id = uuid.New()
	s.board = mines.Generate(d, s.rnd)
	s.over = false
	s.logger.Info("new game",
		slog.String("game_id", s.id.String()),
		slog.String("difficulty", d.String()),
	)
	s.logger.Debug("board\n" + s.board.String())
}

// NewGame throws the current board away and deals a fresh one.
func (s *Session) NewGame(d mines.Difficulty) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newGame(d)
	return s.state()
}

func (s *Session) reveal(row, col int) (mines.RevealResult, error) {
	if s.over {
		return mines.NoOp, ErrGameOver
	}
	res := s.board.RevealSquare(row, col)
	if res == mines.BombTriggered {
		s.over = true
		s.logger.Info("bomb triggered",
			slog.String("game_id", s.id.String()),
			slog.Int("row", row), slog.Int("col", col),
			slog.Int("opened", s.board.OpenedCount()),
			slog.Int("flags", s.board.FlagCount()),
		)
	}
	return res, nil
}

// Reveal opens a cell. Once a bomb has gone off every further move fails
// with [ErrGameOver] until [Session.NewGame] is called.
func (s *Session) Reveal(row, col int) (mines.RevealResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reveal(row, col)
}

func (s *Session) toggleFlag(row, col int) error {
	if s.over {
		return ErrGameOver
	}
	s.board.ToggleFlag(row, col)
	return nil
}

func (s *Session) ToggleFlag(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toggleFlag(row, col)
}

func (s *Session) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.over
}
