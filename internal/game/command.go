package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("invalid arguments")
)

type command string

const (
	cmdGet     command = "g"
	cmdNewGame command = "n"
	cmdOpen    command = "o"
	cmdFlag    command = "f"
)

var commandNargs = map[command]int{
	cmdGet:     0,
	cmdNewGame: 1,
	cmdOpen:    2,
	cmdFlag:    2,
}

func parseRowCol(args []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: row must be an int", ErrBadArgs)
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: col must be an int", ErrBadArgs)
	}
	return row, col, nil
}

// Execute runs one line of the text protocol:
//
//	g              no-op, used to fetch the state
//	n <difficulty> start a new game
//	o <row> <col>  reveal a cell
//	f <row> <col>  toggle a flag
//
// The whole line runs under the session lock.
func (s *Session) Execute(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return ErrUnknownCommand
	}

	cmd, args := command(parts[0]), parts[1:]
	nargs, ok := commandNargs[cmd]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != len(args) {
		return fmt.Errorf("%w: %q takes %d, got %d", ErrBadArgs, cmd, nargs, len(args))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd {
	case cmdGet:
		return nil
	case cmdNewGame:
		d, err := ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		s.newGame(d)
		return nil
	case cmdOpen:
		row, col, err := parseRowCol(args)
		if err != nil {
			return err
		}
		_, err = s.reveal(row, col)
		return err
	case cmdFlag:
		row, col, err := parseRowCol(args)
		if err != nil {
			return err
		}
		return s.toggleFlag(row, col)
	}
	return ErrUnknownCommand
}
