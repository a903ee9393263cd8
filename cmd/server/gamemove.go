package main

import (
	"fmt"
	"strings"
)

type GameMove uint8

const (
	Open GameMove = iota + 1
	Flag
	lastMove
)

func (m GameMove) String() string {
	switch m {
	case Open:
		return "open"
	case Flag:
		return "flag"
	default:
		return fmt.Sprintf("GameMove(%d)", uint8(m))
	}
}

var ErrBadMove error

func init() {
	var allowedMoves []string
	for m := Open; m < lastMove; m++ {
		allowedMoves = append(allowedMoves, "'"+m.String()+"'")
	}
	ErrBadMove = fmt.Errorf(
		"move must be one of %s", strings.Join(allowedMoves, ", "),
	)
}

func decodeGameMove(s string) (move GameMove, err error) {
	switch strings.ToLower(s) {
	case "open":
		move = Open
	case "flag":
		move = Flag
	default:
		err = ErrBadMove
	}
	return
}
