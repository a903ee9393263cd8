package mines

import (
	"log/slog"
	"math/rand/v2"
)

// BombProbability is the chance, in percent, that any single cell holds a
// bomb. Every cell is an independent trial.
const BombProbability = 15

// Generate builds a fresh board for d. There is no target bomb count and no
// guarantee that the board is solvable or holds any bomb at all.
// Non-positive dimensions yield an empty board.
func Generate(d Difficulty, r *rand.Rand) *Board {
	b := build(d, func(int, int) bool {
		return r.IntN(100) < BombProbability
	})
	Log.Debug("generated board",
		slog.String("difficulty", d.String()),
		slog.Int("bombs", b.BombCount()),
	)
	return b
}

func build(d Difficulty, isBomb func(row, col int) bool) *Board {
	rows, cols := max(d.Rows, 0), max(d.Cols, 0)
	if rows == 0 || cols == 0 {
		rows, cols = 0, 0
	}

	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}

	for row := range rows {
		for col := range cols {
			b.cells[b.index(row, col)].IsBomb = isBomb(row, col)
		}
	}

	for row := range rows {
		for col := range cols {
			n := 0
			for rr, cc := range b.neighbours(row, col) {
				if b.cells[b.index(rr, cc)].IsBomb {
					n++
				}
			}
			b.cells[b.index(row, col)].BombsAround = n
		}
	}

	return b
}
