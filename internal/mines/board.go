package mines

import (
	"iter"
	"log/slog"
)

var Log *slog.Logger = slog.Default()

type Cell struct {
	IsBomb      bool
	IsOpened    bool
	IsFlagged   bool
	BombsAround int /* bombs among the Moore neighbours, fixed at generation */
}

// Board is a rows x cols grid stored row-major: cell (row, col) lives at
// index row*cols + col.
type Board struct {
	rows, cols int
	cells      []Cell
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

func (b *Board) Difficulty() Difficulty {
	return Difficulty{Rows: b.rows, Cols: b.cols}
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.rows && 0 <= col && col < b.cols
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

// Cell returns a copy of the cell at (row, col). ok is false when the
// position lies outside the board.
func (b *Board) Cell(row, col int) (cell Cell, ok bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[b.index(row, col)], true
}

func (b *Board) count(pred func(c *Cell) bool) (n int) {
	for i := range b.cells {
		if pred(&b.cells[i]) {
			n++
		}
	}
	return n
}

func (b *Board) BombCount() int {
	return b.count(func(c *Cell) bool { return c.IsBomb })
}

func (b *Board) OpenedCount() int {
	return b.count(func(c *Cell) bool { return c.IsOpened })
}

func (b *Board) FlagCount() int {
	return b.count(func(c *Cell) bool { return c.IsFlagged })
}

// neighbours yields the in-bounds Moore neighbours of (row, col), excluding
// the cell itself.
func (b *Board) neighbours(row, col int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				rr, cc := row+dr, col+dc
				if !b.InBounds(rr, cc) {
					continue
				}
				if !yield(rr, cc) {
					return
				}
			}
		}
	}
}
