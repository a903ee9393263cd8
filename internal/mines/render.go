package mines

import (
	"strconv"
	"strings"
)

type Glyph string

const (
	Closed Glyph = "■"
	Flag   Glyph = "F"
	Bomb   Glyph = "*"
	Blank  Glyph = " "
)

func (c Cell) Glyph() Glyph {
	switch {
	case !c.IsOpened && c.IsFlagged:
		return Flag
	case !c.IsOpened:
		return Closed
	case c.IsBomb:
		return Bomb
	case c.BombsAround == 0:
		return Blank
	default:
		return Glyph(strconv.Itoa(c.BombsAround))
	}
}

// CellView is what a client may know about a cell. Closed cells report
// Bomb = false and BombsAround = 0 whatever lies beneath.
type CellView struct {
	Opened      bool  `json:"opened"`
	Flagged     bool  `json:"flagged"`
	Bomb        bool  `json:"bomb"`
	BombsAround int   `json:"bombs_around"`
	Glyph       Glyph `json:"glyph"`
}

type Snapshot struct {
	Rows  int          `json:"rows"`
	Cols  int          `json:"cols"`
	Cells [][]CellView `json:"cells"`
}

func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Rows:  b.rows,
		Cols:  b.cols,
		Cells: make([][]CellView, b.rows),
	}
	for row := range b.rows {
		s.Cells[row] = make([]CellView, b.cols)
		for col := range b.cols {
			c := b.cells[b.index(row, col)]
			v := CellView{
				Opened:  c.IsOpened,
				Flagged: c.IsFlagged,
				Glyph:   c.Glyph(),
			}
			if c.IsOpened {
				v.Bomb = c.IsBomb
				v.BombsAround = c.BombsAround
			}
			s.Cells[row][col] = v
		}
	}
	return s
}

// String draws the board one row per line, cells separated by a space.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.rows {
		for col := range b.cols {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(string(b.cells[b.index(row, col)].Glyph()))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
