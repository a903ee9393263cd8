package mines

type RevealResult uint8

const (
	NoOp RevealResult = iota
	Opened
	BombTriggered
)

func (r RevealResult) String() string {
	switch r {
	case NoOp:
		return "noop"
	case Opened:
		return "opened"
	case BombTriggered:
		return "bomb"
	default:
		return "unknown"
	}
}

// RevealSquare opens the cell at (row, col). Positions off the board and
// cells that are already open are ignored. Opening a bomb stops there;
// opening anything else floods outward through the zero region around it.
func (b *Board) RevealSquare(row, col int) RevealResult {
	if !b.InBounds(row, col) {
		return NoOp
	}

	c := &b.cells[b.index(row, col)]
	if c.IsOpened {
		return NoOp
	}

	c.IsOpened = true
	c.IsFlagged = false

	if c.IsBomb {
		return BombTriggered
	}

	b.floodFill(row, col)
	return Opened
}

// floodFill opens the connected zero region containing (row, col) together
// with its numbered border. Bombs and flagged cells are never opened, so a
// flag stops propagation. The work list is a stack and each cell is pushed
// at most once.
func (b *Board) floodFill(row, col int) {
	start := b.index(row, col)
	queued := make([]bool, len(b.cells))
	queued[start] = true
	todo := []int{start}

	for len(todo) > 0 {
		i := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		c := &b.cells[i]
		if c.IsBomb || c.IsFlagged {
			continue
		}
		c.IsOpened = true

		if c.BombsAround != 0 {
			continue
		}

		for rr, cc := range b.neighbours(i/b.cols, i%b.cols) {
			j := b.index(rr, cc)
			if b.cells[j].IsOpened || queued[j] {
				continue
			}
			queued[j] = true
			todo = append(todo, j)
		}
	}
}

// ToggleFlag flips the flag on a closed cell and reports the new state.
// Open cells and positions off the board are left alone.
func (b *Board) ToggleFlag(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	c := &b.cells[b.index(row, col)]
	if c.IsOpened {
		return false
	}
	c.IsFlagged = !c.IsFlagged
	return c.IsFlagged
}
