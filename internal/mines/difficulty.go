package mines

import "fmt"

// Difficulty is the size of a board. It carries no behaviour of its own: a
// harder game is just a bigger grid with the same bomb probability.
type Difficulty struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

var (
	Easy   = Difficulty{Rows: 9, Cols: 9}
	Medium = Difficulty{Rows: 16, Cols: 16}
	Hard   = Difficulty{Rows: 16, Cols: 30}
)

func (d Difficulty) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}
