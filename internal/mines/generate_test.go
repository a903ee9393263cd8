package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveBombsAround(b *Board, row, col int) (n int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if c, ok := b.Cell(row+dr, col+dc); ok && c.IsBomb {
				n++
			}
		}
	}
	return
}

func TestGenerateBombsAround(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		difficulty Difficulty
	}{
		{"easy", Easy},
		{"medium", Medium},
		{"hard", Hard},
		{"1x1", Difficulty{Rows: 1, Cols: 1}},
		{"1x40", Difficulty{Rows: 1, Cols: 40}},
		{"40x1", Difficulty{Rows: 40, Cols: 1}},
		{"7x3", Difficulty{Rows: 7, Cols: 3}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			for seed := range uint64(100) {
				r := rand.New(rand.NewPCG(seed, 2))
				b := Generate(test.difficulty, r)
				require.Equal(t, test.difficulty, b.Difficulty())
				for row := range b.Rows() {
					for col := range b.Cols() {
						c, ok := b.Cell(row, col)
						require.True(t, ok)
						assert.GreaterOrEqual(t, c.BombsAround, 0)
						assert.LessOrEqual(t, c.BombsAround, 8)
						require.Equal(t, naiveBombsAround(b, row, col), c.BombsAround,
							"seed %d @ %d:%d", seed, row, col)
					}
				}
			}
		})
	}
}

func TestGenerateBombProbability(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	r := rand.New(rand.NewPCG(1, 2))
	var bombs, cells int
	for range 500 {
		b := Generate(Hard, r)
		bombs += b.BombCount()
		cells += b.Rows() * b.Cols()
	}

	// 240000 trials put one standard deviation near 0.0007.
	fraction := float64(bombs) / float64(cells)
	assert.InDelta(t, float64(BombProbability)/100, fraction, 0.005)
}

func TestGenerateFreshBoard(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	b := Generate(Medium, r)

	assert.Equal(t, 16, b.Rows())
	assert.Equal(t, 16, b.Cols())
	assert.Zero(t, b.OpenedCount())
	assert.Zero(t, b.FlagCount())
}

func TestGenerateSameSeedSameBoard(t *testing.T) {
	a := Generate(Hard, rand.New(rand.NewPCG(7, 7)))
	b := Generate(Hard, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a.cells, b.cells)
}

func TestGenerateDegenerate(t *testing.T) {
	tests := []Difficulty{
		{Rows: 0, Cols: 0},
		{Rows: 0, Cols: 5},
		{Rows: 5, Cols: 0},
		{Rows: -1, Cols: 3},
	}

	for _, d := range tests {
		t.Run(d.String(), func(t *testing.T) {
			r := rand.New(rand.NewPCG(1, 2))
			b := Generate(d, r)
			assert.Zero(t, b.Rows())
			assert.Zero(t, b.Cols())
			assert.Equal(t, NoOp, b.RevealSquare(0, 0))
			assert.False(t, b.ToggleFlag(0, 0))
			assert.Empty(t, b.String())
			assert.Empty(t, b.Snapshot().Cells)
		})
	}
}

func TestBuildCounts(t *testing.T) {
	b := fromLayout(t,
		"*..",
		"...",
		"..*",
	)

	want := [][]int{
		{0, 1, 0},
		{1, 2, 1},
		{0, 1, 0},
	}
	for row := range 3 {
		for col := range 3 {
			c, _ := b.Cell(row, col)
			assert.Equal(t, want[row][col], c.BombsAround, "%d:%d", row, col)
		}
	}
	assert.Equal(t, 2, b.BombCount())
}
