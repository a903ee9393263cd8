package mines

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		cell Cell
		want Glyph
	}{
		{Cell{}, Closed},
		{Cell{IsBomb: true}, Closed},
		{Cell{IsFlagged: true}, Flag},
		{Cell{IsBomb: true, IsFlagged: true}, Flag},
		{Cell{IsOpened: true, IsBomb: true}, Bomb},
		{Cell{IsOpened: true}, Blank},
		{Cell{IsOpened: true, BombsAround: 3}, Glyph("3")},
		{Cell{IsOpened: true, BombsAround: 8}, Glyph("8")},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.cell.Glyph(), "%+v", test.cell)
	}
}

func TestBoardString(t *testing.T) {
	b := fromLayout(t,
		"*..",
		"...",
		"...",
	)
	b.ToggleFlag(0, 0)
	b.RevealSquare(2, 2)

	assert.Equal(t, "F 1  \n1 1  \n     \n", b.String())
}

func TestSnapshotHidesClosedCells(t *testing.T) {
	b := fromLayout(t,
		"*.",
		"..",
	)
	b.RevealSquare(1, 1)

	s := b.Snapshot()
	require.Equal(t, 2, s.Rows)
	require.Equal(t, 2, s.Cols)

	assert.Equal(t, CellView{Glyph: Closed}, s.Cells[0][0])
	assert.Equal(t, CellView{Opened: true, BombsAround: 1, Glyph: Glyph("1")}, s.Cells[1][1])

	b.RevealSquare(0, 0)
	assert.Equal(t, CellView{Glyph: Closed}, s.Cells[0][0], "snapshot must not alias the board")
	assert.Equal(t, CellView{Opened: true, Bomb: true, Glyph: Bomb}, b.Snapshot().Cells[0][0])
}

func TestSnapshotJSON(t *testing.T) {
	b := fromLayout(t, ".")
	b.RevealSquare(0, 0)

	data, err := json.Marshal(b.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"rows": 1,
		"cols": 1,
		"cells": [[{"opened": true, "flagged": false, "bomb": false, "bombs_around": 0, "glyph": " "}]]
	}`, string(data))
}
