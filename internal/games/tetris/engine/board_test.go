package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {20, 0}, {-1, 5}} {
		_, err := NewBoard(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

func TestBoardBoundsAndEmptiness(t *testing.T) {
	b, err := NewBoard(4, 3)
	require.NoError(t, err)

	assert.True(t, b.InBounds(0, 0))
	assert.True(t, b.InBounds(3, 2))
	assert.False(t, b.InBounds(-1, 0))
	assert.False(t, b.InBounds(4, 0))
	assert.False(t, b.InBounds(0, 3))

	assert.True(t, b.IsEmpty(1, 1))
	fill(b, 1, 1)
	assert.False(t, b.IsEmpty(1, 1))
	assert.False(t, b.IsEmpty(-1, 1), "out of bounds is never empty")
}

func TestCheckClearLinesShiftsRowsAbove(t *testing.T) {
	b, err := NewBoard(6, 4)
	require.NoError(t, err)

	fillRow(b, 2)
	fillRow(b, 4)
	fill(b, 0, 3)
	fill(b, 1, 1)
	fill(b, 3, 0)
	fill(b, 5, 2)
	require.Equal(t, 12, b.PieceCount())
	assert.Equal(t, []int{2, 4}, b.FullRows())

	started, completed := -1, -1
	n := b.CheckClearLines(0,
		func(n int) { started = n },
		func(n int) { completed = n })

	assert.Equal(t, 2, n)
	assert.Equal(t, 2, started)
	assert.Equal(t, 2, completed)
	assert.False(t, b.Clearing())

	want := map[Point]bool{
		{Row: 2, Col: 3}: true,
		{Row: 3, Col: 1}: true,
		{Row: 4, Col: 0}: true,
		{Row: 5, Col: 2}: true,
	}
	assert.Equal(t, want, occupied(b))
	assert.Equal(t, 4, b.PieceCount())
	assert.Empty(t, b.FullRows())
}

func TestCheckClearLinesWithoutFullRows(t *testing.T) {
	b, err := NewBoard(4, 4)
	require.NoError(t, err)
	fillRow(b, 3, 0)

	startCalled := false
	completed := -1
	n := b.CheckClearLines(5,
		func(int) { startCalled = true },
		func(n int) { completed = n })

	assert.Zero(t, n)
	assert.False(t, startCalled)
	assert.Zero(t, completed)
	assert.False(t, b.Clearing())
}

func TestCheckClearLinesDelayed(t *testing.T) {
	b, err := NewBoard(4, 4)
	require.NoError(t, err)
	fillRow(b, 3)
	fill(b, 2, 1)

	completed := 0
	b.CheckClearLines(3, nil, func(n int) { completed = n })
	require.True(t, b.Clearing())
	assert.Equal(t, []int{3}, b.ClearingRows())

	b.Tick()
	b.Tick()
	assert.True(t, b.Clearing())
	assert.Zero(t, completed)
	assert.False(t, b.IsEmpty(3, 0), "rows stay in place until the clear completes")

	b.Tick()
	assert.False(t, b.Clearing())
	assert.Equal(t, 1, completed)
	assert.Equal(t, map[Point]bool{{Row: 3, Col: 1}: true}, occupied(b))
}

func TestLineClearKeepsPieceOwnership(t *testing.T) {
	b, err := NewBoard(4, 4)
	require.NoError(t, err)

	o := NewPiece(b, PieceO, OrientUp, 2, 0)
	b.AddPiece(o)
	fill(b, 3, 2)
	fill(b, 3, 3)

	b.CheckClearLines(0, nil, nil)

	cells, ok := b.PieceCells(o.ID())
	require.True(t, ok)
	assert.Equal(t, []uint8{0, 1}, cells)
	assert.Equal(t, Cell{Piece: o.ID(), Index: 0, Type: PieceO}, b.Cell(3, 0))
	assert.Equal(t, Cell{Piece: o.ID(), Index: 1, Type: PieceO}, b.Cell(3, 1))
	assert.Equal(t, 1, b.PieceCount())
}

func TestLineClearDropsEmptiedPieces(t *testing.T) {
	b, err := NewBoard(4, 4)
	require.NoError(t, err)

	i := NewPiece(b, PieceI, OrientRight, 2, 0)
	b.AddPiece(i)
	require.Equal(t, []int{3}, b.FullRows())

	b.CheckClearLines(0, nil, nil)

	_, ok := b.PieceCells(i.ID())
	assert.False(t, ok)
	assert.Zero(t, b.PieceCount())
	assert.Empty(t, occupied(b))
}

func TestSettledPieceAboveTopDrains(t *testing.T) {
	b, err := NewBoard(4, 4)
	require.NoError(t, err)

	o := NewPiece(b, PieceO, OrientUp, -1, 0)
	b.AddPiece(o)
	o.Lock()
	b.Settle(o)

	cells, ok := b.PieceCells(o.ID())
	require.True(t, ok)
	assert.Equal(t, []uint8{2, 3}, cells, "only the visible row stays owned")

	fill(b, 0, 2)
	fill(b, 0, 3)
	b.CheckClearLines(0, nil, nil)

	_, ok = b.PieceCells(o.ID())
	assert.False(t, ok)
	assert.Zero(t, b.PieceCount())
	assert.Empty(t, occupied(b))
}

func TestBoardClear(t *testing.T) {
	b, err := NewBoard(4, 4)
	require.NoError(t, err)
	fillRow(b, 3)
	fill(b, 2, 2)
	b.CheckClearLines(10, nil, nil)
	require.True(t, b.Clearing())

	b.Clear()

	assert.False(t, b.Clearing())
	assert.Zero(t, b.PieceCount())
	assert.Empty(t, occupied(b))
}
