package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapesHaveFourCells(t *testing.T) {
	for pt := range PieceType(PieceTypeCount) {
		for o := range Orientation(4) {
			assert.Len(t, ShapeCells(pt, o), 4, "%s/%d", pt, o)
		}
	}
}

func TestTurnCellsCoverTargetShape(t *testing.T) {
	for pt := range PieceType(PieceTypeCount) {
		for o := range Orientation(4) {
			for _, to := range []Orientation{o.Next(), o.Prev()} {
				turn := make(map[Offset]bool)
				for _, off := range turnCells(pt, o, to) {
					turn[off] = true
				}
				for _, off := range ShapeCells(pt, to) {
					assert.True(t, turn[off], "%s turning %d->%d misses %v", pt, o, to, off)
				}
			}
		}
	}
}

func TestZRotationRespectsStack(t *testing.T) {
	b, err := NewBoard(20, 10)
	require.NoError(t, err)
	blocker := fill(b, 6, 5)
	p := NewPiece(b, PieceZ, OrientLeft, 5, 3)
	b.AddPiece(p)

	// Box cell (1,2) of Z up is not in the sweep mask of Z left.
	assert.False(t, p.Rotate())
	assert.Equal(t, OrientLeft, p.Orient)
	assert.Equal(t, blocker, b.Cell(6, 5).Piece)
}

func TestZCounterRotationRespectsStack(t *testing.T) {
	b, err := NewBoard(20, 10)
	require.NoError(t, err)
	blocker := fill(b, 7, 5)
	p := NewPiece(b, PieceZ, OrientLeft, 5, 3)
	b.AddPiece(p)

	assert.False(t, p.CounterRotate())
	assert.Equal(t, OrientLeft, p.Orient)
	p.Shift(-1)
	assert.False(t, b.IsEmpty(7, 5), "stack cell must survive the piece moving away")
	assert.Equal(t, blocker, b.Cell(7, 5).Piece)
}

func TestCanMoveAboveGrid(t *testing.T) {
	b, err := NewBoard(20, 10)
	require.NoError(t, err)
	p := NewPiece(b, PieceS, OrientUp, -3, 3)

	assert.True(t, p.CanMove(-3, 3))
	assert.True(t, p.CanMove(-10, 3), "rows above the grid are passable")
	assert.False(t, p.CanMove(-3, -1), "columns stay bounded above the grid")
	assert.False(t, p.CanMove(19, 3), "cannot leave the bottom")
}

func TestShiftStopsAtWallsAndStack(t *testing.T) {
	b, err := NewBoard(20, 10)
	require.NoError(t, err)
	p := NewPiece(b, PieceO, OrientUp, 5, 0)
	b.AddPiece(p)

	assert.False(t, p.Shift(-1))
	assert.Equal(t, 0, p.Col)

	fill(b, 5, 3)
	assert.True(t, p.Shift(1))
	assert.False(t, p.Shift(1))
	assert.Equal(t, 1, p.Col)
	assert.True(t, b.IsEmpty(5, 0))
	assert.Equal(t, p.ID(), b.Cell(5, 1).Piece)
	assert.Equal(t, p.ID(), b.Cell(6, 2).Piece)
}

func TestRotateWritesNewShape(t *testing.T) {
	b, err := NewBoard(20, 10)
	require.NoError(t, err)
	p := NewPiece(b, PieceI, OrientRight, 5, 3)
	b.AddPiece(p)

	require.True(t, p.Rotate())
	assert.Equal(t, OrientDown, p.Orient)
	for _, pt := range p.Cells() {
		assert.Equal(t, p.ID(), b.Cell(pt.Row, pt.Col).Piece)
	}
	assert.Len(t, occupied(b), 4)

	require.True(t, p.CounterRotate())
	assert.Equal(t, OrientRight, p.Orient)
	assert.Len(t, occupied(b), 4)
}

func TestRotateRefusedBySweptCell(t *testing.T) {
	b, err := NewBoard(20, 10)
	require.NoError(t, err)
	p := NewPiece(b, PieceT, OrientUp, 5, 3)
	b.AddPiece(p)

	// The sweep of T up includes box cell (2,2), outside its current shape.
	fill(b, 7, 5)
	assert.False(t, p.Rotate())
	assert.Equal(t, OrientUp, p.Orient)
}

func TestRotationNeverOverlapsOrLeavesGrid(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := range 40 {
		b, err := NewBoard(8, 6)
		require.NoError(t, err)
		blocked := make(map[Point]bool)
		for r := range 8 {
			for c := range 6 {
				if rng.IntN(100) < 30 {
					fill(b, r, c)
					blocked[Point{Row: r, Col: c}] = true
				}
			}
		}

		for pt := range PieceType(PieceTypeCount) {
			for o := range Orientation(4) {
				for row := -2; row < 8; row++ {
					for col := -1; col < 6; col++ {
						for _, ccw := range []bool{false, true} {
							p := NewPiece(b, pt, o, row, col)
							if !p.CanMove(row, col) {
								break
							}
							b.AddPiece(p)
							turned := p.Rotate
							if ccw {
								turned = p.CounterRotate
							}
							if turned() {
								for _, cell := range p.Cells() {
									assert.True(t, cell.Col >= 0 && cell.Col < 6 && cell.Row < 8,
										"round %d: %s out of bounds at %v", round, pt, cell)
									assert.False(t, blocked[cell],
										"round %d: %s overlaps at %v", round, pt, cell)
								}
							}
							b.EasePieceState(p)
							b.pieces.Del(p.ID())
						}
					}
				}
			}
		}
	}
}

func TestHardDropAndLock(t *testing.T) {
	b, err := NewBoard(20, 10)
	require.NoError(t, err)
	p := NewPiece(b, PieceO, OrientUp, -3, 4)
	b.AddPiece(p)

	assert.True(t, p.CanFall(1))
	assert.Equal(t, 21, p.HardDrop())
	assert.Equal(t, 18, p.Row)
	assert.False(t, p.CanFall(1))
	assert.False(t, p.Fall())

	p.Lock()
	assert.True(t, p.Locked())
	assert.False(t, p.Shift(-1))
	assert.False(t, p.Rotate())
	assert.Equal(t, 4, p.Col)
}

func TestAboveGrid(t *testing.T) {
	b, err := NewBoard(20, 10)
	require.NoError(t, err)

	assert.True(t, NewPiece(b, PieceI, OrientRight, -2, 3).AboveGrid())
	assert.False(t, NewPiece(b, PieceI, OrientRight, -1, 3).AboveGrid())
}
