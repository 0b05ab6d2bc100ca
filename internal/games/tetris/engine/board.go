package engine

import (
	"errors"

	"github.com/kamstrup/intmap"
)

// ErrInvalidDimensions is returned when a board is constructed with a
// non-positive number of rows or columns.
var ErrInvalidDimensions = errors.New("engine: board dimensions must be positive")

// PieceID identifies a piece placed on the board. Zero means no piece.
type PieceID uint32

// Cell is one grid position. An occupied cell references the piece that owns
// it and the index of that piece's sub-cell, instead of pointing at the piece.
type Cell struct {
	Piece PieceID
	Index uint8
	Type  PieceType
}

// Empty reports whether no piece occupies the cell.
func (c Cell) Empty() bool {
	return c.Piece == 0
}

// placedPiece is the arena entry for a piece: its shape type and the indices
// of the sub-cells that are still on the board.
type placedPiece struct {
	typ   PieceType
	cells []uint8
}

type pendingClear struct {
	rows       []int
	remaining  int
	onComplete func(int)
}

// Board is the fixed-size occupancy grid plus the arena of pieces that own
// its cells.
type Board struct {
	rows, cols int
	cells      []Cell
	pieces     *intmap.Map[PieceID, *placedPiece]
	lastID     PieceID
	pending    *pendingClear
}

// NewBoard creates an empty rows x cols board.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Board{
		rows:   rows,
		cols:   cols,
		cells:  make([]Cell, rows*cols),
		pieces: intmap.New[PieceID, *placedPiece](64),
	}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (row, col) lies inside the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// IsEmpty reports whether (row, col) is unoccupied. Out-of-bounds positions
// are reported as not empty.
func (b *Board) IsEmpty(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	return b.cells[row*b.cols+col].Empty()
}

// Cell returns the cell at (row, col); the zero Cell for out-of-bounds.
func (b *Board) Cell(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Cell{}
	}
	return b.cells[row*b.cols+col]
}

// Cells returns a copy of the grid as rows of cells.
func (b *Board) Cells() [][]Cell {
	out := make([][]Cell, b.rows)
	for r := range out {
		out[r] = make([]Cell, b.cols)
		copy(out[r], b.cells[r*b.cols:(r+1)*b.cols])
	}
	return out
}

// PieceCount returns how many placed pieces still own at least one cell.
func (b *Board) PieceCount() int {
	return b.pieces.Len()
}

// PieceCells returns the live sub-cell indices of a placed piece.
func (b *Board) PieceCells(id PieceID) ([]uint8, bool) {
	pp, ok := b.pieces.Get(id)
	if !ok {
		return nil, false
	}
	out := make([]uint8, len(pp.cells))
	copy(out, pp.cells)
	return out, true
}

// AddPiece registers p in the arena and writes its cells.
func (b *Board) AddPiece(p *Piece) {
	if p.shadow {
		return
	}
	b.lastID++
	p.id = b.lastID
	p.board = b
	cells := ShapeCells(p.Type, p.Orient)
	pp := &placedPiece{typ: p.Type, cells: make([]uint8, len(cells))}
	for i := range cells {
		pp.cells[i] = uint8(i)
	}
	b.pieces.Put(p.id, pp)
	b.SetPieceState(p)
}

// SetPieceState writes the cells of p at its current position and
// orientation. Cells above the grid are ignored.
func (b *Board) SetPieceState(p *Piece) {
	if p.shadow || p.id == 0 {
		return
	}
	for i, off := range ShapeCells(p.Type, p.Orient) {
		r, c := p.Row+off.Row, p.Col+off.Col
		if !b.InBounds(r, c) {
			continue
		}
		b.cells[r*b.cols+c] = Cell{Piece: p.id, Index: uint8(i), Type: p.Type}
	}
}

// Settle forgets the sub-cells of p that lie outside the grid. Called on
// lock, so a piece locked partly above the top still drains from the arena
// once its visible cells are cleared.
func (b *Board) Settle(p *Piece) {
	if p.shadow || p.id == 0 {
		return
	}
	for i, off := range ShapeCells(p.Type, p.Orient) {
		if !b.InBounds(p.Row+off.Row, p.Col+off.Col) {
			b.dropPieceCell(p.id, uint8(i))
		}
	}
}

// EasePieceState clears the cells p currently occupies.
func (b *Board) EasePieceState(p *Piece) {
	if p.shadow || p.id == 0 {
		return
	}
	for _, off := range ShapeCells(p.Type, p.Orient) {
		r, c := p.Row+off.Row, p.Col+off.Col
		if !b.InBounds(r, c) {
			continue
		}
		if b.cells[r*b.cols+c].Piece == p.id {
			b.cells[r*b.cols+c] = Cell{}
		}
	}
}

// FullRows returns the indices of completely occupied rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for r := range b.rows {
		full := true
		for c := 0; full && c < b.cols; c++ {
			full = !b.cells[r*b.cols+c].Empty()
		}
		if full {
			rows = append(rows, r)
		}
	}
	return rows
}

// CheckClearLines detects full rows. With none, onComplete(0) runs
// immediately. Otherwise onStart(n) runs immediately and the rows are removed
// after delay calls to Tick, followed by onComplete(n); a delay <= 0 removes
// them before returning. It returns the number of full rows found.
func (b *Board) CheckClearLines(delay int, onStart, onComplete func(int)) int {
	rows := b.FullRows()
	if len(rows) == 0 {
		if onComplete != nil {
			onComplete(0)
		}
		return 0
	}
	if onStart != nil {
		onStart(len(rows))
	}
	b.pending = &pendingClear{rows: rows, remaining: delay, onComplete: onComplete}
	if delay <= 0 {
		b.finishClear()
	}
	return len(rows)
}

// Clearing reports whether a line clear is waiting to complete.
func (b *Board) Clearing() bool {
	return b.pending != nil
}

// ClearingRows returns the rows of the pending clear, if any.
func (b *Board) ClearingRows() []int {
	if b.pending == nil {
		return nil
	}
	return append([]int(nil), b.pending.rows...)
}

// Tick advances a pending line clear by one frame.
func (b *Board) Tick() {
	if b.pending == nil {
		return
	}
	b.pending.remaining--
	if b.pending.remaining <= 0 {
		b.finishClear()
	}
}

func (b *Board) finishClear() {
	pc := b.pending
	b.pending = nil

	for _, r := range pc.rows {
		for c := range b.cols {
			cell := b.cells[r*b.cols+c]
			if !cell.Empty() {
				b.dropPieceCell(cell.Piece, cell.Index)
			}
			b.cells[r*b.cols+c] = Cell{}
		}
	}

	// Rows are ordered top to bottom, so shifting for an upper row never
	// moves a lower cleared row.
	for _, r := range pc.rows {
		copy(b.cells[b.cols:(r+1)*b.cols], b.cells[:r*b.cols])
		clear(b.cells[:b.cols])
	}

	if pc.onComplete != nil {
		pc.onComplete(len(pc.rows))
	}
}

// dropPieceCell removes one sub-cell from a piece and drops the piece from
// the arena once it owns nothing.
func (b *Board) dropPieceCell(id PieceID, index uint8) {
	pp, ok := b.pieces.Get(id)
	if !ok {
		return
	}
	for i, ci := range pp.cells {
		if ci == index {
			pp.cells = append(pp.cells[:i], pp.cells[i+1:]...)
			break
		}
	}
	if len(pp.cells) == 0 {
		b.pieces.Del(id)
	}
}

// Clear empties the grid, drops every placed piece and cancels a pending clear.
func (b *Board) Clear() {
	clear(b.cells)
	b.pieces.Clear()
	b.lastID = 0
	b.pending = nil
}
