package engine

// Point is an absolute grid position.
type Point struct {
	Row, Col int
}

// Piece is a shape positioned on a board. Row and Col are the top-left of
// its 4x4 box and may be negative while the piece spawns above the grid.
//
// A physical piece writes its cells to the board on every successful move.
// A shadow piece only answers collision queries against the same board.
type Piece struct {
	Type   PieceType
	Orient Orientation
	Row    int
	Col    int

	id     PieceID
	locked bool
	shadow bool
	board  *Board
}

// NewPiece creates a piece bound to b but not yet placed on it.
func NewPiece(b *Board, t PieceType, o Orientation, row, col int) *Piece {
	return &Piece{Type: t, Orient: o, Row: row, Col: col, board: b}
}

func newShadow(b *Board) *Piece {
	return &Piece{board: b, shadow: true}
}

// ID returns the arena id assigned when the piece was placed, or 0.
func (p *Piece) ID() PieceID { return p.id }

// Locked reports whether the piece has been fixed in place.
func (p *Piece) Locked() bool { return p.locked }

// Cells returns the absolute positions of the occupied cells.
func (p *Piece) Cells() []Point {
	offs := ShapeCells(p.Type, p.Orient)
	pts := make([]Point, len(offs))
	for i, off := range offs {
		pts[i] = Point{Row: p.Row + off.Row, Col: p.Col + off.Col}
	}
	return pts
}

// AboveGrid reports whether any occupied cell lies above row 0.
func (p *Piece) AboveGrid() bool {
	for _, off := range ShapeCells(p.Type, p.Orient) {
		if p.Row+off.Row < 0 {
			return true
		}
	}
	return false
}

// fits checks offs placed at (row, col). Rows above the grid are passable;
// columns are always bounded.
func (p *Piece) fits(offs []Offset, row, col int) bool {
	b := p.board
	for _, off := range offs {
		r, c := row+off.Row, col+off.Col
		if c < 0 || c >= b.cols {
			return false
		}
		if r < 0 {
			continue
		}
		if r >= b.rows {
			return false
		}
		cell := b.cells[r*b.cols+c]
		if !cell.Empty() && (p.id == 0 || cell.Piece != p.id) {
			return false
		}
	}
	return true
}

// CanMove reports whether the piece fits at (row, col) in its current
// orientation. Its own cells never block it.
func (p *Piece) CanMove(row, col int) bool {
	return p.fits(ShapeCells(p.Type, p.Orient), row, col)
}

// CanRotate reports whether the cells swept by a clockwise rotation and
// the resulting shape are free.
func (p *Piece) CanRotate() bool {
	return p.fits(turnCells(p.Type, p.Orient, p.Orient.Next()), p.Row, p.Col)
}

// CanCounterRotate reports whether the cells swept by rotating back to the
// previous orientation and the resulting shape are free.
func (p *Piece) CanCounterRotate() bool {
	return p.fits(turnCells(p.Type, p.Orient, p.Orient.Prev()), p.Row, p.Col)
}

// Rotate turns the piece one step clockwise.
func (p *Piece) Rotate() bool {
	if p.locked || !p.CanRotate() {
		return false
	}
	p.place(p.Orient.Next(), p.Row, p.Col)
	return true
}

// CounterRotate turns the piece one step counter-clockwise.
func (p *Piece) CounterRotate() bool {
	if p.locked || !p.CanCounterRotate() {
		return false
	}
	p.place(p.Orient.Prev(), p.Row, p.Col)
	return true
}

// Shift moves the piece one column left (dir < 0) or right (dir > 0).
func (p *Piece) Shift(dir int) bool {
	if dir == 0 || p.locked {
		return false
	}
	step := 1
	if dir < 0 {
		step = -1
	}
	if !p.CanMove(p.Row, p.Col+step) {
		return false
	}
	p.place(p.Orient, p.Row, p.Col+step)
	return true
}

// Fall moves the piece down one row. False means it is resting.
func (p *Piece) Fall() bool {
	if p.locked || !p.CanMove(p.Row+1, p.Col) {
		return false
	}
	p.place(p.Orient, p.Row+1, p.Col)
	return true
}

// CanFall reports whether the piece can drop n rows without mutating it.
func (p *Piece) CanFall(n int) bool {
	if p.locked {
		return false
	}
	for i := 1; i <= n; i++ {
		if !p.CanMove(p.Row+i, p.Col) {
			return false
		}
	}
	return true
}

// HardDrop falls until resting and returns the rows travelled.
func (p *Piece) HardDrop() int {
	rows := 0
	for p.Fall() {
		rows++
	}
	return rows
}

// Lock fixes the piece in place. The board already holds its cells.
func (p *Piece) Lock() {
	p.locked = true
}

func (p *Piece) place(o Orientation, row, col int) {
	if p.board != nil {
		p.board.EasePieceState(p)
	}
	p.Orient, p.Row, p.Col = o, row, col
	if p.board != nil {
		p.board.SetPieceState(p)
	}
}

// Snapshot returns a read-only copy of the piece.
func (p *Piece) Snapshot() PieceSnapshot {
	return PieceSnapshot{Type: p.Type, Orient: p.Orient, Row: p.Row, Col: p.Col}
}

// PieceSnapshot is the renderer view of a piece.
type PieceSnapshot struct {
	Type   PieceType   `json:"type"`
	Orient Orientation `json:"orient"`
	Row    int         `json:"row"`
	Col    int         `json:"col"`
}

// Cells returns the absolute positions of the snapshot's occupied cells.
func (s PieceSnapshot) Cells() []Point {
	p := Piece{Type: s.Type, Orient: s.Orient, Row: s.Row, Col: s.Col}
	return p.Cells()
}
