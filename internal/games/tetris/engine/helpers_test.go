package engine

// fill occupies (row, col) with a single-cell piece of its own.
func fill(b *Board, row, col int) PieceID {
	b.lastID++
	id := b.lastID
	b.pieces.Put(id, &placedPiece{typ: PieceO, cells: []uint8{0}})
	b.cells[row*b.cols+col] = Cell{Piece: id, Index: 0, Type: PieceO}
	return id
}

// fillRow occupies every column of row except those listed in skip.
func fillRow(b *Board, row int, skip ...int) {
	for c := range b.cols {
		skipped := false
		for _, s := range skip {
			if s == c {
				skipped = true
			}
		}
		if !skipped {
			fill(b, row, c)
		}
	}
}

func occupied(b *Board) map[Point]bool {
	out := make(map[Point]bool)
	for r := range b.rows {
		for c := range b.cols {
			if !b.Cell(r, c).Empty() {
				out[Point{Row: r, Col: c}] = true
			}
		}
	}
	return out
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = "test"
	cfg.ClearDelayFrames = 0
	return cfg
}

// setCurrent replaces the falling piece with one of the given shape.
func setCurrent(e *Engine, t PieceType, o Orientation, row, col int) {
	if cur := e.current; cur != nil && cur.id != 0 {
		e.board.EasePieceState(cur)
		e.board.pieces.Del(cur.id)
	}
	p := NewPiece(e.board, t, o, row, col)
	e.board.AddPiece(p)
	e.current = p
	e.dropAcc = 0
	e.cancelLockDelay()
	e.updateShadow(true)
}
