package engine

// Snapshot is a read-only view of everything a renderer draws.
type Snapshot struct {
	State     State
	Replaying bool
	Frame     int

	Level int
	Score int
	Lines int

	Grid         [][]Cell
	ClearingRows []int

	Current    PieceSnapshot
	HasCurrent bool
	Shadow     PieceSnapshot
	HasShadow  bool
	Queue      []PieceSnapshot
}

// Snapshot captures the current game.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:        e.state,
		Replaying:    e.replaying,
		Frame:        e.frame,
		Level:        e.level,
		Score:        e.score.Score(),
		Lines:        e.score.Lines(),
		Grid:         e.board.Cells(),
		ClearingRows: e.board.ClearingRows(),
		Queue:        e.Queue(),
	}
	s.Current, s.HasCurrent = e.Current()
	s.Shadow, s.HasShadow = e.Shadow()
	return s
}
