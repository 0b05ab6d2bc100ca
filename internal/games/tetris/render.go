package tetris

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellWidth  = 2  // Each board cell is two characters wide
	panelWidth = 14 // Side panel with score and preview
	panelGap   = 2
)

var pieceColors = [engine.PieceTypeCount]core.Color{
	engine.PieceS: core.ColorGreen,
	engine.PieceZ: core.ColorRed,
	engine.PieceL: core.ColorOrange,
	engine.PieceJ: core.ColorBlue,
	engine.PieceI: core.ColorCyan,
	engine.PieceO: core.ColorYellow,
	engine.PieceT: core.ColorMagenta,
}

func pieceColor(t engine.PieceType) core.Color {
	if !t.Valid() {
		return core.ColorDefault
	}
	return pieceColors[t]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.eng == nil {
		g.renderError(dst)
		return
	}

	snap := g.eng.Snapshot()
	boardW := len(snapCols(snap))*cellWidth + 2
	boardH := len(snap.Grid) + 2
	totalW := boardW + panelGap + panelWidth

	if dst.Width() < totalW || dst.Height() < boardH {
		g.renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - totalW) / 2
	boardY := (dst.Height() - boardH) / 2
	board := core.NewRect(boardX, boardY, boardW, boardH)

	g.renderBoard(dst, board, snap)
	g.renderPanel(dst, core.NewRect(board.Right()+panelGap, boardY, panelWidth, boardH), snap)
	g.renderOverlays(dst, board, snap)
}

func snapCols(s engine.Snapshot) []engine.Cell {
	if len(s.Grid) == 0 {
		return nil
	}
	return s.Grid[0]
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderError(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Cannot start game")
	if g.err != nil {
		dst.DrawTextCentered(y+1, g.err.Error())
	}
}

// renderBoard draws the well, the locked stack, the shadow and the falling piece.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect, snap engine.Snapshot) {
	dst.DrawBox(r)
	inner := r.Inner()

	setCell := func(row, col int, glyph string, c core.Color) {
		if row < 0 || row >= len(snap.Grid) {
			return
		}
		dst.DrawTextColored(inner.X+col*cellWidth, inner.Y+row, glyph, c)
	}

	for row, cells := range snap.Grid {
		for col, cell := range cells {
			if cell.Empty() {
				setCell(row, col, " .", core.ColorGray)
				continue
			}
			setCell(row, col, "██", pieceColor(cell.Type))
		}
	}

	if snap.HasShadow {
		for _, p := range snap.Shadow.Cells() {
			setCell(p.Row, p.Col, "░░", core.ColorGray)
		}
	}
	if snap.HasCurrent {
		c := pieceColor(snap.Current.Type)
		for _, p := range snap.Current.Cells() {
			setCell(p.Row, p.Col, "██", c)
		}
	}

	// Rows waiting to be removed flash white.
	for _, row := range snap.ClearingRows {
		glyph := "▓▓"
		if snap.Frame%4 < 2 {
			glyph = "░░"
		}
		for col := range len(snapCols(snap)) {
			setCell(row, col, glyph, core.ColorBrightWhite)
		}
	}
}

// renderPanel draws score, lines, level and the preview queue.
func (g *Game) renderPanel(dst *core.Screen, r core.Rect, snap engine.Snapshot) {
	y := r.Y
	label := func(name string, value int) {
		dst.DrawTextColored(r.X, y, name, core.ColorGray)
		dst.DrawText(r.X, y+1, fmt.Sprintf("%d", value))
		y += 3
	}
	label("SCORE", snap.Score)
	label("LINES", snap.Lines)
	label("LEVEL", snap.Level)

	if snap.Replaying {
		dst.DrawTextColored(r.X, y, "REPLAY", core.ColorYellow)
		y += 2
	}

	if len(snap.Queue) == 0 || snap.State == engine.StateNotStarted {
		return
	}
	dst.DrawTextColored(r.X, y, "NEXT", core.ColorGray)
	y++
	for _, p := range snap.Queue {
		h := drawPreview(dst, r.X, y, r.Bottom(), p)
		if h == 0 {
			break
		}
		y += h + 1
	}
}

// drawPreview draws a queued piece trimmed to its occupied rows and
// returns the rows used, or 0 if it did not fit above bottom.
func drawPreview(dst *core.Screen, x, y, bottom int, p engine.PieceSnapshot) int {
	offs := engine.ShapeCells(p.Type, p.Orient)
	rows := make([]int, len(offs))
	cols := make([]int, len(offs))
	for i, o := range offs {
		rows[i], cols[i] = o.Row, o.Col
	}
	minRow, maxRow := slices.Min(rows), slices.Max(rows)
	minCol := slices.Min(cols)
	h := maxRow - minRow + 1
	if y+h > bottom {
		return 0
	}
	c := pieceColor(p.Type)
	for _, o := range offs {
		dst.DrawTextColored(x+(o.Col-minCol)*cellWidth, y+o.Row-minRow, "██", c)
	}
	return h
}

// renderOverlays draws the ready screen, pause and game over boxes.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect, snap engine.Snapshot) {
	centerX := board.X + board.W/2
	centerY := board.Y + board.H/2

	switch snap.State {
	case engine.StateNotStarted:
		lines := []string{
			"TETRIS",
			fmt.Sprintf("Level %d", snap.Level),
			"",
			"←/→ level",
			"Enter start",
		}
		if g.eng.Replay() != nil {
			lines = append(lines, "X replay")
		}
		drawOverlay(dst, centerX, centerY, lines...)
	case engine.StatePaused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Enter resume")
	case engine.StateEnd:
		title := "GAME OVER"
		if snap.Replaying {
			title = "REPLAY OVER"
		}
		drawOverlay(dst, centerX, centerY, title, fmt.Sprintf("Score %d", snap.Score), "Enter continue", "G replay")
	}

	if g.notice != "" {
		drawOverlay(dst, centerX, board.Y+2, g.notice)
	}
}

// drawOverlay draws a centered text box, clearing what is behind it.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawTextCenteredIn(box, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↓: Soft drop | X/↑: Rotate | Z: Counter | Space: Drop | Enter: Pause | G: Replay | R: Restart | Q: Quit"
}
