package engine

import (
	"fmt"
	"time"
)

// Engine is the frame-stepped game. It is not safe for concurrent use; a
// single driver calls Advance or Step and feeds input between calls.
type Engine struct {
	cfg   Config
	board *Board
	gen   *Generator
	score ScoreProcessor
	state State

	current       *Piece
	shadow        *Piece
	shadowVisible bool
	queue         []*Piece
	blockCount    int

	level       int
	startLevel  int
	levelLines  int
	speedFrames int
	dropAcc     int

	lockDelayActive bool
	lockDelay       int

	frame   int
	ticks   int64
	acc     time.Duration
	pending Action

	replaying bool
	recorder  Recorder
	replay    *Replay
	player    *Player

	rep  *repeater
	subs listeners
}

// New validates cfg and returns an engine waiting in StateNotStarted.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	board, err := NewBoard(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:        cfg,
		board:      board,
		gen:        NewGenerator(cfg.Seed),
		state:      StateNotStarted,
		startLevel: cfg.StartLevel,
		rep:        newRepeater(cfg.DASFrames, cfg.HorizontalRepeatFrames, cfg.SoftDropRepeatFrames),
	}
	e.shadow = newShadow(board)
	e.level = cfg.StartLevel
	e.speedFrames = cfg.Levels.SpeedFrames(e.level)
	return e, nil
}

// Subscribe registers fn for every subsequent event. Calling the returned
// function unsubscribes it.
func (e *Engine) Subscribe(fn Listener) (cancel func()) {
	return e.subs.add(fn)
}

// Input delivers one discrete action. Gameplay actions are applied on the
// next Step; lifecycle actions take effect immediately.
func (e *Engine) Input(a Action) {
	switch a {
	case ActionNone:
		return
	case ActionRestart:
		e.Restart()
		return
	case ActionWatchReplay:
		e.watchReplay()
		return
	case ActionEnter:
		e.enter()
		return
	}

	if e.board.Clearing() {
		return
	}
	if e.state == StateNotStarted {
		e.readyAction(a)
		return
	}
	if e.replaying || e.state != StatePlaying || !a.gameplay() {
		return
	}
	if e.rep.accept(a, e.ticks) {
		e.pending = a
	}
}

// Press starts holding a: it is applied once now and auto-repeats after
// the DAS window until Release.
func (e *Engine) Press(a Action) {
	e.rep.press(a, e.ticks)
	e.Input(a)
}

// Release stops auto-repeating a.
func (e *Engine) Release(a Action) {
	e.rep.release(a)
}

// Advance converts elapsed wall time into whole frames and steps them. The
// remainder carries over to the next call. It returns the frames stepped.
func (e *Engine) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	e.acc += dt
	n := int(e.acc / e.cfg.FrameDuration)
	e.acc -= time.Duration(n) * e.cfg.FrameDuration
	if limit := e.cfg.MaxFramesPerAdvance; limit > 0 && n > limit {
		n = limit
	}
	for range n {
		e.Step()
	}
	return n
}

// Step simulates exactly one frame.
func (e *Engine) Step() {
	e.ticks++
	for _, a := range e.rep.due(e.ticks) {
		e.Input(a)
	}

	if e.state != StatePlaying {
		return
	}
	if e.board.Clearing() {
		e.frame++
		e.board.Tick()
		return
	}

	if e.replaying {
		if a, ok := e.player.Next(e.frame); ok {
			e.pending = a
		} else if e.player.Finished(e.frame) {
			e.setState(StateEnd)
			return
		}
	}

	action := e.pending
	e.pending = ActionNone
	softDrop := action == ActionDown
	hardDrop := action == ActionHardDrop
	if action != ActionNone {
		e.doBlockAction(action)
	}
	e.updateShadow(false)
	e.frame++

	cur := e.current
	locked := false
	switch {
	case hardDrop:
		e.dropAcc = 0
		cur.HardDrop()
		e.cancelLockDelay()
		locked = true
	case softDrop:
		locked = !cur.Fall()
		e.cancelLockDelay()
	default:
		e.dropAcc++
		if e.dropAcc >= e.speedFrames {
			e.dropAcc = 0
			if cur.Fall() {
				if !cur.CanFall(1) {
					e.startLockDelay()
				}
			} else if !e.lockDelayActive {
				e.startLockDelay()
			}
		}
		if e.lockDelayActive {
			e.lockDelay--
			if e.lockDelay <= 0 {
				e.cancelLockDelay()
				locked = !cur.CanFall(1)
			}
		}
	}

	if locked {
		e.lockCurrent(hardDrop)
	}
}

// Restart begins a new live game with a fresh seed and the selected start level.
func (e *Engine) Restart() {
	e.replaying = false
	e.restart()
}

// StartReplay plays back the last recorded game from its start. A game in
// progress is finalized first so its end frame is known.
func (e *Engine) StartReplay() error {
	if e.replay == nil {
		return ErrNoReplay
	}
	if rec := e.recorder.Replay(); rec != nil && !e.replaying &&
		(e.state == StatePlaying || e.state == StatePaused) {
		rec.EndFrame = e.frame
	}
	e.replaying = true
	e.restart()
	return nil
}

// watchReplay starts playback for an input action. Input has no error
// return, so a missing replay is reported to listeners.
func (e *Engine) watchReplay() {
	if err := e.StartReplay(); err != nil {
		e.emit(Event{Kind: EventReplayUnavailable, Err: err})
	}
}

func (e *Engine) restart() {
	e.board.Clear()
	e.score.Reset()
	e.dropAcc = 0
	e.cancelLockDelay()
	e.pending = ActionNone
	e.frame = 0
	e.blockCount = 0
	e.current = nil
	e.shadowVisible = false

	if e.replaying {
		e.player = NewPlayer(e.replay, e.cfg.ReplayMatch)
		e.gen.Reset(e.replay.Seed)
		e.setLevel(e.replay.Level)
	} else {
		e.player = nil
		e.gen.Reset(e.nextSeed())
		e.replay = &Replay{Seed: e.gen.Seed(), Level: e.startLevel}
		e.recorder.SetReplay(e.replay)
		e.setLevel(e.startLevel)
	}

	first := e.createPiece()
	e.queue = e.queue[:0]
	for range e.cfg.PreviewCount {
		e.queue = append(e.queue, e.createPiece())
	}

	e.setState(StatePlaying)
	e.emitScore()
	e.emitCue(CueGo)
	e.spawn(first)
}

func (e *Engine) nextSeed() string {
	if e.cfg.SeedSource != nil {
		return e.cfg.SeedSource()
	}
	return e.cfg.Seed
}

func (e *Engine) enter() {
	switch e.state {
	case StateNotStarted:
		e.Restart()
	case StatePlaying:
		if e.replaying {
			e.setState(StateEnd)
		} else {
			e.rep.releaseAll()
			e.setState(StatePaused)
		}
	case StatePaused:
		e.setState(StatePlaying)
	case StateEnd:
		e.setState(StateNotStarted)
	}
}

// readyAction handles input on the ready screen: level selection and
// playback of the last game.
func (e *Engine) readyAction(a Action) {
	switch a {
	case ActionUp, ActionRight:
		if e.startLevel < e.cfg.Levels.MaxLevel() {
			e.startLevel++
			e.setLevel(e.startLevel)
		}
	case ActionDown, ActionLeft:
		if e.startLevel > 0 {
			e.startLevel--
			e.setLevel(e.startLevel)
		}
	case ActionRotate:
		e.watchReplay()
	}
}

func (e *Engine) doBlockAction(a Action) {
	cur := e.current
	record := false
	switch a {
	case ActionUp, ActionRotate:
		if cur.Rotate() {
			record = true
			e.resetLockDelay()
			e.emitCue(CueRotate)
		}
	case ActionCounterRotate:
		if cur.CounterRotate() {
			record = true
			e.resetLockDelay()
			e.emitCue(CueRotate)
		}
	case ActionLeft, ActionRight:
		dir := 1
		if a == ActionLeft {
			dir = -1
		}
		if cur.Shift(dir) {
			record = true
			e.resetLockDelay()
			e.emitCue(CueMove)
		}
	case ActionDown:
		// Recorded even when resting: a soft drop that cannot fall locks.
		record = true
		if cur.CanFall(1) {
			e.emitCue(CueMove)
		}
	case ActionHardDrop:
		record = true
	}
	if record && !e.replaying {
		e.recorder.Record(e.frame, a)
	}
}

func (e *Engine) startLockDelay() {
	e.lockDelayActive = true
	e.lockDelay = e.cfg.LockDelayBase - e.speedFrames
}

func (e *Engine) resetLockDelay() {
	if e.lockDelayActive {
		e.lockDelay = e.cfg.LockDelayBase - e.speedFrames
	}
}

func (e *Engine) cancelLockDelay() {
	e.lockDelayActive = false
	e.lockDelay = 0
}

func (e *Engine) createPiece() *Piece {
	info := e.gen.BlockAt(e.blockCount)
	e.blockCount++
	return NewPiece(e.board, info.Type, info.Orient, e.cfg.SpawnRow, e.cfg.spawnCol())
}

// spawn makes p the current piece. A spawn position that overlaps the
// stack ends the game.
func (e *Engine) spawn(p *Piece) {
	e.current = p
	if !p.CanMove(p.Row, p.Col) {
		e.gameOver()
		return
	}
	e.board.AddPiece(p)
	e.shadowVisible = true
	e.updateShadow(true)
	e.emit(Event{Kind: EventSpawned, Piece: p.Snapshot()})
}

func (e *Engine) spawnNext() {
	next := e.queue[0]
	copy(e.queue, e.queue[1:])
	e.queue[len(e.queue)-1] = e.createPiece()
	e.spawn(next)
}

func (e *Engine) lockCurrent(hardDrop bool) {
	cur := e.current
	cur.Lock()
	e.board.Settle(cur)
	e.shadowVisible = false
	e.score.OnBottom()
	e.emit(Event{Kind: EventLocked, Piece: cur.Snapshot()})
	e.emitScore()

	lockedOut := cur.AboveGrid()
	e.board.CheckClearLines(e.cfg.ClearDelayFrames,
		func(n int) {
			e.emitCue(EraseCue(n))
		},
		func(n int) {
			e.afterClear(n, lockedOut, hardDrop)
		})
}

func (e *Engine) afterClear(n int, lockedOut, hardDrop bool) {
	switch {
	case n > 0:
		e.score.OnClearLines(n)
		e.levelLines += n
		e.emit(Event{Kind: EventLinesCleared, Lines: n})
		e.emitScore()
		e.checkLevelUp()
	case hardDrop:
		e.emitCue(CueHardDrop)
	default:
		e.emitCue(CueLock)
	}

	if n > 0 || !lockedOut {
		e.spawnNext()
		return
	}
	e.gameOver()
}

func (e *Engine) checkLevelUp() {
	need := e.cfg.Levels.LinesToAdvance(e.level)
	if need <= 0 || e.levelLines < need || e.level >= e.cfg.Levels.MaxLevel() {
		return
	}
	e.setLevel(e.level + 1)
}

func (e *Engine) setLevel(level int) {
	e.level = level
	e.levelLines = 0
	e.speedFrames = e.cfg.Levels.SpeedFrames(level)
	e.emit(Event{Kind: EventLevelChanged, Level: level})
}

func (e *Engine) gameOver() {
	if rec := e.recorder.Replay(); rec != nil && !e.replaying {
		rec.EndFrame = e.frame
	}
	e.rep.releaseAll()
	e.setState(StateEnd)
}

// updateShadow re-projects the shadow when the current piece changed column
// or orientation, or unconditionally when force is set.
func (e *Engine) updateShadow(force bool) {
	cur := e.current
	if cur == nil || !e.shadowVisible {
		return
	}
	s := e.shadow
	if !force && s.Type == cur.Type && s.Orient == cur.Orient && s.Col == cur.Col {
		return
	}
	s.Type, s.Orient, s.Row, s.Col = cur.Type, cur.Orient, cur.Row, cur.Col
	s.id = cur.id
	for s.CanMove(s.Row+1, s.Col) {
		s.Row++
	}
}

func (e *Engine) setState(s State) {
	if e.state == s {
		return
	}
	e.state = s
	e.emit(Event{Kind: EventStateChanged, State: s})
}

func (e *Engine) emitCue(c Cue) {
	if c == "" {
		return
	}
	e.emit(Event{Kind: EventCue, Cue: c})
}

func (e *Engine) emitScore() {
	e.emit(Event{Kind: EventScoreChanged, Score: e.score.Score(), Lines: e.score.Lines()})
}

func (e *Engine) emit(ev Event) {
	ev.Frame = e.frame
	e.subs.emit(ev)
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// StartLevel returns the level the next live game starts at.
func (e *Engine) StartLevel() int { return e.startLevel }

// Score returns the current score.
func (e *Engine) Score() int { return e.score.Score() }

// Lines returns the lines cleared this game.
func (e *Engine) Lines() int { return e.score.Lines() }

// Frame returns the simulation frame counter of the current game.
func (e *Engine) Frame() int { return e.frame }

// Seed returns the seed of the current game's piece sequence.
func (e *Engine) Seed() string { return e.gen.Seed() }

// SpeedFrames returns the gravity interval of the current level.
func (e *Engine) SpeedFrames() int { return e.speedFrames }

// Replaying reports whether the current game is a playback.
func (e *Engine) Replaying() bool { return e.replaying }

// IsLineClearing reports whether a line clear is in progress.
func (e *Engine) IsLineClearing() bool { return e.board.Clearing() }

// Current returns the falling piece. A locked piece is part of the grid and
// is not reported.
func (e *Engine) Current() (PieceSnapshot, bool) {
	if e.current == nil || e.current.locked {
		return PieceSnapshot{}, false
	}
	return e.current.Snapshot(), true
}

// Shadow returns the resting projection of the current piece while visible.
func (e *Engine) Shadow() (PieceSnapshot, bool) {
	if !e.shadowVisible || e.current == nil {
		return PieceSnapshot{}, false
	}
	return e.shadow.Snapshot(), true
}

// Queue returns the upcoming pieces, next first.
func (e *Engine) Queue() []PieceSnapshot {
	out := make([]PieceSnapshot, len(e.queue))
	for i, p := range e.queue {
		out[i] = p.Snapshot()
	}
	return out
}

// Grid returns a copy of the board cells.
func (e *Engine) Grid() [][]Cell { return e.board.Cells() }

// Rows returns the board height.
func (e *Engine) Rows() int { return e.board.Rows() }

// Cols returns the board width.
func (e *Engine) Cols() int { return e.board.Cols() }

// Replay returns a copy of the last recorded game, or nil.
func (e *Engine) Replay() *Replay { return e.replay.Clone() }

// ReplayDropped returns how many recorded frames the current playback skipped.
func (e *Engine) ReplayDropped() int {
	if e.player == nil {
		return 0
	}
	return e.player.Dropped()
}

// LoadReplay installs r as the game StartReplay plays back.
func (e *Engine) LoadReplay(r *Replay) error {
	if r == nil {
		return ErrNoReplay
	}
	if r.Level < 0 || r.Level > e.cfg.Levels.MaxLevel() {
		return fmt.Errorf("engine: replay level %d outside 0..%d", r.Level, e.cfg.Levels.MaxLevel())
	}
	e.replay = r.Clone()
	e.recorder.SetReplay(nil)
	return nil
}
