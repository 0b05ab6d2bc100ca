package engine

// State is the lifecycle state of a game.
type State uint8

const (
	StateNotStarted State = iota
	StatePlaying
	StatePaused
	StateEnd
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateEnd:
		return "end"
	}
	return "unknown"
}

// Cue names a sound the simulation asks an audio player to make.
type Cue string

const (
	CueMove     Cue = "move"
	CueRotate   Cue = "rotate"
	CueLock     Cue = "lock"
	CueHardDrop Cue = "harddrop"
	CueErase1   Cue = "erase1"
	CueErase2   Cue = "erase2"
	CueErase3   Cue = "erase3"
	CueErase4   Cue = "erase4"
	CueGo       Cue = "go"
)

// EraseCue returns the cue for clearing n lines at once.
func EraseCue(n int) Cue {
	switch n {
	case 1:
		return CueErase1
	case 2:
		return CueErase2
	case 3:
		return CueErase3
	case 4:
		return CueErase4
	}
	return ""
}

// EventKind distinguishes events delivered to listeners.
type EventKind uint8

const (
	EventStateChanged EventKind = iota
	EventCue
	EventLevelChanged
	EventSpawned
	EventLocked
	EventLinesCleared
	EventScoreChanged
	EventReplayUnavailable
)

func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state_changed"
	case EventCue:
		return "cue"
	case EventLevelChanged:
		return "level_changed"
	case EventSpawned:
		return "spawned"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventScoreChanged:
		return "score_changed"
	case EventReplayUnavailable:
		return "replay_unavailable"
	}
	return "unknown"
}

// Event is one notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind  EventKind
	Frame int

	State State
	Cue   Cue
	Level int
	Lines int // lines cleared by this lock for EventLinesCleared
	Score int
	Piece PieceSnapshot
	Err   error // why a requested playback could not start
}

// Listener receives events synchronously from inside the simulation step.
// It must not call back into the engine.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

type listeners struct {
	lastID int
	subs   []subscription
}

func (l *listeners) add(fn Listener) func() {
	l.lastID++
	id := l.lastID
	l.subs = append(l.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range l.subs {
			if s.id == id {
				l.subs = append(l.subs[:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

func (l *listeners) emit(ev Event) {
	for _, s := range l.subs {
		s.fn(ev)
	}
}
