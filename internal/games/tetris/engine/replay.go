package engine

import (
	"errors"
	"fmt"
)

// ErrNoReplay is returned when playback is requested before any game has
// been recorded.
var ErrNoReplay = errors.New("engine: no replay available")

// Frame is one recorded action and the simulation frame it was applied on.
type Frame struct {
	Frame  int    `yaml:"frame" json:"frame"`
	Action Action `yaml:"action" json:"action"`
}

// Replay is everything needed to reproduce a game: the generator seed, the
// starting level, the applied actions and the last simulated frame.
type Replay struct {
	Seed     string  `yaml:"seed" json:"seed"`
	Level    int     `yaml:"level" json:"level"`
	Frames   []Frame `yaml:"frames" json:"frames"`
	EndFrame int     `yaml:"end_frame" json:"end_frame"`
}

// Clone returns a deep copy of r.
func (r *Replay) Clone() *Replay {
	if r == nil {
		return nil
	}
	c := *r
	c.Frames = append([]Frame(nil), r.Frames...)
	return &c
}

// Recorder appends applied actions to a bound replay.
type Recorder struct {
	replay *Replay
}

// SetReplay binds r as the recording target, replacing any previous one.
func (rec *Recorder) SetReplay(r *Replay) {
	rec.replay = r
}

// Replay returns the bound replay, or nil.
func (rec *Recorder) Replay() *Replay {
	return rec.replay
}

// Record appends (frame, a). Frames earlier than the last recorded one are
// ignored so the list stays ordered.
func (rec *Recorder) Record(frame int, a Action) {
	if rec.replay == nil {
		return
	}
	if n := len(rec.replay.Frames); n > 0 && rec.replay.Frames[n-1].Frame > frame {
		return
	}
	rec.replay.Frames = append(rec.replay.Frames, Frame{Frame: frame, Action: a})
}

// MatchPolicy decides when a stored frame is due during playback.
type MatchPolicy uint8

const (
	// MatchExact injects a stored action only on its exact frame. A stored
	// frame that is already behind the counter is dropped.
	MatchExact MatchPolicy = iota
	// MatchAtOrAfter injects a stored action on the first frame at or after
	// its index.
	MatchAtOrAfter
)

func (m MatchPolicy) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchAtOrAfter:
		return "at_or_after"
	}
	return "unknown"
}

// ParseMatchPolicy parses "exact" or "at_or_after". The empty string means exact.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch s {
	case "", "exact":
		return MatchExact, nil
	case "at_or_after":
		return MatchAtOrAfter, nil
	}
	return MatchExact, fmt.Errorf("engine: unknown replay match policy %q", s)
}

// Player walks a replay's frame list against the running frame counter.
type Player struct {
	replay  *Replay
	policy  MatchPolicy
	next    int
	dropped int
}

// NewPlayer creates a player positioned at the start of r.
func NewPlayer(r *Replay, policy MatchPolicy) *Player {
	return &Player{replay: r, policy: policy}
}

// Next returns the action due on frame, if any. At most one action is
// returned per call.
func (p *Player) Next(frame int) (Action, bool) {
	frames := p.replay.Frames
	for p.next < len(frames) {
		f := frames[p.next]
		switch {
		case f.Frame == frame:
			p.next++
			return f.Action, true
		case f.Frame > frame:
			return ActionNone, false
		case p.policy == MatchAtOrAfter:
			p.next++
			return f.Action, true
		default:
			p.next++
			p.dropped++
		}
	}
	return ActionNone, false
}

// Done reports whether every stored frame has been consumed.
func (p *Player) Done() bool {
	return p.next >= len(p.replay.Frames)
}

// Finished reports whether playback is over on frame: no frames remain and
// the recorded end frame has been reached.
func (p *Player) Finished(frame int) bool {
	return p.Done() && frame >= p.replay.EndFrame
}

// Dropped returns how many stored frames were skipped without being applied.
func (p *Player) Dropped() int {
	return p.dropped
}
