package engine

// repeater gates live input by tick count. A tick is one Step call, whatever
// the game state, so timing never depends on wall clock.
type repeater struct {
	das        int
	horizontal int
	softDrop   int

	lastAccepted [actionCount]int64
	pressedAt    [actionCount]int64
}

func newRepeater(das, horizontal, softDrop int) *repeater {
	r := &repeater{das: das, horizontal: horizontal, softDrop: softDrop}
	r.reset()
	return r
}

func (r *repeater) reset() {
	for i := range r.lastAccepted {
		r.lastAccepted[i] = -1
		r.pressedAt[i] = -1
	}
}

func (r *repeater) interval(a Action) int {
	if a == ActionDown {
		return r.softDrop
	}
	return r.horizontal
}

// accept reports whether a may be applied on tick and records it if so.
func (r *repeater) accept(a Action, tick int64) bool {
	last := r.lastAccepted[a]
	if last >= 0 && tick-last <= int64(r.interval(a)) {
		return false
	}
	r.lastAccepted[a] = tick
	return true
}

func (r *repeater) press(a Action, tick int64) {
	if a.repeatable() && r.pressedAt[a] < 0 {
		r.pressedAt[a] = tick
	}
}

func (r *repeater) release(a Action) {
	if a < actionCount {
		r.pressedAt[a] = -1
	}
}

func (r *repeater) releaseAll() {
	for i := range r.pressedAt {
		r.pressedAt[i] = -1
	}
}

// due returns the held actions whose press has outlasted the DAS window.
func (r *repeater) due(tick int64) []Action {
	var out []Action
	for a, at := range r.pressedAt {
		if at >= 0 && tick-at > int64(r.das) {
			out = append(out, Action(a))
		}
	}
	return out
}
