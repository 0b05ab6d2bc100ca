package engine

// LockBonus is added to the score every time a piece locks.
const LockBonus = 5

// lineClearReward is the classic reward table indexed by lines cleared at once.
var lineClearReward = [5]int{0, 40, 100, 300, 1200}

// LineClearReward returns the score for clearing n lines with one lock.
// Values of n outside [1,4] are worth nothing.
func LineClearReward(n int) int {
	if n < 1 || n >= len(lineClearReward) {
		return 0
	}
	return lineClearReward[n]
}

// ScoreProcessor accumulates score and cleared lines.
type ScoreProcessor struct {
	score int
	lines int
}

// OnBottom records a locked piece.
func (s *ScoreProcessor) OnBottom() {
	s.score += LockBonus
}

// OnClearLines records n lines cleared by a single lock.
func (s *ScoreProcessor) OnClearLines(n int) {
	if n < 1 || n > 4 {
		return
	}
	s.lines += n
	s.score += LineClearReward(n)
}

// Reset zeroes score and lines.
func (s *ScoreProcessor) Reset() {
	s.score = 0
	s.lines = 0
}

// Score returns the accumulated score.
func (s *ScoreProcessor) Score() int { return s.score }

// Lines returns the cumulative number of cleared lines.
func (s *ScoreProcessor) Lines() int { return s.lines }
