package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTable(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{1, 40},
		{2, 100},
		{3, 300},
		{4, 1200},
	}
	for _, tt := range tests {
		var s ScoreProcessor
		s.OnClearLines(tt.lines)
		assert.Equal(t, tt.want, s.Score(), "%d lines", tt.lines)
		assert.Equal(t, tt.lines, s.Lines())
	}
}

func TestScoreIgnoresOutOfRangeClears(t *testing.T) {
	var s ScoreProcessor
	s.OnClearLines(0)
	s.OnClearLines(5)
	s.OnClearLines(-1)
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Lines())
	assert.Zero(t, LineClearReward(7))
}

func TestScoreBottomBonusAndReset(t *testing.T) {
	var s ScoreProcessor
	s.OnBottom()
	s.OnBottom()
	s.OnClearLines(2)
	assert.Equal(t, 2*LockBonus+100, s.Score())

	s.Reset()
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Lines())
}
