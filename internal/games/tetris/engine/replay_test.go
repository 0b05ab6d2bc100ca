package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderAppendsInOrder(t *testing.T) {
	var rec Recorder
	rec.Record(1, ActionLeft)
	assert.Nil(t, rec.Replay())

	r := &Replay{Seed: "s"}
	rec.SetReplay(r)
	rec.Record(2, ActionLeft)
	rec.Record(5, ActionRotate)
	rec.Record(4, ActionRight)

	assert.Equal(t, []Frame{{2, ActionLeft}, {5, ActionRotate}}, r.Frames)
}

func TestPlayerExactDropsStaleFrames(t *testing.T) {
	r := &Replay{Frames: []Frame{{5, ActionLeft}, {3, ActionRight}, {8, ActionHardDrop}}}
	p := NewPlayer(r, MatchExact)

	for f := range 5 {
		_, ok := p.Next(f)
		assert.False(t, ok, "frame %d", f)
	}
	a, ok := p.Next(5)
	require.True(t, ok)
	assert.Equal(t, ActionLeft, a)

	_, ok = p.Next(6)
	assert.False(t, ok)
	assert.Equal(t, 1, p.Dropped())

	_, ok = p.Next(7)
	assert.False(t, ok)
	a, ok = p.Next(8)
	require.True(t, ok)
	assert.Equal(t, ActionHardDrop, a)
	assert.True(t, p.Done())
}

func TestPlayerAtOrAfterAppliesLateFrames(t *testing.T) {
	r := &Replay{Frames: []Frame{{5, ActionLeft}, {3, ActionRight}}, EndFrame: 10}
	p := NewPlayer(r, MatchAtOrAfter)

	a, ok := p.Next(5)
	require.True(t, ok)
	assert.Equal(t, ActionLeft, a)

	a, ok = p.Next(6)
	require.True(t, ok)
	assert.Equal(t, ActionRight, a)
	assert.Zero(t, p.Dropped())

	assert.False(t, p.Finished(9))
	assert.True(t, p.Finished(10))
}

func TestParseMatchPolicy(t *testing.T) {
	m, err := ParseMatchPolicy("")
	require.NoError(t, err)
	assert.Equal(t, MatchExact, m)

	m, err = ParseMatchPolicy("at_or_after")
	require.NoError(t, err)
	assert.Equal(t, MatchAtOrAfter, m)

	_, err = ParseMatchPolicy("nearest")
	assert.Error(t, err)
}

func TestReplayJSONUsesActionNames(t *testing.T) {
	r := &Replay{Seed: "abc", Level: 3, Frames: []Frame{{7, ActionCounterRotate}}, EndFrame: 90}
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"seed":"abc","level":3,"frames":[{"frame":7,"action":"counter_rotate"}],"end_frame":90}`,
		string(data))

	var back Replay
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *r, back)

	err = json.Unmarshal([]byte(`{"frames":[{"frame":1,"action":"teleport"}]}`), &back)
	var unknown *UnknownActionError
	assert.ErrorAs(t, err, &unknown)
}

func TestReplayClone(t *testing.T) {
	r := &Replay{Seed: "a", Frames: []Frame{{1, ActionLeft}}}
	c := r.Clone()
	c.Frames[0].Action = ActionRight
	assert.Equal(t, ActionLeft, r.Frames[0].Action)

	var nilReplay *Replay
	assert.Nil(t, nilReplay.Clone())
}
