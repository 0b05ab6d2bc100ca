package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorSameSeedSameSequence(t *testing.T) {
	a := NewGenerator("test")
	b := NewGenerator("test")
	for i := range 64 {
		assert.Equal(t, a.BlockAt(i), b.BlockAt(i), "index %d", i)
	}
}

func TestGeneratorOutOfOrderAccess(t *testing.T) {
	inOrder := NewGenerator("seed-42")
	var want []BlockInfo
	for i := range 12 {
		want = append(want, inOrder.BlockAt(i))
	}

	g := NewGenerator("seed-42")
	assert.Equal(t, want[10], g.BlockAt(10))
	assert.Equal(t, 11, g.Len())
	for i := 11; i >= 0; i-- {
		assert.Equal(t, want[i], g.BlockAt(i), "index %d", i)
	}
	assert.Equal(t, want[3], g.BlockAt(3))
}

func TestGeneratorReset(t *testing.T) {
	g := NewGenerator("test")
	first := []BlockInfo{g.BlockAt(0), g.BlockAt(1), g.BlockAt(2)}

	g.Reset("other")
	assert.Equal(t, "other", g.Seed())
	assert.Zero(t, g.Len())
	var other []BlockInfo
	for i := range 20 {
		other = append(other, g.BlockAt(i))
	}

	g.Reset("test")
	assert.Equal(t, first, []BlockInfo{g.BlockAt(0), g.BlockAt(1), g.BlockAt(2)})

	h := NewGenerator("test")
	var same []BlockInfo
	for i := range 20 {
		same = append(same, h.BlockAt(i))
	}
	assert.NotEqual(t, same, other)
}

func TestGeneratorUsesTypicalOrientation(t *testing.T) {
	g := NewGenerator("orientation")
	for i := range 100 {
		info := g.BlockAt(i)
		assert.True(t, info.Type.Valid())
		assert.Equal(t, TypicalOrientation(info.Type), info.Orient)
	}
}

func TestGeneratorCoversAllTypes(t *testing.T) {
	g := NewGenerator("coverage")
	seen := make(map[PieceType]bool)
	for i := range 500 {
		seen[g.BlockAt(i).Type] = true
	}
	assert.Len(t, seen, PieceTypeCount)
}
