package engine

import (
	"hash/fnv"
	"math/rand/v2"
)

// BlockInfo is one generated entry of the piece sequence.
type BlockInfo struct {
	Type   PieceType
	Orient Orientation
}

// Generator produces a deterministic, append-only sequence of pieces from a
// seed string. Entries are generated lazily and cached per index, so the same
// index always yields the same piece for a given seed regardless of call order.
type Generator struct {
	seed   string
	rng    *rand.Rand
	blocks []BlockInfo
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed string) *Generator {
	g := &Generator{}
	g.Reset(seed)
	return g
}

// Reset clears the cached sequence and reseeds the random source.
func (g *Generator) Reset(seed string) {
	g.seed = seed
	g.blocks = g.blocks[:0]
	s1, s2 := seedWords(seed)
	g.rng = rand.New(rand.NewPCG(s1, s2))
}

// Seed returns the seed the current sequence was generated from.
func (g *Generator) Seed() string {
	return g.seed
}

// Len returns how many entries have been generated so far.
func (g *Generator) Len() int {
	return len(g.blocks)
}

// BlockAt returns the piece at index. Missing entries up to index are
// generated in order, so gaps never change the sequence. Negative indices
// are treated as 0.
func (g *Generator) BlockAt(index int) BlockInfo {
	if index < 0 {
		index = 0
	}
	for len(g.blocks) <= index {
		t := PieceType(int(g.rng.Float64() * float64(PieceTypeCount)))
		g.blocks = append(g.blocks, BlockInfo{Type: t, Orient: typicalOrientation[t]})
	}
	return g.blocks[index]
}

// seedWords derives the two PCG seed words from a seed string.
func seedWords(seed string) (uint64, uint64) {
	h := fnv.New64a()
	h.Write([]byte(seed))
	s1 := h.Sum64()
	h.Write([]byte{0xff})
	return s1, h.Sum64()
}
