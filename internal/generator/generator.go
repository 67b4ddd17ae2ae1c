// Package generator builds deterministic typing text sequences.
package generator

import (
	"math/rand"
	"strings"
)

// Generator draws tokens from a pool using a single seeded stream. Two
// generators with the same pool and seed produce the same sequence no matter
// how the draws are batched.
type Generator struct {
	pool []string
	rnd  *rand.Rand
	seed int64
}

// New returns a Generator drawing from pool with the given seed.
func New(pool []string, seed int64) *Generator {
	return &Generator{
		pool: append([]string(nil), pool...),
		rnd:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Next draws the next count tokens from the stream.
func (g *Generator) Next(count int) []string {
	if len(g.pool) == 0 || count <= 0 {
		return nil
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, g.pool[g.rnd.Intn(len(g.pool))])
	}
	return out
}

// Text joins the next count tokens with single spaces.
func (g *Generator) Text(count int) string {
	return strings.Join(g.Next(count), " ")
}
